// Package main is the kinutil command itself.
package main

import (
	"log"
	"os"

	kinutilcli "go.viam.com/kinutil/cli"
)

func main() {
	app := kinutilcli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
