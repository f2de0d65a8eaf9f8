// Package cli contains the kinutil command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	configFlag = "config"
	debugFlag  = "debug"

	playFlagSink        = "sink"
	playFlagLoop        = "loop"
	playFlagTimeScale   = "time-scale"
	playFlagClamp       = "clamp"
	playFlagDegrees     = "degrees"
	playFlagInterpolate = "interpolate"

	normFlagWeights = "weights"

	inspectFlagPlot        = "plot"
	inspectFlagPlotDegrees = "plot-degrees"
	inspectFlagHistogram   = "histogram"

	sinkLog  = "log"
	sinkJSON = "json"
)

func newApp() *cli.App {
	return &cli.App{
		Name:            "kinutil",
		Usage:           "play back and measure joint-space trajectories",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "play a trajectory file back on a sink",
				ArgsUsage: "<trajectory.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  playFlagSink,
						Value: sinkLog,
						Usage: "where to display poses, one of " + sinkLog + " or " + sinkJSON + " (stdout)",
					},
					&cli.IntFlag{
						Name:  playFlagLoop,
						Value: 1,
						Usage: "number of times to play the trajectory",
					},
					&cli.Float64Flag{
						Name:  playFlagTimeScale,
						Usage: "playback speed multiplier, overrides the config file",
					},
					&cli.BoolFlag{
						Name:  playFlagClamp,
						Usage: "treat decreasing timestamps as zero waits instead of rejecting them",
					},
					&cli.BoolFlag{
						Name:  playFlagDegrees,
						Usage: "joint values in the trajectory file are in degrees",
					},
					&cli.IntFlag{
						Name:  playFlagInterpolate,
						Usage: "insert `N` interpolated frames between each pair of poses",
					},
				},
				Action: PlayAction,
			},
			{
				Name:      "norm",
				Usage:     "compute the Euclidean norm of one vector, or the (weighted) sum of norms of several",
				ArgsUsage: "<v1> [v2 ...] where each vector is a comma separated list, e.g. 3,4",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  normFlagWeights,
						Usage: "comma separated weights, one per vector",
					},
				},
				Action: NormAction,
			},
			{
				Name:      "inspect",
				Usage:     "summarize a trajectory file",
				ArgsUsage: "<trajectory.json>",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:  inspectFlagPlot,
						Usage: "write a plot of joint values over time to `FILE` (png, svg or pdf)",
					},
					&cli.BoolFlag{
						Name:  inspectFlagPlotDegrees,
						Usage: "plot joint values in degrees instead of radians",
					},
					&cli.IntFlag{
						Name:  inspectFlagHistogram,
						Usage: "print a histogram of frame intervals with `N` bins",
					},
				},
				Action: InspectAction,
			},
		},
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app := newApp()
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
