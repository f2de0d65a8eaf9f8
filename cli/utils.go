package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinutil/config"
	"go.viam.com/kinutil/logging"
)

// printf prints a message with no decoration.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a message prefixed with a warning label, in yellow unless color output is disabled.
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	color.New(color.FgYellow).Fprintf(w, "Warning: "+format, a...)
	//nolint:errcheck
	fmt.Fprintln(w)
}

// loadConfig reads the --config file, or the defaults when none is given, and returns a logger
// writing to the app's error writer at the configured level.
func loadConfig(c *cli.Context) (*config.Config, logging.Logger, error) {
	logger := logging.NewBlankLogger("kinutil")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(logging.INFO)

	cfg := config.Default()
	if path := c.String(configFlag); path != "" {
		var err error
		cfg, err = config.Read(path, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.SetLevel(cfg.LogLevel)
	}
	if c.Bool(debugFlag) {
		logger.SetLevel(logging.DEBUG)
	}
	return cfg, logger, nil
}

// parseFloats parses a comma separated list such as "3,4" or "0.5, -1".
func parseFloats(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return []float64{}, nil
	}
	var parseErr error
	values := lo.Map(strings.Split(raw, ","), func(field string, i int) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil && parseErr == nil {
			parseErr = errors.Wrapf(err, "value %d of %q", i, raw)
		}
		return v
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return values, nil
}
