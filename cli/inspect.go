package cli

import (
	"fmt"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinutil/playback"
)

// InspectAction is the corresponding action for 'inspect'.
func InspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("inspect requires exactly one trajectory file")
	}
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}

	traj, err := playback.ReadTrajectory(c.Args().First())
	if err != nil {
		return err
	}

	summary, err := summarize(traj)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", summary)

	if c.IsSet(inspectFlagHistogram) {
		if err := printIntervalHistogram(c, traj, c.Int(inspectFlagHistogram)); err != nil {
			return err
		}
	}

	if err := traj.Validate(cfg.Playback.NegativeDelta); err != nil {
		warningf(c.App.ErrWriter, "trajectory cannot be played with negative_delta=%q: %v", cfg.Playback.NegativeDelta, err)
		if c.IsSet(inspectFlagPlot) {
			return errors.New("refusing to plot an invalid trajectory")
		}
		return nil
	}

	if path := c.Path(inspectFlagPlot); path != "" {
		if err := plotTrajectory(traj, path, c.Bool(inspectFlagPlotDegrees)); err != nil {
			return err
		}
		logger.Infow("wrote plot", "file", path)
	}
	return nil
}

// summarize renders a table of trajectory statistics.
func summarize(traj playback.Trajectory) (string, error) {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"frames", traj.Len()})
	dof := 0
	if traj.Len() > 0 {
		dof = len(traj.Poses[0])
	}
	t.AppendRow(table.Row{"dof", dof})
	t.AppendRow(table.Row{"duration (s)", fmt.Sprintf("%.4f", traj.Duration())})
	t.AppendRow(table.Row{"path length (L2)", fmt.Sprintf("%.4f", traj.PathLength())})
	t.AppendRow(table.Row{"max joint step", fmt.Sprintf("%.4f", traj.MaxJointStep())})

	intervals := stats.Float64Data(traj.Intervals())
	if intervals.Len() > 0 {
		mean, err := intervals.Mean()
		if err != nil {
			return "", err
		}
		maxInterval, err := intervals.Max()
		if err != nil {
			return "", err
		}
		stddev, err := intervals.StandardDeviation()
		if err != nil {
			return "", err
		}
		t.AppendRow(table.Row{"interval mean (s)", fmt.Sprintf("%.4f", mean)})
		t.AppendRow(table.Row{"interval max (s)", fmt.Sprintf("%.4f", maxInterval)})
		t.AppendRow(table.Row{"interval stddev (s)", fmt.Sprintf("%.4f", stddev)})
	}
	return t.Render(), nil
}

const histogramWidth = 40

func printIntervalHistogram(c *cli.Context, traj playback.Trajectory, bins int) error {
	if bins < 1 {
		return errors.Errorf("--%s must be at least 1, got %d", inspectFlagHistogram, bins)
	}
	intervals := traj.Intervals()
	if len(intervals) == 0 {
		return nil
	}
	printf(c.App.Writer, "frame intervals (s):")
	return histogram.Fprint(c.App.Writer, histogram.Hist(bins, intervals), histogram.Linear(histogramWidth))
}
