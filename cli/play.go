package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/playback"
)

// PlayAction is the corresponding action for 'play'.
func PlayAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("play requires exactly one trajectory file")
	}
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}

	traj, err := playback.ReadTrajectory(c.Args().First())
	if err != nil {
		return err
	}
	if c.Bool(playFlagDegrees) {
		traj = traj.FromDegrees()
	}
	if steps := c.Int(playFlagInterpolate); steps != 0 {
		if traj, err = traj.Interpolate(steps); err != nil {
			return err
		}
	}

	sink, err := newSink(c, logger)
	if err != nil {
		return err
	}

	opts := cfg.PlayerOptions()
	if c.IsSet(playFlagTimeScale) {
		opts = append(opts, playback.WithTimeScale(c.Float64(playFlagTimeScale)))
	}
	if c.Bool(playFlagClamp) {
		opts = append(opts, playback.WithNegativeDeltaPolicy(playback.ClampNegativeDeltas))
	}
	player, err := playback.NewPlayer(sink, logger.Sublogger("playback"), opts...)
	if err != nil {
		return err
	}

	loops := c.Int(playFlagLoop)
	if loops < 1 {
		return errors.Errorf("--%s must be at least 1, got %d", playFlagLoop, loops)
	}
	logger.Infow("playing trajectory", "file", c.Args().First(), "frames", traj.Len(), "duration", traj.Duration(), "loops", loops)
	for i := 0; i < loops; i++ {
		if err := player.PlayTrajectory(c.Context, traj); err != nil {
			return errors.Wrapf(err, "loop %d", i)
		}
	}
	return nil
}

func newSink(c *cli.Context, logger logging.Logger) (playback.Sink, error) {
	switch kind := c.String(playFlagSink); kind {
	case sinkLog:
		return playback.NewLoggingSink(logger.Sublogger("sink")), nil
	case sinkJSON:
		return playback.NewJSONSink(c.App.Writer), nil
	default:
		return nil, errors.Errorf("unknown sink %q, must be %q or %q", kind, sinkLog, sinkJSON)
	}
}
