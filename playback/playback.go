// Package playback plays a trajectory back on a display sink, waiting between frames according to
// the trajectory's timestamps.
package playback

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/referenceframe"
	"go.viam.com/kinutil/utils"
)

// Sink renders poses. Display is called once per frame, in order.
type Sink interface {
	Display(ctx context.Context, pose []referenceframe.Input) error
}

// Option configures a Player.
type Option func(*Player)

// WithClock uses c for both waiting between frames and measuring playback time.
func WithClock(c clock.Clock) Option {
	return func(p *Player) {
		p.clock = c
		p.sleeper = NewClockSleeper(c)
	}
}

// WithSleeper replaces how the player waits between frames. It should come after WithClock when
// both are given.
func WithSleeper(s Sleeper) Option {
	return func(p *Player) {
		p.sleeper = s
	}
}

// WithNegativeDeltaPolicy sets how decreasing timestamps are handled. The default is
// RejectNegativeDeltas.
func WithNegativeDeltaPolicy(policy NegativeDeltaPolicy) Option {
	return func(p *Player) {
		p.policy = policy
	}
}

// WithTimeScale speeds playback up (scale > 1) or slows it down (scale < 1). Every wait is divided
// by scale.
func WithTimeScale(scale float64) Option {
	return func(p *Player) {
		p.timeScale = scale
	}
}

// Player displays trajectories on a Sink in real time.
type Player struct {
	sink      Sink
	sleeper   Sleeper
	clock     clock.Clock
	logger    logging.Logger
	policy    NegativeDeltaPolicy
	timeScale float64
}

// NewPlayer returns a Player that displays frames on sink. By default it waits on the wall clock,
// rejects decreasing timestamps and plays at normal speed.
func NewPlayer(sink Sink, logger logging.Logger, opts ...Option) (*Player, error) {
	if sink == nil {
		return nil, errors.New("playback sink cannot be nil")
	}
	realClock := clock.New()
	p := &Player{
		sink:      sink,
		sleeper:   NewClockSleeper(realClock),
		clock:     realClock,
		logger:    logger,
		policy:    RejectNegativeDeltas,
		timeScale: 1,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.policy.Validate(); err != nil {
		return nil, err
	}
	if !(p.timeScale > 0) {
		return nil, errors.Errorf("time scale must be positive, got %v", p.timeScale)
	}
	return p, nil
}

// Play displays poses[i] on the default player's sink and then waits times[i] seconds for the
// first frame and times[i]-times[i-1] seconds after every later one. Decreasing timestamps are
// rejected before anything is displayed.
func Play(ctx context.Context, sink Sink, poses [][]referenceframe.Input, times []float64) error {
	p, err := NewPlayer(sink, logging.NewBlankLogger("playback"))
	if err != nil {
		return err
	}
	return p.Play(ctx, poses, times)
}

// Play displays each pose in order, waiting between frames according to times. poses and times
// must have the same length and are validated in full before the first frame is displayed.
// Playback stops at the first sink error or when ctx is done.
func (p *Player) Play(ctx context.Context, poses [][]referenceframe.Input, times []float64) error {
	if len(poses) != len(times) {
		return errors.Wrapf(ErrLengthMismatch, "got %d poses and %d timestamps", len(poses), len(times))
	}
	durations, err := frameDurations(times, p.policy, p.logger)
	if err != nil {
		return err
	}
	waits, err := p.scale(durations)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		p.logger.CDebug(ctx, "nothing to play")
		return nil
	}

	p.logger.CDebugw(ctx, "starting playback", "frames", len(poses), "seconds", totalSeconds(waits))
	start := p.clock.Now()
	for i, pose := range poses {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.sink.Display(ctx, pose); err != nil {
			return errors.Wrapf(err, "displaying frame %d", i)
		}

		wait := waits[i]
		p.logger.CDebugw(ctx, "displayed frame", "index", i, "wait", wait)
		if err := p.sleeper.Sleep(ctx, wait); err != nil {
			return err
		}
	}
	p.logger.CDebugw(ctx, "finished playback", "frames", len(poses), "elapsed", p.clock.Since(start))
	return nil
}

// PlayTrajectory plays traj. See Play.
func (p *Player) PlayTrajectory(ctx context.Context, traj Trajectory) error {
	return p.Play(ctx, traj.Poses, traj.Times)
}

// scale divides every wait by the time scale. A slowed down wait that no longer fits in a
// time.Duration is an error.
func (p *Player) scale(durations []time.Duration) ([]time.Duration, error) {
	if p.timeScale == 1 {
		return durations, nil
	}
	waits := make([]time.Duration, len(durations))
	for i, d := range durations {
		wait, ok := utils.SecondsToDuration(d.Seconds() / p.timeScale)
		if !ok {
			return nil, errors.Wrapf(ErrWaitTooLong, "frame %d at time scale %v", i, p.timeScale)
		}
		waits[i] = wait
	}
	return waits, nil
}

func totalSeconds(durations []time.Duration) float64 {
	total := 0.
	for _, d := range durations {
		total += d.Seconds()
	}
	return total
}
