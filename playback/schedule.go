package playback

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/utils"
)

// NegativeDeltaPolicy decides what happens when a timestamp precedes the one before it, which
// would otherwise call for a negative wait.
type NegativeDeltaPolicy string

const (
	// RejectNegativeDeltas fails validation before any frame is displayed.
	RejectNegativeDeltas NegativeDeltaPolicy = "reject"
	// ClampNegativeDeltas waits zero seconds instead and logs a warning.
	ClampNegativeDeltas NegativeDeltaPolicy = "clamp"
)

var (
	// ErrLengthMismatch is returned when poses and timestamps are not paired index-for-index.
	ErrLengthMismatch = errors.New("number of poses does not match number of timestamps")
	// ErrNonFiniteTimestamp is returned for NaN or infinite timestamps.
	ErrNonFiniteTimestamp = errors.New("timestamp is not finite")
	// ErrNegativeTimestamp is returned when the first timestamp is below zero.
	ErrNegativeTimestamp = errors.New("timestamp is negative")
	// ErrDecreasingTimestamp is returned when a timestamp precedes the one before it.
	ErrDecreasingTimestamp = errors.New("timestamps are decreasing")
	// ErrWaitTooLong is returned when a wait between frames cannot be represented as a
	// time.Duration.
	ErrWaitTooLong = errors.New("wait between frames is too long")
)

// Validate returns an error for unknown policies.
func (p NegativeDeltaPolicy) Validate() error {
	switch p {
	case RejectNegativeDeltas, ClampNegativeDeltas:
		return nil
	default:
		return errors.Errorf("unknown negative delta policy %q, must be %q or %q", p, RejectNegativeDeltas, ClampNegativeDeltas)
	}
}

// FrameDurations returns how long to wait after displaying each frame: times[0] for the first
// frame and times[i]-times[i-1] afterwards. Every invalid timestamp is reported in the returned
// error, not just the first.
func FrameDurations(times []float64, policy NegativeDeltaPolicy) ([]time.Duration, error) {
	return frameDurations(times, policy, logging.NewBlankLogger("playback"))
}

func frameDurations(times []float64, policy NegativeDeltaPolicy, logger logging.Logger) ([]time.Duration, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	var errs error
	durations := make([]time.Duration, len(times))
	prev := 0.
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			errs = multierr.Append(errs, errors.Wrapf(ErrNonFiniteTimestamp, "timestamp %d (%v)", i, t))
			continue
		}
		delta := t - prev
		prev = t
		if delta >= 0 {
			d, ok := utils.SecondsToDuration(delta)
			if !ok {
				errs = multierr.Append(errs, errors.Wrapf(ErrWaitTooLong,
					"timestamp %d (%v) is %v seconds after the previous one, limit is %v", i, t, delta, utils.MaxDurationSeconds))
				continue
			}
			durations[i] = d
			continue
		}

		if policy == ClampNegativeDeltas {
			logger.Warnw("clamping negative wait to zero", "index", i, "timestamp", t, "delta", delta)
			continue
		}
		if i == 0 {
			errs = multierr.Append(errs, errors.Wrapf(ErrNegativeTimestamp, "timestamp 0 (%v)", t))
		} else {
			errs = multierr.Append(errs, errors.Wrapf(ErrDecreasingTimestamp,
				"timestamp %d (%v) precedes timestamp %d (%v)", i, t, i-1, times[i-1]))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return durations, nil
}
