package playback

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Sleeper blocks the calling goroutine between frames.
type Sleeper interface {
	// Sleep blocks for d, or until ctx is done. It returns ctx.Err() if ctx ended the wait.
	Sleep(ctx context.Context, d time.Duration) error
}

type clockSleeper struct {
	clock clock.Clock
}

// NewClockSleeper returns a Sleeper that waits on timers created from c. Passing a mock clock
// lets tests control elapsed time.
func NewClockSleeper(c clock.Clock) Sleeper {
	return &clockSleeper{clock: c}
}

func (s *clockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := s.clock.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
