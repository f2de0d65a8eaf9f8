package inject

import (
	"context"
	"time"

	"go.viam.com/kinutil/playback"
)

// Sleeper is an injected playback sleeper.
type Sleeper struct {
	playback.Sleeper
	SleepFunc func(ctx context.Context, d time.Duration) error
}

// Sleep calls the injected Sleep or the real version.
func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if s.SleepFunc == nil {
		return s.Sleeper.Sleep(ctx, d)
	}
	return s.SleepFunc(ctx, d)
}
