// Package inject provides function-field implementations of kinutil interfaces for tests.
package inject

import (
	"context"

	"go.viam.com/kinutil/playback"
	"go.viam.com/kinutil/referenceframe"
)

// Sink is an injected playback sink.
type Sink struct {
	playback.Sink
	DisplayFunc func(ctx context.Context, pose []referenceframe.Input) error
}

// Display calls the injected Display or the real version.
func (s *Sink) Display(ctx context.Context, pose []referenceframe.Input) error {
	if s.DisplayFunc == nil {
		return s.Sink.Display(ctx, pose)
	}
	return s.DisplayFunc(ctx, pose)
}
