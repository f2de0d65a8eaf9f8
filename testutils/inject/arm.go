package inject

import (
	"context"

	"go.viam.com/kinutil/playback"
	"go.viam.com/kinutil/referenceframe"
)

// Arm is an injected arm.
type Arm struct {
	playback.Arm
	MoveToJointPositionsFunc func(ctx context.Context, positions []referenceframe.Input, extra map[string]interface{}) error
}

// MoveToJointPositions calls the injected MoveToJointPositions or the real version.
func (a *Arm) MoveToJointPositions(ctx context.Context, positions []referenceframe.Input, extra map[string]interface{}) error {
	if a.MoveToJointPositionsFunc == nil {
		return a.Arm.MoveToJointPositions(ctx, positions, extra)
	}
	return a.MoveToJointPositionsFunc(ctx, positions, extra)
}
