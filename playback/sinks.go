package playback

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/referenceframe"
)

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, pose []referenceframe.Input) error

// Display calls f.
func (f SinkFunc) Display(ctx context.Context, pose []referenceframe.Input) error {
	return f(ctx, pose)
}

type loggingSink struct {
	logger logging.Logger
	frame  int
}

// NewLoggingSink returns a Sink that logs every pose at info level.
func NewLoggingSink(logger logging.Logger) Sink {
	return &loggingSink{logger: logger}
}

func (s *loggingSink) Display(ctx context.Context, pose []referenceframe.Input) error {
	s.logger.Infow("pose", "frame", s.frame, "inputs", referenceframe.InputsToFloats(pose))
	s.frame++
	return nil
}

// Arm is the subset of an arm component a Sink needs to move it through a trajectory.
type Arm interface {
	MoveToJointPositions(ctx context.Context, positions []referenceframe.Input, extra map[string]interface{}) error
}

type armSink struct {
	arm   Arm
	extra map[string]interface{}
}

// NewArmSink returns a Sink that commands arm to each pose. extra is passed through on every move.
func NewArmSink(arm Arm, extra map[string]interface{}) Sink {
	return &armSink{arm: arm, extra: extra}
}

func (s *armSink) Display(ctx context.Context, pose []referenceframe.Input) error {
	return s.arm.MoveToJointPositions(ctx, pose, s.extra)
}

// FrameRecord is the JSON form of one displayed frame.
type FrameRecord struct {
	Frame  int       `json:"frame"`
	Inputs []float64 `json:"inputs"`
}

type jsonSink struct {
	enc   *json.Encoder
	frame int
}

// NewJSONSink returns a Sink that writes one FrameRecord per line to w. It is not safe for
// concurrent use.
func NewJSONSink(w io.Writer) Sink {
	return &jsonSink{enc: json.NewEncoder(w)}
}

func (s *jsonSink) Display(ctx context.Context, pose []referenceframe.Input) error {
	if err := s.enc.Encode(FrameRecord{Frame: s.frame, Inputs: referenceframe.InputsToFloats(pose)}); err != nil {
		return errors.Wrap(err, "encoding frame")
	}
	s.frame++
	return nil
}

type multiSink []Sink

// MultiSink returns a Sink that displays every pose on each of sinks in order. All sinks are
// called even if one fails; their errors are combined.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (ms multiSink) Display(ctx context.Context, pose []referenceframe.Input) error {
	var errs error
	for _, s := range ms {
		errs = multierr.Append(errs, s.Display(ctx, pose))
	}
	return errs
}
