package playback

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/kinutil/referenceframe"
)

// Trajectory is an ordered sequence of poses paired index-for-index with timestamps in seconds.
type Trajectory struct {
	Poses [][]referenceframe.Input
	Times []float64
}

type trajectoryJSON struct {
	Poses [][]float64 `json:"poses"`
	Times []float64   `json:"times"`
}

// MarshalJSON writes poses as raw joint values.
func (t Trajectory) MarshalJSON() ([]byte, error) {
	poses := make([][]float64, 0, len(t.Poses))
	for _, pose := range t.Poses {
		poses = append(poses, referenceframe.InputsToFloats(pose))
	}
	return json.Marshal(trajectoryJSON{Poses: poses, Times: t.Times})
}

// UnmarshalJSON reads the form written by MarshalJSON.
func (t *Trajectory) UnmarshalJSON(data []byte) error {
	var raw trajectoryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Poses = make([][]referenceframe.Input, 0, len(raw.Poses))
	for _, pose := range raw.Poses {
		t.Poses = append(t.Poses, referenceframe.FloatsToInputs(pose))
	}
	t.Times = raw.Times
	return nil
}

// ReadTrajectory reads a JSON trajectory file of the form
// {"poses": [[j0, j1, ...], ...], "times": [t0, ...]}.
func ReadTrajectory(path string) (Trajectory, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return Trajectory{}, errors.Wrap(err, "reading trajectory")
	}
	var traj Trajectory
	if err := json.Unmarshal(data, &traj); err != nil {
		return Trajectory{}, errors.Wrapf(err, "parsing trajectory %q", path)
	}
	return traj, nil
}

// Len returns the number of frames.
func (t Trajectory) Len() int {
	return len(t.Poses)
}

// Validate checks that poses and timestamps pair up, that every pose has the same number of
// inputs, and that the timestamps are acceptable under policy.
func (t Trajectory) Validate(policy NegativeDeltaPolicy) error {
	var errs error
	if len(t.Poses) != len(t.Times) {
		errs = multierr.Append(errs, errors.Wrapf(ErrLengthMismatch, "got %d poses and %d timestamps", len(t.Poses), len(t.Times)))
	}
	for i, pose := range t.Poses {
		if len(pose) != len(t.Poses[0]) {
			errs = multierr.Append(errs, errors.Wrapf(
				referenceframe.NewIncorrectDoFError(len(pose), len(t.Poses[0])), "pose %d", i))
		}
	}
	if _, err := FrameDurations(t.Times, policy); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// Duration returns the final timestamp, which is the total playback time, or zero when empty.
func (t Trajectory) Duration() float64 {
	if len(t.Times) == 0 {
		return 0
	}
	return t.Times[len(t.Times)-1]
}

// Intervals returns the wait after each frame in seconds, as Play would compute it without
// clamping.
func (t Trajectory) Intervals() []float64 {
	intervals := make([]float64, len(t.Times))
	prev := 0.
	for i, ts := range t.Times {
		intervals[i] = ts - prev
		prev = ts
	}
	return intervals
}

// PathLength returns the sum of the joint-space L2 distances between consecutive poses.
func (t Trajectory) PathLength() float64 {
	total := 0.
	for i := 1; i < len(t.Poses); i++ {
		total += referenceframe.InputsL2Distance(t.Poses[i-1], t.Poses[i])
	}
	return total
}

// MaxJointStep returns the largest change of any single joint between consecutive poses.
func (t Trajectory) MaxJointStep() float64 {
	largest := 0.
	for i := 1; i < len(t.Poses); i++ {
		largest = math.Max(largest, referenceframe.InputsLinfDistance(t.Poses[i-1], t.Poses[i]))
	}
	return largest
}

// FromDegrees returns a copy of t with every joint value converted from degrees to radians.
func (t Trajectory) FromDegrees() Trajectory {
	poses := make([][]referenceframe.Input, 0, len(t.Poses))
	for _, pose := range t.Poses {
		poses = append(poses, referenceframe.InputsFromDegrees(referenceframe.InputsToFloats(pose)))
	}
	return Trajectory{Poses: poses, Times: t.Times}
}

// Interpolate returns a copy of t with steps evenly spaced poses inserted between each pair of
// consecutive poses. Inserted timestamps are spaced the same way, so the total duration is kept.
func (t Trajectory) Interpolate(steps int) (Trajectory, error) {
	if steps < 0 {
		return Trajectory{}, errors.Errorf("interpolation steps cannot be negative, got %d", steps)
	}
	if len(t.Poses) != len(t.Times) {
		return Trajectory{}, errors.Wrapf(ErrLengthMismatch, "got %d poses and %d timestamps", len(t.Poses), len(t.Times))
	}
	if steps == 0 || len(t.Poses) < 2 {
		return t, nil
	}

	size := len(t.Poses) + (len(t.Poses)-1)*steps
	out := Trajectory{
		Poses: make([][]referenceframe.Input, 0, size),
		Times: make([]float64, 0, size),
	}
	for i := 1; i < len(t.Poses); i++ {
		from, to := t.Poses[i-1], t.Poses[i]
		start, end := t.Times[i-1], t.Times[i]
		out.Poses = append(out.Poses, from)
		out.Times = append(out.Times, start)
		for k := 1; k <= steps; k++ {
			by := float64(k) / float64(steps+1)
			pose, err := referenceframe.InterpolateInputs(from, to, by)
			if err != nil {
				return Trajectory{}, errors.Wrapf(err, "pose %d", i)
			}
			out.Poses = append(out.Poses, pose)
			out.Times = append(out.Times, start+(end-start)*by)
		}
	}
	out.Poses = append(out.Poses, t.Poses[len(t.Poses)-1])
	out.Times = append(out.Times, t.Times[len(t.Times)-1])
	return out, nil
}
