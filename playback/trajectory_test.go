package playback

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/kinutil/referenceframe"
)

func TestReadTrajectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traj.json")
	content := `{"poses": [[0, 0], [3, 4], [3, 4]], "times": [0.1, 0.3, 0.3]}`
	test.That(t, os.WriteFile(path, []byte(content), 0o600), test.ShouldBeNil)

	traj, err := ReadTrajectory(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, traj.Len(), test.ShouldEqual, 3)
	test.That(t, traj.Poses[1], test.ShouldResemble, referenceframe.FloatsToInputs([]float64{3, 4}))
	test.That(t, traj.Validate(RejectNegativeDeltas), test.ShouldBeNil)
	test.That(t, traj.Duration(), test.ShouldEqual, 0.3)
	test.That(t, traj.PathLength(), test.ShouldAlmostEqual, 5.0)

	intervals := traj.Intervals()
	test.That(t, len(intervals), test.ShouldEqual, 3)
	test.That(t, intervals[0], test.ShouldAlmostEqual, 0.1)
	test.That(t, intervals[1], test.ShouldAlmostEqual, 0.2)
	test.That(t, intervals[2], test.ShouldAlmostEqual, 0.0)

	data, err := json.Marshal(traj)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, `{"poses":[[0,0],[3,4],[3,4]],"times":[0.1,0.3,0.3]}`)
}

func TestReadTrajectoryErrors(t *testing.T) {
	_, err := ReadTrajectory(filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)

	path := filepath.Join(t.TempDir(), "bad.json")
	test.That(t, os.WriteFile(path, []byte(`{"poses": 3}`), 0o600), test.ShouldBeNil)
	_, err = ReadTrajectory(path)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "parsing trajectory")
}

func TestTrajectoryValidate(t *testing.T) {
	traj := Trajectory{
		Poses: [][]referenceframe.Input{
			referenceframe.FloatsToInputs([]float64{0, 0}),
			referenceframe.FloatsToInputs([]float64{1}),
		},
		Times: []float64{0.5, 0.2, 0.9},
	}
	err := traj.Validate(RejectNegativeDeltas)
	test.That(t, errors.Is(err, ErrLengthMismatch), test.ShouldBeTrue)
	test.That(t, errors.Is(err, ErrDecreasingTimestamp), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "pose 1")

	empty := Trajectory{}
	test.That(t, empty.Validate(RejectNegativeDeltas), test.ShouldBeNil)
	test.That(t, empty.Duration(), test.ShouldEqual, 0.0)
	test.That(t, empty.PathLength(), test.ShouldEqual, 0.0)
}

func TestTrajectoryMaxJointStep(t *testing.T) {
	traj := Trajectory{
		Poses: [][]referenceframe.Input{
			referenceframe.FloatsToInputs([]float64{0, 0}),
			referenceframe.FloatsToInputs([]float64{3, -4}),
			referenceframe.FloatsToInputs([]float64{3.5, -4}),
		},
		Times: []float64{0, 1, 2},
	}
	test.That(t, traj.MaxJointStep(), test.ShouldAlmostEqual, 4.0)
	test.That(t, Trajectory{}.MaxJointStep(), test.ShouldEqual, 0.0)
}

func TestTrajectoryFromDegrees(t *testing.T) {
	traj := Trajectory{
		Poses: [][]referenceframe.Input{referenceframe.FloatsToInputs([]float64{180, -90})},
		Times: []float64{0.5},
	}
	rad := traj.FromDegrees()
	test.That(t, rad.Times, test.ShouldResemble, traj.Times)
	test.That(t, rad.Poses[0][0].Value, test.ShouldAlmostEqual, math.Pi)
	test.That(t, rad.Poses[0][1].Value, test.ShouldAlmostEqual, -math.Pi/2)
	// the original is left untouched
	test.That(t, traj.Poses[0][0].Value, test.ShouldEqual, 180.0)
}

func TestTrajectoryInterpolate(t *testing.T) {
	traj := Trajectory{
		Poses: [][]referenceframe.Input{
			referenceframe.FloatsToInputs([]float64{0, 8}),
			referenceframe.FloatsToInputs([]float64{4, 0}),
			referenceframe.FloatsToInputs([]float64{4, 4}),
		},
		Times: []float64{0.2, 0.6, 1.0},
	}

	dense, err := traj.Interpolate(3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dense.Len(), test.ShouldEqual, 9)
	test.That(t, dense.Poses[0], test.ShouldResemble, traj.Poses[0])
	test.That(t, dense.Poses[2], test.ShouldResemble, referenceframe.FloatsToInputs([]float64{2, 4}))
	test.That(t, dense.Poses[4], test.ShouldResemble, traj.Poses[1])
	test.That(t, dense.Poses[8], test.ShouldResemble, traj.Poses[2])
	test.That(t, dense.Times[1], test.ShouldAlmostEqual, 0.3)
	test.That(t, dense.Times[4], test.ShouldAlmostEqual, 0.6)
	test.That(t, dense.Duration(), test.ShouldEqual, traj.Duration())
	test.That(t, dense.PathLength(), test.ShouldAlmostEqual, traj.PathLength())
	test.That(t, dense.Validate(RejectNegativeDeltas), test.ShouldBeNil)

	same, err := traj.Interpolate(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, same.Len(), test.ShouldEqual, 3)

	_, err = traj.Interpolate(-1)
	test.That(t, err, test.ShouldNotBeNil)

	mixed := Trajectory{
		Poses: [][]referenceframe.Input{
			referenceframe.FloatsToInputs([]float64{0, 0}),
			referenceframe.FloatsToInputs([]float64{1}),
		},
		Times: []float64{0, 1},
	}
	_, err = mixed.Interpolate(1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "pose 1")

	_, err = Trajectory{Poses: traj.Poses, Times: traj.Times[:2]}.Interpolate(1)
	test.That(t, errors.Is(err, ErrLengthMismatch), test.ShouldBeTrue)
}
