package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.viam.com/kinutil/playback"
	"go.viam.com/kinutil/referenceframe"
)

// plotTrajectory draws one line per joint, value against timestamp, and saves it to path. The
// image format follows the file extension. With degrees set, joint values are treated as radians
// and drawn in degrees.
func plotTrajectory(traj playback.Trajectory, path string, degrees bool) error {
	if traj.Len() == 0 {
		return errors.New("cannot plot an empty trajectory")
	}

	p := plot.New()
	p.Title.Text = "joint values"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "value"
	value := referenceframe.InputsToFloats
	if degrees {
		p.Y.Label.Text = "value (deg)"
		value = referenceframe.InputsToDegrees
	}

	for joint := range traj.Poses[0] {
		pts := make(plotter.XYs, traj.Len())
		for i, pose := range traj.Poses {
			pts[i].X = traj.Times[i]
			pts[i].Y = value(pose)[joint]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrapf(err, "joint %d", joint)
		}
		line.Color = plotutil.Color(joint)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("joint %d", joint), line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
