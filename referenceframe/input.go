// Package referenceframe defines the joint-space pose representation shared by the kinutil
// packages.
package referenceframe

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"go.viam.com/kinutil/utils"
)

// Input wraps the input to a mutable frame, e.g. a joint angle or a gantry position.
//   - revolute inputs should be in radians.
//   - prismatic inputs should be in mm.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(floats []float64) []Input {
	inputs := make([]Input, len(floats))
	for i, f := range floats {
		inputs[i] = Input{f}
	}
	return inputs
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	floats := make([]float64, len(inputs))
	for i, f := range inputs {
		floats[i] = f.Value
	}
	return floats
}

// InputsFromDegrees converts joint values given in degrees to radian Inputs.
func InputsFromDegrees(degrees []float64) []Input {
	inputs := make([]Input, len(degrees))
	for i, d := range degrees {
		inputs[i] = Input{utils.DegToRad(d)}
	}
	return inputs
}

// InputsToDegrees converts radian Inputs to joint values in degrees.
func InputsToDegrees(inputs []Input) []float64 {
	degrees := make([]float64, len(inputs))
	for i, in := range inputs {
		degrees[i] = utils.RadToDeg(in.Value)
	}
	return degrees
}

// InterpolateInputs will return a set of inputs that are the specified percent between the two given sets of
// inputs. For example, setting by to 0.5 will return the inputs halfway between the from/to values, and 0.25 would
// return one quarter of the way from "from" to "to".
func InterpolateInputs(from, to []Input, by float64) ([]Input, error) {
	if len(from) != len(to) {
		return nil, NewIncorrectDoFError(len(to), len(from))
	}
	newVals := make([]Input, 0, len(from))
	for i, j1 := range from {
		newVals = append(newVals, Input{j1.Value + ((to[i].Value - j1.Value) * by)})
	}
	return newVals, nil
}

// InputsL2Distance returns the two-norm (the sqrt of the sum of the squares) between two Input sets.
// Mismatched lengths are infinitely far apart.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	diff := make([]float64, 0, len(from))
	for i, f := range from {
		diff = append(diff, f.Value-to[i].Value)
	}
	// 2 is the L value returning a standard L2 Normalization
	return floats.Norm(diff, 2)
}

// InputsLinfDistance returns the largest absolute difference between any pair of joints.
func InputsLinfDistance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	diff := make([]float64, 0, len(from))
	for i, f := range from {
		diff = append(diff, f.Value-to[i].Value)
	}
	return floats.Norm(diff, math.Inf(1))
}
