package norm

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/referenceframe"
)

func TestScalar(t *testing.T) {
	for _, v := range []float64{0, 2.5, -2.5, -1e-9} {
		n, err := Norm(v, nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldEqual, math.Abs(v))
	}
}

func TestVector(t *testing.T) {
	n, err := Norm([]float64{3, 4}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 5.0)

	n, err = Norm([]float64{1, 2, 2}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 3.0)

	n, err = Norm(referenceframe.FloatsToInputs([]float64{-3, 4}), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 5.0)

	n, err = Norm(r3.Vector{X: 2, Y: 3, Z: 6}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 7.0)

	// weights only apply to generators
	n, err = Norm([]float64{3, 4}, []float64{0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 5.0)
}

func TestEmptyVector(t *testing.T) {
	_, err := Norm([]float64{}, nil)
	test.That(t, err, test.ShouldBeError, ErrEmptyVector)

	_, err = Norm([]referenceframe.Input(nil), nil)
	test.That(t, err, test.ShouldBeError, ErrEmptyVector)

	_, err = Norm([]Generator{Constant([]float64{1}), Constant(nil)}, nil)
	test.That(t, errors.Is(err, ErrEmptyVector), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "generator 1")
}

func TestGenerators(t *testing.T) {
	gens := []Generator{Constant([]float64{3, 4}), Constant([]float64{0, 5})}

	n, err := Norm(gens, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 10.0)

	n, err = Norm([]Generator{}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 0.0)

	n, err = Norm(Constant([]float64{6, 8}), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 10.0)
}

func TestWeightedGenerators(t *testing.T) {
	gens := []Generator{Constant([]float64{3, 4}), Constant([]float64{0, 5})}

	t.Run("zero weight is excluded", func(t *testing.T) {
		n, err := Norm(gens, []float64{1.0, 0.0})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldAlmostEqual, 5.0)
	})

	t.Run("weights scale norms", func(t *testing.T) {
		n, err := Norm(gens, []float64{2.0, 0.5})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldAlmostEqual, 12.5)
	})

	t.Run("weights at the threshold are excluded", func(t *testing.T) {
		n, err := Norm(gens, []float64{DefaultWeightThreshold, -DefaultWeightThreshold})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldEqual, 0.0)

		n, err = Norm(gens, []float64{2 * DefaultWeightThreshold, 0})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldAlmostEqual, 10*DefaultWeightThreshold)
	})

	t.Run("negative weights subtract", func(t *testing.T) {
		n, err := Norm(gens, []float64{1, -1})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldAlmostEqual, 0.0)
	})

	t.Run("mismatched weights", func(t *testing.T) {
		_, err := Norm(gens, []float64{1})
		test.That(t, errors.Is(err, ErrWeightCountMismatch), test.ShouldBeTrue)
	})
}

func TestGeneratorSampling(t *testing.T) {
	var sampledWith []float64
	gen := Generator(func(deltaT float64) ([]float64, error) {
		sampledWith = append(sampledWith, deltaT)
		return []float64{deltaT * 100}, nil
	})

	n, err := Norm([]Generator{gen}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 1.0)
	test.That(t, sampledWith, test.ShouldResemble, []float64{DefaultSamplingInterval})

	// zero-weighted generators are still sampled
	sampledWith = nil
	_, err = Norm([]Generator{gen, gen}, []float64{0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(sampledWith), test.ShouldEqual, 2)

	e := NewEvaluator(logging.NewTestLogger(t), WithSamplingInterval(0.05), WithWeightThreshold(0.5))
	test.That(t, e.SamplingInterval(), test.ShouldEqual, 0.05)
	test.That(t, e.WeightThreshold(), test.ShouldEqual, 0.5)

	n, err = e.Norm([]Generator{gen, gen}, []float64{0.4, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldAlmostEqual, 5.0)
}

func TestGeneratorErrors(t *testing.T) {
	boom := errors.New("boom")
	gens := []Generator{
		Constant([]float64{1}),
		func(float64) ([]float64, error) { return nil, boom },
	}

	_, err := Norm(gens, nil)
	test.That(t, errors.Is(err, boom), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sampling generator 1")

	_, err = Norm([]Generator{nil}, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestUnsupportedInput(t *testing.T) {
	_, err := Norm("not a vector", nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "string")

	_, err = Norm(3, nil)
	test.That(t, err, test.ShouldNotBeNil)
}
