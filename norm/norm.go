// Package norm computes Euclidean norms of scalars, vectors and lazily sampled vector generators.
package norm

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/referenceframe"
	"go.viam.com/kinutil/utils"
)

const (
	// DefaultSamplingInterval is the delta t handed to every Generator when it is sampled.
	DefaultSamplingInterval = 0.01
	// DefaultWeightThreshold is the magnitude at or below which a weight is treated as zero.
	DefaultWeightThreshold = 1e-5
)

var (
	// ErrEmptyVector is returned when a norm is requested on a zero length vector.
	ErrEmptyVector = errors.New("vector of length zero supplied")
	// ErrWeightCountMismatch is returned when weights are not aligned one-to-one with generators.
	ErrWeightCountMismatch = errors.New("number of weights does not match number of generators")
)

// Generator produces a vector when sampled with the given interval, in seconds.
type Generator func(deltaT float64) ([]float64, error)

// Constant returns a Generator that always yields v, regardless of the sampling interval.
func Constant(v []float64) Generator {
	return func(float64) ([]float64, error) {
		return v, nil
	}
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithSamplingInterval sets the delta t generators are sampled with.
func WithSamplingInterval(deltaT float64) Option {
	return func(e *Evaluator) {
		e.samplingInterval = deltaT
	}
}

// WithWeightThreshold sets the magnitude at or below which weights are ignored.
func WithWeightThreshold(threshold float64) Option {
	return func(e *Evaluator) {
		e.weightThreshold = threshold
	}
}

// Evaluator computes norms. The zero value is not usable; construct one with NewEvaluator.
type Evaluator struct {
	samplingInterval float64
	weightThreshold  float64
	logger           logging.Logger
}

// NewEvaluator returns an Evaluator using the default sampling interval and weight threshold
// unless overridden by opts.
func NewEvaluator(logger logging.Logger, opts ...Option) *Evaluator {
	e := &Evaluator{
		samplingInterval: DefaultSamplingInterval,
		weightThreshold:  DefaultWeightThreshold,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator(logging.NewBlankLogger("norm"))

// Norm computes the norm of input with the default Evaluator. See Evaluator.Norm.
func Norm(input interface{}, weights []float64) (float64, error) {
	return defaultEvaluator.Norm(input, weights)
}

// SamplingInterval returns the delta t generators are sampled with.
func (e *Evaluator) SamplingInterval() float64 {
	return e.samplingInterval
}

// WeightThreshold returns the magnitude at or below which weights are ignored.
func (e *Evaluator) WeightThreshold() float64 {
	return e.weightThreshold
}

// Norm computes the Euclidean norm of input, which may be:
//   - a float64, whose norm is its absolute value.
//   - a []float64, []referenceframe.Input or r3.Vector.
//   - a Generator or []Generator, whose sampled norms are summed. When weights are given they must
//     align with the generators and the result is the weighted sum of norms.
//
// weights are ignored for inputs that are not generators.
func (e *Evaluator) Norm(input interface{}, weights []float64) (float64, error) {
	switch v := input.(type) {
	case float64:
		return e.Scalar(v), nil
	case []float64:
		return e.Vector(v)
	case []referenceframe.Input:
		return e.Vector(referenceframe.InputsToFloats(v))
	case r3.Vector:
		return v.Norm(), nil
	case Generator:
		return e.generators([]Generator{v}, weights)
	case func(float64) ([]float64, error):
		return e.generators([]Generator{v}, weights)
	case []Generator:
		return e.generators(v, weights)
	default:
		return math.NaN(), utils.NewUnsupportedInputError("norm", input)
	}
}

func (e *Evaluator) generators(gens []Generator, weights []float64) (float64, error) {
	if weights == nil {
		return e.Generators(gens)
	}
	return e.WeightedGenerators(gens, weights)
}

// Scalar returns the norm of a single value, its absolute value.
func (e *Evaluator) Scalar(v float64) float64 {
	return math.Abs(v)
}

// Vector returns the Euclidean norm of v.
func (e *Evaluator) Vector(v []float64) (float64, error) {
	if len(v) == 0 {
		return math.NaN(), ErrEmptyVector
	}
	// 2 is the L value returning a standard L2 Normalization
	return floats.Norm(v, 2), nil
}

// Generators samples every generator and returns the sum of the norms of the produced vectors.
// An empty list has a norm of zero.
func (e *Evaluator) Generators(gens []Generator) (float64, error) {
	norms, err := e.sample(gens)
	if err != nil {
		return math.NaN(), err
	}
	return floats.Sum(norms), nil
}

// WeightedGenerators samples every generator and returns the sum of each weight multiplied by the
// norm of its generator's vector. Generators whose weight magnitude is at or below the weight
// threshold are still sampled but contribute nothing.
func (e *Evaluator) WeightedGenerators(gens []Generator, weights []float64) (float64, error) {
	if len(weights) != len(gens) {
		return math.NaN(), errors.Wrapf(ErrWeightCountMismatch, "got %d weights for %d generators", len(weights), len(gens))
	}
	norms, err := e.sample(gens)
	if err != nil {
		return math.NaN(), err
	}

	kept := make([]float64, 0, len(norms))
	keptWeights := make([]float64, 0, len(norms))
	for i, w := range weights {
		if math.Abs(w) <= e.weightThreshold {
			e.logger.Debugw("ignoring generator with negligible weight", "index", i, "weight", w)
			continue
		}
		kept = append(kept, norms[i])
		keptWeights = append(keptWeights, w)
	}
	return floats.Dot(keptWeights, kept), nil
}

func (e *Evaluator) sample(gens []Generator) ([]float64, error) {
	norms := make([]float64, 0, len(gens))
	for i, gen := range gens {
		if gen == nil {
			return nil, errors.Errorf("generator %d is nil", i)
		}
		vec, err := gen(e.samplingInterval)
		if err != nil {
			return nil, errors.Wrapf(err, "sampling generator %d", i)
		}
		n, err := e.Vector(vec)
		if err != nil {
			return nil, errors.Wrapf(err, "generator %d", i)
		}
		norms = append(norms, n)
	}
	return norms, nil
}
