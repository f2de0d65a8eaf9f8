package cli

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinutil/norm"
)

// NormAction is the corresponding action for 'norm'. A single vector prints its norm; several
// vectors print the sum of their norms, weighted when --weights is set.
func NormAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("norm requires at least one vector")
	}
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}
	evaluator := cfg.NewEvaluator(logger.Sublogger("norm"))

	var weights []float64
	if c.IsSet(normFlagWeights) {
		weights, err = parseFloats(c.String(normFlagWeights))
		if err != nil {
			return errors.Wrap(err, "parsing weights")
		}
	}

	vectors := make([][]float64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		v, err := parseFloats(arg)
		if err != nil {
			return err
		}
		vectors = append(vectors, v)
	}

	var result float64
	if len(vectors) == 1 && weights == nil {
		result, err = evaluator.Norm(vectors[0], nil)
	} else {
		gens := make([]norm.Generator, 0, len(vectors))
		for _, v := range vectors {
			gens = append(gens, norm.Constant(v))
		}
		result, err = evaluator.Norm(gens, weights)
	}
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%v", result)
	return nil
}
