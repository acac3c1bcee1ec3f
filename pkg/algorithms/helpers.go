package algorithms

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/evaluation"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/operators"
	"github.com/mihai-snyk/paretokit/pkg/termination"
)

func newEvaluator(cfg EvaluationConfig) evaluation.Evaluator {
	if cfg.ParallelExecution {
		return evaluation.Parallel{Workers: cfg.Workers}
	}
	return evaluation.Sequential{}
}

func newTermination(maxEvaluations, maxGenerations int) termination.Termination {
	var conditions []termination.Termination
	if maxEvaluations > 0 {
		conditions = append(conditions, termination.MaxEvaluations(maxEvaluations))
	}
	if maxGenerations > 0 {
		conditions = append(conditions, termination.MaxGenerations(maxGenerations))
	}
	return termination.Any(conditions...)
}

// defaultOperators picks the crossover and mutation matching the encoding
// the problem creates. A throwaway random source samples the encoding so
// that the run's stream is not consumed.
func defaultOperators(problem framework.Problem, cfg VariationConfig) (operators.Crossover, operators.Mutation, error) {
	if problem == nil {
		return nil, nil, framework.InvalidConfigf("algorithm needs a problem")
	}
	sample := problem.CreateSolution(rand.New(rand.NewSource(0)))

	var (
		c   operators.Crossover
		m   operators.Mutation
		err error
	)
	switch sample.Variables.(type) {
	case *framework.RealVariables:
		if c, err = operators.NewSBX(cfg.CrossoverProbability, cfg.CrossoverDistributionIndex); err == nil {
			m, err = operators.NewPolynomial(cfg.MutationProbability, cfg.MutationDistributionIndex)
		}
	case *framework.IntegerVariables:
		if c, err = operators.NewPointCrossover(cfg.CrossoverProbability, 2); err == nil {
			m, err = operators.NewIntegerReset(cfg.MutationProbability)
		}
	case *framework.BinaryVariables:
		if c, err = operators.NewPointCrossover(cfg.CrossoverProbability, 1); err == nil {
			m, err = operators.NewBitFlip(cfg.MutationProbability)
		}
	case *framework.PermutationVariables:
		if c, err = operators.NewPMX(cfg.CrossoverProbability); err == nil {
			m, err = operators.NewSwap(cfg.MutationProbability)
		}
	default:
		return nil, nil, fmt.Errorf("%w: unsupported variables %T", framework.ErrInvalidConfiguration, sample.Variables)
	}
	if err != nil {
		return nil, nil, err
	}
	return c, m, nil
}
