package benchmarks

import (
	"context"
	"fmt"
	"math"
	"time"

	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/hypervolume"
	"github.com/mihai-snyk/paretokit/pkg/quality"
)

const (
	defaultFrontSize       = 500
	defaultReferenceOffset = 0.1
)

// Runner is a configured algorithm ready to solve one problem.
type Runner interface {
	Run(ctx context.Context) ([]*framework.Solution, error)
}

// Factory builds a Runner for a problem.
type Factory func(problem framework.Problem) (Runner, error)

// Result holds the scores of one algorithm on one problem. Hypervolume and
// IGD are NaN when the problem has no known front.
type Result struct {
	Problem     string
	Algorithm   string
	FrontSize   int
	Hypervolume float64
	IGD         float64
	Duration    time.Duration
}

// Suite runs a set of benchmark problems
type Suite struct {
	// FrontSize is the number of true front points sampled for scoring.
	FrontSize int
	// ReferenceOffset is added to the nadir of the true front to get the
	// hypervolume reference point.
	ReferenceOffset float64
	// Clock times each run.
	Clock clock.PassiveClock

	algorithm string
	factory   Factory
	problems  []framework.Problem
}

// NewSuite creates a new benchmark suite for the algorithm built by factory
func NewSuite(algorithm string, factory Factory) *Suite {
	return &Suite{
		FrontSize:       defaultFrontSize,
		ReferenceOffset: defaultReferenceOffset,
		Clock:           clock.RealClock{},
		algorithm:       algorithm,
		factory:         factory,
	}
}

// AddProblem adds a problem to the suite
func (s *Suite) AddProblem(p framework.Problem) {
	s.problems = append(s.problems, p)
}

// AddStandardProblems adds common benchmark problems
func (s *Suite) AddStandardProblems() {
	// ZDT problems with 30 variables (standard)
	s.AddProblem(NewZDT1(30))
	s.AddProblem(NewZDT2(30))
	s.AddProblem(NewZDT3(30))

	// 2 objectives, 7 variables (M + k - 1, where k=5 for DTLZ1)
	s.AddProblem(NewDTLZ1(7, 2))
	// 2 objectives, 12 variables (M + k - 1, where k=10 for DTLZ2)
	s.AddProblem(NewDTLZ2(12, 2))

	// 3 objectives versions
	s.AddProblem(NewDTLZ1(8, 3))
	s.AddProblem(NewDTLZ2(13, 3))

	s.AddProblem(NewConstrEx())
}

// Run solves every problem in order and scores the non-dominated part of
// each result. It stops at the first failing run.
func (s *Suite) Run(ctx context.Context) ([]Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", s.algorithm)
	results := make([]Result, 0, len(s.problems))

	for _, problem := range s.problems {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.V(1).Info("Running benchmark", "problem", problem.Name())

		runner, err := s.factory(problem)
		if err != nil {
			return results, fmt.Errorf("configuring %s for %s: %w", s.algorithm, problem.Name(), err)
		}
		start := s.Clock.Now()
		population, err := runner.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("running %s on %s: %w", s.algorithm, problem.Name(), err)
		}

		result := s.score(problem, dominance.NonDominated(population, dominance.Default()))
		result.Duration = s.Clock.Since(start)
		results = append(results, result)

		logger.Info("Benchmark complete",
			"problem", result.Problem,
			"frontSize", result.FrontSize,
			"hypervolume", result.Hypervolume,
			"igd", result.IGD,
			"duration", result.Duration,
		)
	}
	return results, nil
}

func (s *Suite) score(problem framework.Problem, front []*framework.Solution) Result {
	result := Result{
		Problem:     problem.Name(),
		Algorithm:   s.algorithm,
		FrontSize:   len(front),
		Hypervolume: math.NaN(),
		IGD:         math.NaN(),
	}
	fronter, ok := problem.(framework.ReferenceFronter)
	if !ok {
		return result
	}
	trueFront := Points(fronter.TrueParetoFront(s.FrontSize))
	if len(trueFront) == 0 {
		return result
	}

	obtained := framework.ObjectiveValues(front)
	reference := hypervolume.ReferencePoint(trueFront, s.ReferenceOffset)
	result.Hypervolume = quality.Hypervolume{Reference: reference}.Value(obtained)
	result.IGD = quality.IGD{Reference: trueFront}.Value(obtained)
	return result
}
