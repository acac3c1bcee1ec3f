package framework

import (
	"time"

	"golang.org/x/exp/rand"
)

// Problem describes the contract a specific multi-objective problem needs to implement.
//
// CreateSolution may be called concurrently. Evaluate fills the objective and
// constraint arrays of the given solution and must not touch any other state;
// problems that cannot promise this have to be evaluated sequentially.
type Problem interface {
	Name() string

	NumberOfVariables() int
	NumberOfObjectives() int
	NumberOfConstraints() int

	CreateSolution(rng *rand.Rand) *Solution
	Evaluate(s *Solution) error
}

// ReferenceFronter is implemented by problems whose true front is known.
type ReferenceFronter interface {
	// TrueParetoFront samples numPoints points of the optimal front. It may
	// return nil when the front cannot be generated for the configured
	// number of objectives.
	TrueParetoFront(numPoints int) []ObjectiveSpacePoint
}

// Progress is the bookkeeping of a run, updated once per generation.
type Progress struct {
	Evaluations int
	Generation  int
	Elapsed     time.Duration
	// Population is the current population, or the archive contents for
	// archive based algorithms.
	Population []*Solution
}
