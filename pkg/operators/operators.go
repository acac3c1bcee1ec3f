// Package operators holds the variation operators. Crossovers never share
// variable storage between parents and offspring: offspring are deep copies
// with their attributes cleared. Mutations work in place on the solution
// they are given and return it; callers must not rely on either behaviour
// and should always use the returned solution.
package operators

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Crossover combines NumberOfParents parents into NumberOfOffspring
// offspring.
type Crossover interface {
	Apply(parents []*framework.Solution, rng *rand.Rand) ([]*framework.Solution, error)
	NumberOfParents() int
	NumberOfOffspring() int
}

// Mutation perturbs one solution.
type Mutation interface {
	Apply(s *framework.Solution, rng *rand.Rand) *framework.Solution
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return framework.InvalidConfigf("%s probability must be in [0,1], got %v", name, p)
	}
	return nil
}

// offspringOf copies two parents, clearing the stale attributes.
func offspringOf(parents []*framework.Solution) (*framework.Solution, *framework.Solution, error) {
	if len(parents) != 2 {
		return nil, nil, fmt.Errorf("crossover needs 2 parents, got %d", len(parents))
	}
	c1, c2 := parents[0].Copy(), parents[1].Copy()
	c1.Attributes().Clear()
	c2.Attributes().Clear()
	return c1, c2, nil
}

func encodingError(want string, v framework.Variables) error {
	return fmt.Errorf("operator needs %s variables, got %T", want, v)
}
