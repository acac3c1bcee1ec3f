// Package initialization creates the first population of a run, either
// randomly or from known solutions such as the current state of the system
// being optimized.
package initialization

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Initializer returns size unevaluated solutions.
type Initializer interface {
	Initialize(ctx context.Context, problem framework.Problem, size int, rng *rand.Rand) ([]*framework.Solution, error)
}

func check(problem framework.Problem, size int, rng *rand.Rand) error {
	if rng == nil {
		return framework.ErrNilRandomSource
	}
	if problem == nil {
		return framework.InvalidConfigf("initialization needs a problem")
	}
	if size < 1 {
		return framework.InvalidConfigf("population size must be at least 1, got %d", size)
	}
	return nil
}

// Random asks the problem for size random solutions.
type Random struct{}

func (Random) Initialize(_ context.Context, problem framework.Problem, size int, rng *rand.Rand) ([]*framework.Solution, error) {
	if err := check(problem, size, rng); err != nil {
		return nil, err
	}
	population := make([]*framework.Solution, size)
	for i := range population {
		population[i] = problem.CreateSolution(rng)
	}
	return population, nil
}

// Seeded copies Seeds into the first slots and fills the rest randomly.
// Seeds past size are ignored.
type Seeded struct {
	Seeds []*framework.Solution
}

func (s Seeded) Initialize(ctx context.Context, problem framework.Problem, size int, rng *rand.Rand) ([]*framework.Solution, error) {
	logger := klog.FromContext(ctx)
	if err := check(problem, size, rng); err != nil {
		return nil, err
	}

	population := make([]*framework.Solution, 0, size)
	for i, seed := range s.Seeds {
		if len(population) == size {
			break
		}
		if seed.Variables == nil || seed.Variables.Len() != problem.NumberOfVariables() {
			return nil, framework.InvalidConfigf("seed %d does not have %d variables", i, problem.NumberOfVariables())
		}
		c := seed.Copy()
		c.Attributes().Clear()
		population = append(population, c)
	}
	seeded := len(population)
	for len(population) < size {
		population = append(population, problem.CreateSolution(rng))
	}

	unique := make(map[string]bool, size)
	for _, sol := range population {
		unique[fmt.Sprintf("%v", sol.Variables)] = true
	}
	logger.V(2).Info("Generated initial population", "size", size, "seeded", seeded, "unique", len(unique))
	return population, nil
}
