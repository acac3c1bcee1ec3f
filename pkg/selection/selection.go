// Package selection picks mating pools out of a population. Selection never
// copies: the pool holds pointers into the population, and the variation
// operators are responsible for copying before they modify anything.
package selection

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/ranking"
)

// Selection returns n parents drawn from population.
type Selection interface {
	Select(population []*framework.Solution, n int, rng *rand.Rand) ([]*framework.Solution, error)
}

func check(population []*framework.Solution, rng *rand.Rand) error {
	if rng == nil {
		return framework.ErrNilRandomSource
	}
	if len(population) == 0 {
		return framework.ErrEmptyPopulation
	}
	return nil
}

// RankAndDensity prefers the lower rank and breaks ties by density. It
// reads the attributes left by the last replacement.
type RankAndDensity struct {
	Estimator density.Estimator
}

func (r RankAndDensity) Compare(a, b *framework.Solution) int {
	ra, rb := ranking.RankOf(a), ranking.RankOf(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	if r.Estimator == nil {
		return 0
	}
	return density.Compare(r.Estimator, a, b)
}

// Tournament draws Size contenders uniformly with replacement and keeps the
// best one according to Comparator. On ties the earlier draw wins.
type Tournament struct {
	Size       int
	Comparator dominance.Comparator
}

// NewBinaryTournament compares by rank and crowding distance.
func NewBinaryTournament() *Tournament {
	return &Tournament{
		Size:       2,
		Comparator: RankAndDensity{Estimator: density.CrowdingDistance{}},
	}
}

func NewTournament(size int, cmp dominance.Comparator) (*Tournament, error) {
	if size < 1 {
		return nil, framework.InvalidConfigf("tournament size must be at least 1, got %d", size)
	}
	if cmp == nil {
		return nil, framework.InvalidConfigf("tournament needs a comparator")
	}
	return &Tournament{Size: size, Comparator: cmp}, nil
}

func (t *Tournament) Select(population []*framework.Solution, n int, rng *rand.Rand) ([]*framework.Solution, error) {
	if err := check(population, rng); err != nil {
		return nil, err
	}
	pool := make([]*framework.Solution, n)
	for i := range pool {
		pool[i] = t.pick(population, rng)
	}
	return pool, nil
}

func (t *Tournament) pick(candidates []*framework.Solution, rng *rand.Rand) *framework.Solution {
	best := candidates[rng.Intn(len(candidates))]
	for i := 1; i < t.Size; i++ {
		contender := candidates[rng.Intn(len(candidates))]
		if t.Comparator.Compare(contender, best) < 0 {
			best = contender
		}
	}
	return best
}

// Random draws uniformly with replacement.
type Random struct{}

func (Random) Select(population []*framework.Solution, n int, rng *rand.Rand) ([]*framework.Solution, error) {
	if err := check(population, rng); err != nil {
		return nil, err
	}
	pool := make([]*framework.Solution, n)
	for i := range pool {
		pool[i] = population[rng.Intn(len(population))]
	}
	return pool, nil
}
