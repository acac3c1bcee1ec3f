package operators

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Variation turns a mating pool into offspring by applying the crossover to
// consecutive groups of parents and mutating every child.
type Variation struct {
	Crossover     Crossover
	Mutation      Mutation
	OffspringSize int
	// KeepChildren, when positive, caps how many children of each crossover
	// are kept. With 1, offspring i comes from the i-th group of parents.
	KeepChildren int
}

func NewVariation(c Crossover, m Mutation, offspringSize int) (*Variation, error) {
	if c == nil || m == nil {
		return nil, framework.InvalidConfigf("variation needs a crossover and a mutation")
	}
	if offspringSize < 1 {
		return nil, framework.InvalidConfigf("offspring size must be at least 1, got %d", offspringSize)
	}
	return &Variation{Crossover: c, Mutation: m, OffspringSize: offspringSize}, nil
}

// MatingPoolSize is the number of parents Apply consumes.
func (v *Variation) MatingPoolSize() int {
	per := v.childrenPerGroup()
	groups := (v.OffspringSize + per - 1) / per
	return groups * v.Crossover.NumberOfParents()
}

// Apply returns exactly OffspringSize offspring. Surplus children of the
// last crossover are discarded.
func (v *Variation) Apply(pool []*framework.Solution, rng *rand.Rand) ([]*framework.Solution, error) {
	if rng == nil {
		return nil, framework.ErrNilRandomSource
	}
	if len(pool) < v.MatingPoolSize() {
		return nil, fmt.Errorf("mating pool holds %d parents, need %d", len(pool), v.MatingPoolSize())
	}

	k := v.Crossover.NumberOfParents()
	offspring := make([]*framework.Solution, 0, v.OffspringSize)
	for i := 0; len(offspring) < v.OffspringSize; i += k {
		children, err := v.Crossover.Apply(pool[i:i+k], rng)
		if err != nil {
			return nil, fmt.Errorf("crossover: %w", err)
		}
		if len(children) > v.childrenPerGroup() {
			children = children[:v.childrenPerGroup()]
		}
		for _, c := range children {
			if len(offspring) == v.OffspringSize {
				break
			}
			offspring = append(offspring, v.Mutation.Apply(c, rng))
		}
	}
	return offspring, nil
}

func (v *Variation) childrenPerGroup() int {
	per := v.Crossover.NumberOfOffspring()
	if v.KeepChildren > 0 && v.KeepChildren < per {
		return v.KeepChildren
	}
	return per
}
