package replacement

import (
	"fmt"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/ranking"
)

// Cellular is the synchronous replacement of a cellular algorithm: the i-th
// offspring competes only with the i-th cell and takes its place unless the
// cell dominates it. The population size never changes. Ranks and density
// are recomputed over the whole grid afterwards.
type Cellular struct {
	comparator dominance.Comparator
	ranker     ranking.Ranker
	estimator  density.Estimator
}

// NewCellular uses the constrained Pareto comparator when cmp is nil.
func NewCellular(cmp dominance.Comparator, e density.Estimator) (*Cellular, error) {
	if e == nil {
		return nil, framework.InvalidConfigf("replacement needs a density estimator")
	}
	if cmp == nil {
		cmp = dominance.Default()
	}
	return &Cellular{
		comparator: cmp,
		ranker:     ranking.NewFastNonDominatedSort(cmp),
		estimator:  e,
	}, nil
}

// Replace with no offspring only refreshes the attributes of parents.
func (c *Cellular) Replace(parents, offspring []*framework.Solution) ([]*framework.Solution, error) {
	if len(offspring) != 0 && len(offspring) != len(parents) {
		return nil, fmt.Errorf("cellular replacement needs one offspring per cell, got %d for %d cells", len(offspring), len(parents))
	}

	next := append([]*framework.Solution(nil), parents...)
	for i, child := range offspring {
		if c.comparator.Compare(parents[i], child) >= 0 {
			next[i] = child
		}
	}
	for _, front := range c.ranker.Rank(next).Fronts() {
		c.estimator.Compute(front)
	}
	return next, nil
}
