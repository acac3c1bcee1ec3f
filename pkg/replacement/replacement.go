// Package replacement builds the next population out of parents and
// offspring.
package replacement

import (
	"errors"
	"fmt"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/ranking"
)

// ErrInsufficientPopulation is returned when parents and offspring together
// hold fewer solutions than the target size.
var ErrInsufficientPopulation = errors.New("not enough solutions to fill the population")

// Replacement selects the survivors of a generation. Survivors carry fresh
// rank and density attributes so that selection can read them.
type Replacement interface {
	Replace(parents, offspring []*framework.Solution) ([]*framework.Solution, error)
}

type config struct {
	ranker    ranking.Ranker
	estimator density.Estimator
	size      int
}

func newConfig(size int, r ranking.Ranker, e density.Estimator) (config, error) {
	if size < 1 {
		return config{}, framework.InvalidConfigf("population size must be at least 1, got %d", size)
	}
	if e == nil {
		return config{}, framework.InvalidConfigf("replacement needs a density estimator")
	}
	if r == nil {
		r = ranking.NewFastNonDominatedSort(nil)
	}
	return config{ranker: r, estimator: e, size: size}, nil
}

func (c config) union(parents, offspring []*framework.Solution) ([]*framework.Solution, error) {
	union := make([]*framework.Solution, 0, len(parents)+len(offspring))
	union = append(union, parents...)
	union = append(union, offspring...)
	if len(union) < c.size {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPopulation, len(union), c.size)
	}
	return union, nil
}

// RankingAndDensity fills the next population front by front. The first
// front that does not fit is truncated to its best members by density; ties
// keep their original order.
type RankingAndDensity struct {
	config
}

// NewRankingAndDensity uses fast non-dominated sorting when r is nil.
func NewRankingAndDensity(size int, r ranking.Ranker, e density.Estimator) (*RankingAndDensity, error) {
	c, err := newConfig(size, r, e)
	if err != nil {
		return nil, err
	}
	return &RankingAndDensity{config: c}, nil
}

func (r *RankingAndDensity) Replace(parents, offspring []*framework.Solution) ([]*framework.Solution, error) {
	union, err := r.union(parents, offspring)
	if err != nil {
		return nil, err
	}

	next := make([]*framework.Solution, 0, r.size)
	for _, front := range r.ranker.Rank(union).Fronts() {
		r.estimator.Compute(front)
		if len(next)+len(front) <= r.size {
			next = append(next, front...)
			if len(next) == r.size {
				break
			}
			continue
		}
		sorted := density.SortByDensity(r.estimator, front)
		next = append(next, sorted[:r.size-len(next)]...)
		break
	}
	return next, nil
}

// RemovalPolicy starts from the union and removes the worst member of the
// last front, one at a time, recomputing density on that front after every
// removal.
type RemovalPolicy struct {
	config
}

// NewRemovalPolicy uses fast non-dominated sorting when r is nil.
func NewRemovalPolicy(size int, r ranking.Ranker, e density.Estimator) (*RemovalPolicy, error) {
	c, err := newConfig(size, r, e)
	if err != nil {
		return nil, err
	}
	return &RemovalPolicy{config: c}, nil
}

func (r *RemovalPolicy) Replace(parents, offspring []*framework.Solution) ([]*framework.Solution, error) {
	union, err := r.union(parents, offspring)
	if err != nil {
		return nil, err
	}

	for len(union) > r.size {
		rk := r.ranker.Rank(union)
		last := rk.Front(rk.NumberOfFronts() - 1)
		r.estimator.Compute(last)
		worst := last[density.Worst(r.estimator, last)]
		union = without(union, worst)
	}

	for _, front := range r.ranker.Rank(union).Fronts() {
		r.estimator.Compute(front)
	}
	return union, nil
}

func without(population []*framework.Solution, s *framework.Solution) []*framework.Solution {
	for i, p := range population {
		if p == s {
			return append(population[:i:i], population[i+1:]...)
		}
	}
	return population
}
