package ranking

import (
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Ranker splits a population into fronts of equal dominance depth.
type Ranker interface {
	Rank(population []*framework.Solution) *Ranking
}

// Ranking holds the fronts computed from one population snapshot. It is
// stale as soon as that population changes.
type Ranking struct {
	fronts [][]*framework.Solution
}

// Fronts returns all fronts, best first.
func (r *Ranking) Fronts() [][]*framework.Solution {
	return r.fronts
}

// Front returns front i. It panics if i is out of range.
func (r *Ranking) Front(i int) []*framework.Solution {
	return r.fronts[i]
}

func (r *Ranking) NumberOfFronts() int {
	return len(r.fronts)
}

// Size returns the number of ranked solutions.
func (r *Ranking) Size() int {
	n := 0
	for _, f := range r.fronts {
		n += len(f)
	}
	return n
}

// RankOf returns the rank written by the last ranking pass, or -1 when the
// solution was never ranked.
func RankOf(s *framework.Solution) int {
	if r, ok := s.Attributes().Int(framework.AttrRank); ok {
		return r
	}
	return -1
}

// FastNonDominatedSort performs non-dominated sorting using domination
// counts and dominated lists.
type FastNonDominatedSort struct {
	comparator dominance.Comparator
}

// NewFastNonDominatedSort uses the constrained Pareto comparator when cmp is nil.
func NewFastNonDominatedSort(cmp dominance.Comparator) *FastNonDominatedSort {
	if cmp == nil {
		cmp = dominance.Default()
	}
	return &FastNonDominatedSort{comparator: cmp}
}

// Rank sorts the population into fronts and tags each solution with its
// front index.
func (f *FastNonDominatedSort) Rank(population []*framework.Solution) *Ranking {
	if len(population) == 0 {
		return &Ranking{}
	}

	dominated := make([][]int, len(population))
	domCount := make([]int, len(population))

	// Calculate domination for each pair once
	for i := 0; i < len(population); i++ {
		for j := i + 1; j < len(population); j++ {
			switch f.comparator.Compare(population[i], population[j]) {
			case -1:
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			case 1:
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	var current []int
	for i := range population {
		if domCount[i] == 0 {
			current = append(current, i)
		}
	}

	var fronts [][]*framework.Solution
	for rank := 0; len(current) > 0; rank++ {
		front := make([]*framework.Solution, len(current))
		var next []int
		for k, idx := range current {
			population[idx].Attributes().SetInt(framework.AttrRank, rank)
			front[k] = population[idx]
			for _, d := range dominated[idx] {
				domCount[d]--
				if domCount[d] == 0 {
					next = append(next, d)
				}
			}
		}
		fronts = append(fronts, front)
		current = next
	}

	return &Ranking{fronts: fronts}
}
