// Package density assigns diversity scores to the members of a front.
//
// Each estimator declares its own Sense. Crowding distance, k-nearest
// neighbour distance and hypervolume contribution all grow with isolation,
// so larger values are better to keep. Code that sorts or evicts by density
// must go through Compare, SortByDensity or Worst so that it honours the
// sense of the estimator it is given.
package density

import (
	"sort"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Sense tells which end of an estimator's scale is preferred.
type Sense int

const (
	LargerIsBetter Sense = iota
	SmallerIsBetter
)

// Estimator computes a density value for every member of a front and stores
// it on the solutions. Values from a previous Compute are overwritten.
type Estimator interface {
	Compute(front []*framework.Solution)
	Value(s *framework.Solution) float64
	Sense() Sense
}

// Compare returns -1 when a is preferred over b by e, +1 when b is
// preferred, and 0 on ties.
func Compare(e Estimator, a, b *framework.Solution) int {
	va, vb := e.Value(a), e.Value(b)
	if e.Sense() == SmallerIsBetter {
		va, vb = vb, va
	}
	switch {
	case va > vb:
		return -1
	case va < vb:
		return 1
	}
	return 0
}

// SortByDensity returns a copy of front ordered best first. Ties keep their
// original order. Compute must have been called on front.
func SortByDensity(e Estimator, front []*framework.Solution) []*framework.Solution {
	sorted := append([]*framework.Solution(nil), front...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(e, sorted[i], sorted[j]) < 0
	})
	return sorted
}

// Worst returns the index of the least valuable member of front, or -1 for
// an empty front. On ties the later member is returned, so that the earlier
// ones survive. Compute must have been called on front.
func Worst(e Estimator, front []*framework.Solution) int {
	worst := -1
	for i, s := range front {
		if worst < 0 || Compare(e, s, front[worst]) >= 0 {
			worst = i
		}
	}
	return worst
}

func floatAttribute(s *framework.Solution, key framework.AttributeKey) float64 {
	v, _ := s.Attributes().Float(key)
	return v
}
