// Package dominance implements the comparators used to order solutions:
// plain Pareto dominance, constraint violation, and the epsilon and
// g-dominance variants.
//
// Every comparator returns -1 when a dominates b, +1 when b dominates a and 0
// when neither dominates. Objectives are minimized.
package dominance

import (
	"fmt"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Comparator orders two solutions.
type Comparator interface {
	Compare(a, b *framework.Solution) int
}

// ComparatorFunc adapts a function to the Comparator interface.
type ComparatorFunc func(a, b *framework.Solution) int

func (f ComparatorFunc) Compare(a, b *framework.Solution) int {
	return f(a, b)
}

// Default returns the constrained Pareto comparator.
func Default() Comparator {
	return Constrained{}
}

// Pareto compares objectives only.
type Pareto struct{}

func (Pareto) Compare(a, b *framework.Solution) int {
	return ComparePoints(a.Objectives, b.Objectives)
}

// ComparePoints performs the Pareto test on two objective vectors.
// It panics with an error wrapping framework.ErrObjectiveMismatch when the
// vectors have different lengths.
func ComparePoints(a, b []float64) int {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: %d != %d", framework.ErrObjectiveMismatch, len(a), len(b)))
	}
	aBetter, bBetter := false, false
	for i := range a {
		if a[i] < b[i] {
			aBetter = true
		} else if b[i] < a[i] {
			bBetter = true
		}
		if aBetter && bBetter {
			return 0
		}
	}
	switch {
	case aBetter:
		return -1
	case bBetter:
		return 1
	}
	return 0
}

// ConstraintViolation prefers the solution with the smaller overall
// constraint violation.
type ConstraintViolation struct{}

func (ConstraintViolation) Compare(a, b *framework.Solution) int {
	va, vb := a.OverallViolation(), b.OverallViolation()
	switch {
	case va < vb:
		return -1
	case va > vb:
		return 1
	}
	return 0
}

// Constrained applies ConstraintViolation first and falls back to Pareto
// when both solutions are equally (in)feasible.
type Constrained struct{}

func (Constrained) Compare(a, b *framework.Solution) int {
	if c := (ConstraintViolation{}).Compare(a, b); c != 0 {
		return c
	}
	return Pareto{}.Compare(a, b)
}

// Dominates reports whether a dominates b under cmp.
func Dominates(cmp Comparator, a, b *framework.Solution) bool {
	return cmp.Compare(a, b) < 0
}

// NonDominated returns the members of population not dominated by any other
// member, in their original order.
func NonDominated(population []*framework.Solution, cmp Comparator) []*framework.Solution {
	var front []*framework.Solution
	for i, candidate := range population {
		dominated := false
		for j, other := range population {
			if i != j && cmp.Compare(other, candidate) < 0 {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, candidate)
		}
	}
	return front
}
