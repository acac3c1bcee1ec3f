// Package benchmarks holds reference problems with known Pareto fronts and a
// suite that scores algorithms against them.
package benchmarks

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

func unitBounds(n int) []framework.Bounds {
	b := make([]framework.Bounds, n)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

// randomReals draws a real solution uniformly inside bounds.
func randomReals(rng *rand.Rand, bounds []framework.Bounds, numObjectives, numConstraints int) *framework.Solution {
	vars := make([]float64, len(bounds))
	for j, b := range bounds {
		vars[j] = b.L + rng.Float64()*(b.H-b.L)
	}
	return framework.NewSolution(framework.NewRealVariables(vars, bounds), numObjectives, numConstraints)
}

// realValues returns the variables of s, or an error when s is not real
// encoded.
func realValues(p framework.Problem, s *framework.Solution) ([]float64, error) {
	x := s.Reals()
	if x == nil || x.Len() != p.NumberOfVariables() {
		return nil, framework.InvalidConfigf("%s expects %d real variables", p.Name(), p.NumberOfVariables())
	}
	return x.Values, nil
}

// Points converts a front to the plain form the quality indicators take.
func Points(front []framework.ObjectiveSpacePoint) [][]float64 {
	out := make([][]float64, len(front))
	for i, p := range front {
		out[i] = p
	}
	return out
}

// linspace returns n evenly spaced values in [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
