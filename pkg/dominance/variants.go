package dominance

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Epsilon compares solutions on a grid of boxes, one per objective, of width
// Epsilon[i]. Two solutions in the same box are ordered by their Euclidean
// distance to the lower corner of the box.
type Epsilon struct {
	epsilon []float64
}

// NewEpsilon validates the box widths.
func NewEpsilon(epsilon []float64) (*Epsilon, error) {
	if len(epsilon) == 0 {
		return nil, framework.InvalidConfigf("epsilon-dominance needs at least one box width")
	}
	for i, e := range epsilon {
		if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, framework.InvalidConfigf("epsilon[%d] must be positive and finite, got %v", i, e)
		}
	}
	return &Epsilon{epsilon: append([]float64(nil), epsilon...)}, nil
}

func (e *Epsilon) Compare(a, b *framework.Solution) int {
	if c := (ConstraintViolation{}).Compare(a, b); c != 0 {
		return c
	}
	if len(a.Objectives) != len(e.epsilon) || len(b.Objectives) != len(e.epsilon) {
		panic(fmt.Errorf("%w: epsilon has %d entries, solutions have %d and %d objectives",
			framework.ErrObjectiveMismatch, len(e.epsilon), len(a.Objectives), len(b.Objectives)))
	}

	boxA, boxB := e.box(a.Objectives), e.box(b.Objectives)
	if c := ComparePoints(boxA, boxB); c != 0 {
		return c
	}
	for i := range boxA {
		if boxA[i] != boxB[i] {
			return 0
		}
	}

	da, db := e.cornerDistance(a.Objectives, boxA), e.cornerDistance(b.Objectives, boxB)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	}
	return 0
}

func (e *Epsilon) box(objectives []float64) []float64 {
	box := make([]float64, len(objectives))
	for i, v := range objectives {
		box[i] = math.Floor(v / e.epsilon[i])
	}
	return box
}

func (e *Epsilon) cornerDistance(objectives, box []float64) float64 {
	sum := 0.0
	for i, v := range objectives {
		d := v - box[i]*e.epsilon[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// GDominance ranks solutions relative to a reference point given by a
// decision maker. A solution gets the flag 1 when it is better-or-equal than
// the reference on every objective, or worse-or-equal on every objective, and
// 0 otherwise. A higher flag wins; equal flags fall back to Pareto.
type GDominance struct {
	reference []float64
}

func NewGDominance(reference []float64) (*GDominance, error) {
	if len(reference) == 0 {
		return nil, framework.InvalidConfigf("g-dominance needs a reference point")
	}
	return &GDominance{reference: append([]float64(nil), reference...)}, nil
}

func (g *GDominance) Compare(a, b *framework.Solution) int {
	if c := (ConstraintViolation{}).Compare(a, b); c != 0 {
		return c
	}
	fa, fb := g.flag(a.Objectives), g.flag(b.Objectives)
	switch {
	case fa > fb:
		return -1
	case fa < fb:
		return 1
	}
	return Pareto{}.Compare(a, b)
}

func (g *GDominance) flag(objectives []float64) int {
	if len(objectives) != len(g.reference) {
		panic(fmt.Errorf("%w: reference point has %d entries, solution has %d objectives",
			framework.ErrObjectiveMismatch, len(g.reference), len(objectives)))
	}
	better, worse := true, true
	for i, v := range objectives {
		if v > g.reference[i] {
			better = false
		}
		if v < g.reference[i] {
			worse = false
		}
	}
	if better || worse {
		return 1
	}
	return 0
}
