// Package quality scores approximation fronts.
package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/paretokit/pkg/hypervolume"
)

// Indicator scores a front given as objective vectors.
type Indicator interface {
	Name() string
	Value(front [][]float64) float64
	LowerIsBetter() bool
}

// IGD is the inverted generational distance: the mean Euclidean distance
// from every reference point to its nearest point of the front.
type IGD struct {
	Reference [][]float64
}

func (IGD) Name() string        { return "IGD" }
func (IGD) LowerIsBetter() bool { return true }

// Value returns +Inf for an empty front.
func (q IGD) Value(front [][]float64) float64 {
	return meanNearest(q.Reference, front)
}

// GD is the generational distance: the mean Euclidean distance from every
// point of the front to its nearest reference point.
type GD struct {
	Reference [][]float64
}

func (GD) Name() string        { return "GD" }
func (GD) LowerIsBetter() bool { return true }

// Value returns +Inf for an empty front.
func (q GD) Value(front [][]float64) float64 {
	return meanNearest(front, q.Reference)
}

// Hypervolume is the volume dominated by the front and bounded by
// Reference.
type Hypervolume struct {
	Reference []float64
}

func (Hypervolume) Name() string        { return "HV" }
func (Hypervolume) LowerIsBetter() bool { return false }

func (q Hypervolume) Value(front [][]float64) float64 {
	return hypervolume.Volume(front, q.Reference)
}

func meanNearest(from, to [][]float64) float64 {
	if len(from) == 0 || len(to) == 0 {
		return math.Inf(1)
	}
	d := make([]float64, len(from))
	for i, p := range from {
		d[i] = math.Inf(1)
		for _, q := range to {
			d[i] = math.Min(d[i], floats.Distance(p, q, 2))
		}
	}
	return stat.Mean(d, nil)
}

// Better reports whether a is a strictly better score than b for q.
func Better(q Indicator, a, b float64) bool {
	if q.LowerIsBetter() {
		return a < b
	}
	return a > b
}
