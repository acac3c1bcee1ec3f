package framework

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize maps a point cloud onto the unit hypercube spanned by its own
// ObjectiveBounds. An objective on which every point agrees maps to 0.
func Normalize(points [][]float64) [][]float64 {
	lo, hi := ObjectiveBounds(points)
	if lo == nil {
		return nil
	}
	span := floats.SubTo(make([]float64, len(hi)), hi, lo)
	for j := range span {
		if span[j] == 0 {
			span[j] = math.Inf(1)
		}
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = floats.SubTo(make([]float64, len(p)), p, lo)
		floats.Div(out[i], span)
	}
	return out
}

// ObjectiveBounds returns the per objective minimum and maximum of a point
// cloud, or nil slices when the cloud is empty.
func ObjectiveBounds(points [][]float64) (min, max []float64) {
	if len(points) == 0 {
		return nil, nil
	}
	m := len(points[0])
	min = make([]float64, m)
	max = make([]float64, m)
	column := make([]float64, len(points))
	for j := 0; j < m; j++ {
		for i, p := range points {
			column[i] = p[j]
		}
		min[j] = floats.Min(column)
		max[j] = floats.Max(column)
	}
	return min, max
}
