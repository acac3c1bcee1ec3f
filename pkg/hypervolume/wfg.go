// Package hypervolume measures the objective space dominated by a front and
// bounded by a reference point, using the WFG algorithm. All objectives are
// minimized.
package hypervolume

import (
	"fmt"
	"sort"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// relation is the outcome of comparing two points on their first n
// coordinates.
type relation int

const (
	incomparable relation = iota
	dominates
	dominated
	equal
)

func compare(p, q []float64, n int) relation {
	pBetter, qBetter := false, false
	for i := 0; i < n; i++ {
		if p[i] < q[i] {
			pBetter = true
		} else if q[i] < p[i] {
			qBetter = true
		}
		if pBetter && qBetter {
			return incomparable
		}
	}
	switch {
	case pBetter:
		return dominates
	case qBetter:
		return dominated
	}
	return equal
}

// Volume returns the hypervolume of front with respect to ref. Points that
// are not strictly better than ref on every objective add nothing. An empty
// front has volume 0.
func Volume(front [][]float64, ref []float64) float64 {
	pts := clip(front, ref)
	if len(pts) == 0 {
		return 0
	}
	return wfg(nondominated(pts, len(ref)), ref, len(ref))
}

// Contribution returns the volume dominated only by front[i].
func Contribution(front [][]float64, ref []float64, i int) float64 {
	p := front[i]
	checkDimension(p, ref)
	if !inside(p, ref) {
		return 0
	}
	others := make([][]float64, 0, len(front)-1)
	for j, q := range front {
		if j != i {
			others = append(others, q)
		}
	}
	return exclusive(p, clip(others, ref), ref, len(ref))
}

// Contributions returns the exclusive contribution of every point of front.
func Contributions(front [][]float64, ref []float64) []float64 {
	out := make([]float64, len(front))
	for i := range front {
		out[i] = Contribution(front, ref, i)
	}
	return out
}

// ReferencePoint derives a reference point from the per objective maximum of
// front plus offset. It returns nil for an empty front.
func ReferencePoint(front [][]float64, offset float64) []float64 {
	_, max := framework.ObjectiveBounds(front)
	for i := range max {
		max[i] += offset
	}
	return max
}

// wfg computes the volume of a mutually non-dominated set on its first n
// coordinates.
func wfg(pts [][]float64, ref []float64, n int) float64 {
	switch {
	case len(pts) == 0:
		return 0
	case len(pts) == 1:
		return inclusive(pts[0], ref, n)
	case n == 1:
		best := pts[0][0]
		for _, p := range pts[1:] {
			if p[0] < best {
				best = p[0]
			}
		}
		return ref[0] - best
	case n == 2:
		return sweep2D(pts, ref)
	}

	sorted := append([][]float64(nil), pts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i][n-1] > sorted[j][n-1]
	})

	total := 0.0
	for i, p := range sorted {
		// slab between p and the reference on the last axis, times the part
		// of p's projection not covered by the points that come later
		total += (ref[n-1] - p[n-1]) * exclusive(p, sorted[i+1:], ref, n-1)
	}
	return total
}

// exclusive is the volume of p on its first n coordinates minus the part
// shared with rest.
func exclusive(p []float64, rest [][]float64, ref []float64, n int) float64 {
	return inclusive(p, ref, n) - wfg(limitSet(p, rest, n), ref, n)
}

// limitSet bounds every point of rest by p, coordinate-wise max, and drops
// the ones that end up dominated or duplicated.
func limitSet(p []float64, rest [][]float64, n int) [][]float64 {
	limited := make([][]float64, len(rest))
	for i, q := range rest {
		l := make([]float64, n)
		for k := 0; k < n; k++ {
			if q[k] > p[k] {
				l[k] = q[k]
			} else {
				l[k] = p[k]
			}
		}
		limited[i] = l
	}
	return nondominated(limited, n)
}

// nondominated keeps the points of pts that no other point dominates or
// equals, looking at the first n coordinates. The first of a group of equal
// points survives.
func nondominated(pts [][]float64, n int) [][]float64 {
	out := make([][]float64, 0, len(pts))
	for _, p := range pts {
		keep := true
		for k := 0; k < len(out); {
			switch compare(out[k], p, n) {
			case dominates, equal:
				keep = false
			case dominated:
				out[k] = out[len(out)-1]
				out = out[:len(out)-1]
				continue
			}
			if !keep {
				break
			}
			k++
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

// sweep2D closes the recursion: rectangles stacked along the first axis.
func sweep2D(pts [][]float64, ref []float64) float64 {
	sorted := append([][]float64(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] == sorted[j][0] {
			return sorted[i][1] < sorted[j][1]
		}
		return sorted[i][0] < sorted[j][0]
	})

	volume := 0.0
	top := ref[1]
	for _, p := range sorted {
		if p[1] < top {
			volume += (ref[0] - p[0]) * (top - p[1])
			top = p[1]
		}
	}
	return volume
}

func inclusive(p, ref []float64, n int) float64 {
	v := 1.0
	for k := 0; k < n; k++ {
		v *= ref[k] - p[k]
	}
	return v
}

func inside(p, ref []float64) bool {
	for k := range ref {
		if p[k] >= ref[k] {
			return false
		}
	}
	return true
}

// clip keeps the points strictly inside the box bounded by ref.
func clip(front [][]float64, ref []float64) [][]float64 {
	out := make([][]float64, 0, len(front))
	for _, p := range front {
		checkDimension(p, ref)
		if inside(p, ref) {
			out = append(out, p)
		}
	}
	return out
}

func checkDimension(p, ref []float64) {
	if len(p) != len(ref) {
		panic(fmt.Errorf("%w: point has %d objectives, reference point has %d",
			framework.ErrObjectiveMismatch, len(p), len(ref)))
	}
}
