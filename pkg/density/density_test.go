package density_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

func point(objectives ...float64) *framework.Solution {
	s := framework.NewSolution(nil, len(objectives), 0)
	copy(s.Objectives, objectives)
	return s
}

func values(e density.Estimator, front []*framework.Solution) []float64 {
	out := make([]float64, len(front))
	for i, s := range front {
		out[i] = e.Value(s)
	}
	return out
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCrowdingDistance(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name  string
		front []*framework.Solution
		want  []float64
	}{
		{
			name:  "single",
			front: []*framework.Solution{point(1, 1)},
			want:  []float64{inf},
		},
		{
			name:  "pair",
			front: []*framework.Solution{point(1, 2), point(2, 1)},
			want:  []float64{inf, inf},
		},
		{
			name:  "three points",
			front: []*framework.Solution{point(1, 5), point(2, 3), point(4, 1)},
			want:  []float64{inf, 2, inf},
		},
		{
			name:  "unsorted input",
			front: []*framework.Solution{point(2, 2.5), point(4, 0), point(1, 3), point(0, 4)},
			want:  []float64{1.5, inf, 0.875, inf},
		},
		{
			name:  "zero range objective",
			front: []*framework.Solution{point(1, 1), point(2, 1), point(3, 1)},
			want:  []float64{inf, 1, inf},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := append([]*framework.Solution(nil), tc.front...)
			e := density.CrowdingDistance{}
			e.Compute(tc.front)
			if diff := cmp.Diff(tc.want, values(e, tc.front), approx); diff != "" {
				t.Errorf("crowding distance mismatch (-want +got):\n%s", diff)
			}
			for i := range before {
				if before[i] != tc.front[i] {
					t.Fatal("Compute reordered the front")
				}
			}
		})
	}
}

func TestCrowdingDistanceWorst(t *testing.T) {
	front := []*framework.Solution{point(0, 4), point(1, 3), point(2, 2.5), point(4, 0)}
	e := density.CrowdingDistance{}
	e.Compute(front)
	if got := density.Worst(e, front); got != 1 {
		t.Errorf("Worst() = %d, want 1", got)
	}
	sorted := density.SortByDensity(e, front)
	want := []*framework.Solution{front[0], front[3], front[2], front[1]}
	for i := range want {
		if sorted[i] != want[i] {
			t.Errorf("sorted[%d] = %v, want %v", i, sorted[i].Objectives, want[i].Objectives)
		}
	}
}

func TestKNearestNeighbor(t *testing.T) {
	line := func() []*framework.Solution {
		return []*framework.Solution{point(0, 0), point(1, 0), point(3, 0), point(3, 0)}
	}
	tests := []struct {
		name      string
		k         int
		normalize bool
		front     []*framework.Solution
		want      []float64
	}{
		{"k=1", 1, false, line(), []float64{1, 1, 2, 2}},
		{"k=2", 2, false, line(), []float64{math.Sqrt(5), math.Sqrt(2.5), math.Sqrt(6.5), math.Sqrt(6.5)}},
		{"k larger than front", 10, false, []*framework.Solution{point(0, 0), point(3, 4)}, []float64{5, 5}},
		{"only duplicates", 1, false, []*framework.Solution{point(1, 1), point(1, 1)}, []float64{0, 0}},
		{"normalized", 1, true, []*framework.Solution{point(0, 0), point(2, 0), point(4, 10)}, []float64{0.5, 0.5, math.Sqrt(1.25)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := density.NewKNearestNeighbor(tc.k, tc.normalize)
			if err != nil {
				t.Fatal(err)
			}
			e.Compute(tc.front)
			if diff := cmp.Diff(tc.want, values(e, tc.front), approx); diff != "" {
				t.Errorf("knn distance mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := density.NewKNearestNeighbor(0, false); err == nil {
		t.Error("NewKNearestNeighbor(0) should fail")
	}
}

// fixed is an estimator with preset values, used to exercise both senses.
type fixed struct {
	values map[*framework.Solution]float64
	sense  density.Sense
}

func (f fixed) Compute([]*framework.Solution)       {}
func (f fixed) Value(s *framework.Solution) float64 { return f.values[s] }
func (f fixed) Sense() density.Sense                { return f.sense }

func TestSenseIsHonoured(t *testing.T) {
	a, b, c := point(0), point(1), point(2)
	front := []*framework.Solution{a, b, c}
	vals := map[*framework.Solution]float64{a: 3, b: 1, c: 3}

	larger := fixed{values: vals, sense: density.LargerIsBetter}
	if got := density.Worst(larger, front); got != 1 {
		t.Errorf("larger-is-better Worst() = %d, want 1", got)
	}
	if got := density.SortByDensity(larger, front); got[0] != a || got[1] != c || got[2] != b {
		t.Errorf("larger-is-better sort kept wrong order")
	}

	smaller := fixed{values: vals, sense: density.SmallerIsBetter}
	// a and c tie as worst; the later one is evicted
	if got := density.Worst(smaller, front); got != 2 {
		t.Errorf("smaller-is-better Worst() = %d, want 2", got)
	}
	if density.Compare(smaller, b, a) != -1 {
		t.Error("smaller value should win under SmallerIsBetter")
	}
	if density.Worst(smaller, nil) != -1 {
		t.Error("Worst(nil) should be -1")
	}
}
