package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicators(t *testing.T) {
	reference := [][]float64{{0, 1}, {1, 0}}
	tests := []struct {
		name      string
		indicator Indicator
		front     [][]float64
		want      float64
	}{
		{"IGD exact front", IGD{Reference: reference}, [][]float64{{0, 1}, {1, 0}}, 0},
		{"IGD single point", IGD{Reference: reference}, [][]float64{{0, 1}}, math.Sqrt2 / 2},
		{"IGD uses plain distance", IGD{Reference: [][]float64{{0, 0}}}, [][]float64{{3, 4}}, 5},
		{"GD shifted front", GD{Reference: reference}, [][]float64{{0, 2}, {2, 0}}, 1},
		{"GD subset is zero", GD{Reference: reference}, [][]float64{{1, 0}}, 0},
		{"HV", Hypervolume{Reference: []float64{5, 6}}, [][]float64{{1, 5}, {2, 3}, {4, 1}}, 12},
		{"HV outside reference", Hypervolume{Reference: []float64{1, 1}}, [][]float64{{2, 2}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.indicator.Value(tc.front), 1e-12)
		})
	}
}

func TestEmptyFront(t *testing.T) {
	ref := [][]float64{{0, 1}}
	assert.True(t, math.IsInf(IGD{Reference: ref}.Value(nil), 1))
	assert.True(t, math.IsInf(GD{Reference: ref}.Value(nil), 1))
	assert.Equal(t, 0.0, Hypervolume{Reference: []float64{1, 1}}.Value(nil))
}

func TestBetter(t *testing.T) {
	assert.True(t, Better(IGD{}, 0.1, 0.2))
	assert.False(t, Better(IGD{}, 0.2, 0.2))
	assert.True(t, Better(Hypervolume{}, 3, 2))
	assert.Equal(t, "HV", Hypervolume{}.Name())
}
