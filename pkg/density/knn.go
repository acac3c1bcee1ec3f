package density

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// KNearestNeighbor scores a solution by the root mean square of the Euclidean
// distances to its K closest distinct neighbours in objective space. Exact
// duplicates are ignored. A low value means a crowded region, so larger is
// better. A solution without distinct neighbours gets 0.
type KNearestNeighbor struct {
	K int
	// Normalize scales every objective of the front to [0,1] before
	// measuring distances.
	Normalize bool
}

func NewKNearestNeighbor(k int, normalize bool) (*KNearestNeighbor, error) {
	if k < 1 {
		return nil, framework.InvalidConfigf("k must be at least 1, got %d", k)
	}
	return &KNearestNeighbor{K: k, Normalize: normalize}, nil
}

func (e *KNearestNeighbor) Compute(front []*framework.Solution) {
	points := framework.ObjectiveValues(front)
	if e.Normalize {
		points = framework.Normalize(points)
	}

	distances := make([]float64, 0, len(points))
	for i, p := range points {
		distances = distances[:0]
		for j, q := range points {
			if i == j {
				continue
			}
			if d := floats.Distance(p, q, 2); d > 0 {
				distances = append(distances, d)
			}
		}
		sort.Float64s(distances)

		k := e.K
		if k > len(distances) {
			k = len(distances)
		}
		value := 0.0
		if k > 0 {
			sum := 0.0
			for _, d := range distances[:k] {
				sum += d * d
			}
			value = math.Sqrt(sum / float64(k))
		}
		front[i].Attributes().SetFloat(framework.AttrKNNDistance, value)
	}
}

func (e *KNearestNeighbor) Value(s *framework.Solution) float64 {
	return floatAttribute(s, framework.AttrKNNDistance)
}

func (e *KNearestNeighbor) Sense() Sense {
	return LargerIsBetter
}
