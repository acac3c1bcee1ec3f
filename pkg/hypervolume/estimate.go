package hypervolume

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// MonteCarlo estimates the hypervolume of front by uniform sampling of the box
// spanned by the front's ideal point and ref. It is a brute force cross check
// for Volume.
func MonteCarlo(front [][]float64, ref []float64, samples int, rng *rand.Rand) float64 {
	pts := clip(front, ref)
	if len(pts) == 0 || samples <= 0 {
		return 0
	}
	lower, _ := framework.ObjectiveBounds(pts)

	box := 1.0
	for k := range ref {
		box *= ref[k] - lower[k]
	}

	x := make([]float64, len(ref))
	hits := 0
	for s := 0; s < samples; s++ {
		for k := range x {
			x[k] = lower[k] + rng.Float64()*(ref[k]-lower[k])
		}
		for _, p := range pts {
			if covers(p, x) {
				hits++
				break
			}
		}
	}
	return box * float64(hits) / float64(samples)
}

func covers(p, x []float64) bool {
	for k := range p {
		if p[k] > x[k] {
			return false
		}
	}
	return true
}

// ContributionEstimator is a density estimator based on exclusive hypervolume
// contributions. Larger is better. When Reference is nil the reference point
// is derived from the front with ReferencePoint(front, Offset).
type ContributionEstimator struct {
	Reference []float64
	Offset    float64
}

func (e *ContributionEstimator) Compute(front []*framework.Solution) {
	if len(front) == 0 {
		return
	}
	points := framework.ObjectiveValues(front)
	ref := e.Reference
	if ref == nil {
		ref = ReferencePoint(points, e.Offset)
	}
	for i, c := range Contributions(points, ref) {
		front[i].Attributes().SetFloat(framework.AttrHypervolumeContribution, c)
	}
}

func (e *ContributionEstimator) Value(s *framework.Solution) float64 {
	v, _ := s.Attributes().Float(framework.AttrHypervolumeContribution)
	return v
}

func (e *ContributionEstimator) Sense() density.Sense {
	return density.LargerIsBetter
}
