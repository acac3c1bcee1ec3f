package archive

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/paretokit/pkg/density"
	"github.com/mihai-snyk/paretokit/pkg/dominance"
	"github.com/mihai-snyk/paretokit/pkg/framework"
	"github.com/mihai-snyk/paretokit/pkg/hypervolume"
)

// DensityPolicy evicts the least valuable member according to a density
// estimator.
type DensityPolicy struct {
	Estimator density.Estimator
}

func (p DensityPolicy) Victim(members []*framework.Solution) int {
	p.Estimator.Compute(members)
	return density.Worst(p.Estimator, members)
}

// NewCrowdingDistanceArchive evicts the member with the lowest crowding
// distance.
func NewCrowdingDistanceArchive(capacity int, cmp dominance.Comparator) (*Bounded, error) {
	return NewBounded(capacity, cmp, DensityPolicy{Estimator: density.CrowdingDistance{}})
}

// NewHypervolumeArchive evicts the member with the lowest hypervolume
// contribution. The reference point is the archive's per objective maximum
// plus offset.
func NewHypervolumeArchive(capacity int, offset float64, cmp dominance.Comparator) (*Bounded, error) {
	if offset <= 0 {
		return nil, framework.InvalidConfigf("hypervolume offset must be positive, got %v", offset)
	}
	return NewBounded(capacity, cmp, DensityPolicy{Estimator: &hypervolume.ContributionEstimator{Offset: offset}})
}

// ReferencePointPolicy focuses the archive on a region of interest: the box
// of half-width Epsilon around a preference point. Members outside the box
// are evicted first, farthest from the preference point first. Once every
// member is inside, the lowest crowding distance is evicted.
type ReferencePointPolicy struct {
	reference []float64
	epsilon   float64
	crowding  density.CrowdingDistance
}

func (p *ReferencePointPolicy) Victim(members []*framework.Solution) int {
	var inside []*framework.Solution
	var insideIdx []int
	outside, farthest := -1, -1.0
	for i, m := range members {
		if p.inBox(m.Objectives) {
			inside = append(inside, m)
			insideIdx = append(insideIdx, i)
			continue
		}
		if d := floats.Distance(m.Objectives, p.reference, 2); d > farthest {
			outside, farthest = i, d
		}
	}
	if outside >= 0 {
		return outside
	}
	p.crowding.Compute(inside)
	return insideIdx[density.Worst(p.crowding, inside)]
}

func (p *ReferencePointPolicy) inBox(objectives []float64) bool {
	for i, v := range objectives {
		if math.Abs(v-p.reference[i]) > p.epsilon {
			return false
		}
	}
	return true
}

// ReferencePointArchive is a bounded archive whose preference point can be
// moved during a run.
type ReferencePointArchive struct {
	*Bounded
	policy *ReferencePointPolicy
}

func NewReferencePointArchive(capacity int, reference []float64, epsilon float64, cmp dominance.Comparator) (*ReferencePointArchive, error) {
	if len(reference) == 0 {
		return nil, framework.InvalidConfigf("reference point archive needs a reference point")
	}
	if epsilon <= 0 {
		return nil, framework.InvalidConfigf("reference point epsilon must be positive, got %v", epsilon)
	}
	policy := &ReferencePointPolicy{
		reference: append([]float64(nil), reference...),
		epsilon:   epsilon,
	}
	b, err := NewBounded(capacity, cmp, policy)
	if err != nil {
		return nil, err
	}
	return &ReferencePointArchive{Bounded: b, policy: policy}, nil
}

// SetReferencePoint moves the region of interest. Members are only evicted
// on the next insertion or Prune.
func (a *ReferencePointArchive) SetReferencePoint(reference []float64) error {
	if len(reference) != len(a.policy.reference) {
		return framework.InvalidConfigf("reference point has %d entries, want %d", len(reference), len(a.policy.reference))
	}
	copy(a.policy.reference, reference)
	return nil
}

func (a *ReferencePointArchive) ReferencePoint() []float64 {
	return append([]float64(nil), a.policy.reference...)
}
