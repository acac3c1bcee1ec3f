package operators

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// SBX is the simulated binary crossover for real variables. 2 parents in,
// 2 offspring out.
type SBX struct {
	Probability       float64
	DistributionIndex float64
}

func NewSBX(probability, distributionIndex float64) (*SBX, error) {
	if err := checkProbability("crossover", probability); err != nil {
		return nil, err
	}
	if distributionIndex < 0 {
		return nil, framework.InvalidConfigf("distribution index must be non-negative, got %v", distributionIndex)
	}
	return &SBX{Probability: probability, DistributionIndex: distributionIndex}, nil
}

func (*SBX) NumberOfParents() int   { return 2 }
func (*SBX) NumberOfOffspring() int { return 2 }

func (o *SBX) Apply(parents []*framework.Solution, rng *rand.Rand) ([]*framework.Solution, error) {
	c1, c2, err := offspringOf(parents)
	if err != nil {
		return nil, err
	}
	x1, x2 := c1.Reals(), c2.Reals()
	if x1 == nil || x2 == nil {
		return nil, encodingError("real", parents[0].Variables)
	}
	if rng.Float64() >= o.Probability {
		return []*framework.Solution{c1, c2}, nil
	}

	const precision = 1e-14
	for i := range x1.Values {
		if rng.Float64() > 0.5 {
			continue
		}
		y1, y2 := x1.Values[i], x2.Values[i]
		if math.Abs(y1-y2) <= precision {
			continue
		}
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		lb, ub := x1.Bounds[i].L, x1.Bounds[i].H

		u := rng.Float64()
		beta := 1.0 + 2.0*(y1-lb)/(y2-y1)
		v1 := 0.5 * ((y1 + y2) - o.spread(u, beta)*(y2-y1))
		beta = 1.0 + 2.0*(ub-y2)/(y2-y1)
		v2 := 0.5 * ((y1 + y2) + o.spread(u, beta)*(y2-y1))

		v1 = clamp(v1, lb, ub)
		v2 = clamp(v2, lb, ub)
		if rng.Float64() <= 0.5 {
			v1, v2 = v2, v1
		}
		x1.Values[i], x2.Values[i] = v1, v2
	}
	return []*framework.Solution{c1, c2}, nil
}

func (o *SBX) spread(u, beta float64) float64 {
	alpha := 2.0 - math.Pow(beta, -(o.DistributionIndex+1.0))
	if u <= 1.0/alpha {
		return math.Pow(u*alpha, 1.0/(o.DistributionIndex+1.0))
	}
	return math.Pow(1.0/(2.0-u*alpha), 1.0/(o.DistributionIndex+1.0))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PointCrossover swaps the segments between Points random cut points. It
// works on integer and binary variables. 2 parents in, 2 offspring out.
type PointCrossover struct {
	Probability float64
	Points      int
}

func NewPointCrossover(probability float64, points int) (*PointCrossover, error) {
	if err := checkProbability("crossover", probability); err != nil {
		return nil, err
	}
	if points < 1 {
		return nil, framework.InvalidConfigf("point crossover needs at least one cut point, got %d", points)
	}
	return &PointCrossover{Probability: probability, Points: points}, nil
}

func (*PointCrossover) NumberOfParents() int   { return 2 }
func (*PointCrossover) NumberOfOffspring() int { return 2 }

func (o *PointCrossover) Apply(parents []*framework.Solution, rng *rand.Rand) ([]*framework.Solution, error) {
	c1, c2, err := offspringOf(parents)
	if err != nil {
		return nil, err
	}
	if rng.Float64() >= o.Probability {
		return []*framework.Solution{c1, c2}, nil
	}

	switch v1 := c1.Variables.(type) {
	case *framework.IntegerVariables:
		v2 := c2.Integers()
		if v2 == nil {
			return nil, encodingError("integer", c2.Variables)
		}
		err = kPoint(v1.Values, v2.Values, o.Points, rng)
	case *framework.BinaryVariables:
		v2 := c2.Binary()
		if v2 == nil {
			return nil, encodingError("binary", c2.Variables)
		}
		err = kPoint(v1.Bits, v2.Bits, o.Points, rng)
	default:
		return nil, encodingError("integer or binary", c1.Variables)
	}
	if err != nil {
		return nil, err
	}
	return []*framework.Solution{c1, c2}, nil
}

// kPoint implements k-point crossover in place
func kPoint[T any](a, b []T, k int, rng *rand.Rand) error {
	if len(a) != len(b) {
		return fmt.Errorf("parents have %d and %d variables", len(a), len(b))
	}
	if k > len(a)-1 {
		return fmt.Errorf("%d cut points do not fit %d variables", k, len(a))
	}

	// Generate k unique cut points in [1, len-1]
	points := rng.Perm(len(a) - 1)[:k]
	for i := range points {
		points[i]++
	}
	sort.Ints(points)

	swap := false
	start := 0
	for _, end := range append(points, len(a)) {
		if swap {
			for j := start; j < end; j++ {
				a[j], b[j] = b[j], a[j]
			}
		}
		swap = !swap
		start = end
	}
	return nil
}

// UniformCrossover exchanges every variable with probability one half. It
// works on real, integer and binary variables. 2 parents in, 2 offspring out.
type UniformCrossover struct {
	Probability float64
}

func NewUniformCrossover(probability float64) (*UniformCrossover, error) {
	if err := checkProbability("crossover", probability); err != nil {
		return nil, err
	}
	return &UniformCrossover{Probability: probability}, nil
}

func (*UniformCrossover) NumberOfParents() int   { return 2 }
func (*UniformCrossover) NumberOfOffspring() int { return 2 }

func (o *UniformCrossover) Apply(parents []*framework.Solution, rng *rand.Rand) ([]*framework.Solution, error) {
	c1, c2, err := offspringOf(parents)
	if err != nil {
		return nil, err
	}
	if rng.Float64() >= o.Probability {
		return []*framework.Solution{c1, c2}, nil
	}

	switch v1 := c1.Variables.(type) {
	case *framework.RealVariables:
		if v2 := c2.Reals(); v2 != nil {
			uniform(v1.Values, v2.Values, rng)
			return []*framework.Solution{c1, c2}, nil
		}
	case *framework.IntegerVariables:
		if v2 := c2.Integers(); v2 != nil {
			uniform(v1.Values, v2.Values, rng)
			return []*framework.Solution{c1, c2}, nil
		}
	case *framework.BinaryVariables:
		if v2 := c2.Binary(); v2 != nil {
			uniform(v1.Bits, v2.Bits, rng)
			return []*framework.Solution{c1, c2}, nil
		}
	}
	return nil, encodingError("real, integer or binary", c2.Variables)
}

func uniform[T any](a, b []T, rng *rand.Rand) {
	for i := range a {
		if rng.Float64() < 0.5 {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// PMX is the partially mapped crossover for permutations. 2 parents in,
// 2 offspring out.
type PMX struct {
	Probability float64
}

func NewPMX(probability float64) (*PMX, error) {
	if err := checkProbability("crossover", probability); err != nil {
		return nil, err
	}
	return &PMX{Probability: probability}, nil
}

func (*PMX) NumberOfParents() int   { return 2 }
func (*PMX) NumberOfOffspring() int { return 2 }

func (o *PMX) Apply(parents []*framework.Solution, rng *rand.Rand) ([]*framework.Solution, error) {
	c1, c2, err := offspringOf(parents)
	if err != nil {
		return nil, err
	}
	v1, v2 := c1.Permutation(), c2.Permutation()
	if v1 == nil || v2 == nil {
		return nil, encodingError("permutation", parents[0].Variables)
	}
	n := len(v1.Values)
	if rng.Float64() >= o.Probability || n < 2 {
		return []*framework.Solution{c1, c2}, nil
	}

	p1 := append([]int(nil), v1.Values...)
	p2 := append([]int(nil), v2.Values...)
	lo, hi := rng.Intn(n), rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}
	pmxChild(v1.Values, p1, p2, lo, hi)
	pmxChild(v2.Values, p2, p1, lo, hi)
	return []*framework.Solution{c1, c2}, nil
}

// pmxChild writes into child the segment [lo,hi] of donor, filling the rest
// from other and resolving duplicates through the segment mapping.
func pmxChild(child, other, donor []int, lo, hi int) {
	mapping := make(map[int]int, hi-lo+1)
	for i := lo; i <= hi; i++ {
		child[i] = donor[i]
		mapping[donor[i]] = other[i]
	}
	for i := range child {
		if i >= lo && i <= hi {
			continue
		}
		v := other[i]
		for {
			m, ok := mapping[v]
			if !ok {
				break
			}
			v = m
		}
		child[i] = v
	}
}
