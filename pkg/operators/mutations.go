package operators

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Polynomial is the bounded polynomial mutation for real variables. Each
// variable mutates with the given probability.
type Polynomial struct {
	Probability       float64
	DistributionIndex float64
}

func NewPolynomial(probability, distributionIndex float64) (*Polynomial, error) {
	if err := checkProbability("mutation", probability); err != nil {
		return nil, err
	}
	if distributionIndex < 0 {
		return nil, framework.InvalidConfigf("distribution index must be non-negative, got %v", distributionIndex)
	}
	return &Polynomial{Probability: probability, DistributionIndex: distributionIndex}, nil
}

func (o *Polynomial) Apply(s *framework.Solution, rng *rand.Rand) *framework.Solution {
	x := s.Reals()
	if x == nil {
		return s
	}
	for i := range x.Values {
		if rng.Float64() >= o.Probability {
			continue
		}
		x.Values[i] = o.mutate(x.Values[i], x.Bounds[i], rng)
	}
	return s
}

func (o *Polynomial) mutate(y float64, b framework.Bounds, rng *rand.Rand) float64 {
	if b.L == b.H {
		return b.L
	}
	d1 := (y - b.L) / (b.H - b.L)
	d2 := (b.H - y) / (b.H - b.L)
	pow := 1.0 / (o.DistributionIndex + 1.0)

	var deltaq float64
	u := rng.Float64()
	if u <= 0.5 {
		xy := 1.0 - d1
		val := 2.0*u + (1.0-2.0*u)*math.Pow(xy, o.DistributionIndex+1.0)
		deltaq = math.Pow(val, pow) - 1.0
	} else {
		xy := 1.0 - d2
		val := 2.0*(1.0-u) + 2.0*(u-0.5)*math.Pow(xy, o.DistributionIndex+1.0)
		deltaq = 1.0 - math.Pow(val, pow)
	}
	return clamp(y+deltaq*(b.H-b.L), b.L, b.H)
}

// BitFlip flips every bit of a binary solution with the given probability.
type BitFlip struct {
	Probability float64
}

func NewBitFlip(probability float64) (*BitFlip, error) {
	if err := checkProbability("mutation", probability); err != nil {
		return nil, err
	}
	return &BitFlip{Probability: probability}, nil
}

func (o *BitFlip) Apply(s *framework.Solution, rng *rand.Rand) *framework.Solution {
	if b := s.Binary(); b != nil {
		for i := range b.Bits {
			if rng.Float64() < o.Probability {
				b.Bits[i] = !b.Bits[i]
			}
		}
	}
	return s
}

// IntegerReset replaces an integer variable with a uniform draw from its
// range, with the given probability per variable.
type IntegerReset struct {
	Probability float64
}

func NewIntegerReset(probability float64) (*IntegerReset, error) {
	if err := checkProbability("mutation", probability); err != nil {
		return nil, err
	}
	return &IntegerReset{Probability: probability}, nil
}

func (o *IntegerReset) Apply(s *framework.Solution, rng *rand.Rand) *framework.Solution {
	x := s.Integers()
	if x == nil {
		return s
	}
	for i := range x.Values {
		if rng.Float64() < o.Probability {
			b := x.Bounds[i]
			x.Values[i] = b.L + rng.Intn(b.H-b.L+1)
		}
	}
	return s
}

// Swap exchanges two random positions of a permutation with the given
// probability.
type Swap struct {
	Probability float64
}

func NewSwap(probability float64) (*Swap, error) {
	if err := checkProbability("mutation", probability); err != nil {
		return nil, err
	}
	return &Swap{Probability: probability}, nil
}

func (o *Swap) Apply(s *framework.Solution, rng *rand.Rand) *framework.Solution {
	p := s.Permutation()
	if p == nil || len(p.Values) < 2 || rng.Float64() >= o.Probability {
		return s
	}
	i := rng.Intn(len(p.Values))
	j := rng.Intn(len(p.Values) - 1)
	if j >= i {
		j++
	}
	p.Values[i], p.Values[j] = p.Values[j], p.Values[i]
	return s
}
