package benchmarks

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// OneZeroMax is a binary problem that counts zeros against ones. Every bit
// string is Pareto optimal, so a run is expected to spread over all n+1
// objective vectors.
type OneZeroMax struct {
	numBits int
}

func NewOneZeroMax(numBits int) *OneZeroMax {
	return &OneZeroMax{numBits: numBits}
}

func (*OneZeroMax) Name() string             { return "OneZeroMax" }
func (p *OneZeroMax) NumberOfVariables() int { return p.numBits }
func (*OneZeroMax) NumberOfObjectives() int  { return 2 }
func (*OneZeroMax) NumberOfConstraints() int { return 0 }

func (p *OneZeroMax) CreateSolution(rng *rand.Rand) *framework.Solution {
	bits := make([]bool, p.numBits)
	for i := range bits {
		bits[i] = rng.Intn(2) == 1
	}
	return framework.NewSolution(framework.NewBinaryVariables(bits), 2, 0)
}

func (p *OneZeroMax) Evaluate(s *framework.Solution) error {
	b := s.Binary()
	if b == nil || b.Len() != p.numBits {
		return framework.InvalidConfigf("%s expects %d bits", p.Name(), p.numBits)
	}
	ones := 0
	for _, bit := range b.Bits {
		if bit {
			ones++
		}
	}
	s.Objectives[0] = float64(p.numBits - ones)
	s.Objectives[1] = float64(ones)
	return nil
}

// TrueParetoFront ignores numPoints: the front has exactly numBits+1 points.
func (p *OneZeroMax) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, p.numBits+1)
	for ones := 0; ones <= p.numBits; ones++ {
		points = append(points, framework.ObjectiveSpacePoint{float64(p.numBits - ones), float64(ones)})
	}
	return points
}
