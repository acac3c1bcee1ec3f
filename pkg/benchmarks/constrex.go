package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// ConstrEx is a two variable, two objective problem with two inequality
// constraints that cut the unconstrained front.
//
//	f1 = x1, f2 = (1+x2)/x1
//	x2 + 9*x1 >= 6, -x2 + 9*x1 >= 1
type ConstrEx struct{}

var constrExBounds = []framework.Bounds{{L: 0.1, H: 1.0}, {L: 0.0, H: 5.0}}

func NewConstrEx() *ConstrEx {
	return &ConstrEx{}
}

func (*ConstrEx) Name() string             { return "ConstrEx" }
func (*ConstrEx) NumberOfVariables() int   { return 2 }
func (*ConstrEx) NumberOfObjectives() int  { return 2 }
func (*ConstrEx) NumberOfConstraints() int { return 2 }

func (*ConstrEx) CreateSolution(rng *rand.Rand) *framework.Solution {
	return randomReals(rng, constrExBounds, 2, 2)
}

func (p *ConstrEx) Evaluate(s *framework.Solution) error {
	x, err := realValues(p, s)
	if err != nil {
		return err
	}
	s.Objectives[0] = x[0]
	s.Objectives[1] = (1.0 + x[1]) / x[0]
	s.Constraints[0] = math.Max(0, 6.0-(x[1]+9.0*x[0]))
	s.Constraints[1] = math.Max(0, 1.0-(-x[1]+9.0*x[0]))
	return nil
}

// TrueParetoFront follows the active first constraint for x1 in
// [7/18, 2/3] and x2 = 0 above.
func (*ConstrEx) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	for _, x1 := range linspace(7.0/18.0, 1.0, numPoints) {
		f2 := 1.0 / x1
		if x1 < 2.0/3.0 {
			f2 = (7.0 - 9.0*x1) / x1
		}
		points = append(points, framework.ObjectiveSpacePoint{x1, f2})
	}
	return points
}
