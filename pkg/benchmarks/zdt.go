package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// zdt carries what the two-objective ZDT problems share: unit bounds and
// the distance function g over x[1:].
type zdt struct {
	numVars int
}

func (p zdt) NumberOfVariables() int { return p.numVars }
func (zdt) NumberOfObjectives() int  { return 2 }
func (zdt) NumberOfConstraints() int { return 0 }

func (p zdt) CreateSolution(rng *rand.Rand) *framework.Solution {
	return randomReals(rng, unitBounds(p.numVars), 2, 0)
}

func (zdt) g(x []float64) float64 {
	if len(x) == 1 {
		return 1.0
	}
	sum := 0.0
	for _, v := range x[1:] {
		sum += v
	}
	return 1.0 + 9.0*sum/float64(len(x)-1)
}

// ZDT1 has a convex Pareto front
type ZDT1 struct {
	zdt
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{zdt{numVars: numVars}}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) Evaluate(s *framework.Solution) error {
	x, err := realValues(p, s)
	if err != nil {
		return err
	}
	g := p.g(x)
	s.Objectives[0] = x[0]
	s.Objectives[1] = g * (1.0 - math.Sqrt(x[0]/g))
	return nil
}

func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	for _, x := range linspace(0, 1, numPoints) {
		points = append(points, framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x)})
	}
	return points
}

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	zdt
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{zdt{numVars: numVars}}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) Evaluate(s *framework.Solution) error {
	x, err := realValues(p, s)
	if err != nil {
		return err
	}
	g := p.g(x)
	s.Objectives[0] = x[0]
	// ZDT2 uses (1 - (x1/g)^2) instead of sqrt
	s.Objectives[1] = g * (1.0 - math.Pow(x[0]/g, 2))
	return nil
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	for _, x := range linspace(0, 1, numPoints) {
		points = append(points, framework.ObjectiveSpacePoint{x, 1.0 - x*x})
	}
	return points
}

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	zdt
}

// zdt3Regions are the x1 intervals that map onto the optimal front.
var zdt3Regions = [][2]float64{
	{0.0, 0.0830015349},
	{0.1822287280, 0.2577623634},
	{0.4093136748, 0.4538821041},
	{0.6183967944, 0.6525117038},
	{0.8233317983, 0.8518328654},
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{zdt{numVars: numVars}}
}

func (p *ZDT3) Name() string {
	return "ZDT3"
}

func (p *ZDT3) Evaluate(s *framework.Solution) error {
	x, err := realValues(p, s)
	if err != nil {
		return err
	}
	g := p.g(x)
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	s.Objectives[0] = x[0]
	s.Objectives[1] = g * h
	return nil
}

// TrueParetoFront spreads numPoints over the five segments in proportion to
// their width.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	width := 0.0
	for _, r := range zdt3Regions {
		width += r[1] - r[0]
	}
	points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
	for i, r := range zdt3Regions {
		n := int(math.Round(float64(numPoints) * (r[1] - r[0]) / width))
		if i == len(zdt3Regions)-1 {
			n = numPoints - len(points)
		}
		for _, x := range linspace(r[0], r[1], min(n, numPoints-len(points))) {
			f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
			points = append(points, framework.ObjectiveSpacePoint{x, f2})
		}
	}
	return points
}
