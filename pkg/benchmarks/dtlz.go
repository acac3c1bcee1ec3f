package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// dtlz is the shared shape of the scalable DTLZ problems. The last
// numVars-numObjectives+1 variables feed the distance function g.
type dtlz struct {
	numVars       int
	numObjectives int
}

func (p dtlz) NumberOfVariables() int  { return p.numVars }
func (p dtlz) NumberOfObjectives() int { return p.numObjectives }
func (dtlz) NumberOfConstraints() int  { return 0 }

func (p dtlz) CreateSolution(rng *rand.Rand) *framework.Solution {
	return randomReals(rng, unitBounds(p.numVars), p.numObjectives, 0)
}

// DTLZ1 is scalable to any number of objectives
// It has a linear Pareto front and many local fronts
type DTLZ1 struct {
	dtlz
}

func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	// Recommended: numVars = numObjectives + k - 1, where k = 5 for DTLZ1
	return &DTLZ1{dtlz{numVars: numVars, numObjectives: numObjectives}}
}

func (p *DTLZ1) Name() string {
	return "DTLZ1"
}

func (p *DTLZ1) g(x []float64) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ1) Evaluate(s *framework.Solution) error {
	x, err := realValues(p, s)
	if err != nil {
		return err
	}
	g := p.g(x)
	for m := range p.numObjectives {
		f := 0.5 * (1 + g)
		for i := 0; i < p.numObjectives-m-1; i++ {
			f *= x[i]
		}
		if m > 0 {
			f *= 1 - x[p.numObjectives-m-1]
		}
		s.Objectives[m] = f
	}
	return nil
}

// TrueParetoFront samples the hyperplane sum(f_i) = 0.5 for two and three
// objectives. For three objectives the lattice holds the largest triangular
// number of points not above numPoints.
func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	switch p.numObjectives {
	case 2:
		points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
		for _, t := range linspace(0, 1, numPoints) {
			points = append(points, framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)})
		}
		return points
	case 3:
		var points []framework.ObjectiveSpacePoint
		for _, w := range simplexLattice(numPoints) {
			points = append(points, framework.ObjectiveSpacePoint{0.5 * w[0], 0.5 * w[1], 0.5 * w[2]})
		}
		return points
	}
	return nil
}

// DTLZ2 has a spherical Pareto front
// It's easier than DTLZ1 as it has no local fronts
type DTLZ2 struct {
	dtlz
}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	return &DTLZ2{dtlz{numVars: numVars, numObjectives: numObjectives}}
}

func (p *DTLZ2) Name() string {
	return "DTLZ2"
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) Evaluate(s *framework.Solution) error {
	x, err := realValues(p, s)
	if err != nil {
		return err
	}
	g := p.g(x)
	for m := range p.numObjectives {
		f := 1 + g
		for i := 0; i < p.numObjectives-m-1; i++ {
			f *= math.Cos(x[i] * math.Pi / 2)
		}
		if m > 0 {
			f *= math.Sin(x[p.numObjectives-m-1] * math.Pi / 2)
		}
		s.Objectives[m] = f
	}
	return nil
}

// TrueParetoFront samples the unit sphere sum(f_i^2) = 1 for two and three
// objectives by normalizing a simplex lattice onto it.
func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	switch p.numObjectives {
	case 2:
		points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
		for _, theta := range linspace(0, math.Pi/2, numPoints) {
			points = append(points, framework.ObjectiveSpacePoint{math.Cos(theta), math.Sin(theta)})
		}
		return points
	case 3:
		var points []framework.ObjectiveSpacePoint
		for _, w := range simplexLattice(numPoints) {
			norm := math.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2])
			points = append(points, framework.ObjectiveSpacePoint{w[0] / norm, w[1] / norm, w[2] / norm})
		}
		return points
	}
	return nil
}

// simplexLattice returns the weight vectors (i/h, j/h, (h-i-j)/h) for the
// largest h with (h+1)(h+2)/2 <= n.
func simplexLattice(n int) [][3]float64 {
	h := 0
	for (h+2)*(h+3)/2 <= n {
		h++
	}
	if h == 0 {
		return nil
	}
	out := make([][3]float64, 0, (h+1)*(h+2)/2)
	for i := 0; i <= h; i++ {
		for j := 0; j <= h-i; j++ {
			out = append(out, [3]float64{
				float64(i) / float64(h),
				float64(j) / float64(h),
				float64(h-i-j) / float64(h),
			})
		}
	}
	return out
}
