package framework

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
// All objectives are minimized.
type ObjectiveSpacePoint []float64

// Solution is a candidate in a population. Objectives and Constraints are
// filled by Problem.Evaluate; a constraint value is the violation magnitude
// and 0 means the constraint holds.
type Solution struct {
	Variables   Variables
	Objectives  ObjectiveSpacePoint
	Constraints []float64

	attributes Attributes
}

// NewSolution allocates objective and constraint storage for vars.
func NewSolution(vars Variables, numObjectives, numConstraints int) *Solution {
	return &Solution{
		Variables:   vars,
		Objectives:  make(ObjectiveSpacePoint, numObjectives),
		Constraints: make([]float64, numConstraints),
	}
}

// Copy returns a deep copy of the solution, attributes included.
func (s *Solution) Copy() *Solution {
	c := &Solution{
		Objectives:  append(ObjectiveSpacePoint(nil), s.Objectives...),
		Constraints: append([]float64(nil), s.Constraints...),
		attributes:  s.attributes.clone(),
	}
	if s.Variables != nil {
		c.Variables = s.Variables.Clone()
	}
	return c
}

// Attributes returns the attribute bag of the solution.
func (s *Solution) Attributes() *Attributes {
	return &s.attributes
}

// OverallViolation is the sum of the constraint violation magnitudes.
func (s *Solution) OverallViolation() float64 {
	total := 0.0
	for _, c := range s.Constraints {
		if c > 0 {
			total += c
		}
	}
	return total
}

func (s *Solution) IsFeasible() bool {
	return s.OverallViolation() == 0
}

// Reals returns the real variables of s, or nil for another encoding.
func (s *Solution) Reals() *RealVariables {
	v, _ := s.Variables.(*RealVariables)
	return v
}

// Integers returns the integer variables of s, or nil for another encoding.
func (s *Solution) Integers() *IntegerVariables {
	v, _ := s.Variables.(*IntegerVariables)
	return v
}

// Binary returns the bits of s, or nil for another encoding.
func (s *Solution) Binary() *BinaryVariables {
	v, _ := s.Variables.(*BinaryVariables)
	return v
}

// Permutation returns the permutation of s, or nil for another encoding.
func (s *Solution) Permutation() *PermutationVariables {
	v, _ := s.Variables.(*PermutationVariables)
	return v
}

// ObjectiveValues extracts the objective vectors of a population. The returned
// slices alias the solutions.
func ObjectiveValues(population []*Solution) [][]float64 {
	points := make([][]float64, len(population))
	for i, s := range population {
		points[i] = s.Objectives
	}
	return points
}

// CopyAll deep copies every solution of a population.
func CopyAll(population []*Solution) []*Solution {
	out := make([]*Solution, len(population))
	for i, s := range population {
		out[i] = s.Copy()
	}
	return out
}
