package operators

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

func realSolution(values ...float64) *framework.Solution {
	bounds := make([]framework.Bounds, len(values))
	for i := range bounds {
		bounds[i] = framework.Bounds{L: 0, H: 1}
	}
	return framework.NewSolution(framework.NewRealVariables(values, bounds), 2, 0)
}

func intSolution(values ...int) *framework.Solution {
	bounds := make([]framework.IntBounds, len(values))
	for i := range bounds {
		bounds[i] = framework.IntBounds{L: 0, H: 9}
	}
	return framework.NewSolution(framework.NewIntegerVariables(values, bounds), 2, 0)
}

func permSolution(values ...int) *framework.Solution {
	return framework.NewSolution(framework.NewPermutationVariables(values), 2, 0)
}

func TestSBXStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sbx, err := NewSBX(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	for trial := 0; trial < 200; trial++ {
		p1 := realSolution(rng.Float64(), rng.Float64(), 0, 1)
		p2 := realSolution(rng.Float64(), rng.Float64(), 1, 0)
		before := append([]float64(nil), p1.Reals().Values...)

		children, err := sbx.Apply([]*framework.Solution{p1, p2}, rng)
		if err != nil {
			t.Fatal(err)
		}
		if len(children) != 2 {
			t.Fatalf("got %d children, want 2", len(children))
		}
		for _, c := range children {
			for _, v := range c.Reals().Values {
				if v < 0 || v > 1 {
					t.Fatalf("child variable %v outside [0,1]", v)
				}
			}
		}
		if diff := cmp.Diff(before, p1.Reals().Values); diff != "" {
			t.Fatalf("parent modified (-before +after):\n%s", diff)
		}
	}
}

func TestCrossoverWithZeroProbabilityCopiesParents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sbx, _ := NewSBX(0, 20)
	point, _ := NewPointCrossover(0, 1)
	uniform, _ := NewUniformCrossover(0)
	pmx, _ := NewPMX(0)

	tests := []struct {
		name      string
		crossover Crossover
		parents   []*framework.Solution
	}{
		{"sbx", sbx, []*framework.Solution{realSolution(0.1, 0.2), realSolution(0.8, 0.9)}},
		{"point", point, []*framework.Solution{intSolution(1, 2, 3), intSolution(4, 5, 6)}},
		{"uniform", uniform, []*framework.Solution{intSolution(1, 2, 3), intSolution(4, 5, 6)}},
		{"pmx", pmx, []*framework.Solution{permSolution(0, 1, 2), permSolution(2, 1, 0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.parents[0].Attributes().SetInt(framework.AttrRank, 0)
			children, err := tc.crossover.Apply(tc.parents, rng)
			if err != nil {
				t.Fatal(err)
			}
			for i, c := range children {
				if c == tc.parents[i] || c.Variables == tc.parents[i].Variables {
					t.Fatal("child shares storage with its parent")
				}
				if diff := cmp.Diff(tc.parents[i].Variables, c.Variables); diff != "" {
					t.Errorf("child %d differs from parent (-want +got):\n%s", i, diff)
				}
				if _, ok := c.Attributes().Int(framework.AttrRank); ok {
					t.Error("child inherited attributes")
				}
			}
		})
	}
}

func TestPointCrossoverInheritance(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tests := []struct {
		name   string
		points int
	}{
		{"one point", 1},
		{"two point", 2},
		{"four point", 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := NewPointCrossover(1, tc.points)
			if err != nil {
				t.Fatal(err)
			}
			p1 := intSolution(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
			p2 := intSolution(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
			children, err := o.Apply([]*framework.Solution{p1, p2}, rng)
			if err != nil {
				t.Fatal(err)
			}
			a, b := children[0].Integers().Values, children[1].Integers().Values
			switches := 0
			for i := range a {
				if a[i]+b[i] != 1 {
					t.Fatalf("position %d not inherited from exactly one parent each: %v %v", i, a, b)
				}
				if i > 0 && a[i] != a[i-1] {
					switches++
				}
			}
			if switches != tc.points {
				t.Errorf("got %d segment switches, want %d: %v", switches, tc.points, a)
			}
		})
	}
}

func TestPointCrossoverOnBits(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	o, _ := NewPointCrossover(1, 1)
	p1 := framework.NewSolution(framework.NewBinaryVariables([]bool{true, true, true, true}), 1, 0)
	p2 := framework.NewSolution(framework.NewBinaryVariables([]bool{false, false, false, false}), 1, 0)
	children, err := o.Apply([]*framework.Solution{p1, p2}, rng)
	if err != nil {
		t.Fatal(err)
	}
	a, b := children[0].Binary().Bits, children[1].Binary().Bits
	if !a[0] || b[0] {
		t.Errorf("first bit must come from its own parent: %v %v", a, b)
	}
	for i := range a {
		if a[i] == b[i] {
			t.Errorf("bit %d equal in both children: %v %v", i, a, b)
		}
	}
}

func TestPointCrossoverErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	o, _ := NewPointCrossover(1, 3)
	if _, err := o.Apply([]*framework.Solution{intSolution(1, 2), intSolution(3, 4)}, rng); err == nil {
		t.Error("expected error for too many cut points")
	}
	if _, err := o.Apply([]*framework.Solution{realSolution(0.1), realSolution(0.2)}, rng); err == nil {
		t.Error("expected error for real variables")
	}
	if _, err := o.Apply([]*framework.Solution{intSolution(1, 2)}, rng); err == nil {
		t.Error("expected error for a single parent")
	}
	if _, err := NewPointCrossover(1, 0); !errors.Is(err, framework.ErrInvalidConfiguration) {
		t.Errorf("NewPointCrossover(1, 0) error = %v", err)
	}
	if _, err := NewSBX(1.5, 20); !errors.Is(err, framework.ErrInvalidConfiguration) {
		t.Errorf("NewSBX(1.5, 20) error = %v", err)
	}
}

func isPermutation(values []int) bool {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			return false
		}
	}
	return true
}

func TestPMXProducesPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	o, _ := NewPMX(1)
	for trial := 0; trial < 100; trial++ {
		p1 := permSolution(rng.Perm(8)...)
		p2 := permSolution(rng.Perm(8)...)
		children, err := o.Apply([]*framework.Solution{p1, p2}, rng)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range children {
			if !isPermutation(c.Permutation().Values) {
				t.Fatalf("child is not a permutation: %v", c.Permutation().Values)
			}
		}
	}
}

func TestPMXChild(t *testing.T) {
	child := make([]int, 8)
	pmxChild(child, []int{0, 1, 2, 3, 4, 5, 6, 7}, []int{3, 7, 5, 1, 6, 0, 2, 4}, 3, 5)
	// the segment {1,6,0} maps 1->3, 6->4 and 0->5
	want := []int{5, 3, 2, 1, 6, 0, 4, 7}
	if diff := cmp.Diff(want, child); diff != "" {
		t.Errorf("pmxChild() mismatch (-want +got):\n%s", diff)
	}
}

func TestPolynomialStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m, err := NewPolynomial(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	changed := 0
	for trial := 0; trial < 500; trial++ {
		s := realSolution(rng.Float64(), 0, 1)
		before := append([]float64(nil), s.Reals().Values...)
		if got := m.Apply(s, rng); got != s {
			t.Fatal("mutation must return the solution it was given")
		}
		for i, v := range s.Reals().Values {
			if v < 0 || v > 1 {
				t.Fatalf("mutated variable %v outside [0,1]", v)
			}
			if v != before[i] {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("polynomial mutation never changed a variable")
	}
}

func TestMutationsWithZeroProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	poly, _ := NewPolynomial(0, 20)
	flip, _ := NewBitFlip(0)
	reset, _ := NewIntegerReset(0)
	swap, _ := NewSwap(0)

	tests := []struct {
		name     string
		mutation Mutation
		solution *framework.Solution
	}{
		{"polynomial", poly, realSolution(0.1, 0.5, 0.9)},
		{"bit flip", flip, framework.NewSolution(framework.NewBinaryVariables([]bool{true, false}), 1, 0)},
		{"integer reset", reset, intSolution(1, 5, 9)},
		{"swap", swap, permSolution(2, 0, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.solution.Variables.Clone()
			tc.mutation.Apply(tc.solution, rng)
			if diff := cmp.Diff(before, tc.solution.Variables); diff != "" {
				t.Errorf("solution changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestDiscreteMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	flip, _ := NewBitFlip(1)
	b := framework.NewSolution(framework.NewBinaryVariables([]bool{true, false, true}), 1, 0)
	flip.Apply(b, rng)
	if diff := cmp.Diff([]bool{false, true, false}, b.Binary().Bits); diff != "" {
		t.Errorf("BitFlip mismatch (-want +got):\n%s", diff)
	}

	reset, _ := NewIntegerReset(1)
	for trial := 0; trial < 100; trial++ {
		s := intSolution(0, 9, 4)
		reset.Apply(s, rng)
		for _, v := range s.Integers().Values {
			if v < 0 || v > 9 {
				t.Fatalf("reset value %d outside [0,9]", v)
			}
		}
	}

	swap, _ := NewSwap(1)
	for trial := 0; trial < 100; trial++ {
		s := permSolution(0, 1, 2, 3, 4)
		swap.Apply(s, rng)
		if !isPermutation(s.Permutation().Values) {
			t.Fatalf("swap broke the permutation: %v", s.Permutation().Values)
		}
		moved := 0
		for i, v := range s.Permutation().Values {
			if v != i {
				moved++
			}
		}
		if moved != 2 {
			t.Fatalf("swap moved %d positions, want 2", moved)
		}
	}
}

func TestVariation(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	sbx, _ := NewSBX(0.9, 20)
	poly, _ := NewPolynomial(0.5, 20)

	tests := []struct {
		name          string
		offspringSize int
		keepChildren  int
		wantPool      int
	}{
		{"even", 4, 0, 4},
		{"odd", 3, 0, 4},
		{"single", 1, 0, 2},
		{"first child only", 3, 1, 6},
		{"keep more than produced", 4, 5, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := NewVariation(sbx, poly, tc.offspringSize)
			if err != nil {
				t.Fatal(err)
			}
			v.KeepChildren = tc.keepChildren
			if got := v.MatingPoolSize(); got != tc.wantPool {
				t.Fatalf("MatingPoolSize() = %d, want %d", got, tc.wantPool)
			}
			pool := make([]*framework.Solution, v.MatingPoolSize())
			for i := range pool {
				pool[i] = realSolution(rng.Float64(), rng.Float64())
			}
			offspring, err := v.Apply(pool, rng)
			if err != nil {
				t.Fatal(err)
			}
			if len(offspring) != tc.offspringSize {
				t.Errorf("got %d offspring, want %d", len(offspring), tc.offspringSize)
			}
			if _, err := v.Apply(pool[:1], rng); err == nil {
				t.Error("expected error for short mating pool")
			}
			if _, err := v.Apply(pool, nil); !errors.Is(err, framework.ErrNilRandomSource) {
				t.Errorf("Apply(nil rng) error = %v", err)
			}
		})
	}

	if _, err := NewVariation(sbx, nil, 2); !errors.Is(err, framework.ErrInvalidConfiguration) {
		t.Errorf("NewVariation(nil mutation) error = %v", err)
	}
}
