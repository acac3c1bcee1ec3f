package framework

// Variables is the decision vector of a solution. The set of implementations
// is closed: real, integer, binary and permutation encodings.
type Variables interface {
	// Len returns the number of decision variables.
	Len() int
	// Clone returns a deep copy that shares no mutable storage.
	Clone() Variables

	variables()
}

// Bounds is the inclusive range of a real variable.
type Bounds struct {
	L float64
	H float64
}

// IntBounds is the inclusive range of an integer variable.
type IntBounds struct {
	L int
	H int
}

// RealVariables represents real-valued variables.
type RealVariables struct {
	Values []float64
	Bounds []Bounds
}

func NewRealVariables(values []float64, b []Bounds) *RealVariables {
	return &RealVariables{
		Values: values,
		Bounds: b,
	}
}

func (v *RealVariables) Len() int { return len(v.Values) }

// Clone copies the values. Bounds are read-only and stay shared.
func (v *RealVariables) Clone() Variables {
	values := make([]float64, len(v.Values))
	copy(values, v.Values)
	return &RealVariables{
		Values: values,
		Bounds: v.Bounds,
	}
}

func (*RealVariables) variables() {}

// IntegerVariables represents integer variables, each with its own range.
type IntegerVariables struct {
	Values []int
	Bounds []IntBounds
}

func NewIntegerVariables(values []int, b []IntBounds) *IntegerVariables {
	return &IntegerVariables{
		Values: values,
		Bounds: b,
	}
}

func (v *IntegerVariables) Len() int { return len(v.Values) }

func (v *IntegerVariables) Clone() Variables {
	values := make([]int, len(v.Values))
	copy(values, v.Values)
	return &IntegerVariables{
		Values: values,
		Bounds: v.Bounds,
	}
}

func (*IntegerVariables) variables() {}

// BinaryVariables uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinaryVariables struct {
	Bits []bool
}

func NewBinaryVariables(bits []bool) *BinaryVariables {
	return &BinaryVariables{
		Bits: bits,
	}
}

func (v *BinaryVariables) Len() int { return len(v.Bits) }

func (v *BinaryVariables) Clone() Variables {
	bits := make([]bool, len(v.Bits))
	copy(bits, v.Bits)
	return &BinaryVariables{
		Bits: bits,
	}
}

func (*BinaryVariables) variables() {}

// PermutationVariables holds a permutation of 0..n-1.
type PermutationVariables struct {
	Values []int
}

func NewPermutationVariables(values []int) *PermutationVariables {
	return &PermutationVariables{
		Values: values,
	}
}

func (v *PermutationVariables) Len() int { return len(v.Values) }

func (v *PermutationVariables) Clone() Variables {
	values := make([]int, len(v.Values))
	copy(values, v.Values)
	return &PermutationVariables{
		Values: values,
	}
}

func (*PermutationVariables) variables() {}
