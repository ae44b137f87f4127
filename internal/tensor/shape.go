package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
// Zero-sized dimensions are allowed and describe empty tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Without returns a copy of the shape with the given axes removed.
// Axes must be valid and are not required to be sorted.
func (s Shape) Without(axes ...int) Shape {
	drop := make(map[int]bool, len(axes))
	for _, ax := range axes {
		drop[ax] = true
	}
	out := make(Shape, 0, len(s))
	for i, dim := range s {
		if !drop[i] {
			out = append(out, dim)
		}
	}
	return out
}

// String formats the shape as a tuple, e.g. (3, 4, 5).
func (s Shape) String() string {
	return tupleString(len(s), func(i int) string { return fmt.Sprint(s[i]) })
}

func tupleString(n int, elem func(int) string) string {
	buf := make([]byte, 0, 2+4*n)
	buf = append(buf, '(')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, elem(i)...)
	}
	return string(append(buf, ')'))
}
