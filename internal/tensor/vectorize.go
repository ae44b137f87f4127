package tensor

import "fmt"

// Rename returns t with new logical axis names.
func Rename[T DType, B Backend](t *Tensor[T, B], names ...string) (*Tensor[T, B], error) {
	return t.with(t.raw, Names(names), t.vectorized)
}

// Vectorize hides the leading len(names) logical axes of t, naming each
// vectorized axis after the matching entry of names. Already vectorized
// axes stay outermost.
//
// Example:
//
//	x, _ := tensor.Iota[int32](tensor.Shape{2, 3}, backend)
//	v, _ := tensor.Vectorize(x, "batch") // Shape (3), vectorized [batch: 2]
func Vectorize[T DType, B Backend](t *Tensor[T, B], names ...string) (*Tensor[T, B], error) {
	if len(names) > t.Rank() {
		return nil, fmt.Errorf("vectorize: cannot vectorize %d axes of a rank %d tensor", len(names), t.Rank())
	}
	shape := t.Shape()
	vectorized := t.VectorizedAxes()
	for i, name := range names {
		vectorized = append(vectorized, VectorizedAxis{Name: name, Size: shape[i]})
	}
	return t.with(t.raw, t.names[len(names):], vectorized)
}

// Devectorize turns every vectorized axis back into a leading logical axis.
// With keepNames the vectorized names label the new axes, otherwise they
// are unnamed.
func Devectorize[T DType, B Backend](t *Tensor[T, B], keepNames bool) (*Tensor[T, B], error) {
	if !t.IsVectorized() {
		return t, nil
	}
	names := make(Names, 0, len(t.raw.Shape()))
	for _, v := range t.vectorized {
		if keepNames {
			names = append(names, v.Name)
		} else {
			names = append(names, "")
		}
	}
	names = append(names, t.names...)
	return t.with(t.raw, names, nil)
}

// Squeeze removes the given logical axes, each of which must have size 1.
// Vectorized axes are never touched. The payload is reshaped by the backend.
func Squeeze[T DType, B Backend](t *Tensor[T, B], axes ...int) (*Tensor[T, B], error) {
	if len(axes) == 0 {
		return t, nil
	}
	shape := t.Shape()
	seen := make(map[int]bool, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= len(shape) {
			return nil, fmt.Errorf("squeeze: axis %d out of range for shape %v", ax, shape)
		}
		if seen[ax] {
			return nil, fmt.Errorf("squeeze: duplicate axis %d", ax)
		}
		if shape[ax] != 1 {
			return nil, fmt.Errorf("squeeze: axis %d has size %d, must be 1", ax, shape[ax])
		}
		seen[ax] = true
	}

	physical := make(Shape, 0, len(t.raw.Shape())-len(axes))
	for _, v := range t.vectorized {
		physical = append(physical, v.Size)
	}
	physical = append(physical, shape.Without(axes...)...)

	raw, err := t.backend.Reshape(t.raw, physical)
	if err != nil {
		return nil, fmt.Errorf("squeeze: %w", err)
	}
	return t.with(raw, t.names.Without(axes...), t.vectorized)
}
