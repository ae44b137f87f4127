package tensor

import (
	"fmt"

	"go.uber.org/multierr"
)

// VectorizedAxis is a leading physical axis hidden from Shape and Names.
type VectorizedAxis struct {
	Name string
	Size int
}

// Tensor is an immutable named tensor with element type T on backend B.
//
// The physical layout of Raw() is the vectorized axes followed by Shape().
// Every operation returns a new Tensor; fields are never reassigned after
// construction.
//
// Example:
//
//	backend := cpu.New()
//	t, _ := tensor.Iota[float32](tensor.Shape{3, 4}, backend)
//	t, _ = tensor.Rename(t, "rows", "cols")
type Tensor[T DType, B Backend] struct {
	raw        *RawTensor
	backend    B
	names      Names
	vectorized []VectorizedAxis
}

// New wraps a RawTensor produced by b. All axes are logical and unnamed.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
		names:   Unnamed(len(raw.Shape())),
	}
}

// Wrap builds a tensor from a raw payload, its logical names and its
// vectorized axes, checking that the three agree.
func Wrap[T DType, B Backend](raw *RawTensor, b B, names Names, vectorized []VectorizedAxis) (*Tensor[T, B], error) {
	t := &Tensor[T, B]{
		raw:        raw,
		backend:    b,
		names:      names.Clone(),
		vectorized: append([]VectorizedAxis(nil), vectorized...),
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate reports every inconsistency between payload and metadata.
func (t *Tensor[T, B]) validate() error {
	var errs error
	var dummy T
	if want := inferDataType(dummy); t.raw.DType() != want {
		errs = multierr.Append(errs, fmt.Errorf("payload dtype %s does not match element type %s", t.raw.DType(), want))
	}
	physical := t.raw.Shape()
	if len(t.vectorized) > len(physical) {
		return multierr.Append(errs, fmt.Errorf("%d vectorized axes exceed physical rank %d", len(t.vectorized), len(physical)))
	}
	seen := make(map[string]bool, len(t.vectorized))
	for i, v := range t.vectorized {
		if v.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("vectorized axis %d has no name", i))
		} else if seen[v.Name] {
			errs = multierr.Append(errs, fmt.Errorf("vectorized axis name %q is repeated", v.Name))
		}
		seen[v.Name] = true
		if v.Size != physical[i] {
			errs = multierr.Append(errs, fmt.Errorf("vectorized axis %q has size %d, payload has %d", v.Name, v.Size, physical[i]))
		}
	}
	if rank := len(physical) - len(t.vectorized); len(t.names) != rank {
		errs = multierr.Append(errs, fmt.Errorf("got %d names for rank %d", len(t.names), rank))
	}
	return multierr.Append(errs, t.names.Validate())
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		return nil, err
	}

	copy(typedView[T](raw), data)
	return New[T, B](raw, b), nil
}

// Shape returns the logical shape (vectorized axes excluded).
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()[len(t.vectorized):].Clone()
}

// Rank returns the logical rank.
func (t *Tensor[T, B]) Rank() int {
	return len(t.raw.Shape()) - len(t.vectorized)
}

// Names returns the logical axis names.
func (t *Tensor[T, B]) Names() Names {
	return t.names.Clone()
}

// VectorizedAxes returns the hidden leading axes, outermost first.
func (t *Tensor[T, B]) VectorizedAxes() []VectorizedAxis {
	return append([]VectorizedAxis(nil), t.vectorized...)
}

// IsVectorized reports whether the tensor has hidden leading axes.
func (t *Tensor[T, B]) IsVectorized() bool {
	return len(t.vectorized) > 0
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the number of physical elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a copy of the physical elements in row-major order.
func (t *Tensor[T, B]) Data() []T {
	view := typedView[T](t.raw)
	return append(make([]T, 0, len(view)), view...)
}

// Item returns the scalar value of a 0-D, non-vectorized tensor.
func (t *Tensor[T, B]) Item() (T, error) {
	var zero T
	if len(t.raw.Shape()) != 0 {
		return zero, fmt.Errorf("item: expected a scalar tensor, got shape %v", t.raw.Shape())
	}
	return typedView[T](t.raw)[0], nil
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	s := fmt.Sprintf("Tensor[%s]%v%v", t.raw.DType(), t.Shape(), t.names)
	if len(t.vectorized) > 0 {
		s += " vectorized"
		for _, v := range t.vectorized {
			s += fmt.Sprintf(" [%s: %d]", v.Name, v.Size)
		}
	}
	return s + " on " + t.raw.Device().String()
}

// with returns a tensor sharing b with t but carrying new payload and metadata.
func (t *Tensor[T, B]) with(raw *RawTensor, names Names, vectorized []VectorizedAxis) (*Tensor[T, B], error) {
	return Wrap[T, B](raw, t.backend, names, vectorized)
}

// typedView interprets raw as []T without copying.
func typedView[T DType](raw *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(raw.AsFloat32()).([]T)
	case float64:
		return any(raw.AsFloat64()).([]T)
	case int32:
		return any(raw.AsInt32()).([]T)
	case int64:
		return any(raw.AsInt64()).([]T)
	case uint8:
		return any(raw.AsUint8()).([]T)
	case bool:
		return any(raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
