package index

import (
	"github.com/pkg/errors"

	"github.com/born-ml/nx/internal/tensor"
)

// Slice returns the strided window of t that begins at starts and has the
// given lengths, one entry per logical axis. Strides default to 1. No axis
// is dropped and vectorized axes are kept whole.
//
// Static starts must place the whole window inside the axis. Dynamic
// starts are clamped by the backend so that it fits.
func Slice[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], starts []tensor.Start, lengths []int, strides ...int) (*tensor.Tensor[T, B], error) {
	shape := t.Shape()
	rank := len(shape)
	if len(strides) == 0 {
		strides = ones(rank)
	}
	if len(starts) != rank || len(lengths) != rank || len(strides) != rank {
		return nil, newError(ErrInvalidIndexSpec, -1, shape, nil,
			"slice expects %d starts, lengths and strides for shape %v, got %d, %d and %d",
			rank, shape, len(starts), len(lengths), len(strides))
	}
	if rank == 0 {
		return t, nil
	}

	for axis, dim := range shape {
		length, stride := lengths[axis], strides[axis]
		if stride < 1 {
			return nil, newError(ErrInvalidRange, axis, shape, stride,
				"stride must be positive, got %d for axis %d in shape %v", stride, axis, shape)
		}
		if length < 0 || length > dim {
			return nil, newError(ErrOutOfBounds, axis, shape, length,
				"length %d is out of bounds for axis %d in shape %v", length, axis, shape)
		}
		start := starts[axis]
		if start.IsDynamic() {
			if err := checkScalar(start.Dynamic, axis, shape); err != nil {
				return nil, err
			}
			continue
		}
		end := start.Offset + (length-1)*stride
		if length == 0 {
			end = start.Offset - 1
		}
		if start.Offset < 0 || start.Offset > dim || end >= dim {
			return nil, newError(ErrOutOfBounds, axis, shape, start.Offset,
				"start %d with length %d and stride %d does not fit axis %d in shape %v",
				start.Offset, length, stride, axis, shape)
		}
	}

	plan := Plan{
		Starts:  append([]tensor.Start(nil), starts...),
		Lengths: append([]int(nil), lengths...),
	}
	return applyPlan(t, plan, append([]int(nil), strides...))
}

// PutSlice returns a copy of t with update written at starts, one entry
// per logical axis. This is the supported way to replace a region of a
// tensor.
//
// Static starts are clamped to [0, dim - update dim] so the update always
// fits; dynamic starts are clamped the same way by the backend. Both
// tensors must share their vectorized axes.
func PutSlice[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], starts []tensor.Start, update *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	shape, updShape := t.Shape(), update.Shape()
	if len(starts) != len(shape) || len(updShape) != len(shape) {
		return nil, newError(ErrInvalidIndexSpec, -1, shape, updShape,
			"put_slice expects %d starts and an update of rank %d, got %d starts and update shape %v",
			len(shape), len(shape), len(starts), updShape)
	}
	if err := sameVectorized(t, update); err != nil {
		return nil, err
	}

	vectorized := t.VectorizedAxes()
	physical := make([]tensor.Start, 0, len(vectorized)+len(shape))
	for range vectorized {
		physical = append(physical, tensor.StaticStart(0))
	}
	for axis, dim := range shape {
		if updShape[axis] > dim {
			return nil, newError(ErrOutOfBounds, axis, shape, updShape,
				"update shape %v does not fit axis %d of shape %v", updShape, axis, shape)
		}
		start := starts[axis]
		if start.IsDynamic() {
			if err := checkScalar(start.Dynamic, axis, shape); err != nil {
				return nil, err
			}
			physical = append(physical, start)
			continue
		}
		physical = append(physical, tensor.StaticStart(min(max(start.Offset, 0), dim-updShape[axis])))
	}

	backend := t.Backend()
	log().Debug("dispatching put_slice",
		"backend", backend.Name(),
		"shape", shape.String(),
		"update", updShape.String(),
		"starts", physical)

	raw, err := backend.PutSlice(t.Raw(), physical, update.Raw())
	if err != nil {
		return nil, errors.Wrapf(err, "%s backend put_slice", backend.Name())
	}
	if !raw.Shape().Equal(t.Raw().Shape()) || raw.DType() != t.DType() {
		return nil, newError(ErrBackend, -1, shape, raw.Shape(),
			"%s backend returned a %s tensor of shape %v from put_slice, expected %s of shape %v",
			backend.Name(), raw.DType(), raw.Shape(), t.DType(), t.Raw().Shape())
	}
	out, err := tensor.Wrap[T, B](raw, backend, t.Names(), vectorized)
	if err != nil {
		return nil, errors.Wrapf(err, "%s backend put_slice", backend.Name())
	}
	return out, nil
}

func sameVectorized[T tensor.DType, B tensor.Backend](t, update *tensor.Tensor[T, B]) error {
	a, b := t.VectorizedAxes(), update.VectorizedAxes()
	equal := len(a) == len(b)
	for i := 0; equal && i < len(a); i++ {
		equal = a[i] == b[i]
	}
	if !equal {
		return newError(ErrInvalidIndexSpec, -1, t.Shape(), b,
			"put_slice requires matching vectorized axes, got %v and %v", a, b)
	}
	return nil
}
