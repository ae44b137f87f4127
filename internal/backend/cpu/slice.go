package cpu

import (
	"fmt"

	"github.com/born-ml/nx/internal/tensor"
)

// Slice copies the strided window of x starting at starts into a new
// tensor of shape lengths.
//
// Rows along the last axis are copied with a single copy() when its stride
// is 1, so contiguous windows cost one memmove per row.
//
// Example:
//
//	x: [4, 6]
//	starts: [1, 2], lengths: [2, 3], strides: [1, 1]
//	output: [2, 3] = x[1:3, 2:5]
func (cpu *CPUBackend) Slice(x *tensor.RawTensor, starts []tensor.Start, lengths, strides []int) (*tensor.RawTensor, error) {
	shape := x.Shape()
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("slice: expected %d strides for shape %v, got %d", len(shape), shape, len(strides))
	}
	offsets, err := resolveStarts("slice", shape, starts, lengths)
	if err != nil {
		return nil, err
	}
	for axis := range shape {
		if strides[axis] < 1 {
			return nil, fmt.Errorf("slice: stride %d must be positive for axis %d", strides[axis], axis)
		}
		if lengths[axis] == 0 {
			continue
		}
		if end := offsets[axis] + (lengths[axis]-1)*strides[axis]; offsets[axis] < 0 || end >= shape[axis] {
			return nil, fmt.Errorf("slice: window [%d, %d] out of range for axis %d of shape %v",
				offsets[axis], end, axis, shape)
		}
	}

	result, err := tensor.NewRaw(tensor.Shape(lengths), x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("slice: failed to create result tensor: %w", err)
	}
	if result.NumElements() == 0 {
		return result, nil
	}

	size := x.DType().Size()
	src, dst := x.Data(), result.Data()
	last := len(shape) - 1
	if last < 0 {
		copy(dst, src[:size])
		return result, nil
	}
	run, step := lengths[last], strides[last]
	out := 0
	eachRow(offsets, lengths, strides, x.Strides(), func(base int) {
		if step == 1 {
			n := run * size
			copy(dst[out:out+n], src[base*size:base*size+n])
			out += n
			return
		}
		for i := 0; i < run; i++ {
			idx := (base + i*step) * size
			copy(dst[out:out+size], src[idx:idx+size])
			out += size
		}
	})
	return result, nil
}

// PutSlice returns a copy of x with update written at starts.
func (cpu *CPUBackend) PutSlice(x *tensor.RawTensor, starts []tensor.Start, update *tensor.RawTensor) (*tensor.RawTensor, error) {
	shape, updShape := x.Shape(), update.Shape()
	if update.DType() != x.DType() {
		return nil, fmt.Errorf("put_slice: update dtype %s does not match %s", update.DType(), x.DType())
	}
	if len(updShape) != len(shape) {
		return nil, fmt.Errorf("put_slice: update rank %d does not match rank %d", len(updShape), len(shape))
	}
	offsets, err := resolveStarts("put_slice", shape, starts, updShape)
	if err != nil {
		return nil, err
	}
	for axis := range shape {
		if offsets[axis] < 0 || offsets[axis]+updShape[axis] > shape[axis] {
			return nil, fmt.Errorf("put_slice: update of size %d at %d does not fit axis %d of shape %v",
				updShape[axis], offsets[axis], axis, shape)
		}
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		return nil, fmt.Errorf("put_slice: failed to create result tensor: %w", err)
	}
	dst := result.Data()
	copy(dst, x.Data())
	if update.NumElements() == 0 {
		return result, nil
	}

	size := x.DType().Size()
	src := update.Data()
	if len(shape) == 0 {
		copy(dst, src)
		return result, nil
	}
	n := updShape[len(updShape)-1] * size
	in := 0
	eachRow(offsets, updShape, nil, result.Strides(), func(base int) {
		copy(dst[base*size:base*size+n], src[in:in+n])
		in += n
	})
	return result, nil
}

// eachRow calls fn with the element index, inside a tensor with the given
// strides, of the first element of every row of a window. Rows run along
// the last axis and are visited in row-major order. A nil steps means unit
// strides. The window must be non-empty and have rank >= 1.
func eachRow(offsets, lengths, steps, strides []int, fn func(base int)) {
	last := len(lengths) - 1
	step := func(d int) int {
		if steps == nil {
			return 1
		}
		return steps[d]
	}
	coords := make([]int, last)
	for {
		base := offsets[last] * strides[last]
		for d := 0; d < last; d++ {
			base += (offsets[d] + coords[d]*step(d)) * strides[d]
		}
		fn(base)

		d := last - 1
		for ; d >= 0; d-- {
			coords[d]++
			if coords[d] < lengths[d] {
				break
			}
			coords[d] = 0
		}
		if d < 0 {
			return
		}
	}
}
