// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/nx/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Integer is the constraint for element types usable as a dynamic index.
type Integer = tensor.Integer

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the host device.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Names holds one optional label per axis; "" is unnamed.
type Names = tensor.Names

// VectorizedAxis is a leading axis hidden from Shape and Names.
type VectorizedAxis = tensor.VectorizedAxis

// Start is a static or dynamic slice start along one axis.
type Start = tensor.Start

// Tensor is an immutable named tensor.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Iota[float32](tensor.Shape{2, 3}, backend)
//	row, _ := index.Get(x, index.Int(0)) // Shape: (3)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Zeros[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	return tensor.Full[T, B](shape, value, b)
}

// Iota creates a tensor counting up from zero in row-major order.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Iota[int32](tensor.Shape{2, 3}, backend) // [[0 1 2] [3 4 5]]
func Iota[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Iota[T, B](shape, b)
}

// Scalar creates a rank-0 tensor.
func Scalar[T DType, B Backend](value T, b B) (*Tensor[T, B], error) {
	return tensor.Scalar[T, B](value, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates an unnamed tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Iota, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Wrap creates a tensor from a raw tensor, its names and its vectorized axes.
func Wrap[T DType, B Backend](raw *RawTensor, b B, names Names, vectorized []VectorizedAxis) (*Tensor[T, B], error) {
	return tensor.Wrap[T, B](raw, b, names, vectorized)
}

// Metadata functions

// Rename returns x with new axis names.
func Rename[T DType, B Backend](x *Tensor[T, B], names ...string) (*Tensor[T, B], error) {
	return tensor.Rename(x, names...)
}

// Vectorize hides the leading len(names) axes of x as vectorized axes.
func Vectorize[T DType, B Backend](x *Tensor[T, B], names ...string) (*Tensor[T, B], error) {
	return tensor.Vectorize(x, names...)
}

// Devectorize turns every vectorized axis back into a leading axis.
func Devectorize[T DType, B Backend](x *Tensor[T, B], keepNames bool) (*Tensor[T, B], error) {
	return tensor.Devectorize(x, keepNames)
}

// Squeeze removes size-1 axes.
func Squeeze[T DType, B Backend](x *Tensor[T, B], axes ...int) (*Tensor[T, B], error) {
	return tensor.Squeeze(x, axes...)
}

// Utility functions

// ParseDataType parses a data type name such as "float32".
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// StaticStarts converts fixed offsets into slice starts.
func StaticStarts(offsets ...int) []Start {
	return tensor.StaticStarts(offsets...)
}

// DynamicStart returns a start read from a rank-0 integer tensor at slice time.
func DynamicStart(index *RawTensor) Start {
	return tensor.DynamicStart(index)
}
