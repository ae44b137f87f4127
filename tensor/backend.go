// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/nx/internal/tensor"

// Backend defines the storage capability every backend must implement.
// The indexing engine only describes windows; backends own the data and
// produce new payloads.
//
// Implementations:
//   - backend/cpu: pure Go, row-major host memory
//
// Example:
//
//	import (
//	    "github.com/born-ml/nx/backend/cpu"
//	    "github.com/born-ml/nx/index"
//	    "github.com/born-ml/nx/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.Iota[float32](tensor.Shape{2, 3}, backend)
//	y, _ := index.Get(x, index.Range(0, 0)) // Uses backend.Slice under the hood
type Backend interface {
	// Slice extracts a strided window; one start, length and stride per physical axis.
	Slice(x *RawTensor, starts []Start, lengths, strides []int) (*RawTensor, error)
	// PutSlice returns a copy of x with update written at starts.
	PutSlice(x *RawTensor, starts []Start, update *RawTensor) (*RawTensor, error)
	// Reshape returns x under a new shape with the same element count.
	Reshape(x *RawTensor, newShape Shape) (*RawTensor, error)

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)

// RawTensor is the low-level, backend-owned tensor payload.
//
// RawTensor provides:
//   - Physical shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Zero-copy views via View()
//
// Most users should use the high-level Tensor[T, B] type instead.
type RawTensor = tensor.RawTensor

// NewRaw creates a new zeroed raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
