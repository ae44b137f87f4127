// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides immutable named tensors for the nx indexing engine.
//
// # Overview
//
// Tensors are the data the indexing engine works on. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Optional axis names, addressed by index expressions
//   - Vectorized axes: leading axes hidden from Shape and never indexed
//   - Device abstraction through the Backend capability
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/nx/backend/cpu"
//	    "github.com/born-ml/nx/index"
//	    "github.com/born-ml/nx/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create a named tensor
//	    x, _ := tensor.Iota[float32](tensor.Shape{3, 4, 5}, backend)
//	    x, _ = tensor.Rename(x, "a", "b", "c")
//
//	    // Select rows 1..2 of axis b
//	    y, _ := index.Get(x, index.Named(index.Axis("b", index.Range(1, 2))))
//	    fmt.Println(y.Shape()) // (3, 2, 5)
//	}
//
// # Vectorized Axes
//
// Vectorize hides leading axes, for example a batch, so that indexing
// sees only the per-example shape:
//
//	b, _ := tensor.Iota[int32](tensor.Shape{2, 3}, backend)
//	v, _ := tensor.Vectorize(b, "batch") // Shape (3), vectorized [batch: 2]
//	row, _ := index.Get(v, index.Int(0)) // Shape (), vectorized [batch: 2]
//
// # Type Safety
//
// Tensors are generic over element type and backend:
//
//	type Tensor[T DType, B Backend] struct { ... }
//
// Supported element types: float32, float64, int32, int64, uint8, bool.
// Only the integer types may be used as dynamic indices.
//
// # Immutability
//
// Every operation returns a new tensor. Axis names, vectorized axes and
// payload of an existing tensor never change.
package tensor
