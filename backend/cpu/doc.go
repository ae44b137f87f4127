// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the indexing engine.
//
// # Overview
//
// This package implements the storage capability with:
//   - Pure Go implementation (no CGO)
//   - Strided Slice with row-wise copies for contiguous runs
//   - PutSlice producing a fresh copy of the input
//   - Zero-copy Reshape views
//   - Dynamic starts clamped so the window always fits
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
//	    x, _ := tensor.Iota[int64](tensor.Shape{4, 6}, backend)
//	    y, _ := index.Get(x, index.List(index.Range(1, 2), index.Range(2, 4)))
//	    _ = y.Data() // [8 9 10 14 15 16]
//	}
//
// # Data Types
//
// Float32, Float64, Int32, Int64, Uint8 and Bool tensors are supported.
// Windows are copied byte-wise, so every element type takes the same path.
package cpu
