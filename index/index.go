// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package index provides tensor[index] for named tensors.
//
// An index expression selects a view of a tensor: integers and scalar
// tensors pick one element and drop the axis, ranges keep the axis, and
// lists bind their entries to axes by position or by name. Vectorized
// axes are always kept whole.
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
//	x, _ := tensor.Iota[float32](tensor.Shape{3, 4, 5}, backend)
//	x, _ = tensor.Rename(x, "a", "b", "c")
//
//	y, _ := index.Get(x, index.Named(index.Axis("b", index.Range(1, 2)))) // (3, 2, 5)
//	z, _ := index.Get(x, index.List(index.Int(0), index.Int(-1)))         // (5)
//
// Tensors are immutable: Update and Delete always fail with
// ErrUnsupportedMutation. Use PutSlice to build a tensor with a region
// replaced.
package index

import (
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/nx/internal/index"
	"github.com/born-ml/nx/tensor"
)

// Spec is an index expression; the zero value is invalid.
type Spec = index.Spec

// Kind tags the variant held by a Spec.
type Kind = index.Kind

// Spec kinds.
const (
	KindInvalid = index.KindInvalid
	KindEmpty   = index.KindEmpty
	KindInt     = index.KindInt
	KindScalar  = index.KindScalar
	KindRange   = index.KindRange
	KindList    = index.KindList
	KindNamed   = index.KindNamed
)

// Key addresses an axis by name or by position.
type Key = index.Key

// Pair binds a spec to one axis.
type Pair = index.Pair

// AxisSpec is one spec bound to an axis position.
type AxisSpec = index.AxisSpec

// Plan is a resolved slice over the logical axes of a tensor.
type Plan = index.Plan

// Error is the concrete error type returned by this package.
type Error = index.Error

// Error kinds, for use with errors.Is.
var (
	ErrScalarIndexing         = index.ErrScalarIndexing
	ErrInvalidIndexSpec       = index.ErrInvalidIndexSpec
	ErrUnknownAxisName        = index.ErrUnknownAxisName
	ErrUnknownOrDuplicateAxis = index.ErrUnknownOrDuplicateAxis
	ErrInvalidRange           = index.ErrInvalidRange
	ErrOutOfBounds            = index.ErrOutOfBounds
	ErrUnsupportedMutation    = index.ErrUnsupportedMutation
	ErrBackend                = index.ErrBackend
)

// Building index expressions

// Empty selects the whole tensor.
func Empty() Spec {
	return index.Empty()
}

// Int selects one element along an axis and drops the axis.
// Negative values count from the end.
func Int[I constraints.Integer](i I) Spec {
	return index.Int(i)
}

// Range selects first..last inclusive and keeps the axis.
func Range[I constraints.Integer](first, last I) Spec {
	return index.Range(first, last)
}

// StepRange is a range with an explicit step. Only a step of 1 can be
// used for slicing.
func StepRange[I constraints.Integer](first, last, step I) Spec {
	return index.StepRange(first, last, step)
}

// Scalar indexes an axis with a rank-0 integer raw tensor.
func Scalar(i *tensor.RawTensor) Spec {
	return index.Scalar(i)
}

// Dynamic indexes an axis with a rank-0 integer tensor read at slice time.
func Dynamic[T tensor.Integer, B tensor.Backend](i *tensor.Tensor[T, B]) Spec {
	return index.Dynamic(i)
}

// List binds items[i] to axis i.
func List(items ...Spec) Spec {
	return index.List(items...)
}

// Named binds each pair to the axis its key addresses.
func Named(pairs ...Pair) Spec {
	return index.Named(pairs...)
}

// Axis pairs s with the axis labelled name.
func Axis(name string, s Spec) Pair {
	return index.Axis(name, s)
}

// At pairs s with axis position pos.
func At(pos int, s Spec) Pair {
	return index.At(pos, s)
}

// Name returns a key addressing the axis labelled name.
func Name(name string) Key {
	return index.Name(name)
}

// Position returns a key addressing axis pos.
func Position(pos int) Key {
	return index.Position(pos)
}

// Parse reads an index expression such as "[b: 1..2, 0: -1]".
func Parse(src string) (Spec, error) {
	return index.Parse(src)
}

// FromValue converts a dynamically typed value (integer, raw tensor,
// slice or Spec) into a Spec.
func FromValue(v any) (Spec, error) {
	return index.FromValue(v)
}

// Indexing

// Get returns the view of x selected by s.
func Get[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], s Spec) (*tensor.Tensor[T, B], error) {
	return index.Get(x, s)
}

// GetValue converts v with FromValue and indexes x with the result.
func GetValue[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], v any) (*tensor.Tensor[T, B], error) {
	return index.GetValue(x, v)
}

// Slice returns the strided window of x beginning at starts with the
// given lengths. Strides default to 1.
func Slice[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], starts []tensor.Start, lengths []int, strides ...int) (*tensor.Tensor[T, B], error) {
	return index.Slice(x, starts, lengths, strides...)
}

// PutSlice returns a copy of x with update written at starts.
func PutSlice[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], starts []tensor.Start, update *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return index.PutSlice(x, starts, update)
}

// Update always fails with ErrUnsupportedMutation.
func Update[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], s Spec, fn func(*tensor.Tensor[T, B]) *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return index.Update(x, s, fn)
}

// Delete always fails with ErrUnsupportedMutation.
func Delete[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B], s Spec) (*tensor.Tensor[T, B], error) {
	return index.Delete(x, s)
}

// Lower-level steps

// Classify rewrites s into axis bindings for the given shape and names.
func Classify(shape tensor.Shape, names tensor.Names, s Spec) ([]AxisSpec, error) {
	return index.Classify(shape, names, s)
}

// ResolveAxes turns axis bindings into a Plan.
func ResolveAxes(shape tensor.Shape, axes []AxisSpec) (Plan, error) {
	return index.ResolveAxes(shape, axes)
}

// ResolveAxis maps key to an axis position.
func ResolveAxis(shape tensor.Shape, names tensor.Names, key Key) (int, error) {
	return index.ResolveAxis(shape, names, key)
}

// Normalize turns a possibly negative index into an offset along axis.
func Normalize(i, axis int, shape tensor.Shape) (int, error) {
	return index.Normalize(i, axis, shape)
}

// SetLogger routes debug output of the engine to l. Nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	index.SetLogger(l)
}
