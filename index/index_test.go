// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nx/backend/cpu"
	"github.com/born-ml/nx/index"
	"github.com/born-ml/nx/tensor"
)

func TestPublicGet(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.Iota[int32](tensor.Shape{3, 4, 5}, backend)
	require.NoError(t, err)
	x, err = tensor.Rename(x, "a", "b", "c")
	require.NoError(t, err)

	y, err := index.Get(x, index.Named(index.Axis("b", index.Range(1, 2))))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2, 5}, y.Shape())

	z, err := index.Get(x, index.Int(0))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 5}, z.Shape())

	spec, err := index.Parse("[c: -1, a: 2]")
	require.NoError(t, err)
	w, err := index.Get(x, spec)
	require.NoError(t, err)
	assert.Equal(t, []int32{44, 49, 54, 59}, w.Data())

	_, err = index.Get(x, index.Int(3))
	require.ErrorIs(t, err, index.ErrOutOfBounds)
}

func TestPublicDynamicAndPutSlice(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.Zeros[int64](tensor.Shape{4}, backend)
	require.NoError(t, err)
	i, err := tensor.Scalar[int64](2, backend)
	require.NoError(t, err)
	u, err := tensor.Full[int64](tensor.Shape{1}, 9, backend)
	require.NoError(t, err)

	y, err := index.PutSlice(x, []tensor.Start{tensor.DynamicStart(i.Raw())}, u)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 9, 0}, y.Data())

	v, err := index.Get(y, index.Dynamic(i))
	require.NoError(t, err)
	item, err := v.Item()
	require.NoError(t, err)
	assert.Equal(t, int64(9), item)

	w, err := index.Slice(y, tensor.StaticStarts(1), []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 9}, w.Data())
}

func TestPublicMutationErrors(t *testing.T) {
	x, err := tensor.Zeros[float32](tensor.Shape{2}, cpu.New())
	require.NoError(t, err)

	_, err = index.Delete(x, index.Int(0))
	require.ErrorIs(t, err, index.ErrUnsupportedMutation)
	_, err = index.Update(x, index.Int(0), nil)
	require.ErrorIs(t, err, index.ErrUnsupportedMutation)
}

func TestPublicPipeline(t *testing.T) {
	shape := tensor.Shape{3, 4}
	names := tensor.Names{"rows", "cols"}

	axes, err := index.Classify(shape, names, index.Named(index.Axis("cols", index.Int(-1))))
	require.NoError(t, err)
	plan, err := index.ResolveAxes(shape, axes)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, plan.Lengths)
	assert.Equal(t, []int{1}, plan.Squeeze)

	pos, err := index.ResolveAxis(shape, names, index.Name("rows"))
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	n, err := index.Normalize(-2, 1, shape)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
