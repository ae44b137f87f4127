package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iota32(t *testing.T, shape Shape, names ...string) *Tensor[int32, *MockBackend] {
	t.Helper()
	x, err := Iota[int32](shape, NewMockBackend())
	require.NoError(t, err)
	if len(names) > 0 {
		x, err = Rename(x, names...)
		require.NoError(t, err)
	}
	return x
}

func TestCreation(t *testing.T) {
	b := NewMockBackend()

	z, err := Zeros[float32](Shape{2, 2}, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, z.Data())
	assert.Equal(t, Names{"", ""}, z.Names())

	f, err := Full[float64](Shape{3}, 2.5, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, f.Data())

	i, err := Iota[uint8](Shape{2, 2}, b)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 2, 3}, i.Data())

	bools, err := Iota[bool](Shape{3}, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, bools.Data())

	s, err := Scalar[int64](42, b)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = FromSlice([]float32{1, 2, 3}, Shape{2, 2}, b)
	require.Error(t, err)

	_, err = Zeros[float32](Shape{-2}, b)
	require.Error(t, err)
}

func TestItemRequiresScalar(t *testing.T) {
	x := iota32(t, Shape{2})
	_, err := x.Item()
	require.EqualError(t, err, "item: expected a scalar tensor, got shape (2)")
}

func TestDataIsCopy(t *testing.T) {
	x := iota32(t, Shape{3})
	data := x.Data()
	data[0] = 99
	assert.Equal(t, []int32{0, 1, 2}, x.Data())
}

func TestWrapValidation(t *testing.T) {
	b := NewMockBackend()
	raw, err := NewRaw(Shape{2, 3}, Int32, CPU)
	require.NoError(t, err)

	x, err := Wrap[int32](raw, b, Names{"rows", "cols"}, nil)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, x.Shape())

	_, err = Wrap[float32](raw, b, Unnamed(2), nil)
	require.ErrorContains(t, err, "payload dtype int32 does not match element type float32")

	_, err = Wrap[int32](raw, b, Names{"a"}, nil)
	require.ErrorContains(t, err, "got 1 names for rank 2")

	_, err = Wrap[int32](raw, b, Names{"a", "a"}, nil)
	require.ErrorContains(t, err, `axis name "a" used by axes 0 and 1`)

	_, err = Wrap[int32](raw, b, Names{""}, []VectorizedAxis{{Name: "batch", Size: 3}})
	require.ErrorContains(t, err, `vectorized axis "batch" has size 3, payload has 2`)

	_, err = Wrap[int32](raw, b, nil, []VectorizedAxis{{Name: "x", Size: 2}, {Name: "x", Size: 3}})
	require.ErrorContains(t, err, `vectorized axis name "x" is repeated`)

	_, err = Wrap[int32](raw, b, nil, []VectorizedAxis{{Size: 2}, {Name: "y", Size: 3}})
	require.ErrorContains(t, err, "vectorized axis 0 has no name")
}

func TestRename(t *testing.T) {
	x := iota32(t, Shape{3, 4}, "a", "b")
	assert.Equal(t, Names{"a", "b"}, x.Names())

	y, err := Rename(x, "", "c")
	require.NoError(t, err)
	assert.Equal(t, Names{"", "c"}, y.Names())
	assert.Equal(t, Names{"a", "b"}, x.Names(), "rename must not change its input")

	_, err = Rename(x, "a")
	require.Error(t, err)
}

func TestVectorizeDevectorize(t *testing.T) {
	x := iota32(t, Shape{2, 3, 4}, "batch", "a", "b")

	v, err := Vectorize(x, "batch")
	require.NoError(t, err)
	assert.True(t, v.IsVectorized())
	assert.Equal(t, Shape{3, 4}, v.Shape())
	assert.Equal(t, Names{"a", "b"}, v.Names())
	assert.Equal(t, []VectorizedAxis{{Name: "batch", Size: 2}}, v.VectorizedAxes())
	assert.Equal(t, Shape{2, 3, 4}, v.Raw().Shape())
	assert.Equal(t, 2, v.Rank())
	assert.Equal(t, "Tensor[int32](3, 4)(:a, :b) vectorized [batch: 2] on CPU", v.String())

	vv, err := Vectorize(v, "inner")
	require.NoError(t, err)
	assert.Equal(t, []VectorizedAxis{{Name: "batch", Size: 2}, {Name: "inner", Size: 3}}, vv.VectorizedAxes())
	assert.Equal(t, Shape{4}, vv.Shape())

	flat, err := Devectorize(vv, true)
	require.NoError(t, err)
	assert.False(t, flat.IsVectorized())
	assert.Equal(t, Shape{2, 3, 4}, flat.Shape())
	assert.Equal(t, Names{"batch", "inner", "b"}, flat.Names())

	anon, err := Devectorize(vv, false)
	require.NoError(t, err)
	assert.Equal(t, Names{"", "", "b"}, anon.Names())

	_, err = Vectorize(x, "p", "q", "r", "s")
	require.Error(t, err)

	_, err = Vectorize(v, "batch")
	require.ErrorContains(t, err, `vectorized axis name "batch" is repeated`)
}

func TestSqueeze(t *testing.T) {
	x := iota32(t, Shape{1, 3, 1}, "a", "b", "c")

	y, err := Squeeze(x, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, y.Shape())
	assert.Equal(t, Names{"b"}, y.Names())
	assert.Equal(t, []int32{0, 1, 2}, y.Data())

	same, err := Squeeze(x)
	require.NoError(t, err)
	assert.Same(t, x, same)

	_, err = Squeeze(x, 1)
	require.ErrorContains(t, err, "axis 1 has size 3")
	_, err = Squeeze(x, 3)
	require.ErrorContains(t, err, "out of range")
	_, err = Squeeze(x, 0, 0)
	require.ErrorContains(t, err, "duplicate axis 0")
}

func TestSqueezeKeepsVectorizedAxes(t *testing.T) {
	x := iota32(t, Shape{1, 1, 2})
	v, err := Vectorize(x, "batch")
	require.NoError(t, err)

	y, err := Squeeze(v, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, y.Shape())
	assert.Equal(t, Shape{1, 2}, y.Raw().Shape())
	assert.Equal(t, []VectorizedAxis{{Name: "batch", Size: 1}}, y.VectorizedAxes())
}
