package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nx/internal/tensor"
)

// iotaRaw creates an int64 tensor holding 0, 1, 2, ... in row-major order.
func iotaRaw(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	for i := range raw.AsInt64() {
		raw.AsInt64()[i] = int64(i)
	}
	return raw
}

func scalarIndex(t *testing.T, v int32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	raw.AsInt32()[0] = v
	return raw
}

func TestSliceContiguous(t *testing.T) {
	backend := New()

	// x: [[ 0  1  2  3  4  5]
	//     [ 6  7  8  9 10 11]
	//     [12 13 14 15 16 17]
	//     [18 19 20 21 22 23]]
	x := iotaRaw(t, tensor.Shape{4, 6})

	result, err := backend.Slice(x, tensor.StaticStarts(1, 2), []int{2, 3}, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, result.Shape())
	assert.Equal(t, []int64{8, 9, 10, 14, 15, 16}, result.AsInt64())

	// The input is untouched.
	assert.Equal(t, int64(23), x.AsInt64()[23])
}

func TestSliceStrided(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{4, 6})

	result, err := backend.Slice(x, tensor.StaticStarts(0, 1), []int{2, 3}, []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5, 13, 15, 17}, result.AsInt64())
}

func TestSlice3D(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{3, 4, 5})

	result, err := backend.Slice(x, tensor.StaticStarts(0, 1, 0), []int{3, 2, 5}, []int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2, 5}, result.Shape())
	want := []int64{
		5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
		25, 26, 27, 28, 29, 30, 31, 32, 33, 34,
		45, 46, 47, 48, 49, 50, 51, 52, 53, 54,
	}
	assert.Equal(t, want, result.AsInt64())
}

func TestSliceFloat32(t *testing.T) {
	backend := New()
	x, err := tensor.NewRaw(tensor.Shape{5}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(x.AsFloat32(), []float32{0.5, 1.5, 2.5, 3.5, 4.5})

	result, err := backend.Slice(x, tensor.StaticStarts(3), []int{2}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []float32{3.5, 4.5}, result.AsFloat32())
}

func TestSliceScalarAndEmpty(t *testing.T) {
	backend := New()

	s := iotaRaw(t, tensor.Shape{})
	s.AsInt64()[0] = 7
	result, err := backend.Slice(s, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, result.AsInt64())

	x := iotaRaw(t, tensor.Shape{2, 3})
	empty, err := backend.Slice(x, tensor.StaticStarts(0, 3), []int{2, 0}, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 0}, empty.Shape())
	assert.Empty(t, empty.AsInt64())
}

func TestSliceDynamicStartClamped(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{6})

	tests := []struct {
		name  string
		index int32
		want  []int64
	}{
		{"in range", 2, []int64{2, 3}},
		{"past the end", 10, []int64{4, 5}},
		{"negative", -4, []int64{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			starts := []tensor.Start{tensor.DynamicStart(scalarIndex(t, tt.index))}
			result, err := backend.Slice(x, starts, []int{2}, []int{1})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.AsInt64())
		})
	}
}

func TestSliceErrors(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{4, 6})

	_, err := backend.Slice(x, tensor.StaticStarts(0), []int{1}, []int{1})
	require.Error(t, err)

	_, err = backend.Slice(x, tensor.StaticStarts(0, 0), []int{1, 1}, []int{1, 0})
	require.ErrorContains(t, err, "stride 0 must be positive")

	_, err = backend.Slice(x, tensor.StaticStarts(3, 0), []int{2, 1}, []int{1, 1})
	require.ErrorContains(t, err, "out of range for axis 0")

	_, err = backend.Slice(x, tensor.StaticStarts(0, 0), []int{1, 7}, []int{1, 1})
	require.ErrorContains(t, err, "length 7 out of range")

	bad, err := tensor.NewRaw(tensor.Shape{}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	_, err = backend.Slice(x, []tensor.Start{tensor.DynamicStart(bad), tensor.StaticStart(0)}, []int{1, 1}, []int{1, 1})
	require.ErrorContains(t, err, "dynamic start")
}

func TestPutSlice(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{3, 4})

	update, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	copy(update.AsInt64(), []int64{-1, -2, -3, -4})

	result, err := backend.PutSlice(x, tensor.StaticStarts(1, 2), update)
	require.NoError(t, err)
	want := []int64{
		0, 1, 2, 3,
		4, 5, -1, -2,
		8, 9, -3, -4,
	}
	assert.Equal(t, want, result.AsInt64())
	assert.Equal(t, int64(6), x.AsInt64()[6], "input must not be modified")
}

func TestPutSliceDynamicStart(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{5})

	update, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	copy(update.AsInt64(), []int64{100, 101})

	starts := []tensor.Start{tensor.DynamicStart(scalarIndex(t, 9))}
	result, err := backend.PutSlice(x, starts, update)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 100, 101}, result.AsInt64())
}

func TestPutSliceErrors(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{3, 4})

	wrongType, err := tensor.NewRaw(tensor.Shape{1, 1}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	_, err = backend.PutSlice(x, tensor.StaticStarts(0, 0), wrongType)
	require.ErrorContains(t, err, "dtype")

	wrongRank, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	_, err = backend.PutSlice(x, tensor.StaticStarts(0, 0), wrongRank)
	require.ErrorContains(t, err, "rank")

	tooFar, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Int64, tensor.CPU)
	require.NoError(t, err)
	_, err = backend.PutSlice(x, tensor.StaticStarts(2, 0), tooFar)
	require.ErrorContains(t, err, "does not fit axis 0")
}

func TestReshape(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{2, 1, 3})

	view, err := backend.Reshape(x, tensor.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, view.Shape())
	assert.Equal(t, x.AsInt64(), view.AsInt64())

	_, err = backend.Reshape(x, tensor.Shape{4})
	require.Error(t, err)

	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}
