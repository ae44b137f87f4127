package tensor

import (
	"fmt"
	"sync"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// SliceCall records the arguments of one MockBackend.Slice invocation.
type SliceCall struct {
	Shape   Shape
	Starts  []Start
	Lengths []int
	Strides []int
}

// MockBackend is a simple backend for testing.
// It implements all operations naively, one element at a time, and
// records every Slice call so tests can inspect what the engine asked for.
type MockBackend struct {
	mu    sync.Mutex
	calls []SliceCall

	// SliceHook, when set, replaces the result of Slice. It lets tests
	// simulate a backend that breaks the capability contract.
	SliceHook func(x *RawTensor, lengths []int) (*RawTensor, error)
}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// SliceCalls returns a copy of the recorded Slice calls.
func (m *MockBackend) SliceCalls() []SliceCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SliceCall(nil), m.calls...)
}

// Slice copies the requested window element by element.
func (m *MockBackend) Slice(x *RawTensor, starts []Start, lengths, strides []int) (*RawTensor, error) {
	m.mu.Lock()
	m.calls = append(m.calls, SliceCall{
		Shape:   x.Shape().Clone(),
		Starts:  append([]Start(nil), starts...),
		Lengths: append([]int(nil), lengths...),
		Strides: append([]int(nil), strides...),
	})
	hook := m.SliceHook
	m.mu.Unlock()

	if hook != nil {
		return hook(x, lengths)
	}

	shape := x.Shape()
	if len(starts) != len(shape) || len(lengths) != len(shape) || len(strides) != len(shape) {
		return nil, fmt.Errorf("mock slice: expected %d starts, lengths and strides", len(shape))
	}
	offsets := make([]int, len(shape))
	for i, s := range starts {
		off, err := s.Resolve(shape[i], lengths[i])
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}

	result, err := NewRaw(Shape(lengths), x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	size := x.DType().Size()
	src, dst := x.Data(), result.Data()
	srcStrides := x.Strides()
	outShape := result.Shape()
	coords := make([]int, len(outShape))
	for i := 0; i < result.NumElements(); i++ {
		unravel(i, outShape, coords)
		srcIdx := 0
		for d, c := range coords {
			srcIdx += (offsets[d] + c*strides[d]) * srcStrides[d]
		}
		copy(dst[i*size:(i+1)*size], src[srcIdx*size:(srcIdx+1)*size])
	}
	return result, nil
}

// PutSlice copies x and overwrites the window at starts with update.
func (m *MockBackend) PutSlice(x *RawTensor, starts []Start, update *RawTensor) (*RawTensor, error) {
	shape, updShape := x.Shape(), update.Shape()
	if len(starts) != len(shape) || len(updShape) != len(shape) {
		return nil, fmt.Errorf("mock put_slice: expected %d starts and a rank %d update", len(shape), len(shape))
	}
	offsets := make([]int, len(shape))
	for i, s := range starts {
		off, err := s.Resolve(shape[i], updShape[i])
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}

	result, err := NewRaw(shape, x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	copy(result.Data(), x.Data())

	size := x.DType().Size()
	src, dst := update.Data(), result.Data()
	dstStrides := result.Strides()
	coords := make([]int, len(updShape))
	for i := 0; i < update.NumElements(); i++ {
		unravel(i, updShape, coords)
		dstIdx := 0
		for d, c := range coords {
			dstIdx += (offsets[d] + c) * dstStrides[d]
		}
		copy(dst[dstIdx*size:(dstIdx+1)*size], src[i*size:(i+1)*size])
	}
	return result, nil
}

// Reshape returns a view of x under newShape.
func (m *MockBackend) Reshape(x *RawTensor, newShape Shape) (*RawTensor, error) {
	return x.View(newShape)
}

// unravel converts a flat row-major index into coordinates.
func unravel(flat int, shape Shape, coords []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		coords[d] = flat % shape[d]
		flat /= shape[d]
	}
}
