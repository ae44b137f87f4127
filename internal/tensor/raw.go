package tensor

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// CPU is the host device. Every backend returns host memory.
const CPU Device = 0

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a buffer shared between a tensor and its views.
// Nothing writes to it after the producing backend returns.
type tensorBuffer struct {
	data []byte
}

// RawTensor is the low-level, backend-owned tensor payload.
// It only knows its physical shape: names and vectorization live on Tensor.
type RawTensor struct {
	buffer *tensorBuffer // Shared between views
	shape  Shape         // Physical dimensions
	stride []int         // Memory strides (row-major)
	dtype  DataType      // Runtime type information
	device Device        // Compute device
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		buffer: &tensorBuffer{data: make([]byte, byteSize)},
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// View returns a RawTensor sharing r's buffer under a new shape.
// The element count must not change.
func (r *RawTensor) View(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("cannot view %v elements as shape %v", r.shape, shape)
	}
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
		device: r.device,
	}, nil
}

// Shape returns the tensor's physical shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Only the producing backend may write to it.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[:r.ByteSize()]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	r.mustBe(Float32)
	return asSlice[float32](r)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	r.mustBe(Float64)
	return asSlice[float64](r)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	r.mustBe(Int32)
	return asSlice[int32](r)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	r.mustBe(Int64)
	return asSlice[int64](r)
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	r.mustBe(Uint8)
	return r.Data() // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	r.mustBe(Bool)
	return asSlice[bool](r)
}

// ScalarInt reads the value of a rank-0 integer tensor.
func (r *RawTensor) ScalarInt() (int, error) {
	if len(r.shape) != 0 {
		return 0, fmt.Errorf("expected a scalar tensor, got shape %v", r.shape)
	}
	data := r.Data()
	switch r.dtype {
	case Int32:
		return int(int32(binary.NativeEndian.Uint32(data))), nil
	case Int64:
		return int(int64(binary.NativeEndian.Uint64(data))), nil
	case Uint8:
		return int(data[0]), nil
	default:
		return 0, fmt.Errorf("expected an integer tensor, got %s", r.dtype)
	}
}

func (r *RawTensor) mustBe(dtype DataType) {
	if r.dtype != dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dtype))
	}
}

func asSlice[E any](r *RawTensor) []E {
	n := r.NumElements()
	if n == 0 {
		return []E{}
	}
	data := r.buffer.data
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*E)(unsafe.Pointer(&data[0])), n)
}
