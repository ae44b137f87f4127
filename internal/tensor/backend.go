package tensor

import "fmt"

// Backend defines the capability every storage engine must implement.
// Backends own RawTensor payloads; the indexing engine never reads or
// writes element data itself and only describes what to produce.
//
// All operations return new RawTensors. Inputs are never modified.
//
// Implementations:
//   - internal/backend/cpu: pure Go reference backend
//   - MockBackend: records calls for tests
type Backend interface {
	// Slice extracts a strided window. starts, lengths and strides have one
	// entry per physical axis of x. Dynamic starts are read by the backend
	// and clamped to [0, dim - length]. The result has shape lengths.
	Slice(x *RawTensor, starts []Start, lengths, strides []int) (*RawTensor, error)

	// PutSlice returns a copy of x with update written at starts. Static
	// starts are already clamped by the caller; dynamic starts are clamped
	// to [0, dim - update dim].
	PutSlice(x *RawTensor, starts []Start, update *RawTensor) (*RawTensor, error)

	// Reshape returns x under a new physical shape with the same number of elements.
	Reshape(x *RawTensor, newShape Shape) (*RawTensor, error)

	// Metadata
	Name() string
	Device() Device
}

// Start is the starting offset of a slice along one axis. It is either a
// static offset or a rank-0 integer tensor whose value the backend reads
// when slicing.
type Start struct {
	Offset  int
	Dynamic *RawTensor
}

// StaticStart returns a Start at a fixed offset.
func StaticStart(offset int) Start {
	return Start{Offset: offset}
}

// DynamicStart returns a Start resolved from a scalar tensor at slice time.
func DynamicStart(index *RawTensor) Start {
	return Start{Dynamic: index}
}

// StaticStarts converts fixed offsets into Starts.
func StaticStarts(offsets ...int) []Start {
	starts := make([]Start, len(offsets))
	for i, off := range offsets {
		starts[i] = StaticStart(off)
	}
	return starts
}

// IsDynamic reports whether the start is resolved by the backend.
func (s Start) IsDynamic() bool {
	return s.Dynamic != nil
}

// Resolve returns the concrete offset for an axis of size dim sliced with
// the given length. Dynamic offsets are clamped so the window fits.
func (s Start) Resolve(dim, length int) (int, error) {
	if !s.IsDynamic() {
		return s.Offset, nil
	}
	v, err := s.Dynamic.ScalarInt()
	if err != nil {
		return 0, fmt.Errorf("dynamic start: %w", err)
	}
	return min(max(v, 0), max(dim-length, 0)), nil
}

// String prints static offsets as integers and dynamic ones as #tensor.
func (s Start) String() string {
	if s.IsDynamic() {
		return fmt.Sprintf("#tensor<%s>", s.Dynamic.DType())
	}
	return fmt.Sprint(s.Offset)
}
