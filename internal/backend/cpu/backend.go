// Package cpu implements the pure Go reference backend for the indexing engine.
package cpu

import (
	"fmt"

	"github.com/born-ml/nx/internal/tensor"
)

// Verify that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend stores tensors in host memory in row-major order.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Reshape returns a tensor with the same data but different shape.
// This is a view operation (zero-copy).
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) (*tensor.RawTensor, error) {
	view, err := t.View(newShape)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	return view, nil
}

// resolveStarts turns starts into concrete offsets for a window of the
// given lengths over shape. Dynamic starts are clamped so the window fits.
func resolveStarts(op string, shape tensor.Shape, starts []tensor.Start, lengths []int) ([]int, error) {
	if len(starts) != len(shape) || len(lengths) != len(shape) {
		return nil, fmt.Errorf("%s: expected %d starts and lengths for shape %v, got %d and %d",
			op, len(shape), shape, len(starts), len(lengths))
	}
	offsets := make([]int, len(shape))
	for axis, s := range starts {
		if lengths[axis] < 0 || lengths[axis] > shape[axis] {
			return nil, fmt.Errorf("%s: length %d out of range for axis %d of shape %v", op, lengths[axis], axis, shape)
		}
		off, err := s.Resolve(shape[axis], lengths[axis])
		if err != nil {
			return nil, fmt.Errorf("%s: axis %d: %w", op, axis, err)
		}
		offsets[axis] = off
	}
	return offsets, nil
}
