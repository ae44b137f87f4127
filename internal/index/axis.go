package index

import "github.com/born-ml/nx/internal/tensor"

// ResolveAxis maps key to an axis position. Position keys are returned
// unchanged; whether they are in range is decided by ResolveAxes.
func ResolveAxis(shape tensor.Shape, names tensor.Names, key Key) (int, error) {
	if !key.byName {
		return key.pos, nil
	}
	pos, ok := names.Index(key.name)
	if !ok {
		return 0, newError(ErrUnknownAxisName, -1, shape, key.name,
			"key :%s not found in tensor with names %v", key.name, names)
	}
	return pos, nil
}

// Normalize turns a possibly negative index into an offset in [0, dim).
func Normalize(index, axis int, shape tensor.Shape) (int, error) {
	dim := shape[axis]
	norm := index
	if index < 0 {
		norm = dim + index
	}
	if norm < 0 || norm >= dim {
		return 0, newError(ErrOutOfBounds, axis, shape, index,
			"index %d is out of bounds for axis %d in shape %v", index, axis, shape)
	}
	return norm, nil
}
