package index

import "github.com/born-ml/nx/internal/tensor"

// AxisSpec is one raw spec bound to an axis position.
type AxisSpec struct {
	Axis int
	Spec Spec
}

// Classify rewrites s into axis bindings for a tensor of the given shape
// and names. A nil result with a nil error means s imposes no constraint.
//
// Bindings come back in reverse of the order they were written. ResolveAxes
// consumes the first binding for each axis, so when an axis is written
// twice the later entry claims it and the earlier one is reported as a
// duplicate.
func Classify(shape tensor.Shape, names tensor.Names, s Spec) ([]AxisSpec, error) {
	if len(shape) == 0 {
		return nil, newError(ErrScalarIndexing, -1, shape, s.String(),
			"cannot use the tensor[index] syntax on a scalar tensor of shape %v", shape)
	}

	switch s.kind {
	case KindInt, KindScalar, KindRange:
		return []AxisSpec{{Axis: 0, Spec: s}}, nil
	case KindEmpty:
		return nil, nil
	case KindNamed:
		axes := make([]AxisSpec, 0, len(s.pairs))
		for _, p := range s.pairs {
			pos, err := ResolveAxis(shape, names, p.Key)
			if err != nil {
				return nil, err
			}
			axes = append(axes, AxisSpec{Axis: pos, Spec: p.Spec})
		}
		return reversed(axes), nil
	case KindList:
		axes := make([]AxisSpec, 0, len(s.items))
		for i, item := range s.items {
			axes = append(axes, AxisSpec{Axis: i, Spec: item})
		}
		return reversed(axes), nil
	default:
		return nil, newError(ErrInvalidIndexSpec, -1, shape, s.String(),
			"tensor[index] got an invalid index of kind %s, %s", s.kind, acceptedForms)
	}
}

// reversed reverses axes in place. Empty input becomes nil.
func reversed(axes []AxisSpec) []AxisSpec {
	if len(axes) == 0 {
		return nil
	}
	for i, j := 0, len(axes)-1; i < j; i, j = i+1, j-1 {
		axes[i], axes[j] = axes[j], axes[i]
	}
	return axes
}
