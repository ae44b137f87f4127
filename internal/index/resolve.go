package index

import (
	"fmt"

	"github.com/born-ml/nx/internal/tensor"
)

// Plan is a resolved slice over the logical axes of a tensor.
type Plan struct {
	Starts  []tensor.Start
	Lengths []int
	Squeeze []int // ascending
}

// String prints the plan for logs.
func (p Plan) String() string {
	return fmt.Sprintf("starts=%v lengths=%v squeeze=%v", p.Starts, p.Lengths, p.Squeeze)
}

// ResolveAxes walks axes from rank-1 down to 0, consuming the binding for
// each axis. Unbound axes are taken whole. Bindings left over once every
// axis has been visited point outside the shape or at an axis that was
// already resolved.
func ResolveAxes(shape tensor.Shape, axes []AxisSpec) (Plan, error) {
	rank := len(shape)
	plan := Plan{
		Starts:  make([]tensor.Start, rank),
		Lengths: make([]int, rank),
	}
	pending := append([]AxisSpec(nil), axes...)
	var squeeze []int

	for axis := rank - 1; axis >= 0; axis-- {
		spec, ok := take(&pending, axis)
		if !ok {
			plan.Starts[axis] = tensor.StaticStart(0)
			plan.Lengths[axis] = shape[axis]
			continue
		}

		switch spec.kind {
		case KindScalar:
			if err := checkScalar(spec.scalar, axis, shape); err != nil {
				return Plan{}, err
			}
			plan.Starts[axis] = tensor.DynamicStart(spec.scalar)
			plan.Lengths[axis] = 1
			squeeze = append(squeeze, axis)
		case KindInt:
			start, err := Normalize(spec.n, axis, shape)
			if err != nil {
				return Plan{}, err
			}
			plan.Starts[axis] = tensor.StaticStart(start)
			plan.Lengths[axis] = 1
			squeeze = append(squeeze, axis)
		case KindRange:
			first, err := Normalize(spec.first, axis, shape)
			if err != nil {
				return Plan{}, err
			}
			last, err := Normalize(spec.last, axis, shape)
			if err != nil {
				return Plan{}, err
			}
			if last < first || spec.step != 1 {
				return Plan{}, newError(ErrInvalidRange, axis, shape, spec.String(),
					"slicing a tensor requires a non-empty range with a step of 1, got: %s", spec)
			}
			plan.Starts[axis] = tensor.StaticStart(first)
			plan.Lengths[axis] = last - first + 1
		default:
			return Plan{}, newError(ErrInvalidIndexSpec, axis, shape, spec.String(),
				"expected a tensor, integer, or range to index axis %d, got: %s", axis, spec)
		}
	}

	if len(pending) > 0 {
		axis := pending[0].Axis
		return Plan{}, newError(ErrUnknownOrDuplicateAxis, axis, shape, axis,
			"unknown or duplicate axis %d found when slicing shape %v", axis, shape)
	}

	// Collected from the highest axis down.
	for i, j := 0, len(squeeze)-1; i < j; i, j = i+1, j-1 {
		squeeze[i], squeeze[j] = squeeze[j], squeeze[i]
	}
	plan.Squeeze = squeeze
	return plan, nil
}

// take removes and returns the first binding for axis.
func take(pending *[]AxisSpec, axis int) (Spec, bool) {
	for i, a := range *pending {
		if a.Axis == axis {
			*pending = append((*pending)[:i], (*pending)[i+1:]...)
			return a.Spec, true
		}
	}
	return Spec{}, false
}

// checkScalar validates a dynamic index; its value is only known to the backend.
func checkScalar(index *tensor.RawTensor, axis int, shape tensor.Shape) error {
	if index == nil {
		return newError(ErrInvalidIndexSpec, axis, shape, nil,
			"expected a scalar tensor to index axis %d, got nil", axis)
	}
	if len(index.Shape()) != 0 || !index.DType().IsInteger() {
		return newError(ErrInvalidIndexSpec, axis, shape, index.Shape(),
			"expected a scalar integer tensor to index axis %d, got %s tensor of shape %v",
			axis, index.DType(), index.Shape())
	}
	return nil
}
