package index

import (
	"fmt"
	"math"

	"github.com/born-ml/nx/internal/tensor"
)

// FromValue converts a dynamically typed index expression into a Spec.
//
// Accepted values:
//   - Spec, returned as is
//   - any Go integer type, as Int; unsigned values above math.MaxInt fail with ErrOutOfBounds
//   - *tensor.RawTensor, as Scalar
//   - []int, []Spec or []any, as a positional List (elements of []any are converted recursively)
//   - []Pair, as Named
//
// Anything else fails with ErrInvalidIndexSpec.
func FromValue(v any) (Spec, error) {
	switch x := v.(type) {
	case Spec:
		return x, nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUnsigned(uint64(x))
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return fromUnsigned(uint64(x))
	case uint64:
		return fromUnsigned(x)
	case *tensor.RawTensor:
		if x == nil {
			break
		}
		return Scalar(x), nil
	case []int:
		items := make([]Spec, len(x))
		for i, n := range x {
			items[i] = Int(n)
		}
		return List(items...), nil
	case []Spec:
		return List(x...), nil
	case []Pair:
		return Named(x...), nil
	case []any:
		items := make([]Spec, len(x))
		for i, elem := range x {
			s, err := FromValue(elem)
			if err != nil {
				return Spec{}, err
			}
			items[i] = s
		}
		return List(items...), nil
	}
	return Spec{}, newError(ErrInvalidIndexSpec, -1, nil, v,
		"tensor[index] expects index to be one of the accepted forms, got %s; %s", describe(v), acceptedForms)
}

// fromUnsigned rejects values that would wrap when converted to int.
func fromUnsigned(v uint64) (Spec, error) {
	if v > math.MaxInt {
		return Spec{}, newError(ErrOutOfBounds, -1, nil, v,
			"index %d is out of bounds, it does not fit in an int", v)
	}
	return Int(v), nil
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T %v", v, v)
}
