package index

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/nx/internal/tensor"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, so callers can branch with errors.Is.
var (
	ErrScalarIndexing         = errors.New("cannot index a scalar tensor")
	ErrInvalidIndexSpec       = errors.New("invalid index specification")
	ErrUnknownAxisName        = errors.New("unknown axis name")
	ErrUnknownOrDuplicateAxis = errors.New("unknown or duplicate axis")
	ErrInvalidRange           = errors.New("invalid range")
	ErrOutOfBounds            = errors.New("index out of bounds")
	ErrUnsupportedMutation    = errors.New("unsupported mutation")
	ErrBackend                = errors.New("backend contract violation")
)

// acceptedForms is appended to classification errors.
const acceptedForms = `expected one of:
  * an integer, e.g. 0 or -1
  * a range with step 1, e.g. 1..3
  * a scalar integer tensor (dynamic index)
  * an empty list, meaning no constraints
  * a list of the above, binding entry i to axis i, e.g. [0, 1..2]
  * a list of axis/spec pairs keyed by name or position, e.g. [b: 1..2, 0: 3]`

// Error is the concrete error returned by the indexing engine. Axis is -1
// when the failure is not tied to one axis.
type Error struct {
	Kind  error
	Axis  int
	Shape tensor.Shape
	Value any
	msg   string
}

// Error implements error.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// newError builds an *Error with a stack trace attached.
func newError(kind error, axis int, shape tensor.Shape, value any, format string, args ...any) error {
	return errors.WithStack(&Error{
		Kind:  kind,
		Axis:  axis,
		Shape: shape.Clone(),
		Value: value,
		msg:   fmt.Sprintf(format, args...),
	})
}
