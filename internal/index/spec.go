package index

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/nx/internal/tensor"
)

// Kind tags the variant held by a Spec.
type Kind int

// Spec variants. The zero Kind is invalid, so an
// uninitialised Spec is rejected rather than read as "no constraints".
const (
	KindInvalid Kind = iota
	KindEmpty
	KindInt
	KindScalar
	KindRange
	KindList
	KindNamed
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "integer"
	case KindScalar:
		return "scalar tensor"
	case KindRange:
		return "range"
	case KindList:
		return "list"
	case KindNamed:
		return "keyed list"
	default:
		return "invalid"
	}
}

// Spec is an index expression. Build one with Int, Range, StepRange,
// Scalar, List, Named or Empty; the zero value is invalid.
type Spec struct {
	kind Kind

	n int // KindInt

	first, last, step int // KindRange

	scalar *tensor.RawTensor // KindScalar

	items []Spec // KindList
	pairs []Pair // KindNamed
}

// Key addresses an axis either by name or by position.
type Key struct {
	name   string
	pos    int
	byName bool
}

// Name returns a key addressing the axis labelled name.
func Name(name string) Key {
	return Key{name: name, byName: true}
}

// Position returns a key addressing axis pos directly.
func Position(pos int) Key {
	return Key{pos: pos}
}

// IsName reports whether the key is symbolic.
func (k Key) IsName() bool {
	return k.byName
}

// String prints names as :name and positions as integers.
func (k Key) String() string {
	if k.byName {
		return ":" + k.name
	}
	return fmt.Sprint(k.pos)
}

// Pair binds a spec to one axis.
type Pair struct {
	Key  Key
	Spec Spec
}

// Axis pairs s with the axis labelled name.
func Axis(name string, s Spec) Pair {
	return Pair{Key: Name(name), Spec: s}
}

// At pairs s with axis position pos.
func At(pos int, s Spec) Pair {
	return Pair{Key: Position(pos), Spec: s}
}

// Empty is the index that selects the whole tensor.
func Empty() Spec {
	return Spec{kind: KindEmpty}
}

// Int selects one element along an axis and drops the axis.
// Negative values count from the end. Unsigned values above math.MaxInt
// saturate to math.MaxInt, which is out of bounds for every axis.
func Int[I constraints.Integer](i I) Spec {
	return Spec{kind: KindInt, n: toInt(i)}
}

// Range selects first..last inclusive and keeps the axis.
func Range[I constraints.Integer](first, last I) Spec {
	return StepRange(first, last, 1)
}

// StepRange is a range with an explicit step. Only step 1 resolves; other
// steps are representable so that they can be reported.
func StepRange[I constraints.Integer](first, last, step I) Spec {
	return Spec{kind: KindRange, first: toInt(first), last: toInt(last), step: toInt(step)}
}

// toInt converts i to int, saturating values that do not fit.
func toInt[I constraints.Integer](i I) int {
	if i >= 0 && uint64(i) > math.MaxInt {
		return math.MaxInt
	}
	return int(i)
}

// Scalar indexes an axis with a rank-0 integer tensor whose value is read
// by the backend when slicing.
func Scalar(index *tensor.RawTensor) Spec {
	return Spec{kind: KindScalar, scalar: index}
}

// Dynamic is Scalar for a typed tensor.
func Dynamic[T tensor.Integer, B tensor.Backend](index *tensor.Tensor[T, B]) Spec {
	return Scalar(index.Raw())
}

// List binds items[i] to axis i.
func List(items ...Spec) Spec {
	return Spec{kind: KindList, items: append([]Spec(nil), items...)}
}

// Named binds each pair's spec to the axis its key addresses.
func Named(pairs ...Pair) Spec {
	return Spec{kind: KindNamed, pairs: append([]Pair(nil), pairs...)}
}

// Kind returns the variant held by s.
func (s Spec) Kind() Kind {
	return s.kind
}

// String renders s in the syntax accepted by Parse.
func (s Spec) String() string {
	switch s.kind {
	case KindEmpty:
		return "[]"
	case KindInt:
		return fmt.Sprint(s.n)
	case KindScalar:
		if s.scalar == nil {
			return "#tensor<nil>"
		}
		return fmt.Sprintf("#tensor<%s>", s.scalar.DType())
	case KindRange:
		if s.step == 1 {
			return fmt.Sprintf("%d..%d", s.first, s.last)
		}
		return fmt.Sprintf("%d..%d//%d", s.first, s.last, s.step)
	case KindList:
		parts := make([]string, len(s.items))
		for i, item := range s.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindNamed:
		parts := make([]string, len(s.pairs))
		for i, p := range s.pairs {
			key := p.Key.String()
			if p.Key.byName {
				key = p.Key.name
			}
			parts[i] = key + ": " + p.Spec.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}
