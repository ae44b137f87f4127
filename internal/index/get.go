package index

import "github.com/born-ml/nx/internal/tensor"

// Get returns the view of t selected by s.
//
// Integer and scalar tensor indices drop their axis, ranges keep it, and
// axes without a spec are taken whole. Vectorized axes are always kept
// whole. Indexing with Empty returns t itself.
//
// Example:
//
//	t, _ := tensor.Iota[float32](tensor.Shape{3, 4, 5}, backend)
//	t, _ = tensor.Rename(t, "a", "b", "c")
//	v, _ := index.Get(t, index.Named(index.Axis("b", index.Range(1, 2)))) // shape (3, 2, 5)
//	w, _ := index.Get(t, index.Int(0))                                    // shape (4, 5)
func Get[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], s Spec) (*tensor.Tensor[T, B], error) {
	shape := t.Shape()
	axes, err := Classify(shape, t.Names(), s)
	if err != nil {
		return nil, err
	}
	if axes == nil {
		return t, nil
	}
	plan, err := ResolveAxes(shape, axes)
	if err != nil {
		return nil, err
	}
	log().Debug("resolved index", "index", s.String(), "shape", shape.String(), "plan", plan.String())
	return applyPlan(t, plan, ones(len(shape)))
}

// GetValue converts v with FromValue and indexes t with the result.
func GetValue[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], v any) (*tensor.Tensor[T, B], error) {
	s, err := FromValue(v)
	if err != nil {
		return nil, err
	}
	return Get(t, s)
}

// Update would replace the region selected by s with fn's result. Tensors
// are immutable, so it always fails; use PutSlice instead.
func Update[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], s Spec, _ func(*tensor.Tensor[T, B]) *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return nil, newError(ErrUnsupportedMutation, -1, t.Shape(), s.String(),
		"tensor[index] does not support updates, use PutSlice to replace a region of %v instead", t.Shape())
}

// Delete would remove the region selected by s. Tensors are immutable, so
// it always fails; use PutSlice instead.
func Delete[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], s Spec) (*tensor.Tensor[T, B], error) {
	return nil, newError(ErrUnsupportedMutation, -1, t.Shape(), s.String(),
		"tensor[index] does not support deletion, use PutSlice to replace a region of %v instead", t.Shape())
}

func ones(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
