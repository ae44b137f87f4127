package index

import (
	"github.com/pkg/errors"

	"github.com/born-ml/nx/internal/tensor"
)

// applyPlan slices t according to plan over its logical axes, then
// squeezes plan.Squeeze. Vectorized axes are prepended to the plan as
// whole axes, hidden from the backend by devectorizing, and restored on
// the result before squeezing, so they are never sliced or squeezed.
func applyPlan[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], plan Plan, strides []int) (*tensor.Tensor[T, B], error) {
	vectorized := t.VectorizedAxes()
	offset := len(vectorized)
	rank := offset + len(plan.Starts)

	starts := make([]tensor.Start, 0, rank)
	lengths := make([]int, 0, rank)
	steps := make([]int, 0, rank)
	vecNames := make([]string, 0, offset)
	for _, v := range vectorized {
		starts = append(starts, tensor.StaticStart(0))
		lengths = append(lengths, v.Size)
		steps = append(steps, 1)
		vecNames = append(vecNames, v.Name)
	}
	starts = append(starts, plan.Starts...)
	lengths = append(lengths, plan.Lengths...)
	steps = append(steps, strides...)

	flat, err := tensor.Devectorize(t, false)
	if err != nil {
		return nil, errors.Wrap(err, "devectorize")
	}
	sliced, err := dispatch(flat, starts, lengths, steps)
	if err != nil {
		return nil, err
	}
	out, err := tensor.Vectorize(sliced, vecNames...)
	if err != nil {
		return nil, errors.Wrap(err, "revectorize")
	}
	out, err = tensor.Squeeze(out, plan.Squeeze...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// dispatch hands a fully physical slice to the backend and checks that
// the payload it returns honours the Slice contract.
func dispatch[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], starts []tensor.Start, lengths, strides []int) (*tensor.Tensor[T, B], error) {
	backend := t.Backend()
	log().Debug("dispatching slice",
		"backend", backend.Name(),
		"shape", t.Shape().String(),
		"starts", starts,
		"lengths", lengths,
		"strides", strides)

	raw, err := backend.Slice(t.Raw(), starts, lengths, strides)
	if err != nil {
		return nil, errors.Wrapf(err, "%s backend slice", backend.Name())
	}
	if !raw.Shape().Equal(lengths) || raw.DType() != t.DType() {
		return nil, newError(ErrBackend, -1, t.Shape(), raw.Shape(),
			"%s backend returned a %s tensor of shape %v, expected %s of shape %v",
			backend.Name(), raw.DType(), raw.Shape(), t.DType(), tensor.Shape(lengths))
	}
	out, err := tensor.Wrap[T, B](raw, backend, t.Names(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "%s backend slice", backend.Name())
	}
	return out, nil
}
