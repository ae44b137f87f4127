// Package index implements tensor[index] for named tensors.
//
// An index expression is first classified into axis bindings, then
// resolved right to left into a Plan of starts, lengths and axes to
// squeeze. The plan is widened with the tensor's vectorized axes, handed
// to the backend's Slice capability with unit strides, and the result is
// re-vectorized and squeezed. The engine never reads element data.
//
// # Index forms
//
//	index.Int(0)                                  // axis 0, dropped
//	index.Range(1, 2)                             // axis 0, kept, length 2
//	index.Dynamic(i)                              // axis 0 at a runtime scalar
//	index.List(index.Int(0), index.Range(1, 2))   // entry i binds axis i
//	index.Named(index.Axis("b", index.Int(1)))    // keyed by name or position
//	index.Empty()                                 // the tensor itself
//
// The same forms can be written as text and read with Parse, e.g.
// "[b: 1..2, 0]" is not valid (keyed and positional entries do not mix)
// while "[b: 1..2, 0: 0]" is.
//
// # Errors
//
// Every failure wraps one of the Err* kinds in an *Error that records the
// axis, shape and offending value.
//
// Tensors are immutable: Update and Delete always fail with
// ErrUnsupportedMutation; PutSlice builds a new tensor with a region
// replaced.
package index
