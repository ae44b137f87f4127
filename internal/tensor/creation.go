package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t, _ := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		return nil, err
	}
	// Data is already zero-initialized by make()
	return New[T, B](raw, b), nil
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, _ := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	t, err := Zeros[T, B](shape, b)
	if err != nil {
		return nil, err
	}
	data := typedView[T](t.raw)
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// Iota creates a tensor whose elements count up from zero in row-major
// order. Bool tensors alternate false, true.
//
// Example:
//
//	t, _ := tensor.Iota[int32](Shape{2, 3}, backend) // [[0 1 2] [3 4 5]]
func Iota[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	t, err := Zeros[T, B](shape, b)
	if err != nil {
		return nil, err
	}
	switch data := any(typedView[T](t.raw)).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(i)
		}
	case []float64:
		for i := range data {
			data[i] = float64(i)
		}
	case []int32:
		for i := range data {
			data[i] = int32(i)
		}
	case []int64:
		for i := range data {
			data[i] = int64(i)
		}
	case []uint8:
		for i := range data {
			data[i] = uint8(i)
		}
	case []bool:
		for i := range data {
			data[i] = i%2 == 1
		}
	}
	return t, nil
}

// Scalar creates a rank-0 tensor holding value.
func Scalar[T DType, B Backend](value T, b B) (*Tensor[T, B], error) {
	return FromSlice[T, B]([]T{value}, Shape{}, b)
}
