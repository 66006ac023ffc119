package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Buffers come back zero-initialized from make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, T(1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution (mean 0, std 1).
//
// Example:
//
//	t := tensor.Randn[float64](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64()) //nolint:gosec // G404: statistical sampling, not security
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
//
// Example:
//
//	t := tensor.Rand[float64](Shape{10, 10}, backend)
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64()) //nolint:gosec // G404: statistical sampling, not security
	}
	return t
}

// Linspace creates a 1D tensor of num evenly spaced values from start to
// stop, both endpoints included. Panics if num < 2.
//
// Example:
//
//	t := tensor.Linspace[float64](-2, 2, 401, backend)
func Linspace[T DType, B Backend](start, stop T, num int, b B) *Tensor[T, B] {
	if num < 2 {
		panic("linspace: num must be at least 2")
	}

	t := Zeros[T, B](Shape{num}, b)
	data := t.Data()
	step := float64(stop-start) / float64(num-1)
	for i := range data {
		data[i] = start + T(float64(i)*step)
	}
	data[num-1] = stop // Exact endpoint despite rounding
	return t
}
