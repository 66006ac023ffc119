package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Sum computes the total of all elements as a scalar tensor.
func (c *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := c.newResult("sum", tensor.Shape{}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		// Accumulate in float64 so large tensors don't lose low bits.
		var sum float64
		for _, v := range x.AsFloat32() {
			sum += float64(v)
		}
		result.AsFloat32()[0] = float32(sum)
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	}
	return result
}

// Mean computes the average of all elements as a scalar tensor.
func (c *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result := c.Sum(x)
	n := float64(x.NumElements())

	switch result.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] /= float32(n)
	case tensor.Float64:
		result.AsFloat64()[0] /= n
	}
	return result
}

// SumDim sums elements along the specified dimension.
// dim supports negative indexing (-1 is the last dimension). With keepDim
// the reduced dimension stays with size 1, otherwise it is removed.
//
// Example:
//
//	x := tensor.Randn[float64](tensor.Shape{2, 3, 4}, backend)
//	y := backend.SumDim(x.Raw(), -1, true)  // shape: [2, 3, 1]
//	z := backend.SumDim(x.Raw(), -1, false) // shape: [2, 3]
func (c *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sum_dim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	result := c.newResult("sum_dim", reducedShape(shape, dim, keepDim), x.DType())

	// Row-major layout splits cleanly around the reduced axis: for every
	// (outer, inner) pair the reduced elements sit dimStride apart.
	outer, inner := 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < ndim; i++ {
		inner *= shape[i]
	}

	switch x.DType() {
	case tensor.Float32:
		sumDimKernel(x.AsFloat32(), result.AsFloat32(), outer, shape[dim], inner)
	case tensor.Float64:
		sumDimKernel(x.AsFloat64(), result.AsFloat64(), outer, shape[dim], inner)
	}
	return result
}

// MeanDim averages elements along the specified dimension.
// Same dim and keepDim semantics as SumDim.
func (c *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result := c.SumDim(x, dim, keepDim)

	shape := x.Shape()
	if dim < 0 {
		dim += len(shape)
	}
	n := shape[dim]

	switch result.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		for i := range data {
			data[i] /= float32(n)
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] /= float64(n)
		}
	}
	return result
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	out := make(tensor.Shape, 0, len(shape))
	for i, d := range shape {
		switch {
		case i != dim:
			out = append(out, d)
		case keepDim:
			out = append(out, 1)
		}
	}
	return out
}

func sumDimKernel[T tensor.DType](src, dst []T, outer, dimSize, inner int) {
	for o := 0; o < outer; o++ {
		base := o * dimSize * inner
		for d := 0; d < dimSize; d++ {
			row := base + d*inner
			out := o * inner
			for i := 0; i < inner; i++ {
				dst[out+i] += src[row+i]
			}
		}
	}
}
