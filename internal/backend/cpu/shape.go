package cpu

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Reshape returns a zero-copy view with a new shape.
// The returned tensor shares the input's buffer, and the shared reference
// keeps both safe from inplace kernels.
func (c *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.View(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Transpose permutes the tensor's dimensions, materializing the result.
// Empty axes reverse all dimensions (the standard transpose for 2D).
func (c *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result := c.newResult("transpose", newShape, t.DType())

	switch t.DType() {
	case tensor.Float32:
		transposeKernel(t.AsFloat32(), result.AsFloat32(), shape, newShape, axes)
	case tensor.Float64:
		transposeKernel(t.AsFloat64(), result.AsFloat64(), shape, newShape, axes)
	}
	return result
}

// transposeKernel gathers input elements in output order: each row-major
// output index is decomposed into coordinates, and the permutation maps
// those back to input strides.
func transposeKernel[T tensor.DType](src, dst []T, inShape, outShape tensor.Shape, axes []int) {
	inStrides := inShape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	for i := range dst {
		rem := i
		inOff := 0
		for d := range outStrides {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			inOff += coord * inStrides[axes[d]]
		}
		dst[i] = src[inOff]
	}
}
