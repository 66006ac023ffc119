package cpu

import (
	"math"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// ReLU computes element-wise max(x, 0).
func (c *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result := c.newResult("relu", x.Shape(), x.DType())

	// Fresh buffers are zeroed, so only positive entries need writing.
	switch x.DType() {
	case tensor.Float32:
		reluKernel(x.AsFloat32(), result.AsFloat32())
	case tensor.Float64:
		reluKernel(x.AsFloat64(), result.AsFloat64())
	}
	return result
}

func reluKernel[T tensor.DType](src, dst []T) {
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		}
	}
}

// Sigmoid computes element-wise 1 / (1 + exp(-x)).
func (c *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("sigmoid", x, func(v float64) float64 {
		return 1 / (1 + math.Exp(-v))
	})
}

// Tanh computes the element-wise hyperbolic tangent.
func (c *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("tanh", x, math.Tanh)
}
