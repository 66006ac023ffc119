package cpu

import (
	"fmt"
	"math"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// unary applies f element-wise into a fresh tensor.
// Intermediate math runs in float64 and narrows back for float32 inputs.
func (c *CPUBackend) unary(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result := c.newResult(name, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(f(float64(v)))
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = f(v)
		}
	}
	return result
}

// Exp computes the element-wise exponential: exp(x).
func (c *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("exp", x, math.Exp)
}

// Log computes the element-wise natural logarithm: ln(x).
// Panics on non-positive values.
func (c *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("log", x, func(v float64) float64 {
		if v <= 0 {
			panic(fmt.Sprintf("log: non-positive value %f", v))
		}
		return math.Log(v)
	})
}

// Sqrt computes the element-wise square root: sqrt(x).
// Panics on negative values.
func (c *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("sqrt", x, func(v float64) float64 {
		if v < 0 {
			panic(fmt.Sprintf("sqrt: negative value %f", v))
		}
		return math.Sqrt(v)
	})
}

// Neg computes the element-wise negation: -x.
func (c *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unary("neg", x, func(v float64) float64 { return -v })
}
