package cpu

import (
	"fmt"
	"math"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Scalar operations: element-wise arithmetic against a single value.
// The scalar's Go type must match the tensor's dtype.

// AddScalar adds a scalar to each element of the tensor.
func (c *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("add_scalar", opAdd, x, scalar)
}

// SubScalar subtracts a scalar from each element of the tensor.
func (c *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("sub_scalar", opSub, x, scalar)
}

// MulScalar multiplies each element of the tensor by a scalar.
func (c *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("mul_scalar", opMul, x, scalar)
}

// DivScalar divides each element of the tensor by a scalar.
func (c *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("div_scalar", opDiv, x, scalar)
}

// PowScalar raises each element of the tensor to a scalar power.
func (c *CPUBackend) PowScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("pow_scalar", opPow, x, scalar)
}

func (c *CPUBackend) scalarOp(name string, op binOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := c.newResult(name, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(fmt.Sprintf("%s: scalar type %T does not match tensor dtype float32", name, scalar))
		}
		scalarKernel(op, x.AsFloat32(), result.AsFloat32(), s)
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(fmt.Sprintf("%s: scalar type %T does not match tensor dtype float64", name, scalar))
		}
		scalarKernel(op, x.AsFloat64(), result.AsFloat64(), s)
	}
	return result
}

// scalarKernel computes out[i] = x[i] (op) s.
func scalarKernel[T tensor.DType](op binOp, x, out []T, s T) {
	switch op {
	case opAdd:
		for i := range x {
			out[i] = x[i] + s
		}
	case opSub:
		for i := range x {
			out[i] = x[i] - s
		}
	case opMul:
		for i := range x {
			out[i] = x[i] * s
		}
	case opDiv:
		for i := range x {
			out[i] = x[i] / s
		}
	case opPow:
		for i := range x {
			out[i] = T(math.Pow(float64(x[i]), float64(s)))
		}
	}
}
