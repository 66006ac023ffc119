package cpu

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// binOp selects the arithmetic performed by the shared element-wise kernels.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opPow
)

// binary runs one element-wise operation with broadcasting and the
// copy-on-write fast paths: when shapes match and a holds its buffer
// exclusively, the result is written into a; when shapes match but a is
// shared, the kernel runs over the contiguous slices; otherwise the
// broadcast kernel walks both operands through stretched strides.
func (c *CPUBackend) binary(name string, op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			switch a.DType() {
			case tensor.Float32:
				contiguous(op, a.AsFloat32(), b.AsFloat32(), a.AsFloat32())
			case tensor.Float64:
				contiguous(op, a.AsFloat64(), b.AsFloat64(), a.AsFloat64())
			}
			return a
		}

		result := c.newResult(name, outShape, a.DType())
		switch a.DType() {
		case tensor.Float32:
			contiguous(op, a.AsFloat32(), b.AsFloat32(), result.AsFloat32())
		case tensor.Float64:
			contiguous(op, a.AsFloat64(), b.AsFloat64(), result.AsFloat64())
		}
		return result
	}

	result := c.newResult(name, outShape, a.DType())
	switch a.DType() {
	case tensor.Float32:
		broadcast(op, a.AsFloat32(), b.AsFloat32(), result.AsFloat32(), a.Shape(), b.Shape(), outShape)
	case tensor.Float64:
		broadcast(op, a.AsFloat64(), b.AsFloat64(), result.AsFloat64(), a.Shape(), b.Shape(), outShape)
	}
	return result
}

// contiguous applies op over same-shaped operands. out may alias a.
func contiguous[T tensor.DType](op binOp, a, b, out []T) {
	switch op {
	case opAdd:
		for i := range out {
			out[i] = a[i] + b[i]
		}
	case opSub:
		for i := range out {
			out[i] = a[i] - b[i]
		}
	case opMul:
		for i := range out {
			out[i] = a[i] * b[i]
		}
	case opDiv:
		for i := range out {
			out[i] = a[i] / b[i]
		}
	default:
		panic(fmt.Sprintf("contiguous: unsupported op %d", int(op)))
	}
}

// broadcast applies op element-wise after stretching both operands to the
// output shape.
func broadcast[T tensor.DType](op binOp, a, b, out []T, aShape, bShape, outShape tensor.Shape) {
	f := scalarFunc[T](op)
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range out {
		out[i] = f(a[flatOffset(i, outStrides, aStrides)], b[flatOffset(i, outStrides, bStrides)])
	}
}

// scalarFunc returns op as a two-argument function for the slow paths.
func scalarFunc[T tensor.DType](op binOp) func(T, T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		return func(x, y T) T { return x / y }
	default:
		panic(fmt.Sprintf("scalarFunc: unsupported op %d", int(op)))
	}
}

// broadcastStrides returns strides for reading an operand of shape in as if
// it had shape out: missing leading dimensions and dimensions of size 1 get
// stride 0, so the same element repeats along the stretched axis.
func broadcastStrides(in, out tensor.Shape) []int {
	inStrides := in.ComputeStrides()
	strides := make([]int, len(out))
	pad := len(out) - len(in)

	for i := range out {
		j := i - pad
		switch {
		case j < 0:
			strides[i] = 0
		case in[j] == 1 && out[i] != 1:
			strides[i] = 0
		default:
			strides[i] = inStrides[j]
		}
	}
	return strides
}

// flatOffset maps a row-major output index to an operand offset through the
// operand's (possibly zeroed) broadcast strides.
func flatOffset(i int, outStrides, strides []int) int {
	offset := 0
	rem := i
	for d := range outStrides {
		coord := rem / outStrides[d]
		rem %= outStrides[d]
		offset += coord * strides[d]
	}
	return offset
}
