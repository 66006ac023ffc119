package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Scalar operands are stored as float64 regardless of the tensor dtype
// and converted back with scalarOf when the backward pass needs them.

// AddScalar records output = x + s. The gradient passes through unchanged.
type AddScalar struct {
	unary
}

// NewAddScalar records a scalar addition.
func NewAddScalar(input *tensor.RawTensor, _ float64, output *tensor.RawTensor) *AddScalar {
	return &AddScalar{unary{input: input, output: output}}
}

func (op *AddScalar) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{reduceBroadcast(outputGrad, op.input.Shape(), backend)}
}

// SubScalar records output = x - s. The gradient passes through unchanged.
type SubScalar struct {
	unary
}

// NewSubScalar records a scalar subtraction.
func NewSubScalar(input *tensor.RawTensor, _ float64, output *tensor.RawTensor) *SubScalar {
	return &SubScalar{unary{input: input, output: output}}
}

func (op *SubScalar) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{reduceBroadcast(outputGrad, op.input.Shape(), backend)}
}

// MulScalar records output = x * s, so grad_x = outputGrad * s.
type MulScalar struct {
	unary
	scalar float64
}

// NewMulScalar records a scalar multiplication.
func NewMulScalar(input *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *MulScalar {
	return &MulScalar{unary{input: input, output: output}, scalar}
}

func (op *MulScalar) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := backend.MulScalar(outputGrad, scalarOf(outputGrad.DType(), op.scalar))
	return []*tensor.RawTensor{grad}
}

// DivScalar records output = x / s, so grad_x = outputGrad / s.
type DivScalar struct {
	unary
	scalar float64
}

// NewDivScalar records a scalar division.
func NewDivScalar(input *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *DivScalar {
	return &DivScalar{unary{input: input, output: output}, scalar}
}

func (op *DivScalar) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := backend.DivScalar(outputGrad, scalarOf(outputGrad.DType(), op.scalar))
	return []*tensor.RawTensor{grad}
}

// PowScalar records output = x^s, so grad_x = outputGrad * s * x^(s-1).
//
// This is the power rule that polynomial graphs are built from, so the
// chain here stays exact for integer exponents down to s = 1, where
// x^0 evaluates to one everywhere.
type PowScalar struct {
	unary
	exponent float64
}

// NewPowScalar records a scalar power.
func NewPowScalar(input *tensor.RawTensor, exponent float64, output *tensor.RawTensor) *PowScalar {
	return &PowScalar{unary{input: input, output: output}, exponent}
}

func (op *PowScalar) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	dtype := op.input.DType()
	xPow := backend.PowScalar(op.input, scalarOf(dtype, op.exponent-1))
	grad := backend.MulScalar(backend.Mul(outputGrad, xPow), scalarOf(dtype, op.exponent))
	return []*tensor.RawTensor{grad}
}
