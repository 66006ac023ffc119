package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Exp records output = e^x. The derivative is the output itself, so the
// backward pass reuses the recorded result instead of recomputing it.
type Exp struct {
	unary
}

// NewExp records an element-wise exponential.
func NewExp(input, output *tensor.RawTensor) *Exp {
	return &Exp{unary{input: input, output: output}}
}

func (op *Exp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.output)}
}

// Log records output = ln(x), so grad_x = outputGrad / x.
type Log struct {
	unary
}

// NewLog records an element-wise natural logarithm.
func NewLog(input, output *tensor.RawTensor) *Log {
	return &Log{unary{input: input, output: output}}
}

func (op *Log) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, op.input)}
}

// Sqrt records output = sqrt(x), so grad_x = outputGrad / (2 * sqrt(x)).
// The recorded output is the square root, so no recomputation is needed.
type Sqrt struct {
	unary
}

// NewSqrt records an element-wise square root.
func NewSqrt(input, output *tensor.RawTensor) *Sqrt {
	return &Sqrt{unary{input: input, output: output}}
}

func (op *Sqrt) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	twice := backend.MulScalar(op.output, scalarOf(op.output.DType(), 2))
	return []*tensor.RawTensor{backend.Div(outputGrad, twice)}
}

// Neg records output = -x, so the gradient is negated on the way back.
type Neg struct {
	unary
}

// NewNeg records an element-wise negation.
func NewNeg(input, output *tensor.RawTensor) *Neg {
	return &Neg{unary{input: input, output: output}}
}

func (op *Neg) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Neg(outputGrad)}
}
