package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Add records output = a + b.
//
// Both partial derivatives are one, so the output gradient flows to each
// operand unchanged, reduced along any broadcast dimensions.
type Add struct {
	binary
}

// NewAdd records an element-wise addition.
func NewAdd(a, b, output *tensor.RawTensor) *Add {
	return &Add{binary{a: a, b: b, output: output}}
}

func (op *Add) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.a.Shape(), backend),
		reduceBroadcast(outputGrad, op.b.Shape(), backend),
	}
}

// Sub records output = a - b. The gradient of b picks up a sign flip.
type Sub struct {
	binary
}

// NewSub records an element-wise subtraction.
func NewSub(a, b, output *tensor.RawTensor) *Sub {
	return &Sub{binary{a: a, b: b, output: output}}
}

func (op *Sub) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(outputGrad, op.a.Shape(), backend),
		reduceBroadcast(backend.Neg(outputGrad), op.b.Shape(), backend),
	}
}

// Mul records output = a * b.
//
// d(a*b)/da = b and d(a*b)/db = a, so each operand's gradient is the
// output gradient scaled by the other operand.
type Mul struct {
	binary
}

// NewMul records an element-wise multiplication.
func NewMul(a, b, output *tensor.RawTensor) *Mul {
	return &Mul{binary{a: a, b: b, output: output}}
}

func (op *Mul) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{
		reduceBroadcast(backend.Mul(outputGrad, op.b), op.a.Shape(), backend),
		reduceBroadcast(backend.Mul(outputGrad, op.a), op.b.Shape(), backend),
	}
}

// Div records output = a / b.
//
// d(a/b)/da = 1/b and d(a/b)/db = -a/b^2. The b gradient reuses the
// recorded output, since -a/b^2 = -output/b.
type Div struct {
	binary
}

// NewDiv records an element-wise division.
func NewDiv(a, b, output *tensor.RawTensor) *Div {
	return &Div{binary{a: a, b: b, output: output}}
}

func (op *Div) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.Div(outputGrad, op.b)
	gradB := backend.Neg(backend.Mul(outputGrad, backend.Div(op.output, op.b)))
	return []*tensor.RawTensor{
		reduceBroadcast(gradA, op.a.Shape(), backend),
		reduceBroadcast(gradB, op.b.Shape(), backend),
	}
}
