package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// MatMul records output = a @ b for 2D operands.
//
// Backward pass:
//
//	grad_a = outputGrad @ b^T
//	grad_b = a^T @ outputGrad
type MatMul struct {
	binary
}

// NewMatMul records a matrix multiplication.
func NewMatMul(a, b, output *tensor.RawTensor) *MatMul {
	return &MatMul{binary{a: a, b: b, output: output}}
}

func (op *MatMul) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradA := backend.MatMul(outputGrad, backend.Transpose(op.b, 1, 0))
	gradB := backend.MatMul(backend.Transpose(op.a, 1, 0), outputGrad)
	return []*tensor.RawTensor{gradA, gradB}
}
