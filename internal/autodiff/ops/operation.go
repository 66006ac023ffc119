// Package ops defines the recorded operations that make reverse-mode
// differentiation possible.
//
// Every differentiable backend operation has a matching type here that
// captures the operands and the produced tensor during the forward pass.
// Walking those records in reverse applies the chain rule: each operation
// turns the gradient of its output into gradients of its inputs.
//
// Backward implementations receive a tensor.Backend and express gradient
// arithmetic through it, so the same rules serve every backend.
package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Operation is one recorded step of the forward pass.
type Operation interface {
	// Backward turns the gradient of the output into gradients of the
	// inputs, aligned with Inputs(). A nil entry means no gradient flows
	// to that input.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the tensors the operation consumed.
	Inputs() []*tensor.RawTensor

	// Output returns the tensor the operation produced.
	Output() *tensor.RawTensor
}

// binary carries the recorded state shared by all two-operand operations.
type binary struct {
	a, b   *tensor.RawTensor
	output *tensor.RawTensor
}

func (op *binary) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.a, op.b} }
func (op *binary) Output() *tensor.RawTensor   { return op.output }

// unary carries the recorded state shared by all one-operand operations.
type unary struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

func (op *unary) Inputs() []*tensor.RawTensor { return []*tensor.RawTensor{op.input} }
func (op *unary) Output() *tensor.RawTensor   { return op.output }
