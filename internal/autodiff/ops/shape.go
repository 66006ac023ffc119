package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Reshape records a shape change. Element order is untouched, so the
// backward pass is the inverse reshape of the output gradient.
type Reshape struct {
	unary
}

// NewReshape records a reshape.
func NewReshape(input, output *tensor.RawTensor) *Reshape {
	return &Reshape{unary{input: input, output: output}}
}

func (op *Reshape) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.input.Shape())}
}

// Transpose records an axis permutation. The gradient flows back through
// the inverse permutation.
type Transpose struct {
	unary
	axes []int
}

// NewTranspose records an axis permutation. The axes slice must already
// be the effective permutation the backend applied.
func NewTranspose(input *tensor.RawTensor, axes []int, output *tensor.RawTensor) *Transpose {
	return &Transpose{unary{input: input, output: output}, axes}
}

func (op *Transpose) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, axis := range op.axes {
		inverse[axis] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}
