package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// Sum records the full reduction output = sum(x), a scalar.
//
// Every input element contributes with weight one, so the backward pass
// broadcasts the scalar output gradient across the input shape.
type Sum struct {
	unary
}

// NewSum records a full sum reduction.
func NewSum(input, output *tensor.RawTensor) *Sum {
	return &Sum{unary{input: input, output: output}}
}

func (op *Sum) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expand(outputGrad, op.input, backend)}
}

// Mean records output = mean(x), a scalar. Like Sum, but each element's
// weight is 1/n, so the broadcast gradient is divided by the element count.
type Mean struct {
	unary
}

// NewMean records a full mean reduction.
func NewMean(input, output *tensor.RawTensor) *Mean {
	return &Mean{unary{input: input, output: output}}
}

func (op *Mean) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	n := float64(op.input.NumElements())
	grad := backend.DivScalar(expand(outputGrad, op.input, backend), scalarOf(op.input.DType(), n))
	return []*tensor.RawTensor{grad}
}

// SumDim records a sum along one dimension. The constructor stores the
// normalized dimension so Backward never sees a negative index.
type SumDim struct {
	unary
	dim     int
	keepDim bool
}

// NewSumDim records a sum along dim of input's shape.
func NewSumDim(input *tensor.RawTensor, dim int, keepDim bool, output *tensor.RawTensor) *SumDim {
	if dim < 0 {
		dim += len(input.Shape())
	}
	return &SumDim{unary{input: input, output: output}, dim, keepDim}
}

func (op *SumDim) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{expandDim(outputGrad, op.input, op.dim, op.keepDim, backend)}
}

// MeanDim records a mean along one dimension.
type MeanDim struct {
	unary
	dim     int
	keepDim bool
}

// NewMeanDim records a mean along dim of input's shape.
func NewMeanDim(input *tensor.RawTensor, dim int, keepDim bool, output *tensor.RawTensor) *MeanDim {
	if dim < 0 {
		dim += len(input.Shape())
	}
	return &MeanDim{unary{input: input, output: output}, dim, keepDim}
}

func (op *MeanDim) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	n := float64(op.input.Shape()[op.dim])
	grad := expandDim(outputGrad, op.input, op.dim, op.keepDim, backend)
	grad = backend.DivScalar(grad, scalarOf(op.input.DType(), n))
	return []*tensor.RawTensor{grad}
}

// expandDim broadcasts a dimension-reduced gradient back to the input
// shape. Gradients from a dropped dimension are first reshaped to the
// kept-dimension form so broadcasting can stretch the size-one axis.
func expandDim(grad *tensor.RawTensor, input *tensor.RawTensor, dim int, keepDim bool, backend tensor.Backend) *tensor.RawTensor {
	if !keepDim {
		withDim := input.Shape().Clone()
		withDim[dim] = 1
		grad = backend.Reshape(grad, withDim)
	}
	return expand(grad, input, backend)
}
