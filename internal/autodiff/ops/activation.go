package ops

import "github.com/Machine-Learning-S25/WK12/internal/tensor"

// ReLU records output = max(0, x).
//
// The derivative is one where the input was positive and zero elsewhere,
// expressed as a binary mask multiplied into the output gradient.
type ReLU struct {
	unary
}

// NewReLU records a rectified linear activation.
func NewReLU(input, output *tensor.RawTensor) *ReLU {
	return &ReLU{unary{input: input, output: output}}
}

func (op *ReLU) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	mask := positiveMask(op.input)
	return []*tensor.RawTensor{backend.Mul(outputGrad, mask)}
}

// positiveMask returns a tensor holding one where input > 0, zero
// elsewhere. The subgradient at exactly zero is taken as zero.
func positiveMask(input *tensor.RawTensor) *tensor.RawTensor {
	mask := zerosLike(input)
	switch input.DType() {
	case tensor.Float32:
		src, dst := input.AsFloat32(), mask.AsFloat32()
		for i, v := range src {
			if v > 0 {
				dst[i] = 1
			}
		}
	case tensor.Float64:
		src, dst := input.AsFloat64(), mask.AsFloat64()
		for i, v := range src {
			if v > 0 {
				dst[i] = 1
			}
		}
	}
	return mask
}

// Sigmoid records output = 1 / (1 + e^-x).
//
// The derivative sigma(x) * (1 - sigma(x)) is built from the recorded
// output, avoiding a second exponential.
type Sigmoid struct {
	unary
}

// NewSigmoid records a logistic sigmoid activation.
func NewSigmoid(input, output *tensor.RawTensor) *Sigmoid {
	return &Sigmoid{unary{input: input, output: output}}
}

func (op *Sigmoid) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	oneMinus := backend.Sub(onesLike(op.output), op.output)
	grad := backend.Mul(outputGrad, backend.Mul(op.output, oneMinus))
	return []*tensor.RawTensor{grad}
}

// Tanh records output = tanh(x), so grad_x = outputGrad * (1 - tanh(x)^2).
type Tanh struct {
	unary
}

// NewTanh records a hyperbolic tangent activation.
func NewTanh(input, output *tensor.RawTensor) *Tanh {
	return &Tanh{unary{input: input, output: output}}
}

func (op *Tanh) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	squared := backend.Mul(op.output, op.output)
	grad := backend.Mul(outputGrad, backend.Sub(onesLike(op.output), squared))
	return []*tensor.RawTensor{grad}
}
