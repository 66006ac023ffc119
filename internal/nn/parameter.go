package nn

import (
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Parameter is a named trainable tensor.
//
// A Parameter carries no gradient of its own: gradients accumulate in the
// autodiff engine's store, keyed by the parameter's raw tensor. That keeps
// a parameter usable with several engines at once and makes "zero the
// gradients" a single engine call instead of a walk over the model.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float64, B]
}

// NewParameter wraps an initialized tensor as a trainable parameter.
// The name is diagnostic, e.g. "weight" or "bias".
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the underlying tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float64, B] {
	return p.tensor
}

// Raw returns the underlying raw tensor, the key optimizers use to look
// up this parameter's gradient in the engine's store.
func (p *Parameter[B]) Raw() *tensor.RawTensor {
	return p.tensor.Raw()
}
