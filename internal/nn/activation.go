package nn

import (
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// ReLU applies f(x) = max(0, x) element-wise.
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies the rectifier.
func (r *ReLU[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return input.ReLU()
}

// Parameters returns nil; ReLU is parameter-free.
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// Sigmoid applies the logistic function 1 / (1 + e^-x) element-wise,
// squashing values into (0, 1).
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies the logistic function.
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return input.Sigmoid()
}

// Parameters returns nil; Sigmoid is parameter-free.
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// Tanh applies the hyperbolic tangent element-wise, squashing values
// into (-1, 1).
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a Tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies the hyperbolic tangent.
func (t *Tanh[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return input.Tanh()
}

// Parameters returns nil; Tanh is parameter-free.
func (t *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}
