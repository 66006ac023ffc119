// Package nn provides the building blocks for regression models: the
// Module interface, trainable Parameters, the Linear layer, activation
// modules, loss functions, and the Sequential container.
//
// Modules run in float64 and are generic over the backend, so the same
// model definition works on a bare compute backend for inference and on
// an autodiff engine for training. Gradient state lives in the engine's
// store, not on modules: after a backward pass, optimizers look up each
// parameter's gradient by its raw tensor.
package nn

import (
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Module is the interface every model component implements.
//
// Modules compose into larger models:
//
//	model := nn.NewSequential[Backend](
//	    nn.NewLinear(8, 16, backend),
//	    nn.NewReLU[Backend](),
//	    nn.NewLinear(16, 1, backend),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the module's output for the given input.
	// Modules panic on inputs whose shape they cannot consume.
	Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]

	// Parameters returns the module's trainable parameters, including
	// those of nested modules. Parameter-free modules return nil.
	Parameters() []*Parameter[B]
}
