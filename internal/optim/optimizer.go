// Package optim implements optimization algorithms for training models.
//
// Optimizers consume the gradient store produced by the autodiff engine:
// after a backward pass, Engine.Grads() returns accumulated gradients keyed
// by raw tensor, and Step applies one parameter update from that snapshot.
// Clearing the store between iterations is the engine's job (ZeroGrad), not
// the optimizer's.
//
// Example usage:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    engine.Tape().Clear()
//	    engine.ZeroGrad()
//
//	    output := model.Forward(input)
//	    loss := criterion.Forward(output, targets)
//	    autodiff.Backward(loss)
//
//	    opt.Step(engine.Grads())
//	}
package optim

import (
	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// An optimizer holds the parameters it is responsible for and, given a
// gradient snapshot, moves each parameter one step. It never touches the
// gradient store itself, so calling Step twice with the same snapshot
// applies the same update twice.
type Optimizer interface {
	// Step applies one update to every tracked parameter that has an
	// entry in grads. Parameters without a gradient are skipped.
	//
	// Example:
	//   autodiff.Backward(loss)
	//   opt.Step(engine.Grads())
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// LR returns the current learning rate, for monitoring and scheduling.
	LR() float64
}

// gradientFor retrieves the gradient recorded for a parameter.
//
// Returns nil if no gradient is found (parameter wasn't part of the
// computation graph).
func gradientFor[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Raw()]
}
