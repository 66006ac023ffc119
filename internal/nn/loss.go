package nn

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Loss reduces predictions and targets to a scalar training objective.
type Loss[B tensor.Backend] interface {
	Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]
}

// MSELoss computes mean squared error: mean((predictions - targets)^2).
//
// The whole computation runs through recorded tensor operations, so on an
// autodiff engine the loss is differentiable end to end, including the
// final mean.
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates an MSE loss.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Forward returns the scalar MSE of predictions against targets.
// Panics when the shapes differ.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic(fmt.Sprintf("mse: predictions shape %v does not match targets shape %v",
			predictions.Shape(), targets.Shape()))
	}
	diff := predictions.Sub(targets)
	return diff.Mul(diff).Mean()
}

// RMSELoss computes root mean squared error:
// sqrt(mean((predictions - targets)^2)).
//
// RMSE reports error in the target's own units, which is what the
// housing demos print and plot.
type RMSELoss[B tensor.Backend] struct {
	mse *MSELoss[B]
}

// NewRMSELoss creates an RMSE loss.
func NewRMSELoss[B tensor.Backend]() *RMSELoss[B] {
	return &RMSELoss[B]{mse: NewMSELoss[B]()}
}

// Forward returns the scalar RMSE of predictions against targets.
// Panics when the shapes differ.
func (r *RMSELoss[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	return r.mse.Forward(predictions, targets).Sqrt()
}
