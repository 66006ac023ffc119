// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Module interface defines the common interface for all model components.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter in a model.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer: y = x@Wᵀ + b.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(8, 16, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewLinearSeeded creates a linear layer with reproducible Xavier
// initialization from the given seed.
func NewLinearSeeded[B tensor.Backend](inFeatures, outFeatures int, backend B, seed int64) *Linear[B] {
	return nn.NewLinearSeeded(inFeatures, outFeatures, backend, seed)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU[*cpu.Backend]()
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// Tanh represents the Tanh activation function.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a new Tanh activation layer.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// Containers

// Sequential represents an ordered composition of modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a sequential container from the given modules.
//
// Example:
//
//	model := nn.NewSequential[*cpu.Backend](
//	    nn.NewLinear(8, 16, backend),
//	    nn.NewReLU[*cpu.Backend](),
//	    nn.NewLinear(16, 1, backend),
//	)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Loss functions

// Loss reduces predictions and targets to a scalar training objective.
type Loss[B tensor.Backend] = nn.Loss[B]

// MSELoss computes mean squared error.
type MSELoss[B tensor.Backend] = nn.MSELoss[B]

// NewMSELoss creates an MSE loss: mean((predictions - targets)^2).
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return nn.NewMSELoss[B]()
}

// RMSELoss computes root mean squared error.
type RMSELoss[B tensor.Backend] = nn.RMSELoss[B]

// NewRMSELoss creates an RMSE loss: sqrt(mean((predictions - targets)^2)).
func NewRMSELoss[B tensor.Backend]() *RMSELoss[B] {
	return nn.NewRMSELoss[B]()
}

// Initialization

// Xavier draws weights from the Glorot uniform distribution. Pass a seeded
// *rand.Rand for reproducible initialization, or nil for the shared source.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B, rng *rand.Rand) *tensor.Tensor[float64, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend, rng)
}

// Zeros returns a zero-filled tensor, the usual bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Zeros(shape, backend)
}

// Ones returns a one-filled tensor.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Ones(shape, backend)
}

// Randn returns a tensor of standard normal draws.
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return nn.Randn(shape, backend)
}
