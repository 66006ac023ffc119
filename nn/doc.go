// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides layers and building blocks for regression models.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU, Sigmoid, Tanh
//   - Loss functions: MSELoss, RMSELoss
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier, Zeros, Ones, Randn
//
// Models compute in float64 and are generic over the backend: the same
// model definition runs on a plain compute backend for inference and on an
// autodiff engine for training.
//
// # Basic Usage
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/nn"
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Build a small MLP
//	    model := nn.NewSequential[*cpu.Backend](
//	        nn.NewLinear(8, 16, backend),
//	        nn.NewReLU[*cpu.Backend](),
//	        nn.NewLinear(16, 1, backend),
//	    )
//
//	    // Forward pass
//	    output := model.Forward(input)
//	    _ = output
//	}
//
// # Loss Functions
//
// MSELoss and RMSELoss are built entirely from recorded tensor operations,
// so on an autodiff engine the reverse pass flows from the scalar loss back
// to every parameter.
//
//	criterion := nn.NewRMSELoss[*autodiff.Engine[*cpu.Backend]]()
//	loss := criterion.Forward(predictions, targets)
//
// # Gradients
//
// Parameters carry no gradient state of their own: gradients accumulate in
// the autodiff engine's store, keyed by the parameter's raw tensor. Zeroing
// gradients is a single engine call, not a walk over the model.
//
//	params := model.Parameters()
//	for _, param := range params {
//	    fmt.Println(param.Name(), param.Tensor().Shape())
//	}
package nn
