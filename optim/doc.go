// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training models.
//
// # Overview
//
// Optimizers consume the gradient store produced by the autodiff engine.
// After a backward pass, Engine.Grads() returns the accumulated gradients
// keyed by raw tensor; Step applies one update to every tracked parameter
// from that snapshot. Because the snapshot is taken before any parameter
// moves, the update is simultaneous across parameters.
//
// Available optimizers:
//   - SGD: plain gradient descent with optional momentum
//   - Adam: adaptive learning rates with bias correction
//
// # Basic Usage
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/autodiff"
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	    "github.com/Machine-Learning-S25/WK12/nn"
//	    "github.com/Machine-Learning-S25/WK12/optim"
//	)
//
//	func main() {
//	    engine := autodiff.New(cpu.New())
//	    model := nn.NewLinear(8, 1, engine)
//	    criterion := nn.NewRMSELoss[*autodiff.Engine[*cpu.Backend]]()
//	    opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	    for epoch := 0; epoch < 32; epoch++ {
//	        engine.Tape().Clear()
//	        engine.ZeroGrad()
//	        engine.Tape().StartRecording()
//
//	        loss := criterion.Forward(model.Forward(x), y)
//	        autodiff.Backward(loss)
//
//	        opt.Step(engine.Grads())
//	    }
//	}
//
// # Gradient Lifecycle
//
// Optimizers never clear gradients: the engine owns the accumulate/zero
// lifecycle, and ZeroGrad between iterations is the caller's job. Calling
// Step twice against the same snapshot applies the same update twice.
package optim
