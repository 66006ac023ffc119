// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the optimization loops the demos share: fixed-step
// gradient descent/ascent on a pure function, and a Trainer that wires a
// model, a loss, and an optimizer to an autodiff engine.
//
// Example:
//
//	engine := autodiff.New(cpu.New())
//	f := func(x *tensor.Tensor[float64, *autodiff.Engine[*cpu.Backend]]) *tensor.Tensor[float64, *autodiff.Engine[*cpu.Backend]] {
//	    return x.Mul(x).Sum() // f(x) = Σ x²
//	}
//	traj := train.Descend(engine, f, []float64{3}, 0.1, 32)
//	fmt.Println(traj.Final()) // approaches 0
package train

import (
	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/optim"
	"github.com/Machine-Learning-S25/WK12/internal/train"
)

// Engine is the autodiff surface the loops drive: a recording backend with
// a persistent, explicitly cleared gradient store. *autodiff.Engine[B]
// satisfies it for any backend B.
type Engine = train.Engine

// Objective is a differentiable scalar-valued function of one tensor
// argument, built from the engine's operations.
type Objective[E Engine] = train.Objective[E]

// Trajectory records every point an optimization loop visits, with the
// objective value at each point.
type Trajectory = train.Trajectory

// Descend runs fixed-step gradient descent on f from x0:
// x ← x − lr·∇f(x), repeated steps times.
func Descend[E Engine](engine E, f Objective[E], x0 []float64, lr float64, steps int) *Trajectory {
	return train.Descend(engine, f, x0, lr, steps)
}

// Ascend is Descend with the sign flipped, climbing toward a local maximum.
func Ascend[E Engine](engine E, f Objective[E], x0 []float64, lr float64, steps int) *Trajectory {
	return train.Ascend(engine, f, x0, lr, steps)
}

// Trainer wires a model, a loss, and an optimizer to an autodiff engine
// for full-batch training with a fixed epoch count.
type Trainer[E Engine] = train.Trainer[E]

// NewTrainer creates a trainer from its four collaborators.
func NewTrainer[E Engine](engine E, model nn.Module[E], criterion nn.Loss[E], optimizer optim.Optimizer) *Trainer[E] {
	return train.NewTrainer(engine, model, criterion, optimizer)
}
