// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// The Engine wraps any compute backend and records every tensor operation
// on a gradient tape. A Backward call replays the tape in reverse and
// accumulates each input's gradient into the engine's persistent store;
// gradients keep summing across Backward calls until ZeroGrad clears them.
//
// Example:
//
//	import (
//	    "github.com/Machine-Learning-S25/WK12/autodiff"
//	    "github.com/Machine-Learning-S25/WK12/backend/cpu"
//	    "github.com/Machine-Learning-S25/WK12/tensor"
//	)
//
//	func main() {
//	    engine := autodiff.New(cpu.New())
//	    engine.Tape().StartRecording()
//
//	    x, _ := tensor.FromSlice([]float64{2}, tensor.Shape{1}, engine)
//	    y := x.Mul(x)
//
//	    autodiff.Backward(y)
//	    grad := autodiff.Grad(x) // dy/dx = 2x = 4
//	    _ = grad
//	}
package autodiff

import (
	"github.com/Machine-Learning-S25/WK12/internal/autodiff"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Engine is the autodiff-enabled backend decorating an inner backend B.
type Engine[B tensor.Backend] = autodiff.Engine[B]

// New wraps the given backend in a fresh engine with an empty tape and an
// empty gradient store. Recording starts disabled.
//
// Example:
//
//	engine := autodiff.New(cpu.New())
func New[B tensor.Backend](backend B) *Engine[B] {
	return autodiff.New(backend)
}

// Tape records operations during the forward pass.
type Tape = autodiff.Tape

// NewTape creates an empty gradient tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// BackwardCapable is satisfied by backends that can replay a recorded
// computation in reverse.
type BackwardCapable = autodiff.BackwardCapable

// Backward runs the reverse pass from t through its engine, accumulating
// gradients into the engine's store.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B]) {
	autodiff.Backward(t)
}

// Grad returns the accumulated gradient of t, or nil if no Backward call
// has reached it.
func Grad[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return autodiff.Grad(t)
}
