// Package train implements the repeated optimization pattern the demos share:
// differentiable evaluation, reverse pass, parameter update, for a fixed
// number of iterations.
//
// Descend and Ascend drive a pure function of one tensor argument; Trainer
// drives a model/loss/optimizer triple over a full-batch dataset. Both clear
// the tape and the gradient store at the top of every iteration, so each
// update sees exactly one iteration's gradient.
package train

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/autodiff"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Engine is the autodiff surface the training loops drive: a recording
// backend with a persistent, explicitly cleared gradient store.
type Engine interface {
	tensor.Backend

	Tape() *autodiff.Tape
	Backward(output *tensor.RawTensor)
	Grad(t *tensor.RawTensor) *tensor.RawTensor
	Grads() map[*tensor.RawTensor]*tensor.RawTensor
	ZeroGrad()
	NoGrad(fn func())
}

// Objective is a differentiable scalar-valued function of one tensor
// argument, built from the engine's operations.
type Objective[E Engine] func(x *tensor.Tensor[float64, E]) *tensor.Tensor[float64, E]

// Trajectory records every point an optimization loop visits, starting point
// first, with the objective value at each point.
type Trajectory struct {
	Points [][]float64 // visited points; Points[0] is the start
	Values []float64   // objective value at each point
}

func (t *Trajectory) record(point []float64, value float64) {
	t.Points = append(t.Points, append([]float64(nil), point...))
	t.Values = append(t.Values, value)
}

// Len returns the number of recorded points (iterations + 1).
func (t *Trajectory) Len() int {
	return len(t.Points)
}

// Final returns the last visited point.
func (t *Trajectory) Final() []float64 {
	return t.Points[len(t.Points)-1]
}

// FinalValue returns the objective value at the last point.
func (t *Trajectory) FinalValue() float64 {
	return t.Values[len(t.Values)-1]
}

// Dim returns the series of coordinate d across the whole trajectory,
// for plotting paths.
func (t *Trajectory) Dim(d int) []float64 {
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = p[d]
	}
	return out
}

// Descend runs fixed-step gradient descent on f starting from x0:
// x ← x − lr·∇f(x), repeated steps times. The returned trajectory has
// steps+1 points, the start first and the final point last.
func Descend[E Engine](engine E, f Objective[E], x0 []float64, lr float64, steps int) *Trajectory {
	return climb(engine, f, x0, -lr, steps)
}

// Ascend is Descend with the sign flipped: x ← x + lr·∇f(x), climbing
// toward a local maximum.
func Ascend[E Engine](engine E, f Objective[E], x0 []float64, lr float64, steps int) *Trajectory {
	return climb(engine, f, x0, lr, steps)
}

func climb[E Engine](engine E, f Objective[E], x0 []float64, step float64, steps int) *Trajectory {
	if steps < 0 {
		panic(fmt.Sprintf("train: negative iteration count %d", steps))
	}

	x, err := tensor.FromSlice(append([]float64(nil), x0...), tensor.Shape{len(x0)}, engine)
	if err != nil {
		panic(fmt.Sprintf("train: invalid starting point: %v", err))
	}
	xData := x.Data()

	traj := &Trajectory{
		Points: make([][]float64, 0, steps+1),
		Values: make([]float64, 0, steps+1),
	}

	for i := 0; i < steps; i++ {
		engine.Tape().Clear()
		engine.ZeroGrad()
		engine.Tape().StartRecording()

		y := f(x)
		if y.Shape().NumElements() != 1 {
			panic(fmt.Sprintf("train: objective must return a scalar, got shape %v", y.Shape()))
		}
		engine.Backward(y.Raw())
		engine.Tape().StopRecording()

		grad := engine.Grad(x.Raw())
		if grad == nil {
			panic("train: objective does not depend on its argument")
		}

		// One element is guaranteed above; the objective may be 0-D or
		// shape [1], so read the value directly rather than via Item.
		traj.record(xData, y.Data()[0])

		gradData := grad.AsFloat64()
		for j := range xData {
			xData[j] += step * gradData[j]
		}
	}

	// Value at the final point, evaluated without recording anything.
	engine.Tape().Clear()
	engine.ZeroGrad()
	var final float64
	engine.NoGrad(func() { final = f(x).Data()[0] })
	traj.record(xData, final)

	return traj
}
