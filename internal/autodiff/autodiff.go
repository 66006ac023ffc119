// Package autodiff turns any tensor backend into a differentiable one.
//
// Engine wraps a tensor.Backend and records every operation on a Tape
// during the forward pass. Backward replays the tape in reverse, applying
// each operation's chain rule, and accumulates the result into a
// persistent gradient store: repeated Backward calls keep summing
// partial gradients, and ZeroGrad is the only way gradients are
// discarded. That store is what optimizers read when they update
// parameters.
//
// Usage:
//
//	engine := autodiff.New(cpu.New())
//	engine.Tape().StartRecording()
//
//	x, _ := tensor.FromSlice([]float64{2}, tensor.Shape{1}, engine)
//	y := x.Mul(x)
//
//	engine.Backward(y.Raw())
//	engine.Grad(x.Raw()) // dy/dx = 2x = 4
package autodiff

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/autodiff/ops"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Engine decorates a backend with reverse-mode automatic differentiation.
// It implements tensor.Backend itself, so tensors built on an Engine run
// their arithmetic through the wrapped backend while the Engine records
// the computation.
//
// Every recorded operand is pinned with ForceNonUnique for the duration
// of the forward call. The wrapped backend is then never allowed to reuse
// an operand's buffer for its result, which keeps the recorded values
// intact for the backward pass.
type Engine[B tensor.Backend] struct {
	inner B
	tape  *Tape
	grads map[*tensor.RawTensor]*tensor.RawTensor
}

// New wraps the given backend in a fresh Engine with an empty tape and
// an empty gradient store. Recording starts disabled.
func New[B tensor.Backend](backend B) *Engine[B] {
	return &Engine[B]{
		inner: backend,
		tape:  NewTape(),
		grads: make(map[*tensor.RawTensor]*tensor.RawTensor),
	}
}

// Tape returns the engine's tape for recording control: starting and
// stopping recording, and clearing between training iterations.
func (e *Engine[B]) Tape() *Tape {
	return e.tape
}

// Inner returns the wrapped backend.
func (e *Engine[B]) Inner() B {
	return e.inner
}

// Name returns the backend name, e.g. "Autodiff(CPU)".
func (e *Engine[B]) Name() string {
	return "Autodiff(" + e.inner.Name() + ")"
}

// Device returns the wrapped backend's device.
func (e *Engine[B]) Device() tensor.Device {
	return e.inner.Device()
}

// NoGrad runs fn with recording suspended and then restores the previous
// recording state, so evaluation code can run through the engine without
// growing the tape. Calls nest safely.
func (e *Engine[B]) NoGrad(fn func()) {
	wasRecording := e.tape.IsRecording()
	e.tape.StopRecording()
	defer func() {
		if wasRecording {
			e.tape.StartRecording()
		}
	}()
	fn()
}

// Add performs element-wise addition and records the operation.
func (e *Engine[B]) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := e.inner.Add(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewAdd(a, b, result))
	}
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (e *Engine[B]) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := e.inner.Sub(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSub(a, b, result))
	}
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (e *Engine[B]) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := e.inner.Mul(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMul(a, b, result))
	}
	return result
}

// Div performs element-wise division and records the operation.
func (e *Engine[B]) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := e.inner.Div(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewDiv(a, b, result))
	}
	return result
}

// MatMul performs matrix multiplication and records the operation.
func (e *Engine[B]) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer b.ForceNonUnique()()

	result := e.inner.MatMul(a, b)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMatMul(a, b, result))
	}
	return result
}

// AddScalar adds a scalar to every element and records the operation.
func (e *Engine[B]) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.AddScalar(x, scalar)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewAddScalar(x, scalarValue(scalar), result))
	}
	return result
}

// SubScalar subtracts a scalar from every element and records the operation.
func (e *Engine[B]) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.SubScalar(x, scalar)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSubScalar(x, scalarValue(scalar), result))
	}
	return result
}

// MulScalar multiplies every element by a scalar and records the operation.
func (e *Engine[B]) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.MulScalar(x, scalar)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMulScalar(x, scalarValue(scalar), result))
	}
	return result
}

// DivScalar divides every element by a scalar and records the operation.
func (e *Engine[B]) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.DivScalar(x, scalar)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewDivScalar(x, scalarValue(scalar), result))
	}
	return result
}

// PowScalar raises every element to a scalar power and records the operation.
func (e *Engine[B]) PowScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.PowScalar(x, scalar)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewPowScalar(x, scalarValue(scalar), result))
	}
	return result
}

// Exp computes the element-wise exponential and records the operation.
func (e *Engine[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Exp(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewExp(x, result))
	}
	return result
}

// Log computes the element-wise natural logarithm and records the operation.
func (e *Engine[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Log(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewLog(x, result))
	}
	return result
}

// Sqrt computes the element-wise square root and records the operation.
func (e *Engine[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Sqrt(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSqrt(x, result))
	}
	return result
}

// Neg negates every element and records the operation.
func (e *Engine[B]) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Neg(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewNeg(x, result))
	}
	return result
}

// ReLU applies the rectified linear activation and records the operation.
func (e *Engine[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.ReLU(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewReLU(x, result))
	}
	return result
}

// Sigmoid applies the logistic sigmoid and records the operation.
func (e *Engine[B]) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Sigmoid(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSigmoid(x, result))
	}
	return result
}

// Tanh applies the hyperbolic tangent and records the operation.
func (e *Engine[B]) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Tanh(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewTanh(x, result))
	}
	return result
}

// Sum reduces the tensor to its scalar total and records the operation.
func (e *Engine[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Sum(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSum(x, result))
	}
	return result
}

// Mean reduces the tensor to its scalar mean and records the operation.
// Recording it as one operation keeps losses like MSE differentiable end
// to end.
func (e *Engine[B]) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.Mean(x)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMean(x, result))
	}
	return result
}

// SumDim sums along one dimension and records the operation.
func (e *Engine[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.SumDim(x, dim, keepDim)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewSumDim(x, dim, keepDim, result))
	}
	return result
}

// MeanDim averages along one dimension and records the operation.
func (e *Engine[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := e.inner.MeanDim(x, dim, keepDim)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewMeanDim(x, dim, keepDim, result))
	}
	return result
}

// Reshape changes the tensor's shape and records the operation.
//
// Recording matters even though reshape moves no data: a parameter
// reshaped for broadcasting accumulates its gradient under the reshaped
// tensor, and only the recorded operation routes it back to the original.
func (e *Engine[B]) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := e.inner.Reshape(t, newShape)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewReshape(t, result))
	}
	return result
}

// Transpose permutes the tensor's axes and records the operation. With no
// axes given, all axes are reversed. The effective permutation is resolved
// here so the recorded operation can invert it during the backward pass.
func (e *Engine[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	if len(axes) == 0 {
		ndim := len(t.Shape())
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	result := e.inner.Transpose(t, axes...)
	if e.tape.IsRecording() {
		e.tape.Record(ops.NewTranspose(t, axes, result))
	}
	return result
}

// scalarValue widens a backend scalar argument to float64 for recording.
func scalarValue(scalar any) float64 {
	switch v := scalar.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		panic(fmt.Sprintf("autodiff: unsupported scalar type %T", scalar))
	}
}
