package autodiff

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Backward runs a reverse pass from output and accumulates the resulting
// gradients into the engine's store. The gradient of output with respect
// to itself is seeded with ones, every tensor on the recorded path picks
// up its chain-rule contribution, and contributions from earlier Backward
// calls are summed rather than replaced.
//
// The tape is left untouched, so calling Backward twice on the same
// recorded computation doubles every stored gradient. Clear the tape and
// the store explicitly between training iterations.
func (e *Engine[B]) Backward(output *tensor.RawTensor) {
	if e.tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	seed := onesRaw(output.Shape(), output.DType(), e.Device())
	local := e.tape.Backward(output, seed, e)

	for t, grad := range local {
		if existing, ok := e.grads[t]; ok {
			e.grads[t] = e.inner.Add(existing, grad)
		} else {
			e.grads[t] = grad
		}
	}
}

// Grad returns the accumulated gradient of t, or nil if no Backward call
// has reached it. The returned tensor is owned by the store and stays
// live until ZeroGrad.
func (e *Engine[B]) Grad(t *tensor.RawTensor) *tensor.RawTensor {
	return e.grads[t]
}

// Grads exposes the whole gradient store, keyed by the tensors gradients
// were computed for. Optimizers read parameter updates from it. The map
// is the live store, not a copy.
func (e *Engine[B]) Grads() map[*tensor.RawTensor]*tensor.RawTensor {
	return e.grads
}

// ZeroGrad discards every accumulated gradient. Typically called once
// per training iteration after the optimizer step.
func (e *Engine[B]) ZeroGrad() {
	clear(e.grads)
}

// BackwardCapable is satisfied by engines that can replay a recorded
// computation in reverse. *Engine[B] implements it for any wrapped
// backend B.
type BackwardCapable interface {
	tensor.Backend
	Backward(output *tensor.RawTensor)
	Grad(t *tensor.RawTensor) *tensor.RawTensor
}

// Backward runs the reverse pass for a typed tensor through its engine.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B]) {
	t.Backend().Backward(t.Raw())
}

// Grad returns the accumulated gradient of t as a typed tensor sharing
// the store's buffer, or nil if no gradient has reached t.
func Grad[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	raw := t.Backend().Grad(t.Raw())
	if raw == nil {
		return nil
	}
	return tensor.New[T](raw, t.Backend())
}

// onesRaw builds a gradient seed filled with ones.
func onesRaw(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create gradient seed: %v", err))
	}
	switch dtype {
	case tensor.Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	}
	return raw
}
