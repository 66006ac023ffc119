package ops

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// reduceBroadcast sums grad down to target, undoing any broadcasting the
// forward pass applied. When no reduction is needed the gradient is
// cloned, so callers always receive a reference the accumulation map can
// own without aliasing the caller's tensor.
//
// Broadcasting aligns shapes from the right, so the reduction first sums
// away extra leading dimensions and then sums along every dimension the
// forward pass stretched from one.
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if grad.Shape().Equal(target) {
		return grad.Clone()
	}
	if len(target) == 0 {
		return backend.Sum(grad)
	}

	result := grad
	for len(result.Shape()) > len(target) {
		result = backend.SumDim(result, 0, false)
	}
	for i, dim := range target {
		if dim == 1 && result.Shape()[i] != 1 {
			result = backend.SumDim(result, i, true)
		}
	}
	if !result.Shape().Equal(target) {
		result = backend.Reshape(result, target)
	}
	return result
}

// zerosLike returns a zero-filled tensor with t's shape and dtype.
// Fresh buffers come back zeroed, so no fill pass is needed.
func zerosLike(t *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(t.Shape(), t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("ops: failed to allocate gradient tensor: %v", err))
	}
	return result
}

// onesLike returns a one-filled tensor with t's shape and dtype.
func onesLike(t *tensor.RawTensor) *tensor.RawTensor {
	result := zerosLike(t)
	switch result.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	}
	return result
}

// scalarOf converts v to the scalar type the backend expects for a tensor
// of the given dtype.
func scalarOf(dtype tensor.DataType, v float64) any {
	if dtype == tensor.Float32 {
		return float32(v)
	}
	return v
}

// expand broadcasts grad up to the given shape by adding it to zeros.
// Used by reduction backward passes, where every input element receives
// the same output gradient.
func expand(grad *tensor.RawTensor, like *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.Add(zerosLike(like), grad)
}
