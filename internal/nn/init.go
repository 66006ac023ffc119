package nn

import (
	"math"
	"math/rand"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Xavier draws weights from the Glorot uniform distribution
// U(-bound, bound) with bound = sqrt(6 / (fanIn + fanOut)), which keeps
// activation variance roughly constant across layers.
//
// A nil rng falls back to the shared math/rand source; pass a seeded
// *rand.Rand for reproducible initialization.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B, rng *rand.Rand) *tensor.Tensor[float64, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	raw, err := tensor.NewRaw(shape, tensor.Float64, backend.Device())
	if err != nil {
		panic(err)
	}

	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}
	data := raw.AsFloat64()
	for i := range data {
		//nolint:gosec // G404: weight initialization, not security
		data[i] = (uniform()*2 - 1) * bound
	}

	return tensor.New[float64](raw, backend)
}

// Zeros returns a zero-filled tensor, the usual bias initialization.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Zeros[float64](shape, backend)
}

// Ones returns a one-filled tensor.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Ones[float64](shape, backend)
}

// Randn returns a tensor of standard normal draws.
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Randn[float64](shape, backend)
}
