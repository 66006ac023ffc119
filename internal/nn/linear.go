package nn

import (
	"fmt"
	"math/rand"

	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Linear is a fully connected layer computing y = x @ W^T + b.
//
// Shapes:
//   - input x: [batch, inFeatures]
//   - weight W: [outFeatures, inFeatures], Xavier-initialized
//   - bias b: [outFeatures], zero-initialized
//   - output y: [batch, outFeatures]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
}

// NewLinear creates a Linear layer with Xavier-initialized weights drawn
// from the shared math/rand source.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return newLinear(inFeatures, outFeatures, backend, nil)
}

// NewLinearSeeded creates a Linear layer whose weights are drawn from a
// private source seeded with seed, so initialization is reproducible.
func NewLinearSeeded[B tensor.Backend](inFeatures, outFeatures int, backend B, seed int64) *Linear[B] {
	//nolint:gosec // G404: reproducible weight initialization
	return newLinear(inFeatures, outFeatures, backend, rand.New(rand.NewSource(seed)))
}

func newLinear[B tensor.Backend](inFeatures, outFeatures int, backend B, rng *rand.Rand) *Linear[B] {
	weight := Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, backend, rng)
	bias := Zeros(tensor.Shape{outFeatures}, backend)

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes y = x @ W^T + b.
//
// Panics when the input is not 2D or its feature count does not match
// the layer. Shape problems surface immediately instead of producing a
// silently wrong model.
func (l *Linear[B]) Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("linear: expected 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("linear: expected input with %d features, got %d", l.inFeatures, shape[1]))
	}

	// [batch, in] @ [in, out] = [batch, out]
	output := input.MatMul(l.weight.Tensor().T())

	// Bias broadcasts across the batch as [1, out].
	return output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns the weight and bias parameters.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the input width.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
