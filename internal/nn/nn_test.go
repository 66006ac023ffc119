package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Machine-Learning-S25/WK12/internal/autodiff"
	"github.com/Machine-Learning-S25/WK12/internal/backend/cpu"
	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Engine is the backend the module tests run against.
type Engine = *autodiff.Engine[*cpu.CPUBackend]

func newEngine() Engine {
	return autodiff.New(cpu.New())
}

func fromSlice(t *testing.T, engine Engine, data []float64, shape tensor.Shape) *tensor.Tensor[float64, Engine] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, engine)
	require.NoError(t, err)
	return x
}

func TestParameter(t *testing.T) {
	engine := newEngine()
	data := fromSlice(t, engine, []float64{1, 2, 3}, tensor.Shape{3})

	param := nn.NewParameter("weight", data)

	assert.Equal(t, "weight", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.Same(t, data.Raw(), param.Raw())
}

func TestLinear_Creation(t *testing.T) {
	engine := newEngine()
	layer := nn.NewLinear(10, 5, engine)

	assert.Equal(t, 10, layer.InFeatures())
	assert.Equal(t, 5, layer.OutFeatures())
	assert.True(t, layer.Weight().Tensor().Shape().Equal(tensor.Shape{5, 10}))
	assert.True(t, layer.Bias().Tensor().Shape().Equal(tensor.Shape{5}))

	for _, b := range layer.Bias().Tensor().Data() {
		assert.Zero(t, b)
	}

	// Xavier bound for fanIn=10, fanOut=5 is sqrt(6/15).
	bound := 0.6325
	for _, w := range layer.Weight().Tensor().Data() {
		assert.InDelta(t, 0, w, bound+1e-9)
	}

	require.Len(t, layer.Parameters(), 2)
}

func TestLinear_SeededIsReproducible(t *testing.T) {
	engine := newEngine()

	a := nn.NewLinearSeeded(6, 4, engine, 42)
	b := nn.NewLinearSeeded(6, 4, engine, 42)
	c := nn.NewLinearSeeded(6, 4, engine, 7)

	assert.Equal(t, a.Weight().Tensor().Data(), b.Weight().Tensor().Data())
	assert.NotEqual(t, a.Weight().Tensor().Data(), c.Weight().Tensor().Data())
}

func TestLinear_Forward(t *testing.T) {
	engine := newEngine()
	layer := nn.NewLinear(2, 3, engine)

	// Overwrite the random weights with known values.
	copy(layer.Weight().Tensor().Data(), []float64{
		1, 0, // row 0
		0, 1, // row 1
		1, 1, // row 2
	})
	copy(layer.Bias().Tensor().Data(), []float64{10, 20, 30})

	input := fromSlice(t, engine, []float64{2, 3}, tensor.Shape{1, 2})
	output := layer.Forward(input)

	require.True(t, output.Shape().Equal(tensor.Shape{1, 3}))
	assert.InDeltaSlice(t, []float64{12, 23, 35}, output.Data(), 1e-12)
}

func TestLinear_ForwardBatch(t *testing.T) {
	engine := newEngine()
	layer := nn.NewLinear(2, 1, engine)
	copy(layer.Weight().Tensor().Data(), []float64{3, -1})
	copy(layer.Bias().Tensor().Data(), []float64{0.5})

	input := fromSlice(t, engine, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	output := layer.Forward(input)

	require.True(t, output.Shape().Equal(tensor.Shape{2, 1}))
	assert.InDeltaSlice(t, []float64{1.5, 5.5}, output.Data(), 1e-12)
}

func TestLinear_ShapePanics(t *testing.T) {
	engine := newEngine()
	layer := nn.NewLinear(4, 2, engine)

	assert.Panics(t, func() {
		layer.Forward(fromSlice(t, engine, []float64{1, 2, 3}, tensor.Shape{3}))
	}, "1D input must panic")

	assert.Panics(t, func() {
		layer.Forward(fromSlice(t, engine, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}))
	}, "feature mismatch must panic")
}

func TestLinear_GradientsReachParameters(t *testing.T) {
	engine := newEngine()
	engine.Tape().StartRecording()

	layer := nn.NewLinearSeeded(3, 2, engine, 1)
	input := fromSlice(t, engine, []float64{0.5, -1, 2}, tensor.Shape{1, 3})

	loss := layer.Forward(input).Sum()
	engine.Backward(loss.Raw())

	for _, p := range layer.Parameters() {
		grad := engine.Grad(p.Raw())
		require.NotNilf(t, grad, "no gradient for %s", p.Name())
		assert.True(t, grad.Shape().Equal(p.Tensor().Shape()),
			"gradient shape %v does not match %s shape %v", grad.Shape(), p.Name(), p.Tensor().Shape())
	}
}

func TestActivations(t *testing.T) {
	engine := newEngine()
	input := fromSlice(t, engine, []float64{-2, 0, 2}, tensor.Shape{3})

	relu := nn.NewReLU[Engine]().Forward(input)
	assert.InDeltaSlice(t, []float64{0, 0, 2}, relu.Data(), 1e-12)

	sigmoid := nn.NewSigmoid[Engine]().Forward(input)
	assert.InDelta(t, 0.5, sigmoid.Data()[1], 1e-12)
	assert.Less(t, sigmoid.Data()[0], 0.5)
	assert.Greater(t, sigmoid.Data()[2], 0.5)

	tanh := nn.NewTanh[Engine]().Forward(input)
	assert.InDelta(t, 0, tanh.Data()[1], 1e-12)
	assert.InDelta(t, -tanh.Data()[2], tanh.Data()[0], 1e-12)

	assert.Nil(t, nn.NewReLU[Engine]().Parameters())
	assert.Nil(t, nn.NewSigmoid[Engine]().Parameters())
	assert.Nil(t, nn.NewTanh[Engine]().Parameters())
}

func TestSequential(t *testing.T) {
	engine := newEngine()

	model := nn.NewSequential[Engine](
		nn.NewLinearSeeded(4, 8, engine, 2),
		nn.NewReLU[Engine](),
		nn.NewLinearSeeded(8, 1, engine, 3),
	)

	require.Equal(t, 3, model.Len())
	assert.Len(t, model.Parameters(), 4, "two Linear layers contribute weight+bias each")

	input := fromSlice(t, engine, []float64{1, -2, 0.5, 3}, tensor.Shape{1, 4})
	output := model.Forward(input)
	assert.True(t, output.Shape().Equal(tensor.Shape{1, 1}))
}

func TestSequential_Add(t *testing.T) {
	engine := newEngine()

	model := nn.NewSequential[Engine]()
	model.Add(nn.NewLinearSeeded(2, 2, engine, 4))
	model.Add(nn.NewTanh[Engine]())

	require.Equal(t, 2, model.Len())
	assert.NotNil(t, model.Module(0))
	assert.Panics(t, func() { model.Module(2) })
}

func TestSequential_TrainsThroughStack(t *testing.T) {
	engine := newEngine()
	engine.Tape().StartRecording()

	model := nn.NewSequential[Engine](
		nn.NewLinearSeeded(2, 4, engine, 5),
		nn.NewTanh[Engine](),
		nn.NewLinearSeeded(4, 1, engine, 6),
	)

	input := fromSlice(t, engine, []float64{0.5, -0.25}, tensor.Shape{1, 2})
	loss := model.Forward(input).Sum()
	engine.Backward(loss.Raw())

	for _, p := range model.Parameters() {
		assert.NotNilf(t, engine.Grad(p.Raw()), "no gradient for %s", p.Name())
	}
}
