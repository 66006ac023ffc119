package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

func TestMSELoss(t *testing.T) {
	engine := newEngine()
	mse := nn.NewMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{1, 2, 3, 4}, tensor.Shape{4})
	targets := fromSlice(t, engine, []float64{2, 2, 5, 0}, tensor.Shape{4})

	loss := mse.Forward(pred, targets)

	// Squared errors: 1, 0, 4, 16; mean = 21/4.
	require.Empty(t, []int(loss.Shape()), "loss must be scalar")
	assert.InDelta(t, 5.25, loss.Item(), 1e-12)
}

func TestMSELoss_PerfectPrediction(t *testing.T) {
	engine := newEngine()
	mse := nn.NewMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{1.5, -2.5}, tensor.Shape{2})
	targets := fromSlice(t, engine, []float64{1.5, -2.5}, tensor.Shape{2})

	assert.Zero(t, mse.Forward(pred, targets).Item())
}

func TestMSELoss_ShapeMismatchPanics(t *testing.T) {
	engine := newEngine()
	mse := nn.NewMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{1, 2, 3}, tensor.Shape{3})
	targets := fromSlice(t, engine, []float64{1, 2}, tensor.Shape{2})

	assert.Panics(t, func() { mse.Forward(pred, targets) })
}

func TestMSELoss_GradientFlowsThroughMean(t *testing.T) {
	engine := newEngine()
	engine.Tape().StartRecording()
	mse := nn.NewMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{3, 1}, tensor.Shape{2})
	targets := fromSlice(t, engine, []float64{1, 1}, tensor.Shape{2})

	loss := mse.Forward(pred, targets)
	engine.Backward(loss.Raw())

	// d/dp mean((p - t)^2) = 2 (p - t) / n.
	grad := engine.Grad(pred.Raw())
	require.NotNil(t, grad, "loss must be differentiable end to end")
	assert.InDeltaSlice(t, []float64{2, 0}, grad.AsFloat64(), 1e-12)
}

func TestRMSELoss(t *testing.T) {
	engine := newEngine()
	rmse := nn.NewRMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{2, 4}, tensor.Shape{2})
	targets := fromSlice(t, engine, []float64{0, 0}, tensor.Shape{2})

	// MSE = (4 + 16) / 2 = 10.
	assert.InDelta(t, math.Sqrt(10), rmse.Forward(pred, targets).Item(), 1e-12)
}

func TestRMSELoss_MatchesSqrtOfMSE(t *testing.T) {
	engine := newEngine()
	mse := nn.NewMSELoss[Engine]()
	rmse := nn.NewRMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{1.2, -0.7, 3.1, 0.4}, tensor.Shape{4})
	targets := fromSlice(t, engine, []float64{1.0, -1.0, 2.5, 0.0}, tensor.Shape{4})

	want := math.Sqrt(mse.Forward(pred, targets).Item())
	assert.InDelta(t, want, rmse.Forward(pred, targets).Item(), 1e-12)
}

func TestRMSELoss_Gradient(t *testing.T) {
	engine := newEngine()
	engine.Tape().StartRecording()
	rmse := nn.NewRMSELoss[Engine]()

	pred := fromSlice(t, engine, []float64{4, 0}, tensor.Shape{2})
	targets := fromSlice(t, engine, []float64{1, 0}, tensor.Shape{2})

	loss := rmse.Forward(pred, targets)
	engine.Backward(loss.Raw())

	// RMSE = sqrt(9/2); d/dp0 = (p0 - t0) / (n * RMSE) = 3 / (2 * sqrt(4.5)).
	grad := engine.Grad(pred.Raw())
	require.NotNil(t, grad)
	assert.InDelta(t, 3/(2*math.Sqrt(4.5)), grad.AsFloat64()[0], 1e-12)
	assert.InDelta(t, 0, grad.AsFloat64()[1], 1e-12)
}
