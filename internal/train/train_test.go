package train_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Machine-Learning-S25/WK12/internal/autodiff"
	"github.com/Machine-Learning-S25/WK12/internal/backend/cpu"
	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/optim"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
	"github.com/Machine-Learning-S25/WK12/internal/train"
)

type Backend = *autodiff.Engine[*cpu.CPUBackend]

var _ train.Engine = (*autodiff.Engine[*cpu.CPUBackend])(nil)

// quartic is the demo function f(x) = x⁴ − (2/3)x³ − 2.04x² + 0.864x, with
// local minima near x = −0.9 and x = 1.2 and a local maximum near x = 0.2.
func quartic(x *tensor.Tensor[float64, Backend]) *tensor.Tensor[float64, Backend] {
	return x.PowScalar(4).
		Sub(x.PowScalar(3).MulScalar(2.0 / 3.0)).
		Sub(x.PowScalar(2).MulScalar(2.04)).
		Add(x.MulScalar(0.864))
}

// quarticAt evaluates the quartic with plain float math.
func quarticAt(x float64) float64 {
	return math.Pow(x, 4) - 2.0/3.0*math.Pow(x, 3) - 2.04*x*x + 0.864*x
}

// quarticDerivativeAt is the closed-form derivative 4x³ − 2x² − 4.08x + 0.864.
func quarticDerivativeAt(x float64) float64 {
	return 4*math.Pow(x, 3) - 2*x*x - 4.08*x + 0.864
}

func TestQuarticDerivative_MatchesClosedForm(t *testing.T) {
	engine := autodiff.New(cpu.New())

	// Critical points first, then interior points.
	points := []float64{-0.9, 0.2, 1.2, -1.5, 0.15, 0.5, 2.0}
	for _, x0 := range points {
		engine.Tape().Clear()
		engine.ZeroGrad()

		x, err := tensor.FromSlice([]float64{x0}, tensor.Shape{1}, engine)
		require.NoError(t, err)

		engine.Tape().StartRecording()
		y := quartic(x)
		engine.Tape().StopRecording()
		autodiff.Backward(y)

		grad := engine.Grad(x.Raw())
		require.NotNil(t, grad, "x = %g", x0)
		assert.InDelta(t, quarticDerivativeAt(x0), grad.AsFloat64()[0], 1e-3, "x = %g", x0)
	}
}

func TestDescend_QuarticToLocalMinimum(t *testing.T) {
	engine := autodiff.New(cpu.New())

	traj := train.Descend(engine, quartic, []float64{0.15}, 0.15, 32)

	require.Equal(t, 33, traj.Len())
	assert.InDelta(t, -0.9, traj.Final()[0], 1e-2)
	assert.Less(t, traj.FinalValue(), traj.Values[0])

	// The iterates never diverge.
	for _, p := range traj.Points {
		assert.Less(t, math.Abs(p[0]), 10.0)
	}
}

func TestDescend_MoreIterationsStayAtMinimum(t *testing.T) {
	engine := autodiff.New(cpu.New())

	traj := train.Descend(engine, quartic, []float64{0.15}, 0.15, 64)
	assert.InDelta(t, -0.9, traj.Final()[0], 1e-3)
}

func TestAscend_QuarticToLocalMaximum(t *testing.T) {
	engine := autodiff.New(cpu.New())

	traj := train.Ascend(engine, quartic, []float64{0.15}, 0.15, 32)

	assert.InDelta(t, 0.2, traj.Final()[0], 1e-2)
	assert.Greater(t, traj.FinalValue(), traj.Values[0])
}

func TestDescend_TrajectoryBookkeeping(t *testing.T) {
	engine := autodiff.New(cpu.New())

	traj := train.Descend(engine, quartic, []float64{0.15}, 0.15, 5)

	require.Equal(t, 6, traj.Len())
	require.Len(t, traj.Values, 6)
	assert.Equal(t, []float64{0.15}, traj.Points[0])
	assert.InDelta(t, quarticAt(0.15), traj.Values[0], 1e-12)

	// Each recorded value matches the objective at the recorded point.
	for i, p := range traj.Points {
		assert.InDelta(t, quarticAt(p[0]), traj.Values[i], 1e-12, "point %d", i)
	}

	series := traj.Dim(0)
	require.Len(t, series, 6)
	assert.Equal(t, traj.Final()[0], series[5])
}

func TestDescend_AnisotropicBowl(t *testing.T) {
	engine := autodiff.New(cpu.New())

	// g(x, y) = x² + 2y², minimum at the origin.
	bowl := func(p *tensor.Tensor[float64, Backend]) *tensor.Tensor[float64, Backend] {
		squares := p.Mul(p)
		weights, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}, engine)
		require.NoError(t, err)
		return squares.Mul(weights).Sum()
	}

	traj := train.Descend(engine, bowl, []float64{2.0, 1.5}, 0.1, 50)

	assert.InDelta(t, 0, traj.Final()[0], 1e-3)
	assert.InDelta(t, 0, traj.Final()[1], 1e-3)
	assert.Less(t, traj.FinalValue(), 1e-6)
}

func TestAscend_GaussianHill(t *testing.T) {
	engine := autodiff.New(cpu.New())

	// h(x, y) = exp(−(x²+y²)/2), maximum 1 at the origin.
	hill := func(p *tensor.Tensor[float64, Backend]) *tensor.Tensor[float64, Backend] {
		return p.Mul(p).Sum().DivScalar(2).Neg().Exp()
	}

	traj := train.Ascend(engine, hill, []float64{1.0, -0.8}, 0.5, 100)

	assert.InDelta(t, 0, traj.Final()[0], 1e-3)
	assert.InDelta(t, 0, traj.Final()[1], 1e-3)
	assert.InDelta(t, 1.0, traj.FinalValue(), 1e-6)
}

func TestDescend_NonScalarObjectivePanics(t *testing.T) {
	engine := autodiff.New(cpu.New())

	doubled := func(p *tensor.Tensor[float64, Backend]) *tensor.Tensor[float64, Backend] {
		return p.MulScalar(2)
	}

	assert.Panics(t, func() {
		train.Descend(engine, doubled, []float64{1, 2}, 0.1, 3)
	})
}

func TestDescend_ConstantObjectivePanics(t *testing.T) {
	engine := autodiff.New(cpu.New())

	constant := func(_ *tensor.Tensor[float64, Backend]) *tensor.Tensor[float64, Backend] {
		c := tensor.Full(tensor.Shape{1}, 3.0, engine)
		return c.Mul(c)
	}

	assert.Panics(t, func() {
		train.Descend(engine, constant, []float64{1}, 0.1, 3)
	})
}

// syntheticRegression builds a noiseless linear dataset y = xW + b with
// standardized-looking features, so full-batch descent behaves like the
// housing setup.
func syntheticRegression(t *testing.T, backend Backend, n, features int, seed int64) (x, y *tensor.Tensor[float64, Backend]) {
	t.Helper()

	//nolint:gosec // G404: test data generation
	rng := rand.New(rand.NewSource(seed))

	xData := make([]float64, n*features)
	for i := range xData {
		xData[i] = rng.NormFloat64()
	}

	weights := make([]float64, features)
	for j := range weights {
		weights[j] = 0.5 * float64(j+1)
	}
	const bias = 1.5

	yData := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := bias
		for j := 0; j < features; j++ {
			sum += xData[i*features+j] * weights[j]
		}
		yData[i] = sum
	}

	x, err := tensor.FromSlice(xData, tensor.Shape{n, features}, backend)
	require.NoError(t, err)
	y, err = tensor.FromSlice(yData, tensor.Shape{n, 1}, backend)
	require.NoError(t, err)
	return x, y
}

func TestTrainer_FitLossStrictlyDecreases(t *testing.T) {
	engine := autodiff.New(cpu.New())
	x, y := syntheticRegression(t, engine, 64, 8, 21)

	model := nn.NewLinearSeeded(8, 1, engine, 42)
	trainer := train.NewTrainer[Backend](engine, model, nn.NewMSELoss[Backend](),
		optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1e-2}))

	history := trainer.Fit(x, y, 32)

	require.Len(t, history, 32)
	for i := 1; i < 9; i++ {
		assert.Less(t, history[i], history[i-1], "epoch %d", i)
	}
	assert.Less(t, history[31], history[0])
}

func TestTrainer_EvaluateIsIdempotent(t *testing.T) {
	engine := autodiff.New(cpu.New())
	x, y := syntheticRegression(t, engine, 32, 4, 5)

	model := nn.NewLinearSeeded(4, 1, engine, 7)
	trainer := train.NewTrainer[Backend](engine, model, nn.NewMSELoss[Backend](),
		optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1e-2}))

	trainer.Fit(x, y, 5)

	preds1, loss1 := trainer.Evaluate(x, y)
	preds2, loss2 := trainer.Evaluate(x, y)

	// Bit-identical: no update happened in between.
	require.Equal(t, preds1.Data(), preds2.Data())
	require.Equal(t, loss1, loss2)
}

func TestTrainer_EvaluateLeavesNoTrace(t *testing.T) {
	engine := autodiff.New(cpu.New())
	x, y := syntheticRegression(t, engine, 16, 4, 9)

	model := nn.NewLinearSeeded(4, 1, engine, 11)
	trainer := train.NewTrainer[Backend](engine, model, nn.NewMSELoss[Backend](),
		optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1e-2}))

	_, _ = trainer.Evaluate(x, y)

	assert.Equal(t, 0, engine.Tape().NumOps())
	assert.Empty(t, engine.Grads())
}

func TestTrainer_EvaluateAfterFitMatchesHistory(t *testing.T) {
	engine := autodiff.New(cpu.New())
	x, y := syntheticRegression(t, engine, 64, 8, 13)

	model := nn.NewLinearSeeded(8, 1, engine, 17)
	trainer := train.NewTrainer[Backend](engine, model, nn.NewMSELoss[Backend](),
		optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1e-2}))

	history := trainer.Fit(x, y, 32)
	_, loss := trainer.Evaluate(x, y)

	// The post-training loss sits below the last pre-update loss.
	assert.Less(t, loss, history[31])
}

func TestTrainer_MLPWithAdam(t *testing.T) {
	engine := autodiff.New(cpu.New())
	x, y := syntheticRegression(t, engine, 32, 4, 31)

	model := nn.NewSequential[Backend](
		nn.NewLinearSeeded(4, 8, engine, 1),
		nn.NewReLU[Backend](),
		nn.NewLinearSeeded(8, 1, engine, 2),
	)
	trainer := train.NewTrainer[Backend](engine, model, nn.NewMSELoss[Backend](),
		optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01}))

	history := trainer.Fit(x, y, 100)

	require.Len(t, history, 100)
	assert.Less(t, history[99], history[0])
}

func TestTrainer_RMSECriterion(t *testing.T) {
	engine := autodiff.New(cpu.New())
	x, y := syntheticRegression(t, engine, 32, 4, 3)

	model := nn.NewLinearSeeded(4, 1, engine, 23)
	mse := nn.NewMSELoss[Backend]()
	rmse := nn.NewRMSELoss[Backend]()

	trainer := train.NewTrainer[Backend](engine, model, rmse,
		optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 1e-2}))

	history := trainer.Fit(x, y, 10)
	assert.Less(t, history[9], history[0])

	// RMSE evaluation is the square root of the MSE evaluation.
	var mseValue float64
	engine.NoGrad(func() {
		mseValue = mse.Forward(model.Forward(x), y).Item()
	})
	_, rmseValue := trainer.Evaluate(x, y)
	assert.InDelta(t, math.Sqrt(mseValue), rmseValue, 1e-12)
}
