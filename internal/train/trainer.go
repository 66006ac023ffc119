package train

import (
	"fmt"

	"github.com/Machine-Learning-S25/WK12/internal/nn"
	"github.com/Machine-Learning-S25/WK12/internal/optim"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Trainer wires a model, a loss, and an optimizer to an autodiff engine.
//
// Fit runs full-batch iterations: every epoch evaluates the model on the
// whole dataset, backpropagates, and applies one optimizer step. Termination
// is always the fixed epoch count.
type Trainer[E Engine] struct {
	engine    E
	model     nn.Module[E]
	criterion nn.Loss[E]
	optimizer optim.Optimizer
}

// NewTrainer creates a trainer from its four collaborators.
func NewTrainer[E Engine](engine E, model nn.Module[E], criterion nn.Loss[E], optimizer optim.Optimizer) *Trainer[E] {
	return &Trainer[E]{
		engine:    engine,
		model:     model,
		criterion: criterion,
		optimizer: optimizer,
	}
}

// Fit trains for the given number of epochs and returns the loss logged at
// the start of each epoch (before that epoch's update).
func (t *Trainer[E]) Fit(x, y *tensor.Tensor[float64, E], epochs int) []float64 {
	if epochs < 0 {
		panic(fmt.Sprintf("train: negative epoch count %d", epochs))
	}

	history := make([]float64, 0, epochs)
	for epoch := 0; epoch < epochs; epoch++ {
		t.engine.Tape().Clear()
		t.engine.ZeroGrad()
		t.engine.Tape().StartRecording()

		loss := t.criterion.Forward(t.model.Forward(x), y)
		t.engine.Backward(loss.Raw())
		t.engine.Tape().StopRecording()

		t.optimizer.Step(t.engine.Grads())
		history = append(history, loss.Item())
	}
	return history
}

// Evaluate runs a read-only forward pass: predictions and loss are computed
// with recording suspended, nothing is mutated, and repeated calls with no
// intervening update return identical results.
func (t *Trainer[E]) Evaluate(x, y *tensor.Tensor[float64, E]) (*tensor.Tensor[float64, E], float64) {
	var (
		predictions *tensor.Tensor[float64, E]
		loss        float64
	)
	t.engine.NoGrad(func() {
		predictions = t.model.Forward(x)
		loss = t.criterion.Forward(predictions, y).Item()
	})
	return predictions, loss
}

// Model returns the trained model.
func (t *Trainer[E]) Model() nn.Module[E] {
	return t.model
}

// Optimizer returns the optimizer in use.
func (t *Trainer[E]) Optimizer() optim.Optimizer {
	return t.optimizer
}
