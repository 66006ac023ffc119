package autodiff

import (
	"github.com/Machine-Learning-S25/WK12/internal/autodiff/ops"
	"github.com/Machine-Learning-S25/WK12/internal/tensor"
)

// Tape records operations during the forward pass so that a reverse walk
// can apply the chain rule from any recorded output back to the leaves.
//
// A tape only ever grows; Clear resets it between training iterations.
// Recording state survives Clear so a training loop can keep one tape
// for its whole lifetime.
type Tape struct {
	operations []ops.Operation // in execution order
	recording  bool
}

// NewTape creates an empty tape with recording disabled.
func NewTape() *Tape {
	return &Tape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables operation recording.
func (t *Tape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *Tape) StopRecording() {
	t.recording = false
}

// IsRecording reports whether operations are currently being recorded.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// Record appends an operation to the tape. Calls made while recording is
// disabled are dropped silently.
func (t *Tape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear removes all recorded operations. Recording state is preserved.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.operations)
}

// Backward walks the tape in reverse from output, which is seeded with
// outputGrad, and returns the gradient of output with respect to every
// tensor it depends on. Tensors used more than once have their partial
// gradients summed.
//
// Operations recorded after output was produced carry no gradient and are
// skipped, so differentiating an intermediate value works as expected.
// The walk disables recording on the tape so the gradient arithmetic
// itself is never recorded, and the tape is left intact: calling Backward
// again replays the same walk.
func (t *Tape) Backward(output, outputGrad *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	grads[output] = outputGrad

	wasRecording := t.recording
	t.recording = false
	defer func() { t.recording = wasRecording }()

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outGrad, onPath := grads[op.Output()]
		if !onPath {
			continue
		}
		inputGrads := op.Backward(outGrad, backend)
		for j, input := range op.Inputs() {
			inputGrad := inputGrads[j]
			if inputGrad == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, inputGrad)
			} else {
				grads[input] = inputGrad
			}
		}
	}

	return grads
}
