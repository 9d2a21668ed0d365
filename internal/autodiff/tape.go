package autodiff

// Tape records operations during the forward pass and computes gradients
// during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewTape()
//	tape.StartRecording()
//	// ... build expression ...
//	gradients := tape.Backward(output)
type Tape struct {
	operations []operation // Recorded operations (in execution order)
	recording  bool        // Whether tape is currently recording
}

// NewTape creates a new gradient tape.
func NewTape() *Tape {
	return &Tape{
		operations: make([]operation, 0, 16), // Pre-allocate for common case
		recording:  false,
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

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *Tape) record(op operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients of output with respect to every node that
// contributed to it by walking the tape in reverse.
//
// Algorithm:
//  1. Seed the output gradient with 1
//  2. Walk operations in reverse order
//  3. For each operation, compute input gradients using the chain rule
//  4. Accumulate gradients when the same node is used multiple times
//
// Returns a map from Var to its accumulated gradient. Nodes that did not
// contribute to output are absent from the map; their gradient is zero.
func (t *Tape) Backward(output *Var) map[*Var]float64 {
	grads := map[*Var]float64{output: 1}

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outputGrad, ok := grads[op.Output()]
		if !ok {
			// No gradient flows through this operation.
			continue
		}
		inputGrads := op.Backward(outputGrad)
		for j, input := range op.Inputs() {
			grads[input] += inputGrads[j]
		}
	}

	return grads
}
