package autodiff

// operation is a single recorded step of the forward pass. Backward receives
// the gradient of the final output with respect to this operation's output
// and returns the gradients with respect to each input, in input order.
type operation interface {
	Inputs() []*Var
	Output() *Var
	Backward(outputGrad float64) []float64
}

// addOp represents output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type addOp struct {
	inputs [2]*Var
	output *Var
}

func (op *addOp) Inputs() []*Var { return op.inputs[:] }
func (op *addOp) Output() *Var   { return op.output }

func (op *addOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// subOp represents output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type subOp struct {
	inputs [2]*Var
	output *Var
}

func (op *subOp) Inputs() []*Var { return op.inputs[:] }
func (op *subOp) Output() *Var   { return op.output }

func (op *subOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}

// mulOp represents output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type mulOp struct {
	inputs [2]*Var
	output *Var
}

func (op *mulOp) Inputs() []*Var { return op.inputs[:] }
func (op *mulOp) Output() *Var   { return op.output }

func (op *mulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{outputGrad * b.value, outputGrad * a.value}
}

// negOp represents output = -a.
type negOp struct {
	input  *Var
	output *Var
}

func (op *negOp) Inputs() []*Var { return []*Var{op.input} }
func (op *negOp) Output() *Var   { return op.output }

func (op *negOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad}
}

// squareOp represents output = a².
//
// Backward pass: d(a²)/da = 2a, so grad_a = outputGrad * 2a.
type squareOp struct {
	input  *Var
	output *Var
}

func (op *squareOp) Inputs() []*Var { return []*Var{op.input} }
func (op *squareOp) Output() *Var   { return op.output }

func (op *squareOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * 2 * op.input.value}
}
