// Package autodiff implements reverse-mode automatic differentiation for
// scalar expressions.
//
// Expressions are built through Tape methods, which compute the forward value
// and record each operation. Backward walks the tape in reverse, applying the
// chain rule and accumulating a gradient for every variable that contributed
// to the output.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	tape.StartRecording()
//	x := tape.Var(3.0)
//	y := tape.Square(x) // y = x²
//
//	grads := tape.Backward(y)
//	fmt.Println(grads[x]) // dy/dx = 2x = 6.0
package autodiff

// Var is a node in the expression graph: an input variable, a constant, or
// the result of a recorded operation. Its value is fixed at creation time.
type Var struct {
	value float64
}

// Value returns the scalar held by the node.
func (v *Var) Value() float64 {
	return v.value
}

// Var creates an input variable with the given value.
func (t *Tape) Var(value float64) *Var {
	return &Var{value: value}
}

// Const creates a constant node. Constants participate in the forward pass
// like any variable; their gradients are computed but normally ignored.
func (t *Tape) Const(value float64) *Var {
	return &Var{value: value}
}

// Add computes a + b and records the operation.
func (t *Tape) Add(a, b *Var) *Var {
	out := &Var{value: a.value + b.value}
	t.record(&addOp{inputs: [2]*Var{a, b}, output: out})
	return out
}

// Sub computes a - b and records the operation.
func (t *Tape) Sub(a, b *Var) *Var {
	out := &Var{value: a.value - b.value}
	t.record(&subOp{inputs: [2]*Var{a, b}, output: out})
	return out
}

// Mul computes a * b and records the operation.
func (t *Tape) Mul(a, b *Var) *Var {
	out := &Var{value: a.value * b.value}
	t.record(&mulOp{inputs: [2]*Var{a, b}, output: out})
	return out
}

// Neg computes -a and records the operation.
func (t *Tape) Neg(a *Var) *Var {
	out := &Var{value: -a.value}
	t.record(&negOp{input: a, output: out})
	return out
}

// Square computes a² and records the operation.
func (t *Tape) Square(a *Var) *Var {
	out := &Var{value: a.value * a.value}
	t.record(&squareOp{input: a, output: out})
	return out
}
