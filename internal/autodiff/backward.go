package autodiff

// Func is a scalar function expressed through tape operations. It receives
// one Var per argument, in argument order, and returns the expression root.
type Func func(t *Tape, args []*Var) *Var

// GradientFunc evaluates a function and its partial derivatives at a point.
// The returned partials slice has one entry per argument, in argument order.
type GradientFunc func(at ...float64) (value float64, partials []float64)

// Gradient differentiates fn and returns a function that evaluates both the
// value and all partial derivatives at a point.
//
// A fresh tape is built per call, so the returned GradientFunc is safe to
// reuse across evaluation points.
//
// Example:
//
//	// f(a, b) = (a - b)²
//	g := autodiff.Gradient(func(t *autodiff.Tape, args []*autodiff.Var) *autodiff.Var {
//	    return t.Square(t.Sub(args[0], args[1]))
//	})
//	_, partials := g(3, 1) // partials = [4, -4]
func Gradient(fn Func) GradientFunc {
	return func(at ...float64) (float64, []float64) {
		tape := NewTape()
		tape.StartRecording()

		args := make([]*Var, len(at))
		for i, v := range at {
			args[i] = tape.Var(v)
		}

		output := fn(tape, args)
		grads := tape.Backward(output)

		partials := make([]float64, len(args))
		for i, arg := range args {
			partials[i] = grads[arg]
		}
		return output.Value(), partials
	}
}
