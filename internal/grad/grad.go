// Package grad defines the gradient oracle consumed by the optimizer: a
// callable that, for one sample and the current parameters, produces the
// partial derivatives of the squared-error cost with respect to all four of
// its inputs.
//
// Three interchangeable implementations are provided: the closed form, a
// reverse-mode autodiff derivation of the cost expression, and central-
// difference numeric differentiation. The optimizer depends only on the
// Oracle contract, not on any particular differentiation technology.
package grad

import (
	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/model"
)

// Partial derivative slots written by an Oracle.
const (
	Theta0 = iota // d(cost)/d(theta0)
	Theta1        // d(cost)/d(theta1)
	X             // d(cost)/d(x)
	Y             // d(cost)/d(y)
)

// Oracle writes the four partial derivatives of the squared-error cost
// cost(theta0, theta1, x, y) = (theta0 + theta1*x - y)² into out.
//
// The caller owns and resets the output buffer; implementations must fill
// all four slots.
type Oracle func(theta0, theta1, x, y float64, out *[4]float64)

// ClosedForm returns the analytically derived oracle. With
// e = theta0 + theta1*x - y:
//
//	d/dtheta0 = 2e
//	d/dtheta1 = 2e*x
//	d/dx      = 2e*theta1
//	d/dy      = -2e
func ClosedForm() Oracle {
	return func(theta0, theta1, x, y float64, out *[4]float64) {
		e := model.Hypothesis(theta0, theta1, x) - y
		out[Theta0] = 2 * e
		out[Theta1] = 2 * e * x
		out[X] = 2 * e * theta1
		out[Y] = -2 * e
	}
}

// Autodiff returns an oracle that derives the partials from the cost
// expression via reverse-mode automatic differentiation.
func Autodiff() Oracle {
	g := autodiff.Gradient(model.CostExpr)
	return func(theta0, theta1, x, y float64, out *[4]float64) {
		_, partials := g(theta0, theta1, x, y)
		copy(out[:], partials)
	}
}

// Numeric returns an oracle using central differences with step h on the
// cost function. Accuracy is O(h²); h around 1e-6 keeps the partials within
// roughly 1e-6 relative error of the closed form for in-domain inputs.
func Numeric(h float64) Oracle {
	return func(theta0, theta1, x, y float64, out *[4]float64) {
		out[Theta0] = (model.Cost(theta0+h, theta1, x, y) - model.Cost(theta0-h, theta1, x, y)) / (2 * h)
		out[Theta1] = (model.Cost(theta0, theta1+h, x, y) - model.Cost(theta0, theta1-h, x, y)) / (2 * h)
		out[X] = (model.Cost(theta0, theta1, x+h, y) - model.Cost(theta0, theta1, x-h, y)) / (2 * h)
		out[Y] = (model.Cost(theta0, theta1, x, y+h) - model.Cost(theta0, theta1, x, y-h)) / (2 * h)
	}
}
