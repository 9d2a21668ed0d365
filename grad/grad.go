// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grad exposes the gradient oracle contract and its interchangeable
// implementations: closed form, reverse-mode autodiff, and central-difference
// numeric differentiation.
package grad

import (
	"github.com/descent-ml/descent/internal/grad"
)

// Oracle writes the four partial derivatives of the squared-error cost into
// the caller's buffer: [d/dtheta0, d/dtheta1, d/dx, d/dy].
type Oracle = grad.Oracle

// Partial derivative slots written by an Oracle.
const (
	Theta0 = grad.Theta0
	Theta1 = grad.Theta1
	X      = grad.X
	Y      = grad.Y
)

// ClosedForm returns the analytically derived oracle.
func ClosedForm() Oracle {
	return grad.ClosedForm()
}

// Autodiff returns an oracle backed by reverse-mode automatic
// differentiation of the cost expression.
func Autodiff() Oracle {
	return grad.Autodiff()
}

// Numeric returns a central-difference oracle with step h.
func Numeric(h float64) Oracle {
	return grad.Numeric(h)
}
