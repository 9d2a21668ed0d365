// Package model defines the two-parameter affine hypothesis being fit and
// its squared-error cost, both as plain float functions and as tape
// expressions consumable by the autodiff engine.
package model

import "github.com/descent-ml/descent/internal/autodiff"

// Hypothesis evaluates f(theta0, theta1, x) = theta0 + theta1*x.
func Hypothesis(theta0, theta1, x float64) float64 {
	return theta0 + theta1*x
}

// Cost is the squared error of the hypothesis against an observed output:
// (f(theta0, theta1, x) - y)².
func Cost(theta0, theta1, x, y float64) float64 {
	d := Hypothesis(theta0, theta1, x) - y
	return d * d
}

// CostExpr builds Cost as a tape expression over args
// [theta0, theta1, x, y], so the autodiff engine can derive its gradient.
func CostExpr(t *autodiff.Tape, args []*autodiff.Var) *autodiff.Var {
	theta0, theta1, x, y := args[0], args[1], args[2], args[3]
	fx := t.Add(theta0, t.Mul(theta1, x))
	return t.Square(t.Sub(fx, y))
}
