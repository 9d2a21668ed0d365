// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the batch gradient-descent optimizer for the
// two-parameter affine model.
//
// Example:
//
//	ds, _ := dataset.Generate(dataset.Config{Seed: 1})
//	d, _ := optim.New(optim.Config{MaxSteps: 10000, Eps: 1e-6})
//	res, err := d.Optimize(optim.Theta{}, ds, grad.Autodiff())
package optim

import (
	"github.com/descent-ml/descent/internal/optim"
)

// Theta is the parameter vector of the affine hypothesis.
type Theta = optim.Theta

// Config holds optimization parameters.
type Config = optim.Config

// Result is the outcome of an optimization run.
type Result = optim.Result

// ProgressRecord reports the parameter state after one step.
type ProgressRecord = optim.ProgressRecord

// ComputationError reports a non-finite derivative from the gradient oracle.
type ComputationError = optim.ComputationError

// Descent is the batch gradient-descent optimizer.
type Descent = optim.Descent

// New creates a Descent optimizer.
func New(cfg Config) (*Descent, error) {
	return optim.New(cfg)
}
