// Package optim implements full-batch gradient descent for the two-parameter
// affine hypothesis.
//
// Each step performs one pass over the dataset in order, accumulating the
// parameter partials produced by a gradient oracle, applies a batch-mean
// scaled update, reports progress, and checks convergence against the
// parameters as they were before the step. The loop body always runs at
// least once, and a run that never converges executes maxSteps+1 steps.
package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/grad"
)

// Theta is the parameter vector of the hypothesis
// f(theta0, theta1, x) = theta0 + theta1*x.
type Theta struct {
	Theta0 float64
	Theta1 float64
}

// ProgressRecord reports the parameter state after one optimization step.
// Step indices start at 0. Progress is a diagnostic stream; it never affects
// control decisions.
type ProgressRecord struct {
	Step   int
	Theta0 float64
	Theta1 float64
}

// Config holds optimization parameters.
//
// MaxSteps bounds the step counter, not the number of executed steps: the
// loop stops once the counter exceeds it, so MaxSteps=0 still performs
// exactly one update.
type Config struct {
	MaxSteps int     // Step budget (default in cmd: 10000)
	Eps      float64 // Per-parameter convergence threshold (default in cmd: 1e-6)

	// Progress, if set, is invoked once per step after the update.
	Progress func(ProgressRecord)
}

// Result is the outcome of an optimization run.
type Result struct {
	Theta     Theta
	Steps     int  // Number of executed steps
	Converged bool // True when the parameter change dropped to Eps
}

// ComputationError reports a non-finite partial derivative from the gradient
// oracle. It carries the best-known parameters: the state before the step
// that failed.
type ComputationError struct {
	Step  int
	Theta Theta
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("optim: non-finite derivative from gradient oracle at step %d (theta0=%g, theta1=%g)",
		e.Step, e.Theta.Theta0, e.Theta.Theta1)
}

// Descent is the batch gradient-descent optimizer.
//
// Update rule, with n the dataset size and lr its learning rate:
//
//	theta0 -= lr * Σ d(cost)/d(theta0) / (2n)
//	theta1 -= lr * Σ d(cost)/d(theta1) / (2n)
//
// The division by 2n implements batch-mean gradient scaling for the
// squared-error cost (f(x) - y)².
type Descent struct {
	maxSteps int
	eps      float64
	progress func(ProgressRecord)
}

// New creates a Descent optimizer.
func New(cfg Config) (*Descent, error) {
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("optim: max steps must be >= 0, got %d", cfg.MaxSteps)
	}
	if cfg.Eps < 0 {
		return nil, fmt.Errorf("optim: eps must be >= 0, got %g", cfg.Eps)
	}
	return &Descent{
		maxSteps: cfg.MaxSteps,
		eps:      cfg.Eps,
		progress: cfg.Progress,
	}, nil
}

// Optimize runs batch gradient descent from initial until both parameters
// change by at most eps in one step, or the step budget is exhausted.
//
// The oracle is invoked once per sample per step, in dataset order. A
// non-finite partial aborts the run with a ComputationError; the returned
// Result then holds the parameters from before the failed step.
func (d *Descent) Optimize(initial Theta, ds *dataset.Dataset, oracle grad.Oracle) (Result, error) {
	theta := initial
	previous := initial
	step := 0

	n := float64(ds.Len())
	lr := ds.LearningRate()

	var partials [4]float64
	for {
		var sum0, sum1 float64
		for i := 0; i < ds.Len(); i++ {
			s := ds.At(i)

			// Reset the scratch buffer before every call: the oracle
			// contract does not guarantee it overwrites stale slots.
			partials = [4]float64{}
			oracle(theta.Theta0, theta.Theta1, s.X, s.Y, &partials)

			for _, p := range partials {
				if math.IsNaN(p) || math.IsInf(p, 0) {
					return Result{Theta: theta, Steps: step},
						&ComputationError{Step: step, Theta: theta}
				}
			}

			// Only the parameter partials feed the update.
			sum0 += partials[grad.Theta0]
			sum1 += partials[grad.Theta1]
		}

		theta.Theta0 -= lr * sum0 / (2 * n)
		theta.Theta1 -= lr * sum1 / (2 * n)

		if d.progress != nil {
			d.progress(ProgressRecord{Step: step, Theta0: theta.Theta0, Theta1: theta.Theta1})
		}

		// Compare the updated parameters against the pre-step snapshot,
		// then advance the snapshot. The ordering is load-bearing.
		converged := scalar.EqualWithinAbs(previous.Theta0, theta.Theta0, d.eps) &&
			scalar.EqualWithinAbs(previous.Theta1, theta.Theta1, d.eps)
		previous = theta
		step++

		if converged || step > d.maxSteps {
			return Result{Theta: theta, Steps: step, Converged: converged}, nil
		}
	}
}
