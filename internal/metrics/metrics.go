// Package metrics summarizes how well fitted parameters explain a dataset.
package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/model"
)

// Report holds fit-quality numbers for one parameter vector against one
// dataset, alongside the ordinary least-squares baseline for comparison.
type Report struct {
	Cost     float64 // Mean squared error of the fitted parameters
	SSE      float64 // Sum of squared errors
	SST      float64 // Total sum of squares around the mean of y
	RSquared float64

	// Ordinary least-squares fit of the same data, y = alpha + beta*x.
	BaselineAlpha float64
	BaselineBeta  float64
}

// Evaluate computes the fit-quality report for theta0, theta1 over ds.
func Evaluate(ds *dataset.Dataset, theta0, theta1 float64) Report {
	xs, ys := ds.Xs(), ds.Ys()

	r := Report{
		SSE: computeSSE(xs, ys, theta0, theta1),
		SST: computeSST(ys),
	}
	r.Cost = r.SSE / float64(len(xs))
	if r.SST > 0 {
		r.RSquared = 1 - r.SSE/r.SST
	} else if r.SSE == 0 {
		// Degenerate dataset with constant y, matched exactly.
		r.RSquared = 1
	}

	r.BaselineAlpha, r.BaselineBeta = stat.LinearRegression(xs, ys, nil, false)
	return r
}

// Sum of squared errors of the hypothesis.
func computeSSE(xs, ys []float64, theta0, theta1 float64) float64 {
	s := 0.0
	for i := range xs {
		d := ys[i] - model.Hypothesis(theta0, theta1, xs[i])
		s += d * d
	}
	return s
}

// Sum of squares of y around its mean.
func computeSST(ys []float64) float64 {
	m := stat.Mean(ys, nil)
	s := 0.0
	for i := range ys {
		d := ys[i] - m
		s += d * d
	}
	return s
}
