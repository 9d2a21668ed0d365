package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/model"
)

func TestHypothesis(t *testing.T) {
	assert.Equal(t, 9.0, model.Hypothesis(9, 2, 0))
	assert.Equal(t, 15.0, model.Hypothesis(9, 2, 3))
	assert.Equal(t, -1.0, model.Hypothesis(1, -2, 1))
}

func TestCost(t *testing.T) {
	// Exact fit has zero cost.
	assert.Equal(t, 0.0, model.Cost(9, 2, 1, 11))

	// f(0, 0, 2) = 0, y = 3 -> cost = 9.
	assert.Equal(t, 9.0, model.Cost(0, 0, 2, 3))
}

func TestCostExpr_MatchesCost(t *testing.T) {
	points := [][4]float64{
		{0, 0, 0, 0},
		{9, 2, 1.5, 12},
		{-1, 0.5, 2, 3},
		{9.42, 2, 2.97, 15.36},
	}
	for _, p := range points {
		tape := autodiff.NewTape()
		tape.StartRecording()
		args := []*autodiff.Var{
			tape.Var(p[0]), tape.Var(p[1]), tape.Var(p[2]), tape.Var(p[3]),
		}
		out := model.CostExpr(tape, args)
		assert.InDelta(t, model.Cost(p[0], p[1], p[2], p[3]), out.Value(), 1e-12)
	}
}
