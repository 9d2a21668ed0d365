package grad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/descent-ml/descent/internal/grad"
)

var evalPoints = [][4]float64{
	{0, 0, 0, 9},
	{0, 0, 1.5, 12},
	{9, 2, 3, 15},
	{5, -1, 2.25, 8.5},
	{9.42, 2, 2.97, 15.36},
}

func TestClosedForm_Formulas(t *testing.T) {
	oracle := grad.ClosedForm()

	for _, p := range evalPoints {
		theta0, theta1, x, y := p[0], p[1], p[2], p[3]
		e := theta0 + theta1*x - y

		var out [4]float64
		oracle(theta0, theta1, x, y, &out)

		assert.InDelta(t, 2*e, out[grad.Theta0], 1e-12)
		assert.InDelta(t, 2*e*x, out[grad.Theta1], 1e-12)
		assert.InDelta(t, 2*e*theta1, out[grad.X], 1e-12)
		assert.InDelta(t, -2*e, out[grad.Y], 1e-12)
	}
}

func TestAutodiff_MatchesClosedForm(t *testing.T) {
	closed := grad.ClosedForm()
	auto := grad.Autodiff()

	for _, p := range evalPoints {
		var want, got [4]float64
		closed(p[0], p[1], p[2], p[3], &want)
		auto(p[0], p[1], p[2], p[3], &got)

		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-12, "slot %d at %v", i, p)
		}
	}
}

func TestNumeric_MatchesClosedForm(t *testing.T) {
	closed := grad.ClosedForm()
	numeric := grad.Numeric(1e-6)

	for _, p := range evalPoints {
		var want, got [4]float64
		closed(p[0], p[1], p[2], p[3], &want)
		numeric(p[0], p[1], p[2], p[3], &got)

		for i := range want {
			// 1e-6 relative tolerance, with an absolute floor for
			// partials near zero.
			tol := math.Max(1e-6*math.Abs(want[i]), 1e-6)
			assert.InDelta(t, want[i], got[i], tol, "slot %d at %v", i, p)
		}
	}
}

func TestOracles_FillAllSlots(t *testing.T) {
	oracles := map[string]grad.Oracle{
		"closed":   grad.ClosedForm(),
		"autodiff": grad.Autodiff(),
		"numeric":  grad.Numeric(1e-6),
	}

	for name, oracle := range oracles {
		// Pick a point where no partial is zero.
		out := [4]float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
		oracle(1, 3, 2, 4, &out)
		for i, v := range out {
			assert.False(t, math.IsNaN(v), "%s oracle left slot %d unwritten", name, i)
		}
	}
}
