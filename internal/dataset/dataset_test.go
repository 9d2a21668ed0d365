package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/dataset"
)

func TestGenerate_Defaults(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{})
	require.NoError(t, err)

	assert.Equal(t, dataset.DefaultSize, ds.Len())
	assert.Equal(t, dataset.DefaultLearningRate, ds.LearningRate())
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := dataset.Generate(dataset.Config{Size: 50, Seed: 42})
	require.NoError(t, err)
	b, err := dataset.Generate(dataset.Config{Size: 50, Seed: 42})
	require.NoError(t, err)

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.At(i), b.At(i), "sample %d", i)
	}

	c, err := dataset.Generate(dataset.Config{Size: 50, Seed: 43})
	require.NoError(t, err)
	same := true
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != c.At(i) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should produce different datasets")
}

func TestGenerate_GenerativeModel(t *testing.T) {
	ds, err := dataset.Generate(dataset.Config{Size: 500, Seed: 7})
	require.NoError(t, err)

	for i := 0; i < ds.Len(); i++ {
		s := ds.At(i)

		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.Less(t, s.X, dataset.XRange)

		// x is quantized to hundredths of the range step.
		steps := s.X * 100 / dataset.XRange
		assert.InDelta(t, math.Round(steps), steps, 1e-9, "x not quantized: %v", s.X)

		// y = t0 + 2x exactly, with t0 in [9, 10).
		t0 := s.Y - dataset.Slope*s.X
		assert.GreaterOrEqual(t, t0, dataset.InterceptBase-1e-9)
		assert.Less(t, t0, dataset.InterceptBase+1)
	}
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := dataset.Generate(dataset.Config{Size: -1})
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)

	_, err = dataset.Generate(dataset.Config{LearningRate: -0.5})
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)
}

func TestFromPairs(t *testing.T) {
	samples := []dataset.Sample{{X: 0, Y: 9}, {X: 1, Y: 11}}
	ds, err := dataset.FromPairs(samples, 0.1)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 0.1, ds.LearningRate())
	assert.Equal(t, samples[1], ds.At(1))

	// The input slice is copied, not aliased.
	samples[0].Y = 100
	assert.Equal(t, 9.0, ds.At(0).Y)
}

func TestFromPairs_Invalid(t *testing.T) {
	_, err := dataset.FromPairs(nil, 0.1)
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)

	_, err = dataset.FromPairs([]dataset.Sample{{X: 1, Y: 2}}, 0)
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)
}

func TestXsYs(t *testing.T) {
	ds, err := dataset.FromPairs([]dataset.Sample{{X: 0, Y: 9}, {X: 3, Y: 15}}, 0.1)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 3}, ds.Xs())
	assert.Equal(t, []float64{9, 15}, ds.Ys())

	// Returned slices are copies.
	ds.Xs()[0] = 42
	assert.Equal(t, 0.0, ds.Xs()[0])
}
