// Package dataset provides the synthetic training data for the regression
// demo: fixed-size collections of (x, y) pairs drawn from a known affine
// generative model, immutable once constructed.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/descent-ml/descent/internal/model"
)

// Generative model constants: every sample satisfies y = t0 + Slope*x
// exactly, with t0 re-drawn per sample in [InterceptBase, InterceptBase+1).
const (
	Slope         = 2.0
	InterceptBase = 9.0
	XRange        = 3.0
)

// Default construction parameters.
const (
	DefaultSize         = 1000
	DefaultLearningRate = 1e-2
)

// ErrInvalidConfig is returned when a dataset cannot be constructed from the
// given parameters.
var ErrInvalidConfig = errors.New("dataset: invalid configuration")

// Sample is one (x, y) observation. Immutable once generated.
type Sample struct {
	X float64
	Y float64
}

// Dataset is an ordered, fixed-length sequence of samples plus the learning
// rate the optimizer should apply to it. Created once, never mutated.
type Dataset struct {
	samples      []Sample
	learningRate float64
}

// Config holds generation parameters. Zero-valued fields take the package
// defaults; explicitly negative values are rejected.
type Config struct {
	Size         int     // Number of samples (default: 1000)
	LearningRate float64 // Step scale consumed by the optimizer (default: 1e-2)
	Seed         int64   // Generator seed; same seed, same dataset
}

// Generate draws cfg.Size samples from the generative model:
// x uniform-ish in [0, 3) and the intercept t0 in [9, 10), both quantized to
// two decimal digits, slope fixed at 2, y computed exactly with no further
// noise.
func Generate(cfg Config) (*Dataset, error) {
	// Set defaults
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}
	if cfg.Size < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidConfig, cfg.Size)
	}
	if cfg.LearningRate < 0 {
		return nil, fmt.Errorf("%w: learning rate %g", ErrInvalidConfig, cfg.LearningRate)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	samples := make([]Sample, cfg.Size)
	for i := range samples {
		x := XRange * float64(rng.Intn(100)) / 100
		t0 := InterceptBase + float64(rng.Intn(100))/100
		samples[i] = Sample{X: x, Y: model.Hypothesis(t0, Slope, x)}
	}

	return &Dataset{samples: samples, learningRate: cfg.LearningRate}, nil
}

// FromPairs builds a dataset from existing samples, for tests or external
// data. The samples slice is copied.
func FromPairs(samples []Sample, learningRate float64) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: need at least one sample", ErrInvalidConfig)
	}
	if learningRate <= 0 {
		return nil, fmt.Errorf("%w: learning rate %g", ErrInvalidConfig, learningRate)
	}
	return &Dataset{
		samples:      append([]Sample(nil), samples...),
		learningRate: learningRate,
	}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

// At returns the i-th sample in generation order.
func (d *Dataset) At(i int) Sample {
	return d.samples[i]
}

// LearningRate returns the step scale for this dataset.
func (d *Dataset) LearningRate() float64 {
	return d.learningRate
}

// Xs returns a copy of all x values in generation order.
func (d *Dataset) Xs() []float64 {
	xs := make([]float64, len(d.samples))
	for i, s := range d.samples {
		xs[i] = s.X
	}
	return xs
}

// Ys returns a copy of all y values in generation order.
func (d *Dataset) Ys() []float64 {
	ys := make([]float64, len(d.samples))
	for i, s := range d.samples {
		ys[i] = s.Y
	}
	return ys
}
