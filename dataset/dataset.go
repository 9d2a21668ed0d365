// Copyright 2026 Descent ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides synthetic (x, y) sample collections for the
// regression demo.
package dataset

import (
	"github.com/descent-ml/descent/internal/dataset"
)

// Sample is one (x, y) observation.
type Sample = dataset.Sample

// Dataset is an immutable, ordered collection of samples plus a learning rate.
type Dataset = dataset.Dataset

// Config holds generation parameters.
type Config = dataset.Config

// ErrInvalidConfig is returned when a dataset cannot be constructed.
var ErrInvalidConfig = dataset.ErrInvalidConfig

// Generate draws a dataset from the known generative model.
func Generate(cfg Config) (*Dataset, error) {
	return dataset.Generate(cfg)
}

// FromPairs builds a dataset from existing samples.
func FromPairs(samples []Sample, learningRate float64) (*Dataset, error) {
	return dataset.FromPairs(samples, learningRate)
}
