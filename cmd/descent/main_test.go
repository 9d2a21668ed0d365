package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/storage"
)

func TestSelectOracle(t *testing.T) {
	for _, name := range []string{"autodiff", "closed", "numeric"} {
		oracle, err := selectOracle(name)
		require.NoError(t, err)
		require.NotNil(t, oracle)

		var out [4]float64
		oracle(0, 0, 1, 3, &out)
		// e = -3: d/dtheta0 = -6.
		assert.InDelta(t, -6.0, out[0], 1e-5, name)
	}

	_, err := selectOracle("symbolic")
	assert.Error(t, err)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		size:       50,
		lr:         1e-2,
		maxSteps:   2000,
		eps:        1e-6,
		seed:       1,
		oracle:     "autodiff",
		datasetOut: filepath.Join(dir, "dataset_gd.dat"),
		fitOut:     filepath.Join(dir, "out_gd.dat"),
		logEvery:   500,
		dbPath:     filepath.Join(dir, "runs.db"),
	}

	require.NoError(t, run(opts))

	for _, path := range []string{opts.datasetOut, opts.fitOut} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), path)
	}

	store := storage.NewStore(opts.dbPath)
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))
	defer store.Close()

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 50, runs[0].Size)
	assert.Greater(t, runs[0].Steps, 0)

	steps, err := store.RunSteps(ctx, runs[0].ID)
	require.NoError(t, err)
	assert.Len(t, steps, runs[0].Steps)
}
