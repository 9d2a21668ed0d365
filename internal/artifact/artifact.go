// Package artifact writes the external outputs of a fitting run: the
// tab-separated dataset and fitted-line files consumed by external plotting
// tools, an in-process PNG rendering of both, and an optional S3 upload of
// rendered plots.
package artifact

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/model"
)

// WriteSamples writes one tab-separated "x y" pair per line, in generation
// order.
func WriteSamples(w io.Writer, ds *dataset.Dataset) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < ds.Len(); i++ {
		s := ds.At(i)
		if _, err := fmt.Fprintf(bw, "%g\t%g\n", s.X, s.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFit writes one tab-separated "x predicted_y" pair per dataset sample,
// using the fitted parameters, in dataset order.
func WriteFit(w io.Writer, ds *dataset.Dataset, theta0, theta1 float64) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < ds.Len(); i++ {
		x := ds.At(i).X
		if _, err := fmt.Fprintf(bw, "%g\t%g\n", x, model.Hypothesis(theta0, theta1, x)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSamplesFile writes the dataset artifact to path.
func WriteSamplesFile(path string, ds *dataset.Dataset) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteSamples(w, ds)
	})
}

// WriteFitFile writes the fitted-line artifact to path.
func WriteFitFile(path string, ds *dataset.Dataset, theta0, theta1 float64) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteFit(w, ds, theta0, theta1)
	})
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("artifact: close %s: %w", path, err)
	}
	return nil
}
