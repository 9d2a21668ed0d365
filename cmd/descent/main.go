// Package main provides the descent CLI: it generates the synthetic dataset,
// fits the affine model by batch gradient descent, and writes the plotting
// artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/descent-ml/descent/internal/artifact"
	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/grad"
	"github.com/descent-ml/descent/internal/metrics"
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/storage"
)

type options struct {
	size     int
	lr       float64
	maxSteps int
	eps      float64
	seed     int64
	oracle   string

	datasetOut string
	fitOut     string
	plotOut    string
	logEvery   int

	dbPath   string
	s3Bucket string
	s3Region string
}

func main() {
	var opts options
	flag.IntVar(&opts.size, "size", dataset.DefaultSize, "number of samples to generate")
	flag.Float64Var(&opts.lr, "lr", dataset.DefaultLearningRate, "learning rate")
	flag.IntVar(&opts.maxSteps, "max-steps", 10000, "optimization step budget")
	flag.Float64Var(&opts.eps, "eps", 1e-6, "per-parameter convergence threshold")
	flag.Int64Var(&opts.seed, "seed", 1, "dataset generator seed")
	flag.StringVar(&opts.oracle, "oracle", "autodiff", "gradient oracle: autodiff, closed or numeric")
	flag.StringVar(&opts.datasetOut, "dataset-out", "dataset_gd.dat", "dataset artifact path")
	flag.StringVar(&opts.fitOut, "fit-out", "out_gd.dat", "fitted-line artifact path")
	flag.StringVar(&opts.plotOut, "plot-out", "", "optional plot image path (format from extension)")
	flag.IntVar(&opts.logEvery, "log-every", 1, "log progress every N steps")
	flag.StringVar(&opts.dbPath, "db", "", "optional sqlite run-history path")
	flag.StringVar(&opts.s3Bucket, "s3-bucket", "", "optional S3 bucket for the rendered plot")
	flag.StringVar(&opts.s3Region, "s3-region", "us-east-1", "AWS region for -s3-bucket")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	if opts.logEvery <= 0 {
		opts.logEvery = 1
	}

	oracle, err := selectOracle(opts.oracle)
	if err != nil {
		return err
	}

	ds, err := dataset.Generate(dataset.Config{
		Size:         opts.size,
		LearningRate: opts.lr,
		Seed:         opts.seed,
	})
	if err != nil {
		return err
	}
	if err := artifact.WriteSamplesFile(opts.datasetOut, ds); err != nil {
		return err
	}
	log.Printf("dataset samples=%s lr=%g seed=%d -> %s",
		humanize.Comma(int64(ds.Len())), ds.LearningRate(), opts.seed, opts.datasetOut)

	var progress []optim.ProgressRecord
	d, err := optim.New(optim.Config{
		MaxSteps: opts.maxSteps,
		Eps:      opts.eps,
		Progress: func(r optim.ProgressRecord) {
			progress = append(progress, r)
			if r.Step%opts.logEvery == 0 {
				log.Printf("step=%d theta0=%g theta1=%g", r.Step, r.Theta0, r.Theta1)
			}
		},
	})
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := d.Optimize(optim.Theta{}, ds, oracle)
	if err != nil {
		return fmt.Errorf("optimization aborted after %d steps: %w", res.Steps, err)
	}

	fmt.Printf("Result: (%g, %g)\n", res.Theta.Theta0, res.Theta.Theta1)
	log.Printf("finished steps=%d converged=%t elapsed=%s", res.Steps, res.Converged, time.Since(start).Round(time.Millisecond))

	report := metrics.Evaluate(ds, res.Theta.Theta0, res.Theta.Theta1)
	log.Printf("fit cost=%g r2=%g least-squares=(%g, %g)",
		report.Cost, report.RSquared, report.BaselineAlpha, report.BaselineBeta)

	if err := artifact.WriteFitFile(opts.fitOut, ds, res.Theta.Theta0, res.Theta.Theta1); err != nil {
		return err
	}

	if opts.plotOut != "" {
		if err := artifact.RenderPlot(opts.plotOut, ds, res.Theta.Theta0, res.Theta.Theta1); err != nil {
			return err
		}
		log.Printf("plot -> %s", opts.plotOut)

		if opts.s3Bucket != "" {
			link, err := artifact.UploadPlot(opts.plotOut, opts.s3Bucket, opts.s3Region)
			if err != nil {
				return err
			}
			log.Printf("plot uploaded: %s", link)
		}
	}

	if opts.dbPath != "" {
		if err := saveRun(opts, ds, res, progress); err != nil {
			return err
		}
	}

	return nil
}

func selectOracle(name string) (grad.Oracle, error) {
	switch name {
	case "autodiff":
		return grad.Autodiff(), nil
	case "closed":
		return grad.ClosedForm(), nil
	case "numeric":
		return grad.Numeric(1e-6), nil
	default:
		return nil, fmt.Errorf("unknown oracle %q (want autodiff, closed or numeric)", name)
	}
}

func saveRun(opts options, ds *dataset.Dataset, res optim.Result, progress []optim.ProgressRecord) error {
	store := storage.NewStore(opts.dbPath)
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer store.Close()

	run := storage.Run{
		ID:           storage.NewRunID(),
		CreatedAt:    time.Now().UTC(),
		Size:         ds.Len(),
		LearningRate: ds.LearningRate(),
		MaxSteps:     opts.maxSteps,
		Eps:          opts.eps,
		Theta0:       res.Theta.Theta0,
		Theta1:       res.Theta.Theta1,
		Steps:        res.Steps,
		Converged:    res.Converged,
	}
	if err := store.SaveRun(ctx, run, progress); err != nil {
		return err
	}
	log.Printf("run %s -> %s", run.ID, opts.dbPath)
	return nil
}
