package artifact

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/model"
)

// RenderPlot draws the dataset as a scatter with the fitted regression line
// on top and saves it to path. The output format follows the file extension
// (png, svg, pdf, ...).
func RenderPlot(path string, ds *dataset.Dataset, theta0, theta1 float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("f(x) = %.4f + %.4f*x", theta0, theta1)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Legend.Left = true

	pts := make(plotter.XYs, ds.Len())
	for i := range pts {
		s := ds.At(i)
		pts[i].X, pts[i].Y = s.X, s.Y
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("artifact: could not create scatter plot: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CrossGlyph{}
	scatter.Color = color.RGBA{R: 90, G: 180, B: 234, A: 255}
	p.Legend.Add("samples", scatter)
	p.Add(scatter)

	if err := addFitLine(p, scatter, theta0, theta1); err != nil {
		return err
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("artifact: could not save plot %s: %w", path, err)
	}
	return nil
}

// addFitLine draws the hypothesis across the scatter's x range.
func addFitLine(p *plot.Plot, s *plotter.Scatter, theta0, theta1 float64) error {
	min, max, _, _ := s.DataRange()
	line, err := plotter.NewLine(plotter.XYs{
		{X: min, Y: model.Hypothesis(theta0, theta1, min)},
		{X: max, Y: model.Hypothesis(theta0, theta1, max)},
	})
	if err != nil {
		return fmt.Errorf("artifact: could not create regression line: %w", err)
	}
	line.Color = color.RGBA{R: 20, G: 100, B: 240, A: 255}
	p.Legend.Add("fit", line)
	p.Add(line)
	return nil
}
