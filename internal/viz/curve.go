// Package viz renders the demos' plots as PNG files: function curves with
// the points gradient descent visited, per-iteration loss curves, and
// two-variable surfaces with optimization paths. File output is the
// compiled-program equivalent of the notebook's inline figures.
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	curveColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	pathColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// CurveWithPath plots y = f(x) over [xmin, xmax] and overlays the visited
// points, in visit order, as a marked path. The result is written to
// filename as a PNG.
func CurveWithPath(filename, title string, f func(float64) float64, xmin, xmax float64, samples int, visited []float64) error {
	if samples < 2 {
		return fmt.Errorf("viz: need at least 2 samples, got %d", samples)
	}
	if xmax <= xmin {
		return fmt.Errorf("viz: empty x range [%g, %g]", xmin, xmax)
	}

	curve := make(plotter.XYs, samples)
	for i := range curve {
		x := xmin + (xmax-xmin)*float64(i)/float64(samples-1)
		curve[i].X = x
		curve[i].Y = f(x)
	}

	path := make(plotter.XYs, len(visited))
	for i, x := range visited {
		path[i].X = x
		path[i].Y = f(x)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(curve)
	if err != nil {
		return fmt.Errorf("viz: curve line: %w", err)
	}
	line.Color = curveColor
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("f(x)", line)

	if len(path) > 0 {
		steps, points, err := pathPlotters(path)
		if err != nil {
			return err
		}
		p.Add(steps, points)
		p.Legend.Add("iterates", points)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("viz: save %s: %w", filename, err)
	}
	return nil
}

// LossCurve plots per-iteration objective values against the iteration index
// and writes the result to filename as a PNG.
func LossCurve(filename, title string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("viz: no values to plot")
	}

	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "loss"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("viz: loss line: %w", err)
	}
	line.Color = pathColor
	line.Width = vg.Points(1.5)
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("viz: save %s: %w", filename, err)
	}
	return nil
}

// pathPlotters builds the line and marker plotters for a visited-point path.
func pathPlotters(path plotter.XYs) (*plotter.Line, *plotter.Scatter, error) {
	steps, err := plotter.NewLine(path)
	if err != nil {
		return nil, nil, fmt.Errorf("viz: path line: %w", err)
	}
	steps.Color = pathColor
	steps.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}

	points, err := plotter.NewScatter(path)
	if err != nil {
		return nil, nil, fmt.Errorf("viz: path points: %w", err)
	}
	points.GlyphStyle.Color = pathColor
	points.GlyphStyle.Radius = vg.Points(2)

	return steps, points, nil
}
