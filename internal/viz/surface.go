package viz

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// funcGrid samples f on a uniform gridSize×gridSize grid, implementing
// plotter.GridXYZ for heat maps and contours.
type funcGrid struct {
	f          func(x, y float64) float64
	xmin, xmax float64
	ymin, ymax float64
	gridSize   int
}

func (g funcGrid) Dims() (c, r int) { return g.gridSize, g.gridSize }

func (g funcGrid) X(c int) float64 {
	return g.xmin + (g.xmax-g.xmin)*float64(c)/float64(g.gridSize-1)
}

func (g funcGrid) Y(r int) float64 {
	return g.ymin + (g.ymax-g.ymin)*float64(r)/float64(g.gridSize-1)
}

func (g funcGrid) Z(c, r int) float64 { return g.f(g.X(c), g.Y(r)) }

// SurfaceWithPath renders z = f(x, y) over the given ranges as a heat map
// with contour lines, overlays the optimization path (a sequence of [x y]
// points), and writes the result to filename as a PNG.
func SurfaceWithPath(filename, title string, f func(x, y float64) float64, xmin, xmax, ymin, ymax float64, path [][]float64) error {
	if xmax <= xmin || ymax <= ymin {
		return fmt.Errorf("viz: empty surface range [%g, %g]×[%g, %g]", xmin, xmax, ymin, ymax)
	}

	grid := funcGrid{f: f, xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax, gridSize: 64}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	p.Add(plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255)))
	p.Add(plotter.NewContour(grid, contourLevels(grid, 8), moreland.BlackBody().Palette(8)))

	if len(path) > 0 {
		xys := make(plotter.XYs, len(path))
		for i, pt := range path {
			if len(pt) != 2 {
				return fmt.Errorf("viz: path point %d has %d coordinates, want 2", i, len(pt))
			}
			xys[i].X = pt[0]
			xys[i].Y = pt[1]
		}

		steps, points, err := pathPlotters(xys)
		if err != nil {
			return err
		}
		p.Add(steps, points)
		p.Legend.Add("iterates", points)
	}

	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("viz: save %s: %w", filename, err)
	}
	return nil
}

// contourLevels picks n evenly spaced levels strictly inside the grid's
// value range.
func contourLevels(grid funcGrid, n int) []float64 {
	zmin := math.Inf(1)
	zmax := math.Inf(-1)
	cols, rows := grid.Dims()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			z := grid.Z(c, r)
			zmin = math.Min(zmin, z)
			zmax = math.Max(zmax, z)
		}
	}

	levels := make([]float64, n)
	for i := range levels {
		levels[i] = zmin + (zmax-zmin)*float64(i+1)/float64(n+1)
	}
	return levels
}
