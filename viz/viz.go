// Copyright 2025 The WK12 Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders the demos' plots as PNG files: function curves with
// optimization trajectories, per-iteration loss curves, and contour plots
// of two-variable surfaces.
package viz

import "github.com/Machine-Learning-S25/WK12/internal/viz"

// CurveWithPath plots f over [xmin, xmax] with the visited points overlaid
// as a connected path, and writes the result to filename.
func CurveWithPath(filename, title string, f func(float64) float64, xmin, xmax float64, samples int, visited []float64) error {
	return viz.CurveWithPath(filename, title, f, xmin, xmax, samples, visited)
}

// LossCurve plots values against their iteration index and writes the
// result to filename.
func LossCurve(filename, title string, values []float64) error {
	return viz.LossCurve(filename, title, values)
}

// SurfaceWithPath renders a filled contour plot of f over the given
// rectangle with the optimization path overlaid, and writes the result to
// filename. Each path entry is an {x, y} point.
func SurfaceWithPath(filename, title string, f func(x, y float64) float64, xmin, xmax, ymin, ymax float64, path [][]float64) error {
	return viz.SurfaceWithPath(filename, title, f, xmin, xmax, ymin, ymax, path)
}
