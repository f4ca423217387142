// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// figure size
var (
	FigWidth  = 8 * vg.Inch
	FigHeight = 6 * vg.Inch
)

// PlaneAxes returns the indices of the coordinates spanning a plane; e.g. "xz" => {0, 2}
func PlaneAxes(plane string) (axes [2]int, err error) {
	if len(plane) != 2 {
		return axes, chk.Err("plane must be one of xy, xz, yz, yx, zx or zy. %q is invalid", plane)
	}
	for i, c := range plane {
		switch c {
		case 'x':
			axes[i] = 0
		case 'y':
			axes[i] = 1
		case 'z':
			axes[i] = 2
		default:
			return axes, chk.Err("invalid axis %q in plane %q", c, plane)
		}
	}
	if axes[0] == axes[1] {
		return axes, chk.Err("plane %q must have two distinct axes", plane)
	}
	return
}

// StructurePlot draws the undeformed (dashed) and deformed (solid) structure projected onto a plane
//
//	plane -- e.g. "xy" or "xz"
//	scale -- factor multiplying translations; use a negative value for automatic scaling
//	title -- plot title
func StructurePlot(res *Results, plane string, scale float64, title string) (p *plot.Plot, err error) {

	// axes and scale
	axes, err := PlaneAxes(plane)
	if err != nil {
		return
	}
	if scale < 0 {
		scale = res.AutoScale(0.1)
	}

	// new plot
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = plane[0:1]
	p.Y.Label.Text = plane[1:2]

	// elements
	for _, e := range res.Model.Elements() {
		n1, n2 := e.Ends()
		undeformed, err := plotter.NewLine(plotter.XYs{
			{X: n1.X[axes[0]], Y: n1.X[axes[1]]},
			{X: n2.X[axes[0]], Y: n2.X[axes[1]]},
		})
		if err != nil {
			return nil, err
		}
		undeformedStyle(undeformed)
		p.Add(undeformed)

		a, b := res.Deformed(n1, scale), res.Deformed(n2, scale)
		deformed, err := plotter.NewLine(plotter.XYs{
			{X: a[axes[0]], Y: a[axes[1]]},
			{X: b[axes[0]], Y: b[axes[1]]},
		})
		if err != nil {
			return nil, err
		}
		deformedStyle(deformed)
		p.Add(deformed)
	}

	// nodes and their ids
	if len(res.Nodes) > 0 {
		pts := make(plotter.XYs, len(res.Nodes))
		ids := make([]string, len(res.Nodes))
		for i, nod := range res.Nodes {
			x := res.Deformed(nod, scale)
			pts[i] = plotter.XY{X: x[axes[0]], Y: x[axes[1]]}
			ids[i] = strconv.Itoa(nod.Id)
		}
		nodes, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		nodeStyle(nodes)
		p.Add(nodes)
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: ids})
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	return
}

// SeriesPlot draws the values of one DOF along the nodes
func SeriesPlot(res *Results, dof int, title string) (p *plot.Plot, err error) {
	X, Y := res.Series(dof)
	pts := make(plotter.XYs, len(X))
	for i := range X {
		pts[i] = plotter.XY{X: X[i], Y: Y[i]}
	}
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = GetLabel("dist", "")
	p.Y.Label.Text = GetLabel(DofKeys[dof], "")
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	deformedStyle(line)
	p.Add(line)
	return
}

// Save saves plot to a file; the format is given by the extension (.png, .svg or .pdf).
// Files without a known extension are saved as PNG.
func Save(p *plot.Plot, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	return p.Save(FigWidth, FigHeight, filename)
}
