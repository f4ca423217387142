// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// colours
var (
	ColorUndeformed = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorDeformed   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	ColorNodes      = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// GetLabel returns the label of a DOF key, with unit if not empty; e.g. "w [m]"
func GetLabel(key, unit string) string {
	var l string
	switch key {
	case "u":
		l = "u (axial)"
	case "v":
		l = "v"
	case "w":
		l = "w"
	case "rx":
		l = "θx (twist)"
	case "ry":
		l = "θy"
	case "rz":
		l = "θz"
	case "wp":
		l = "θx' (warping)"
	case "N":
		l = "N (axial force)"
	case "T":
		l = "T (torque)"
	case "B":
		l = "B (bimoment)"
	case "dist":
		l = "distance"
	default:
		l = key
	}
	if unit != "" {
		l += io.Sf(" [%s]", unit)
	}
	return l
}

// undeformedStyle sets a thin dashed line
func undeformedStyle(l *plotter.Line) {
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = ColorUndeformed
	l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
}

// deformedStyle sets a thick solid line
func deformedStyle(l *plotter.Line) {
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = ColorDeformed
}

// nodeStyle sets circles for nodes
func nodeStyle(s *plotter.Scatter) {
	s.GlyphStyle.Color = ColorNodes
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
}
