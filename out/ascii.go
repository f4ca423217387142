// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/vlasov/fem"

	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// AsciiHeight is the number of rows of ASCII charts
var AsciiHeight = 12

// AsciiChart draws values as an ASCII line chart with a caption
func AsciiChart(Y []float64, caption string) string {
	if len(Y) == 0 {
		return ""
	}
	return asciigraph.Plot(Y,
		asciigraph.Height(AsciiHeight),
		asciigraph.Precision(4),
		asciigraph.Caption(caption),
	)
}

// AsciiSeries draws the values of one DOF along the nodes as an ASCII chart
func AsciiSeries(res *Results, dof int) string {
	_, Y := res.Series(dof)
	return AsciiChart(Y, io.Sf("%s along nodes (ascending id)", GetLabel(DofKeys[dof], "")))
}

// AsciiDiagram draws one internal force component at both ends of all elements as an ASCII chart
func AsciiDiagram(m *fem.Model, forces [][]float64, comp int) string {
	_, Y := BeamDiagram(m, forces, comp)
	return AsciiChart(Y, io.Sf("%s along elements (insertion order)", GetLabel(ForceKeys[comp], "")))
}
