// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/fem"
	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// cantilever returns a model with two elements along x, clamped at node 0
func cantilever(tst *testing.T) *fem.Model {
	m, err := inp.NewMaterialG(210e9, 80e9, 0)
	if err != nil {
		tst.Fatalf("material failed:\n%v", err)
	}
	s := &inp.Section{A: 1e-3, Iy: 1e-5, Iz: 1e-5, J: 1e-6, Cw: 1e-8}
	o := fem.NewModel()
	for i := 0; i < 3; i++ {
		o.AddNode(ele.NewNode(i, float64(i), 0, 0))
	}
	for i := 0; i < 2; i++ {
		if _, err = o.AddBeam(i, i+1, m, s); err != nil {
			tst.Fatalf("AddBeam failed:\n%v", err)
		}
	}
	for i := 0; i < ele.Ndof; i++ {
		o.AddConstraint(0, i)
	}
	return o
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. nodal results and series")

	o := cantilever(tst)
	P := 1000.0
	o.AddLoad(2, [7]float64{0, -P})
	sol := fem.NewStaticSolver(o)
	u, err := sol.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// wrong size
	_, err = Start(o, u[:5])
	if err == nil {
		tst.Errorf("Start with wrong vector size should fail\n")
	}

	res, err := Start(o, u)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}

	// tip
	δ := P * 8 / (3 * 210e9 * 1e-5)
	tip, err := res.Nodal(2)
	if err != nil {
		tst.Errorf("Nodal failed:\n%v", err)
		return
	}
	io.Pforan("tip = %v\n", tip)
	chk.Float64(tst, "v(tip)", 1e-12, tip[1], -δ)
	if _, err = res.Nodal(7); err == nil {
		tst.Errorf("Nodal of unknown node should fail\n")
	}

	// series of v
	X, Y := res.Series(1)
	chk.Array(tst, "X", 1e-15, X, []float64{0, 1, 2})
	chk.Float64(tst, "v(0)", 1e-17, Y[0], 0)
	chk.Float64(tst, "v(2)", 1e-12, Y[2], -δ)

	// geometry
	x := res.Deformed(o.Node(2), 10)
	chk.Array(tst, "x(tip)", 1e-12, x[:], []float64{2, -10 * δ, 0})
	chk.Float64(tst, "max translation", 1e-12, res.MaxTranslation(), δ)
	chk.Float64(tst, "size", 1e-15, res.Size(), 2)
	chk.Float64(tst, "auto scale", 1e-9, res.AutoScale(0.1)*δ, 0.2)

	// DOF keys
	dof, err := DofIndex("w")
	if err != nil {
		tst.Errorf("DofIndex failed:\n%v", err)
		return
	}
	chk.Int(tst, "dof(w)", dof, 2)
	if _, err = DofIndex("q"); err == nil {
		tst.Errorf("DofIndex of unknown key should fail\n")
	}
	chk.String(tst, GetLabel("w", "m"), "w [m]")
	chk.String(tst, GetLabel("wp", ""), "θx' (warping)")
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. axial force diagram")

	o := cantilever(tst)
	o.AddLoad(2, [7]float64{100})
	sol := fem.NewStaticSolver(o)
	u, err := sol.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	forces, err := sol.ElementForces(u)
	if err != nil {
		tst.Errorf("ElementForces failed:\n%v", err)
		return
	}
	X, Y := BeamDiagram(o, forces, 0)
	chk.Array(tst, "X", 1e-15, X, []float64{0, 1, 1, 2})
	chk.Array(tst, "N", 1e-7, Y, []float64{100, 100, 100, 100})

	// force keys
	comp, err := ForceIndex("Mz")
	if err != nil {
		tst.Errorf("ForceIndex failed:\n%v", err)
		return
	}
	chk.Int(tst, "comp(Mz)", comp, 5)
	if _, err = ForceIndex("M"); err == nil {
		tst.Errorf("ForceIndex of unknown key should fail\n")
	}
	chart := AsciiDiagram(o, forces, 0)
	io.Pf("%s\n", chart)
	if !strings.Contains(chart, "N (axial force) along elements") {
		tst.Errorf("chart caption is missing:\n%s\n", chart)
	}

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("BeamDiagram with wrong number of force vectors should panic\n")
		}
	}()
	BeamDiagram(o, forces[:1], 0)
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. full mode shape")

	o := cantilever(tst)
	res := &fem.BucklingResult{
		Values:   []float64{1},
		Vectors:  [][]float64{{0.6, 0.8}},
		FreeDofs: []int{8, 15},
		State:    fem.Result,
	}
	U, err := FullModeShape(o, res, 0)
	if err != nil {
		tst.Errorf("FullModeShape failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(U)", len(U), 21)
	for i, v := range U {
		switch i {
		case 8:
			chk.Float64(tst, "U[8]", 1e-17, v, 0.6)
		case 15:
			chk.Float64(tst, "U[15]", 1e-17, v, 0.8)
		default:
			chk.Float64(tst, io.Sf("U[%d]", i), 1e-17, v, 0)
		}
	}

	mode, err := StartMode(o, res, 0)
	if err != nil {
		tst.Errorf("StartMode failed:\n%v", err)
		return
	}
	_, Y := mode.Series(1)
	chk.Array(tst, "v", 1e-17, Y, []float64{0, 0.6, 0.8})

	// errors
	if _, err = FullModeShape(o, res, 1); err == nil {
		tst.Errorf("FullModeShape with unavailable mode should fail\n")
	}
	res.FreeDofs = []int{8}
	if _, err = FullModeShape(o, res, 0); err == nil {
		tst.Errorf("FullModeShape with inconsistent sizes should fail\n")
	}
}

func Test_out04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out04. plots")

	axes, err := PlaneAxes("xz")
	if err != nil {
		tst.Errorf("PlaneAxes failed:\n%v", err)
		return
	}
	chk.Ints(tst, "xz", axes[:], []int{0, 2})
	for _, plane := range []string{"x", "xx", "ab", "xyz"} {
		if _, err = PlaneAxes(plane); err == nil {
			tst.Errorf("plane %q should be invalid\n", plane)
		}
	}

	o := cantilever(tst)
	o.AddLoad(2, [7]float64{0, -1000, 0, 0, 0, 0, 0})
	u, err := fem.NewStaticSolver(o).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	res, err := Start(o, u)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}

	p, err := StructurePlot(res, "xy", -1, "cantilever")
	if err != nil {
		tst.Errorf("StructurePlot failed:\n%v", err)
		return
	}
	dir := tst.TempDir()
	fn := filepath.Join(dir, "cantilever.png")
	err = Save(p, fn)
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	if _, err = os.Stat(fn); err != nil {
		tst.Errorf("figure file is missing:\n%v", err)
	}

	p, err = SeriesPlot(res, 1, "deflection")
	if err != nil {
		tst.Errorf("SeriesPlot failed:\n%v", err)
		return
	}
	err = Save(p, filepath.Join(dir, "sub", "deflection"))
	if err != nil {
		tst.Errorf("Save failed:\n%v", err)
		return
	}
	if _, err = os.Stat(filepath.Join(dir, "sub", "deflection.png")); err != nil {
		tst.Errorf("figure file is missing:\n%v", err)
	}

	// ascii
	chart := AsciiSeries(res, 1)
	io.Pf("%s\n", chart)
	if !strings.Contains(chart, "along nodes") {
		tst.Errorf("caption is missing:\n%s\n", chart)
	}
	chk.String(tst, AsciiChart(nil, "empty"), "")
}

func Test_out05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out05. distances and translations in 3D")

	m, err := inp.NewMaterialG(210e9, 80e9, 0)
	if err != nil {
		tst.Errorf("material failed:\n%v", err)
		return
	}
	s := &inp.Section{A: 1e-3, Iy: 1e-5, Iz: 1e-5, J: 1e-6, Cw: 1e-8}
	o := fem.NewModel()
	o.AddNode(ele.NewNode(0, 0, 0, 0))
	o.AddNode(ele.NewNode(1, 1, 2, 2))
	o.AddNode(ele.NewNode(2, 1, 2, 5))
	for i := 0; i < 2; i++ {
		if _, err = o.AddBeam(i, i+1, m, s); err != nil {
			tst.Errorf("AddBeam failed:\n%v", err)
			return
		}
	}
	U := make([]float64, 21)
	U[7], U[8], U[9] = 2, -4, 4
	U[15] = 3
	res, err := Start(o, U)
	if err != nil {
		tst.Errorf("Start failed:\n%v", err)
		return
	}
	X, Y := res.Series(0)
	chk.Array(tst, "X", 1e-14, X, []float64{0, 3, 6})
	chk.Array(tst, "u", 1e-15, Y, []float64{0, 2, 0})
	chk.Float64(tst, "max translation", 1e-14, res.MaxTranslation(), 6)
	chk.Float64(tst, "size", 1e-15, res.Size(), 5)
}
