// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"testing"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// unitBar returns a model with one beam of unit length and unit section constants
func unitBar(tst *testing.T) *Model {
	m, err := inp.NewMaterialNu(1e5, 0.3, 0)
	if err != nil {
		tst.Fatalf("material failed:\n%v", err)
	}
	s := &inp.Section{A: 1, Iy: 1, Iz: 1, J: 1, Cw: 1}
	o := NewModel()
	o.AddNode(ele.NewNode(1, 0, 0, 0))
	o.AddNode(ele.NewNode(2, 1, 0, 0))
	if _, err = o.AddBeam(1, 2, m, s); err != nil {
		tst.Fatalf("AddBeam failed:\n%v", err)
	}
	return o
}

func Test_static01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static01. axial bar")

	o := unitBar(tst)
	for i := 0; i < 7; i++ {
		o.AddConstraint(1, i)
	}
	for i := 1; i < 7; i++ {
		o.AddConstraint(2, i)
	}
	o.AddLoad(2, [7]float64{100})

	sol := NewStaticSolver(o)
	u, err := sol.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("u = %v\n", u)
	chk.Int(tst, "len(u)", len(u), 14)
	chk.Float64(tst, "u2", 1e-15, u[7], 1e-3)
	for i, v := range u {
		if i != 7 {
			chk.Float64(tst, io.Sf("u[%d]", i), 1e-17, v, 0)
		}
	}

	// internal forces: tension
	forces, err := sol.ElementForces(u)
	if err != nil {
		tst.Errorf("ElementForces failed:\n%v", err)
		return
	}
	chk.Int(tst, "nele", len(forces), 1)
	chk.Float64(tst, "N", 1e-9, forces[0][ele.IdxAxial2], 100)
	chk.Float64(tst, "-N", 1e-9, forces[0][0], -100)
	chk.Array(tst, "P", 1e-9, AxialForces(forces), []float64{100})

	// reactions balance the load
	R := sol.Reactions(u)
	chk.Float64(tst, "R(u1)", 1e-9, R[0], -100)
	chk.Float64(tst, "R(u2)", 1e-17, R[7], 0)

	// wrong size
	_, err = sol.ElementForces(u[:3])
	if err == nil {
		tst.Errorf("ElementForces with wrong vector size should fail\n")
	}
}

func Test_static02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static02. special cases")

	// zero loads
	o := unitBar(tst)
	for i := 0; i < 7; i++ {
		o.AddConstraint(1, i)
	}
	u, err := NewStaticSolver(o).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "u(no loads)", 1e-17, u, make([]float64, 14))

	// all DOFs constrained
	for i := 0; i < 7; i++ {
		o.AddConstraint(2, i)
	}
	o.AddLoad(2, [7]float64{1, 1, 1, 1, 1, 1, 1})
	u, err = NewStaticSolver(o).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "u(all fixed)", 1e-17, u, make([]float64, 14))

	// under-constrained: node without elements
	o = unitBar(tst)
	for i := 0; i < 7; i++ {
		o.AddConstraint(1, i)
	}
	o.AddNode(ele.NewNode(3, 0, 1, 0))
	o.AddLoad(2, [7]float64{1})
	_, err = NewStaticSolver(o).Solve()
	if !errors.Is(err, ErrSingularSystem) {
		tst.Errorf("unconstrained model should fail with ErrSingularSystem. err = %v\n", err)
	}

	// empty model
	u, err = NewStaticSolver(NewModel()).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(u)", len(u), 0)
}

func Test_static03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("static03. cantilever with tip loads")

	m, s := steel(tst)
	L, P := 2.0, 1000.0
	o := straightModel(tst, L, 4, m, s)
	for i := 0; i < 7; i++ {
		o.AddConstraint(0, i)
	}
	o.AddLoad(4, [7]float64{0, -P, -P})

	u, err := NewStaticSolver(o).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	tip := o.Node(4).Dofs

	// cubic elements are exact: δ = PL³/(3EI), θ = PL²/(2EI)
	EI := m.E * s.Iz
	δ := P * L * L * L / (3 * EI)
	θ := P * L * L / (2 * EI)
	io.Pforan("v = %v  w = %v  θy = %v  θz = %v\n", u[tip[1]], u[tip[2]], u[tip[4]], u[tip[5]])
	chk.Float64(tst, "v", 1e-12, u[tip[1]], -δ)
	chk.Float64(tst, "w", 1e-12, u[tip[2]], -δ)
	chk.Float64(tst, "θz = v'", 1e-12, u[tip[5]], -θ)
	chk.Float64(tst, "θy = -w'", 1e-12, u[tip[4]], θ)
	chk.Float64(tst, "θx", 1e-15, u[tip[3]], 0)

	// support reactions
	R := NewStaticSolver(o).Reactions(u)
	base := o.Node(0).Dofs
	chk.Float64(tst, "Ry", 1e-6, R[base[1]], P)
	chk.Float64(tst, "Rz", 1e-6, R[base[2]], P)
	chk.Float64(tst, "Mz", 1e-6, R[base[5]], P*L)
	chk.Float64(tst, "My", 1e-6, R[base[4]], -P*L)

	// parallel assembly gives the same displacements
	o.Parallel = true
	up, err := NewStaticSolver(o).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "u parallel", 0, up, u)
}
