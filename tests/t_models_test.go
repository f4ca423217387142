// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"math"
	"testing"

	"github.com/cpmech/vlasov/ana"
	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/fem"
	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_torsion01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("torsion01. cantilever under end torque. warping free")

	CompareResults(tst, "torsion_free", chk.Verbose)
}

func Test_torsion02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("torsion02. cantilever under end torque. warping restrained")

	CompareResults(tst, "torsion_restrained", chk.Verbose)

	// restrained twist is smaller than free twist; both match the closed-form solutions
	d, err := inp.ReadModel("data/torsion_restrained.json")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	m, err := fem.NewModelFromData(d)
	if err != nil {
		tst.Errorf("NewModelFromData failed:\n%v", err)
		return
	}
	u, err := fem.NewStaticSolver(m).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	var sol ana.PrismaticBeam
	sol.Init(d.Mats["steel"], d.Secs["ibeam"], 2)
	for _, nod := range m.Nodes() {
		θ := u[nod.Dofs[3]]
		θana := sol.TwistRestrainedAt(1000, nod.X[0])
		io.Pforan("x = %.2f  θ = %.6e  θana = %.6e\n", nod.X[0], θ, θana)
		chk.Float64(tst, io.Sf("θ(x=%g)", nod.X[0]), 2e-4, θ, θana)
	}
	tip := m.Node(4).Dofs
	if !(u[tip[3]] < sol.TwistFree(1000)) {
		tst.Errorf("restrained warping should reduce the twist\n")
	}

	// no coupling between torsion and the other DOFs
	for _, nod := range m.Nodes() {
		for _, i := range []int{0, 1, 2, 4, 5} {
			chk.Float64(tst, io.Sf("node %d: dof %d", nod.Id, i), 1e-15, u[nod.Dofs[i]], 0)
		}
	}
}

func Test_euler01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("euler01. pinned-pinned column. four elements")

	CompareResults(tst, "euler_column", chk.Verbose)

	// mode shape: half sine wave in w with largest deflection at mid-span
	m, err := LoadModel("euler_column", chk.Verbose)
	if err != nil {
		tst.Errorf("LoadModel failed:\n%v", err)
		return
	}
	res, err := fem.NewBucklingSolver(m).Solve(2)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	io.Pforan("λ = %v\n", res.Values)
	chk.Int(tst, "nmodes", len(res.Values), 2)
	if !(res.Values[1] > res.Values[0]) {
		tst.Errorf("load factors must be sorted in ascending order: %v\n", res.Values)
	}

	// second mode: two half waves, Pcr = 4π²EI/L²
	var sol ana.PrismaticBeam
	mat, _ := inp.NewMaterialG(210e9, 80e9, 0)
	sol.Init(mat, &inp.Section{A: 1e-3, Iy: 1e-6, Iz: 2e-5, J: 5e-7, Cw: 1e-8}, 4)
	chk.Float64(tst, "λ2/(4・Pcr)", 0.03, res.Values[1]/(4*sol.EulerLoad()), 1)

	w := make([]float64, 5)
	for i, eq := range res.FreeDofs {
		for k, nod := range m.Nodes() {
			if nod.Dofs[2] == eq {
				w[k] = res.Vectors[0][i]
			}
		}
	}
	io.Pforan("w = %v\n", w)
	for k := 0; k < 5; k++ {
		if math.Abs(w[k]) > math.Abs(w[2])+1e-12 {
			tst.Errorf("largest deflection of first mode must be at mid-span: w = %v\n", w)
		}
	}
	chk.Float64(tst, "w(0)", 1e-17, w[0], 0)
	chk.Float64(tst, "w(L)", 1e-17, w[4], 0)
	chk.Float64(tst, "symmetry", 1e-8, w[1]-w[3], 0)
}

func Test_euler02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("euler02. pinned-pinned column. one element")

	mat, _ := inp.NewMaterialG(210e9, 80e9, 0)
	sec := &inp.Section{A: 1e-3, Iy: 1e-6, Iz: 2e-5, J: 5e-7, Cw: 1e-8}
	m := fem.NewModel()
	m.AddNode(ele.NewNode(0, 0, 0, 0))
	m.AddNode(ele.NewNode(1, 4, 0, 0))
	if _, err := m.AddBeam(0, 1, mat, sec); err != nil {
		tst.Errorf("AddBeam failed:\n%v", err)
		return
	}
	for _, i := range []int{0, 1, 2, 3} {
		m.AddConstraint(0, i)
	}
	for _, i := range []int{1, 2, 3} {
		m.AddConstraint(1, i)
	}
	m.AddLoad(1, [7]float64{-1})

	res, err := fem.NewBucklingSolver(m).Solve(1)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// a single cubic element gives 12EI/L²
	var sol ana.PrismaticBeam
	sol.Init(mat, sec, 4)
	io.Pforan("λ = %v  12EI/L² = %v  π²EI/L² = %v\n", res.Values, sol.DiscreteEulerLoad(), sol.EulerLoad())
	chk.Int(tst, "nmodes", len(res.Values), 1)
	chk.Float64(tst, "λ/(12EI/L²)", 1e-8, res.Values[0]/sol.DiscreteEulerLoad(), 1)
	if !(res.Values[0] > sol.EulerLoad()) {
		tst.Errorf("discrete critical load must be above the exact one\n")
	}
}

func Test_frame01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("frame01. portal frame with vertical columns")

	m, err := LoadModel("portal_frame", chk.Verbose)
	if err != nil {
		tst.Errorf("LoadModel failed:\n%v", err)
		return
	}
	sol := fem.NewStaticSolver(m)
	u, err := sol.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// global equilibrium of forces
	R := sol.Reactions(u)
	F := m.LoadVector()
	for i, key := range []string{"x", "y", "z"} {
		var sumR, sumF float64
		for _, nod := range m.Nodes() {
			sumR += R[nod.Dofs[i]]
			sumF += F[nod.Dofs[i]]
		}
		io.Pforan("ΣR%s = %v  ΣF%s = %v\n", key, sumR, key, sumF)
		chk.Float64(tst, "ΣR"+key+" + ΣF"+key, 1e-6, sumR+sumF, 0)
	}

	// the horizontal load sways the top to the right; the beam axial shortening is small
	top2, top3 := m.Node(2).Dofs, m.Node(3).Dofs
	if !(u[top2[0]] > 0 && u[top3[0]] > 0) {
		tst.Errorf("top nodes should move in +x: %v, %v\n", u[top2[0]], u[top3[0]])
	}
	chk.Float64(tst, "u2 - u3", 0.02*u[top2[0]], u[top2[0]]-u[top3[0]], 0)

	// columns are compressed by the vertical load
	forces, err := sol.ElementForces(u)
	if err != nil {
		tst.Errorf("ElementForces failed:\n%v", err)
		return
	}
	P := fem.AxialForces(forces)
	io.Pforan("P = %v\n", P)
	if !(P[2] < 0) {
		tst.Errorf("column under the vertical load must be compressed. P = %v\n", P[2])
	}
	chk.Float64(tst, "ΣP(columns)", 1e-6, P[0]+P[2], -5000)

	// parallel assembly
	m.Parallel = true
	up, err := fem.NewStaticSolver(m).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "u parallel", 0, up, u)
}

func Test_zeroloads01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("zeroloads01. model without loads")

	d, err := inp.ReadModel("data/euler_column.json")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	d.Loads = nil
	m, err := fem.NewModelFromData(d)
	if err != nil {
		tst.Errorf("NewModelFromData failed:\n%v", err)
		return
	}
	u, err := fem.NewStaticSolver(m).Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "u", 1e-17, u, make([]float64, m.TotalDofs()))

	res, err := fem.NewBucklingSolver(m).Solve(3)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Int(tst, "nmodes", len(res.Values), 0)
	chk.String(tst, res.State.String(), "NoValidModes")
}
