// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/cpmech/vlasov/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// StaticSolver solves the linear static problem K・u = F
//
//	The system is partitioned into free (f) and constrained (c) DOFs with u_c = 0:
//
//	    K_ff・u_f = F_f
type StaticSolver struct {
	Model   *Model // structural model
	Verbose bool   // show messages
}

// NewStaticSolver returns a new static solver
func NewStaticSolver(m *Model) *StaticSolver {
	return &StaticSolver{Model: m, Verbose: m.Verbose}
}

// Solve computes the displacements of all DOFs; constrained DOFs are zero.
// The returned vector is ordered by global DOF index.
func (o *StaticSolver) Solve() (u []float64, err error) {

	// assemble
	m := o.Model
	m.GenerateDofMap()
	n := m.TotalDofs()
	K := m.AssembleStiffness()
	F := m.LoadVector()
	free := m.FreeDofs()
	u = make([]float64, n)
	if o.Verbose {
		io.Pf("> static solution: %d DOFs, %d free\n", n, len(free))
	}
	if len(free) == 0 {
		return
	}

	// solve
	Kff := subMatrix(K, free)
	Ff := mat.NewVecDense(len(free), subVector(F, free))
	var uf mat.VecDense
	err = uf.SolveVec(Kff, Ff)
	if err != nil {
		return nil, fmt.Errorf("%w: K_ff with %d free DOFs cannot be solved: %v", ErrSingularSystem, len(free), err)
	}
	for i, I := range free {
		u[I] = uf.AtVec(i)
	}
	return
}

// ElementForces computes the local end forces of all elements (in insertion order)
//
//	u -- [ndof] global displacements from Solve
func (o *StaticSolver) ElementForces(u []float64) (forces [][]float64, err error) {
	m := o.Model
	if len(u) != m.TotalDofs() {
		return nil, chk.Err("displacement vector must have %d components; %d given", m.TotalDofs(), len(u))
	}
	elems := m.Elements()
	forces = make([][]float64, len(elems))
	for k, e := range elems {
		dofs := e.Dofs()
		ue := make([]float64, len(dofs))
		for i, I := range dofs {
			ue[i] = u[I]
		}
		forces[k] = e.LocalForces(ue)
	}
	return
}

// AxialForces returns the axial force of each element (tension > 0) from local end forces
func AxialForces(forces [][]float64) (P []float64) {
	P = make([]float64, len(forces))
	for i, f := range forces {
		P[i] = f[ele.IdxAxial2]
	}
	return
}

// Reactions computes the support reactions R = K・u - F at constrained DOFs; other components are zero
func (o *StaticSolver) Reactions(u []float64) (R []float64) {
	m := o.Model
	n := m.TotalDofs()
	if len(u) != n {
		chk.Panic("displacement vector must have %d components; %d given", n, len(u))
	}
	R = make([]float64, n)
	if n == 0 {
		return
	}
	K := m.AssembleStiffness()
	F := m.LoadVector()
	var Ku mat.VecDense
	Ku.MulVec(K, mat.NewVecDense(n, u))
	for _, I := range m.ConstrainedDofs() {
		R[I] = Ku.AtVec(I) - F[I]
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// subMatrix returns A[idx,idx]
func subMatrix(A mat.Matrix, idx []int) *mat.Dense {
	n := len(idx)
	res := mat.NewDense(n, n, nil)
	for i, I := range idx {
		for j, J := range idx {
			res.Set(i, j, A.At(I, J))
		}
	}
	return res
}

// subSym returns the symmetric A[idx,idx] multiplied by α. Only the upper triangle of A is read.
func subSym(A mat.Matrix, idx []int, α float64) *mat.SymDense {
	n := len(idx)
	res := mat.NewSymDense(n, nil)
	for i, I := range idx {
		for j := i; j < n; j++ {
			J := idx[j]
			res.SetSym(i, j, α*A.At(I, J))
		}
	}
	return res
}

// subVector returns v[idx]
func subVector(v []float64, idx []int) (res []float64) {
	res = make([]float64, len(idx))
	for i, I := range idx {
		res[i] = v[I]
	}
	return
}
