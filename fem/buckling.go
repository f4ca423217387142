// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MinLoadFactor is the smallest critical load factor regarded as physical
const MinLoadFactor = 1e-6

// BucklingState indicates how far a buckling analysis went
type BucklingState int

// buckling analysis states
const (
	Init              BucklingState = iota // nothing computed yet
	StaticallySolved                       // reference static solution and axial forces are available
	MatricesAssembled                      // K and Kg are available
	EigenSolved                            // eigenvalue problem has been solved
	Result                                 // at least one critical load factor was found
	NoValidModes                           // no positive, real and finite load factor exists for the load pattern
)

var bucklingStateNames = []string{"Init", "StaticallySolved", "MatricesAssembled", "EigenSolved", "Result", "NoValidModes"}

// String returns the name of the state
func (o BucklingState) String() string {
	if o < 0 || int(o) >= len(bucklingStateNames) {
		return io.Sf("BucklingState(%d)", int(o))
	}
	return bucklingStateNames[o]
}

// BucklingResult holds critical load factors and buckling modes
type BucklingResult struct {
	Values   []float64     // [nmodes] critical load factors in ascending order
	Vectors  [][]float64   // [nmodes][nfree] mode shapes restricted to free DOFs; unit length
	FreeDofs []int         // [nfree] global indices of free DOFs
	State    BucklingState // Result or NoValidModes
}

// BucklingSolver solves the linear buckling problem
//
//	(K + λ・Kg)・v = 0   =>   K_ff・v = λ・(-Kg_ff)・v
//
//	where Kg is assembled with the axial forces caused by the loads applied to the model
//	(reference load pattern) and λ is the load factor
type BucklingSolver struct {
	Model   *Model        // structural model
	Verbose bool          // show messages
	State   BucklingState // current state
	U       []float64     // displacements of the reference static solution
	Axial   []float64     // [nele] axial forces of the reference static solution
}

// NewBucklingSolver returns a new buckling solver
func NewBucklingSolver(m *Model) *BucklingSolver {
	return &BucklingSolver{Model: m, Verbose: m.Verbose}
}

// Solve computes the nmodes smallest positive critical load factors and their modes.
// If no valid mode exists, an empty result with State == NoValidModes is returned without error.
func (o *BucklingSolver) Solve(nmodes int) (res *BucklingResult, err error) {

	// check
	if nmodes < 1 {
		return nil, chk.Err("number of modes must be at least 1; %d given", nmodes)
	}
	o.State = Init

	// reference static solution
	m := o.Model
	static := NewStaticSolver(m)
	static.Verbose = o.Verbose
	o.U, err = static.Solve()
	if err != nil {
		return
	}
	forces, err := static.ElementForces(o.U)
	if err != nil {
		return
	}
	o.Axial = AxialForces(forces)
	o.State = StaticallySolved

	// matrices
	K := m.AssembleStiffness()
	Kg, err := m.AssembleGeometricStiffness(o.Axial)
	if err != nil {
		return
	}
	free := m.FreeDofs()
	o.State = MatricesAssembled

	// results
	res = &BucklingResult{Values: []float64{}, Vectors: [][]float64{}, FreeDofs: free}
	if len(free) == 0 {
		o.State = NoValidModes
		res.State = o.State
		return
	}

	// eigenvalues
	if o.Verbose {
		io.Pf("> buckling: generalised eigenvalue problem with %d free DOFs\n", len(free))
	}
	pairs, err := SolvePencil(subSym(K, free, 1), subSym(Kg, free, -1))
	if err != nil {
		return nil, err
	}
	o.State = EigenSolved

	// filter and sort
	valid := make([]EigenPair, 0, len(pairs))
	for _, p := range pairs {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) || p.Value <= MinLoadFactor {
			continue
		}
		valid = append(valid, p)
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Value < valid[j].Value })
	if len(valid) > nmodes {
		valid = valid[:nmodes]
	}

	// no stability limit for this load pattern
	if len(valid) == 0 {
		if o.Verbose {
			io.Pf("> buckling: no valid modes\n")
		}
		o.State = NoValidModes
		res.State = o.State
		return
	}

	// modes
	for _, p := range valid {
		NormaliseMode(p.Vector)
		res.Values = append(res.Values, p.Value)
		res.Vectors = append(res.Vectors, p.Vector)
	}
	if o.Verbose {
		io.Pf("> buckling: λ = %v\n", res.Values)
	}
	o.State = Result
	res.State = o.State
	return
}
