// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test complete analyses against reference results
package tests

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/vlasov/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DataDir holds model (.json) and reference (.cmp) files
var DataDir = "data"

// NodalValue holds the reference value of one DOF at one node
type NodalValue struct {
	Node  int     `json:"node"`  // node id
	Dof   int     `json:"dof"`   // local DOF
	Value float64 `json:"value"` // reference value
	Rtol  float64 `json:"rtol"`  // relative tolerance; used if > 0
	Atol  float64 `json:"atol"`  // absolute tolerance; used if Rtol == 0
}

// Reference holds reference results of an analysis
type Reference struct {
	Kind    string        `json:"kind"`    // "static" or "buckling"
	Note    string        `json:"note"`    // source of reference values
	Nodal   []*NodalValue `json:"nodal"`   // static: displacements
	Nmodes  int           `json:"nmodes"`  // buckling: number of modes
	Factors []float64     `json:"factors"` // buckling: load factors
	Rtol    float64       `json:"rtol"`    // buckling: relative tolerance of load factors
}

// ReadReference reads a reference file
func ReadReference(path string) (o *Reference, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read reference file %q:\n%v", path, err)
	}
	o = new(Reference)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode reference file %q:\n%v", path, err)
	}
	return
}

// LoadModel reads DataDir/fnkey.json
func LoadModel(fnkey string, verbose bool) (*fem.Model, error) {
	return fem.NewModelFromFile(filepath.Join(DataDir, fnkey+".json"), verbose)
}

// CompareResults runs the analysis of DataDir/fnkey.json and compares results with DataDir/fnkey.cmp
func CompareResults(tst *testing.T, fnkey string, verbose bool) {

	// model and reference
	m, err := LoadModel(fnkey, verbose)
	if err != nil {
		tst.Errorf("LoadModel failed:\n%v", err)
		return
	}
	ref, err := ReadReference(filepath.Join(DataDir, fnkey+".cmp"))
	if err != nil {
		tst.Errorf("ReadReference failed:\n%v", err)
		return
	}
	if verbose {
		io.Pfcyan("reference: %s\n", ref.Note)
	}

	// run comparisons
	switch ref.Kind {
	case "static":
		sol := fem.NewStaticSolver(m)
		sol.Verbose = verbose
		u, err := sol.Solve()
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		for _, r := range ref.Nodal {
			nod := m.Node(r.Node)
			if nod == nil {
				tst.Errorf("cannot find node %d\n", r.Node)
				return
			}
			val := u[nod.Dofs[r.Dof]]
			msg := io.Sf("node %d: dof %d", r.Node, r.Dof)
			if r.Rtol > 0 {
				checkRelative(tst, msg, r.Rtol, val, r.Value)
			} else {
				chk.Float64(tst, msg, r.Atol, val, r.Value)
			}
		}

	case "buckling":
		sol := fem.NewBucklingSolver(m)
		sol.Verbose = verbose
		res, err := sol.Solve(ref.Nmodes)
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		chk.Int(tst, "number of modes", len(res.Values), len(ref.Factors))
		for k := 0; k < len(res.Values) && k < len(ref.Factors); k++ {
			checkRelative(tst, io.Sf("λ%d", k), ref.Rtol, res.Values[k], ref.Factors[k])
		}

	default:
		tst.Errorf("unknown kind of reference results %q\n", ref.Kind)
	}
}

// checkRelative checks |a - b| ≤ rtol・|b|
func checkRelative(tst *testing.T, msg string, rtol, a, b float64) {
	diff := math.Abs(a - b)
	if chk.Verbose {
		io.Pf("%-20s : %23.15e  ref = %23.15e  rel.err = %.3e\n", msg, a, b, diff/math.Abs(b))
	}
	if diff > rtol*math.Abs(b) {
		tst.Errorf("%s: %g differs from reference %g by more than %g%%\n", msg, a, b, rtol*100)
	}
}
