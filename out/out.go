// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of static and buckling results and plotting
package out

import (
	"math"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/fem"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// DofKeys holds the keys of nodal DOFs; the index of a key is the local DOF number
var DofKeys = []string{"u", "v", "w", "rx", "ry", "rz", "wp"}

// DofIndex returns the local DOF number corresponding to key; e.g. "w" => 2
func DofIndex(key string) (dof int, err error) {
	for i, k := range DofKeys {
		if k == key {
			return i, nil
		}
	}
	return -1, chk.Err("unknown DOF key %q. valid keys are %v", key, DofKeys)
}

// Results holds a full vector of nodal values (displacements or a mode shape) of a model
type Results struct {
	Model *fem.Model  // the model
	U     []float64   // [ndof] values at all DOFs
	Nodes []*ele.Node // nodes sorted by id
}

// Start binds a vector of nodal values to a model
func Start(m *fem.Model, U []float64) (o *Results, err error) {
	ndof := m.TotalDofs()
	if len(U) != ndof {
		return nil, chk.Err("vector of results must have %d components; %d given", ndof, len(U))
	}
	return &Results{Model: m, U: U, Nodes: m.Nodes()}, nil
}

// StartMode binds the k-th buckling mode shape to a model
func StartMode(m *fem.Model, res *fem.BucklingResult, k int) (o *Results, err error) {
	U, err := FullModeShape(m, res, k)
	if err != nil {
		return
	}
	return Start(m, U)
}

// FullModeShape returns the k-th mode shape of a buckling result in the full DOF space:
// constrained DOFs are set to zero and free DOFs receive the mode vector components
func FullModeShape(m *fem.Model, res *fem.BucklingResult, k int) (U []float64, err error) {
	if k < 0 || k >= len(res.Vectors) {
		return nil, chk.Err("mode %d is not available; the result has %d modes", k, len(res.Vectors))
	}
	v := res.Vectors[k]
	if len(v) != len(res.FreeDofs) {
		return nil, chk.Err("mode %d has %d components but there are %d free DOFs", k, len(v), len(res.FreeDofs))
	}
	U = make([]float64, m.TotalDofs())
	for i, eq := range res.FreeDofs {
		if eq < 0 || eq >= len(U) {
			return nil, chk.Err("free DOF %d is outside the model with %d DOFs", eq, len(U))
		}
		U[eq] = v[i]
	}
	return
}

// Nodal returns all values at a node
func (o *Results) Nodal(nodeId int) (vals [ele.Ndof]float64, err error) {
	nod := o.Model.Node(nodeId)
	if nod == nil {
		return vals, chk.Err("cannot find node %d", nodeId)
	}
	for i, eq := range nod.Dofs {
		vals[i] = o.U[eq]
	}
	return
}

// Series returns the values of one DOF at all nodes in ascending id order.
// X holds the accumulated distance between consecutive nodes.
func (o *Results) Series(dof int) (X, Y []float64) {
	if dof < 0 || dof >= ele.Ndof {
		chk.Panic("DOF must be in [0, %d]. %d is invalid", ele.Ndof-1, dof)
	}
	X = make([]float64, len(o.Nodes))
	Y = make([]float64, len(o.Nodes))
	for i, nod := range o.Nodes {
		if i > 0 {
			X[i] = X[i-1] + dist(o.Nodes[i-1].X, nod.X)
		}
		Y[i] = o.U[nod.Dofs[dof]]
	}
	return
}

// Deformed returns the coordinates of a node displaced by scale times its translations
func (o *Results) Deformed(nod *ele.Node, scale float64) (x [3]float64) {
	for i := 0; i < 3; i++ {
		x[i] = nod.X[i] + scale*o.U[nod.Dofs[i]]
	}
	return
}

// MaxTranslation returns the largest magnitude of the translation vectors of all nodes
func (o *Results) MaxTranslation() (res float64) {
	for _, nod := range o.Nodes {
		u := r3.Vec{X: o.U[nod.Dofs[0]], Y: o.U[nod.Dofs[1]], Z: o.U[nod.Dofs[2]]}
		res = math.Max(res, r3.Norm(u))
	}
	return
}

// Size returns the largest dimension of the bounding box of all nodes
func (o *Results) Size() (res float64) {
	if len(o.Nodes) == 0 {
		return
	}
	xmin, xmax := o.Nodes[0].X, o.Nodes[0].X
	for _, nod := range o.Nodes {
		for i := 0; i < 3; i++ {
			xmin[i] = math.Min(xmin[i], nod.X[i])
			xmax[i] = math.Max(xmax[i], nod.X[i])
		}
	}
	for i := 0; i < 3; i++ {
		res = math.Max(res, xmax[i]-xmin[i])
	}
	return
}

// AutoScale returns the scale factor making the largest translation equal to coef times the model size.
// It returns 1 if there are no translations.
func (o *Results) AutoScale(coef float64) float64 {
	umax := o.MaxTranslation()
	if umax < 1e-15 {
		return 1
	}
	return coef * o.Size() / umax
}

func dist(a, b [3]float64) float64 {
	return r3.Norm(r3.Sub(r3.Vec{X: b[0], Y: b[1], Z: b[2]}, r3.Vec{X: a[0], Y: a[1], Z: a[2]}))
}
