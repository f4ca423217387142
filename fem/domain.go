// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/ele/solid"
	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// MinAxialForce is the magnitude below which an element's axial force is taken as zero
// when assembling the geometric stiffness matrix
const MinAxialForce = 1e-9

// Model holds all nodes, elements, constraints and loads of a structure.
// It is built with the Add methods and then handed to a solver;
// it must not be modified while a solver is running.
type Model struct {

	// options
	Verbose  bool // show messages
	Parallel bool // compute element matrices concurrently during assembly

	// nodes and elements
	nodes map[int]*ele.Node // node id => node
	elems []ele.Element     // elements in insertion order

	// boundary conditions
	EssenBcs EssentialBcs // constrained DOFs
	PtNatBcs PtNaturalBcs // point loads at nodes

	// DOF map
	ndof  int  // total number of DOFs
	dirty bool // DOF map must be (re)generated
}

// NewModel returns a new empty model
func NewModel() (o *Model) {
	o = new(Model)
	o.nodes = make(map[int]*ele.Node)
	o.EssenBcs.Init()
	o.PtNatBcs.Init()
	o.dirty = true
	return
}

// AddNode adds a node. The node id must be unique.
func (o *Model) AddNode(nod *ele.Node) (err error) {
	if nod == nil {
		return chk.Err("cannot add nil node")
	}
	if _, ok := o.nodes[nod.Id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateId, nod.Id)
	}
	o.nodes[nod.Id] = nod
	o.dirty = true
	return
}

// AddElement appends an element. Elements are not checked for uniqueness.
func (o *Model) AddElement(e ele.Element) {
	o.elems = append(o.elems, e)
}

// AddBeam creates a thin-walled beam connecting two existing nodes and appends it
func (o *Model) AddBeam(id1, id2 int, m *inp.Material, s *inp.Section) (b *solid.Beam, err error) {
	n1, n2 := o.nodes[id1], o.nodes[id2]
	if n1 == nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id1)
	}
	if n2 == nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id2)
	}
	b, err = solid.NewBeam(n1, n2, m, s)
	if err != nil {
		return nil, err
	}
	o.AddElement(b)
	return
}

// AddConstraint fixes the local DOF of a node
//
//	dof -- 0=u 1=v 2=w 3=θx 4=θy 5=θz 6=θx'
func (o *Model) AddConstraint(nodeId, dof int) (err error) {
	if _, ok := o.nodes[nodeId]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, nodeId)
	}
	if dof < 0 || dof >= ele.Ndof {
		return fmt.Errorf("%w: %d (node %d)", ErrInvalidDof, dof, nodeId)
	}
	o.EssenBcs.Set(nodeId, dof)
	return
}

// AddLoad accumulates a load {Fx, Fy, Fz, Mx, My, Mz, B} at a node
func (o *Model) AddLoad(nodeId int, load [ele.Ndof]float64) (err error) {
	if _, ok := o.nodes[nodeId]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, nodeId)
	}
	o.PtNatBcs.Add(nodeId, load)
	return
}

// GenerateDofMap assigns contiguous blocks of Ndof global DOF indices to nodes in ascending id order
func (o *Model) GenerateDofMap() {
	o.ndof = 0
	for _, nod := range o.Nodes() {
		nod.Dofs = make([]int, ele.Ndof)
		for i := 0; i < ele.Ndof; i++ {
			nod.Dofs[i] = o.ndof
			o.ndof++
		}
	}
	o.dirty = false
	if o.Verbose {
		io.Pf("> DOF map: %d nodes, %d DOFs\n", len(o.nodes), o.ndof)
	}
}

// TotalDofs returns the number of DOFs: Ndof × number of nodes
func (o *Model) TotalDofs() int {
	o.checkDofMap()
	return o.ndof
}

// Node returns the node with the given id; nil if not found
func (o *Model) Node(id int) *ele.Node {
	return o.nodes[id]
}

// Nodes returns all nodes sorted by ascending id
func (o *Model) Nodes() (nodes []*ele.Node) {
	nodes = make([]*ele.Node, 0, len(o.nodes))
	for _, nod := range o.nodes {
		nodes = append(nodes, nod)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Id < nodes[j].Id })
	return
}

// Elements returns all elements in insertion order
func (o *Model) Elements() []ele.Element {
	return append([]ele.Element(nil), o.elems...)
}

// AssembleStiffness assembles the global stiffness matrix K
func (o *Model) AssembleStiffness() *mat.Dense {
	o.checkDofMap()
	if o.Verbose {
		io.Pf("> assembling K: %d elements\n", len(o.elems))
	}
	return o.assemble(func(i int, e ele.Element) *mat.Dense {
		return e.GlobalStiffness()
	})
}

// AssembleGeometricStiffness assembles the global geometric stiffness matrix Kg
//
//	P -- [nele] axial force of each element (tension > 0); forces with |P| < MinAxialForce are skipped
func (o *Model) AssembleGeometricStiffness(P []float64) (Kg *mat.Dense, err error) {
	if len(P) != len(o.elems) {
		return nil, chk.Err("number of axial forces (%d) must be equal to the number of elements (%d)", len(P), len(o.elems))
	}
	o.checkDofMap()
	if o.Verbose {
		io.Pf("> assembling Kg: %d elements\n", len(o.elems))
	}
	Kg = o.assemble(func(i int, e ele.Element) *mat.Dense {
		if math.Abs(P[i]) < MinAxialForce {
			return nil
		}
		return e.GlobalGeometricStiffness(P[i])
	})
	return
}

// LoadVector returns the global load vector F
func (o *Model) LoadVector() (F []float64) {
	o.checkDofMap()
	F = make([]float64, o.ndof)
	o.PtNatBcs.AddToRhs(F, o.nodes)
	return
}

// ConstrainedDofs returns the sorted global indices of constrained DOFs
func (o *Model) ConstrainedDofs() []int {
	o.checkDofMap()
	return o.EssenBcs.Eqs(o.nodes)
}

// FreeDofs returns the sorted global indices of unconstrained DOFs
func (o *Model) FreeDofs() []int {
	return Complement(o.TotalDofs(), o.ConstrainedDofs())
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// checkDofMap regenerates the DOF map if nodes have been added
func (o *Model) checkDofMap() {
	if o.dirty {
		o.GenerateDofMap()
	}
}

// assemble computes one matrix per element and scatter-adds them into a global matrix.
// Matrices may be computed concurrently, but they are always added in element order.
// Nil element matrices are skipped.
func (o *Model) assemble(fcn func(i int, e ele.Element) *mat.Dense) (K *mat.Dense) {
	if o.ndof == 0 {
		return new(mat.Dense)
	}
	K = mat.NewDense(o.ndof, o.ndof, nil)
	kes := make([]*mat.Dense, len(o.elems))
	if o.Parallel {
		var wg sync.WaitGroup
		for i, e := range o.elems {
			wg.Add(1)
			go func(i int, e ele.Element) {
				defer wg.Done()
				kes[i] = fcn(i, e)
			}(i, e)
		}
		wg.Wait()
	} else {
		for i, e := range o.elems {
			kes[i] = fcn(i, e)
		}
	}
	for i, e := range o.elems {
		if kes[i] == nil {
			continue
		}
		scatter(K, kes[i], e.Dofs())
	}
	return
}

// scatter adds ke into K at rows and columns dofs
func scatter(K, ke *mat.Dense, dofs []int) {
	for i, I := range dofs {
		for j, J := range dofs {
			K.Set(I, J, K.At(I, J)+ke.At(i, j))
		}
	}
}
