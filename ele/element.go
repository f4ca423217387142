// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements for thin-walled frames
package ele

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Ndof is the number of degrees of freedom per node
//
//	0=u 1=v 2=w 3=θx 4=θy 5=θz 6=θx' (rate of twist / warping)
const Ndof = 7

// IdxAxial2 is the index of the axial force at the second node in the vector of local end forces.
// With the sign convention of the local stiffness it is positive in tension.
const IdxAxial2 = Ndof

// ErrDegenerateElement is returned when an element has zero length
var ErrDegenerateElement = errors.New("degenerate element")

// Element defines what all elements must compute
type Element interface {

	// geometry and equations
	Ends() (n1, n2 *Node) // connected nodes
	Length() float64      // length of element
	Dofs() []int          // global DOF indices: first node's followed by second node's

	// matrices in the global system
	GlobalStiffness() *mat.Dense                   // Kg = trans(T)・Kl・T
	GlobalGeometricStiffness(P float64) *mat.Dense // geometric stiffness for a constant axial force P (tension > 0)

	// internal forces
	LocalForces(ue []float64) []float64 // local end forces for the given global element displacements
}

// Node holds a point in space and the global indices of its DOFs
type Node struct {
	Id   int        // identifier; unique within a model
	X    [3]float64 // coordinates
	Dofs []int      // [Ndof] global DOF indices; nil until the DOF map is generated
}

// NewNode returns a new node
func NewNode(id int, x, y, z float64) *Node {
	return &Node{Id: id, X: [3]float64{x, y, z}}
}
