// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/vlasov/ele"
)

// EssentialBcs records constrained (fixed, zero) local DOFs of nodes.
//
//	local DOFs: 0=u 1=v 2=w 3=θx 4=θy 5=θz 6=θx'
//
//	Setting the same DOF more than once has no further effect
type EssentialBcs struct {
	Fixed map[int]map[int]bool // node id => set of local DOFs
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Fixed = make(map[int]map[int]bool)
}

// Set records a constrained DOF
func (o *EssentialBcs) Set(nodeId, dof int) {
	if o.Fixed == nil {
		o.Init()
	}
	if _, ok := o.Fixed[nodeId]; !ok {
		o.Fixed[nodeId] = make(map[int]bool)
	}
	o.Fixed[nodeId][dof] = true
}

// Dofs returns the sorted local DOFs constrained at node; nil if none
func (o *EssentialBcs) Dofs(nodeId int) (dofs []int) {
	for dof := range o.Fixed[nodeId] {
		dofs = append(dofs, dof)
	}
	sort.Ints(dofs)
	return
}

// Eqs returns the sorted, duplicate-free global indices of all constrained DOFs.
// The DOF map of nodes must have been generated already.
func (o *EssentialBcs) Eqs(nodes map[int]*ele.Node) (eqs []int) {
	eqs = make([]int, 0)
	for nid, set := range o.Fixed {
		nod := nodes[nid]
		for dof := range set {
			eqs = append(eqs, nod.Dofs[dof])
		}
	}
	sort.Ints(eqs)
	return
}

// Complement returns the indices in [0, n) that are not in sorted
func Complement(n int, sorted []int) (rest []int) {
	rest = make([]int, 0, n-len(sorted))
	k := 0
	for i := 0; i < n; i++ {
		if k < len(sorted) && sorted[k] == i {
			k++
			continue
		}
		rest = append(rest, i)
	}
	return
}
