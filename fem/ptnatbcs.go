// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/vlasov/ele"
)

// PtNaturalBcs holds point loads at nodes
//
//	components: Fx Fy Fz Mx My Mz B (bimoment)
//
//	Loads applied to the same node are accumulated
type PtNaturalBcs struct {
	Loads map[int]*[ele.Ndof]float64 // node id => load components
}

// Init initialises this structure
func (o *PtNaturalBcs) Init() {
	o.Loads = make(map[int]*[ele.Ndof]float64)
}

// Add accumulates a load at node
func (o *PtNaturalBcs) Add(nodeId int, load [ele.Ndof]float64) {
	if o.Loads == nil {
		o.Init()
	}
	f, ok := o.Loads[nodeId]
	if !ok {
		f = new([ele.Ndof]float64)
		o.Loads[nodeId] = f
	}
	for i, v := range load {
		f[i] += v
	}
}

// AddToRhs adds the point loads to the global vector F.
// The DOF map of nodes must have been generated already.
func (o *PtNaturalBcs) AddToRhs(F []float64, nodes map[int]*ele.Node) {
	ids := make([]int, 0, len(o.Loads))
	for nid := range o.Loads {
		ids = append(ids, nid)
	}
	sort.Ints(ids)
	for _, nid := range ids {
		for i, v := range o.Loads[nid] {
			F[nodes[nid].Dofs[i]] += v
		}
	}
}
