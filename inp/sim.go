// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
)

// DefaultElemType is the element type used when "type" is omitted in input files
const DefaultElemType = "beam7"

// NodeData holds node data from input files
type NodeData struct {
	Id int     `json:"id"` // node identifier; unique
	X  float64 `json:"x"`  // x-coordinate
	Y  float64 `json:"y"`  // y-coordinate
	Z  float64 `json:"z"`  // z-coordinate
}

// ElemData holds element data from input files
type ElemData struct {
	Type  string `json:"type"`  // element type; e.g. "beam7"
	Nodes []int  `json:"nodes"` // node identifiers [2]
	Mat   string `json:"mat"`   // material name
	Sec   string `json:"sec"`   // section name
}

// ConstraintData holds essential boundary conditions: the listed local DOFs of a node are fixed
//
//	dofs: 0=u 1=v 2=w 3=θx 4=θy 5=θz 6=θx' (warping)
type ConstraintData struct {
	Node int   `json:"node"` // node identifier
	Dofs []int `json:"dofs"` // constrained local DOFs
}

// NloadComps is the number of load components at a node
const NloadComps = 7

// LoadData holds nodal loads {Fx, Fy, Fz, Mx, My, Mz, B}; B is the bimoment
type LoadData struct {
	Node   int       `json:"node"`   // node identifier
	Values []float64 `json:"values"` // load components [NloadComps]
}

// Load returns the load components as an array. Values must have been checked by ParseModel
func (o *LoadData) Load() (load [NloadComps]float64) {
	copy(load[:], o.Values)
	return
}

// ModelData holds all data required to build a structural model
type ModelData struct {

	// input
	Desc        string            `json:"desc"`        // description of model
	Materials   []*MatData        `json:"materials"`   // all materials
	Sections    []*Section        `json:"sections"`    // all sections
	Nodes       []*NodeData       `json:"nodes"`       // all nodes
	Elements    []*ElemData       `json:"elements"`    // all elements
	Constraints []*ConstraintData `json:"constraints"` // essential boundary conditions
	Loads       []*LoadData       `json:"loads"`       // nodal loads

	// derived
	Mats map[string]*Material // name => material
	Secs map[string]*Section  // name => section
}

// ReadModel reads model data from a JSON file
func ReadModel(path string) (o *ModelData, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read model file %q: %w", path, err)
	}
	o, err = ParseModel(b)
	if err != nil {
		return nil, fmt.Errorf("cannot load model file %q: %w", path, err)
	}
	return
}

// ParseModel decodes and checks model data given in JSON format
func ParseModel(b []byte) (o *ModelData, err error) {

	// decode
	o = new(ModelData)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// materials
	o.Mats = make(map[string]*Material)
	for _, m := range o.Materials {
		if _, ok := o.Mats[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		mat, err := m.Material()
		if err != nil {
			return nil, err
		}
		o.Mats[m.Name] = mat
	}

	// sections
	o.Secs = make(map[string]*Section)
	for _, s := range o.Sections {
		if _, ok := o.Secs[s.Name]; ok {
			return nil, chk.Err("section %q is defined more than once", s.Name)
		}
		o.Secs[s.Name] = s
	}

	// elements
	for i, e := range o.Elements {
		if e.Type == "" {
			e.Type = DefaultElemType
		}
		if len(e.Nodes) != 2 {
			return nil, chk.Err("element %d must have 2 nodes; %d given", i, len(e.Nodes))
		}
		if _, ok := o.Mats[e.Mat]; !ok {
			return nil, chk.Err("cannot find material %q for element %d", e.Mat, i)
		}
		if _, ok := o.Secs[e.Sec]; !ok {
			return nil, chk.Err("cannot find section %q for element %d", e.Sec, i)
		}
	}

	// loads
	for i, l := range o.Loads {
		if len(l.Values) != NloadComps {
			return nil, chk.Err("load %d at node %d must have %d components; %d given", i, l.Node, NloadComps, len(l.Values))
		}
	}
	return
}
