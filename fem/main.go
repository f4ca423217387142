// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NewModelFromFile reads a JSON model file and builds the model
func NewModelFromFile(path string, verbose bool) (o *Model, err error) {
	d, err := inp.ReadModel(path)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> model file %q: %s\n", path, d.Desc)
	}
	o, err = NewModelFromData(d)
	if err != nil {
		return nil, fmt.Errorf("cannot build model from %q: %w", path, err)
	}
	o.Verbose = verbose
	return
}

// NewModelFromData builds a model from input data. Elements are allocated by the element factory.
func NewModelFromData(d *inp.ModelData) (o *Model, err error) {

	// element types
	for i, e := range d.Elements {
		if ele.GetAllocator(e.Type) == nil {
			return nil, chk.Err("element %d: unknown type %q. available: %v", i, e.Type, ele.Names())
		}
	}

	// nodes
	o = NewModel()
	for _, n := range d.Nodes {
		err = o.AddNode(ele.NewNode(n.Id, n.X, n.Y, n.Z))
		if err != nil {
			return nil, err
		}
	}

	// elements
	for i, e := range d.Elements {
		if len(e.Nodes) != 2 {
			return nil, chk.Err("element %d must have 2 nodes; %d given", i, len(e.Nodes))
		}
		n1, n2 := o.Node(e.Nodes[0]), o.Node(e.Nodes[1])
		if n1 == nil || n2 == nil {
			return nil, fmt.Errorf("element %d: %w: %v", i, ErrNodeNotFound, e.Nodes)
		}
		mat, sec := d.Mats[e.Mat], d.Secs[e.Sec]
		if mat == nil || sec == nil {
			return nil, chk.Err("element %d: material %q or section %q not found", i, e.Mat, e.Sec)
		}
		elem, err := ele.New(e.Type, n1, n2, mat, sec)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		o.AddElement(elem)
	}

	// constraints
	for _, c := range d.Constraints {
		for _, dof := range c.Dofs {
			err = o.AddConstraint(c.Node, dof)
			if err != nil {
				return nil, err
			}
		}
	}

	// loads
	for _, l := range d.Loads {
		err = o.AddLoad(l.Node, l.Load())
		if err != nil {
			return nil, err
		}
	}
	return
}
