// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/fem"

	"github.com/cpmech/gosl/chk"
)

// ForceKeys holds the keys of the local end-force components; B is the bimoment
var ForceKeys = []string{"N", "Vy", "Vz", "T", "My", "Mz", "B"}

// ForceIndex returns the local component corresponding to a force key; e.g. "Mz" => 5
func ForceIndex(key string) (comp int, err error) {
	for i, k := range ForceKeys {
		if k == key {
			return i, nil
		}
	}
	return -1, chk.Err("unknown force key %q. valid keys are %v", key, ForceKeys)
}

// BeamDiagram returns the internal force component comp at both ends of all elements,
// in element order. X holds the accumulated length of elements.
//
//	forces -- [nele][14] local end forces; e.g. from StaticSolver.ElementForces
//	comp   -- local component in [0, 6]; e.g. 0 for the axial force N (tension > 0)
//
//	The internal force at the first end is minus the end force because end forces act on the element.
func BeamDiagram(m *fem.Model, forces [][]float64, comp int) (X, Y []float64) {
	elems := m.Elements()
	if len(forces) != len(elems) {
		chk.Panic("number of force vectors (%d) must be equal to the number of elements (%d)", len(forces), len(elems))
	}
	if comp < 0 || comp >= ele.Ndof {
		chk.Panic("force component must be in [0, %d]. %d is invalid", ele.Ndof-1, comp)
	}
	X = make([]float64, 0, 2*len(elems))
	Y = make([]float64, 0, 2*len(elems))
	var s float64
	for i, e := range elems {
		X = append(X, s, s+e.Length())
		Y = append(Y, -forces[i][comp], forces[i][ele.Ndof+comp])
		s += e.Length()
	}
	return
}
