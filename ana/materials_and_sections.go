// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
)

// CrossSection computes the constants of typical cross-sections of thin-walled beams
//
//	local axes: x along the beam; z along the height h; y along the width b
//
//	   typ : rectangle
//	         circle                             tw
//	         I-beam                         -->| |<--
//	                                    ___    | |     ___
//	   ^ z       +-------+            tf |   ########   |
//	   |         |       |              ---  ########   |
//	   |         |       |                      ##      |
//	   +----> y  |       | h = hei              ##      | h = hei
//	             |       |                      ##      |
//	             |       |              ---  ########   |
//	             +-------+            tf_|_  ########  ---
//	              b = wid                    b = wid
//
//	   Iy ~ Imax (bending in the x-z plane)
//	   Iz ~ Imin (bending in the x-y plane)
//	   Cw ~ warping constant; zero for rectangles and circles
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Unit string  // unit of length
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A  float64 // cross-sectional area
	Iy float64 // major moment of inertia (about y-axis)
	Iz float64 // minor moment of inertia (about z-axis)
	J  float64 // St. Venant torsional constant
	Cw float64 // warping constant
}

// Init initialises structure and computes the constants of the cross-section
func (o *CrossSection) Init(typ, unitLen string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Unit, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, unitLen, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Cw = 0
		o.Iy = b * h3 / 12.0
		o.Iz = b3 * h / 12.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.J = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iy = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iz = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		h0 := h - tf // distance between flange centroids
		o.Cw = tf * b3 * h0 * h0 / 24.0

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iy = math.Pi * r2 * r2 / 4.0
		o.Iz = o.Iy
		o.J = o.Iy + o.Iz
		o.Cw = 0

	default:
		return chk.Err("cross-section type %q is unavailable. options: rectangle, I-beam, circle", typ)
	}
	return
}

// Section returns the section record used by models
func (o *CrossSection) Section(name string) *inp.Section {
	return &inp.Section{Name: name, A: o.A, Iy: o.Iy, Iz: o.Iz, J: o.J, Cw: o.Cw}
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	Rho      float64 // density
}

// Init initialises material parameters
//
//	Input:
//	 unitPres:  "Pa"  => E:[Pa],  rho:[kg/m³]
//	            "kPa" => E:[kPa], rho:[Mg/m³]
//	            "MPa" => E:[MPa], rho:[Gg/m³]
//	            "GPa" => E:[GPa], rho:[Tg/m³]
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	o.Type = typ
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0  // [MPa]
		o.Nu = 0.32     // [-]
		o.Rho = 7.85e-3 // [Gg/m³]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0   // [MPa]
		o.Nu = 0.35     // [-]
		o.Rho = 2.79e-3 // [Gg/m³]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0   // [MPa]
		o.Nu = 0.29     // [-]
		o.Rho = 4.70e-4 // [Gg/m³]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}

	// set unit
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0   // convert from MPa to unitPress (e.g. kPa)
	GgByM3_toUnitDens := 1.0 // convert from Gg/m3 to unitPress (e.g. Mg/m³)
	switch unitPres {
	case "Pa":
		o.UnitDens = "kg/m³"
		MPa_to_unitPres = 1e6   // convert from MPa to Pa
		GgByM3_toUnitDens = 1e6 // convert from Gg/m3 to kg/m³
	case "kPa":
		o.UnitDens = "Mg/m³"
		MPa_to_unitPres = 1e3   // convert from MPa to kPa
		GgByM3_toUnitDens = 1e3 // convert from Gg/m3 to Mg/m³
	case "MPa":
		o.UnitDens = "Gg/m³"
	case "GPa":
		o.UnitDens = "Tg/m³"
		MPa_to_unitPres = 1e-3   // convert from MPa to GPa
		GgByM3_toUnitDens = 1e-3 // convert from Gg/m3 to Tg/m³
	default:
		return chk.Err("unit of pressure %q is invalid. options: Pa, kPa, MPa, GPa", unitPres)
	}

	// convert values to requested units
	o.E = o.E * MPa_to_unitPres
	o.Rho = o.Rho * GgByM3_toUnitDens

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// MatData returns the material record used by model files
func (o *Material) MatData(name string) *inp.MatData {
	E, G, nu := o.E, o.G, o.Nu
	return &inp.MatData{Name: name, E: E, G: &G, Nu: &nu, Rho: o.Rho}
}

// Material returns the material used by models
func (o *Material) Material(name string) *inp.Material {
	return &inp.Material{Name: name, E: o.E, G: o.G, Nu: o.Nu, Rho: o.Rho}
}
