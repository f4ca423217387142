// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"fmt"
)

// ErrInvalidMaterial is returned when neither the shear modulus nor the Poisson's coefficient is given
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the elastic constants of an isotropic material
type Material struct {
	Name string  // name of material
	E    float64 // Young's modulus
	G    float64 // shear modulus
	Nu   float64 // Poisson's coefficient
	Rho  float64 // density
}

// NewMaterial returns a new material given E and at least one of {G, ν}.
// The missing constant is derived from the other two:
//
//	ν = E/(2G) - 1     or     G = E/(2(1+ν))
//
// If both G and ν are given, they are kept as given.
func NewMaterial(E float64, G, nu *float64, rho float64) (*Material, error) {
	o := &Material{E: E, Rho: rho}
	switch {
	case G != nil && nu != nil:
		o.G, o.Nu = *G, *nu
	case G != nil:
		o.G = *G
		o.Nu = E/(2.0*o.G) - 1.0
	case nu != nil:
		o.Nu = *nu
		o.G = E / (2.0 * (1.0 + o.Nu))
	default:
		return nil, fmt.Errorf("%w: E=%g requires either G or nu", ErrInvalidMaterial, E)
	}
	return o, nil
}

// NewMaterialG returns a new material with ν derived from E and G
func NewMaterialG(E, G, rho float64) (*Material, error) {
	return NewMaterial(E, &G, nil, rho)
}

// NewMaterialNu returns a new material with G derived from E and ν
func NewMaterialNu(E, nu, rho float64) (*Material, error) {
	return NewMaterial(E, nil, &nu, rho)
}

// String returns a short representation of this material
func (o Material) String() string {
	return fmt.Sprintf("Material(E=%.3e, G=%.3e, nu=%.3f, rho=%g)", o.E, o.G, o.Nu, o.Rho)
}

// MatData holds material data as given in input files. G or nu may be omitted.
type MatData struct {
	Name string   `json:"name"` // name of material
	E    float64  `json:"E"`    // Young's modulus
	G    *float64 `json:"G"`    // shear modulus [optional]
	Nu   *float64 `json:"nu"`   // Poisson's coefficient [optional]
	Rho  float64  `json:"rho"`  // density
}

// Material allocates the material corresponding to this data
func (o *MatData) Material() (mat *Material, err error) {
	mat, err = NewMaterial(o.E, o.G, o.Nu, o.Rho)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", o.Name, err)
	}
	mat.Name = o.Name
	return
}

// Section holds the constants of a prismatic thin-walled cross-section
type Section struct {
	Name string  `json:"name"` // name of section
	A    float64 `json:"A"`    // cross-sectional area
	Iy   float64 `json:"Iy"`   // moment of inertia about the local y-axis (bending in the local x-z plane)
	Iz   float64 `json:"Iz"`   // moment of inertia about the local z-axis (bending in the local x-y plane)
	J    float64 `json:"J"`    // St. Venant torsion constant
	Cw   float64 `json:"Cw"`   // Vlasov warping constant
}

// String returns a short representation of this section
func (o Section) String() string {
	return fmt.Sprintf("Section(A=%.3e, Iy=%.3e, Iz=%.3e, J=%.3e, Cw=%.3e)", o.A, o.Iy, o.Iz, o.J, o.Cw)
}
