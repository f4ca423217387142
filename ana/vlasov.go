// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
)

// PrismaticBeam computes closed-form solutions for a straight prismatic thin-walled beam of length L
//
//	cantilever under end torque T (fixed at x=0):
//
//	   |=================================|  --> T
//	  x=0                               x=L
//
//	   warping free at x=0:        θ(L) = T・L/(G・J)
//	   warping restrained at x=0:  θ(L) = (T/GJ)・(L - tanh(kL)/k),  k = √(GJ/(E・Cw))
//
//	pinned-pinned column:
//
//	   Euler:      Pcr = π²・E・I/L²
//	   torsional:  Pcr = (G・J + π²・E・Cw/L²) / r0²,   r0² = (Iy+Iz)/A
type PrismaticBeam struct {

	// input
	E  float64 // Young's modulus
	G  float64 // shear modulus
	A  float64 // cross-sectional area
	Iy float64 // moment of inertia about local y
	Iz float64 // moment of inertia about local z
	J  float64 // St. Venant torsion constant
	Cw float64 // warping constant
	L  float64 // length

	// derived
	GJ  float64 // torsional rigidity
	ECw float64 // warping rigidity
	k   float64 // warping parameter √(GJ/ECw); +Inf if Cw == 0
}

// Init initialises this structure
func (o *PrismaticBeam) Init(mat *inp.Material, sec *inp.Section, L float64) {
	if !(L > 0) {
		chk.Panic("length of beam must be positive. L = %g is invalid", L)
	}
	o.E, o.G, o.L = mat.E, mat.G, L
	o.A, o.Iy, o.Iz, o.J, o.Cw = sec.A, sec.Iy, sec.Iz, sec.J, sec.Cw
	o.GJ = o.G * o.J
	o.ECw = o.E * o.Cw
	o.k = math.Inf(1)
	if o.ECw > 0 {
		o.k = math.Sqrt(o.GJ / o.ECw)
	}
}

// WarpingParameter returns k = √(GJ/(E・Cw))
func (o PrismaticBeam) WarpingParameter() float64 { return o.k }

// TwistFree returns the twist at the tip of a cantilever with free warping under end torque T
func (o PrismaticBeam) TwistFree(T float64) float64 {
	return T * o.L / o.GJ
}

// TwistRestrained returns the twist at the tip of a cantilever with restrained warping at the support
func (o PrismaticBeam) TwistRestrained(T float64) float64 {
	return o.TwistRestrainedAt(T, o.L)
}

// TwistRestrainedAt returns the twist θ(x) along a cantilever with restrained warping at x=0
//
//	θ(x) = T/(GJ・k)・[k・x - sinh(k・x) + tanh(k・L)・(cosh(k・x) - 1)]
func (o PrismaticBeam) TwistRestrainedAt(T, x float64) float64 {
	if math.IsInf(o.k, 1) {
		return T * x / o.GJ
	}
	k := o.k
	kx := k * x
	if k*o.L > 300 { // sinh and cosh overflow; the warping boundary layer is negligible
		return T / o.GJ * (x - (1-math.Exp(-kx))/k)
	}
	return T / (o.GJ * k) * (kx - math.Sinh(kx) + math.Tanh(k*o.L)*(math.Cosh(kx)-1))
}

// EulerLoad returns the Euler critical load π²EI/L² of a pinned-pinned column using the smallest I
func (o PrismaticBeam) EulerLoad() float64 {
	return math.Pi * math.Pi * o.E * math.Min(o.Iy, o.Iz) / (o.L * o.L)
}

// DiscreteEulerLoad returns 12EI/L²: the critical load of a pinned-pinned column
// discretised with a single cubic element
func (o PrismaticBeam) DiscreteEulerLoad() float64 {
	return 12.0 * o.E * math.Min(o.Iy, o.Iz) / (o.L * o.L)
}

// TorsionalBucklingLoad returns the critical load for pure torsional buckling of a
// pinned-pinned column (twist prevented, warping free at ends) with a doubly symmetric section
func (o PrismaticBeam) TorsionalBucklingLoad() float64 {
	r0sq := (o.Iy + o.Iz) / o.A
	return (o.GJ + math.Pi*math.Pi*o.ECw/(o.L*o.L)) / r0sq
}

// TipDeflection returns the deflection PL³/(3EI) at the tip of a cantilever under end load P
// bending about the axis with inertia I
func (o PrismaticBeam) TipDeflection(P, I float64) float64 {
	return P * o.L * o.L * o.L / (3.0 * o.E * I)
}
