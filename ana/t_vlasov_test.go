// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_vlasov01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vlasov01. cantilever under end torque")

	mat, _ := inp.NewMaterialG(210e9, 80e9, 0)
	sec := &inp.Section{A: 1e-3, Iy: 1e-5, Iz: 1e-5, J: 1e-6, Cw: 1e-7}
	var sol PrismaticBeam
	sol.Init(mat, sec, 2)

	T := 1000.0
	k := math.Sqrt(80e9 * 1e-6 / (210e9 * 1e-7))
	chk.Float64(tst, "k", 1e-15, sol.WarpingParameter(), k)
	chk.Float64(tst, "θ(free)", 1e-15, sol.TwistFree(T), 0.025)
	θ := sol.TwistRestrained(T)
	io.Pforan("θ(restrained) = %v\n", θ)
	chk.Float64(tst, "θ(restrained)", 1e-12, θ, T/(80e9*1e-6)*(2-math.Tanh(2*k)/k))
	if θ >= sol.TwistFree(T) {
		tst.Errorf("restrained warping should reduce the twist\n")
	}

	// boundary conditions: θ(0) = 0 and θ'(0) = 0
	chk.Float64(tst, "θ(0)", 1e-17, sol.TwistRestrainedAt(T, 0), 0)
	h := 1e-4
	chk.Float64(tst, "θ'(0)", 1e-5, sol.TwistRestrainedAt(T, h)/h, 0)

	// far from the support, the twist rate approaches T/GJ
	dθ := (sol.TwistRestrainedAt(T, 2) - sol.TwistRestrainedAt(T, 2-h)) / h
	chk.Float64(tst, "θ'(L)", 1e-3, dθ/(T/(80e9*1e-6)), 1-1/math.Cosh(2*k))

	// without warping rigidity
	sec.Cw = 0
	sol.Init(mat, sec, 2)
	chk.Float64(tst, "θ(Cw=0)", 1e-15, sol.TwistRestrained(T), sol.TwistFree(T))

	// very large kL
	sec.Cw = 1e-30
	sol.Init(mat, sec, 2)
	chk.Float64(tst, "θ(large kL)", 1e-9, sol.TwistRestrained(T), sol.TwistFree(T))
}

func Test_vlasov02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vlasov02. column buckling loads")

	mat, _ := inp.NewMaterialG(210e9, 80e9, 0)
	sec := &inp.Section{A: 1e-3, Iy: 1e-6, Iz: 2e-5, J: 5e-7, Cw: 1e-8}
	var sol PrismaticBeam
	sol.Init(mat, sec, 4)

	chk.Float64(tst, "Euler", 1e-9, sol.EulerLoad(), math.Pi*math.Pi*210e9*1e-6/16)
	chk.Float64(tst, "discrete Euler", 1e-9, sol.DiscreteEulerLoad(), 12*210e9*1e-6/16)

	r0sq := (1e-6 + 2e-5) / 1e-3
	chk.Float64(tst, "torsional", 1e-9, sol.TorsionalBucklingLoad(), (80e9*5e-7+math.Pi*math.Pi*210e9*1e-8/16)/r0sq)
	chk.Float64(tst, "tip deflection", 1e-15, sol.TipDeflection(1000, 1e-5), 1000*64/(3*210e9*1e-5))
}
