// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"fmt"
	"math"

	"github.com/cpmech/vlasov/ele"
	"github.com/cpmech/vlasov/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Beam represents a thin-walled 3D beam element with warping torsion (Vlasov, linear elastic)
//
//	             y
//	             ^
//	             |
//	θx' ⟲ (0)----+---------------------(1) ⟲ θx'    --> x (from node 0 to node 1)
//	            /
//	           z
//
//	local DOFs per node:  u  v  w  θx  θy  θz  θx'
//	                      0  1  2  3   4   5   6       (node 0)
//	                      7  8  9  10  11  12  13      (node 1)
//
//	sign conventions:  v' = +θz   w' = -θy
//
// The local frame is computed from geometry only; there is no roll angle.
type Beam struct {

	// basic data
	N1  *ele.Node     // first node
	N2  *ele.Node     // second node
	Mat *inp.Material // material
	Sec *inp.Section  // cross-section
	L   float64       // (derived) length of beam

	// unit vectors aligned with beam element
	e0 r3.Vec // local x-axis (beam axis)
	e1 r3.Vec // local y-axis
	e2 r3.Vec // local z-axis

	// matrices
	R  *mat.Dense // [3][3] local-to-global rotation; columns are e0, e1, e2
	T  *mat.Dense // [nu][nu] global-to-local transformation matrix
	Kl *mat.Dense // [nu][nu] local K matrix
	K  *mat.Dense // [nu][nu] global K matrix
}

// nu is the number of element unknowns
const nu = 2 * ele.Ndof

// tolerances for the local frame
const (
	verticalTol = 1e-8 // the axis is vertical if both horizontal components of e0 are within this
	parallelTol = 1e-6 // the reference vector is parallel to the axis if |ref × e0| is below this
)

// local indices of coupled DOFs
var (
	idxAxial   = [2]int{0, 7}
	idxTorsion = [4]int{3, 6, 10, 13} // θx1, θx1', θx2, θx2'
	idxBendZ   = [4]int{1, 5, 8, 12}  // v1, θz1, v2, θz2
	idxBendY   = [4]int{2, 4, 9, 11}  // w1, θy1, w2, θy2
)

// register element
func init() {
	ele.SetAllocator("beam7", func(n1, n2 *ele.Node, m *inp.Material, s *inp.Section) (ele.Element, error) {
		o, err := NewBeam(n1, n2, m, s)
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}

// NewBeam returns a new beam connecting two nodes
func NewBeam(n1, n2 *ele.Node, m *inp.Material, s *inp.Section) (o *Beam, err error) {
	if n1 == nil || n2 == nil || m == nil || s == nil {
		return nil, chk.Err("beam requires two nodes, a material and a section")
	}
	o = &Beam{N1: n1, N2: n2, Mat: m, Sec: s}
	err = o.Recompute()
	if err != nil {
		return nil, err
	}
	return
}

// Ends returns the connected nodes
func (o *Beam) Ends() (n1, n2 *ele.Node) { return o.N1, o.N2 }

// Length returns the length of the beam
func (o *Beam) Length() float64 { return o.L }

// Dofs returns the global DOF indices of this element: first node's followed by second node's
func (o *Beam) Dofs() []int {
	if len(o.N1.Dofs) != ele.Ndof || len(o.N2.Dofs) != ele.Ndof {
		chk.Panic("beam {%d, %d}: DOF map has not been generated", o.N1.Id, o.N2.Id)
	}
	dofs := make([]int, 0, nu)
	dofs = append(dofs, o.N1.Dofs...)
	return append(dofs, o.N2.Dofs...)
}

// LocalFrame returns a copy of the [3][3] matrix whose columns are the local x, y and z unit vectors
func (o *Beam) LocalFrame() *mat.Dense { return mat.DenseCopyOf(o.R) }

// Transformation returns a copy of the [14][14] global-to-local transformation matrix
func (o *Beam) Transformation() *mat.Dense { return mat.DenseCopyOf(o.T) }

// LocalStiffness returns a copy of the [14][14] stiffness matrix in the local system
func (o *Beam) LocalStiffness() *mat.Dense { return mat.DenseCopyOf(o.Kl) }

// GlobalStiffness returns a copy of the [14][14] stiffness matrix in the global system
func (o *Beam) GlobalStiffness() *mat.Dense { return mat.DenseCopyOf(o.K) }

// GeometricStiffness returns the [14][14] geometric stiffness matrix in the local system
// for a constant axial force P. P > 0 (tension) stabilises; P < 0 (compression) destabilises.
//
//	torsional part is scaled by r0² = (Iy+Iz)/A (doubly symmetric sections)
func (o *Beam) GeometricStiffness(P float64) *mat.Dense {
	kg := mat.NewDense(nu, nu, nil)
	l := o.L
	S := stringPattern(l)
	r0sq := (o.Sec.Iy + o.Sec.Iz) / o.Sec.A
	addBlock(kg, idxBendZ, P/(30.0*l), S)
	addBlock(kg, idxBendY, P/(30.0*l), flipRotations(S))
	addBlock(kg, idxTorsion, P*r0sq/(30.0*l), S)
	return kg
}

// GlobalGeometricStiffness returns trans(T)・Kg(P)・T
func (o *Beam) GlobalGeometricStiffness(P float64) *mat.Dense {
	return o.toGlobal(o.GeometricStiffness(P))
}

// LocalForces computes the local end forces fl = Kl・T・ue
//
//	ue -- [14] displacements of this element in the global system
func (o *Beam) LocalForces(ue []float64) []float64 {
	if len(ue) != nu {
		chk.Panic("beam {%d, %d}: displacement vector must have %d components; %d given", o.N1.Id, o.N2.Id, nu, len(ue))
	}
	var ul, fl mat.VecDense
	ul.MulVec(o.T, mat.NewVecDense(nu, append([]float64(nil), ue...)))
	fl.MulVec(o.Kl, &ul)
	return fl.RawVector().Data
}

// String returns a short representation of this beam
func (o *Beam) String() string {
	return fmt.Sprintf("Beam(%d→%d, L=%g)", o.N1.Id, o.N2.Id, o.L)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// Recompute re-computes the frame and matrices after coordinates or parameters are externally changed
func (o *Beam) Recompute() (err error) {

	// length
	d := r3.Sub(r3.Vec{X: o.N2.X[0], Y: o.N2.X[1], Z: o.N2.X[2]}, r3.Vec{X: o.N1.X[0], Y: o.N1.X[1], Z: o.N1.X[2]})
	o.L = r3.Norm(d)
	if !(o.L > 0) || math.IsInf(o.L, 0) {
		return fmt.Errorf("%w: nodes %d and %d have length %g", ele.ErrDegenerateElement, o.N1.Id, o.N2.Id, o.L)
	}

	// local frame
	o.e0 = r3.Scale(1.0/o.L, d)
	o.e1, o.e2 = localAxes(o.e0)
	o.R = mat.NewDense(3, 3, []float64{
		o.e0.X, o.e1.X, o.e2.X,
		o.e0.Y, o.e1.Y, o.e2.Y,
		o.e0.Z, o.e1.Z, o.e2.Z,
	})

	// global to local transformation matrix: trans(R) for translations and rotations of both
	// nodes; identity for the warping DOFs
	o.T = mat.NewDense(nu, nu, nil)
	for _, k := range []int{0, 3, 7, 10} {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.T.Set(k+i, k+j, o.R.At(j, i))
			}
		}
	}
	o.T.Set(6, 6, 1)
	o.T.Set(13, 13, 1)

	// constants
	E, G := o.Mat.E, o.Mat.G
	EA := E * o.Sec.A
	EIy := E * o.Sec.Iy
	EIz := E * o.Sec.Iz
	ECw := E * o.Sec.Cw
	GJ := G * o.Sec.J
	l := o.L
	lll := l * l * l
	H := bendingPattern(l)
	S := stringPattern(l)

	// stiffness matrix in local system
	o.Kl = mat.NewDense(nu, nu, nil)
	a, b := idxAxial[0], idxAxial[1]
	o.Kl.Set(a, a, EA/l)
	o.Kl.Set(a, b, -EA/l)
	o.Kl.Set(b, a, -EA/l)
	o.Kl.Set(b, b, EA/l)
	addBlock(o.Kl, idxTorsion, ECw/lll, H)              // non-uniform (warping) torsion
	addBlock(o.Kl, idxTorsion, GJ/(30.0*l), S)          // St. Venant torsion
	addBlock(o.Kl, idxBendZ, EIz/lll, H)                // bending in x-y plane
	addBlock(o.Kl, idxBendY, EIy/lll, flipRotations(H)) // bending in x-z plane

	// stiffness matrix in global system
	o.K = o.toGlobal(o.Kl)
	return
}

// toGlobal computes trans(T)・kl・T
func (o *Beam) toGlobal(kl *mat.Dense) *mat.Dense {
	var tmp, kg mat.Dense
	tmp.Mul(o.T.T(), kl)
	kg.Mul(&tmp, o.T)
	return &kg
}

// localAxes computes the local y and z unit vectors given the unit vector along the axis.
// The reference vector is global Z unless the axis is vertical; then it is global X.
// Global Y is used if the reference turns out to be parallel to the axis.
func localAxes(e0 r3.Vec) (e1, e2 r3.Vec) {
	ref := r3.Vec{Z: 1}
	if math.Abs(e0.X) <= verticalTol && math.Abs(e0.Y) <= verticalTol {
		ref = r3.Vec{X: 1}
	}
	e1 = r3.Cross(ref, e0)
	if r3.Norm(e1) < parallelTol {
		e1 = r3.Cross(r3.Vec{Y: 1}, e0)
	}
	e1 = r3.Unit(e1)
	e2 = r3.Cross(e0, e1)
	return
}

// bendingPattern returns the Hermite-cubic bending stiffness pattern (times EI/l³)
func bendingPattern(l float64) [4][4]float64 {
	ll := l * l
	return [4][4]float64{
		{12, 6 * l, -12, 6 * l},
		{6 * l, 4 * ll, -6 * l, 2 * ll},
		{-12, -6 * l, 12, -6 * l},
		{6 * l, 2 * ll, -6 * l, 4 * ll},
	}
}

// stringPattern returns the Hermite-consistent string-stiffening pattern (times P/30l)
func stringPattern(l float64) [4][4]float64 {
	ll := l * l
	return [4][4]float64{
		{36, 3 * l, -36, 3 * l},
		{3 * l, 4 * ll, -3 * l, -ll},
		{-36, -3 * l, 36, -3 * l},
		{3 * l, -ll, -3 * l, 4 * ll},
	}
}

// flipRotations changes the sign of the rotation rows and columns (1 and 3) of a 4×4 pattern
func flipRotations(p [4][4]float64) (q [4][4]float64) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			q[i][j] = p[i][j]
			if (i%2 == 1) != (j%2 == 1) {
				q[i][j] = -p[i][j]
			}
		}
	}
	return
}

// addBlock adds coef・p to the rows and columns idx of m
func addBlock(m *mat.Dense, idx [4]int, coef float64, p [4][4]float64) {
	for i, I := range idx {
		for j, J := range idx {
			m.Set(I, J, m.At(I, J)+coef*p[i][j])
		}
	}
}
