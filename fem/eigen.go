// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// tolerances for the generalised eigenvalue problem
const (
	InfRootTol = 1e-12 // μ = 1/λ is taken as zero (λ infinite) if |μ| ≤ InfRootTol・max|μ|
	ImagTol    = 1e-9  // μ is taken as real if |Im(μ)| ≤ ImagTol・max|μ|
)

// EigenPair holds one solution of K・v = λ・B・v
type EigenPair struct {
	Value  float64   // λ; ±Inf for infinite roots
	Vector []float64 // v
}

// SolvePencil solves the generalised eigenvalue problem
//
//	K・v = λ・B・v
//
//	with K symmetric and B symmetric. If K is positive definite, the Cholesky factorisation
//	K = L・Lᵀ reduces the problem to the standard symmetric problem
//
//	C・y = μ・y   with   C = L⁻¹・B・L⁻ᵀ,   μ = 1/λ,   v = L⁻ᵀ・y
//
//	Otherwise, the general (non-symmetric) problem K⁻¹・B・v = μ・v is solved and only
//	real roots are returned.
func SolvePencil(K, B *mat.SymDense) (pairs []EigenPair, err error) {
	pairs, ok := solveSymPencil(K, B)
	if ok {
		return
	}
	return solveGenPencil(K, B)
}

// solveSymPencil implements the Cholesky reduction. ok is false if K is not positive definite.
func solveSymPencil(K, B *mat.SymDense) (pairs []EigenPair, ok bool) {

	// K = L・Lᵀ
	var chol mat.Cholesky
	if !chol.Factorize(K) {
		return nil, false
	}
	var L mat.TriDense
	chol.LTo(&L)

	// C = L⁻¹・B・L⁻ᵀ = L⁻¹・(L⁻¹・B)ᵀ
	var Y, C mat.Dense
	if err := Y.Solve(&L, B); err != nil {
		return nil, false
	}
	if err := C.Solve(&L, Y.T()); err != nil {
		return nil, false
	}
	n := K.SymmetricDim()
	Cs := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			Cs.SetSym(i, j, (C.At(i, j)+C.At(j, i))/2.0)
		}
	}

	// C・y = μ・y
	var eig mat.EigenSym
	if !eig.Factorize(Cs, true) {
		return nil, false
	}
	μ := eig.Values(nil)
	var ys, vs mat.Dense
	eig.VectorsTo(&ys)
	if err := vs.Solve(L.T(), &ys); err != nil {
		return nil, false
	}

	// λ = 1/μ
	μmax := maxAbs(μ)
	pairs = make([]EigenPair, n)
	for k := 0; k < n; k++ {
		pairs[k] = EigenPair{Value: invRoot(μ[k], μmax), Vector: mat.Col(nil, k, &vs)}
	}
	return pairs, true
}

// solveGenPencil solves K⁻¹・B・v = μ・v with the LU factorisation of K and the general eigen solver
func solveGenPencil(K, B *mat.SymDense) (pairs []EigenPair, err error) {

	// A = K⁻¹・B
	var A mat.Dense
	err = A.Solve(K, B)
	if err != nil {
		return nil, chk.Err("cannot compute K⁻¹・B:\n%v", err)
	}

	// A・v = μ・v
	var eig mat.Eigen
	if !eig.Factorize(&A, mat.EigenRight) {
		return nil, chk.Err("general eigen decomposition did not converge")
	}
	μ := eig.Values(nil)
	var vs mat.CDense
	eig.VectorsTo(&vs)

	// real roots only
	μmax := 0.0
	for _, v := range μ {
		μmax = math.Max(μmax, cmplx.Abs(v))
	}
	n, _ := A.Dims()
	for k, v := range μ {
		if math.Abs(imag(v)) > ImagTol*μmax {
			continue
		}
		vec := make([]float64, n)
		for i := 0; i < n; i++ {
			vec[i] = real(vs.At(i, k))
		}
		pairs = append(pairs, EigenPair{Value: invRoot(real(v), μmax), Vector: vec})
	}
	return
}

// invRoot returns 1/μ or +Inf if μ is negligible compared with μmax
func invRoot(μ, μmax float64) float64 {
	if math.Abs(μ) <= InfRootTol*μmax {
		return math.Inf(1)
	}
	return 1.0 / μ
}

// maxAbs returns max|v|; zero if v is empty
func maxAbs(v []float64) (res float64) {
	for _, x := range v {
		res = math.Max(res, math.Abs(x))
	}
	return
}

// NormaliseMode scales v to unit Euclidean length with its largest-magnitude component positive.
// A zero vector is left unchanged.
func NormaliseMode(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}
	imax := 0
	for i, x := range v {
		if math.Abs(x) > math.Abs(v[imax]) {
			imax = i
		}
	}
	s := 1.0 / norm
	if v[imax] < 0 {
		s = -s
	}
	floats.Scale(s, v)
}
