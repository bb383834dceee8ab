package quadrature

import (
	"math"

	"github.com/notargets/gofel/utils"
	"gonum.org/v1/gonum/mat"
)

// JacobiGQ computes the N+1 point Gauss quadrature rule on [-1,1] for
// the weight (1-x)^alpha (1+x)^beta, via eigen-decomposition of the
// symmetric tridiagonal Jacobi recurrence matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		x := []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w := []float64{gamma0(alpha, beta)}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	h1 := make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal
	d0 := make([]float64, N+1)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// First off-diagonal
	d1 := make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := mat.NewSymDense(N+1, nil)
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < N {
			JJ.SetSym(i, i+1, d1[i])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w := make([]float64, N+1)
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := VVr.At(0, i)
		w[i] = v * v * g0
	}
	W = utils.NewVector(N+1, w)
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto points on [-1,1] including
// both endpoints; N must be at least 1.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	x := make([]float64, N+1)
	x[0], x[N] = -1, 1
	if N == 1 {
		return utils.NewVector(N+1, x)
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	for i := 1; i < N; i++ {
		x[i] = xint.AtVec(i - 1)
	}
	X = utils.NewVector(N+1, x)
	return
}

// GaussJacobi01 maps an n point Gauss-Jacobi rule with weight
// (1-x)^alpha onto [0,1]. Exact for polynomial degree 2n-1.
func GaussJacobi01(alpha float64, n int) (x, w []float64) {
	X, W := JacobiGQ(alpha, 0, n-1)
	x = make([]float64, n)
	w = make([]float64, n)
	scale := 1. / math.Pow(2, alpha+1)
	for i := 0; i < n; i++ {
		x[i] = (1. + X.AtVec(i)) / 2.
		w[i] = W.AtVec(i) * scale
	}
	return
}

// GaussLobatto01 returns n Gauss-Lobatto-Legendre points on [0,1]
// including both endpoints; n must be at least 2.
func GaussLobatto01(n int) (x []float64) {
	X := JacobiGL(0, 0, n-1)
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = (1. + X.AtVec(i)) / 2.
	}
	return
}

// gamma0 is the total mass of the Jacobi weight on [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	return math.Pow(2, ab1) / ab1 *
		math.Gamma(alpha+1) * math.Gamma(beta+1) / math.Gamma(alpha+beta+1)
}
