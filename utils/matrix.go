package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Row(i int) (V Vector) {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	for j := range data {
		data[j] = m.M.At(i, j)
	}
	V = NewVector(nc, data)
	return
}

func (m Matrix) SliceRows(I Index) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(len(I), nc)
	for iNew, i := range I {
		if i < 0 || i > nr-1 {
			err := fmt.Errorf("row index out of bounds: index = %d, max = %d", i, nr-1)
			panic(err)
		}
		R.M.SetRow(iNew, m.M.RawRowView(i))
	}
	return
}

// Inverse computes the inverse via LU factorization. A singular or
// near-singular matrix returns an error rather than a partial result.
func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("cannot invert a non-square %dx%d matrix", nr, nc)
		return
	}
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// OrthonormalizeRows reduces a set of candidate row vectors to an
// orthonormal spanning set using the SVD, dropping directions whose
// singular value falls below tol relative to the largest.
func (m Matrix) OrthonormalizeRows(tol float64) (R Matrix, rank int, err error) {
	var (
		svd   mat.SVD
		_, nc = m.Dims()
	)
	if ok := svd.Factorize(m.M, mat.SVDThin); !ok {
		err = fmt.Errorf("SVD factorization failed")
		return
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		err = fmt.Errorf("candidate span is empty")
		return
	}
	for _, s := range values {
		if s > values[0]*tol {
			rank++
		}
	}
	var V mat.Dense
	svd.VTo(&V)
	R = NewMatrix(rank, nc)
	for i := 0; i < rank; i++ {
		for j := 0; j < nc; j++ {
			R.M.Set(i, j, V.At(j, i))
		}
	}
	return
}
