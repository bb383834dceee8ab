package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	Ainv, err := A.Inverse()
	assert.NoError(t, err)
	I := A.Mul(Ainv)
	assert.True(t, Near(I.At(0, 0), 1))
	assert.True(t, Near(I.At(1, 1), 1))
	assert.InDelta(t, 0, I.At(0, 1), 1.e-12)
	assert.InDelta(t, 0, I.At(1, 0), 1.e-12)

	// Singular matrix must fail, not return garbage
	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err = S.Inverse()
	assert.Error(t, err)
}

func TestMatrixOps(t *testing.T) {
	A := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	AT := A.Transpose()
	nr, nc := AT.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 4., AT.At(0, 1))

	B := A.Copy().Scale(2)
	assert.Equal(t, 2., B.At(0, 0))
	assert.Equal(t, 1., A.At(0, 0))

	R := A.SliceRows(Index{1})
	assert.Equal(t, 4., R.At(0, 0))
}

func TestOrthonormalizeRows(t *testing.T) {
	// Three candidate rows spanning a 2D subspace
	A := NewMatrix(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		1, 1, 0,
	})
	R, rank, err := A.OrthonormalizeRows(1.e-12)
	assert.NoError(t, err)
	assert.Equal(t, 2, rank)
	for i := 0; i < rank; i++ {
		assert.True(t, Near(R.Row(i).Dot(R.Row(i)), 1))
	}
	assert.InDelta(t, 0, R.Row(0).Dot(R.Row(1)), 1.e-12)
}
