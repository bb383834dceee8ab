package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	var data []float64
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v", n, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	V = Vector{
		V:     mat.NewVecDense(n, data),
		DataP: data,
	}
	return
}

func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) AtVec(i int) float64 { return v.DataP[i] }

func (v Vector) Dot(a Vector) (d float64) {
	for i, val := range v.DataP {
		d += val * a.DataP[i]
	}
	return
}
