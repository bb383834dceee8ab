package element

import (
	"fmt"

	"github.com/notargets/gofel/utils"
)

// Functional is one degree of freedom: a linear map on the bounding
// polynomial set, stored by its action on each orthonormal member.
// Coeffs holds one row per value component of the element.
type Functional struct {
	EntityDim   int
	EntityIndex int
	Coeffs      [][]float64
}

// dualMatrix flattens the functionals into the ndofs x vs*np pairing
// matrix, component blocks concatenated.
func dualMatrix(fns []Functional, vs, np int) (D utils.Matrix, err error) {
	D = utils.NewMatrix(len(fns), vs*np)
	for i, f := range fns {
		if len(f.Coeffs) != vs {
			err = fmt.Errorf("functional %d has %d component rows, want %d",
				i, len(f.Coeffs), vs)
			return
		}
		for c := 0; c < vs; c++ {
			if len(f.Coeffs[c]) != np {
				err = fmt.Errorf("functional %d component %d has %d coefficients, want %d",
					i, c, len(f.Coeffs[c]), np)
				return
			}
			for j := 0; j < np; j++ {
				D.Set(i, c*np+j, f.Coeffs[c][j])
			}
		}
	}
	return
}

// solveDual computes the coefficient matrix C with l_j(u_i) = delta_ij
// from the span rows W and the functional rows D, both expressed
// against the orthonormal set: C = (W D^T)^{-1} W.
func solveDual(W, D utils.Matrix) (C utils.Matrix, err error) {
	var (
		nw, wc = W.Dims()
		nd, dc = D.Dims()
	)
	if wc != dc {
		err = fmt.Errorf("span width %d does not match functional width %d", wc, dc)
		return
	}
	if nw != nd {
		err = fmt.Errorf("span dimension %d does not match functional count %d", nw, nd)
		return
	}
	M := W.Mul(D.Transpose())
	Minv, err := M.Inverse()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrSingularDualSystem, err)
		return
	}
	C = Minv.Mul(W)
	return
}
