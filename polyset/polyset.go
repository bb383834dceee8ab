package polyset

import (
	"fmt"
	"math"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// Dim is the dimension of the degree-n orthonormal set on cell t:
// total degree n on simplices, tensor degree on boxes, and the
// standard mixed sets on prism and pyramid.
func Dim(t cell.Type, n int) int {
	if n < 0 {
		return 0
	}
	switch t {
	case cell.Point:
		return 1
	case cell.Interval:
		return n + 1
	case cell.Triangle:
		return (n + 1) * (n + 2) / 2
	case cell.Quadrilateral:
		return (n + 1) * (n + 1)
	case cell.Tetrahedron:
		return (n + 1) * (n + 2) * (n + 3) / 6
	case cell.Hexahedron:
		return (n + 1) * (n + 1) * (n + 1)
	case cell.Prism:
		return (n + 1) * (n + 1) * (n + 2) / 2
	case cell.Pyramid:
		return (n + 1) * (n + 2) * (2*n + 3) / 6
	}
	return 0
}

// memberDegrees lists the polynomial degree of each set member, in
// tabulation order. On simplices this is the total degree; on tensor
// cells the sum of the per-direction indices.
func memberDegrees(t cell.Type, n int) (degs []int) {
	switch t {
	case cell.Point:
		degs = []int{0}
	case cell.Interval:
		for i := 0; i <= n; i++ {
			degs = append(degs, i)
		}
	case cell.Triangle:
		for p := 0; p <= n; p++ {
			for q := 0; q <= n-p; q++ {
				degs = append(degs, p+q)
			}
		}
	case cell.Quadrilateral:
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				degs = append(degs, i+j)
			}
		}
	case cell.Tetrahedron:
		for p := 0; p <= n; p++ {
			for q := 0; q <= n-p; q++ {
				for r := 0; r <= n-p-q; r++ {
					degs = append(degs, p+q+r)
				}
			}
		}
	case cell.Hexahedron:
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				for k := 0; k <= n; k++ {
					degs = append(degs, i+j+k)
				}
			}
		}
	case cell.Prism:
		for p := 0; p <= n; p++ {
			for q := 0; q <= n-p; q++ {
				for k := 0; k <= n; k++ {
					degs = append(degs, p+q+k)
				}
			}
		}
	case cell.Pyramid:
		for p := 0; p <= n; p++ {
			for q := 0; q <= n; q++ {
				m := p
				if q > m {
					m = q
				}
				for r := 0; r <= n-m; r++ {
					degs = append(degs, m+r)
				}
			}
		}
	}
	return
}

// DegreeIndices returns the indices of set members with degree exactly
// m, in tabulation order.
func DegreeIndices(t cell.Type, n, m int) (I []int) {
	for i, d := range memberDegrees(t, n) {
		if d == m {
			I = append(I, i)
		}
	}
	return
}

// LowDegreeIndices returns the indices of members with degree at most
// m, in tabulation order.
func LowDegreeIndices(t cell.Type, n, m int) (I []int) {
	for i, d := range memberDegrees(t, n) {
		if d <= m {
			I = append(I, i)
		}
	}
	return
}

// Tabulate evaluates the orthonormal set of degree n at the points X
// (rows are points, columns are coordinates). The returned slice holds
// the value table first, followed by one first-derivative table per
// coordinate direction when nderiv is 1. Each table is npoints x Dim.
//
// The sets are L2-orthogonal by construction (collapsed-coordinate
// Jacobi products) and normalized against the cell quadrature rule, so
// the same scaling is reproduced on every call.
func Tabulate(t cell.Type, n, nderiv int, X utils.Matrix) (tab []utils.Matrix, err error) {
	if n < 0 {
		err = fmt.Errorf("polyset degree must be non-negative, have %d", n)
		return
	}
	if nderiv < 0 || nderiv > 1 {
		err = fmt.Errorf("polyset tabulation supports derivative order 0 or 1, have %d", nderiv)
		return
	}
	tab, err = tabulateRaw(t, n, nderiv, X)
	if err != nil {
		return
	}
	norms, err := rawNorms(t, n)
	if err != nil {
		return
	}
	for _, T := range tab {
		nr, nc := T.Dims()
		for j := 0; j < nc; j++ {
			s := 1. / norms[j]
			for i := 0; i < nr; i++ {
				T.Set(i, j, T.At(i, j)*s)
			}
		}
	}
	return
}

func tabulateRaw(t cell.Type, n, nderiv int, X utils.Matrix) (tab []utils.Matrix, err error) {
	var (
		np, nc = X.Dims()
		dim    = t.Dim()
		nd     = Dim(t, n)
	)
	if nc != dim {
		err = fmt.Errorf("point dimension %d does not match cell %v", nc, t)
		return
	}
	ntab := 1
	if nderiv == 1 {
		ntab += dim
	}
	tab = make([]utils.Matrix, ntab)
	for i := range tab {
		tab[i] = utils.NewMatrix(np, nd)
	}
	for i := 0; i < np; i++ {
		x := make([]float64, dim)
		for k := 0; k < dim; k++ {
			x[k] = X.At(i, k)
		}
		var rows [][]float64 // value row then derivative rows
		switch t {
		case cell.Point:
			rows = [][]float64{{1}}
		case cell.Interval:
			rows = rawInterval(n, x[0])
		case cell.Triangle:
			rows = rawTriangle(n, x[0], x[1])
		case cell.Quadrilateral:
			rows = rawQuad(n, x[0], x[1])
		case cell.Tetrahedron:
			rows = rawTet(n, x[0], x[1], x[2])
		case cell.Hexahedron:
			rows = rawHex(n, x[0], x[1], x[2])
		case cell.Prism:
			rows = rawPrism(n, x[0], x[1], x[2])
		case cell.Pyramid:
			rows = rawPyramid(n, x[0], x[1], x[2])
		default:
			err = fmt.Errorf("no polynomial set for cell type %v", t)
			return
		}
		for k := 0; k < ntab; k++ {
			tab[k].SetRow(i, rows[k])
		}
	}
	return
}

// rawNorms integrates the squares of the unnormalized set members with
// a rule exact for their pairwise products.
func rawNorms(t cell.Type, n int) (norms []float64, err error) {
	Q, W, err := quadrature.Rule(t, 2*n)
	if err != nil {
		return
	}
	tab, err := tabulateRaw(t, n, 0, Q)
	if err != nil {
		return
	}
	var (
		nq, nd = tab[0].Dims()
	)
	norms = make([]float64, nd)
	for j := 0; j < nd; j++ {
		var sum float64
		for i := 0; i < nq; i++ {
			v := tab[0].At(i, j)
			sum += W[i] * v * v
		}
		if sum <= 0 {
			err = fmt.Errorf("degenerate normalization for member %d of %v degree %d", j, t, n)
			return
		}
		norms[j] = math.Sqrt(sum)
	}
	return
}
