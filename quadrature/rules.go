package quadrature

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/utils"
)

// Rule produces a volume quadrature rule on the reference cell exact
// for polynomials of total degree m. Simplices and the pyramid use
// collapsed (Duffy) coordinates with Jacobi weights absorbing the
// coordinate Jacobian; boxes use tensor products.
func Rule(t cell.Type, m int) (X utils.Matrix, W []float64, err error) {
	if m < 0 {
		m = 0
	}
	n := m/2 + 1
	switch t {
	case cell.Point:
		X = utils.NewMatrix(1, 0)
		W = []float64{1}
	case cell.Interval:
		x, w := GaussJacobi01(0, n)
		X = utils.NewMatrix(n, 1, x)
		W = w
	case cell.Quadrilateral:
		x, w := GaussJacobi01(0, n)
		X = utils.NewMatrix(n*n, 2)
		W = make([]float64, n*n)
		var sk int
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				X.Set(sk, 0, x[i])
				X.Set(sk, 1, x[j])
				W[sk] = w[i] * w[j]
				sk++
			}
		}
	case cell.Hexahedron:
		x, w := GaussJacobi01(0, n)
		X = utils.NewMatrix(n*n*n, 3)
		W = make([]float64, n*n*n)
		var sk int
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					X.Set(sk, 0, x[i])
					X.Set(sk, 1, x[j])
					X.Set(sk, 2, x[k])
					W[sk] = w[i] * w[j] * w[k]
					sk++
				}
			}
		}
	case cell.Triangle:
		xa, wa := GaussJacobi01(0, n)
		xb, wb := GaussJacobi01(1, n)
		X = utils.NewMatrix(n*n, 2)
		W = make([]float64, n*n)
		var sk int
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				X.Set(sk, 0, xa[i]*(1-xb[j]))
				X.Set(sk, 1, xb[j])
				W[sk] = wa[i] * wb[j]
				sk++
			}
		}
	case cell.Tetrahedron:
		xa, wa := GaussJacobi01(0, n)
		xb, wb := GaussJacobi01(1, n)
		xc, wc := GaussJacobi01(2, n)
		X = utils.NewMatrix(n*n*n, 3)
		W = make([]float64, n*n*n)
		var sk int
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					X.Set(sk, 0, xa[i]*(1-xb[j])*(1-xc[k]))
					X.Set(sk, 1, xb[j]*(1-xc[k]))
					X.Set(sk, 2, xc[k])
					W[sk] = wa[i] * wb[j] * wc[k]
					sk++
				}
			}
		}
	case cell.Prism:
		XT, WT, _ := Rule(cell.Triangle, m)
		xz, wz := GaussJacobi01(0, n)
		nt, _ := XT.Dims()
		X = utils.NewMatrix(nt*n, 3)
		W = make([]float64, nt*n)
		var sk int
		for k := 0; k < n; k++ {
			for i := 0; i < nt; i++ {
				X.Set(sk, 0, XT.At(i, 0))
				X.Set(sk, 1, XT.At(i, 1))
				X.Set(sk, 2, xz[k])
				W[sk] = WT[i] * wz[k]
				sk++
			}
		}
	case cell.Pyramid:
		xa, wa := GaussJacobi01(0, n)
		xc, wc := GaussJacobi01(2, n)
		X = utils.NewMatrix(n*n*n, 3)
		W = make([]float64, n*n*n)
		var sk int
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					X.Set(sk, 0, xa[i]*(1-xc[k]))
					X.Set(sk, 1, xa[j]*(1-xc[k]))
					X.Set(sk, 2, xc[k])
					W[sk] = wa[i] * wa[j] * wc[k]
					sk++
				}
			}
		}
	default:
		err = fmt.Errorf("no quadrature rule for cell type %v", t)
	}
	return
}
