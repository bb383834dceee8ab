package lattice

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/quadrature"
)

// Type selects the point distribution of a lattice.
type Type uint8

const (
	Equispaced Type = iota
	// GLLWarped warps an equispaced simplex lattice with the
	// Warp & Blend construction so that boundary edges carry
	// Gauss-Lobatto points. Box cells use tensor Gauss-Lobatto grids.
	GLLWarped
	// GLLIsaac builds simplex lattices recursively: boundary entities
	// carry lower-dimensional lattices of the same kind and the
	// interior is a shrunk copy of a lower-degree lattice.
	GLLIsaac
)

func (lt Type) String() string {
	switch lt {
	case Equispaced:
		return "equispaced"
	case GLLWarped:
		return "gll_warped"
	case GLLIsaac:
		return "gll_isaac"
	}
	return fmt.Sprintf("lattice.Type(%d)", uint8(lt))
}

// Points returns the degree-n lattice on cell t, one point per row.
// With interior set, only points off the cell boundary are returned,
// which may be none. Degree 0 yields the cell midpoint in both modes.
func Points(t cell.Type, lt Type, n int, interior bool) (pts [][]float64, err error) {
	if n < 0 {
		err = fmt.Errorf("lattice degree must be non-negative, have %d", n)
		return
	}
	if t == cell.Point {
		err = fmt.Errorf("no lattice on a point cell")
		return
	}
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	if n == 0 {
		var mid []float64
		mid, err = top.EntityMidpoint(t.Dim(), 0)
		if err != nil {
			return
		}
		pts = [][]float64{mid}
		return
	}
	switch t {
	case cell.Interval:
		pts = wrap1(pts1D(lt, n, interior))
	case cell.Triangle, cell.Tetrahedron:
		pts, err = simplexPoints(t, lt, n, interior)
	case cell.Quadrilateral:
		x := pts1D(lt, n, interior)
		for _, y := range x {
			for _, xx := range x {
				pts = append(pts, []float64{xx, y})
			}
		}
	case cell.Hexahedron:
		x := pts1D(lt, n, interior)
		for _, z := range x {
			for _, y := range x {
				for _, xx := range x {
					pts = append(pts, []float64{xx, y, z})
				}
			}
		}
	case cell.Prism:
		var tri [][]float64
		tri, err = simplexPoints(cell.Triangle, lt, n, interior)
		if err != nil {
			return
		}
		for _, p := range tri {
			for _, z := range pts1D(lt, n, interior) {
				pts = append(pts, []float64{p[0], p[1], z})
			}
		}
	case cell.Pyramid:
		pts = pyramidPoints(lt, n, interior)
	default:
		err = fmt.Errorf("no lattice for cell type %v", t)
	}
	return
}

// pts1D returns the 1D lattice on [0,1], ascending. Both Gauss-Lobatto
// kinds coincide in one dimension.
func pts1D(lt Type, n int, interior bool) (x []float64) {
	if lt == Equispaced {
		x = make([]float64, n+1)
		for i := 0; i <= n; i++ {
			x[i] = float64(i) / float64(n)
		}
	} else {
		x = quadrature.GaussLobatto01(n + 1)
	}
	if interior {
		x = x[1:n]
	}
	return
}

func wrap1(x []float64) (pts [][]float64) {
	for _, v := range x {
		pts = append(pts, []float64{v})
	}
	return
}

// simplexPoints builds the triangle or tetrahedron lattice.
func simplexPoints(t cell.Type, lt Type, n int, interior bool) (pts [][]float64, err error) {
	if lt == GLLIsaac {
		return isaacSimplex(t, n, interior)
	}
	pts = equiSimplex(t, n, interior)
	if lt == GLLWarped {
		err = warpSimplex(t, n, pts)
	}
	return
}

// equiSimplex lists the equispaced lattice tuples, x varying fastest.
func equiSimplex(t cell.Type, n int, interior bool) (pts [][]float64) {
	var (
		fn = float64(n)
		lo = 0
	)
	if interior {
		lo = 1
	}
	switch t {
	case cell.Triangle:
		for iy := lo; iy <= n-2*lo; iy++ {
			for ix := lo; ix <= n-iy-lo; ix++ {
				pts = append(pts, []float64{float64(ix) / fn, float64(iy) / fn})
			}
		}
	case cell.Tetrahedron:
		for iz := lo; iz <= n-3*lo; iz++ {
			for iy := lo; iy <= n-iz-2*lo; iy++ {
				for ix := lo; ix <= n-iz-iy-lo; ix++ {
					pts = append(pts, []float64{
						float64(ix) / fn, float64(iy) / fn, float64(iz) / fn})
				}
			}
		}
	}
	return
}

// pyramidPoints builds the pyramid lattice level by level: each
// horizontal section at height z is a square grid scaled by 1-z, one
// degree lower per level, ending in the apex.
func pyramidPoints(lt Type, n int, interior bool) (pts [][]float64) {
	levels := pts1D(lt, n, false)
	lo, hi := 0, n
	if interior {
		lo, hi = 1, n-1
	}
	for k := lo; k <= hi; k++ {
		var (
			z     = levels[k]
			scale = 1 - z
			m     = n - k
		)
		if m == 0 {
			pts = append(pts, []float64{0, 0, 1})
			continue
		}
		var grid []float64
		if interior {
			if m < 2 {
				continue
			}
			grid = pts1D(lt, m, true)
		} else {
			grid = pts1D(lt, m, false)
		}
		for _, y := range grid {
			for _, x := range grid {
				pts = append(pts, []float64{scale * x, scale * y, z})
			}
		}
	}
	return
}
