package lattice

import (
	"math"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// Warp & Blend node construction after Hesthaven and Warburton: each
// edge of the simplex contributes a displacement that pulls the
// equispaced lattice toward Gauss-Lobatto spacing, blended into the
// interior with the barycentric coordinates of the opposite vertices.
// On the edges themselves the blend cancels the warp's pole exactly,
// so edge points land on the 1D Gauss-Lobatto nodes.

// Optimized blending constants, indexed by degree.
var (
	alphaTri = []float64{
		0.0000, 0.0000, 1.4152, 0.1001, 0.2751,
		0.9800, 1.0999, 1.2832, 1.3648, 1.4773,
		1.4959, 1.5743, 1.5770, 1.6223, 1.6258,
	}
	alphaTet = []float64{
		0.0000, 0.0000, 0.0000, 0.1002, 1.1332,
		1.5608, 1.3413, 1.2577, 1.1603, 1.10153,
		0.6080, 0.4523, 0.8856, 0.8717, 0.9655,
	}
)

func warpAlpha(t cell.Type, n int) float64 {
	switch t {
	case cell.Triangle:
		if n <= len(alphaTri) {
			return alphaTri[n-1]
		}
		return 5. / 3.
	case cell.Tetrahedron:
		if n < len(alphaTet) {
			return alphaTet[n]
		}
	}
	return 1.
}

// warpShift interpolates the node displacement taking the equispaced
// distribution on [-1,1] to Gauss-Lobatto, as a degree-n polynomial in
// barycentric Lagrange form on the equispaced nodes.
type warpShift struct {
	n    int
	req  []float64
	disp []float64
	wts  []float64
}

func newWarpShift(n int) (ws *warpShift) {
	ws = &warpShift{
		n:    n,
		req:  make([]float64, n+1),
		disp: make([]float64, n+1),
		wts:  make([]float64, n+1),
	}
	gll := quadrature.GaussLobatto01(n + 1)
	for i := 0; i <= n; i++ {
		ws.req[i] = -1 + 2*float64(i)/float64(n)
		ws.disp[i] = (2*gll[i] - 1) - ws.req[i]
		ws.wts[i] = 1
	}
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			if i != j {
				ws.wts[j] /= ws.req[j] - ws.req[i]
			}
		}
	}
	return
}

// at evaluates the displacement at r in [-1,1], divided by the edge
// blend factor (1-r^2). The endpoints carry no displacement.
func (ws *warpShift) at(r float64) (w float64) {
	if ws.n < 2 || math.Abs(r) > 1-1.e-10 {
		return 0
	}
	var num, den float64
	for j := 0; j <= ws.n; j++ {
		d := r - ws.req[j]
		if math.Abs(d) < 1.e-14 {
			return ws.disp[j] / (1 - r*r)
		}
		num += ws.wts[j] * ws.disp[j] / d
		den += ws.wts[j] / d
	}
	w = num / den / (1 - r*r)
	return
}

// warpSimplex displaces the lattice points in place. Each point is
// moved along every edge direction by the warp at the difference of
// the edge's barycentric coordinates, blended by the product of the
// remaining coordinates.
func warpSimplex(t cell.Type, n int, pts [][]float64) (err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d     = t.Dim()
		nv    = d + 1
		ws    = newWarpShift(n)
		alpha = warpAlpha(t, n)
		lam   = make([]float64, nv)
		delta = make([]float64, d)
	)
	for _, p := range pts {
		lam[0] = 1
		for c := 0; c < d; c++ {
			lam[0] -= p[c]
			lam[c+1] = p[c]
			delta[c] = 0
		}
		for a := 0; a < nv; a++ {
			for b := a + 1; b < nv; b++ {
				w := ws.at(lam[b] - lam[a])
				if w == 0 {
					continue
				}
				blend := 4 * lam[a] * lam[b]
				for k := 0; k < nv; k++ {
					if k != a && k != b {
						blend *= 1 + utils.POW(alpha*lam[k], 2)
					}
				}
				for c := 0; c < d; c++ {
					delta[c] += 0.5 * blend * w *
						(top.Vertices[b][c] - top.Vertices[a][c])
				}
			}
		}
		for c := 0; c < d; c++ {
			p[c] += delta[c]
		}
	}
	return
}

// isaacSimplex builds the recursively defined Gauss-Lobatto simplex
// lattice: vertices, then the interiors of each boundary entity with
// the lattice of the entity's own cell, then the cell interior as a
// degree n-d-1 lattice shrunk toward the centroid.
func isaacSimplex(t cell.Type, n int, interior bool) (pts [][]float64, err error) {
	if interior {
		return isaacInterior(t, n)
	}
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	d := t.Dim()
	for _, v := range top.Vertices {
		pts = append(pts, append([]float64{}, v...))
	}
	for dim := 1; dim < d; dim++ {
		for index := 0; index < top.NumEntities(dim); index++ {
			var (
				et  cell.Type
				sub [][]float64
			)
			if et, err = top.SubEntityType(dim, index); err != nil {
				return
			}
			if sub, err = Points(et, GLLIsaac, n, true); err != nil {
				return
			}
			for _, q := range sub {
				var x []float64
				if x, err = top.MapToEntity(dim, index, q); err != nil {
					return
				}
				pts = append(pts, x)
			}
		}
	}
	var inner [][]float64
	if inner, err = isaacInterior(t, n); err != nil {
		return
	}
	pts = append(pts, inner...)
	return
}

// isaacInterior shrinks the full degree n-d-1 lattice barycentrically
// into the interior.
func isaacInterior(t cell.Type, n int) (pts [][]float64, err error) {
	var (
		d = t.Dim()
		m = n - d - 1
	)
	if m < 0 {
		return
	}
	base, err := Points(t, GLLIsaac, m, false)
	if err != nil {
		return
	}
	var (
		fm = float64(m)
		fn = float64(n)
	)
	for _, q := range base {
		x := make([]float64, d)
		for c := 0; c < d; c++ {
			x[c] = (q[c]*fm + 1) / fn
		}
		pts = append(pts, x)
	}
	return
}
