package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/lattice"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// bubbleFloor is the lowest degree with a nonempty bubble space.
func bubbleFloor(t cell.Type) int {
	switch t {
	case cell.Interval:
		return 2
	case cell.Triangle:
		return 3
	case cell.Tetrahedron:
		return 4
	}
	return -1
}

// buildBubble constructs the space b P_{k-m} with b the product of the
// barycentric coordinates, paired with point evaluations on the
// interior lattice.
func buildBubble(t cell.Type, k int) (e *Element, err error) {
	var (
		d     = t.Dim()
		m     = bubbleFloor(t)
		np    = polyset.Dim(t, k)
		sub   = polyset.LowDegreeIndices(t, k, k-m)
		ndofs = len(sub)
	)
	Q, Wq, err := quadrature.Rule(t, 2*k)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, k, 0, Q)
	if err != nil {
		return
	}
	var (
		phi   = tab[0]
		nq, _ = phi.Dims()
		W     = utils.NewMatrix(ndofs, np)
	)
	for i, pidx := range sub {
		for j := 0; j < np; j++ {
			var sum float64
			for q := 0; q < nq; q++ {
				b := 1.
				lam0 := 1.
				for c := 0; c < d; c++ {
					b *= Q.At(q, c)
					lam0 -= Q.At(q, c)
				}
				b *= lam0
				sum += Wq[q] * b * phi.At(q, pidx) * phi.At(q, j)
			}
			W.Set(i, j, sum)
		}
	}
	pts, err := lattice.Points(t, lattice.Equispaced, k, true)
	if err != nil {
		return
	}
	if len(pts) != ndofs {
		err = fmt.Errorf("bubble interior point count %d does not match space dimension %d",
			len(pts), ndofs)
		return
	}
	entities := make([][2]int, len(pts))
	for i := range entities {
		entities[i] = [2]int{d, 0}
	}
	fns, err := pointEvalFunctionals(t, k, pts, entities, 0, 1)
	if err != nil {
		return
	}
	return newElement(Bubble, t, k, k, nil, W, fns)
}

// buildCR constructs the lowest-order Crouzeix-Raviart element: P_1
// paired with evaluations at the facet midpoints.
func buildCR(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d        = t.Dim()
		np       = polyset.Dim(t, 1)
		pts      [][]float64
		entities [][2]int
	)
	for f := 0; f < top.NumEntities(d-1); f++ {
		var mid []float64
		if mid, err = top.EntityMidpoint(d-1, f); err != nil {
			return
		}
		pts = append(pts, mid)
		entities = append(entities, [2]int{d - 1, f})
	}
	fns, err := pointEvalFunctionals(t, 1, pts, entities, 0, 1)
	if err != nil {
		return
	}
	return newElement(CrouzeixRaviart, t, k, 1, nil, identitySpan(np, 1), fns)
}

// buildHermite constructs the cubic Hermite element: vertex values and
// gradients, with a centroid value on the triangle and face centroid
// values on the tetrahedron.
func buildHermite(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d  = t.Dim()
		np = polyset.Dim(t, 3)
		nv = len(top.Vertices)
		X  = utils.NewMatrix(nv, d)
	)
	for i, v := range top.Vertices {
		X.SetRow(i, v)
	}
	tab, err := polyset.Tabulate(t, 3, 1, X)
	if err != nil {
		return
	}
	var fns []Functional
	for i := 0; i < nv; i++ {
		row := make([]float64, np)
		for j := 0; j < np; j++ {
			row[j] = tab[0].At(i, j)
		}
		fns = append(fns, Functional{EntityDim: 0, EntityIndex: i, Coeffs: [][]float64{row}})
		for c := 0; c < d; c++ {
			grad := make([]float64, np)
			for j := 0; j < np; j++ {
				grad[j] = tab[1+c].At(i, j)
			}
			fns = append(fns, Functional{EntityDim: 0, EntityIndex: i, Coeffs: [][]float64{grad}})
		}
	}
	switch d {
	case 2:
		var mid []float64
		if mid, err = top.EntityMidpoint(2, 0); err != nil {
			return
		}
		var extra []Functional
		if extra, err = pointEvalFunctionals(t, 3, [][]float64{mid},
			[][2]int{{2, 0}}, 0, 1); err != nil {
			return
		}
		fns = append(fns, extra...)
	case 3:
		for f := 0; f < top.NumEntities(2); f++ {
			var mid []float64
			if mid, err = top.EntityMidpoint(2, f); err != nil {
				return
			}
			var extra []Functional
			if extra, err = pointEvalFunctionals(t, 3, [][]float64{mid},
				[][2]int{{2, f}}, 0, 1); err != nil {
				return
			}
			fns = append(fns, extra...)
		}
	}
	return newElement(Hermite, t, k, 3, nil, identitySpan(np, 1), fns)
}
