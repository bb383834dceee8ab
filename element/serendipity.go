package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/lattice"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// serendipityMonomials lists the exponent tuples with superlinear
// degree at most k: the degree ignoring variables that enter linearly.
func serendipityMonomials(d, k int) (exps [][]int) {
	var (
		embedded = k + d - 1
		sdeg     = func(a []int) (s int) {
			for _, ai := range a {
				if ai >= 2 {
					s += ai
				}
			}
			return
		}
	)
	switch d {
	case 1:
		for a := 0; a <= k; a++ {
			exps = append(exps, []int{a})
		}
	case 2:
		for a := 0; a <= embedded; a++ {
			for b := 0; b <= embedded; b++ {
				if e := []int{a, b}; sdeg(e) <= k {
					exps = append(exps, e)
				}
			}
		}
	case 3:
		for a := 0; a <= embedded; a++ {
			for b := 0; b <= embedded; b++ {
				for c := 0; c <= embedded; c++ {
					if e := []int{a, b, c}; sdeg(e) <= k {
						exps = append(exps, e)
					}
				}
			}
		}
	}
	return
}

// buildSerendipity constructs the serendipity space on interval, quad
// and hex cells: superlinear monomials up to degree k, with vertex
// values, edge moments against P_{k-2}, face moments against P_{k-4}
// and interior moments against P_{k-6}.
func buildSerendipity(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d        = t.Dim()
		embedded = k + d - 1
		exps     = serendipityMonomials(d, k)
	)
	Q, _, err := quadrature.Rule(t, 2*embedded)
	if err != nil {
		return
	}
	var (
		nq, _ = Q.Dims()
		mono  = utils.NewMatrix(len(exps), nq)
	)
	for i, a := range exps {
		for q := 0; q < nq; q++ {
			v := 1.
			for c := 0; c < d; c++ {
				v *= utils.POW(Q.At(q, c), a[c])
			}
			mono.Set(i, q, v)
		}
	}
	W, err := projectOntoSet(t, embedded, mono)
	if err != nil {
		return
	}
	// Vertex values
	var (
		pts      [][]float64
		entities [][2]int
	)
	for i, v := range top.Vertices {
		pts = append(pts, append([]float64{}, v...))
		entities = append(entities, [2]int{0, i})
	}
	fns, err := pointEvalFunctionals(t, embedded, pts, entities, 0, 1)
	if err != nil {
		return
	}
	// Moments against total-degree spaces on the higher entities
	for dim := 1; dim <= d; dim++ {
		wdeg := k - 2*dim
		if wdeg < 0 {
			continue
		}
		for index := 0; index < top.NumEntities(dim); index++ {
			var mom []Functional
			if mom, err = totalDegreeMoments(top, t, embedded, dim, index, wdeg); err != nil {
				return
			}
			fns = append(fns, mom...)
		}
	}
	if len(fns) != len(exps) {
		err = fmt.Errorf("serendipity degree %d on %v: %d functionals for %d monomials",
			k, t, len(fns), len(exps))
		return
	}
	return newElement(Serendipity, t, k, embedded, nil, W, fns)
}

// totalDegreeMoments builds moments against the members of the
// entity's set with total degree at most wdeg.
func totalDegreeMoments(top *cell.Topology, t cell.Type, embedded, dim, index, wdeg int) (fns []Functional, err error) {
	ref, mapped, wq, err := entityRule(top, dim, index, embedded+wdeg)
	if err != nil {
		return
	}
	et, err := top.SubEntityType(dim, index)
	if err != nil {
		return
	}
	wtab, err := polyset.Tabulate(et, wdeg, 0, ref)
	if err != nil {
		return
	}
	var (
		keep  = polyset.LowDegreeIndices(et, wdeg, wdeg)
		nq, _ = ref.Dims()
		wts   = utils.NewMatrix(len(keep), nq)
	)
	for i, j := range keep {
		for q := 0; q < nq; q++ {
			wts.Set(i, q, wtab[0].At(q, j))
		}
	}
	ptab, err := polyset.Tabulate(t, embedded, 0, mapped)
	if err != nil {
		return
	}
	fns = directionalMoments(ptab[0], wq, wts, []float64{1}, dim, index)
	return
}

// buildDPC constructs the discontinuous P_k space on interval, quad
// and hex cells.
func buildDPC(t cell.Type, k int, variant DPCVariant) (e *Element, err error) {
	var (
		d    = t.Dim()
		np   = polyset.Dim(t, k)
		keep = polyset.LowDegreeIndices(t, k, k)
		W    = utils.NewMatrix(len(keep), np)
	)
	for i, j := range keep {
		W.Set(i, j, 1)
	}
	var fns []Functional
	switch variant {
	case DPCLegendre:
		for _, j := range keep {
			row := make([]float64, np)
			row[j] = 1
			fns = append(fns, Functional{EntityDim: d, EntityIndex: 0,
				Coeffs: [][]float64{row}})
		}
	default:
		// Point values on a simplex lattice placed inside the box
		lt := lattice.Equispaced
		if variant == DPCDiagonalGLL {
			lt = lattice.GLLIsaac
		}
		var simplex cell.Type
		switch d {
		case 1:
			simplex = cell.Interval
		case 2:
			simplex = cell.Triangle
		default:
			simplex = cell.Tetrahedron
		}
		var pts [][]float64
		if pts, err = lattice.Points(simplex, lt, k, false); err != nil {
			return
		}
		if len(pts) != len(keep) {
			err = fmt.Errorf("DPC point count %d does not match space dimension %d",
				len(pts), len(keep))
			return
		}
		entities := make([][2]int, len(pts))
		for i := range entities {
			entities[i] = [2]int{d, 0}
		}
		if fns, err = pointEvalFunctionals(t, k, pts, entities, 0, 1); err != nil {
			return
		}
	}
	return newElement(DPC, t, k, k, nil, W, fns)
}
