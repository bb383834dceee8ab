package element

import (
	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// buildRT constructs the Raviart-Thomas space [P_{k-1}]^d + x Ptilde_{k-1}
// with facet normal moments against P_{k-1} and, from degree 2,
// interior moments against [P_{k-2}]^d.
func buildRT(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d   = t.Dim()
		np  = polyset.Dim(t, k)
		low = polyset.LowDegreeIndices(t, k, k-1)
		hi  = polyset.DegreeIndices(t, k, k-1)
		nv  = len(low)
		W   = utils.NewMatrix(d*nv+len(hi), d*np)
	)
	for c := 0; c < d; c++ {
		for i, idx := range low {
			W.Set(c*nv+i, c*np+idx, 1)
		}
	}
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
	)
	// The remaining rows are x_c p for p of exact degree k-1, expanded
	// against the set by quadrature.
	for i, pidx := range hi {
		for c := 0; c < d; c++ {
			for j := 0; j < np; j++ {
				var sum float64
				for q := 0; q < nq; q++ {
					sum += Wq[q] * Q.At(q, c) * phi.At(q, pidx) * phi.At(q, j)
				}
				W.Set(d*nv+i, c*np+j, sum)
			}
		}
	}
	fns, err := normalMomentDofs(top, t, k, k-1)
	if err != nil {
		return
	}
	if k >= 2 {
		var wts utils.Matrix
		if wts, err = orthonormalWeights(t, k-2, Q); err != nil {
			return
		}
		for c := 0; c < d; c++ {
			dir := make([]float64, d)
			dir[c] = 1
			fns = append(fns, directionalMoments(phi, Wq, wts, dir, d, 0)...)
		}
	}
	return newElement(RaviartThomas, t, k, k, []int{d}, W, fns)
}

// normalMomentDofs builds u.n moments against P_wdeg on every facet.
func normalMomentDofs(top *cell.Topology, t cell.Type, k, wdeg int) (fns []Functional, err error) {
	d := t.Dim()
	for f := 0; f < top.NumEntities(d-1); f++ {
		var (
			ref, mapped utils.Matrix
			wq          []float64
			et          cell.Type
			wts         utils.Matrix
			n           []float64
		)
		if ref, mapped, wq, err = entityRule(top, d-1, f, 2*k); err != nil {
			return
		}
		if et, err = top.SubEntityType(d-1, f); err != nil {
			return
		}
		if wts, err = orthonormalWeights(et, wdeg, ref); err != nil {
			return
		}
		var ptab []utils.Matrix
		if ptab, err = polyset.Tabulate(t, k, 0, mapped); err != nil {
			return
		}
		if n, err = top.FacetNormal(f); err != nil {
			return
		}
		fns = append(fns, directionalMoments(ptab[0], wq, wts, n, d-1, f)...)
	}
	return
}
