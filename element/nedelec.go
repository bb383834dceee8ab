package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// buildN1E constructs the first-kind Nedelec space: [P_{k-1}]^d plus
// the degree-k homogeneous fields u with u.x = 0, with edge tangent
// moments and higher-entity interior moments.
func buildN1E(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	W, err := n1eSpan(t, k)
	if err != nil {
		return
	}
	fns, err := tangentMomentDofs(top, t, k, k-1)
	if err != nil {
		return
	}
	var (
		d = t.Dim()
	)
	Q, Wq, err := quadrature.Rule(t, 2*k)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, k, 0, Q)
	if err != nil {
		return
	}
	phi := tab[0]
	if d == 3 && k >= 2 {
		// Face moments against tangential [P_{k-2}]^2
		var face []Functional
		if face, err = faceTangentialMoments(top, t, k, k-2); err != nil {
			return
		}
		fns = append(fns, face...)
	}
	interiorFloor := 2
	if d == 3 {
		interiorFloor = 3
	}
	if k >= interiorFloor {
		var wts utils.Matrix
		if wts, err = orthonormalWeights(t, k-interiorFloor, Q); err != nil {
			return
		}
		for c := 0; c < d; c++ {
			dir := make([]float64, d)
			dir[c] = 1
			fns = append(fns, directionalMoments(phi, Wq, wts, dir, d, 0)...)
		}
	}
	return newElement(Nedelec1, t, k, k, []int{d}, W, fns)
}

// n1eSpan assembles the wcoeffs rows of the first-kind space.
func n1eSpan(t cell.Type, k int) (W utils.Matrix, err error) {
	var (
		d   = t.Dim()
		np  = polyset.Dim(t, k)
		low = polyset.LowDegreeIndices(t, k, k-1)
		hi  = polyset.DegreeIndices(t, k, k-1)
		top = polyset.DegreeIndices(t, k, k)
		nv  = len(low)
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
	)
	// Expand f against the set members listed in cols.
	expand := func(f func(q int) float64, cols []int) (row []float64) {
		row = make([]float64, np)
		for _, j := range cols {
			var sum float64
			for q := 0; q < nq; q++ {
				sum += Wq[q] * f(q) * phi.At(q, j)
			}
			row[j] = sum
		}
		return
	}
	if d == 2 {
		W = utils.NewMatrix(2*nv+len(hi), 2*np)
		for c := 0; c < 2; c++ {
			for i, idx := range low {
				W.Set(c*nv+i, c*np+idx, 1)
			}
		}
		// Rotated extras (-x2 p, x1 p)
		all := make([]int, np)
		for j := range all {
			all[j] = j
		}
		for i, pidx := range hi {
			r0 := expand(func(q int) float64 { return -Q.At(q, 1) * phi.At(q, pidx) }, all)
			r1 := expand(func(q int) float64 { return Q.At(q, 0) * phi.At(q, pidx) }, all)
			for j := 0; j < np; j++ {
				W.Set(2*nv+i, j, r0[j])
				W.Set(2*nv+i, np+j, r1[j])
			}
		}
		return
	}
	// 3D: candidates p (e_i cross x) for p of exact degree k-1,
	// expanded only against the exact degree-k members. Zeroing the
	// lower-degree components leaves the joint span unchanged since
	// [P_{k-1}]^3 is already present, and makes the top-degree parts
	// directly comparable for rank reduction.
	cand := utils.NewMatrix(3*len(hi), 3*np)
	eix := func(i, c, q int) float64 {
		// component c of e_i cross x at quadrature point q
		switch i {
		case 0:
			if c == 1 {
				return -Q.At(q, 2)
			} else if c == 2 {
				return Q.At(q, 1)
			}
		case 1:
			if c == 0 {
				return Q.At(q, 2)
			} else if c == 2 {
				return -Q.At(q, 0)
			}
		case 2:
			if c == 0 {
				return -Q.At(q, 1)
			} else if c == 1 {
				return Q.At(q, 0)
			}
		}
		return 0
	}
	for pi, pidx := range hi {
		for i := 0; i < 3; i++ {
			for c := 0; c < 3; c++ {
				row := expand(func(q int) float64 {
					return eix(i, c, q) * phi.At(q, pidx)
				}, top)
				for j := 0; j < np; j++ {
					cand.Set(3*pi+i, c*np+j, row[j])
				}
			}
		}
	}
	extra, rank, err := cand.OrthonormalizeRows(1.e-10)
	if err != nil {
		return
	}
	if rank != k*(k+2) {
		err = fmt.Errorf("unexpected extra space rank %d for N1E degree %d, want %d",
			rank, k, k*(k+2))
		return
	}
	W = utils.NewMatrix(3*nv+rank, 3*np)
	for c := 0; c < 3; c++ {
		for i, idx := range low {
			W.Set(c*nv+i, c*np+idx, 1)
		}
	}
	for i := 0; i < rank; i++ {
		for j := 0; j < 3*np; j++ {
			W.Set(3*nv+i, j, extra.At(i, j))
		}
	}
	return
}

// buildN2E constructs the second-kind Nedelec space, the full [P_k]^d,
// with edge tangent moments against P_k and interior moments against
// lower-degree Raviart-Thomas elements.
func buildN2E(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d  = t.Dim()
		np = polyset.Dim(t, k)
	)
	fns, err := tangentMomentDofs(top, t, k, k)
	if err != nil {
		return
	}
	if k >= 2 {
		if d == 2 {
			var sub *Element
			if sub, err = buildRT(t, k-1); err != nil {
				return
			}
			var inner []Functional
			if inner, err = interiorElementMoments(t, k, sub); err != nil {
				return
			}
			fns = append(fns, inner...)
		} else {
			var sub *Element
			if sub, err = buildRT(cell.Triangle, k-1); err != nil {
				return
			}
			for f := 0; f < top.NumEntities(2); f++ {
				var face []Functional
				if face, err = faceElementMoments(top, t, k, f, sub); err != nil {
					return
				}
				fns = append(fns, face...)
			}
			if k >= 3 {
				var subi *Element
				if subi, err = buildRT(t, k-2); err != nil {
					return
				}
				var inner []Functional
				if inner, err = interiorElementMoments(t, k, subi); err != nil {
					return
				}
				fns = append(fns, inner...)
			}
		}
	}
	return newElement(Nedelec2, t, k, k, []int{d}, identitySpan(np, d), fns)
}

// buildBDM constructs the Brezzi-Douglas-Marini space, the full
// [P_k]^d, with facet normal moments against P_k and interior moments
// against first-kind Nedelec elements of degree k-1.
func buildBDM(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d  = t.Dim()
		np = polyset.Dim(t, k)
	)
	fns, err := normalMomentDofs(top, t, k, k)
	if err != nil {
		return
	}
	if k >= 2 {
		var sub *Element
		if sub, err = buildN1E(t, k-1); err != nil {
			return
		}
		var inner []Functional
		if inner, err = interiorElementMoments(t, k, sub); err != nil {
			return
		}
		fns = append(fns, inner...)
	}
	return newElement(BDM, t, k, k, []int{d}, identitySpan(np, d), fns)
}

// tangentMomentDofs builds u.t moments against P_wdeg on every edge.
func tangentMomentDofs(top *cell.Topology, t cell.Type, k, wdeg int) (fns []Functional, err error) {
	for ei := 0; ei < top.NumEntities(1); ei++ {
		var (
			ref, mapped utils.Matrix
			wq          []float64
			wts         utils.Matrix
			tang        []float64
		)
		if ref, mapped, wq, err = entityRule(top, 1, ei, 2*k); err != nil {
			return
		}
		if wts, err = orthonormalWeights(cell.Interval, wdeg, ref); err != nil {
			return
		}
		var ptab []utils.Matrix
		if ptab, err = polyset.Tabulate(t, k, 0, mapped); err != nil {
			return
		}
		if tang, err = top.EdgeTangent(ei); err != nil {
			return
		}
		fns = append(fns, directionalMoments(ptab[0], wq, wts, tang, 1, ei)...)
	}
	return
}

// faceTangentialMoments builds moments of the two tangential
// components against P_wdeg on each triangular face.
func faceTangentialMoments(top *cell.Topology, t cell.Type, k, wdeg int) (fns []Functional, err error) {
	for f := 0; f < top.NumEntities(2); f++ {
		var (
			ref, mapped utils.Matrix
			wq          []float64
			et          cell.Type
			wts         utils.Matrix
			T           [][]float64
		)
		if ref, mapped, wq, err = entityRule(top, 2, f, 2*k); err != nil {
			return
		}
		if et, err = top.SubEntityType(2, f); err != nil {
			return
		}
		if wts, err = orthonormalWeights(et, wdeg, ref); err != nil {
			return
		}
		var ptab []utils.Matrix
		if ptab, err = polyset.Tabulate(t, k, 0, mapped); err != nil {
			return
		}
		if T, err = top.EntityTangents(2, f); err != nil {
			return
		}
		for _, tang := range T {
			fns = append(fns, directionalMoments(ptab[0], wq, wts, tang, 2, f)...)
		}
	}
	return
}

// interiorElementMoments builds moments against the basis of a vector
// element on the same cell.
func interiorElementMoments(t cell.Type, k int, sub *Element) (fns []Functional, err error) {
	Q, Wq, err := quadrature.Rule(t, k+sub.EmbeddedDegree)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, k, 0, Q)
	if err != nil {
		return
	}
	T, err := sub.Tabulate(Q)
	if err != nil {
		return
	}
	var (
		nq, _ = Q.Dims()
		d     = t.Dim()
		vwts  = make([][][]float64, sub.NumDofs())
	)
	for w := range vwts {
		vwts[w] = make([][]float64, d)
		for c := 0; c < d; c++ {
			vwts[w][c] = make([]float64, nq)
			for q := 0; q < nq; q++ {
				vwts[w][c][q] = T[c].At(q, w)
			}
		}
	}
	fns = vectorMoments(tab[0], Wq, vwts, d, 0)
	return
}

// faceElementMoments builds moments against a two-dimensional vector
// element carried on face f through the face tangents.
func faceElementMoments(top *cell.Topology, t cell.Type, k, f int, sub *Element) (fns []Functional, err error) {
	ref, mapped, wq, err := entityRule(top, 2, f, k+sub.EmbeddedDegree)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, k, 0, mapped)
	if err != nil {
		return
	}
	T, err := sub.Tabulate(ref)
	if err != nil {
		return
	}
	tangs, err := top.EntityTangents(2, f)
	if err != nil {
		return
	}
	var (
		nq, _ = ref.Dims()
		d     = t.Dim()
		vwts  = make([][][]float64, sub.NumDofs())
	)
	for w := range vwts {
		vwts[w] = make([][]float64, d)
		for c := 0; c < d; c++ {
			vwts[w][c] = make([]float64, nq)
			for q := 0; q < nq; q++ {
				var v float64
				for i := range tangs {
					v += T[i].At(q, w) * tangs[i][c]
				}
				vwts[w][c][q] = v
			}
		}
	}
	fns = vectorMoments(tab[0], wq, vwts, 2, f)
	return
}
