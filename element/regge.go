package element

import (
	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// symPairs lists the independent index pairs of a symmetric d x d
// matrix, diagonal first.
func symPairs(d int) (pairs [][2]int) {
	for a := 0; a < d; a++ {
		pairs = append(pairs, [2]int{a, a})
	}
	for a := 0; a < d; a++ {
		for b := a + 1; b < d; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}
	return
}

// symmetricSpan spans the symmetric matrix valued polynomials of
// degree k: one row per independent pair and scalar member.
func symmetricSpan(t cell.Type, k int) (W utils.Matrix) {
	var (
		d     = t.Dim()
		np    = polyset.Dim(t, k)
		pairs = symPairs(d)
	)
	W = utils.NewMatrix(len(pairs)*np, d*d*np)
	for pi, p := range pairs {
		a, b := p[0], p[1]
		for i := 0; i < np; i++ {
			row := pi*np + i
			W.Set(row, (a*d+b)*np+i, 1)
			if a != b {
				W.Set(row, (b*d+a)*np+i, 1)
			}
		}
	}
	return
}

// outerDir flattens v w^T into a direction over the d*d components.
func outerDir(v, w []float64) (dir []float64) {
	d := len(v)
	dir = make([]float64, d*d)
	for a := 0; a < d; a++ {
		for b := 0; b < d; b++ {
			dir[a*d+b] = v[a] * w[b]
		}
	}
	return
}

// buildRegge constructs the Regge element: symmetric matrix values
// with tangent-tangent edge moments, face tangent pair moments in 3D,
// and all-component interior moments.
func buildRegge(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	var (
		d  = t.Dim()
		vs = d * d
	)
	fns, err := symEdgeMoments(top, t, k, k, tangentTangent)
	if err != nil {
		return
	}
	if d == 3 && k >= 1 {
		var face []Functional
		if face, err = reggeFaceMoments(top, t, k); err != nil {
			return
		}
		fns = append(fns, face...)
	}
	interiorWdeg := k - 1
	if d == 3 {
		interiorWdeg = k - 2
	}
	if interiorWdeg >= 0 {
		var inner []Functional
		if inner, err = symInteriorMoments(t, k, interiorWdeg, vs); err != nil {
			return
		}
		fns = append(fns, inner...)
	}
	return newElement(Regge, t, k, k, []int{d, d}, symmetricSpan(t, k), fns)
}

// buildHHJ constructs the Hellan-Herrmann-Johnson element on the
// triangle: normal-normal edge moments plus interior moments.
func buildHHJ(t cell.Type, k int) (e *Element, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	fns, err := symEdgeMoments(top, t, k, k, normalNormal)
	if err != nil {
		return
	}
	if k >= 1 {
		var inner []Functional
		if inner, err = symInteriorMoments(t, k, k-1, 4); err != nil {
			return
		}
		fns = append(fns, inner...)
	}
	return newElement(HellanHerrmannJohnson, t, k, k, []int{2, 2}, symmetricSpan(t, k), fns)
}

type edgeDirFunc func(top *cell.Topology, ei int) ([]float64, error)

func tangentTangent(top *cell.Topology, ei int) (dir []float64, err error) {
	tang, err := top.EdgeTangent(ei)
	if err != nil {
		return
	}
	dir = outerDir(tang, tang)
	return
}

func normalNormal(top *cell.Topology, ei int) (dir []float64, err error) {
	n, err := top.FacetNormal(ei)
	if err != nil {
		return
	}
	dir = outerDir(n, n)
	return
}

// symEdgeMoments builds v^T u v moments against P_wdeg on every edge.
func symEdgeMoments(top *cell.Topology, t cell.Type, k, wdeg int, df edgeDirFunc) (fns []Functional, err error) {
	for ei := 0; ei < top.NumEntities(1); ei++ {
		var (
			ref, mapped utils.Matrix
			wq          []float64
			wts         utils.Matrix
			dir         []float64
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
		if dir, err = df(top, ei); err != nil {
			return
		}
		fns = append(fns, directionalMoments(ptab[0], wq, wts, dir, 1, ei)...)
	}
	return
}

// reggeFaceMoments pairs the face tangents (t1 t1, t2 t2, t1 t2)
// against P_{k-1} on each face of the tetrahedron.
func reggeFaceMoments(top *cell.Topology, t cell.Type, k int) (fns []Functional, err error) {
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
		if wts, err = orthonormalWeights(et, k-1, ref); err != nil {
			return
		}
		var ptab []utils.Matrix
		if ptab, err = polyset.Tabulate(t, k, 0, mapped); err != nil {
			return
		}
		if T, err = top.EntityTangents(2, f); err != nil {
			return
		}
		dirs := [][]float64{
			outerDir(T[0], T[0]),
			outerDir(T[1], T[1]),
			outerDir(T[0], T[1]),
		}
		for _, dir := range dirs {
			fns = append(fns, directionalMoments(ptab[0], wq, wts, dir, 2, f)...)
		}
	}
	return
}

// symInteriorMoments takes one moment per independent component pair
// and P_wdeg weight.
func symInteriorMoments(t cell.Type, k, wdeg, vs int) (fns []Functional, err error) {
	Q, Wq, err := quadrature.Rule(t, 2*k)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, k, 0, Q)
	if err != nil {
		return
	}
	wts, err := orthonormalWeights(t, wdeg, Q)
	if err != nil {
		return
	}
	d := t.Dim()
	for _, p := range symPairs(d) {
		dir := make([]float64, vs)
		dir[p[0]*d+p[1]] = 1
		if p[0] != p[1] {
			dir[p[1]*d+p[0]] = 1
		}
		fns = append(fns, directionalMoments(tab[0], Wq, wts, dir, d, 0)...)
	}
	return
}
