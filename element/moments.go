package element

import (
	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

// entityRule maps a quadrature rule of the sub-entity's cell into the
// parent cell. The returned weights are those of the reference entity;
// moment functionals are insensitive to the constant Jacobian factor.
func entityRule(top *cell.Topology, d, index, m int) (ref, mapped utils.Matrix, w []float64, err error) {
	et, err := top.SubEntityType(d, index)
	if err != nil {
		return
	}
	ref, w, err = quadrature.Rule(et, m)
	if err != nil {
		return
	}
	var (
		nq, _ = ref.Dims()
	)
	if d == top.Dim {
		mapped = ref
		return
	}
	mapped = utils.NewMatrix(nq, top.Dim)
	for q := 0; q < nq; q++ {
		p := make([]float64, d)
		for k := 0; k < d; k++ {
			p[k] = ref.At(q, k)
		}
		var x []float64
		if x, err = top.MapToEntity(d, index, p); err != nil {
			return
		}
		mapped.SetRow(q, x)
	}
	return
}

// orthonormalWeights tabulates the orthonormal set of the entity cell
// up to degree wdeg at the reference quadrature points, one weight
// function per column-transposed row.
func orthonormalWeights(et cell.Type, wdeg int, ref utils.Matrix) (wts utils.Matrix, err error) {
	if et == cell.Point {
		nq, _ := ref.Dims()
		wts = utils.NewMatrix(1, nq)
		for q := 0; q < nq; q++ {
			wts.Set(0, q, 1)
		}
		return
	}
	tab, err := polyset.Tabulate(et, wdeg, 0, ref)
	if err != nil {
		return
	}
	wts = tab[0].Transpose()
	return
}

// directionalMoments builds one functional per weight row w:
//
//	l(u) = integral over the entity of w * (u . dir)
//
// against the cell's orthonormal set phi tabulated at the mapped
// quadrature points. For scalar elements dir is the single entry {1}.
func directionalMoments(phi utils.Matrix, W []float64, wts utils.Matrix,
	dir []float64, d, index int) (fns []Functional) {
	var (
		nw, nq = wts.Dims()
		_, np  = phi.Dims()
		vs     = len(dir)
	)
	for w := 0; w < nw; w++ {
		coeffs := make([][]float64, vs)
		for c := 0; c < vs; c++ {
			coeffs[c] = make([]float64, np)
			if dir[c] == 0 {
				continue
			}
			for j := 0; j < np; j++ {
				var sum float64
				for q := 0; q < nq; q++ {
					sum += W[q] * wts.At(w, q) * phi.At(q, j)
				}
				coeffs[c][j] = dir[c] * sum
			}
		}
		fns = append(fns, Functional{EntityDim: d, EntityIndex: index, Coeffs: coeffs})
	}
	return
}

// vectorMoments builds one functional per vector-valued weight:
//
//	l(u) = integral over the entity of v . u
//
// with vwts[w][c] holding component c of weight w at each quadrature
// point.
func vectorMoments(phi utils.Matrix, W []float64, vwts [][][]float64,
	d, index int) (fns []Functional) {
	var (
		nq, np = phi.Dims()
	)
	for _, v := range vwts {
		coeffs := make([][]float64, len(v))
		for c := range v {
			coeffs[c] = make([]float64, np)
			for j := 0; j < np; j++ {
				var sum float64
				for q := 0; q < nq; q++ {
					sum += W[q] * v[c][q] * phi.At(q, j)
				}
				coeffs[c][j] = sum
			}
		}
		fns = append(fns, Functional{EntityDim: d, EntityIndex: index, Coeffs: coeffs})
	}
	return
}

// pointEvalFunctionals builds point evaluations of one value component
// at the given points.
func pointEvalFunctionals(t cell.Type, embedded int, pts [][]float64,
	entities [][2]int, comp, vs int) (fns []Functional, err error) {
	if len(pts) == 0 {
		return
	}
	var (
		dim = t.Dim()
		np  = polyset.Dim(t, embedded)
		X   = utils.NewMatrix(len(pts), dim)
	)
	for i, p := range pts {
		X.SetRow(i, p)
	}
	tab, err := polyset.Tabulate(t, embedded, 0, X)
	if err != nil {
		return
	}
	for i := range pts {
		coeffs := make([][]float64, vs)
		for c := 0; c < vs; c++ {
			coeffs[c] = make([]float64, np)
		}
		for j := 0; j < np; j++ {
			coeffs[comp][j] = tab[0].At(i, j)
		}
		fns = append(fns, Functional{
			EntityDim:   entities[i][0],
			EntityIndex: entities[i][1],
			Coeffs:      coeffs,
		})
	}
	return
}

// projectOntoSet expands functions given by their values at the
// degree 2*embedded quadrature points in the orthonormal set. fvals is
// nf x nq; the result is nf x np.
func projectOntoSet(t cell.Type, embedded int, fvals utils.Matrix) (C utils.Matrix, err error) {
	Q, W, err := quadrature.Rule(t, 2*embedded)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, embedded, 0, Q)
	if err != nil {
		return
	}
	var (
		phi    = tab[0]
		nf, nq = fvals.Dims()
		_, np  = phi.Dims()
	)
	C = utils.NewMatrix(nf, np)
	for f := 0; f < nf; f++ {
		for j := 0; j < np; j++ {
			var sum float64
			for q := 0; q < nq; q++ {
				sum += W[q] * fvals.At(f, q) * phi.At(q, j)
			}
			C.Set(f, j, sum)
		}
	}
	return
}

// identitySpan is the wcoeffs of a full polynomial set: vs stacked
// identity blocks, one per value component.
func identitySpan(np, vs int) (W utils.Matrix) {
	W = utils.NewMatrix(vs*np, vs*np)
	for i := 0; i < vs*np; i++ {
		W.Set(i, i, 1)
	}
	return
}
