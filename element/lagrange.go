package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/lattice"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
)

func latticeType(v LagrangeVariant) lattice.Type {
	switch v {
	case VariantGLLIsaac:
		return lattice.GLLIsaac
	case VariantGLLWarped:
		return lattice.GLLWarped
	}
	return lattice.Equispaced
}

func buildLagrange(t cell.Type, degree int, variant LagrangeVariant) (e *Element, err error) {
	if t == cell.Point {
		W := identitySpan(1, 1)
		fns := []Functional{{EntityDim: 0, EntityIndex: 0, Coeffs: [][]float64{{1}}}}
		return newElement(Lagrange, t, degree, 0, nil, W, fns)
	}
	switch variant {
	case VariantLegendre:
		return buildLagrangeLegendre(t, degree)
	case VariantBernstein:
		return buildLagrangeBernstein(t, degree)
	}
	pts, entities, err := lagrangePoints(t, latticeType(variant), degree)
	if err != nil {
		return
	}
	np := polyset.Dim(t, degree)
	if len(pts) != np {
		err = fmt.Errorf("nodal point count %d does not match set dimension %d on %v",
			len(pts), np, t)
		return
	}
	fns, err := pointEvalFunctionals(t, degree, pts, entities, 0, 1)
	if err != nil {
		return
	}
	return newElement(Lagrange, t, degree, degree, nil, identitySpan(np, 1), fns)
}

// buildLagrangeLegendre uses moments against the orthonormal set
// itself, which makes the dual pairing the identity. All degrees of
// freedom live on the cell interior.
func buildLagrangeLegendre(t cell.Type, degree int) (e *Element, err error) {
	var (
		np  = polyset.Dim(t, degree)
		dim = t.Dim()
		fns = make([]Functional, np)
	)
	for i := 0; i < np; i++ {
		row := make([]float64, np)
		row[i] = 1
		fns[i] = Functional{EntityDim: dim, EntityIndex: 0, Coeffs: [][]float64{row}}
	}
	return newElement(Lagrange, t, degree, degree, nil, identitySpan(np, 1), fns)
}

// buildLagrangeBernstein uses moments against the Bernstein basis of
// the simplex.
func buildLagrangeBernstein(t cell.Type, degree int) (e *Element, err error) {
	switch t {
	case cell.Interval, cell.Triangle, cell.Tetrahedron:
	default:
		err = fmt.Errorf("%w: Bernstein basis needs a simplex, have %v",
			ErrIncompatibleVariant, t)
		return
	}
	Q, W, err := quadrature.Rule(t, 2*degree)
	if err != nil {
		return
	}
	tab, err := polyset.Tabulate(t, degree, 0, Q)
	if err != nil {
		return
	}
	var (
		phi    = tab[0]
		nq, np = phi.Dims()
		dim    = t.Dim()
		bvals  = utils.NewMatrix(np, nq)
	)
	exps := simplexExponents(dim, degree)
	for i, a := range exps {
		c := multinomial(degree, a)
		for q := 0; q < nq; q++ {
			lam0 := 1.
			for k := 0; k < dim; k++ {
				lam0 -= Q.At(q, k)
			}
			v := c * utils.POW(lam0, a[0])
			for k := 0; k < dim; k++ {
				v *= utils.POW(Q.At(q, k), a[k+1])
			}
			bvals.Set(i, q, v)
		}
	}
	fns := directionalMoments(phi, W, bvals, []float64{1}, dim, 0)
	return newElement(Lagrange, t, degree, degree, nil, identitySpan(np, 1), fns)
}

// simplexExponents lists the barycentric exponent tuples of total
// degree n on a dim-simplex, deterministic order.
func simplexExponents(dim, n int) (exps [][]int) {
	switch dim {
	case 1:
		for i := 0; i <= n; i++ {
			exps = append(exps, []int{n - i, i})
		}
	case 2:
		for i := 0; i <= n; i++ {
			for j := 0; j <= n-i; j++ {
				exps = append(exps, []int{n - i - j, j, i})
			}
		}
	case 3:
		for i := 0; i <= n; i++ {
			for j := 0; j <= n-i; j++ {
				for k := 0; k <= n-i-j; k++ {
					exps = append(exps, []int{n - i - j - k, k, j, i})
				}
			}
		}
	}
	return
}

func multinomial(n int, a []int) (c float64) {
	c = 1
	rem := n
	for _, ai := range a {
		// Running product of binomial(rem, ai)
		for i := 1; i <= ai; i++ {
			c = c * float64(rem-ai+i) / float64(i)
		}
		rem -= ai
	}
	return
}

// lagrangePoints generates the nodal points entity by entity:
// vertices, then the interiors of edges and faces with the lattice of
// each entity's own cell, then the cell interior.
func lagrangePoints(t cell.Type, lt lattice.Type, degree int) (pts [][]float64, entities [][2]int, err error) {
	top, err := cell.GetTopology(t)
	if err != nil {
		return
	}
	dim := t.Dim()
	if degree == 0 {
		var mid []float64
		if mid, err = top.EntityMidpoint(dim, 0); err != nil {
			return
		}
		pts = [][]float64{mid}
		entities = [][2]int{{dim, 0}}
		return
	}
	if t == cell.Pyramid {
		return pyramidLagrangePoints(lt, degree)
	}
	for i, v := range top.Vertices {
		pts = append(pts, append([]float64{}, v...))
		entities = append(entities, [2]int{0, i})
	}
	for d := 1; d <= dim; d++ {
		for index := 0; index < top.NumEntities(d); index++ {
			if d == dim && index == 0 {
				var inner [][]float64
				if inner, err = lattice.Points(t, lt, degree, true); err != nil {
					return
				}
				for _, p := range inner {
					pts = append(pts, p)
					entities = append(entities, [2]int{d, 0})
				}
				continue
			}
			var (
				et  cell.Type
				sub [][]float64
			)
			if et, err = top.SubEntityType(d, index); err != nil {
				return
			}
			if sub, err = lattice.Points(et, lt, degree, true); err != nil {
				return
			}
			for _, q := range sub {
				var x []float64
				if x, err = top.MapToEntity(d, index, q); err != nil {
					return
				}
				pts = append(pts, x)
				entities = append(entities, [2]int{d, index})
			}
		}
	}
	return
}

// pyramidLagrangePoints builds the pyramid lattice level by level and
// classifies each point by the entity its grid index lies on.
func pyramidLagrangePoints(lt lattice.Type, n int) (pts [][]float64, entities [][2]int, err error) {
	levels, err := lattice.Points(cell.Interval, lt, n, false)
	if err != nil {
		return
	}
	// Entity indices of the pyramid's edges and faces, by position on
	// the level grid.
	var (
		baseVerts    = [4]int{0, 1, 2, 3}
		baseEdges    = [4]int{0, 1, 3, 5} // y=0, x=0, x=1, y=1
		lateralEdges = [4]int{2, 4, 6, 7} // through vertices 0,1,2,3
		lateralFaces = [4]int{1, 2, 3, 4} // y=0, x=0, x=1, y=1
	)
	for k := 0; k <= n; k++ {
		var (
			z     = levels[k][0]
			scale = 1 - z
			m     = n - k
		)
		if m == 0 {
			pts = append(pts, []float64{0, 0, 1})
			entities = append(entities, [2]int{0, 4})
			continue
		}
		var grid [][]float64
		if grid, err = lattice.Points(cell.Interval, lt, m, false); err != nil {
			return
		}
		for iy := 0; iy <= m; iy++ {
			for ix := 0; ix <= m; ix++ {
				pts = append(pts, []float64{
					scale * grid[ix][0], scale * grid[iy][0], z})
				corner := -1
				switch {
				case ix == 0 && iy == 0:
					corner = 0
				case ix == m && iy == 0:
					corner = 1
				case ix == 0 && iy == m:
					corner = 2
				case ix == m && iy == m:
					corner = 3
				}
				var ent [2]int
				switch {
				case k == 0 && corner >= 0:
					ent = [2]int{0, baseVerts[corner]}
				case k == 0 && iy == 0:
					ent = [2]int{1, baseEdges[0]}
				case k == 0 && ix == 0:
					ent = [2]int{1, baseEdges[1]}
				case k == 0 && ix == m:
					ent = [2]int{1, baseEdges[2]}
				case k == 0 && iy == m:
					ent = [2]int{1, baseEdges[3]}
				case k == 0:
					ent = [2]int{2, 0}
				case corner >= 0:
					ent = [2]int{1, lateralEdges[corner]}
				case iy == 0:
					ent = [2]int{2, lateralFaces[0]}
				case ix == 0:
					ent = [2]int{2, lateralFaces[1]}
				case ix == m:
					ent = [2]int{2, lateralFaces[2]}
				case iy == m:
					ent = [2]int{2, lateralFaces[3]}
				default:
					ent = [2]int{3, 0}
				}
				entities = append(entities, ent)
			}
		}
	}
	return
}

// buildIso is a refined Lagrange stand-in: the nodal layout of degree
// 2k carried on the degree 2k set, reported at the macro degree k.
func buildIso(t cell.Type, degree int, variant LagrangeVariant) (e *Element, err error) {
	switch variant {
	case VariantLegendre, VariantBernstein:
		err = fmt.Errorf("%w: iso elements are nodal, variant %v", ErrIncompatibleVariant, variant)
		return
	}
	if e, err = buildLagrange(t, 2*degree, variant); err != nil {
		return
	}
	e.Family = Iso
	e.Degree = degree
	return
}
