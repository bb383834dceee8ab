package element

import (
	"errors"
	"testing"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isCreationError(err error) bool {
	return errors.Is(err, ErrInvalidDegree) ||
		errors.Is(err, ErrUnsupportedCombination) ||
		errors.Is(err, ErrIncompatibleVariant)
}

// Every family, cell, degree and variant combination must either build
// an element reporting the requested degree or fail with a request
// classification error. A singular dual system anywhere here is a bug.
func TestCreateSmoke(t *testing.T) {
	variants := []struct {
		lv LagrangeVariant
		dv DPCVariant
	}{
		{VariantGLLIsaac, DPCUnset},
		{VariantGLLWarped, DPCUnset},
		{VariantLegendre, DPCUnset},
		{VariantBernstein, DPCUnset},
		{VariantUnset, DPCDiagonalGLL},
		{VariantUnset, DPCLegendre},
		{VariantLegendre, DPCLegendre},
	}
	for _, f := range AllFamilies() {
		for _, ct := range cell.AllTypes() {
			for degree := -1; degree <= 4; degree++ {
				for _, v := range variants {
					for _, disc := range []bool{false, true} {
						e, err := CreateElement(f, ct, degree, v.lv, v.dv, disc)
						if err != nil {
							assert.True(t, isCreationError(err),
								"%v %v degree %d %v/%v: unexpected error %v",
								f, ct, degree, v.lv, v.dv, err)
							continue
						}
						assert.Equal(t, degree, e.Degree,
							"%v %v degree %d %v/%v", f, ct, degree, v.lv, v.dv)
						assert.Equal(t, ct, e.Cell)
						assert.Equal(t, f, e.Family)
						assert.Equal(t, disc, e.Discontinuous)
					}
				}
			}
		}
	}
}

func TestFamilyClosure(t *testing.T) {
	want := []string{"P", "RT", "BDM", "N1E", "N2E", "Regge", "HHJ",
		"bubble", "serendipity", "DPC", "CR", "Hermite", "iso", "custom"}
	fams := AllFamilies()
	require.Len(t, fams, len(want))
	for i, f := range fams {
		assert.Equal(t, want[i], f.String())
		rt, err := FamilyFromString(want[i])
		require.NoError(t, err)
		assert.Equal(t, f, rt)
	}
	_, err := FamilyFromString("nosuch")
	assert.Error(t, err)
}

func TestHexDegree7Isaac(t *testing.T) {
	e, err := CreateElement(Lagrange, cell.Hexahedron, 7, VariantGLLIsaac, DPCUnset, false)
	require.NoError(t, err)
	assert.Equal(t, 512, e.NumDofs())
	assert.Equal(t, 7, e.Degree)
}

func samplePoints(ct cell.Type) utils.Matrix {
	switch ct.Dim() {
	case 1:
		return utils.NewMatrix(3, 1, []float64{0.12, 0.41, 0.87})
	case 2:
		return utils.NewMatrix(3, 2, []float64{0.12, 0.2, 0.41, 0.17, 0.23, 0.51})
	default:
		return utils.NewMatrix(3, 3, []float64{
			0.12, 0.2, 0.31, 0.41, 0.17, 0.22, 0.11, 0.23, 0.51})
	}
}

// Nodal Lagrange bases reproduce constants.
func TestLagrangePartitionOfUnity(t *testing.T) {
	cases := []struct {
		ct     cell.Type
		degree int
		lv     LagrangeVariant
	}{
		{cell.Interval, 4, VariantGLLWarped},
		{cell.Triangle, 3, VariantEquispaced},
		{cell.Triangle, 4, VariantGLLWarped},
		{cell.Quadrilateral, 3, VariantGLLIsaac},
		{cell.Tetrahedron, 3, VariantGLLIsaac},
		{cell.Tetrahedron, 2, VariantGLLWarped},
		{cell.Hexahedron, 2, VariantEquispaced},
		{cell.Prism, 3, VariantGLLWarped},
		{cell.Pyramid, 2, VariantEquispaced},
		{cell.Pyramid, 3, VariantGLLIsaac},
	}
	for _, c := range cases {
		e, err := CreateElement(Lagrange, c.ct, c.degree, c.lv, DPCUnset, false)
		require.NoError(t, err, "%v degree %d %v", c.ct, c.degree, c.lv)
		T, err := e.Tabulate(samplePoints(c.ct))
		require.NoError(t, err)
		nr, nc := T[0].Dims()
		assert.Equal(t, e.NumDofs(), nc)
		for i := 0; i < nr; i++ {
			var sum float64
			for j := 0; j < nc; j++ {
				sum += T[0].At(i, j)
			}
			assert.InDelta(t, 1, sum, 1.e-9, "%v degree %d %v", c.ct, c.degree, c.lv)
		}
	}
}

// A nodal basis evaluated at its own points is the identity.
func TestLagrangeKroneckerDelta(t *testing.T) {
	for _, c := range []struct {
		ct     cell.Type
		degree int
		lv     LagrangeVariant
	}{
		{cell.Triangle, 3, VariantGLLWarped},
		{cell.Tetrahedron, 2, VariantGLLIsaac},
		{cell.Quadrilateral, 2, VariantEquispaced},
		{cell.Pyramid, 2, VariantEquispaced},
	} {
		e, err := CreateElement(Lagrange, c.ct, c.degree, c.lv, DPCUnset, false)
		require.NoError(t, err)
		pts, _, err := lagrangePoints(c.ct, latticeType(c.lv), c.degree)
		require.NoError(t, err)
		X := utils.NewMatrix(len(pts), c.ct.Dim())
		for i, p := range pts {
			X.SetRow(i, p)
		}
		T, err := e.Tabulate(X)
		require.NoError(t, err)
		for i := range pts {
			for j := 0; j < e.NumDofs(); j++ {
				want := 0.
				if i == j {
					want = 1.
				}
				assert.InDelta(t, want, T[0].At(i, j), 1.e-9,
					"%v degree %d point %d dof %d", c.ct, c.degree, i, j)
			}
		}
	}
}

// A nodal interpolant reproduces polynomials inside the span.
func TestLagrangeInterpolation(t *testing.T) {
	f := func(x, y float64) float64 { return 1 + 2*x - y + 3*x*y - x*x }
	e, err := CreateElement(Lagrange, cell.Triangle, 2, VariantEquispaced, DPCUnset, false)
	require.NoError(t, err)
	pts, _, err := lagrangePoints(cell.Triangle, latticeType(VariantEquispaced), 2)
	require.NoError(t, err)
	X := samplePoints(cell.Triangle)
	T, err := e.Tabulate(X)
	require.NoError(t, err)
	nr, _ := X.Dims()
	for i := 0; i < nr; i++ {
		var sum float64
		for j, p := range pts {
			sum += f(p[0], p[1]) * T[0].At(i, j)
		}
		assert.InDelta(t, f(X.At(i, 0), X.At(i, 1)), sum, 1.e-10)
	}
}

func TestPointElement(t *testing.T) {
	e, err := CreateElement(Lagrange, cell.Point, 0, VariantUnset, DPCUnset, false)
	require.NoError(t, err)
	assert.Equal(t, 1, e.NumDofs())
	_, err = CreateElement(Lagrange, cell.Point, 1, VariantUnset, DPCUnset, false)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	_, err = CreateElement(RaviartThomas, cell.Point, 1, VariantUnset, DPCUnset, false)
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestElementDimensions(t *testing.T) {
	cases := []struct {
		f      Family
		ct     cell.Type
		degree int
		ndofs  int
	}{
		{RaviartThomas, cell.Triangle, 1, 3},
		{RaviartThomas, cell.Triangle, 2, 8},
		{RaviartThomas, cell.Triangle, 3, 15},
		{RaviartThomas, cell.Tetrahedron, 1, 4},
		{RaviartThomas, cell.Tetrahedron, 2, 15},
		{Nedelec1, cell.Triangle, 1, 3},
		{Nedelec1, cell.Triangle, 2, 8},
		{Nedelec1, cell.Tetrahedron, 1, 6},
		{Nedelec1, cell.Tetrahedron, 2, 20},
		{Nedelec1, cell.Tetrahedron, 3, 45},
		{BDM, cell.Triangle, 1, 6},
		{BDM, cell.Triangle, 2, 12},
		{BDM, cell.Tetrahedron, 1, 12},
		{Nedelec2, cell.Triangle, 1, 6},
		{Nedelec2, cell.Triangle, 2, 12},
		{Nedelec2, cell.Tetrahedron, 1, 12},
		{Nedelec2, cell.Tetrahedron, 2, 30},
		{Regge, cell.Triangle, 0, 3},
		{Regge, cell.Triangle, 1, 9},
		{Regge, cell.Tetrahedron, 0, 6},
		{Regge, cell.Tetrahedron, 1, 24},
		{HellanHerrmannJohnson, cell.Triangle, 0, 3},
		{HellanHerrmannJohnson, cell.Triangle, 1, 9},
		{Bubble, cell.Interval, 2, 1},
		{Bubble, cell.Triangle, 3, 1},
		{Bubble, cell.Triangle, 4, 3},
		{Bubble, cell.Tetrahedron, 4, 1},
		{Serendipity, cell.Quadrilateral, 1, 4},
		{Serendipity, cell.Quadrilateral, 2, 8},
		{Serendipity, cell.Quadrilateral, 3, 12},
		{Serendipity, cell.Quadrilateral, 4, 17},
		{Serendipity, cell.Hexahedron, 1, 8},
		{Serendipity, cell.Hexahedron, 2, 20},
		{DPC, cell.Quadrilateral, 2, 6},
		{DPC, cell.Hexahedron, 2, 10},
		{CrouzeixRaviart, cell.Triangle, 1, 3},
		{CrouzeixRaviart, cell.Tetrahedron, 1, 4},
		{Hermite, cell.Interval, 3, 4},
		{Hermite, cell.Triangle, 3, 10},
		{Hermite, cell.Tetrahedron, 3, 20},
		{Iso, cell.Interval, 1, 3},
		{Iso, cell.Triangle, 1, 6},
	}
	for _, c := range cases {
		e, err := CreateElement(c.f, c.ct, c.degree, VariantUnset, DPCUnset, false)
		require.NoError(t, err, "%v %v degree %d", c.f, c.ct, c.degree)
		assert.Equal(t, c.ndofs, e.NumDofs(), "%v %v degree %d", c.f, c.ct, c.degree)
	}
}

func TestEntityDofLayout(t *testing.T) {
	// RT_2 on the triangle: two normal moments per edge, two interior
	e, err := CreateElement(RaviartThomas, cell.Triangle, 2, VariantUnset, DPCUnset, false)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Len(t, e.EntityDofs[1][i], 2)
	}
	assert.Len(t, e.EntityDofs[2][0], 2)
	// N1E_2 on the tetrahedron: two per edge, two per face
	e, err = CreateElement(Nedelec1, cell.Tetrahedron, 2, VariantUnset, DPCUnset, false)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.Len(t, e.EntityDofs[1][i], 2)
	}
	for i := 0; i < 4; i++ {
		assert.Len(t, e.EntityDofs[2][i], 2)
	}
	assert.Len(t, e.EntityDofs[3][0], 0)
	// Lagrange degree 2 on the prism: one per vertex and edge
	e, err = CreateElement(Lagrange, cell.Prism, 2, VariantEquispaced, DPCUnset, false)
	require.NoError(t, err)
	var total int
	for d := 0; d <= 3; d++ {
		for _, dofs := range e.EntityDofs[d] {
			total += len(dofs)
		}
	}
	assert.Equal(t, e.NumDofs(), total)
	for i := 0; i < 6; i++ {
		assert.Len(t, e.EntityDofs[0][i], 1)
	}
	for i := 0; i < 9; i++ {
		assert.Len(t, e.EntityDofs[1][i], 1)
	}
}

// The RT_1 basis functions carry unit normal moments on their own
// edge and vanishing moments on the others, recomputed here from the
// tabulated values rather than the construction.
func TestRTNormalMoments(t *testing.T) {
	e, err := CreateElement(RaviartThomas, cell.Triangle, 1, VariantUnset, DPCUnset, false)
	require.NoError(t, err)
	top, err := cell.GetTopology(cell.Triangle)
	require.NoError(t, err)
	for edge := 0; edge < 3; edge++ {
		_, mapped, wq, err := entityRule(top, 1, edge, 4)
		require.NoError(t, err)
		n, err := top.FacetNormal(edge)
		require.NoError(t, err)
		T, err := e.Tabulate(mapped)
		require.NoError(t, err)
		nq, _ := mapped.Dims()
		for dof := 0; dof < 3; dof++ {
			var moment float64
			for q := 0; q < nq; q++ {
				moment += wq[q] * (n[0]*T[0].At(q, dof) + n[1]*T[1].At(q, dof))
			}
			want := 0.
			if dof == e.EntityDofs[1][edge][0] {
				want = 1.
			}
			assert.InDelta(t, want, moment, 1.e-10, "edge %d dof %d", edge, dof)
		}
	}
}

// The Legendre variant basis is the orthonormal set itself.
func TestLegendreVariantOrthonormal(t *testing.T) {
	e, err := CreateElement(Lagrange, cell.Triangle, 3, VariantLegendre, DPCUnset, false)
	require.NoError(t, err)
	Q, W, err := quadrature.Rule(cell.Triangle, 6)
	require.NoError(t, err)
	T, err := e.Tabulate(Q)
	require.NoError(t, err)
	nq, nd := T[0].Dims()
	require.Equal(t, polyset.Dim(cell.Triangle, 3), nd)
	for i := 0; i < nd; i++ {
		for j := i; j < nd; j++ {
			var sum float64
			for q := 0; q < nq; q++ {
				sum += W[q] * T[0].At(q, i) * T[0].At(q, j)
			}
			want := 0.
			if i == j {
				want = 1.
			}
			assert.InDelta(t, want, sum, 1.e-9)
		}
	}
	// All dofs sit on the cell interior
	assert.Len(t, e.EntityDofs[2][0], nd)
}

func TestMakeDiscontinuous(t *testing.T) {
	e, err := CreateElement(Lagrange, cell.Triangle, 2, VariantEquispaced, DPCUnset, false)
	require.NoError(t, err)
	d, err := e.MakeDiscontinuous()
	require.NoError(t, err)
	assert.True(t, d.Discontinuous)
	assert.Len(t, d.EntityDofs[2][0], e.NumDofs())
	for i := 0; i < 3; i++ {
		assert.Empty(t, d.EntityDofs[0][i])
		assert.Empty(t, d.EntityDofs[1][i])
	}
	// Idempotent
	dd, err := d.MakeDiscontinuous()
	require.NoError(t, err)
	assert.Equal(t, d.EntityDofs, dd.EntityDofs)
	assert.Equal(t, d.Coefficients.RawMatrix().Data, dd.Coefficients.RawMatrix().Data)
	// Tabulation is unchanged
	X := samplePoints(cell.Triangle)
	T0, err := e.Tabulate(X)
	require.NoError(t, err)
	T1, err := d.Tabulate(X)
	require.NoError(t, err)
	assert.Equal(t, T0[0].RawMatrix().Data, T1[0].RawMatrix().Data)
	// The flag is honored at creation time too
	dc, err := CreateElement(Lagrange, cell.Triangle, 2, VariantEquispaced, DPCUnset, true)
	require.NoError(t, err)
	assert.True(t, dc.Discontinuous)
	assert.Len(t, dc.EntityDofs[2][0], e.NumDofs())
}

// Creation is deterministic to the bit.
func TestDeterminism(t *testing.T) {
	for _, c := range []struct {
		f      Family
		ct     cell.Type
		degree int
	}{
		{Lagrange, cell.Tetrahedron, 3},
		{RaviartThomas, cell.Tetrahedron, 2},
		{Nedelec1, cell.Tetrahedron, 2},
		{Serendipity, cell.Hexahedron, 3},
	} {
		a, err := CreateElement(c.f, c.ct, c.degree, VariantGLLWarped, DPCUnset, false)
		require.NoError(t, err)
		b, err := CreateElement(c.f, c.ct, c.degree, VariantGLLWarped, DPCUnset, false)
		require.NoError(t, err)
		assert.Equal(t, a.Coefficients.RawMatrix().Data, b.Coefficients.RawMatrix().Data,
			"%v %v degree %d", c.f, c.ct, c.degree)
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		f      Family
		ct     cell.Type
		degree int
		lv     LagrangeVariant
		want   error
	}{
		{Lagrange, cell.Triangle, -1, VariantUnset, ErrInvalidDegree},
		{Lagrange, cell.Quadrilateral, 2, VariantBernstein, ErrIncompatibleVariant},
		{RaviartThomas, cell.Quadrilateral, 1, VariantUnset, ErrUnsupportedCombination},
		{RaviartThomas, cell.Triangle, 0, VariantUnset, ErrInvalidDegree},
		{HellanHerrmannJohnson, cell.Tetrahedron, 1, VariantUnset, ErrUnsupportedCombination},
		{Bubble, cell.Triangle, 2, VariantUnset, ErrInvalidDegree},
		{Bubble, cell.Quadrilateral, 3, VariantUnset, ErrUnsupportedCombination},
		{Serendipity, cell.Triangle, 2, VariantUnset, ErrUnsupportedCombination},
		{Serendipity, cell.Quadrilateral, 0, VariantUnset, ErrInvalidDegree},
		{CrouzeixRaviart, cell.Triangle, 2, VariantUnset, ErrInvalidDegree},
		{Hermite, cell.Triangle, 2, VariantUnset, ErrInvalidDegree},
		{Hermite, cell.Quadrilateral, 3, VariantUnset, ErrUnsupportedCombination},
		{Iso, cell.Prism, 1, VariantUnset, ErrUnsupportedCombination},
		{Iso, cell.Triangle, 1, VariantLegendre, ErrIncompatibleVariant},
		{Custom, cell.Triangle, 1, VariantUnset, ErrUnsupportedCombination},
	}
	for _, c := range cases {
		_, err := CreateElement(c.f, c.ct, c.degree, c.lv, DPCUnset, false)
		assert.ErrorIs(t, err, c.want, "%v %v degree %d", c.f, c.ct, c.degree)
	}
}

func TestCustomElement(t *testing.T) {
	// Rebuild P1 on the triangle by hand
	top, err := cell.GetTopology(cell.Triangle)
	require.NoError(t, err)
	pts := [][]float64{}
	entities := [][2]int{}
	for i, v := range top.Vertices {
		pts = append(pts, v)
		entities = append(entities, [2]int{0, i})
	}
	fns, err := pointEvalFunctionals(cell.Triangle, 1, pts, entities, 0, 1)
	require.NoError(t, err)
	e, err := CreateCustomElement(cell.Triangle, nil, 1, 1, identitySpan(3, 1), fns, false)
	require.NoError(t, err)
	assert.Equal(t, Custom, e.Family)
	assert.Equal(t, 3, e.NumDofs())
	T, err := e.Tabulate(samplePoints(cell.Triangle))
	require.NoError(t, err)
	nr, _ := T[0].Dims()
	for i := 0; i < nr; i++ {
		var sum float64
		for j := 0; j < 3; j++ {
			sum += T[0].At(i, j)
		}
		assert.InDelta(t, 1, sum, 1.e-12)
	}
}

// Repeating a functional makes the dual pairing singular.
func TestCustomElementSingular(t *testing.T) {
	mid := [][]float64{{0.5}, {0.5}}
	entities := [][2]int{{1, 0}, {1, 0}}
	fns, err := pointEvalFunctionals(cell.Interval, 1, mid, entities, 0, 1)
	require.NoError(t, err)
	_, err = CreateCustomElement(cell.Interval, nil, 1, 1, identitySpan(2, 1), fns, false)
	assert.ErrorIs(t, err, ErrSingularDualSystem)
}

func TestCustomElementValidation(t *testing.T) {
	_, err := CreateCustomElement(cell.Triangle, nil, 2, 1, identitySpan(3, 1), nil, false)
	assert.ErrorIs(t, err, ErrInvalidDegree)
	_, err = CreateCustomElement(cell.Triangle, []int{0}, 1, 1, identitySpan(3, 1), nil, false)
	assert.Error(t, err)
}
