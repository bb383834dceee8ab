package polyset

import (
	"testing"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/quadrature"
	"github.com/notargets/gofel/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDims(t *testing.T) {
	assert.Equal(t, 1, Dim(cell.Point, 0))
	assert.Equal(t, 4, Dim(cell.Interval, 3))
	assert.Equal(t, 10, Dim(cell.Triangle, 3))
	assert.Equal(t, 16, Dim(cell.Quadrilateral, 3))
	assert.Equal(t, 20, Dim(cell.Tetrahedron, 3))
	assert.Equal(t, 64, Dim(cell.Hexahedron, 3))
	assert.Equal(t, 40, Dim(cell.Prism, 3))
	assert.Equal(t, 30, Dim(cell.Pyramid, 3))
	assert.Equal(t, 0, Dim(cell.Triangle, -1))
}

func TestDegreeIndices(t *testing.T) {
	for m, want := range []int{1, 2, 3, 4} {
		assert.Len(t, DegreeIndices(cell.Triangle, 3, m), want)
	}
	assert.Len(t, LowDegreeIndices(cell.Triangle, 3, 2), 6)
	// Tensor cells count by superlinear total index
	assert.Len(t, LowDegreeIndices(cell.Quadrilateral, 2, 1), 3)
}

// The tabulated sets must be orthonormal under the cell quadrature.
func TestOrthonormality(t *testing.T) {
	cases := []struct {
		t cell.Type
		n int
	}{
		{cell.Interval, 5},
		{cell.Triangle, 4},
		{cell.Quadrilateral, 3},
		{cell.Tetrahedron, 3},
		{cell.Hexahedron, 2},
		{cell.Prism, 3},
		{cell.Pyramid, 3},
	}
	for _, c := range cases {
		Q, W, err := quadrature.Rule(c.t, 2*c.n)
		require.NoError(t, err)
		tab, err := Tabulate(c.t, c.n, 0, Q)
		require.NoError(t, err)
		var (
			nq, nd = tab[0].Dims()
		)
		require.Equal(t, Dim(c.t, c.n), nd)
		for i := 0; i < nd; i++ {
			for j := i; j < nd; j++ {
				var sum float64
				for q := 0; q < nq; q++ {
					sum += W[q] * tab[0].At(q, i) * tab[0].At(q, j)
				}
				want := 0.
				if i == j {
					want = 1.
				}
				assert.InDelta(t, want, sum, 1.e-8,
					"%v n=%d entry (%d,%d)", c.t, c.n, i, j)
			}
		}
	}
}

// First derivatives against central differences at interior points.
func TestDerivatives(t *testing.T) {
	const h = 1.e-6
	cases := []struct {
		t   cell.Type
		n   int
		pts [][]float64
	}{
		{cell.Interval, 4, [][]float64{{0.3}, {0.71}}},
		{cell.Triangle, 4, [][]float64{{0.21, 0.34}, {0.11, 0.52}}},
		{cell.Quadrilateral, 3, [][]float64{{0.3, 0.6}}},
		{cell.Tetrahedron, 3, [][]float64{{0.2, 0.25, 0.3}}},
		{cell.Hexahedron, 2, [][]float64{{0.3, 0.5, 0.7}}},
		{cell.Prism, 3, [][]float64{{0.2, 0.3, 0.6}}},
		{cell.Pyramid, 3, [][]float64{{0.2, 0.15, 0.4}}},
	}
	for _, c := range cases {
		var (
			dim = c.t.Dim()
			nd  = Dim(c.t, c.n)
		)
		for _, p := range c.pts {
			X := utils.NewMatrix(1, dim, append([]float64{}, p...))
			tab, err := Tabulate(c.t, c.n, 1, X)
			require.NoError(t, err)
			require.Len(t, tab, dim+1)
			for d := 0; d < dim; d++ {
				pp := append([]float64{}, p...)
				pm := append([]float64{}, p...)
				pp[d] += h
				pm[d] -= h
				tp, err := Tabulate(c.t, c.n, 0, utils.NewMatrix(1, dim, pp))
				require.NoError(t, err)
				tm, err := Tabulate(c.t, c.n, 0, utils.NewMatrix(1, dim, pm))
				require.NoError(t, err)
				for j := 0; j < nd; j++ {
					fd := (tp[0].At(0, j) - tm[0].At(0, j)) / (2 * h)
					assert.InDelta(t, fd, tab[1+d].At(0, j), 1.e-4,
						"%v n=%d member %d direction %d", c.t, c.n, j, d)
				}
			}
		}
	}
}

// The collapsed-coordinate recurrences stay finite on the degenerate
// boundary of the collapse.
func TestDegenerateEdges(t *testing.T) {
	X := utils.NewMatrix(3, 2, []float64{0, 1, 0.5, 0.5, 1, 0})
	tab, err := Tabulate(cell.Triangle, 3, 1, X)
	require.NoError(t, err)
	for _, T := range tab {
		nr, nc := T.Dims()
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				v := T.At(i, j)
				assert.False(t, v != v, "NaN at (%d,%d)", i, j)
			}
		}
	}
	// Pyramid apex point evaluation
	XA := utils.NewMatrix(1, 3, []float64{0, 0, 1})
	tabA, err := Tabulate(cell.Pyramid, 2, 0, XA)
	require.NoError(t, err)
	_, nc := tabA[0].Dims()
	for j := 0; j < nc; j++ {
		v := tabA[0].At(0, j)
		assert.False(t, v != v)
	}
	assert.NotZero(t, tabA[0].At(0, 0))
}

func TestTabulateDeterminism(t *testing.T) {
	X := utils.NewMatrix(2, 2, []float64{0.2, 0.3, 0.4, 0.1})
	a, err := Tabulate(cell.Triangle, 5, 1, X)
	require.NoError(t, err)
	b, err := Tabulate(cell.Triangle, 5, 1, X)
	require.NoError(t, err)
	for k := range a {
		assert.Equal(t, a[k].RawMatrix().Data, b[k].RawMatrix().Data)
	}
}
