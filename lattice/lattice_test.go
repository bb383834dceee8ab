package lattice

import (
	"math"
	"testing"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/quadrature"
	"github.com/stretchr/testify/assert"
)

func TestLatticeCounts(t *testing.T) {
	counts := []struct {
		t        cell.Type
		n        int
		full, in int
	}{
		{cell.Interval, 4, 5, 3},
		{cell.Triangle, 4, 15, 3},
		{cell.Quadrilateral, 3, 16, 4},
		{cell.Tetrahedron, 4, 35, 1},
		{cell.Hexahedron, 2, 27, 1},
		{cell.Prism, 3, 40, 2},
		{cell.Pyramid, 3, 30, 1},
		{cell.Pyramid, 4, 55, 5},
	}
	for _, lt := range []Type{Equispaced, GLLWarped, GLLIsaac} {
		for _, c := range counts {
			full, err := Points(c.t, lt, c.n, false)
			assert.NoError(t, err)
			assert.Equal(t, c.full, len(full), "%v %v full", lt, c.t)
			in, err := Points(c.t, lt, c.n, true)
			assert.NoError(t, err)
			assert.Equal(t, c.in, len(in), "%v %v interior", lt, c.t)
		}
	}
}

func TestLatticeDegreeZero(t *testing.T) {
	for _, ct := range []cell.Type{cell.Interval, cell.Triangle, cell.Tetrahedron} {
		pts, err := Points(ct, Equispaced, 0, false)
		assert.NoError(t, err)
		assert.Len(t, pts, 1)
		// Midpoint has equal barycentric coordinates
		sum := 0.
		for _, v := range pts[0] {
			assert.InDelta(t, 1./float64(ct.Dim()+1), v, 1.e-14)
			sum += v
		}
		assert.True(t, sum < 1)
	}
}

// Warped triangle edges must carry the 1D Gauss-Lobatto points.
func TestWarpedTriangleEdges(t *testing.T) {
	n := 5
	pts, err := Points(cell.Triangle, GLLWarped, n, false)
	assert.NoError(t, err)
	gll := quadrature.GaussLobatto01(n + 1)
	// Bottom edge y == 0: x coordinates are the GLL points
	var xs []float64
	for _, p := range pts {
		if math.Abs(p[1]) < 1.e-12 {
			xs = append(xs, p[0])
		}
	}
	assert.Len(t, xs, n+1)
	for i, x := range xs {
		assert.InDelta(t, gll[i], x, 1.e-12)
	}
	// Hypotenuse x+y == 1 preserved under warping
	var nh int
	for _, p := range pts {
		if math.Abs(p[0]+p[1]-1) < 1.e-12 {
			nh++
		}
	}
	assert.Equal(t, n+1, nh)
}

func TestWarpedTetContainsVertices(t *testing.T) {
	n := 4
	pts, err := Points(cell.Tetrahedron, GLLWarped, n, false)
	assert.NoError(t, err)
	top, err := cell.GetTopology(cell.Tetrahedron)
	assert.NoError(t, err)
	for _, v := range top.Vertices {
		found := false
		for _, p := range pts {
			d := 0.
			for c := range v {
				d += (p[c] - v[c]) * (p[c] - v[c])
			}
			if d < 1.e-20 {
				found = true
			}
		}
		assert.True(t, found, "vertex %v missing", v)
	}
}

func TestIsaacIntervalIsGaussLobatto(t *testing.T) {
	n := 6
	pts, err := Points(cell.Interval, GLLIsaac, n, false)
	assert.NoError(t, err)
	gll := quadrature.GaussLobatto01(n + 1)
	for i, p := range pts {
		assert.InDelta(t, gll[i], p[0], 1.e-14)
	}
}

func TestIsaacTriangleStructure(t *testing.T) {
	n := 4
	pts, err := Points(cell.Triangle, GLLIsaac, n, false)
	assert.NoError(t, err)
	assert.Len(t, pts, 15)
	// First three are the vertices
	assert.Equal(t, []float64{0, 0}, pts[0])
	assert.Equal(t, []float64{1, 0}, pts[1])
	assert.Equal(t, []float64{0, 1}, pts[2])
	// Edge interiors carry interior Gauss-Lobatto points
	gll := quadrature.GaussLobatto01(n + 1)
	onBottom := 0
	for _, p := range pts {
		if math.Abs(p[1]) < 1.e-12 && p[0] > 1.e-12 && p[0] < 1-1.e-12 {
			assert.InDelta(t, gll[1+onBottom], p[0], 1.e-12)
			onBottom++
		}
	}
	assert.Equal(t, n-1, onBottom)
	// Interior points strictly inside
	in, err := Points(cell.Triangle, GLLIsaac, n, true)
	assert.NoError(t, err)
	assert.Len(t, in, 3)
	for _, p := range in {
		assert.True(t, p[0] > 0 && p[1] > 0 && p[0]+p[1] < 1)
	}
}

func TestLatticeDeterminism(t *testing.T) {
	a, err := Points(cell.Tetrahedron, GLLWarped, 5, false)
	assert.NoError(t, err)
	b, err := Points(cell.Tetrahedron, GLLWarped, 5, false)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLatticePointCellRejected(t *testing.T) {
	_, err := Points(cell.Point, Equispaced, 1, false)
	assert.Error(t, err)
}
