package cell

import (
	"fmt"
	"math"
)

// SubEntityCoords returns the vertex coordinates of sub-entity (d, index),
// in the cell's coordinate system.
func (top *Topology) SubEntityCoords(d, index int) (X [][]float64, err error) {
	if d < 0 || d > top.Dim || index < 0 || index >= len(top.Entities[d]) {
		err = fmt.Errorf("%w: no entity (%d,%d) on %v", ErrUnknownCell, d, index, top.Type)
		return
	}
	verts := top.Entities[d][index]
	X = make([][]float64, len(verts))
	for i, v := range verts {
		X[i] = top.Vertices[v]
	}
	return
}

// EntityMidpoint is the vertex average of sub-entity (d, index).
func (top *Topology) EntityMidpoint(d, index int) (mid []float64, err error) {
	X, err := top.SubEntityCoords(d, index)
	if err != nil {
		return
	}
	mid = make([]float64, top.Dim)
	for _, x := range X {
		for k := range mid {
			mid[k] += x[k]
		}
	}
	for k := range mid {
		mid[k] /= float64(len(X))
	}
	return
}

// MapToEntity maps reference coordinates on the sub-entity's own cell
// onto the parent cell: x = v0 + sum_k p[k]*(v_{k+1} - v0).
func (top *Topology) MapToEntity(d, index int, p []float64) (x []float64, err error) {
	X, err := top.SubEntityCoords(d, index)
	if err != nil {
		return
	}
	x = make([]float64, top.Dim)
	copy(x, X[0])
	for k := 0; k < d; k++ {
		for c := 0; c < top.Dim; c++ {
			x[c] += p[k] * (X[k+1][c] - X[0][c])
		}
	}
	return
}

// FacetNormal returns the outward normal of facet index (dimension
// Dim-1), normalized to unit length.
func (top *Topology) FacetNormal(index int) (n []float64, err error) {
	if top.Dim < 1 {
		err = fmt.Errorf("%w: no facets on %v", ErrUnknownCell, top.Type)
		return
	}
	X, err := top.SubEntityCoords(top.Dim-1, index)
	if err != nil {
		return
	}
	switch top.Dim {
	case 1:
		n = []float64{1}
	case 2:
		tx, ty := X[1][0]-X[0][0], X[1][1]-X[0][1]
		n = []float64{ty, -tx}
	case 3:
		e0 := []float64{X[1][0] - X[0][0], X[1][1] - X[0][1], X[1][2] - X[0][2]}
		e1 := []float64{X[2][0] - X[0][0], X[2][1] - X[0][1], X[2][2] - X[0][2]}
		n = []float64{
			e0[1]*e1[2] - e0[2]*e1[1],
			e0[2]*e1[0] - e0[0]*e1[2],
			e0[0]*e1[1] - e0[1]*e1[0],
		}
	}
	var mag float64
	for _, v := range n {
		mag += v * v
	}
	mag = math.Sqrt(mag)
	for k := range n {
		n[k] /= mag
	}
	// Orient outward using the cell and facet midpoints
	cMid, _ := top.EntityMidpoint(top.Dim, 0)
	fMid, _ := top.EntityMidpoint(top.Dim-1, index)
	var dot float64
	for k := range n {
		dot += n[k] * (fMid[k] - cMid[k])
	}
	if dot < 0 {
		for k := range n {
			n[k] = -n[k]
		}
	}
	return
}

// EdgeTangent returns v1-v0 for edge index, unnormalized.
func (top *Topology) EdgeTangent(index int) (t []float64, err error) {
	X, err := top.SubEntityCoords(1, index)
	if err != nil {
		return
	}
	t = make([]float64, top.Dim)
	for k := range t {
		t[k] = X[1][k] - X[0][k]
	}
	return
}

// EntityTangents returns the d spanning directions of sub-entity
// (d, index), unnormalized.
func (top *Topology) EntityTangents(d, index int) (T [][]float64, err error) {
	X, err := top.SubEntityCoords(d, index)
	if err != nil {
		return
	}
	T = make([][]float64, d)
	for k := 0; k < d; k++ {
		T[k] = make([]float64, top.Dim)
		for c := 0; c < top.Dim; c++ {
			T[k][c] = X[k+1][c] - X[0][c]
		}
	}
	return
}

// EntityVolume is the d-dimensional measure of sub-entity (d, index):
// edge length, face area, or cell volume of the reference element.
func (top *Topology) EntityVolume(d, index int) (vol float64, err error) {
	if d == 0 {
		return 1, nil
	}
	t, err := top.SubEntityType(d, index)
	if err != nil {
		return
	}
	X, err := top.SubEntityCoords(d, index)
	if err != nil {
		return
	}
	// Spanning vertices: consecutive ones except on hexahedra and
	// pyramids, where vertex 3 lies in the base plane
	span := []int{1, 2, 3}[:d]
	if t == Hexahedron || t == Pyramid {
		span = []int{1, 2, 4}
	}
	T := make([][]float64, d)
	for k, v := range span {
		T[k] = make([]float64, top.Dim)
		for c := 0; c < top.Dim; c++ {
			T[k][c] = X[v][c] - X[0][c]
		}
	}
	// Gram determinant of the spanning directions
	G := make([][]float64, d)
	for i := range G {
		G[i] = make([]float64, d)
		for j := range G[i] {
			for c := 0; c < top.Dim; c++ {
				G[i][j] += T[i][c] * T[j][c]
			}
		}
	}
	var det float64
	switch d {
	case 1:
		det = G[0][0]
	case 2:
		det = G[0][0]*G[1][1] - G[0][1]*G[1][0]
	case 3:
		det = G[0][0]*(G[1][1]*G[2][2]-G[1][2]*G[2][1]) -
			G[0][1]*(G[1][0]*G[2][2]-G[1][2]*G[2][0]) +
			G[0][2]*(G[1][0]*G[2][1]-G[1][1]*G[2][0])
	}
	vol = math.Sqrt(det)
	switch t {
	case Triangle:
		vol /= 2
	case Tetrahedron:
		vol /= 6
	case Prism:
		vol /= 2
	case Pyramid:
		vol /= 3
	}
	return
}
