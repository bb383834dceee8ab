package cell

import (
	"errors"
	"fmt"
)

// Type enumerates the supported reference cells. The set is closed:
// every member maps to exactly one topology record in the registry.
type Type uint8

const (
	Point Type = iota
	Interval
	Triangle
	Quadrilateral
	Tetrahedron
	Hexahedron
	Prism
	Pyramid
)

var ErrUnknownCell = errors.New("cell: unknown cell type")

func AllTypes() []Type {
	return []Type{Point, Interval, Triangle, Quadrilateral,
		Tetrahedron, Hexahedron, Prism, Pyramid}
}

func (t Type) String() string {
	switch t {
	case Point:
		return "point"
	case Interval:
		return "interval"
	case Triangle:
		return "triangle"
	case Quadrilateral:
		return "quadrilateral"
	case Tetrahedron:
		return "tetrahedron"
	case Hexahedron:
		return "hexahedron"
	case Prism:
		return "prism"
	case Pyramid:
		return "pyramid"
	}
	return fmt.Sprintf("cell.Type(%d)", uint8(t))
}

func TypeFromString(s string) (t Type, err error) {
	for _, c := range AllTypes() {
		if c.String() == s {
			return c, nil
		}
	}
	err = fmt.Errorf("%w: %q", ErrUnknownCell, s)
	return
}

// Topology is the static description of one reference cell: vertex
// coordinates on the [0,1]-based reference domain and the vertex
// incidence of every sub-entity, grouped by dimension.
type Topology struct {
	Type     Type
	Dim      int
	Vertices [][]float64
	// Entities[d] lists the dimension-d sub-entities as vertex index
	// sets; Entities[Dim] is the single cell itself.
	Entities [4][][]int
}

var registry map[Type]*Topology

func init() {
	registry = make(map[Type]*Topology, 8)
	for _, t := range AllTypes() {
		registry[t] = buildTopology(t)
	}
}

// GetTopology is a pure lookup into the process-wide registry.
func GetTopology(t Type) (top *Topology, err error) {
	top, ok := registry[t]
	if !ok {
		err = fmt.Errorf("%w: %v", ErrUnknownCell, t)
	}
	return
}

func (t Type) Dim() int {
	switch t {
	case Point:
		return 0
	case Interval:
		return 1
	case Triangle, Quadrilateral:
		return 2
	default:
		return 3
	}
}

// NumEntities returns the number of dimension-d sub-entities.
func (top *Topology) NumEntities(d int) int {
	if d < 0 || d > 3 {
		return 0
	}
	return len(top.Entities[d])
}

// SubEntityType gives the reference cell type of a sub-entity.
func (top *Topology) SubEntityType(d, index int) (t Type, err error) {
	if d < 0 || d > top.Dim || index < 0 || index >= len(top.Entities[d]) {
		err = fmt.Errorf("%w: no entity (%d,%d) on %v", ErrUnknownCell, d, index, top.Type)
		return
	}
	if d == top.Dim {
		return top.Type, nil
	}
	switch d {
	case 0:
		t = Point
	case 1:
		t = Interval
	case 2:
		if len(top.Entities[d][index]) == 3 {
			t = Triangle
		} else {
			t = Quadrilateral
		}
	}
	return
}

func buildTopology(t Type) (top *Topology) {
	top = &Topology{Type: t, Dim: t.Dim()}
	switch t {
	case Point:
		top.Vertices = [][]float64{{}}
	case Interval:
		top.Vertices = [][]float64{{0}, {1}}
		top.Entities[1] = [][]int{{0, 1}}
	case Triangle:
		top.Vertices = [][]float64{{0, 0}, {1, 0}, {0, 1}}
		top.Entities[1] = [][]int{{1, 2}, {0, 2}, {0, 1}}
		top.Entities[2] = [][]int{{0, 1, 2}}
	case Quadrilateral:
		top.Vertices = [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
		top.Entities[1] = [][]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
		top.Entities[2] = [][]int{{0, 1, 2, 3}}
	case Tetrahedron:
		top.Vertices = [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		top.Entities[1] = [][]int{{2, 3}, {1, 3}, {1, 2}, {0, 3}, {0, 2}, {0, 1}}
		top.Entities[2] = [][]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
		top.Entities[3] = [][]int{{0, 1, 2, 3}}
	case Hexahedron:
		top.Vertices = [][]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}}
		top.Entities[1] = [][]int{
			{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
			{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7}}
		top.Entities[2] = [][]int{
			{0, 1, 2, 3}, {0, 1, 4, 5}, {0, 2, 4, 6},
			{1, 3, 5, 7}, {2, 3, 6, 7}, {4, 5, 6, 7}}
		top.Entities[3] = [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}
	case Prism:
		top.Vertices = [][]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}
		top.Entities[1] = [][]int{
			{1, 2}, {0, 2}, {0, 1}, {0, 3}, {1, 4},
			{2, 5}, {4, 5}, {3, 5}, {3, 4}}
		top.Entities[2] = [][]int{
			{0, 1, 2}, {0, 1, 3, 4}, {0, 2, 3, 5}, {1, 2, 4, 5}, {3, 4, 5}}
		top.Entities[3] = [][]int{{0, 1, 2, 3, 4, 5}}
	case Pyramid:
		top.Vertices = [][]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}}
		top.Entities[1] = [][]int{
			{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
		top.Entities[2] = [][]int{
			{0, 1, 2, 3}, {0, 1, 4}, {0, 2, 4}, {1, 3, 4}, {2, 3, 4}}
		top.Entities[3] = [][]int{{0, 1, 2, 3, 4}}
	}
	// Dimension-0 entities are the vertices themselves
	top.Entities[0] = make([][]int, len(top.Vertices))
	for i := range top.Vertices {
		top.Entities[0][i] = []int{i}
	}
	if top.Dim == 0 {
		return
	}
	return
}
