package cell

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gofel/utils"
)

// Connectivity counts shared vertices between the dimension-d0 and
// dimension-d1 sub-entities, computed as the product of the two sparse
// entity-to-vertex incidence matrices. Entry (i,j) is the number of
// vertices entity i of dimension d0 shares with entity j of dimension
// d1.
func (top *Topology) Connectivity(d0, d1 int) (C utils.Matrix, err error) {
	if d0 < 0 || d0 > top.Dim || d1 < 0 || d1 > top.Dim {
		err = fmt.Errorf("%w: connectivity (%d,%d) on %v", ErrUnknownCell, d0, d1, top.Type)
		return
	}
	var (
		e0 = top.Entities[d0]
		e1 = top.Entities[d1]
		nv = len(top.Vertices)
	)
	A := sparse.NewDOK(len(e0), nv)
	for i, verts := range e0 {
		for _, v := range verts {
			A.Set(i, v, 1)
		}
	}
	B := sparse.NewDOK(len(e1), nv)
	for i, verts := range e1 {
		for _, v := range verts {
			B.Set(i, v, 1)
		}
	}
	P := sparse.NewCSR(len(e0), len(e1), nil, nil, nil)
	P.Mul(A.ToCSR(), B.ToCSR().T())
	C = utils.NewMatrix(len(e0), len(e1))
	for i := 0; i < len(e0); i++ {
		for j := 0; j < len(e1); j++ {
			C.Set(i, j, P.At(i, j))
		}
	}
	return
}
