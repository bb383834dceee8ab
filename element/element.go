package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/utils"
)

// Element is a finite element on a reference cell: a polynomial span
// inside a bounding orthonormal set, a dual basis of functionals, and
// the coefficient matrix that expresses the nodal basis against the
// orthonormal set.
type Element struct {
	Family          Family
	Cell            cell.Type
	Degree          int
	EmbeddedDegree  int
	ValueShape      []int
	LagrangeVariant LagrangeVariant
	DPCVariant      DPCVariant
	Discontinuous   bool

	// Coefficients is ndofs x valueSize*np with np the dimension of
	// the orthonormal set of the embedded degree; basis function i has
	// component c equal to sum_j Coefficients[i][c*np+j] phi_j.
	Coefficients utils.Matrix
	Functionals  []Functional
	EntityDofs   [4][][]int
}

func (e *Element) NumDofs() int {
	nd, _ := e.Coefficients.Dims()
	return nd
}

func (e *Element) ValueSize() (vs int) {
	vs = 1
	for _, s := range e.ValueShape {
		vs *= s
	}
	return
}

// newElement assembles an element from its span and functionals.
func newElement(fam Family, t cell.Type, degree, embedded int,
	vshape []int, W utils.Matrix, fns []Functional) (e *Element, err error) {
	var (
		np = polyset.Dim(t, embedded)
		vs = 1
	)
	for _, s := range vshape {
		vs *= s
	}
	D, err := dualMatrix(fns, vs, np)
	if err != nil {
		return
	}
	C, err := solveDual(W, D)
	if err != nil {
		return
	}
	e = &Element{
		Family:         fam,
		Cell:           t,
		Degree:         degree,
		EmbeddedDegree: embedded,
		ValueShape:     vshape,
		Coefficients:   C,
		Functionals:    fns,
	}
	err = e.buildEntityDofs()
	return
}

func (e *Element) buildEntityDofs() (err error) {
	top, err := cell.GetTopology(e.Cell)
	if err != nil {
		return
	}
	for d := 0; d <= 3; d++ {
		n := top.NumEntities(d)
		e.EntityDofs[d] = make([][]int, n)
		for i := range e.EntityDofs[d] {
			e.EntityDofs[d][i] = []int{}
		}
	}
	for i, f := range e.Functionals {
		if f.EntityDim < 0 || f.EntityDim > 3 ||
			f.EntityIndex < 0 || f.EntityIndex >= len(e.EntityDofs[f.EntityDim]) {
			err = fmt.Errorf("functional %d on invalid entity (%d,%d)",
				i, f.EntityDim, f.EntityIndex)
			return
		}
		e.EntityDofs[f.EntityDim][f.EntityIndex] =
			append(e.EntityDofs[f.EntityDim][f.EntityIndex], i)
	}
	return
}

// Tabulate evaluates every basis function at the points X, one row per
// point. The result holds one matrix per value component, each
// npoints x ndofs.
func (e *Element) Tabulate(X utils.Matrix) (T []utils.Matrix, err error) {
	var (
		vs    = e.ValueSize()
		ndofs = e.NumDofs()
		np    = polyset.Dim(e.Cell, e.EmbeddedDegree)
	)
	if e.Cell == cell.Point {
		nr, _ := X.Dims()
		T = []utils.Matrix{utils.NewMatrix(nr, ndofs)}
		for i := 0; i < nr; i++ {
			for k := 0; k < ndofs; k++ {
				T[0].Set(i, k, e.Coefficients.At(k, 0))
			}
		}
		return
	}
	tab, err := polyset.Tabulate(e.Cell, e.EmbeddedDegree, 0, X)
	if err != nil {
		return
	}
	phi := tab[0]
	T = make([]utils.Matrix, vs)
	for c := 0; c < vs; c++ {
		Cc := utils.NewMatrix(ndofs, np)
		for k := 0; k < ndofs; k++ {
			for j := 0; j < np; j++ {
				Cc.Set(k, j, e.Coefficients.At(k, c*np+j))
			}
		}
		T[c] = phi.Mul(Cc.Transpose())
	}
	return
}

// MakeDiscontinuous returns a copy of the element with every degree of
// freedom reassociated to the cell interior. Applying it twice is the
// same as applying it once.
func (e *Element) MakeDiscontinuous() (d *Element, err error) {
	dim := e.Cell.Dim()
	fns := make([]Functional, len(e.Functionals))
	for i, f := range e.Functionals {
		fns[i] = Functional{EntityDim: dim, EntityIndex: 0, Coeffs: f.Coeffs}
	}
	d = &Element{
		Family:          e.Family,
		Cell:            e.Cell,
		Degree:          e.Degree,
		EmbeddedDegree:  e.EmbeddedDegree,
		ValueShape:      e.ValueShape,
		LagrangeVariant: e.LagrangeVariant,
		DPCVariant:      e.DPCVariant,
		Discontinuous:   true,
		Coefficients:    e.Coefficients,
		Functionals:     fns,
	}
	err = d.buildEntityDofs()
	return
}
