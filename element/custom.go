package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
	"github.com/notargets/gofel/polyset"
	"github.com/notargets/gofel/utils"
)

// CreateCustomElement assembles an element from caller-provided data:
// the span rows W against the orthonormal set of the embedded degree,
// and the dual functionals. The span must be square with the
// functional count, and the pairing must be invertible.
func CreateCustomElement(t cell.Type, valueShape []int, degree, embedded int,
	W utils.Matrix, fns []Functional, discontinuous bool) (e *Element, err error) {
	if _, err = cell.GetTopology(t); err != nil {
		return
	}
	if degree < 0 || embedded < degree {
		err = fmt.Errorf("%w: degree %d with embedded degree %d",
			ErrInvalidDegree, degree, embedded)
		return
	}
	var (
		vs = 1
		np = polyset.Dim(t, embedded)
	)
	for _, s := range valueShape {
		if s <= 0 {
			err = fmt.Errorf("invalid value shape %v", valueShape)
			return
		}
		vs *= s
	}
	if _, wc := W.Dims(); wc != vs*np {
		err = fmt.Errorf("span width %d does not match %d components of a degree %d set",
			wc, vs, embedded)
		return
	}
	if e, err = newElement(Custom, t, degree, embedded, valueShape, W, fns); err != nil {
		return
	}
	if discontinuous {
		e, err = e.MakeDiscontinuous()
	}
	return
}
