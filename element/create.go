package element

import (
	"fmt"

	"github.com/notargets/gofel/cell"
)

// CreateElement builds the reference element of a family on a cell.
// The variants select degree-of-freedom flavors where the family has
// them and are ignored otherwise; discontinuous reassociates every
// degree of freedom with the cell interior.
func CreateElement(f Family, t cell.Type, degree int,
	lv LagrangeVariant, dv DPCVariant, discontinuous bool) (e *Element, err error) {
	if _, err = cell.GetTopology(t); err != nil {
		return
	}
	if degree < 0 {
		err = fmt.Errorf("%w: %v degree %d on %v", ErrInvalidDegree, f, degree, t)
		return
	}
	if t == cell.Point && f != Lagrange {
		err = unsupported(f, t)
		return
	}
	switch f {
	case Lagrange:
		if t == cell.Point && degree != 0 {
			err = invalidDegree(f, t, degree)
			return
		}
		e, err = buildLagrange(t, degree, lv)
	case Iso:
		switch t {
		case cell.Interval, cell.Triangle, cell.Quadrilateral,
			cell.Tetrahedron, cell.Hexahedron:
		default:
			err = unsupported(f, t)
			return
		}
		if degree < 1 {
			err = invalidDegree(f, t, degree)
			return
		}
		e, err = buildIso(t, degree, lv)
	case RaviartThomas, Nedelec1, BDM, Nedelec2:
		if t != cell.Triangle && t != cell.Tetrahedron {
			err = unsupported(f, t)
			return
		}
		if degree < 1 {
			err = invalidDegree(f, t, degree)
			return
		}
		switch f {
		case RaviartThomas:
			e, err = buildRT(t, degree)
		case Nedelec1:
			e, err = buildN1E(t, degree)
		case BDM:
			e, err = buildBDM(t, degree)
		case Nedelec2:
			e, err = buildN2E(t, degree)
		}
	case Regge:
		if t != cell.Triangle && t != cell.Tetrahedron {
			err = unsupported(f, t)
			return
		}
		e, err = buildRegge(t, degree)
	case HellanHerrmannJohnson:
		if t != cell.Triangle {
			err = unsupported(f, t)
			return
		}
		e, err = buildHHJ(t, degree)
	case Bubble:
		floor := bubbleFloor(t)
		if floor < 0 {
			err = unsupported(f, t)
			return
		}
		if degree < floor {
			err = invalidDegree(f, t, degree)
			return
		}
		e, err = buildBubble(t, degree)
	case Serendipity, DPC:
		switch t {
		case cell.Interval, cell.Quadrilateral, cell.Hexahedron:
		default:
			err = unsupported(f, t)
			return
		}
		if f == Serendipity {
			if degree < 1 {
				err = invalidDegree(f, t, degree)
				return
			}
			e, err = buildSerendipity(t, degree)
		} else {
			e, err = buildDPC(t, degree, dv)
		}
	case CrouzeixRaviart:
		if t != cell.Triangle && t != cell.Tetrahedron {
			err = unsupported(f, t)
			return
		}
		if degree != 1 {
			err = invalidDegree(f, t, degree)
			return
		}
		e, err = buildCR(t, degree)
	case Hermite:
		switch t {
		case cell.Interval, cell.Triangle, cell.Tetrahedron:
		default:
			err = unsupported(f, t)
			return
		}
		if degree != 3 {
			err = invalidDegree(f, t, degree)
			return
		}
		e, err = buildHermite(t, degree)
	case Custom:
		err = fmt.Errorf("%w: custom elements need explicit data, use CreateCustomElement",
			ErrUnsupportedCombination)
	default:
		err = fmt.Errorf("unknown element family %v", f)
	}
	if err != nil || e == nil {
		return
	}
	e.LagrangeVariant = lv
	e.DPCVariant = dv
	if discontinuous {
		e, err = e.MakeDiscontinuous()
	}
	return
}

func unsupported(f Family, t cell.Type) error {
	return fmt.Errorf("%w: %v on %v", ErrUnsupportedCombination, f, t)
}

func invalidDegree(f Family, t cell.Type, degree int) error {
	return fmt.Errorf("%w: %v degree %d on %v", ErrInvalidDegree, f, degree, t)
}
