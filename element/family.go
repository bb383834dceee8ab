package element

import "fmt"

// Family identifies a finite element family.
type Family uint8

const (
	Lagrange Family = iota
	RaviartThomas
	BDM
	Nedelec1
	Nedelec2
	Regge
	HellanHerrmannJohnson
	Bubble
	Serendipity
	DPC
	CrouzeixRaviart
	Hermite
	Iso
	Custom
)

var familyNames = map[Family]string{
	Lagrange:              "P",
	RaviartThomas:         "RT",
	BDM:                   "BDM",
	Nedelec1:              "N1E",
	Nedelec2:              "N2E",
	Regge:                 "Regge",
	HellanHerrmannJohnson: "HHJ",
	Bubble:                "bubble",
	Serendipity:           "serendipity",
	DPC:                   "DPC",
	CrouzeixRaviart:       "CR",
	Hermite:               "Hermite",
	Iso:                   "iso",
	Custom:                "custom",
}

func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("element.Family(%d)", uint8(f))
}

// AllFamilies lists every family CreateElement recognizes, in a fixed
// order.
func AllFamilies() []Family {
	return []Family{
		Lagrange, RaviartThomas, BDM, Nedelec1, Nedelec2, Regge,
		HellanHerrmannJohnson, Bubble, Serendipity, DPC,
		CrouzeixRaviart, Hermite, Iso, Custom,
	}
}

func FamilyFromString(s string) (f Family, err error) {
	for k, v := range familyNames {
		if v == s {
			return k, nil
		}
	}
	err = fmt.Errorf("unknown element family %q", s)
	return
}

// LagrangeVariant selects the nodal distribution or modal flavor of
// Lagrange-type degrees of freedom.
type LagrangeVariant uint8

const (
	VariantUnset LagrangeVariant = iota
	VariantEquispaced
	VariantGLLIsaac
	VariantGLLWarped
	VariantLegendre
	VariantBernstein
)

var lagrangeVariantNames = map[LagrangeVariant]string{
	VariantUnset:      "unset",
	VariantEquispaced: "equispaced",
	VariantGLLIsaac:   "gll_isaac",
	VariantGLLWarped:  "gll_warped",
	VariantLegendre:   "legendre",
	VariantBernstein:  "bernstein",
}

func (v LagrangeVariant) String() string {
	if s, ok := lagrangeVariantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("element.LagrangeVariant(%d)", uint8(v))
}

func LagrangeVariantFromString(s string) (v LagrangeVariant, err error) {
	for k, n := range lagrangeVariantNames {
		if n == s {
			return k, nil
		}
	}
	err = fmt.Errorf("unknown Lagrange variant %q", s)
	return
}

// DPCVariant selects the degrees of freedom of DPC elements.
type DPCVariant uint8

const (
	DPCUnset DPCVariant = iota
	DPCDiagonalEquispaced
	DPCDiagonalGLL
	DPCLegendre
)

var dpcVariantNames = map[DPCVariant]string{
	DPCUnset:              "unset",
	DPCDiagonalEquispaced: "diagonal_equispaced",
	DPCDiagonalGLL:        "diagonal_gll",
	DPCLegendre:           "legendre",
}

func (v DPCVariant) String() string {
	if s, ok := dpcVariantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("element.DPCVariant(%d)", uint8(v))
}

func DPCVariantFromString(s string) (v DPCVariant, err error) {
	for k, n := range dpcVariantNames {
		if n == s {
			return k, nil
		}
	}
	err = fmt.Errorf("unknown DPC variant %q", s)
	return
}
