package element

import "errors"

// Creation failures are classified by sentinel so callers can tell a
// bad request apart from a numerically degenerate definition.
var (
	// ErrInvalidDegree reports a degree outside the family's range on
	// the requested cell.
	ErrInvalidDegree = errors.New("element: degree out of range for family on cell")

	// ErrUnsupportedCombination reports a family that is not defined
	// on the requested cell at any degree.
	ErrUnsupportedCombination = errors.New("element: family not defined on cell")

	// ErrIncompatibleVariant reports a variant that cannot be used
	// with the requested family and cell.
	ErrIncompatibleVariant = errors.New("element: variant not available for family on cell")

	// ErrSingularDualSystem reports that the dual pairing matrix could
	// not be inverted, so no basis exists for the given functionals.
	ErrSingularDualSystem = errors.New("element: dual system is singular")
)
