package utils

import "math"

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	if flipped {
		y = 1. / y
	}
	return
}

// Near compares with a relative tolerance of roughly eight digits,
// falling back to absolute comparison near zero.
func Near(a, b float64) bool {
	return NearTol(a, b, 1.e-08)
}

func NearTol(a, b, tol float64) bool {
	bound := tol * math.Max(math.Abs(a), math.Abs(b))
	if bound < tol {
		bound = tol
	}
	return math.Abs(a-b) <= bound
}
