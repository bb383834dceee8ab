package polyset

// legendreShifted evaluates the (unnormalized) shifted Legendre
// polynomials L_i(2x-1), i = 0..nmax, together with d/dx, at a single
// point x in [0,1].
func legendreShifted(nmax int, x float64) (v, d []float64) {
	v = make([]float64, nmax+1)
	d = make([]float64, nmax+1)
	t := 2*x - 1
	v[0] = 1
	if nmax == 0 {
		return
	}
	v[1] = t
	d[1] = 2
	for i := 1; i < nmax; i++ {
		fi := float64(i)
		// (i+1) L_{i+1} = (2i+1) t L_i - i L_{i-1}
		v[i+1] = ((2*fi+1)*t*v[i] - fi*v[i-1]) / (fi + 1)
		d[i+1] = ((2*fi+1)*(2*v[i]+t*d[i]) - fi*d[i-1]) / (fi + 1)
	}
	return
}

// jacobiShifted evaluates P_q^(alpha,0)(2x-1), q = 0..nmax, with d/dx,
// at a single point x in [0,1]. alpha must be non-negative.
func jacobiShifted(alpha float64, nmax int, x float64) (v, d []float64) {
	v = make([]float64, nmax+1)
	d = make([]float64, nmax+1)
	t := 2*x - 1
	v[0] = 1
	if nmax == 0 {
		return
	}
	v[1] = ((alpha+2)*t + alpha) / 2
	d[1] = alpha + 2
	for q := 2; q <= nmax; q++ {
		fq := float64(q)
		c1 := 2 * fq * (fq + alpha) * (2*fq + alpha - 2)
		c2 := (2*fq + alpha - 1) * alpha * alpha
		c3 := (2*fq + alpha - 2) * (2*fq + alpha - 1) * (2*fq + alpha)
		c4 := 2 * (fq + alpha - 1) * (fq - 1) * (2*fq + alpha)
		v[q] = ((c2+c3*t)*v[q-1] - c4*v[q-2]) / c1
		d[q] = ((c2+c3*t)*d[q-1] + 2*c3*v[q-1] - c4*d[q-2]) / c1
	}
	return
}
