package polyset

// Collapsed-coordinate Jacobi products on the unit simplices. The
// recurrences below are written entirely in polynomial form (no
// division by the collapsed coordinates), so they remain valid on the
// degenerate edges and at the apex.

// rawInterval returns the shifted Legendre values and d/dx at x.
func rawInterval(n int, x float64) [][]float64 {
	v, d := legendreShifted(n, x)
	return [][]float64{v, d}
}

// rawTriangle evaluates the Dubiner products f_p(x,y) g_pq(y), where
// f_p = P_p(a) (1-y)^p with a = (2x+y-1)/(1-y) and g_pq is a shifted
// Jacobi polynomial with weight exponent 2p+1.
func rawTriangle(n int, x, y float64) [][]float64 {
	s := 2*x + y - 1
	om := 1 - y
	f := make([]float64, n+1)
	fx := make([]float64, n+1)
	fy := make([]float64, n+1)
	f[0] = 1
	if n > 0 {
		f[1] = s
		fx[1] = 2
		fy[1] = 1
	}
	for p := 1; p < n; p++ {
		fp := float64(p)
		c1 := (2*fp + 1) / (fp + 1)
		c2 := fp / (fp + 1)
		f[p+1] = c1*s*f[p] - c2*om*om*f[p-1]
		fx[p+1] = c1*(2*f[p]+s*fx[p]) - c2*om*om*fx[p-1]
		fy[p+1] = c1*(f[p]+s*fy[p]) - c2*(om*om*fy[p-1]-2*om*f[p-1])
	}
	var (
		vals = make([]float64, 0, (n+1)*(n+2)/2)
		ddx  = make([]float64, 0, (n+1)*(n+2)/2)
		ddy  = make([]float64, 0, (n+1)*(n+2)/2)
	)
	for p := 0; p <= n; p++ {
		g, gd := jacobiShifted(float64(2*p+1), n-p, y)
		for q := 0; q <= n-p; q++ {
			vals = append(vals, f[p]*g[q])
			ddx = append(ddx, fx[p]*g[q])
			ddy = append(ddy, fy[p]*g[q]+f[p]*gd[q])
		}
	}
	return [][]float64{vals, ddx, ddy}
}

func rawTet(n int, x, y, z float64) [][]float64 {
	var (
		s  = 2*x + y + z - 1
		om = 1 - y - z
	)
	F := make([]float64, n+1)
	Fx := make([]float64, n+1)
	Fy := make([]float64, n+1)
	Fz := make([]float64, n+1)
	F[0] = 1
	if n > 0 {
		F[1] = s
		Fx[1] = 2
		Fy[1] = 1
		Fz[1] = 1
	}
	for p := 1; p < n; p++ {
		fp := float64(p)
		c1 := (2*fp + 1) / (fp + 1)
		c2 := fp / (fp + 1)
		F[p+1] = c1*s*F[p] - c2*om*om*F[p-1]
		Fx[p+1] = c1*(2*F[p]+s*Fx[p]) - c2*om*om*Fx[p-1]
		Fy[p+1] = c1*(F[p]+s*Fy[p]) - c2*(om*om*Fy[p-1]-2*om*F[p-1])
		Fz[p+1] = c1*(F[p]+s*Fz[p]) - c2*(om*om*Fz[p-1]-2*om*F[p-1])
	}
	var (
		nd   = (n + 1) * (n + 2) * (n + 3) / 6
		vals = make([]float64, 0, nd)
		ddx  = make([]float64, 0, nd)
		ddy  = make([]float64, 0, nd)
		ddz  = make([]float64, 0, nd)
	)
	for p := 0; p <= n; p++ {
		// G_q = P_q^(2p+1,0)(b) (1-z)^q with b = (2y+z-1)/(1-z)
		alpha := float64(2*p + 1)
		sg := 2*y + z - 1
		oz := 1 - z
		G := make([]float64, n-p+1)
		Gy := make([]float64, n-p+1)
		Gz := make([]float64, n-p+1)
		G[0] = 1
		if n-p > 0 {
			G[1] = ((alpha+2)*sg + alpha*oz) / 2
			Gy[1] = alpha + 2
			Gz[1] = ((alpha + 2) - alpha) / 2
		}
		for q := 2; q <= n-p; q++ {
			fq := float64(q)
			c1 := 2 * fq * (fq + alpha) * (2*fq + alpha - 2)
			c2 := (2*fq + alpha - 1) * alpha * alpha
			c3 := (2*fq + alpha - 2) * (2*fq + alpha - 1) * (2*fq + alpha)
			c4 := 2 * (fq + alpha - 1) * (fq - 1) * (2*fq + alpha)
			G[q] = ((c2*oz+c3*sg)*G[q-1] - c4*oz*oz*G[q-2]) / c1
			Gy[q] = ((c2*oz+c3*sg)*Gy[q-1] + 2*c3*G[q-1] - c4*oz*oz*Gy[q-2]) / c1
			Gz[q] = ((c2*oz+c3*sg)*Gz[q-1] + (c3-c2)*G[q-1] -
				c4*(oz*oz*Gz[q-2]-2*oz*G[q-2])) / c1
		}
		for q := 0; q <= n-p; q++ {
			H, Hd := jacobiShifted(float64(2*p+2*q+2), n-p-q, z)
			for r := 0; r <= n-p-q; r++ {
				vals = append(vals, F[p]*G[q]*H[r])
				ddx = append(ddx, Fx[p]*G[q]*H[r])
				ddy = append(ddy, Fy[p]*G[q]*H[r]+F[p]*Gy[q]*H[r])
				ddz = append(ddz, Fz[p]*G[q]*H[r]+F[p]*Gz[q]*H[r]+F[p]*G[q]*Hd[r])
			}
		}
	}
	return [][]float64{vals, ddx, ddy, ddz}
}
