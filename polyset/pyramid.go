package polyset

// The pyramid set is rational: members have the form
//
//	L_p(2a-1) L_q(2b-1) (1-z)^max(p,q) P_r^(2 max(p,q)+2, 0)(2z-1)
//
// with a = x/(1-z), b = y/(1-z) and r <= n - max(p,q). The horizontal
// factors are computed with division-free recurrences; the remaining
// division by (1-z)^min(p,q) is guarded at the apex, where every
// member with p or q nonzero vanishes.

const pyramidApexTol = 1.e-10

func rawPyramid(n int, x, y, z float64) [][]float64 {
	var (
		oz = 1 - z
		sx = 2*x + z - 1
		sy = 2*y + z - 1
	)
	// Fx_p = L_p(2a-1) (1-z)^p and partials; same for Fy_q
	Fx := make([]float64, n+1)
	Fxx := make([]float64, n+1)
	Fxz := make([]float64, n+1)
	Fy := make([]float64, n+1)
	Fyy := make([]float64, n+1)
	Fyz := make([]float64, n+1)
	Fx[0], Fy[0] = 1, 1
	if n > 0 {
		Fx[1], Fxx[1], Fxz[1] = sx, 2, 1
		Fy[1], Fyy[1], Fyz[1] = sy, 2, 1
	}
	for p := 1; p < n; p++ {
		fp := float64(p)
		c1 := (2*fp + 1) / (fp + 1)
		c2 := fp / (fp + 1)
		Fx[p+1] = c1*sx*Fx[p] - c2*oz*oz*Fx[p-1]
		Fxx[p+1] = c1*(2*Fx[p]+sx*Fxx[p]) - c2*oz*oz*Fxx[p-1]
		Fxz[p+1] = c1*(Fx[p]+sx*Fxz[p]) - c2*(oz*oz*Fxz[p-1]-2*oz*Fx[p-1])
		Fy[p+1] = c1*sy*Fy[p] - c2*oz*oz*Fy[p-1]
		Fyy[p+1] = c1*(2*Fy[p]+sy*Fyy[p]) - c2*oz*oz*Fyy[p-1]
		Fyz[p+1] = c1*(Fy[p]+sy*Fyz[p]) - c2*(oz*oz*Fyz[p-1]-2*oz*Fy[p-1])
	}
	var (
		nd   = (n + 1) * (n + 2) * (2*n + 3) / 6
		vals = make([]float64, 0, nd)
		ddx  = make([]float64, 0, nd)
		ddy  = make([]float64, 0, nd)
		ddz  = make([]float64, 0, nd)
	)
	atApex := oz < pyramidApexTol
	for p := 0; p <= n; p++ {
		for q := 0; q <= n; q++ {
			mn, mx := p, q
			if mn > mx {
				mn, mx = mx, mn
			}
			var r0, r0x, r0y, r0z float64
			if atApex {
				if p == 0 && q == 0 {
					r0 = 1
				}
				// Derivatives at the apex are left zero; the apex is
				// only ever probed through point evaluations.
			} else {
				ozm := 1.
				for k := 0; k < mn; k++ {
					ozm /= oz
				}
				r0 = Fx[p] * Fy[q] * ozm
				r0x = Fxx[p] * Fy[q] * ozm
				r0y = Fx[p] * Fyy[q] * ozm
				r0z = (Fxz[p]*Fy[q]+Fx[p]*Fyz[q])*ozm +
					float64(mn)*Fx[p]*Fy[q]*ozm/oz
			}
			H, Hd := jacobiShifted(float64(2*mx+2), n-mx, z)
			for r := 0; r <= n-mx; r++ {
				vals = append(vals, r0*H[r])
				ddx = append(ddx, r0x*H[r])
				ddy = append(ddy, r0y*H[r])
				ddz = append(ddz, r0z*H[r]+r0*Hd[r])
			}
		}
	}
	return [][]float64{vals, ddx, ddy, ddz}
}
