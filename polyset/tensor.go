package polyset

// Tensor-product sets on the box cells, and the prism as the product
// of the triangle set with a Legendre direction. Index ordering
// matches memberDegrees in polyset.go.

func rawQuad(n int, x, y float64) [][]float64 {
	vx, dx := legendreShifted(n, x)
	vy, dy := legendreShifted(n, y)
	var (
		nd   = (n + 1) * (n + 1)
		vals = make([]float64, 0, nd)
		ddx  = make([]float64, 0, nd)
		ddy  = make([]float64, 0, nd)
	)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			vals = append(vals, vx[i]*vy[j])
			ddx = append(ddx, dx[i]*vy[j])
			ddy = append(ddy, vx[i]*dy[j])
		}
	}
	return [][]float64{vals, ddx, ddy}
}

func rawHex(n int, x, y, z float64) [][]float64 {
	vx, dx := legendreShifted(n, x)
	vy, dy := legendreShifted(n, y)
	vz, dz := legendreShifted(n, z)
	var (
		nd   = (n + 1) * (n + 1) * (n + 1)
		vals = make([]float64, 0, nd)
		ddx  = make([]float64, 0, nd)
		ddy  = make([]float64, 0, nd)
		ddz  = make([]float64, 0, nd)
	)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			for k := 0; k <= n; k++ {
				vals = append(vals, vx[i]*vy[j]*vz[k])
				ddx = append(ddx, dx[i]*vy[j]*vz[k])
				ddy = append(ddy, vx[i]*dy[j]*vz[k])
				ddz = append(ddz, vx[i]*vy[j]*dz[k])
			}
		}
	}
	return [][]float64{vals, ddx, ddy, ddz}
}

func rawPrism(n int, x, y, z float64) [][]float64 {
	tri := rawTriangle(n, x, y)
	vz, dz := legendreShifted(n, z)
	var (
		ntri = (n + 1) * (n + 2) / 2
		nd   = ntri * (n + 1)
		vals = make([]float64, 0, nd)
		ddx  = make([]float64, 0, nd)
		ddy  = make([]float64, 0, nd)
		ddz  = make([]float64, 0, nd)
	)
	for i := 0; i < ntri; i++ {
		for k := 0; k <= n; k++ {
			vals = append(vals, tri[0][i]*vz[k])
			ddx = append(ddx, tri[1][i]*vz[k])
			ddy = append(ddy, tri[2][i]*vz[k])
			ddz = append(ddz, tri[0][i]*dz[k])
		}
	}
	return [][]float64{vals, ddx, ddy, ddz}
}
