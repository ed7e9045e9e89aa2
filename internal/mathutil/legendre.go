package mathutil

// LegendreP evaluates the Legendre polynomials P₀(x) … Pₙ(x) for n = nmax
// using Bonnet's recurrence
//
//	(l+1)·Pₗ₊₁(x) = (2l+1)·x·Pₗ(x) − l·Pₗ₋₁(x)
//
// and stores them in dst, which is grown if needed.
func LegendreP(nmax int, x float64, dst []float64) []float64 {
	if nmax < 0 {
		return dst[:0]
	}
	dst = grow(dst, nmax+1)

	dst[0] = 1
	if nmax == 0 {
		return dst
	}
	dst[1] = x
	for l := 1; l < nmax; l++ {
		fl := float64(l)
		dst[l+1] = ((2*fl+1)*x*dst[l] - fl*dst[l-1]) / (fl + 1)
	}
	return dst
}
