// Package mathutil provides special-function kernels for the radiation impedance
// models: spherical Bessel functions and Legendre polynomials.
package mathutil

import (
	"math"
)

// SphericalBesselJ computes the spherical Bessel functions of the first kind
// j₀(x) … jₙ(x) for n = nmax and stores them in dst, which is grown if needed.
//
// The sequence is generated with Miller's downward recurrence
//
//	jₗ₋₁(x) = (2l+1)/x · jₗ(x) − jₗ₊₁(x)
//
// started well above max(nmax, x), then normalized against the closed form
// of j₀ or j₁, whichever has the larger magnitude at x. Upward recurrence is
// unstable for orders above x, which is where the spherical-baffle sum spends
// most of its terms.
//
// At x = 0, j₀ = 1 and every higher order is 0.
func SphericalBesselJ(nmax int, x float64, dst []float64) []float64 {
	if nmax < 0 {
		return dst[:0]
	}

	// Normalization needs j₁ even when only j₀ is requested.
	order := max(nmax, 1)
	dst = grow(dst, order+1)

	if x == 0 {
		dst[0] = 1
		for l := 1; l <= order; l++ {
			dst[l] = 0
		}
		return dst[:nmax+1]
	}

	top := max(order, int(math.Abs(x)))
	start := top + millerStartPadding + int(math.Sqrt(millerAccuracy*float64(top)))

	// Seed jₛₜₐᵣₜ₊₁ = 0, jₛₜₐᵣₜ = tiny and walk down to j₀.
	next, cur := 0.0, millerSeed
	for l := start; l > 0; l-- {
		prev := float64(2*l+1)/x*cur - next
		next, cur = cur, prev
		if l-1 <= order {
			dst[l-1] = cur
		}
		if math.Abs(cur) > millerRescaleThreshold {
			next *= millerRescaleFactor
			cur *= millerRescaleFactor
			for i := l - 1; i <= order; i++ {
				dst[i] *= millerRescaleFactor
			}
		}
	}

	sinX, cosX := math.Sincos(x)
	j0 := sinX / x
	j1 := sinX/(x*x) - cosX/x

	var scale float64
	if math.Abs(j0) >= math.Abs(j1) {
		scale = j0 / dst[0]
	} else {
		scale = j1 / dst[1]
	}
	for l := 0; l <= order; l++ {
		dst[l] *= scale
	}
	return dst[:nmax+1]
}

// SphericalBesselY computes the spherical Bessel functions of the second kind
// (spherical Neumann functions) y₀(x) … yₙ(x) for n = nmax into dst.
//
// Upward recurrence is stable for yₙ:
//
//	yₗ₊₁(x) = (2l+1)/x · yₗ(x) − yₗ₋₁(x)
//
// yₙ(0) is −Inf for every order. For small x and high orders the sequence
// overflows to −Inf; that value is returned unchanged.
func SphericalBesselY(nmax int, x float64, dst []float64) []float64 {
	if nmax < 0 {
		return dst[:0]
	}
	dst = grow(dst, nmax+1)

	if x == 0 {
		for l := range dst {
			dst[l] = math.Inf(-1)
		}
		return dst
	}

	sinX, cosX := math.Sincos(x)
	dst[0] = -cosX / x
	if nmax == 0 {
		return dst
	}
	dst[1] = -cosX/(x*x) - sinX/x
	for l := 1; l < nmax; l++ {
		dst[l+1] = float64(2*l+1)/x*dst[l] - dst[l-1]
		if math.IsInf(dst[l+1], -1) {
			// Once overflowed the recurrence would produce −Inf − (−Inf).
			for i := l + 2; i <= nmax; i++ {
				dst[i] = math.Inf(-1)
			}
			break
		}
	}
	return dst
}

// SphericalJn returns jₙ(x) for a single order.
func SphericalJn(n int, x float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	return SphericalBesselJ(n, x, nil)[n]
}

// SphericalYn returns yₙ(x) for a single order.
func SphericalYn(n int, x float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	return SphericalBesselY(n, x, nil)[n]
}

func grow(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}
	return dst[:n]
}
