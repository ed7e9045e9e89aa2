package impedance

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-radiation-impedance/internal/mathutil"
)

// SphericalBaffle is a circular piston set in a rigid sphere, the reference
// model the other approximations are compared against. The mouth subtends
// the polar cap of half-angle φ = asin(a/a_sphere).
type SphericalBaffle struct {
	Medium Medium

	// Radius is the mouth radius in m.
	Radius float64

	// SphereRadius is the baffle sphere radius in m. Must be >= Radius.
	SphereRadius float64

	// Order is the number of modal terms summed.
	Order int
}

// Name implements Model.
func (SphericalBaffle) Name() string { return NameSphericalBaffle }

// Validate checks the model parameters. A mouth larger than the sphere is
// ErrDomain rather than ErrInvalidConfig.
func (m SphericalBaffle) Validate() error {
	if err := m.Medium.Validate(); err != nil {
		return err
	}
	if err := validateRadius(m.Radius); err != nil {
		return err
	}
	if err := validateRadius(m.SphereRadius); err != nil {
		return err
	}
	if m.Radius > m.SphereRadius {
		return fmt.Errorf("%w: radius %v m exceeds sphere radius %v m", ErrDomain, m.Radius, m.SphereRadius)
	}
	return validateOrder(m.Order)
}

// Evaluate implements Model. The modal sum is singular at DC, so a sweep
// containing 0 Hz is rejected with ErrSingularFrequency.
func (m SphericalBaffle) Evaluate(sweep Sweep) (Curve, error) {
	if err := m.Validate(); err != nil {
		return Curve{}, err
	}
	if err := sweep.Validate(); err != nil {
		return Curve{}, err
	}
	if sweep.HasZero() {
		return Curve{}, fmt.Errorf("%w: 0 Hz in spherical baffle sweep", ErrSingularFrequency)
	}

	n := m.Order
	phi := math.Asin(m.Radius / m.SphereRadius)
	legendre := mathutil.LegendreP(n, math.Cos(phi), nil)
	sinHalf := math.Sin(phi / 2)
	sinHalf2 := sinHalf * sinHalf

	// Reused across frequencies; each needs orders 0..n.
	j := make([]float64, n+1)
	y := make([]float64, n+1)

	curve := newCurve(NameSphericalBaffle, sweep)
	for i, f := range sweep {
		kas := m.Medium.Wavenumber(f) * m.SphereRadius
		j = mathutil.SphericalBesselJ(n, kas, j)
		y = mathutil.SphericalBesselY(n, kas, y)

		var r, x float64
		for mode := range n {
			mf := float64(mode)
			width := float64(2*mode + 1)

			pPrev := 1.0
			var jPrev, yPrev float64
			if mode > 0 {
				pPrev = legendre[mode-1]
				jPrev = j[mode-1]
				yPrev = y[mode-1]
			}
			cap2 := pPrev - legendre[mode+1]
			cap2 *= cap2

			re := mf*yPrev - (mf+1)*y[mode+1]
			im := (mf+1)*j[mode+1] - mf*jPrev
			b := math.Hypot(re, im) / width
			sinD, cosD := math.Sincos(math.Atan2(im, re))

			bs := b * sinHalf
			r += cap2 / (kas * kas * width * bs * bs)
			x += cap2 / (width * b * sinHalf2) * (j[mode]*sinD - y[mode]*cosD)
		}
		curve.R[i] = r
		curve.X[i] = x
	}

	f64.Scale(curve.R, curve.R, sphericalScale)
	f64.Scale(curve.X, curve.X, sphericalScale)
	return curve, nil
}
