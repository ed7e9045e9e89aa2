package impedance

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// FlatBaffle is the circular piston in an infinite flat baffle, evaluated
// with its truncated power series in x = 2ka.
type FlatBaffle struct {
	Medium Medium

	// Radius is the mouth (piston) radius in m.
	Radius float64

	// Order is the number of series terms. There is no convergence check;
	// for large ka the truncated series diverges and that is returned as is.
	Order int
}

// Name implements Model.
func (FlatBaffle) Name() string { return NameFlatBaffle }

// Validate checks the model parameters.
func (m FlatBaffle) Validate() error {
	if err := m.Medium.Validate(); err != nil {
		return err
	}
	if err := validateRadius(m.Radius); err != nil {
		return err
	}
	return validateOrder(m.Order)
}

// Evaluate implements Model.
//
//	R(x) = Σⱼ (−1)ʲ x^p / dⱼ,        p = 2(j+1)
//	X(x) = 4/π · Σⱼ (−1)ʲ x^p / dⱼ,  p = 2j+1
//
// where dⱼ is the running product of p(p+2) over the terms so far.
func (m FlatBaffle) Evaluate(sweep Sweep) (Curve, error) {
	if err := m.Validate(); err != nil {
		return Curve{}, err
	}
	if err := sweep.Validate(); err != nil {
		return Curve{}, err
	}

	curve := newCurve(NameFlatBaffle, sweep)
	for i, f := range sweep {
		x := 2 * m.Medium.Wavenumber(f) * m.Radius
		curve.R[i] = pistonSeries(x, m.Order, 2)
		curve.X[i] = pistonSeries(x, m.Order, 1)
	}
	f64.Scale(curve.X, curve.X, 4/math.Pi)
	return curve, nil
}

// pistonSeries sums n alternating terms x^p/d with p = first, first+2, …
func pistonSeries(x float64, n, first int) float64 {
	var sum float64
	d := 1.0
	sign := 1.0
	for j := range n {
		p := float64(first + 2*j)
		d *= p * (p + 2)
		sum += sign * math.Pow(x, p) / d
		sign = -sign
	}
	return sum
}
