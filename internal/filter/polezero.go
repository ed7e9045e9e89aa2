// Package filter provides first-order pole-zero filter design and evaluation
// for Z-domain radiation impedance models.
package filter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/c128"
)

const (
	// Quadratic for the transition constraint: qa·r² + qb·r + qc = 0 with
	// qa = 2θ, qb = −2(θ+1), qc = θ+1.
	quadATheta = 2.0
	quadBScale = -2.0
	quadDiscC  = 4.0

	twoPi = 2 * math.Pi
)

// ErrUnstable indicates a designed pole on or outside the unit circle.
var ErrUnstable = errors.New("unstable filter")

// ErrInvalidParams indicates invalid design parameters.
var ErrInvalidParams = errors.New("invalid filter parameters")

// Coefficients describe the one-pole, one-zero transfer function
//
//	H(z) = Ca·(z − 1)/(z − Cb) = Ca·(1 − z⁻¹)/(1 − Cb·z⁻¹)
//
// with its zero at DC and its pole at Cb.
type Coefficients struct {
	Ca float64
	Cb float64
}

// Stable reports whether the pole lies strictly inside the unit circle.
// NaN coefficients are never stable.
func (c Coefficients) Stable() bool {
	return math.Abs(c.Cb) < 1
}

// Response evaluates H(e^{jωT}) at a single frequency.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z := cmplx.Exp(complex(0, twoPi*freqHz/sampleRate))
	return complex(c.Ca, 0) * (z - 1) / (z - complex(c.Cb, 0))
}

// DesignParams holds the inputs of the transition-frequency design.
type DesignParams struct {
	// TransitionFreq is the frequency in Hz where Re H must equal 0.5.
	TransitionFreq float64

	// SampleRate is the design sample rate in Hz.
	SampleRate float64
}

// Validate checks if design parameters are valid.
func (p *DesignParams) Validate() error {
	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v Hz (must be positive and finite)", ErrInvalidParams, p.SampleRate)
	}
	if !(p.TransitionFreq > 0) || math.IsInf(p.TransitionFreq, 0) {
		return fmt.Errorf("%w: transition frequency %v Hz (must be positive and finite)", ErrInvalidParams, p.TransitionFreq)
	}
	return nil
}

// DesignTransition designs the filter whose real part is exactly 0.5 at the
// transition frequency and which equals 1 at Nyquist (Cb = 2·Ca − 1).
//
// With θ = cos(2π·f_t/fs), forcing Re H = 0.5 gives
//
//	2θ·Ca² − 2(θ+1)·Ca + (θ+1) = 0
//
// and Ca is the root on the −√Δ branch, the one that keeps the pole inside
// the unit circle. It is computed as 2·qc/(−qb + √Δ), which is the same root
// without the 0/0 at θ = 0 (f_t = fs/4).
//
// Returns ErrUnstable when |Cb| ≥ 1 or the solve produced NaN, which happens
// at f_t = fs/2.
func DesignTransition(params DesignParams) (Coefficients, error) {
	if err := params.Validate(); err != nil {
		return Coefficients{}, err
	}

	theta := math.Cos(twoPi * params.TransitionFreq / params.SampleRate)
	_, qb, qc := transitionQuadratic(theta)
	disc := transitionDiscriminant(theta)

	ca := 2 * qc / (-qb + math.Sqrt(disc))
	c := Coefficients{Ca: ca, Cb: 2*ca - 1}

	if !c.Stable() {
		return c, fmt.Errorf("%w: pole at %v (transition %.2f Hz, sample rate %.2f Hz)",
			ErrUnstable, c.Cb, params.TransitionFreq, params.SampleRate)
	}
	return c, nil
}

// TransitionRoots returns both roots of the transition quadratic for a given
// θ = cos(2π·f_t/fs), computed with the textbook formula (−qb ∓ √Δ)/(2·qa).
// minus is the root DesignTransition selects. Both are NaN or ±Inf at θ = 0.
func TransitionRoots(theta float64) (minus, plus float64) {
	qa, qb, _ := transitionQuadratic(theta)
	sqrtDisc := math.Sqrt(transitionDiscriminant(theta))
	return (-qb - sqrtDisc) / (2 * qa), (-qb + sqrtDisc) / (2 * qa)
}

func transitionQuadratic(theta float64) (qa, qb, qc float64) {
	return quadATheta * theta, quadBScale * (theta + 1), theta + 1
}

// transitionDiscriminant is qb² − 4·qa·qc, which reduces to 4(1 − θ²).
// The reduced form cannot go negative through rounding for |θ| ≤ 1.
func transitionDiscriminant(theta float64) float64 {
	return quadDiscC * (1 - theta*theta)
}

// FrequencyResponse holds the complex response of a filter on a frequency grid.
type FrequencyResponse struct {
	// Real part at each frequency.
	Real []float64

	// Imag part at each frequency.
	Imag []float64
}

// ComputeResponse evaluates H(e^{jωT}) over freqs (Hz) at the given sample rate.
//
// The numerator Ca·(z − 1) and the reciprocal denominator 1/(z − Cb) are
// built per frequency and multiplied in one SIMD pass.
func ComputeResponse(c Coefficients, freqs []float64, sampleRate float64) FrequencyResponse {
	n := len(freqs)
	num := make([]complex128, n)
	invDen := make([]complex128, n)
	prod := make([]complex128, n)

	ca := complex(c.Ca, 0)
	cb := complex(c.Cb, 0)
	for i, f := range freqs {
		z := cmplx.Exp(complex(0, twoPi*f/sampleRate))
		num[i] = ca * (z - 1)
		invDen[i] = 1 / (z - cb)
	}

	c128.Mul(prod, num, invDen)

	response := FrequencyResponse{
		Real: make([]float64, n),
		Imag: make([]float64, n),
	}
	for i, h := range prod {
		response.Real[i] = real(h)
		response.Imag[i] = imag(h)
	}
	return response
}
