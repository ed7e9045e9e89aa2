package impedance

import (
	"fmt"
	"math"

	"github.com/tphakala/go-radiation-impedance/internal/filter"
)

// LaineCoefficients parameterize the empirical first-order mouth radiation
// filter as affine functions of √(mouth area in cm²).
type LaineCoefficients struct {
	// SampleRate is the nominal rate the fit was made at, in Hz.
	SampleRate float64

	CaIntercept, CaSlope float64
	CbIntercept, CbSlope float64
}

// DefaultLaineCoefficients returns the published fit at 20 kHz.
func DefaultLaineCoefficients() LaineCoefficients {
	return LaineCoefficients{
		SampleRate:  laineSampleRate,
		CaIntercept: laineCaIntercept,
		CaSlope:     laineCaSlope,
		CbIntercept: laineCbIntercept,
		CbSlope:     laineCbSlope,
	}
}

// Validate checks that the coefficients are usable.
func (lc LaineCoefficients) Validate() error {
	if !(lc.SampleRate > 0) || math.IsInf(lc.SampleRate, 0) {
		return fmt.Errorf("%w: laine sample rate %v Hz", ErrInvalidConfig, lc.SampleRate)
	}
	for _, v := range []float64{lc.CaIntercept, lc.CaSlope, lc.CbIntercept, lc.CbSlope} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite laine coefficient", ErrInvalidConfig)
		}
	}
	return nil
}

// Filter returns the pole-zero coefficients for a mouth of the given radius.
func (lc LaineCoefficients) Filter(radius float64) filter.Coefficients {
	sqrtArea := math.Sqrt(math.Pi * radius * radius * laineAreaScale)
	return filter.Coefficients{
		Ca: lc.CaIntercept + lc.CaSlope*sqrtArea,
		Cb: lc.CbIntercept + lc.CbSlope*sqrtArea,
	}
}

// Laine is the empirical Z-domain radiation model
//
//	H(z) = ca·(1 − z⁻¹)/(1 − cb·z⁻¹)
//
// evaluated on its own grid f = 0, step, 2·step, … below half the nominal
// sample rate. The grid has floor(fs/2/step) points, so when step does not
// divide fs/2 it stops one point short of a half-open [0, fs/2) range
// (333 points rather than 334 at a 30 Hz step). The fit is accurate for
// radii up to 1.6 cm and frequencies up to 5 kHz; outside that range results
// are still returned.
type Laine struct {
	// Radius is the mouth radius in m.
	Radius float64

	// Step is the frequency grid spacing in Hz.
	Step float64

	// Coefficients defaults to DefaultLaineCoefficients when zero.
	Coefficients LaineCoefficients
}

// Name implements Model.
func (Laine) Name() string { return NameLaine }

// InAccurateRange reports whether the radius lies inside the fitted range.
// Frequencies above LaineMaxAccurateFrequency are outside the fit regardless.
func (m Laine) InAccurateRange() bool {
	return m.Radius <= laineMaxRadius
}

// LaineMaxAccurateFrequency is the upper end of the fitted band in Hz.
const LaineMaxAccurateFrequency = laineMaxAccurateHz

func (m Laine) coefficients() LaineCoefficients {
	if m.Coefficients == (LaineCoefficients{}) {
		return DefaultLaineCoefficients()
	}
	return m.Coefficients
}

// Sweep returns the model's own frequency grid: floor(fs/2/step) points
// starting at 0 Hz. The last point is therefore at most fs/2 − step.
func (m Laine) Sweep() (Sweep, error) {
	lc := m.coefficients()
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	if !(m.Step > 0) || math.IsInf(m.Step, 0) {
		return nil, fmt.Errorf("%w: step %v Hz (must be positive and finite)", ErrInvalidSweep, m.Step)
	}
	n := int(math.Floor(lc.SampleRate / 2 / m.Step))
	if n < 1 {
		return nil, fmt.Errorf("%w: step %v Hz leaves no points below %v Hz", ErrInvalidSweep, m.Step, lc.SampleRate/2)
	}
	s := make(Sweep, n)
	for i := range s {
		s[i] = float64(i) * m.Step
	}
	return s, nil
}

// Evaluate implements Model. The sweep argument is ignored; see Sweep.
func (m Laine) Evaluate(Sweep) (Curve, error) {
	if err := validateRadius(m.Radius); err != nil {
		return Curve{}, err
	}
	freqs, err := m.Sweep()
	if err != nil {
		return Curve{}, err
	}

	lc := m.coefficients()
	resp := filter.ComputeResponse(lc.Filter(m.Radius), freqs, lc.SampleRate)
	return Curve{
		Model:       NameLaine,
		Frequencies: freqs,
		R:           resp.Real,
		X:           resp.Imag,
	}, nil
}
