package impedance

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-radiation-impedance/internal/filter"
)

// PoleZeroCalibration holds the fitted constants of the pole-zero model.
//
// The transition frequency, where the normalized resistance reaches 0.5, is
// modelled as f_t(a) = Slope/max(a, RadiusFloor) + Offset. Below the floor
// the amplitude is scaled by SmallRadiusGain·a².
type PoleZeroCalibration struct {
	Slope           float64 // Hz·m
	Offset          float64 // Hz
	RadiusFloor     float64 // m
	SmallRadiusGain float64 // 1/m²
}

// DefaultPoleZeroCalibration returns the constants fitted against the
// spherical baffle model (9 cm sphere, 40 terms, air at 35 °C).
func DefaultPoleZeroCalibration() PoleZeroCalibration {
	return PoleZeroCalibration{
		Slope:           poleZeroSlope,
		Offset:          poleZeroOffset,
		RadiusFloor:     poleZeroRadiusFloor,
		SmallRadiusGain: poleZeroSmallRadiusGain,
	}
}

// Validate checks the calibration constants.
func (c PoleZeroCalibration) Validate() error {
	for _, v := range []float64{c.Slope, c.Offset, c.RadiusFloor, c.SmallRadiusGain} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite pole-zero calibration", ErrInvalidConfig)
		}
	}
	if c.RadiusFloor <= 0 {
		return fmt.Errorf("%w: radius floor %v m (must be positive)", ErrInvalidConfig, c.RadiusFloor)
	}
	return nil
}

// TransitionFrequency returns f_t for a mouth radius in m.
func (c PoleZeroCalibration) TransitionFrequency(radius float64) float64 {
	return c.Slope/math.Max(radius, c.RadiusFloor) + c.Offset
}

// PoleZeroFilter is a designed H(z) = Ca·(z − 1)/(z − Cb).
type PoleZeroFilter struct {
	Ca float64
	Cb float64

	// SampleRate is the design sample rate in Hz.
	SampleRate float64

	// TransitionFrequency is f_t in Hz.
	TransitionFrequency float64

	// Corrected is set when the small-radius amplitude correction was applied.
	Corrected bool
}

func (p PoleZeroFilter) coefficients() filter.Coefficients {
	return filter.Coefficients{Ca: p.Ca, Cb: p.Cb}
}

// Response evaluates H(e^{jωT}) at freqHz.
func (p PoleZeroFilter) Response(freqHz float64) complex128 {
	return p.coefficients().Response(freqHz, p.SampleRate)
}

// Stable reports whether |Cb| < 1.
func (p PoleZeroFilter) Stable() bool {
	return p.coefficients().Stable()
}

// BelowMinimumRate reports whether the design rate is under
// MinPoleZeroSampleRate, where the calibration was never meant to run.
func (p PoleZeroFilter) BelowMinimumRate() bool {
	return p.SampleRate < MinPoleZeroSampleRate
}

// Junction returns the transmission and reflection coefficients of a tube
// terminated by this impedance.
func (p PoleZeroFilter) Junction() filter.JunctionCoefficients {
	return filter.Junction(p.coefficients())
}

// DesignPoleZero solves the filter for a mouth radius at a sample rate.
//
// Ca is chosen so that Re H(f_t) = 0.5 and Cb = 2·Ca − 1 so that H = 1 at
// Nyquist. Of the two roots only one keeps the pole inside the unit circle,
// and an unstable result is returned as ErrUnstableFilter rather than a
// filter. For radii below the calibration floor Ca is then scaled by
// SmallRadiusGain·a², which leaves Cb unchanged.
func DesignPoleZero(radius, sampleRate float64, cal PoleZeroCalibration) (PoleZeroFilter, error) {
	if err := validateRadius(radius); err != nil {
		return PoleZeroFilter{}, err
	}
	if err := cal.Validate(); err != nil {
		return PoleZeroFilter{}, err
	}

	ft := cal.TransitionFrequency(radius)
	c, err := filter.DesignTransition(filter.DesignParams{TransitionFreq: ft, SampleRate: sampleRate})
	if err != nil {
		if errors.Is(err, filter.ErrInvalidParams) {
			return PoleZeroFilter{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return PoleZeroFilter{}, fmt.Errorf("radius %v m: %w", radius, err)
	}

	p := PoleZeroFilter{
		Ca:                  c.Ca,
		Cb:                  c.Cb,
		SampleRate:          sampleRate,
		TransitionFrequency: ft,
	}
	if radius < cal.RadiusFloor {
		p.Ca *= cal.SmallRadiusGain * radius * radius
		p.Corrected = true
	}
	return p, nil
}

// PoleZero is the calibrated first-order Z-domain model. It is designed at
// twice the highest frequency of its grid and evaluated on that grid.
type PoleZero struct {
	// Radius is the mouth radius in m.
	Radius float64

	// Grid, when set, replaces the sweep passed to Design and Evaluate.
	// Z-domain curves usually extend past the band of the continuous models
	// (see ZDomainSweep); Compare matches them on the shared frequencies.
	Grid Sweep

	// Calibration defaults to DefaultPoleZeroCalibration when zero.
	Calibration PoleZeroCalibration
}

// Name implements Model.
func (PoleZero) Name() string { return NamePoleZero }

func (m PoleZero) grid(sweep Sweep) Sweep {
	if len(m.Grid) > 0 {
		return m.Grid
	}
	return sweep
}

// Design returns the filter the model evaluates for sweep.
func (m PoleZero) Design(sweep Sweep) (PoleZeroFilter, error) {
	sweep = m.grid(sweep)
	if err := sweep.Validate(); err != nil {
		return PoleZeroFilter{}, err
	}
	if sweep.Max() == 0 {
		return PoleZeroFilter{}, fmt.Errorf("%w: design rate is zero", ErrInvalidSweep)
	}
	cal := m.Calibration
	if cal == (PoleZeroCalibration{}) {
		cal = DefaultPoleZeroCalibration()
	}
	return DesignPoleZero(m.Radius, sweep.SampleRate(), cal)
}

// Evaluate implements Model.
func (m PoleZero) Evaluate(sweep Sweep) (Curve, error) {
	sweep = m.grid(sweep)
	p, err := m.Design(sweep)
	if err != nil {
		return Curve{}, err
	}
	resp := filter.ComputeResponse(p.coefficients(), sweep, p.SampleRate)
	return Curve{
		Model:       NamePoleZero,
		Frequencies: slices.Clone([]float64(sweep)),
		R:           resp.Real,
		X:           resp.Imag,
	}, nil
}
