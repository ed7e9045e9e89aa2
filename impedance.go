package impedance

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-radiation-impedance/internal/filter"
)

// Model computes a radiation impedance curve over a frequency sweep.
// Implementations are immutable values and safe for concurrent use.
type Model interface {
	// Name returns a short identifier used in curves and reports.
	Name() string

	// Evaluate validates the model parameters and the sweep, then returns
	// R and X for every frequency. Models that generate their own grid
	// (Laine) ignore the sweep.
	Evaluate(sweep Sweep) (Curve, error)
}

// Model names.
const (
	NameFlatBaffle      = "flat-baffle"
	NameChalker         = "chalker"
	NameFlanagan        = "flanagan"
	NameSphericalBaffle = "spherical-baffle"
	NameLaine           = "laine"
	NamePoleZero        = "pole-zero"
)

// Error types
var (
	// ErrInvalidConfig indicates invalid model parameters.
	ErrInvalidConfig = errors.New("invalid impedance configuration")

	// ErrInvalidSweep indicates an empty, negative, non-finite or
	// non-increasing frequency sweep.
	ErrInvalidSweep = errors.New("invalid frequency sweep")

	// ErrDomain indicates a mouth radius larger than the sphere radius.
	ErrDomain = errors.New("mouth radius outside sphere domain")

	// ErrSingularFrequency indicates a zero frequency given to a model
	// that is singular there.
	ErrSingularFrequency = errors.New("singular frequency")

	// ErrUnstableFilter indicates a pole-zero design with |cb| >= 1.
	ErrUnstableFilter = filter.ErrUnstable
)

// Medium describes the propagation medium.
type Medium struct {
	// SoundSpeed is the speed of sound in m/s.
	SoundSpeed float64
}

// MediumAtTemperature returns air at the given temperature in °C,
// c = 331.4 + 0.6·T.
func MediumAtTemperature(celsius float64) Medium {
	return Medium{SoundSpeed: soundSpeedAtZero + soundSpeedSlope*celsius}
}

// Validate checks that the sound speed is positive and finite.
func (m Medium) Validate() error {
	if !(m.SoundSpeed > 0) || math.IsInf(m.SoundSpeed, 0) {
		return fmt.Errorf("%w: sound speed %v m/s", ErrInvalidConfig, m.SoundSpeed)
	}
	return nil
}

// Wavenumber returns k = 2πf/c.
func (m Medium) Wavenumber(freqHz float64) float64 {
	return 2 * math.Pi * freqHz / m.SoundSpeed
}

// Curve is a normalized radiation impedance Z = R + jX sampled on a grid.
type Curve struct {
	// Model is the name of the model that produced the curve.
	Model string

	// Frequencies in Hz.
	Frequencies []float64

	// R is the normalized resistance at each frequency.
	R []float64

	// X is the normalized reactance at each frequency.
	X []float64
}

// Len returns the number of frequency points.
func (c Curve) Len() int {
	return len(c.Frequencies)
}

// At returns Z at index i.
func (c Curve) At(i int) complex128 {
	return complex(c.R[i], c.X[i])
}

// Crossing returns the first frequency at which R reaches level.
func (c Curve) Crossing(level float64) (float64, bool) {
	for i, r := range c.R {
		if r >= level {
			return c.Frequencies[i], true
		}
	}
	return 0, false
}

func newCurve(name string, freqs []float64) Curve {
	return Curve{
		Model:       name,
		Frequencies: slices.Clone(freqs),
		R:           make([]float64, len(freqs)),
		X:           make([]float64, len(freqs)),
	}
}

func validateRadius(radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: radius %v m (must be positive and finite)", ErrInvalidConfig, radius)
	}
	return nil
}

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: series order %d (must be at least 1)", ErrInvalidConfig, order)
	}
	return nil
}
