package impedance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sweep is an ordered set of non-negative frequencies in Hz.
// A valid sweep is finite, strictly increasing and non-empty.
type Sweep []float64

// NewSweep returns the half-open range [minFreq, maxFreq) in step increments.
// The number of points is ceil((maxFreq − minFreq)/step) and point i is
// minFreq + i·step.
func NewSweep(minFreq, maxFreq, step float64) (Sweep, error) {
	for _, v := range []float64{minFreq, maxFreq, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite bound", ErrInvalidSweep)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %v Hz (must be positive)", ErrInvalidSweep, step)
	}
	if minFreq < 0 {
		return nil, fmt.Errorf("%w: minimum %v Hz (must be non-negative)", ErrInvalidSweep, minFreq)
	}
	if maxFreq <= minFreq {
		return nil, fmt.Errorf("%w: maximum %v Hz must exceed minimum %v Hz", ErrInvalidSweep, maxFreq, minFreq)
	}

	n := int(math.Ceil((maxFreq - minFreq) / step))
	s := make(Sweep, n)
	for i := range s {
		s[i] = minFreq + float64(i)*step
	}
	return s, nil
}

// ZDomainSweep returns the Z-domain grid [minFreq, ZDomainMaxFrequency) in
// step increments, on which the pole-zero model is designed at about 100 kHz.
func ZDomainSweep(minFreq, step float64) (Sweep, error) {
	return NewSweep(minFreq, ZDomainMaxFrequency, step)
}

// LinearSweep returns n evenly spaced frequencies covering [minFreq, maxFreq].
func LinearSweep(minFreq, maxFreq float64, n int) (Sweep, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d points (need at least 2)", ErrInvalidSweep, n)
	}
	if math.IsNaN(minFreq) || math.IsInf(minFreq, 0) || math.IsNaN(maxFreq) || math.IsInf(maxFreq, 0) {
		return nil, fmt.Errorf("%w: non-finite bound", ErrInvalidSweep)
	}
	if minFreq < 0 || maxFreq <= minFreq {
		return nil, fmt.Errorf("%w: range [%v, %v] Hz", ErrInvalidSweep, minFreq, maxFreq)
	}
	return Sweep(floats.Span(make([]float64, n), minFreq, maxFreq)), nil
}

// Validate checks the sweep invariants.
func (s Sweep) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSweep)
	}
	for i, f := range s {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite frequency at index %d", ErrInvalidSweep, i)
		}
		if f < 0 {
			return fmt.Errorf("%w: negative frequency %v Hz at index %d", ErrInvalidSweep, f, i)
		}
		if i > 0 && f <= s[i-1] {
			return fmt.Errorf("%w: not strictly increasing at index %d", ErrInvalidSweep, i)
		}
	}
	return nil
}

// Max returns the last (largest) frequency, or 0 for an empty sweep.
func (s Sweep) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// SampleRate returns the pole-zero design rate, twice the largest frequency.
func (s Sweep) SampleRate() float64 {
	return 2 * s.Max()
}

// HasZero reports whether the sweep starts at DC.
func (s Sweep) HasZero() bool {
	return len(s) > 0 && s[0] == 0
}
