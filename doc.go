// Package impedance computes the normalized acoustic radiation impedance
// Z(f) = R(f) + jX(f) at the mouth opening of a vocal-tract model, under
// several competing approximations.
//
// # Features
//
//   - Circular piston in an infinite flat baffle (truncated power series)
//   - Two closed-form low-frequency approximations (Chalker, Flanagan)
//   - Circular piston in a rigid spherical baffle (modal sum, the reference)
//   - Laine's empirical first-order Z-domain filter
//   - A calibrated pole-zero Z-domain filter with guaranteed stability
//   - Optional SIMD acceleration of scaling and complex products via
//     github.com/tphakala/simd
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For a single model through the function API:
//
//	sweep, err := impedance.NewSweep(100, 20000, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := impedance.MediumAtTemperature(35).SoundSpeed
//	r, x, err := impedance.FlatBaffleImpedance(sweep, c, 0.015, 40)
//
// For all models at once:
//
//	zSweep, err := impedance.ZDomainSweep(100, 50)
//	models := impedance.ComparisonSet(impedance.MediumAtTemperature(35), 0.015, 0.09, 40, 50, zSweep)
//	curves, err := impedance.EvaluateAll(models, sweep, true)
//
// # Models
//
//   - [FlatBaffle]: R and X from the piston series in x = 2ka. The series has
//     no convergence check and diverges for large ka.
//   - [Chalker], [Flanagan]: low-ka closed forms.
//   - [SphericalBaffle]: modal sum over spherical Bessel functions. Requires
//     the mouth radius not to exceed the sphere radius ([ErrDomain]) and is
//     undefined at 0 Hz ([ErrSingularFrequency]).
//   - [Laine]: evaluated on its own grid below 10 kHz. Accurate for radii up
//     to 1.6 cm and frequencies up to 5 kHz.
//   - [PoleZero]: H(z) = ca·(z − 1)/(z − cb), designed at twice the highest
//     frequency of its grid so that Re H = 0.5 at a radius-dependent
//     transition frequency and H = 1 at Nyquist. Run it on [ZDomainSweep]
//     (design rate about 100 kHz); rates below [MinPoleZeroSampleRate] are
//     outside its intended use.
//
// Curves are normalized by ρc, so R tends to 1 at high frequency for the
// physical models.
//
// # Pole-Zero Design
//
// The transition frequency is f_t(a) = K1/max(a, 0.5 cm) + K2 with constants
// fitted against the spherical baffle (see [PoleZeroCalibration]). Of the two
// roots of the design quadratic only one keeps the pole inside the unit
// circle; [DesignPoleZero] always selects it and reports [ErrUnstableFilter]
// if the result is still unstable. Radii under 0.5 cm get an amplitude
// correction proportional to a².
//
// # Thread Safety
//
// All models are immutable values and all functions are pure, so everything
// in the package is safe for concurrent use. [EvaluateAll] is the only
// function that starts goroutines, and only when asked to.
package impedance
