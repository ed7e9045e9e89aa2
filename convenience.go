package impedance

// Common mouth radii in m.
const (
	// RadiusSmall is below the pole-zero radius floor and exercises the
	// small-radius correction.
	RadiusSmall = 0.003

	// RadiusTypical is a typical open mouth.
	RadiusTypical = 0.015

	// RadiusLaineMax is the largest radius inside the Laine fit.
	RadiusLaineMax = laineMaxRadius
)

// FlatBaffleImpedance evaluates the flat-baffle piston series on sweep.
func FlatBaffleImpedance(sweep Sweep, soundSpeed, radius float64, order int) (r, x []float64, err error) {
	return split(FlatBaffle{Medium: Medium{SoundSpeed: soundSpeed}, Radius: radius, Order: order}.Evaluate(sweep))
}

// ChalkerImpedance evaluates the two-term closed form (simplified model A).
func ChalkerImpedance(sweep Sweep, soundSpeed, radius float64) (r, x []float64, err error) {
	return split(Chalker{Medium: Medium{SoundSpeed: soundSpeed}, Radius: radius}.Evaluate(sweep))
}

// FlanaganImpedance evaluates the leading-term closed form (simplified model B).
func FlanaganImpedance(sweep Sweep, soundSpeed, radius float64) (r, x []float64, err error) {
	return split(Flanagan{Medium: Medium{SoundSpeed: soundSpeed}, Radius: radius}.Evaluate(sweep))
}

// SphericalBaffleImpedance evaluates the spherical baffle model.
// Returns ErrDomain if radius > sphereRadius.
func SphericalBaffleImpedance(sweep Sweep, soundSpeed, radius, sphereRadius float64, order int) (r, x []float64, err error) {
	return split(SphericalBaffle{
		Medium:       Medium{SoundSpeed: soundSpeed},
		Radius:       radius,
		SphereRadius: sphereRadius,
		Order:        order,
	}.Evaluate(sweep))
}

// LaineImpedance evaluates the Laine model on its own grid with the given
// step and returns that grid along with R and X.
func LaineImpedance(step, radius float64) (freqs, r, x []float64, err error) {
	c, err := Laine{Radius: radius, Step: step}.Evaluate(nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return c.Frequencies, c.R, c.X, nil
}

// PoleZeroImpedance evaluates the calibrated pole-zero model designed at
// twice the highest sweep frequency.
func PoleZeroImpedance(sweep Sweep, radius float64) (r, x []float64, err error) {
	return split(PoleZero{Radius: radius}.Evaluate(sweep))
}

// ComparisonSet returns all six models for one mouth, in the order
// flat baffle, Chalker, Flanagan, spherical baffle, Laine, pole-zero.
// The pole-zero model runs on zSweep when it is non-empty (see ZDomainSweep)
// and on the evaluation sweep otherwise.
func ComparisonSet(medium Medium, radius, sphereRadius float64, order int, laineStep float64, zSweep Sweep) []Model {
	return []Model{
		FlatBaffle{Medium: medium, Radius: radius, Order: order},
		Chalker{Medium: medium, Radius: radius},
		Flanagan{Medium: medium, Radius: radius},
		SphericalBaffle{Medium: medium, Radius: radius, SphereRadius: sphereRadius, Order: order},
		Laine{Radius: radius, Step: laineStep},
		PoleZero{Radius: radius, Grid: zSweep},
	}
}

func split(c Curve, err error) ([]float64, []float64, error) {
	if err != nil {
		return nil, nil, err
	}
	return c.R, c.X, nil
}
