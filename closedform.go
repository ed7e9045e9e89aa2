package impedance

import "math"

// Chalker is the two-term low-frequency approximation of the flat-baffle
// piston (simplified model A):
//
//	R = (ka)²/2 − (ka)⁴/12
//	X = 8ka/(3π) − 32(ka)³/(45π)
type Chalker struct {
	Medium Medium
	Radius float64
}

// Name implements Model.
func (Chalker) Name() string { return NameChalker }

// Evaluate implements Model.
func (m Chalker) Evaluate(sweep Sweep) (Curve, error) {
	if err := validateClosedForm(m.Medium, m.Radius, sweep); err != nil {
		return Curve{}, err
	}
	curve := newCurve(NameChalker, sweep)
	for i, f := range sweep {
		ka := m.Medium.Wavenumber(f) * m.Radius
		ka2 := ka * ka
		curve.R[i] = resistanceQuadratic*ka2 - ka2*ka2/chalkerQuartic
		curve.X[i] = reactanceLinear*ka/(reactanceLinearDen*math.Pi) -
			chalkerCubic*ka2*ka/(chalkerCubicDen*math.Pi)
	}
	return curve, nil
}

// Flanagan keeps only the leading terms (simplified model B):
//
//	R = (ka)²/2
//	X = 8ka/(3π)
type Flanagan struct {
	Medium Medium
	Radius float64
}

// Name implements Model.
func (Flanagan) Name() string { return NameFlanagan }

// Evaluate implements Model.
func (m Flanagan) Evaluate(sweep Sweep) (Curve, error) {
	if err := validateClosedForm(m.Medium, m.Radius, sweep); err != nil {
		return Curve{}, err
	}
	curve := newCurve(NameFlanagan, sweep)
	for i, f := range sweep {
		ka := m.Medium.Wavenumber(f) * m.Radius
		curve.R[i] = resistanceQuadratic * ka * ka
		curve.X[i] = reactanceLinear * ka / (reactanceLinearDen * math.Pi)
	}
	return curve, nil
}

func validateClosedForm(medium Medium, radius float64, sweep Sweep) error {
	if err := medium.Validate(); err != nil {
		return err
	}
	if err := validateRadius(radius); err != nil {
		return err
	}
	return sweep.Validate()
}
