package impedance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-radiation-impedance/internal/testutil"
)

// band returns the sub-slices of c within [lo, hi] Hz.
func band(c Curve, lo, hi float64) (r, x []float64) {
	for i, f := range c.Frequencies {
		if f >= lo && f <= hi {
			r = append(r, c.R[i])
			x = append(x, c.X[i])
		}
	}
	return r, x
}

// TestScenario_FlatVersusSpherical runs the reference comparison: air at
// 35 °C, a 1.5 cm mouth on a 9 cm sphere, 100 Hz to 20 kHz in 50 Hz steps
// and 40 terms.
//
// At low frequency the sphere radiates into full space rather than half
// space, so its resistance tends to half the flat-baffle value; the curves
// converge above a few kHz.
func TestScenario_FlatVersusSpherical(t *testing.T) {
	sweep := scenarioSweep(t)
	medium := MediumAtTemperature(testTemperature)

	curves, err := EvaluateAll([]Model{
		FlatBaffle{Medium: medium, Radius: testRadius, Order: testOrder},
		SphericalBaffle{Medium: medium, Radius: testRadius, SphereRadius: ReferenceSphereRadius, Order: ReferenceOrder},
	}, sweep, true)
	require.NoError(t, err)
	flat, sphere := curves[0], curves[1]

	require.Equal(t, 398, flat.Len())
	testutil.AssertNoNaNOrInf(t, sphere.R)
	testutil.AssertNoNaNOrInf(t, sphere.X)

	flatR, flatX := band(flat, 100, 5000)
	sphereR, sphereX := band(sphere, 100, 5000)

	testutil.AssertStrictlyIncreasing(t, flatR)
	testutil.AssertStrictlyIncreasing(t, sphereR)
	testutil.AssertRatioInRange(t, flatX, sphereX, 1-testutil.ModelTolerance, 1+testutil.ModelTolerance)
	testutil.AssertRatioInRange(t, flatR, sphereR, 0.45, 1.0)

	flatHi, _ := band(flat, 6000, 20000)
	sphereHi, _ := band(sphere, 6000, 20000)
	testutil.AssertRatioInRange(t, flatHi, sphereHi, 0.89, 1.02)

	d, err := Compare(sphere, flat, 2000, 5000)
	require.NoError(t, err)
	assert.Less(t, d.MaxR, 0.3)
	assert.Less(t, d.MaxX, 0.12)
}

// TestScenario_PoleZeroTracksReference tests that the calibrated pole-zero
// model crosses R = 0.5 near the spherical reference.
func TestScenario_PoleZeroTracksReference(t *testing.T) {
	sweep := scenarioSweep(t)
	medium := MediumAtTemperature(ReferenceTemperature)

	sphere, err := SphericalBaffle{
		Medium:       medium,
		Radius:       testRadius,
		SphereRadius: ReferenceSphereRadius,
		Order:        ReferenceOrder,
	}.Evaluate(sweep)
	require.NoError(t, err)

	pz, err := PoleZero{Radius: testRadius}.Evaluate(sweep)
	require.NoError(t, err)

	fRef, ok := sphere.Crossing(0.5)
	require.True(t, ok)
	fPZ, ok := pz.Crossing(0.5)
	require.True(t, ok)
	testutil.AssertRelativeError(t, fRef, fPZ, 0.1)
}
