package impedance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-radiation-impedance/internal/testutil"
)

// TestFlatBaffle_ReferenceValues compares against independently computed
// series sums (c = 352.4 m/s, a = 1.5 cm, 40 terms).
func TestFlatBaffle_ReferenceValues(t *testing.T) {
	sweep := Sweep{1000, 5000, 10000}
	wantR := []float64{0.035339725334353055, 0.6639835950225633, 1.129400333288286}
	wantX := []float64{0.22271993817106955, 0.6927350954129077, 0.25607171601122203}

	r, x, err := FlatBaffleImpedance(sweep, testSoundSpeed, testRadius, testOrder)
	require.NoError(t, err)

	for i := range sweep {
		testutil.AssertRelativeError(t, wantR[i], r[i], referenceTolerance, "R at %v Hz", sweep[i])
		testutil.AssertRelativeError(t, wantX[i], x[i], referenceTolerance, "X at %v Hz", sweep[i])
	}
}

// TestFlatBaffle_TruncationMatchesClosedForms tests that one and two series
// terms reproduce the Flanagan and Chalker forms.
func TestFlatBaffle_TruncationMatchesClosedForms(t *testing.T) {
	sweep, err := NewSweep(50, 7000, 50)
	require.NoError(t, err)

	tests := []struct {
		name  string
		order int
		model Model
	}{
		{"one_term_flanagan", 1, Flanagan{Medium: testMedium(), Radius: testRadius}},
		{"two_terms_chalker", 2, Chalker{Medium: testMedium(), Radius: testRadius}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, err := FlatBaffle{Medium: testMedium(), Radius: testRadius, Order: tt.order}.Evaluate(sweep)
			require.NoError(t, err)
			closed, err := tt.model.Evaluate(sweep)
			require.NoError(t, err)

			for i := range sweep {
				testutil.AssertRelativeError(t, closed.R[i], flat.R[i], testutil.SeriesTolerance, "R at %v Hz", sweep[i])
				testutil.AssertRelativeError(t, closed.X[i], flat.X[i], testutil.SeriesTolerance, "X at %v Hz", sweep[i])
			}
		})
	}
}

// TestFlatBaffle_LowFrequencyMatchesFlanagan tests first-order agreement for ka < 0.1.
func TestFlatBaffle_LowFrequencyMatchesFlanagan(t *testing.T) {
	// ka = 0.1 at f = 0.1·c/(2πa) ≈ 374 Hz.
	sweep, err := NewSweep(10, 370, 10)
	require.NoError(t, err)

	rf, xf, err := FlatBaffleImpedance(sweep, testSoundSpeed, testRadius, testOrder)
	require.NoError(t, err)
	rb, xb, err := FlanaganImpedance(sweep, testSoundSpeed, testRadius)
	require.NoError(t, err)

	for i := range sweep {
		testutil.AssertRelativeError(t, rb[i], rf[i], 0.005, "R at %v Hz", sweep[i])
		testutil.AssertRelativeError(t, xb[i], xf[i], 0.005, "X at %v Hz", sweep[i])
	}
}

// TestFlatBaffle_HighFrequencyLimit tests that R approaches 1 and X decays
// once ka is well above 1 but the series still converges.
func TestFlatBaffle_HighFrequencyLimit(t *testing.T) {
	r, x, err := FlatBaffleImpedance(Sweep{15000, 18000}, testSoundSpeed, testRadius, testOrder)
	require.NoError(t, err)
	testutil.AssertAllInRange(t, r, 0.85, 1.15)
	testutil.AssertAllInRange(t, x, 0, 0.4)
}

// TestFlatBaffle_Validate tests parameter validation.
func TestFlatBaffle_Validate(t *testing.T) {
	tests := []struct {
		name  string
		model FlatBaffle
	}{
		{"zero_order", FlatBaffle{Medium: testMedium(), Radius: testRadius, Order: 0}},
		{"negative_order", FlatBaffle{Medium: testMedium(), Radius: testRadius, Order: -3}},
		{"zero_radius", FlatBaffle{Medium: testMedium(), Radius: 0, Order: testOrder}},
		{"inf_radius", FlatBaffle{Medium: testMedium(), Radius: math.Inf(1), Order: testOrder}},
		{"zero_speed", FlatBaffle{Radius: testRadius, Order: testOrder}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.model.Validate(), ErrInvalidConfig)
			_, err := tt.model.Evaluate(Sweep{100})
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

// TestClosedForms_ReferenceValues checks the closed forms at ka = 1.
func TestClosedForms_ReferenceValues(t *testing.T) {
	// Choose f so that ka = 1 exactly.
	f := testSoundSpeed / (2 * math.Pi * testRadius)

	r, x, err := ChalkerImpedance(Sweep{f}, testSoundSpeed, testRadius)
	require.NoError(t, err)
	assert.InDelta(t, 0.5-1.0/12, r[0], testutil.DefaultTolerance)
	assert.InDelta(t, 8/(3*math.Pi)-32/(45*math.Pi), x[0], testutil.DefaultTolerance)

	r, x, err = FlanaganImpedance(Sweep{f}, testSoundSpeed, testRadius)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r[0], testutil.DefaultTolerance)
	assert.InDelta(t, 8/(3*math.Pi), x[0], testutil.DefaultTolerance)
}

// TestClosedForms_Errors tests parameter validation of the closed forms.
func TestClosedForms_Errors(t *testing.T) {
	_, _, err := ChalkerImpedance(Sweep{100}, 0, testRadius)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, _, err = FlanaganImpedance(Sweep{100}, testSoundSpeed, -1)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, _, err = FlanaganImpedance(Sweep{}, testSoundSpeed, testRadius)
	require.ErrorIs(t, err, ErrInvalidSweep)
}

// BenchmarkFlatBaffle benchmarks the scenario sweep at 40 terms.
func BenchmarkFlatBaffle(b *testing.B) {
	sweep := scenarioSweep(b)
	m := FlatBaffle{Medium: testMedium(), Radius: testRadius, Order: testOrder}
	for b.Loop() {
		_, _ = m.Evaluate(sweep)
	}
}
