package impedance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-radiation-impedance/internal/testutil"
)

// TestLaine_ReferenceValues checks the grid and H at a few points for a
// 1.5 cm mouth.
func TestLaine_ReferenceValues(t *testing.T) {
	freqs, r, x, err := LaineImpedance(50, testRadius)
	require.NoError(t, err)
	require.Len(t, freqs, 200)
	assert.Equal(t, 0.0, freqs[0])
	assert.Equal(t, 50.0, freqs[1])
	assert.Equal(t, 9950.0, freqs[len(freqs)-1])

	tests := []struct {
		idx          int
		freq         float64
		wantR, wantX float64
	}{
		{20, 1000, 0.031907028495265735, 0.21344866558823297},
		{100, 5000, 0.6877371377322774, 0.7286887674100736},
	}
	for _, tt := range tests {
		require.Equal(t, tt.freq, freqs[tt.idx])
		testutil.AssertRelativeError(t, tt.wantR, r[tt.idx], referenceTolerance, "R at %v Hz", tt.freq)
		testutil.AssertRelativeError(t, tt.wantX, x[tt.idx], referenceTolerance, "X at %v Hz", tt.freq)
	}
}

// TestLaine_GridLength tests floor(10000/step) points.
func TestLaine_GridLength(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{50, 200},
		{10, 1000},
		{300, 33},
		{30, 333},
		{10000, 1},
	}

	for _, tt := range tests {
		s, err := Laine{Radius: testRadius, Step: tt.step}.Sweep()
		require.NoError(t, err)
		assert.Len(t, s, tt.want, "step=%v", tt.step)
	}
}

// TestLaine_Errors tests rejected steps and radii.
func TestLaine_Errors(t *testing.T) {
	_, _, _, err := LaineImpedance(0, testRadius)
	require.ErrorIs(t, err, ErrInvalidSweep)
	_, _, _, err = LaineImpedance(20000, testRadius)
	require.ErrorIs(t, err, ErrInvalidSweep)
	_, _, _, err = LaineImpedance(50, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	bad := Laine{Radius: testRadius, Step: 50, Coefficients: LaineCoefficients{CaSlope: 1}}
	_, err = bad.Evaluate(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// TestLaine_Coefficients tests the affine fit in √area.
func TestLaine_Coefficients(t *testing.T) {
	c := DefaultLaineCoefficients().Filter(testRadius)
	assert.InDelta(t, 0.7088049482298184, c.Ca, testutil.DefaultTolerance)
	assert.InDelta(t, -0.028911946279096434, c.Cb, testutil.DefaultTolerance)
	assert.True(t, c.Stable())
}

// TestLaine_InAccurateRange tests the advisory radius bound.
func TestLaine_InAccurateRange(t *testing.T) {
	assert.True(t, Laine{Radius: testRadius}.InAccurateRange())
	assert.True(t, Laine{Radius: RadiusLaineMax}.InAccurateRange())
	assert.False(t, Laine{Radius: 0.03}.InAccurateRange())

	// Outside the fit the model still evaluates.
	_, _, _, err := LaineImpedance(50, 0.03)
	require.NoError(t, err)
}

// TestLaine_CustomCoefficients tests a non-default sample rate.
func TestLaine_CustomCoefficients(t *testing.T) {
	lc := DefaultLaineCoefficients()
	lc.SampleRate = 40000
	s, err := Laine{Radius: testRadius, Step: 100, Coefficients: lc}.Sweep()
	require.NoError(t, err)
	assert.Len(t, s, 200)
}
