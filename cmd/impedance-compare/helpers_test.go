package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impedance "github.com/tphakala/go-radiation-impedance"
)

func TestWriteCSV(t *testing.T) {
	curves := []impedance.Curve{
		{Model: "a", Frequencies: []float64{100, 150.5}, R: []float64{0.25, 0.5}, X: []float64{-1, 2e-7}},
		{Model: "b", Frequencies: []float64{0}, R: []float64{0}, X: []float64{0}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, curves))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"100", "a", "0.25", "-1"}, records[1])
	assert.Equal(t, []string{"150.5", "a", "0.5", "2e-07"}, records[2])
	assert.Equal(t, []string{"0", "b", "0", "0"}, records[3])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, nil))
	assert.Equal(t, "frequency_hz,model,r,x\n", buf.String())
}

func TestFindCurve(t *testing.T) {
	curves := []impedance.Curve{{Model: impedance.NameFlatBaffle}, {Model: impedance.NameSphericalBaffle}}

	c, ok := findCurve(curves, impedance.NameSphericalBaffle)
	require.True(t, ok)
	assert.Equal(t, impedance.NameSphericalBaffle, c.Model)

	_, ok = findCurve(curves, impedance.NameLaine)
	assert.False(t, ok)
}

func TestLogDeviations_AllModels(t *testing.T) {
	sweep, err := impedance.NewSweep(100, 5000, 100)
	require.NoError(t, err)

	zSweep, err := impedance.ZDomainSweep(100, 100)
	require.NoError(t, err)
	models := impedance.ComparisonSet(impedance.MediumAtTemperature(35), 0.015, 0.09, 40, 50, zSweep)
	curves, err := impedance.EvaluateAll(models, sweep, false)
	require.NoError(t, err)

	// Laine and pole-zero run on their own grids and are compared on the shared points.
	assert.NotPanics(t, func() { logDeviations(curves, 100, 5000) })
	assert.NotPanics(t, func() { logDeviations(nil, 100, 5000) })
}
