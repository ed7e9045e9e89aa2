package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	impedance "github.com/tphakala/go-radiation-impedance"
)

// csvHeader is the column layout of the output table.
var csvHeader = []string{"frequency_hz", "model", "r", "x"}

// writeCSV writes one row per (curve, frequency) in long format.
func writeCSV(w io.Writer, curves []impedance.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(csvHeader))
	for _, c := range curves {
		for i, f := range c.Frequencies {
			record[0] = strconv.FormatFloat(f, 'f', -1, 64)
			record[1] = c.Model
			record[2] = strconv.FormatFloat(c.R[i], 'g', -1, 64)
			record[3] = strconv.FormatFloat(c.X[i], 'g', -1, 64)
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing %s row %d: %w", c.Model, i, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// findCurve returns the curve produced by the named model.
func findCurve(curves []impedance.Curve, name string) (impedance.Curve, bool) {
	for _, c := range curves {
		if c.Model == name {
			return c, true
		}
	}
	return impedance.Curve{}, false
}

// logDeviations logs every curve's deviation from the spherical baffle
// reference at the frequencies they share with it. Curves sharing none are
// skipped.
func logDeviations(curves []impedance.Curve, minFreq, maxFreq float64) {
	ref, ok := findCurve(curves, impedance.NameSphericalBaffle)
	if !ok {
		return
	}

	for _, c := range curves {
		if c.Model == ref.Model {
			continue
		}
		d, err := impedance.Compare(ref, c, minFreq, maxFreq)
		if errors.Is(err, impedance.ErrGridMismatch) {
			log.Debug().Str("model", c.Model).Msg("no shared frequencies, not compared")
			continue
		}
		if err != nil {
			log.Warn().Err(err).Str("model", c.Model).Msg("comparison failed")
			continue
		}
		log.Info().
			Str("model", c.Model).
			Int("points", d.Points).
			Float64("from_hz", d.MinFreq).
			Float64("to_hz", d.MaxFreq).
			Float64("max_r", d.MaxR).
			Float64("mean_r", d.MeanR).
			Float64("rms_r", d.RMSR).
			Float64("max_x", d.MaxX).
			Float64("mean_x", d.MeanX).
			Float64("rms_x", d.RMSX).
			Msg("deviation from spherical baffle")
	}
}
