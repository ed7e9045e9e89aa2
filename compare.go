package impedance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrGridMismatch indicates curves that share no frequency.
var ErrGridMismatch = errors.New("frequency grids do not overlap")

// Deviation summarizes the relative error of one curve against a reference
// over a frequency band.
type Deviation struct {
	// Points is the number of frequencies compared.
	Points int

	// MinFreq and MaxFreq bound the frequencies actually compared.
	MinFreq, MaxFreq float64

	// MaxR, MeanR and RMSR describe |R − R_ref|/|R_ref|.
	MaxR, MeanR, RMSR float64

	// MaxX, MeanX and RMSX describe |X − X_ref|/|X_ref|.
	MaxX, MeanX, RMSX float64
}

// Compare computes the relative deviation of got from ref at the frequencies
// both curves share within [minFreq, maxFreq]. Grids may differ in extent or
// spacing, e.g. a Z-domain curve running to 50 kHz against a 20 kHz
// reference; only exactly matching frequencies are compared. Points where the
// reference is zero are skipped.
func Compare(ref, got Curve, minFreq, maxFreq float64) (Deviation, error) {
	refIdx, gotIdx := sharedPoints(ref.Frequencies, got.Frequencies, minFreq, maxFreq)
	if len(refIdx) == 0 {
		return Deviation{}, fmt.Errorf("%w: %s (%d points) vs %s (%d points) in [%v, %v] Hz",
			ErrGridMismatch, ref.Model, ref.Len(), got.Model, got.Len(), minFreq, maxFreq)
	}

	var relR, relX []float64
	for k, i := range refIdx {
		j := gotIdx[k]
		if ref.R[i] != 0 {
			relR = append(relR, math.Abs(got.R[j]-ref.R[i])/math.Abs(ref.R[i]))
		}
		if ref.X[i] != 0 {
			relX = append(relX, math.Abs(got.X[j]-ref.X[i])/math.Abs(ref.X[i]))
		}
	}
	if len(relR) == 0 && len(relX) == 0 {
		return Deviation{}, fmt.Errorf("%w: reference is zero at every shared point", ErrInvalidSweep)
	}

	d := Deviation{
		Points:  len(refIdx),
		MinFreq: ref.Frequencies[refIdx[0]],
		MaxFreq: ref.Frequencies[refIdx[len(refIdx)-1]],
	}
	d.MaxR, d.MeanR, d.RMSR = summarize(relR)
	d.MaxX, d.MeanX, d.RMSX = summarize(relX)
	return d, nil
}

// sharedPoints returns index pairs of frequencies present in both increasing
// grids and inside [lo, hi].
func sharedPoints(a, b []float64, lo, hi float64) (ai, bi []int) {
	if floats.Equal(a, b) {
		for i, f := range a {
			if f >= lo && f <= hi {
				ai = append(ai, i)
				bi = append(bi, i)
			}
		}
		return ai, bi
	}

	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			if a[i] >= lo && a[i] <= hi {
				ai = append(ai, i)
				bi = append(bi, j)
			}
			i++
			j++
		}
	}
	return ai, bi
}

func summarize(rel []float64) (maxVal, mean, rms float64) {
	if len(rel) == 0 {
		return 0, 0, 0
	}
	maxVal = floats.Max(rel)
	mean = stat.Mean(rel, nil)
	rms = floats.Norm(rel, 2) / math.Sqrt(float64(len(rel)))
	return maxVal, mean, rms
}
