// Command analyze-polezero prints the pole-zero design over a range of mouth
// radii at one sample rate: transition frequency, coefficients, stability
// and the junction coefficients derived from them.
package main

import (
	"flag"
	"fmt"

	impedance "github.com/tphakala/go-radiation-impedance"
)

const (
	// Radius sweep defaults in m
	defaultMinRadius  = 0.001
	defaultMaxRadius  = 0.03
	defaultRadiusStep = 0.001

	// Default design rate: about twice the top of the 50 kHz Z-domain grid
	defaultSampleRate = 100000.0

	mToCm = 100
)

func main() {
	sampleRate := flag.Float64("rate", defaultSampleRate, "Design sample rate in Hz")
	minRadius := flag.Float64("min", defaultMinRadius, "Smallest radius in m")
	maxRadius := flag.Float64("max", defaultMaxRadius, "Largest radius in m")
	step := flag.Float64("step", defaultRadiusStep, "Radius step in m")
	junction := flag.Bool("junction", false, "Also print junction coefficients")
	flag.Parse()

	if *step <= 0 || *maxRadius < *minRadius {
		fmt.Println("Error: need step > 0 and max >= min")
		return
	}

	cal := impedance.DefaultPoleZeroCalibration()

	fmt.Println("=== Pole-Zero Radiation Filter Design ===")
	fmt.Printf("Sample rate: %.1f Hz\n", *sampleRate)
	if *sampleRate < impedance.MinPoleZeroSampleRate {
		fmt.Printf("Note: the filter is meant for rates of at least %.0f Hz; results below that are outside its calibrated use\n",
			impedance.MinPoleZeroSampleRate)
	}
	fmt.Printf("Calibration: f_t = %.6f / max(a, %.4f) + %.6f\n", cal.Slope, cal.RadiusFloor, cal.Offset)
	fmt.Printf("Small-radius gain: %.6f\n\n", cal.SmallRadiusGain)

	fmt.Printf("%8s %12s %12s %12s %8s %6s\n", "a (cm)", "f_t (Hz)", "ca", "cb", "stable", "corr")

	var designs []impedance.PoleZeroFilter
	var radii []float64
	for i := 0; ; i++ {
		radius := *minRadius + float64(i)*(*step)
		if radius > *maxRadius+*step/2 {
			break
		}

		p, err := impedance.DesignPoleZero(radius, *sampleRate, cal)
		if err != nil {
			fmt.Printf("%8.2f  error: %v\n", radius*mToCm, err)
			continue
		}
		fmt.Printf("%8.2f %12.2f %12.8f %12.8f %8v %6v\n",
			radius*mToCm, p.TransitionFrequency, p.Ca, p.Cb, p.Stable(), p.Corrected)
		designs = append(designs, p)
		radii = append(radii, radius)
	}

	if !*junction {
		return
	}

	fmt.Println("\n=== Junction Coefficients ===")
	fmt.Printf("%8s %11s %11s %11s %11s %11s\n", "a (cm)", "T1=R1", "T2", "T3", "R2", "R3")
	for i, p := range designs {
		j := p.Junction()
		fmt.Printf("%8.2f %11.7f %11.7f %11.7f %11.7f %11.7f\n",
			radii[i]*mToCm, j.T1, j.T2, j.T3, j.R2, j.R3)
	}
}
