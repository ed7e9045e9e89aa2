package filter

import "math/cmplx"

// JunctionCoefficients are the difference-equation coefficients of the flow
// transmitted through and reflected at a radiation termination whose
// normalized impedance is H(z) = a·(1 − z⁻¹)/(1 − b·z⁻¹).
//
// With K = (H − 1)/(H + 1):
//
//	outT[n] = T1·outT[n−1] + T2·in[n] + T3·in[n−1]   (1 − K)
//	outR[n] = R1·outR[n−1] + R2·in[n] + R3·in[n−1]   (K)
type JunctionCoefficients struct {
	T1, T2, T3 float64
	R1, R2, R3 float64
}

// Junction derives the transmission and reflection coefficients from c.
func Junction(c Coefficients) JunctionCoefficients {
	a, b := c.Ca, c.Cb
	norm := 1 / (a + 1)
	sum := a + b

	return JunctionCoefficients{
		T1: sum * norm,
		T2: 2 * norm,
		T3: -2 * b * norm,
		R1: sum * norm,
		R2: (a - 1) * norm,
		R3: (b - a) * norm,
	}
}

// Transmission returns 1 − K evaluated at z = e^{jωT} from the coefficients.
func (j JunctionCoefficients) Transmission(freqHz, sampleRate float64) complex128 {
	return firstOrder(j.T1, j.T2, j.T3, freqHz, sampleRate)
}

// Reflection returns K evaluated at z = e^{jωT} from the coefficients.
func (j JunctionCoefficients) Reflection(freqHz, sampleRate float64) complex128 {
	return firstOrder(j.R1, j.R2, j.R3, freqHz, sampleRate)
}

// firstOrder evaluates (c2 + c3·z⁻¹)/(1 − c1·z⁻¹).
func firstOrder(c1, c2, c3, freqHz, sampleRate float64) complex128 {
	zInv := cmplx.Exp(complex(0, -twoPi*freqHz/sampleRate))
	return (complex(c2, 0) + complex(c3, 0)*zInv) / (1 - complex(c1, 0)*zInv)
}
