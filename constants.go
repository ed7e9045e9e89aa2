package impedance

// Medium constants
const (
	soundSpeedAtZero = 331.4 // m/s at 0 °C
	soundSpeedSlope  = 0.6   // m/s per °C
)

// Closed-form model coefficients
const (
	resistanceQuadratic = 0.5  // (ka)²/2
	chalkerQuartic      = 12.0 // (ka)⁴/12
	reactanceLinear     = 8.0  // 8ka/(3π)
	reactanceLinearDen  = 3.0
	chalkerCubic        = 32.0 // 32(ka)³/(45π)
	chalkerCubicDen     = 45.0
)

// Spherical baffle
const (
	sphericalScale = 0.25
)

// Laine model: fit of a first-order filter to measured mouth radiation at a
// nominal 20 kHz sample rate, valid for radii up to 1.6 cm and 0 to 5 kHz.
const (
	laineSampleRate    = 20000.0
	laineAreaScale     = 1e4 // m² to cm²
	laineCaIntercept   = 0.0779
	laineCaSlope       = 0.2373
	laineCbIntercept   = -0.8430
	laineCbSlope       = 0.3062
	laineMaxRadius     = 1.6e-2
	laineMaxAccurateHz = 5000.0
)

// Pole-zero calibration: least-squares fit of the transition frequency
// against the spherical baffle model with a 9 cm sphere, 40 terms and air at
// 35 °C. The small-radius gain restores the resistance level below the
// radius floor.
const (
	poleZeroSlope           = 62.33711741947817
	poleZeroOffset          = 320.20420449105177
	poleZeroRadiusFloor     = 0.5e-2
	poleZeroSmallRadiusGain = 40391.175581408956
)

// Z-domain evaluation: the pole-zero model is run up to 50 kHz, so its design
// rate is about 100 kHz. The filter is not used below 50 kHz.
const (
	ZDomainMaxFrequency   = 50000.0
	MinPoleZeroSampleRate = 50000.0
)

// Reference setup used by the calibration and the comparison tool.
const (
	ReferenceSphereRadius = 0.09
	ReferenceOrder        = 40
	ReferenceTemperature  = 35.0
)

// Parallel evaluation
const (
	minParallelModels = 2
)
