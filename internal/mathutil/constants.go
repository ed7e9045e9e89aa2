package mathutil

// Miller recurrence parameters for spherical Bessel functions of the first kind.
const (
	millerStartPadding     = 20     // extra orders above max(nmax, x)
	millerAccuracy         = 40.0   // start += sqrt(millerAccuracy·top)
	millerSeed             = 1e-30  // arbitrary starting value, removed by normalization
	millerRescaleThreshold = 1e250  // rescale before the recurrence overflows
	millerRescaleFactor    = 1e-250 // applied to every stored order on rescale
)
