package consts

const (
	ShortEpsilon = 1e-9  // impedance magnitude below this counts as a short circuit
	FloorEpsilon = 1e-12 // magnitude floor before dB conversion in sweeps

	DBClamp = 100.0 // sweep clamp: +100 dB for open, -100 dB for short

	DefaultSweepPoints = 200 // points for a sweep derived from the base frequency
)
