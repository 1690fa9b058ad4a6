package analysis

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NonPositiveFrequencyError rejects a frequency before any reduction runs.
type NonPositiveFrequencyError struct {
	Value float64
}

func (e *NonPositiveFrequencyError) Error() string {
	return fmt.Sprintf("frequency must be greater than zero: %g Hz", e.Value)
}

// AngularFrequency converts hertz to rad/s, rejecting f <= 0.
func AngularFrequency(freqHz float64) (float64, error) {
	if freqHz <= 0 {
		return 0, &NonPositiveFrequencyError{Value: freqHz}
	}
	return 2 * math.Pi * freqHz, nil
}

// SourcePhasor builds the RMS source voltage phasor from magnitude and phase
// in degrees.
func SourcePhasor(vrms, phaseDeg float64) complex128 {
	return cmplx.Rect(vrms, phaseDeg*math.Pi/180.0)
}
