package analysis

import (
	"fmt"
	"math"

	"github.com/otoniel-star/circuitca/internal/consts"
	"github.com/otoniel-star/circuitca/pkg/circuit"
	"github.com/otoniel-star/circuitca/pkg/element"
)

// Sweep evaluates the total impedance magnitude over a range of sample
// frequencies for magnitude-vs-frequency curves.
type Sweep struct {
	startFreq  float64
	stopFreq   float64
	numPoints  int
	pointsType string // "DEC", "OCT", "LIN"
}

func NewSweep(fStart, fStop float64, nPoints int, pType string) (*Sweep, error) {
	if fStart <= 0 {
		return nil, &NonPositiveFrequencyError{Value: fStart}
	}
	if fStop <= 0 {
		return nil, &NonPositiveFrequencyError{Value: fStop}
	}
	if nPoints < 2 {
		return nil, fmt.Errorf("sweep requires at least 2 points, got %d", nPoints)
	}
	if pType != "DEC" && pType != "OCT" && pType != "LIN" {
		return nil, fmt.Errorf("invalid sweep type: %s", pType)
	}
	return &Sweep{
		startFreq:  fStart,
		stopFreq:   fStop,
		numPoints:  nPoints,
		pointsType: pType,
	}, nil
}

// DefaultSweep spans two decades around the base frequency, log spaced.
func DefaultSweep(baseFreqHz float64) (*Sweep, error) {
	if baseFreqHz <= 0 {
		return nil, &NonPositiveFrequencyError{Value: baseFreqHz}
	}
	fMin := math.Max(1, baseFreqHz/100)
	fMax := baseFreqHz * 100
	return NewSweep(fMin, fMax, consts.DefaultSweepPoints, "DEC")
}

// Frequencies generates the sample points in hertz.
func (s *Sweep) Frequencies() []float64 {
	freqs := make([]float64, s.numPoints)

	switch s.pointsType {
	case "DEC":
		logStart := math.Log10(s.startFreq)
		logStop := math.Log10(s.stopFreq)
		step := (logStop - logStart) / float64(s.numPoints-1)
		for i := range s.numPoints {
			freqs[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case "OCT":
		logStart := math.Log2(s.startFreq)
		logStop := math.Log2(s.stopFreq)
		step := (logStop - logStart) / float64(s.numPoints-1)
		for i := range s.numPoints {
			freqs[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case "LIN":
		step := (s.stopFreq - s.startFreq) / float64(s.numPoints-1)
		for i := range s.numPoints {
			freqs[i] = s.startFreq + float64(i)*step
		}
	}

	return freqs
}

// SweepResult holds parallel arrays of sample frequency and impedance
// magnitude in dB.
type SweepResult struct {
	Frequencies  []float64
	MagnitudesDB []float64
}

// Run reduces the same tree once per sample frequency. The reduction returns
// values rather than mutating node state, so repeated evaluation is reentrant.
func (s *Sweep) Run(root circuit.Node) *SweepResult {
	freqs := s.Frequencies()
	mags := make([]float64, len(freqs))
	for i, f := range freqs {
		omega := 2 * math.Pi * f
		mags[i] = MagnitudeDB(root.Impedance(omega))
	}
	return &SweepResult{Frequencies: freqs, MagnitudesDB: mags}
}

// MagnitudeDB converts an impedance magnitude to decibels. Only the degenerate
// cases are clamped so that open and near-zero impedances stay bounded on a
// plot; finite magnitudes report their true dB value.
func MagnitudeDB(z element.Impedance) float64 {
	if z.IsOpen() {
		return consts.DBClamp
	}
	mag := z.Abs()
	if mag < consts.FloorEpsilon {
		return -consts.DBClamp
	}
	return 20 * math.Log10(mag)
}
