package analysis

import (
	"math"

	"github.com/otoniel-star/circuitca/pkg/circuit"
	"github.com/otoniel-star/circuitca/pkg/element"
)

type CircuitState int

const (
	StateNormal CircuitState = iota
	StateShort
	StateOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateShort:
		return "Curto-circuito"
	case StateOpen:
		return "Circuito Aberto"
	default:
		return "Normal"
	}
}

// Result is the steady-state solution of the whole tree at the base
// frequency. When the total impedance degenerates to a short or an open
// circuit the power quantities are not applicable and Phasors is empty.
type Result struct {
	FreqHz  float64
	Omega   float64
	VSource complex128
	TotalZ  element.Impedance
	State   CircuitState

	Applicable bool
	ITotal     complex128 // infinite sentinel for a short, zero for an open
	Power      Power
	Phasors    []Phasor
}

// Solve reduces the tree at freqHz and distributes phasors through it.
func Solve(root circuit.Node, vrms, phaseDeg, freqHz float64) (*Result, error) {
	omega, err := AngularFrequency(freqHz)
	if err != nil {
		return nil, err
	}

	res := &Result{
		FreqHz:  freqHz,
		Omega:   omega,
		VSource: SourcePhasor(vrms, phaseDeg),
		TotalZ:  root.Impedance(omega),
	}

	switch {
	case res.TotalZ.IsShort():
		res.State = StateShort
		res.ITotal = complex(math.Inf(1), 0)

	case res.TotalZ.IsOpen():
		res.State = StateOpen
		res.ITotal = 0

	default:
		res.State = StateNormal
		res.Applicable = true
		res.ITotal = res.VSource / res.TotalZ.Complex()
		res.Power = ComputePower(res.VSource, res.ITotal)
		res.Phasors = Propagate(root, res.VSource, res.ITotal, omega)
	}

	return res, nil
}
