package analysis

import (
	"math"

	"github.com/otoniel-star/circuitca/pkg/circuit"
)

type Role int

const (
	RoleVoltage Role = iota
	RoleCurrent
)

func (r Role) String() string {
	if r == RoleCurrent {
		return "corrente"
	}
	return "tensão"
}

// Phasor is one labeled entry of the flat per-evaluation phasor list consumed
// by the presentation layer.
type Phasor struct {
	Label string
	Value complex128
	Role  Role
}

// Finite reports whether the phasor can be drawn. The current through a short
// branch is the infinite sentinel and is skipped by diagrams.
func (p Phasor) Finite() bool {
	for _, f := range []float64{real(p.Value), imag(p.Value)} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// Propagate distributes the root voltage and current phasors top-down over
// the whole tree and returns the fresh output list: the source, the total
// current, and a voltage/current pair for every leaf element.
func Propagate(root circuit.Node, v, i complex128, omega float64) []Phasor {
	out := []Phasor{
		{Label: "V_fonte", Value: v, Role: RoleVoltage},
		{Label: "I_total", Value: i, Role: RoleCurrent},
	}
	propagate(&out, root, v, i, omega)
	return out
}

func propagate(out *[]Phasor, node circuit.Node, v, i complex128, omega float64) {
	group, ok := node.(*circuit.Group)
	if !ok {
		*out = append(*out,
			Phasor{Label: "V_" + node.Name(), Value: v, Role: RoleVoltage},
			Phasor{Label: "I_" + node.Name(), Value: i, Role: RoleCurrent},
		)
		return
	}

	switch group.Type {
	case circuit.Series:
		// Every child carries the group current; voltages divide as I*Z. An
		// open child takes the whole group voltage (its current is zero), a
		// short child drops none even when the current is the infinite
		// sentinel.
		for _, child := range group.Children {
			z := child.Impedance(omega)
			var childV complex128
			switch {
			case z.IsOpen():
				childV = v
			case z.IsShort():
				childV = 0
			default:
				childV = i * z.Complex()
			}
			propagate(out, child, childV, i, omega)
		}

	case circuit.Parallel:
		// Every child carries the group voltage; currents divide as V/Z. A
		// short branch draws the infinite sentinel, an open branch draws zero.
		for _, child := range group.Children {
			z := child.Impedance(omega)
			var childI complex128
			switch {
			case z.IsShort():
				childI = complex(math.Inf(1), 0)
			case z.IsOpen():
				childI = 0
			default:
				childI = v / z.Complex()
			}
			propagate(out, child, v, childI, omega)
		}
	}
}
