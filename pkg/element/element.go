package element

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Element is a leaf circuit component. Impedance is pure: it returns a fresh
// value for the given angular frequency and keeps no per-evaluation state, so
// sweeps can re-evaluate the same tree freely.
type Element interface {
	Name() string
	Impedance(omega float64) Impedance
	Details() string
}

// NegativeValueError rejects construction of a component with a negative
// R, L, C or impedance magnitude.
type NegativeValueError struct {
	Field string
	Value float64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("component value must be non-negative: %s = %g", e.Field, e.Value)
}

type Resistor struct {
	R float64 // ohm
}

func NewResistor(r float64) (*Resistor, error) {
	if r < 0 {
		return nil, &NegativeValueError{Field: "R", Value: r}
	}
	return &Resistor{R: r}, nil
}

func (r *Resistor) Name() string { return "R" }

func (r *Resistor) Impedance(omega float64) Impedance {
	return FiniteZ(complex(r.R, 0))
}

func (r *Resistor) Details() string { return fmt.Sprintf("R=%gΩ", r.R) }

type Inductor struct {
	L float64 // henry
}

func NewInductor(l float64) (*Inductor, error) {
	if l < 0 {
		return nil, &NegativeValueError{Field: "L", Value: l}
	}
	return &Inductor{L: l}, nil
}

func (l *Inductor) Name() string { return "L" }

func (l *Inductor) Impedance(omega float64) Impedance {
	return FiniteZ(complex(0, omega*l.L))
}

func (l *Inductor) Details() string { return fmt.Sprintf("L=%gH", l.L) }

type Capacitor struct {
	C float64 // farad
}

func NewCapacitor(c float64) (*Capacitor, error) {
	if c < 0 {
		return nil, &NegativeValueError{Field: "C", Value: c}
	}
	return &Capacitor{C: c}, nil
}

func (c *Capacitor) Name() string { return "C" }

// Impedance of a zero capacitance is an open circuit, not -j*Inf.
func (c *Capacitor) Impedance(omega float64) Impedance {
	if c.C == 0 {
		return OpenZ()
	}
	return FiniteZ(complex(0, -1.0/(omega*c.C)))
}

func (c *Capacitor) Details() string { return fmt.Sprintf("C=%gF", c.C) }

// KnownImpedance is a fixed impedance given in polar form. It does not vary
// with frequency.
type KnownImpedance struct {
	Magnitude float64 // ohm
	AngleDeg  float64
}

func NewKnownImpedance(magnitude, angleDeg float64) (*KnownImpedance, error) {
	if magnitude < 0 {
		return nil, &NegativeValueError{Field: "Z", Value: magnitude}
	}
	return &KnownImpedance{Magnitude: magnitude, AngleDeg: angleDeg}, nil
}

func (z *KnownImpedance) Name() string { return "Z" }

func (z *KnownImpedance) Impedance(omega float64) Impedance {
	return FiniteZ(cmplx.Rect(z.Magnitude, z.AngleDeg*math.Pi/180.0))
}

func (z *KnownImpedance) Details() string {
	return fmt.Sprintf("Z=%gΩ∠%g°", z.Magnitude, z.AngleDeg)
}
