package analysis

import "math/cmplx"

type LoadClass int

const (
	Unity LoadClass = iota
	Lagging
	Leading
)

func (c LoadClass) String() string {
	switch c {
	case Lagging:
		return "Atrasado"
	case Leading:
		return "Adiantado"
	default:
		return "Unitário"
	}
}

// Power holds the derived power quantities of a (voltage, current) phasor pair.
type Power struct {
	SComplex complex128
	P        float64 // active, W
	Q        float64 // reactive, VAR
	S        float64 // apparent, VA
	Factor   float64
}

// ComputePower derives the power set from S = V * conj(I). A zero apparent
// power yields a unity power factor by convention.
func ComputePower(v, i complex128) Power {
	s := v * cmplx.Conj(i)
	p := Power{
		SComplex: s,
		P:        real(s),
		Q:        imag(s),
		S:        cmplx.Abs(s),
	}
	if p.S == 0 {
		p.Factor = 1.0
	} else {
		p.Factor = p.P / p.S
	}
	return p
}

// Class reports the load as inductive (Q>0, lagging) or capacitive (Q<0,
// leading).
func (p Power) Class() LoadClass {
	switch {
	case p.Q > 0:
		return Lagging
	case p.Q < 0:
		return Leading
	default:
		return Unity
	}
}
