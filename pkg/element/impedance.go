package element

import (
	"math"
	"math/cmplx"

	"github.com/otoniel-star/circuitca/internal/consts"
	"github.com/otoniel-star/circuitca/pkg/util"
)

type ImpedanceKind int

const (
	Finite ImpedanceKind = iota
	Open
	Short
)

// Impedance is a tri-state complex impedance. Open and Short replace the
// floating-point infinity sentinels that produce NaN on 0*Inf paths.
type Impedance struct {
	kind ImpedanceKind
	z    complex128
}

func FiniteZ(z complex128) Impedance {
	if cmplx.Abs(z) < consts.ShortEpsilon {
		return Impedance{kind: Short}
	}
	return Impedance{kind: Finite, z: z}
}

func OpenZ() Impedance  { return Impedance{kind: Open} }
func ShortZ() Impedance { return Impedance{kind: Short} }

func (z Impedance) Kind() ImpedanceKind { return z.kind }
func (z Impedance) IsOpen() bool        { return z.kind == Open }
func (z Impedance) IsShort() bool       { return z.kind == Short }

// Complex returns the finite value. Short yields 0; Open has no finite value
// and callers must test IsOpen first.
func (z Impedance) Complex() complex128 {
	if z.kind == Finite {
		return z.z
	}
	return 0
}

func (z Impedance) Abs() float64 {
	switch z.kind {
	case Open:
		return math.Inf(1)
	case Short:
		return 0
	default:
		return cmplx.Abs(z.z)
	}
}

// Add is series composition: any Open term makes the sum Open.
func (z Impedance) Add(other Impedance) Impedance {
	if z.IsOpen() || other.IsOpen() {
		return OpenZ()
	}
	return FiniteZ(z.Complex() + other.Complex())
}

func (z Impedance) String() string {
	switch z.kind {
	case Open:
		return "aberto"
	case Short:
		return "curto"
	default:
		return util.PolarString(z.z)
	}
}
