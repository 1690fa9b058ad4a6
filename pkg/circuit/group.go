package circuit

import (
	"math/cmplx"
	"strings"

	"github.com/otoniel-star/circuitca/internal/consts"
	"github.com/otoniel-star/circuitca/pkg/element"
)

// Node is a leaf element or a nested group. Leaf elements from pkg/element
// satisfy it directly.
type Node interface {
	Name() string
	Impedance(omega float64) element.Impedance
	Details() string
}

type GroupType int

const (
	Series GroupType = iota
	Parallel
)

func (t GroupType) Label() string {
	if t == Parallel {
		return "Paralelo"
	}
	return "Série"
}

// Group is an ordered composite of elements and sub-groups connected in
// series or in parallel.
type Group struct {
	Type     GroupType
	Children []Node

	name string
}

func NewGroup(t GroupType, name string, children ...Node) *Group {
	return &Group{Type: t, name: name, Children: children}
}

func (g *Group) Add(n Node) {
	g.Children = append(g.Children, n)
}

func (g *Group) Name() string { return g.name }

// Impedance reduces the subtree bottom-up at the given angular frequency.
// An empty series group reduces to 0 by convention.
func (g *Group) Impedance(omega float64) element.Impedance {
	if g.Type == Parallel {
		return g.parallelImpedance(omega)
	}

	sum := complex(0, 0)
	for _, child := range g.Children {
		z := child.Impedance(omega)
		if z.IsOpen() {
			return element.OpenZ()
		}
		sum += z.Complex()
	}
	return element.FiniteZ(sum)
}

func (g *Group) parallelImpedance(omega float64) element.Impedance {
	if len(g.Children) == 0 {
		return element.OpenZ()
	}

	impedances := make([]element.Impedance, len(g.Children))
	for i, child := range g.Children {
		impedances[i] = child.Impedance(omega)
	}

	// A single short branch dominates every other branch.
	for _, z := range impedances {
		if z.IsShort() {
			return element.ShortZ()
		}
	}

	// Open branches contribute no admittance.
	admittance := complex(0, 0)
	branches := 0
	for _, z := range impedances {
		if z.IsOpen() {
			continue
		}
		admittance += 1.0 / z.Complex()
		branches++
	}
	if branches == 0 {
		return element.OpenZ()
	}

	// A vanishing admittance sum is an open circuit, not a huge pseudo-impedance.
	if cmplx.Abs(admittance) < consts.ShortEpsilon {
		return element.OpenZ()
	}
	return element.FiniteZ(1.0 / admittance)
}

// Details joins the descriptions of all leaf elements under this group.
func (g *Group) Details() string {
	parts := make([]string, len(g.Children))
	for i, child := range g.Children {
		parts[i] = child.Details()
	}
	return strings.Join(parts, ", ")
}
