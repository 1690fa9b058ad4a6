package circuit

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/otoniel-star/circuitca/pkg/element"
)

const omega60 = 2 * math.Pi * 60

func mustResistor(t *testing.T, r float64) *element.Resistor {
	t.Helper()
	res, err := element.NewResistor(r)
	if err != nil {
		t.Fatalf("NewResistor(%g): %v", r, err)
	}
	return res
}

func mustInductor(t *testing.T, l float64) *element.Inductor {
	t.Helper()
	ind, err := element.NewInductor(l)
	if err != nil {
		t.Fatalf("NewInductor(%g): %v", l, err)
	}
	return ind
}

func mustCapacitor(t *testing.T, c float64) *element.Capacitor {
	t.Helper()
	cap, err := element.NewCapacitor(c)
	if err != nil {
		t.Fatalf("NewCapacitor(%g): %v", c, err)
	}
	return cap
}

func TestSeriesSum(t *testing.T) {
	g := NewGroup(Series, "g", mustResistor(t, 100), mustInductor(t, 0.1))
	z := g.Impedance(omega60)
	want := complex(100, omega60*0.1)
	if got := z.Complex(); cmplx.Abs(got-want) > 1e-9 {
		t.Errorf("series Z = %v, want %v", got, want)
	}
}

func TestSeriesOrderIndependent(t *testing.T) {
	a := NewGroup(Series, "a", mustResistor(t, 10), mustInductor(t, 0.2), mustCapacitor(t, 1e-6))
	b := NewGroup(Series, "b", mustCapacitor(t, 1e-6), mustResistor(t, 10), mustInductor(t, 0.2))
	za := a.Impedance(omega60).Complex()
	zb := b.Impedance(omega60).Complex()
	if cmplx.Abs(za-zb) > 1e-9 {
		t.Errorf("series result depends on child order: %v vs %v", za, zb)
	}
}

func TestSeriesWithOpenChildIsOpen(t *testing.T) {
	g := NewGroup(Series, "g", mustResistor(t, 100), mustCapacitor(t, 0))
	if z := g.Impedance(omega60); !z.IsOpen() {
		t.Errorf("series with open child = %v, want open", z)
	}
}

func TestParallelOfEqualImpedances(t *testing.T) {
	// n identical branches z reduce to z/n
	g := NewGroup(Parallel, "g", mustResistor(t, 100), mustResistor(t, 100))
	want := complex(50, 0)
	if got := g.Impedance(omega60).Complex(); cmplx.Abs(got-want) > 1e-9 {
		t.Errorf("parallel Z = %v, want %v", got, want)
	}

	g3 := NewGroup(Parallel, "g3", mustResistor(t, 90), mustResistor(t, 90), mustResistor(t, 90))
	want3 := complex(30, 0)
	if got := g3.Impedance(omega60).Complex(); cmplx.Abs(got-want3) > 1e-9 {
		t.Errorf("parallel of three Z = %v, want %v", got, want3)
	}
}

func TestParallelShortDominates(t *testing.T) {
	g := NewGroup(Parallel, "g", mustResistor(t, 0), mustResistor(t, 100))
	if z := g.Impedance(omega60); !z.IsShort() {
		t.Errorf("Parallel(0, 100) = %v, want short", z)
	}
}

func TestParallelAllOpenIsOpen(t *testing.T) {
	g := NewGroup(Parallel, "g", mustCapacitor(t, 0), mustCapacitor(t, 0))
	if z := g.Impedance(omega60); !z.IsOpen() {
		t.Errorf("Parallel(open, open) = %v, want open", z)
	}
}

func TestParallelExcludesOpenBranches(t *testing.T) {
	g := NewGroup(Parallel, "g", mustResistor(t, 100), mustCapacitor(t, 0))
	want := complex(100, 0)
	if got := g.Impedance(omega60).Complex(); cmplx.Abs(got-want) > 1e-9 {
		t.Errorf("parallel with open branch = %v, want %v", got, want)
	}
}

func TestParallelResonanceIsOpen(t *testing.T) {
	// At omega = 1/sqrt(LC) the L and C admittances cancel; the admittance sum
	// vanishes and the group must report open instead of a huge pseudo-impedance.
	g := NewGroup(Parallel, "g", mustInductor(t, 1), mustCapacitor(t, 1))
	if z := g.Impedance(1.0); !z.IsOpen() {
		t.Errorf("parallel LC at resonance = %v, want open", z)
	}
}

func TestEmptyParallelIsOpen(t *testing.T) {
	g := NewGroup(Parallel, "g")
	if z := g.Impedance(omega60); !z.IsOpen() {
		t.Errorf("empty parallel group = %v, want open", z)
	}
}

func TestEmptyCircuitImpedanceIsZero(t *testing.T) {
	b := NewBuilder()
	z := b.TotalImpedance(omega60)
	if z.Abs() != 0 {
		t.Errorf("empty circuit |Z| = %v, want 0", z.Abs())
	}
}

func TestFirstMergeReplacesRoot(t *testing.T) {
	b := NewBuilder()
	g := b.StartGroup("R", mustResistor(t, 100))
	entry := b.Merge(g, Parallel, omega60)

	if entry.Connection != ConnectionStart {
		t.Errorf("first merge connection = %q, want %q", entry.Connection, ConnectionStart)
	}
	if b.Root().Type != Parallel {
		t.Errorf("root type = %v, want Parallel", b.Root().Type)
	}
	if len(b.Root().Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(b.Root().Children))
	}
}

func TestLaterMergesWrapRoot(t *testing.T) {
	b := NewBuilder()
	b.Merge(b.StartGroup("R", mustResistor(t, 100)), Series, omega60)
	oldRoot := b.Root()
	entry := b.Merge(b.StartGroup("L", mustInductor(t, 0.1)), Parallel, omega60)

	if entry.Connection != Parallel.Label() {
		t.Errorf("connection = %q, want %q", entry.Connection, Parallel.Label())
	}
	root := b.Root()
	if root.Type != Parallel || len(root.Children) != 2 {
		t.Fatalf("root = %v with %d children, want binary Parallel", root.Type, len(root.Children))
	}
	if root.Children[0] != Node(oldRoot) {
		t.Errorf("first child of wrapped root is not the old root")
	}
}

func TestMergeHistoryInvariant(t *testing.T) {
	b := NewBuilder()
	b.Merge(b.StartGroup("R", mustResistor(t, 100)), Series, omega60)
	b.Merge(b.StartGroup("L", mustInductor(t, 0.1)), Series, omega60)
	b.Merge(b.StartGroup("C", mustCapacitor(t, 47e-6)), Parallel, omega60)

	history := b.History()
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}

	// The last cumulative impedance must match a fresh reduction of the tree.
	last := history[len(history)-1]
	recomputed := b.TotalImpedance(omega60)
	if cmplx.Abs(last.TotalZ.Complex()-recomputed.Complex()) > 1e-12 {
		t.Errorf("cumulative Z = %v, recomputed = %v", last.TotalZ, recomputed)
	}
}

func TestGroupNumbering(t *testing.T) {
	b := NewBuilder()
	g1 := b.StartGroup("R", mustResistor(t, 1))
	g2 := b.StartGroup("RL", mustResistor(t, 1), mustInductor(t, 1))
	if g1.Name() != "Grupo 1 (R)" {
		t.Errorf("first group name = %q", g1.Name())
	}
	if g2.Name() != "Grupo 2 (RL)" {
		t.Errorf("second group name = %q", g2.Name())
	}
}

func TestResetClearsEverything(t *testing.T) {
	b := NewBuilder()
	b.Merge(b.StartGroup("R", mustResistor(t, 100)), Series, omega60)
	b.Reset()

	if len(b.History()) != 0 {
		t.Errorf("history after reset has %d entries", len(b.History()))
	}
	if !b.Empty() {
		t.Errorf("root not empty after reset")
	}
	if b.Root().Type != Series {
		t.Errorf("root type after reset = %v, want Series", b.Root().Type)
	}
	if z := b.TotalImpedance(omega60); z.Abs() != 0 {
		t.Errorf("impedance after reset = %v, want 0", z)
	}

	// Numbering restarts as well.
	if g := b.StartGroup("R", mustResistor(t, 1)); g.Name() != "Grupo 1 (R)" {
		t.Errorf("group name after reset = %q", g.Name())
	}
}

func TestSweepReentrancy(t *testing.T) {
	// Reducing the same tree at several frequencies must not leak state
	// between evaluations.
	g := NewGroup(Series, "g", mustResistor(t, 100), mustCapacitor(t, 1e-6))
	z1 := g.Impedance(2 * math.Pi * 10).Complex()
	g.Impedance(2 * math.Pi * 1e6)
	z2 := g.Impedance(2 * math.Pi * 10).Complex()
	if cmplx.Abs(z1-z2) > 1e-12 {
		t.Errorf("re-evaluation at the same frequency differs: %v vs %v", z1, z2)
	}
}
