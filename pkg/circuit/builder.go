package circuit

import (
	"fmt"

	"github.com/otoniel-star/circuitca/pkg/element"
)

// ConnectionStart labels the first merge into an empty circuit.
const ConnectionStart = "Início"

// HistoryEntry records one merge into the root tree. Entries are append-only
// and cleared only by Reset.
type HistoryEntry struct {
	GroupName  string
	Connection string            // ConnectionStart or the merge GroupType label
	GroupZ     element.Impedance // the merged group's own impedance
	TotalZ     element.Impedance // cumulative root impedance after the merge
	Details    string
}

// Builder owns the root tree and assembles it incrementally: each candidate
// group is merged against everything accumulated so far.
type Builder struct {
	root       *Group
	history    []HistoryEntry
	groupCount int
}

func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()
	return b
}

// Reset discards the tree and the history.
func (b *Builder) Reset() {
	b.root = NewGroup(Series, "Circuito Principal")
	b.history = nil
	b.groupCount = 0
}

// StartGroup wraps freshly built elements into a standalone candidate group.
// The root tree is not touched until Merge.
func (b *Builder) StartGroup(kind string, elements ...Node) *Group {
	b.groupCount++
	name := fmt.Sprintf("Grupo %d (%s)", b.groupCount, kind)
	return NewGroup(Series, name, elements...)
}

// Merge connects a candidate group to the circuit. The first merge replaces
// the empty root; every later merge wraps the old root and the candidate in a
// new binary root of the requested type, so the tree grows as a left-leaning
// chain.
func (b *Builder) Merge(candidate *Group, conn GroupType, omega float64) HistoryEntry {
	groupZ := candidate.Impedance(omega)

	var connection string
	if len(b.history) == 0 && len(b.root.Children) == 0 {
		b.root.Type = conn
		b.root.Children = []Node{candidate}
		connection = ConnectionStart
	} else {
		b.root = NewGroup(conn, b.root.name, b.root, candidate)
		connection = conn.Label()
	}

	entry := HistoryEntry{
		GroupName:  candidate.Name(),
		Connection: connection,
		GroupZ:     groupZ,
		TotalZ:     b.root.Impedance(omega),
		Details:    candidate.Details(),
	}
	b.history = append(b.history, entry)
	return entry
}

func (b *Builder) Root() *Group { return b.root }

func (b *Builder) Empty() bool { return len(b.root.Children) == 0 }

func (b *Builder) History() []HistoryEntry { return b.history }

// TotalImpedance reduces the whole tree at the given angular frequency.
func (b *Builder) TotalImpedance(omega float64) element.Impedance {
	return b.root.Impedance(omega)
}
