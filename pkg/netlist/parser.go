package netlist

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/otoniel-star/circuitca/pkg/circuit"
	"github.com/otoniel-star/circuitca/pkg/element"
)

type CommandKind int

const (
	CmdSource CommandKind = iota
	CmdFreq
	CmdGroup
	CmdAdd
	CmdSweep
	CmdPlot
	CmdReset
)

// GroupSpec describes a candidate group before its elements are built.
type GroupSpec struct {
	Kind   string // R, L, C, RL, RC, RLC, Z
	R      float64
	L      float64
	C      float64
	ZMag   float64
	ZAngle float64
}

type SweepSpec struct {
	Default bool // derive the range from the base frequency
	Type    string
	Points  int
	FStart  float64
	FStop   float64
}

type PlotSpec struct {
	Kind string // "bode" or "fasores"
	File string
}

// Command is one parsed script line. Only the fields of the matching kind
// are meaningful.
type Command struct {
	Kind     CommandKind
	Vrms     float64
	PhaseDeg float64
	Freq     float64
	Group    GroupSpec
	Conn     circuit.GroupType
	Sweep    SweepSpec
	Plot     PlotSpec
}

// Parse reads a circuit script: one command per line, "*"-prefixed comment
// lines and blank lines ignored, keywords case-insensitive.
func Parse(input string) ([]Command, error) {
	var commands []Command

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "*") {
			continue
		}

		cmd, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		commands = append(commands, cmd)
	}

	return commands, nil
}

func parseLine(line string) (Command, error) {
	fields := strings.Fields(line)
	keyword := strings.ToLower(fields[0])

	switch keyword {
	case "source", "fonte":
		return parseSource(fields[1:])

	case "freq":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("freq requires a value in Hz")
		}
		f, err := ParseValue(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdFreq, Freq: f}, nil

	case "group", "grupo":
		return parseGroup(fields[1:])

	case "add":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("add requires serie or paralelo")
		}
		conn, err := parseConnection(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdAdd, Conn: conn}, nil

	case "sweep":
		return parseSweep(fields[1:])

	case "plot":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("plot requires a kind (bode|fasores) and an output file")
		}
		kind := strings.ToLower(fields[1])
		if kind != "bode" && kind != "fasores" {
			return Command{}, fmt.Errorf("unsupported plot kind: %s", fields[1])
		}
		return Command{Kind: CmdPlot, Plot: PlotSpec{Kind: kind, File: fields[2]}}, nil

	case "reset":
		return Command{Kind: CmdReset}, nil

	default:
		return Command{}, fmt.Errorf("unsupported command: %s", fields[0])
	}
}

func parseSource(fields []string) (Command, error) {
	if len(fields) < 1 || len(fields) > 2 {
		return Command{}, fmt.Errorf("source requires magnitude [phase_deg]")
	}
	vrms, err := ParseValue(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("invalid source magnitude: %v", err)
	}
	phase := 0.0
	if len(fields) == 2 {
		phase, err = ParseValue(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("invalid source phase: %v", err)
		}
	}
	return Command{Kind: CmdSource, Vrms: vrms, PhaseDeg: phase}, nil
}

func parseConnection(word string) (circuit.GroupType, error) {
	switch strings.ToLower(word) {
	case "serie", "série", "series":
		return circuit.Series, nil
	case "paralelo", "parallel":
		return circuit.Parallel, nil
	default:
		return 0, fmt.Errorf("unsupported connection type: %s", word)
	}
}

// parseGroup reads "group <kind> <values...>" with positional values per
// kind: R|L|C take one, RL|RC take two, RLC takes three, Z takes magnitude
// and angle in degrees.
func parseGroup(fields []string) (Command, error) {
	if len(fields) < 1 {
		return Command{}, fmt.Errorf("group requires a kind")
	}

	spec := GroupSpec{Kind: strings.ToUpper(fields[0])}
	values := fields[1:]

	want := map[string]int{
		"R": 1, "L": 1, "C": 1,
		"RL": 2, "RC": 2, "RLC": 3,
		"Z": 2,
	}
	n, ok := want[spec.Kind]
	if !ok {
		return Command{}, fmt.Errorf("unsupported group kind: %s", fields[0])
	}
	if len(values) != n {
		return Command{}, fmt.Errorf("group %s requires %d value(s), got %d", spec.Kind, n, len(values))
	}

	parsed := make([]float64, len(values))
	for i, v := range values {
		f, err := ParseValue(v)
		if err != nil {
			return Command{}, err
		}
		parsed[i] = f
	}

	switch spec.Kind {
	case "R":
		spec.R = parsed[0]
	case "L":
		spec.L = parsed[0]
	case "C":
		spec.C = parsed[0]
	case "RL":
		spec.R, spec.L = parsed[0], parsed[1]
	case "RC":
		spec.R, spec.C = parsed[0], parsed[1]
	case "RLC":
		spec.R, spec.L, spec.C = parsed[0], parsed[1], parsed[2]
	case "Z":
		spec.ZMag, spec.ZAngle = parsed[0], parsed[1]
	}

	return Command{Kind: CmdGroup, Group: spec}, nil
}

func parseSweep(fields []string) (Command, error) {
	if len(fields) == 0 {
		return Command{Kind: CmdSweep, Sweep: SweepSpec{Default: true}}, nil
	}
	if len(fields) != 4 {
		return Command{}, fmt.Errorf("sweep requires type, points, fstart and fstop")
	}

	spec := SweepSpec{Type: strings.ToUpper(fields[0])}
	if spec.Type != "DEC" && spec.Type != "OCT" && spec.Type != "LIN" {
		return Command{}, fmt.Errorf("invalid sweep type: %s", fields[0])
	}

	points, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("invalid points number: %v", err)
	}
	spec.Points = points

	spec.FStart, err = ParseValue(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("invalid fstart: %v", err)
	}
	spec.FStop, err = ParseValue(fields[3])
	if err != nil {
		return Command{}, fmt.Errorf("invalid fstop: %v", err)
	}

	return Command{Kind: CmdSweep, Sweep: spec}, nil
}

// CreateElements builds the leaf elements of a candidate group.
func CreateElements(spec GroupSpec) ([]circuit.Node, error) {
	var nodes []circuit.Node

	addR := func() error {
		r, err := element.NewResistor(spec.R)
		if err != nil {
			return err
		}
		nodes = append(nodes, r)
		return nil
	}
	addL := func() error {
		l, err := element.NewInductor(spec.L)
		if err != nil {
			return err
		}
		nodes = append(nodes, l)
		return nil
	}
	addC := func() error {
		c, err := element.NewCapacitor(spec.C)
		if err != nil {
			return err
		}
		nodes = append(nodes, c)
		return nil
	}

	switch spec.Kind {
	case "R":
		if err := addR(); err != nil {
			return nil, err
		}
	case "L":
		if err := addL(); err != nil {
			return nil, err
		}
	case "C":
		if err := addC(); err != nil {
			return nil, err
		}
	case "RL":
		if err := addR(); err != nil {
			return nil, err
		}
		if err := addL(); err != nil {
			return nil, err
		}
	case "RC":
		if err := addR(); err != nil {
			return nil, err
		}
		if err := addC(); err != nil {
			return nil, err
		}
	case "RLC":
		if err := addR(); err != nil {
			return nil, err
		}
		if err := addL(); err != nil {
			return nil, err
		}
		if err := addC(); err != nil {
			return nil, err
		}
	case "Z":
		z, err := element.NewKnownImpedance(spec.ZMag, spec.ZAngle)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, z)
	default:
		return nil, fmt.Errorf("unsupported group kind: %s", spec.Kind)
	}

	return nodes, nil
}
