package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/otoniel-star/circuitca/pkg/analysis"
	"github.com/otoniel-star/circuitca/pkg/circuit"
	"github.com/otoniel-star/circuitca/pkg/netlist"
	"github.com/otoniel-star/circuitca/pkg/render"
	"github.com/otoniel-star/circuitca/pkg/util"
)

type session struct {
	builder  *circuit.Builder
	vrms     float64
	phaseDeg float64
	freqHz   float64

	pending   *circuit.Group // candidate group waiting for an add
	lastSolve *analysis.Result
	lastSweep *analysis.SweepResult
}

func newSession() *session {
	return &session{
		builder: circuit.NewBuilder(),
		vrms:    120,
		freqHz:  60,
	}
}

func (s *session) exec(cmd netlist.Command) error {
	switch cmd.Kind {
	case netlist.CmdSource:
		s.vrms = cmd.Vrms
		s.phaseDeg = cmd.PhaseDeg

	case netlist.CmdFreq:
		s.freqHz = cmd.Freq

	case netlist.CmdGroup:
		omega, err := analysis.AngularFrequency(s.freqHz)
		if err != nil {
			return err
		}
		elements, err := netlist.CreateElements(cmd.Group)
		if err != nil {
			return err
		}
		group := s.builder.StartGroup(cmd.Group.Kind, elements...)
		fmt.Printf("%s - Impedância: %s\n", group.Name(), group.Impedance(omega))
		s.pending = group

	case netlist.CmdAdd:
		if s.pending == nil {
			return fmt.Errorf("no candidate group: define a group before add")
		}
		omega, err := analysis.AngularFrequency(s.freqHz)
		if err != nil {
			return err
		}
		entry := s.builder.Merge(s.pending, cmd.Conn, omega)
		s.pending = nil
		fmt.Printf("[%s] %s  Z_total: %s\n", entry.Connection, entry.GroupName, entry.TotalZ)

		s.lastSolve, err = analysis.Solve(s.builder.Root(), s.vrms, s.phaseDeg, s.freqHz)
		if err != nil {
			return err
		}

	case netlist.CmdSweep:
		if s.builder.Empty() {
			return fmt.Errorf("empty circuit: add groups before sweep")
		}
		sweep, err := s.makeSweep(cmd.Sweep)
		if err != nil {
			return err
		}
		s.lastSweep = sweep.Run(s.builder.Root())
		n := len(s.lastSweep.Frequencies)
		fmt.Printf("Sweep: %d points, %s to %s\n", n,
			util.FormatFrequency(s.lastSweep.Frequencies[0]),
			util.FormatFrequency(s.lastSweep.Frequencies[n-1]))

	case netlist.CmdPlot:
		return s.plot(cmd.Plot)

	case netlist.CmdReset:
		s.builder.Reset()
		s.pending = nil
		s.lastSolve = nil
		s.lastSweep = nil
	}

	return nil
}

func (s *session) makeSweep(spec netlist.SweepSpec) (*analysis.Sweep, error) {
	if spec.Default {
		return analysis.DefaultSweep(s.freqHz)
	}
	return analysis.NewSweep(spec.FStart, spec.FStop, spec.Points, spec.Type)
}

func (s *session) plot(spec netlist.PlotSpec) error {
	switch spec.Kind {
	case "bode":
		if s.lastSweep == nil {
			if s.builder.Empty() {
				return fmt.Errorf("empty circuit: add groups before plotting")
			}
			sweep, err := analysis.DefaultSweep(s.freqHz)
			if err != nil {
				return err
			}
			s.lastSweep = sweep.Run(s.builder.Root())
		}
		if err := render.Bode(s.lastSweep, s.freqHz, spec.File); err != nil {
			return err
		}
		fmt.Printf("Bode plot written to %s\n", spec.File)

	case "fasores":
		if s.lastSolve == nil || len(s.lastSolve.Phasors) == 0 {
			return fmt.Errorf("no phasors available: solve a non-degenerate circuit first")
		}
		if err := render.PhasorDiagram(s.lastSolve.Phasors, spec.File); err != nil {
			return err
		}
		fmt.Printf("Phasor diagram written to %s\n", spec.File)
	}

	return nil
}

func (s *session) printSummary() {
	fmt.Println("\nHistórico do Circuito:")
	fmt.Println("----------------------------------------------------------------------")
	fmt.Printf("%-18s %-10s %-24s %s\n", "Grupo", "Conexão", "Z Total Acumulada", "Detalhes")
	for _, entry := range s.builder.History() {
		fmt.Printf("%-18s %-10s %-24s %s (Z_grupo=%s)\n",
			entry.GroupName, entry.Connection, entry.TotalZ, entry.Details, entry.GroupZ)
	}

	if s.lastSolve == nil {
		return
	}
	res := s.lastSolve

	fmt.Println("\nResultados Finais do Circuito na Frequência Base:")
	fmt.Printf("Z_total: %s\n", res.TotalZ)

	switch res.State {
	case analysis.StateShort:
		fmt.Println("Corrente Total (I_total): Infinito < 0.00° A (Curto-circuito)")
		fmt.Println("Potências e Fator de Potência: Não Aplicável")

	case analysis.StateOpen:
		fmt.Println("Corrente Total (I_total): 0.0000 < 0.00° A (Circuito Aberto)")
		fmt.Println("Potências e Fator de Potência: Não Aplicável")

	default:
		fmt.Printf("Corrente Total (I_total): %s A\n", util.PolarString(res.ITotal))
		fmt.Printf("Potência Ativa (P): %.4f W\n", res.Power.P)
		fmt.Printf("Potência Reativa (Q): %.4f VAR\n", res.Power.Q)
		fmt.Printf("Potência Aparente (S): %.4f VA\n", res.Power.S)
		fmt.Printf("Fator de Potência (FP): %.4f (%s)\n", res.Power.Factor, res.Power.Class())

		fmt.Println("\nFasores:")
		for _, ph := range res.Phasors {
			if !ph.Finite() {
				fmt.Printf("%-10s = Infinito (%s)\n", ph.Label, ph.Role)
				continue
			}
			fmt.Printf("%-10s = %s (%s)\n", ph.Label, util.PolarString(ph.Value), ph.Role)
		}
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: circuitca <script_file>")
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading script file: %v", err)
	}

	commands, err := netlist.Parse(string(content))
	if err != nil {
		log.Fatalf("Error parsing script: %v", err)
	}

	s := newSession()
	for _, cmd := range commands {
		if err := s.exec(cmd); err != nil {
			log.Fatalf("Error executing script: %v", err)
		}
	}
	s.printSummary()
}
