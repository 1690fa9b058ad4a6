package render

import (
	"fmt"
	"image/color"
	"math/cmplx"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/otoniel-star/circuitca/pkg/analysis"
	"github.com/otoniel-star/circuitca/pkg/util"
)

// PhasorDiagram draws every finite phasor as a line from the origin with a
// polar label. Infinite currents through short branches are skipped.
func PhasorDiagram(phasors []analysis.Phasor, file string) error {
	var drawable []analysis.Phasor
	maxMagnitude := 0.0
	for _, ph := range phasors {
		if !ph.Finite() {
			continue
		}
		drawable = append(drawable, ph)
		if mag := cmplx.Abs(ph.Value); mag > maxMagnitude {
			maxMagnitude = mag
		}
	}
	if len(drawable) == 0 {
		return fmt.Errorf("no finite phasors to draw")
	}
	if maxMagnitude == 0 {
		maxMagnitude = 1
	}
	lim := maxMagnitude * 1.2

	p := plot.New()
	p.Title.Text = "Diagrama Fasorial Completo"
	p.X.Label.Text = "Parte Real"
	p.Y.Label.Text = "Parte Imaginária"
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim
	p.Add(plotter.NewGrid())

	labels := plotter.XYLabels{}
	for _, ph := range drawable {
		arrow, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: 0},
			{X: real(ph.Value), Y: imag(ph.Value)},
		})
		if err != nil {
			return fmt.Errorf("phasor %s: %v", ph.Label, err)
		}
		arrow.Color = roleColor(ph.Role)
		arrow.Width = vg.Points(1.5)
		p.Add(arrow)

		labels.XYs = append(labels.XYs, plotter.XY{
			X: real(ph.Value) * 1.05,
			Y: imag(ph.Value) * 1.05,
		})
		labels.Labels = append(labels.Labels,
			fmt.Sprintf("%s (%s)", ph.Label, util.PolarString(ph.Value)))
	}

	labelPlot, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("phasor labels: %v", err)
	}
	p.Add(labelPlot)

	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}

func roleColor(role analysis.Role) color.Color {
	if role == analysis.RoleCurrent {
		return color.RGBA{R: 128, B: 128, A: 255}
	}
	return color.RGBA{G: 100, A: 255}
}
