package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/otoniel-star/circuitca/pkg/analysis"
	"github.com/otoniel-star/circuitca/pkg/util"
)

// Bode writes the impedance magnitude curve to an image file, with a
// logarithmic frequency axis and a dashed marker at the base frequency.
func Bode(res *analysis.SweepResult, baseFreqHz float64, file string) error {
	if len(res.Frequencies) == 0 {
		return fmt.Errorf("empty sweep result")
	}

	p := plot.New()
	p.Title.Text = "Diagrama de Magnitude de Bode da Impedância Total"
	p.X.Label.Text = "Frequência (Hz)"
	p.Y.Label.Text = "Magnitude da Impedância (dB)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(res.Frequencies))
	for i := range res.Frequencies {
		pts[i].X = res.Frequencies[i]
		pts[i].Y = res.MagnitudesDB[i]
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("magnitude curve: %v", err)
	}
	curve.Color = color.RGBA{B: 255, A: 255}
	p.Add(curve)

	yLo, yHi := util.Bounds(res.MagnitudesDB)
	marker, err := plotter.NewLine(plotter.XYs{
		{X: baseFreqHz, Y: yLo},
		{X: baseFreqHz, Y: yHi},
	})
	if err != nil {
		return fmt.Errorf("base frequency marker: %v", err)
	}
	marker.Color = color.RGBA{R: 255, A: 255}
	marker.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("Frequência Base: %.2f Hz", baseFreqHz), marker)

	return p.Save(8*vg.Inch, 5*vg.Inch, file)
}
