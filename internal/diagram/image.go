package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gotendon/internal/tendon"
)

// ExportProfileDiagram writes the tendon elevation to an image file.
// Supported extensions are .png, .svg and .pdf; anything else gets a
// .png appended.
func ExportProfileDiagram(cfg tendon.ProfileConfig, result tendon.CalculationResult, filename string) error {
	if len(result.Points) == 0 {
		return fmt.Errorf("no points to draw")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Tendon Profile — %s", cfg.SelectedProfile.Name())
	p.X.Label.Text = fmt.Sprintf("Distance (%s)", cfg.Unit.Label())
	p.Y.Label.Text = fmt.Sprintf("Height (%s)", cfg.Unit.Label())

	// Profile polyline through the sampled points
	profile := make(plotter.XYs, len(result.Points))
	for i, pt := range result.Points {
		profile[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	profileLine, err := plotter.NewLine(profile)
	if err != nil {
		return err
	}
	profileLine.LineStyle.Width = vg.Points(2)
	profileLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(profileLine)

	// Sample markers
	samples, err := plotter.NewScatter(profile)
	if err != nil {
		return err
	}
	samples.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	samples.GlyphStyle.Radius = vg.Points(2)
	samples.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(samples)

	// Soffit reference line at the low point
	low := min(cfg.HighPt, cfg.LowPt)
	soffit, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: low},
		{X: cfg.Length, Y: low},
	})
	if err != nil {
		return err
	}
	soffit.LineStyle.Width = vg.Points(1)
	soffit.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	soffit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(soffit)

	// Inflection-point markers with labels
	if len(result.InflectionPoints) > 0 {
		xys := make(plotter.XYs, len(result.InflectionPoints))
		labels := make([]string, len(result.InflectionPoints))
		for i, ip := range result.InflectionPoints {
			xys[i] = plotter.XY{X: ip.X, Y: ip.Y}
			labels[i] = fmt.Sprintf("x=%.0f", ip.X)
		}

		marks, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		marks.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		marks.GlyphStyle.Radius = vg.Points(4)
		marks.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(marks)

		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 10 * vg.Inch
	height := 4 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
