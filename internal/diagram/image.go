package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	outlineColor = color.Black
	qcColor      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	fillColor    = color.RGBA{R: 100, G: 149, B: 237, A: 120}
	curveColor   = color.RGBA{R: 0, G: 100, B: 0, A: 255}
)

// ExportPlanform exports a top view of the wing tree to an image file.
// Span runs horizontally and the nose points up.
func ExportPlanform(data PlanformData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Wing Planform"
	}
	p.X.Label.Text = axisLabel("y", data.Unit)
	p.Y.Label.Text = axisLabel("x", data.Unit)

	for _, seg := range data.Segments {
		outline := toXYs(seg.Outline())
		if len(outline) < 3 {
			continue
		}

		shape, err := plotter.NewPolygon(outline)
		if err != nil {
			return err
		}
		shape.Color = fillColor
		shape.LineStyle.Width = vg.Points(1.5)
		shape.LineStyle.Color = outlineColor
		p.Add(shape)

		qc, err := plotter.NewLine(toXYs(seg.QuarterChord))
		if err != nil {
			return err
		}
		qc.LineStyle.Width = vg.Points(1)
		qc.LineStyle.Color = qcColor
		qc.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(qc)

		tip := seg.TrailingEdge[len(seg.TrailingEdge)-1]
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: tip.Y, Y: tip.X}},
			Labels: []string{seg.Name},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportDistribution exports a spanwise distribution plot to an image file.
func ExportDistribution(d Distribution, filename string) error {
	if len(d.Span) != len(d.Values) || len(d.Span) == 0 {
		return fmt.Errorf("distribution %q has %d stations and %d values", d.Title, len(d.Span), len(d.Values))
	}

	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = d.XLabel
	p.Y.Label.Text = d.YLabel

	pts := make(plotter.XYs, len(d.Span))
	for i := range d.Span {
		pts[i] = plotter.XY{X: d.Span[i], Y: d.Values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = curveColor
	p.Add(line)

	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = curveColor
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// save writes p in the format given by the file extension, defaulting to PNG.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func toXYs(pts []Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.Y, Y: pt.X}
	}
	return out
}

func axisLabel(axis, unit string) string {
	if unit == "" {
		return axis
	}
	return fmt.Sprintf("%s (%s)", axis, unit)
}
