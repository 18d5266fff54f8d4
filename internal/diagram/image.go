package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	shearColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	momentColor = color.RGBA{R: 220, G: 0, B: 0, A: 255}
	loadColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportBeamDiagrams writes the beam schematic, the shear force diagram and
// the bending moment diagram stacked in one image. The format follows the
// file extension (png, svg or pdf); anything else is saved as png.
func ExportBeamDiagrams(data BeamDiagramData, filename string) (string, error) {
	schematic, err := beamPlot(data)
	if err != nil {
		return "", err
	}
	sfd, err := linePlot(data.X, data.V, "Shear Force Diagram (SFD)", "Shear Force (kN)", shearColor, data.MaxV, "kN")
	if err != nil {
		return "", err
	}
	bmd, err := linePlot(data.X, data.M, "Bending Moment Diagram (BMD)", "Bending Moment (kN-m)", momentColor, data.MaxM, "kN-m")
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	width := 8 * vg.Inch
	height := 10 * vg.Inch
	c := newCanvas(filepath.Ext(filename), width, height)

	plots := [][]*plot.Plot{{schematic}, {sfd}, {bmd}}
	tiles := draw.Tiles{
		Rows:      3,
		Cols:      1,
		PadTop:    vg.Points(10),
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
		PadY:      vg.Points(20),
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return filename, f.Close()
}

func newCanvas(ext string, w, h vg.Length) vg.CanvasWriterTo {
	switch strings.ToLower(ext) {
	case ".svg":
		return vgsvg.New(w, h)
	case ".pdf":
		return vgpdf.New(w, h)
	default:
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}
	}
}

// beamPlot draws the beam axis, support glyphs by type and load symbols
func beamPlot(data BeamDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Beam Diagram"
	if data.Title != "" {
		p.Title.Text = fmt.Sprintf("Beam Diagram: %s", data.Title)
	}
	p.X.Label.Text = "Beam Length (m)"
	p.X.Min, p.X.Max = 0, data.Length
	p.Y.Min, p.Y.Max = -1, 1.6
	p.HideY()
	p.Add(plotter.NewGrid())

	beamLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: data.Length, Y: 0}})
	if err != nil {
		return nil, err
	}
	beamLine.LineStyle.Width = vg.Points(3)
	beamLine.LineStyle.Color = color.Black
	p.Add(beamLine)

	// One scatter per support type so each gets a single legend entry
	styles := []struct {
		typ   string
		shape draw.GlyphDrawer
		color color.Color
	}{
		{"Fixed", draw.BoxGlyph{}, color.Black},
		{"Pinned", draw.TriangleGlyph{}, color.RGBA{G: 128, A: 255}},
		{"Roller", draw.CircleGlyph{}, shearColor},
	}
	for _, st := range styles {
		var pts plotter.XYs
		for _, s := range data.Supports {
			if s.Type == st.typ {
				pts = append(pts, plotter.XY{X: s.X, Y: -0.15})
			}
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = st.shape
		sc.GlyphStyle.Color = st.color
		sc.GlyphStyle.Radius = vg.Points(7)
		p.Add(sc)
		p.Legend.Add(st.typ, sc)
	}

	if err := addLoads(p, data.Loads); err != nil {
		return nil, err
	}
	return p, nil
}

// addLoads draws point loads as arrows, distributed loads as outlines scaled
// to the largest intensity, and moments as labels
func addLoads(p *plot.Plot, loads []LoadMarker) error {
	var peak float64
	for _, l := range loads {
		if l.Kind == "udl" || l.Kind == "triangular" {
			peak = math.Max(peak, math.Max(math.Abs(l.W1), math.Abs(l.W2)))
		}
	}
	height := func(w float64) float64 {
		if peak == 0 {
			return 0
		}
		return 0.1 + 0.9*math.Abs(w)/peak
	}

	var labels plotter.XYLabels
	for _, l := range loads {
		switch l.Kind {
		case "point":
			arrow, err := plotter.NewLine(plotter.XYs{
				{X: l.Start, Y: 1.3}, {X: l.Start, Y: 0.05},
				{X: l.Start - 0.01*p.X.Max, Y: 0.2}, {X: l.Start, Y: 0.05},
				{X: l.Start + 0.01*p.X.Max, Y: 0.2},
			})
			if err != nil {
				return err
			}
			arrow.LineStyle.Width = vg.Points(1.5)
			arrow.LineStyle.Color = loadColor
			p.Add(arrow)
			labels.XYs = append(labels.XYs, plotter.XY{X: l.Start, Y: 1.4})
		case "moment":
			labels.XYs = append(labels.XYs, plotter.XY{X: l.Start, Y: 0.4})
		default:
			outline, err := plotter.NewLine(plotter.XYs{
				{X: l.Start, Y: 0.05}, {X: l.Start, Y: height(l.W1)},
				{X: l.End, Y: height(l.W2)}, {X: l.End, Y: 0.05},
			})
			if err != nil {
				return err
			}
			outline.LineStyle.Width = vg.Points(1)
			outline.LineStyle.Color = loadColor
			p.Add(outline)
			labels.XYs = append(labels.XYs, plotter.XY{X: (l.Start + l.End) / 2, Y: math.Max(height(l.W1), height(l.W2)) + 0.1})
		}
		labels.Labels = append(labels.Labels, l.Label)
	}

	if len(labels.XYs) == 0 {
		return nil
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(lbl)
	return nil
}

// linePlot draws one diagram with a zero line and its extreme annotated
func linePlot(xs, ys []float64, title, yLabel string, c color.Color, peak Extreme, unit string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Beam Length (m)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	if len(xs) != len(ys) || len(xs) < 2 {
		return nil, fmt.Errorf("diagram needs matching x and y samples, got %d and %d", len(xs), len(ys))
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{{X: xs[0], Y: 0}, {X: xs[len(xs)-1], Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	marker, err := plotter.NewScatter(plotter.XYs{{X: peak.X, Y: peak.Value}})
	if err != nil {
		return nil, err
	}
	marker.GlyphStyle.Color = momentColor
	marker.GlyphStyle.Radius = vg.Points(3)
	p.Add(marker)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: peak.X, Y: peak.Value}},
		Labels: []string{fmt.Sprintf("Max: %.2f %s", peak.Value, unit)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	return p, nil
}
