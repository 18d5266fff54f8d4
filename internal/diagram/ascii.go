package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// SupportMarker places a support symbol on the schematic
type SupportMarker struct {
	Type string  // Fixed, Pinned or Roller
	X    float64 // m
}

// LoadMarker places a load symbol on the schematic
type LoadMarker struct {
	Kind  string  // point, moment, udl or triangular
	Start float64 // position, or start of a distributed load (m)
	End   float64 // end of a distributed load; equals Start for concentrated loads
	W1    float64 // magnitude, or intensity at Start
	W2    float64 // intensity at End (triangular only)
	Label string
}

// Extreme is a located peak value
type Extreme struct {
	X     float64
	Value float64
}

// BeamDiagramData holds everything needed to draw a beam and its SFD/BMD
type BeamDiagramData struct {
	Title  string
	Length float64 // m

	Supports []SupportMarker
	Loads    []LoadMarker

	// Reactions (kN)
	RA float64
	RB float64

	// Sampled diagrams
	X []float64 // m
	V []float64 // kN
	M []float64 // kN-m

	MaxV Extreme
	MaxM Extreme
}

// Plot sizes for terminal output
const (
	asciiWidth  = 60
	asciiHeight = 12
)

// DrawBeamSchematic creates an ASCII elevation of the beam with loads above
// and supports below
func DrawBeamSchematic(data BeamDiagramData) string {
	var sb strings.Builder
	width := asciiWidth

	col := func(x float64) int {
		if data.Length <= 0 {
			return 0
		}
		c := int(math.Round(x / data.Length * float64(width-1)))
		return min(max(c, 0), width-1)
	}

	loadRow := []rune(strings.Repeat(" ", width))
	for _, l := range data.Loads {
		switch l.Kind {
		case "point":
			loadRow[col(l.Start)] = '↓'
		case "moment":
			if l.W1 >= 0 {
				loadRow[col(l.Start)] = '↻'
			} else {
				loadRow[col(l.Start)] = '↺'
			}
		default:
			for c := col(l.Start); c <= col(l.End); c++ {
				if loadRow[c] == ' ' {
					loadRow[c] = '▾'
				}
			}
		}
	}

	supportRow := []rune(strings.Repeat(" ", width))
	for _, s := range data.Supports {
		switch s.Type {
		case "Fixed":
			supportRow[col(s.X)] = '█'
		case "Roller":
			supportRow[col(s.X)] = '●'
		default:
			supportRow[col(s.X)] = '▲'
		}
	}

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", utf8.RuneCountInString(data.Title))))
	}
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(loadRow), " ")))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("═", width)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.TrimRight(string(supportRow), " ")))

	scale := fmt.Sprintf("L = %.2f m", data.Length)
	pad := width - 1 - utf8.RuneCountInString(scale)
	sb.WriteString(fmt.Sprintf("  0%s%s\n", strings.Repeat(" ", max(pad, 1)), scale))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ▲ = Pinned   ● = Roller   █ = Fixed\n")
	sb.WriteString("  ↓ = Point load   ▾ = Distributed load   ↻/↺ = Moment (cw/ccw)\n")
	for i, l := range data.Loads {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, l.Label))
	}

	return sb.String()
}

// DrawShearDiagram plots V(x) with asciigraph
func DrawShearDiagram(data BeamDiagramData) string {
	caption := fmt.Sprintf("Shear Force Diagram (kN)   Max: %.2f kN at x = %.2f m", data.MaxV.Value, data.MaxV.X)
	return plotSeries(data.V, caption)
}

// DrawMomentDiagram plots M(x) with asciigraph
func DrawMomentDiagram(data BeamDiagramData) string {
	caption := fmt.Sprintf("Bending Moment Diagram (kN-m)   Max: %.2f kN-m at x = %.2f m", data.MaxM.Value, data.MaxM.X)
	return plotSeries(data.M, caption)
}

func plotSeries(series []float64, caption string) string {
	if len(series) == 0 {
		return ""
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(asciiHeight),
		asciigraph.Width(asciiWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-4-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
