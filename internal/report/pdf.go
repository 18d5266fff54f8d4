// Package report writes beam analysis results to PDF calculation sheets and
// Excel workbooks.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

// tableRows is the number of diagram stations printed in the station table
const tableRows = 41

// Report is one analysis run ready to be written out
type Report struct {
	ID          uuid.UUID
	Title       string
	Created     time.Time
	Combination string // description of the load combination, if factored
	Beam        *beam.Beam
	Analysis    *beam.Analysis
	Exact       bool

	// ImagePath is an optional png/jpg diagram embedded after the results
	ImagePath string
}

// New tags an analysis with a fresh run ID
func New(b *beam.Beam, a *beam.Analysis, exact bool) *Report {
	title := b.Name
	if title == "" {
		title = "Beam"
	}
	return &Report{
		ID:       uuid.New(),
		Title:    title,
		Created:  time.Now(),
		Beam:     b,
		Analysis: a,
		Exact:    exact,
	}
}

// Mode names the analysis mode the run used
func (r *Report) Mode() string {
	if r.Exact {
		return "exact"
	}
	return "compatible"
}

// WritePDF renders the calculation sheet: inputs, reactions, extrema, the
// optional diagram image and a station table.
func WritePDF(w io.Writer, r *Report) error {
	if r.Beam == nil || r.Analysis == nil {
		return fmt.Errorf("report %s has no analysis", r.ID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, false)
	pdf.SetSubject("Shear force and bending moment analysis", false)
	pdf.SetCreator("gobeam", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Run %s  |  Page %d", r.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Beam Analysis: %s", r.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	if r.Beam.Description != "" {
		pdf.MultiCell(0, 5, r.Beam.Description, "", "L", false)
		pdf.Ln(2)
	}
	keyValues(pdf, [][2]string{
		{"Date", r.Created.Format("2006-01-02 15:04")},
		{"Run ID", r.ID.String()},
		{"Analysis mode", r.Mode()},
		{"Stations", fmt.Sprintf("%d", len(r.Analysis.Stations))},
	})
	if r.Combination != "" {
		keyValues(pdf, [][2]string{{"Load combination", r.Combination}})
	}

	heading(pdf, "Input")
	keyValues(pdf, [][2]string{{"Length L", fmt.Sprintf("%.3f m", r.Beam.Length)}})
	for i, s := range r.Beam.Supports {
		keyValues(pdf, [][2]string{{fmt.Sprintf("Support %d", i+1), fmt.Sprintf("%s at %.3f m", s.Type, s.Position)}})
	}
	if len(r.Beam.Loads) == 0 {
		keyValues(pdf, [][2]string{{"Loads", "none"}})
	}
	for i, l := range r.Beam.Loads {
		keyValues(pdf, [][2]string{{fmt.Sprintf("Load %d", i+1), fmt.Sprintf("%s  (%s)", Describe(l), l.LoadCase().Name())}})
	}
	keyValues(pdf, [][2]string{{"Total vertical load", fmt.Sprintf("%.3f kN", beam.TotalLoad(r.Beam.Loads))}})

	rx := r.Analysis.Reactions
	heading(pdf, "Reactions")
	keyValues(pdf, [][2]string{
		{fmt.Sprintf("RA (x = %.3f m)", rx.A), fmt.Sprintf("%.3f kN", rx.RA)},
		{fmt.Sprintf("RB (x = %.3f m)", rx.B), fmt.Sprintf("%.3f kN", rx.RB)},
	})

	heading(pdf, "Extreme values")
	keyValues(pdf, [][2]string{
		{"Max |V|", fmt.Sprintf("%.3f kN at x = %.3f m", r.Analysis.MaxAbsV.Value, r.Analysis.MaxAbsV.X)},
		{"Max |M|", fmt.Sprintf("%.3f kN-m at x = %.3f m", r.Analysis.MaxAbsM.Value, r.Analysis.MaxAbsM.X)},
	})

	if embeddable(r.ImagePath) {
		pdf.AddPage()
		heading(pdf, "Diagrams")
		pdf.ImageOptions(r.ImagePath, 15, pdf.GetY()+2, 180, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.AddPage()
	heading(pdf, "Stations")
	stationTable(pdf, r.Analysis.Stations)

	return pdf.Output(w)
}

// Describe formats a load for printed reports. Unlike Load.String it sticks
// to characters the core PDF fonts can render.
func Describe(l beam.Load) string {
	switch ld := l.(type) {
	case beam.PointLoad:
		return fmt.Sprintf("Point load %.3f kN at %.3f m", ld.Magnitude, ld.Position)
	case beam.Moment:
		return fmt.Sprintf("Moment %.3f kN-m %s at %.3f m", ld.Magnitude, ld.Direction, ld.Position)
	case beam.UDL:
		return fmt.Sprintf("UDL %.3f kN/m from %.3f to %.3f m", ld.Intensity, ld.Start, ld.End)
	case beam.TriangularLoad:
		return fmt.Sprintf("Triangular %.3f to %.3f kN/m from %.3f to %.3f m",
			ld.StartIntensity, ld.EndIntensity, ld.Start, ld.End)
	}
	return beam.Notation(l)
}

func heading(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
}

func keyValues(pdf *gofpdf.Fpdf, rows [][2]string) {
	for _, kv := range rows {
		pdf.CellFormat(55, 6, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, kv[1], "", 1, "L", false, 0, "")
	}
}

// stationTable prints about tableRows evenly spaced stations, always
// including the first and the last
func stationTable(pdf *gofpdf.Fpdf, stations []beam.Station) {
	widths := []float64{20, 40, 40, 40}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"#", "x (m)", "V (kN)", "M (kN-m)"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, i := range tableIndices(len(stations), tableRows) {
		s := stations[i]
		pdf.CellFormat(widths[0], 5.5, fmt.Sprintf("%d", i), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[1], 5.5, fmt.Sprintf("%.4f", s.X), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 5.5, fmt.Sprintf("%.4f", s.V), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5.5, fmt.Sprintf("%.4f", s.M), "1", 1, "R", false, 0, "")
	}
}

// tableIndices picks at most rows indices out of n, evenly spaced, keeping
// the first and last
func tableIndices(n, rows int) []int {
	if n <= rows {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, rows)
	for i := range idx {
		idx[i] = i * (n - 1) / (rows - 1)
	}
	return idx
}

func embeddable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
