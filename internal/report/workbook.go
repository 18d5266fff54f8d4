package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the workbook exports
const (
	SummarySheet = "Summary"
	DiagramSheet = "Diagram"
	BatchSheet   = "Batch"
)

// WriteWorkbook exports a run as an .xlsx workbook with a Summary sheet
// (inputs, reactions, extrema) and a Diagram sheet holding every station.
func WriteWorkbook(w io.Writer, r *Report) error {
	if r.Beam == nil || r.Analysis == nil {
		return fmt.Errorf("report %s has no analysis", r.ID)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rx := r.Analysis.Reactions
	rows := [][]any{
		{"Beam", r.Title},
		{"Run ID", r.ID.String()},
		{"Date", r.Created.Format("2006-01-02 15:04")},
		{"Analysis mode", r.Mode()},
	}
	if r.Combination != "" {
		rows = append(rows, []any{"Load combination", r.Combination})
	}
	rows = append(rows,
		[]any{},
		[]any{"Length (m)", r.Beam.Length},
	)
	for i, s := range r.Beam.Supports {
		rows = append(rows, []any{fmt.Sprintf("Support %d", i+1), string(s.Type), s.Position})
	}
	for i, l := range r.Beam.Loads {
		rows = append(rows, []any{fmt.Sprintf("Load %d", i+1), beam.Notation(l), l.LoadCase().Name()})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "Value", "x (m)"},
		[]any{"RA (kN)", rx.RA, rx.A},
		[]any{"RB (kN)", rx.RB, rx.B},
		[]any{"Max |V| (kN)", r.Analysis.MaxAbsV.Value, r.Analysis.MaxAbsV.X},
		[]any{"Max |M| (kN-m)", r.Analysis.MaxAbsM.Value, r.Analysis.MaxAbsM.X},
	)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
		if len(row) > 0 {
			if err := f.SetCellStyle(SummarySheet, cell, cell, bold); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "C", 18); err != nil {
		return err
	}

	if _, err := f.NewSheet(DiagramSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(DiagramSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []any{"x (m)", "V (kN)", "M (kN-m)"}); err != nil {
		return err
	}
	for i, s := range r.Analysis.Stations {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []any{s.X, s.V, s.M}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.Write(w)
}

// BatchRow is one beam of a batch run. Err is set when the beam could not
// be analyzed; Analysis is nil then.
type BatchRow struct {
	Name     string
	Length   float64
	Analysis *beam.Analysis
	Err      error
}

// Status is "ok" for analyzed rows and the error text otherwise
func (r BatchRow) Status() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return "ok"
}

// WriteBatchSummary exports one line per beam with its reactions and extrema
func WriteBatchSummary(w io.Writer, rows []BatchRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BatchSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(BatchSheet)
	if err != nil {
		return err
	}
	header := []any{"Name", "Length (m)", "RA (kN)", "RB (kN)", "Max |V| (kN)", "x (m)", "Max |M| (kN-m)", "x (m)", "Status"}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, r := range rows {
		values := []any{r.Name, r.Length}
		if a := r.Analysis; a != nil {
			values = append(values, a.Reactions.RA, a.Reactions.RB,
				a.MaxAbsV.Value, a.MaxAbsV.X, a.MaxAbsM.Value, a.MaxAbsM.X)
		} else {
			values = append(values, "", "", "", "", "", "")
		}
		values = append(values, r.Status())

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}
