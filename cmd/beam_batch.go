package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/importer"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchFile  string
	batchXLSX  string
	batchFlags analysisFlags
)

var beamBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every beam listed in an Excel workbook",
	Long: `Read beams from the first sheet of an .xlsx workbook and analyze each.

The sheet starts with a header row followed by one beam per row:

  name | length | supports          | loads
  B-1  | 6      | pinned@0;roller@6 | point:10@3;udl:2@0-6/L

Supports and loads use the same notation as 'gobeam beam analyze',
separated by semicolons. Rows that cannot be parsed or analyzed are
listed with their error; the others are still analyzed.

Examples:
  gobeam beam batch -f beams.xlsx
  gobeam beam batch -f beams.xlsx --xlsx results.xlsx`,
	RunE: runBeamBatch,
}

func init() {
	beamCmd.AddCommand(beamBatchCmd)

	beamBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Workbook listing the beams [required]")
	beamBatchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Export the summary to an Excel workbook")
	batchFlags.addFlags(beamBatchCmd)

	beamBatchCmd.MarkFlagRequired("file")
}

func runBeamBatch(cmd *cobra.Command, args []string) error {
	entries, err := importer.ReadFile(batchFile)
	if err != nil {
		return err
	}

	rows := analyzeBatch(entries, batchFlags.options(cmd))
	out := cmd.OutOrStdout()
	printBatch(out, rows)

	if batchXLSX != "" {
		path := outputPath(batchXLSX)
		if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
			path += ".xlsx"
		}
		if err := writeFile(path, func(w io.Writer) error { return report.WriteBatchSummary(w, rows) }); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Summary saved to: %s\n\n", path)
	}
	return nil
}

// analyzeBatch analyzes every parsed entry. Failures stay in the row so the
// summary lists them next to the results.
func analyzeBatch(entries []importer.Entry, opts beam.Options) []report.BatchRow {
	rows := make([]report.BatchRow, 0, len(entries))
	for _, e := range entries {
		row := report.BatchRow{Name: e.Name(), Err: e.Err}
		if e.Beam != nil {
			row.Length = e.Beam.Length
		}
		if e.Err == nil {
			row.Analysis, row.Err = e.Beam.Analyze(opts)
		}
		if row.Err != nil {
			slog.Warn("beam skipped", "row", e.Row, "name", row.Name, "error", row.Err)
		}
		rows = append(rows, row)
	}
	return rows
}

func printBatch(out io.Writer, rows []report.BatchRow) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "               BATCH BEAM ANALYSIS SUMMARY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam\tL (m)\tRA (kN)\tRB (kN)\tmax|V| (kN)\tmax|M| (kN-m)\tStatus\n")
	fmt.Fprintf(w, "  ────\t─────\t───────\t───────\t───────────\t─────────────\t──────\n")

	var analyzed, skipped int
	for _, r := range rows {
		if a := r.Analysis; a != nil {
			analyzed++
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t✓\n", r.Name, r.Length,
				a.Reactions.RA, a.Reactions.RB, a.MaxAbsV.Value, a.MaxAbsM.Value)
			continue
		}
		status := "✗ " + r.Status()
		if errors.Is(r.Err, beam.ErrUnsupportedConfiguration) {
			skipped++
			status = "ℹ " + r.Status()
		}
		fmt.Fprintf(w, "  %s\t%.2f\t-\t-\t-\t-\t%s\n", r.Name, r.Length, status)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  Analyzed %d of %d beams", analyzed, len(rows))
	if skipped > 0 {
		fmt.Fprintf(out, " (%d unsupported)", skipped)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)
}
