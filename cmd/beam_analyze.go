package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeInput beamInput
	analyzeFlags analysisFlags

	// Output options
	analyzeJSON    bool
	analyzeDiagram bool
	analyzeImage   string
	analyzeReport  string
	analyzeXLSX    string
	analyzeCombo   string
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute reactions, shear force and bending moment diagrams",
	Long: `Compute the support reactions of a beam on two supports and sample
the shear force V(x) and bending moment M(x) along its length.

Sign convention: downward loads are positive, reactions are positive
upward, and sagging moment is positive.

Beams with one support, or with three to five supports (statically
indeterminate), are reported as unsupported and produce no results.

Examples:
  # Simply supported 6 m beam with 10 kN at midspan
  gobeam beam analyze --length 6 --support pinned@0 --support roller@6 --load point:10@3

  # Overhanging beam with a UDL, plotted in the terminal
  gobeam beam analyze -L 8 -s pinned@0 -s roller@6 -l udl:3@0-8 -l point:10@8 --diagram

  # From a JSON file, factored by 1.2D + 1.6L, with a PDF report
  gobeam beam analyze -f beam.json --combo 2 --report beam.pdf -o beam.png

  # Machine-readable output
  gobeam beam analyze -f beam.json --json`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	analyzeInput.addFlags(beamAnalyzeCmd)
	analyzeFlags.addFlags(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
	beamAnalyzeCmd.Flags().BoolVarP(&analyzeDiagram, "diagram", "d", false, "Plot the beam, SFD and BMD in the terminal")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeImage, "output", "o", "", "Export the diagrams to an image (png, svg or pdf)")
	beamAnalyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "Write a PDF calculation report")
	beamAnalyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Export the results to an Excel workbook")
	beamAnalyzeCmd.Flags().StringVarP(&analyzeCombo, "combo", "c", "", "Analyze one NSCP load combination by ID (see 'gobeam beam combos')")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	b, err := analyzeInput.build()
	if err != nil {
		return err
	}

	b, combo, err := applyCombination(b, analyzeCombo)
	if unsupported(cmd, err) {
		return nil
	}
	if err != nil {
		return err
	}

	opts := analyzeFlags.options(cmd)
	a, err := b.Analyze(opts)
	if unsupported(cmd, err) {
		return nil
	}
	if err != nil {
		slog.Debug("analysis failed", "beam", b.Name, "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a); err != nil {
			return err
		}
	} else {
		printAnalysis(out, b, a, combo, opts)
	}

	data := diagramData(b, a)
	if analyzeDiagram {
		fmt.Fprint(out, diagram.DrawBeamSchematic(data))
		fmt.Fprint(out, diagram.DrawShearDiagram(data))
		fmt.Fprint(out, diagram.DrawMomentDiagram(data))
	}

	return exportAnalysis(out, b, a, combo, opts, data)
}

// applyCombination validates b and factors it by the combination with the
// given ID, if any. Factoring drops zero-factor loads, so validation runs on
// the loads as given.
func applyCombination(b *beam.Beam, id string) (*beam.Beam, *nscp.LoadCombination, error) {
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	if id == "" {
		return b, nil, nil
	}
	c, err := nscp.FindCombination(id)
	if err != nil {
		return nil, nil, err
	}
	return b.WithCombination(c), &c, nil
}

func exportAnalysis(out io.Writer, b *beam.Beam, a *beam.Analysis, combo *nscp.LoadCombination, opts beam.Options, data diagram.BeamDiagramData) error {
	var image string
	if analyzeImage != "" {
		path, err := diagram.ExportBeamDiagrams(data, outputPath(analyzeImage))
		if err != nil {
			return fmt.Errorf("exporting diagrams: %w", err)
		}
		image = path
		fmt.Fprintf(out, "  Diagrams saved to: %s\n", path)
	}

	if analyzeReport == "" && analyzeXLSX == "" {
		return nil
	}
	rep := report.New(b, a, opts.Exact)
	if combo != nil {
		rep.Combination = fmt.Sprintf("%s: %s", combo.ID, combo.Description)
	}

	if analyzeReport != "" {
		path := outputPath(analyzeReport)
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			path += ".pdf"
		}
		// The report embeds a raster image; export one when -o gave none
		if strings.EqualFold(filepath.Ext(image), ".png") {
			rep.ImagePath = image
		} else {
			png, err := diagram.ExportBeamDiagrams(data, strings.TrimSuffix(path, filepath.Ext(path))+"-diagrams.png")
			if err != nil {
				return fmt.Errorf("exporting diagrams: %w", err)
			}
			rep.ImagePath = png
		}
		if err := writeFile(path, func(w io.Writer) error { return report.WritePDF(w, rep) }); err != nil {
			return err
		}
		slog.Info("report written", "path", path, "run", rep.ID)
		fmt.Fprintf(out, "  Report saved to: %s\n", path)
	}

	if analyzeXLSX != "" {
		path := outputPath(analyzeXLSX)
		if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
			path += ".xlsx"
		}
		if err := writeFile(path, func(w io.Writer) error { return report.WriteWorkbook(w, rep) }); err != nil {
			return err
		}
		slog.Info("workbook written", "path", path, "run", rep.ID)
		fmt.Fprintf(out, "  Workbook saved to: %s\n", path)
	}
	return nil
}

// writeFile creates path (and its directory) and hands it to write
func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func printAnalysis(out io.Writer, b *beam.Beam, a *beam.Analysis, combo *nscp.LoadCombination, opts beam.Options) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          SHEAR FORCE AND BENDING MOMENT ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if b.Name != "" {
		fmt.Fprintf(w, "  Beam:\t%s\n", b.Name)
	}
	fmt.Fprintf(w, "  Length (L):\t%.3f m\n", b.Length)
	for i, s := range b.Supports {
		fmt.Fprintf(w, "  Support %d:\t%s at %.3f m\n", i+1, s.Type, s.Position)
	}
	if combo != nil {
		fmt.Fprintf(w, "  Load combination:\t%s (%s)\n", combo.ID, combo.Description)
	}
	mode := "compatible"
	if opts.Exact {
		mode = "exact"
	}
	fmt.Fprintf(w, "  Analysis mode:\t%s, %d stations\n", mode, len(a.Stations))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOADS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if len(b.Loads) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, l := range b.Loads {
		fmt.Fprintf(w, "  %d.\t%s\t%s\n", i+1, l, beam.Notation(l))
	}
	fmt.Fprintf(w, "  Total vertical load:\t%.3f kN\n", beam.TotalLoad(b.Loads))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "REACTIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  RA (x = %.3f m):\t%.3f kN\n", a.Reactions.A, a.Reactions.RA)
	fmt.Fprintf(w, "  RB (x = %.3f m):\t%.3f kN\n", a.Reactions.B, a.Reactions.RB)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("EXTREME VALUES", []string{
		fmt.Sprintf("Max |V| = %.3f kN at x = %.3f m", a.MaxAbsV.Value, a.MaxAbsV.X),
		fmt.Sprintf("Max |M| = %.3f kN-m at x = %.3f m", a.MaxAbsM.Value, a.MaxAbsM.X),
	}))
	fmt.Fprintln(out)
}
