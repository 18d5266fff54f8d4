package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	combosInput beamInput
	combosFlags analysisFlags

	// Options
	useSimplified bool
)

var beamCombosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Analyze a beam under every NSCP load combination",
	Long: `Factor the beam's loads by each NSCP 2015 load combination, analyze
each factored beam and report the one producing the largest bending moment.

Every load belongs to a load case, set with a /<case> suffix in the load
notation or "case" in a JSON file. Loads without one are dead loads.

Load Cases:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Dead and live UDL on a simple span
  gobeam beam combos -L 6 -s pinned@0 -s roller@6 -l udl:5@0-6/D -l udl:3@0-6/L

  # Gravity combinations only
  gobeam beam combos -f beam.json --simplified`,
	RunE: runBeamCombos,
}

func init() {
	beamCmd.AddCommand(beamCombosCmd)

	combosInput.addFlags(beamCombosCmd)
	combosFlags.addFlags(beamCombosCmd)
	beamCombosCmd.Flags().BoolVar(&useSimplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runBeamCombos(cmd *cobra.Command, args []string) error {
	b, err := combosInput.build()
	if err != nil {
		return err
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	res, err := b.AnalyzeCombinations(combinations, combosFlags.options(cmd))
	if unsupported(cmd, err) {
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "        NSCP 2015 LOAD COMBINATIONS - BEAM ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Unfactored loads per case
	fmt.Fprintln(out, "UNFACTORED LOADS (kN):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range nscp.LoadCases {
		var total float64
		var count int
		for _, l := range b.Loads {
			if l.LoadCase() == c {
				total += beam.Resultant(l)
				count++
			}
		}
		if count > 0 {
			fmt.Fprintf(w, "  %s Load (%s):\t%d load(s)\t%.2f\n", c.Name(), c, count, total)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tRA (kN)\tRB (kN)\tmax|V| (kN)\tmax|M| (kN-m)\n")
	fmt.Fprintf(w, "  ─\t───────────\t───────\t───────\t───────────\t─────────────\n")
	for i, r := range res.Results {
		marker := ""
		if i == res.Governing {
			marker = " ← GOVERNS"
		}
		a := r.Analysis
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.2f%s\n", r.Combination.ID, r.Combination.Description,
			a.Reactions.RA, a.Reactions.RB, a.MaxAbsV.Value, a.MaxAbsM.Value, marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Print result
	gov := res.GoverningResult()
	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", gov.Combination.ID, gov.Combination.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED MOMENT (Mu) = %.2f kN-m at x = %.2f m\n", gov.Analysis.MaxAbsM.Value, gov.Analysis.MaxAbsM.X)
	fmt.Fprintf(out, "  ║  FACTORED SHEAR  (Vu) = %.2f kN at x = %.2f m\n", gov.Analysis.MaxAbsV.Value, gov.Analysis.MaxAbsV.X)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}
