package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	// cfg holds the defaults resolved from .env and the environment.
	// Command flags override it.
	cfg = config.Default()

	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Shear force and bending moment diagram tool",
	Long: `gobeam - Go Beam Analyzer

A CLI tool for the analysis of statically determinate beams.

Given a beam length, two supports and a set of loads, gobeam computes:
  - Support reactions from static equilibrium
  - Shear force diagram (SFD) and bending moment diagram (BMD)
  - Maximum absolute shear and moment with their locations
  - Factored results for NSCP 2015 load combinations

Results can be printed, plotted in the terminal, exported as images,
PDF calculation reports and Excel workbooks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		loaded, err := config.Load(files...)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
		slog.SetDefault(config.NewLogger(cfg.LogLevel))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gobeam v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Beam Analyzer: Shear and Moment Diagrams             ║")
		fmt.Fprintf(out, "  ║   Alexius S. Academia ©  %-33s║\n", version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the analysis of statically determinate beams.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Support reactions for simply supported and overhanging beams")
		fmt.Fprintln(out, "    • Point loads, moments, uniform and triangular distributed loads")
		fmt.Fprintln(out, "    • Shear force and bending moment diagrams (terminal, PNG, SVG, PDF)")
		fmt.Fprintln(out, "    • NSCP 2015 load combinations with the governing case")
		fmt.Fprintln(out, "    • PDF calculation reports, Excel export and batch input")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gobeam --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Read defaults from this .env file (default .env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log analysis steps to stderr")
}
