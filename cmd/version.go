package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gobeam v%s\n", version.Version)
		fmt.Fprintln(out, "Shear Force and Bending Moment Diagram Tool")
		fmt.Fprintf(out, "Commit: %s  Built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
