package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Shear force and bending moment analysis of determinate beams",
	Long: `Analyze statically determinate beams on two supports.

Subcommands:
  analyze  - Reactions, SFD and BMD for one beam
  combos   - Results for every NSCP 2015 load combination
  batch    - Analyze every beam listed in an Excel workbook

Beams are read from a JSON file (-f) or described with flags:
  --length 6 --support pinned@0 --support roller@6 --load point:10@3

Load notation:
  point:10@3        10 kN at 3 m (downward positive)
  moment:5cw@2      5 kN-m clockwise at 2 m (ccw for anticlockwise)
  udl:2@0-6         2 kN/m from 0 to 6 m
  tri:0,4@0-6       0 to 4 kN/m from 0 to 6 m
  point:10@3/L      any load may end in /D, /L, /Lr, /W, /E or /R`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
