package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// run executes the root command once. Flag values live in package
// variables, so each test runs a given subcommand at most once.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvResolution, config.EnvExact, config.EnvOutputDir, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "none.env")))
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBeamInput_Flags(t *testing.T) {
	in := beamInput{
		name:     "B-1",
		length:   6,
		supports: []string{"pinned@0", "roller@6"},
		loads:    []string{"point:10@3", "udl:2@0-6/L"},
	}
	b, err := in.build()
	require.NoError(t, err)
	assert.Equal(t, "B-1", b.Name)
	assert.Equal(t, 6.0, b.Length)
	assert.Equal(t, []beam.Support{{Type: beam.Pinned, Position: 0}, {Type: beam.Roller, Position: 6}}, b.Supports)
	assert.Equal(t, []beam.Load{
		beam.PointLoad{Magnitude: 10, Position: 3, Case: nscp.Dead},
		beam.UDL{Intensity: 2, Start: 0, End: 6, Case: nscp.Live},
	}, b.Loads)
}

func TestBeamInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "F-1", "length": 6,
		"supports": [{"type": "Pinned", "position": 0}, {"type": "Roller", "position": 6}],
		"loads": [{"type": "point", "magnitude": 10, "position": 3}]
	}`), 0o644))

	in := beamInput{file: path, length: 8, loads: []string{"udl:1@0-8"}}
	b, err := in.build()
	require.NoError(t, err)
	assert.Equal(t, "F-1", b.Name)
	assert.Equal(t, 8.0, b.Length, "--length overrides the file")
	assert.Len(t, b.Loads, 2, "flag loads are added to the file's")
}

func TestBeamInput_Errors(t *testing.T) {
	for name, in := range map[string]beamInput{
		"noLength":   {supports: []string{"pinned@0"}},
		"badSupport": {length: 6, supports: []string{"hook@0"}},
		"badLoad":    {length: 6, loads: []string{"point:ten@3"}},
		"noFile":     {file: filepath.Join(t.TempDir(), "missing.json")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := in.build()
			assert.Error(t, err)
		})
	}
}

func TestDiagramData(t *testing.T) {
	b := beam.New(6,
		[]beam.Support{{Type: beam.Pinned, Position: 0}, {Type: beam.Roller, Position: 6}},
		[]beam.Load{
			beam.PointLoad{Magnitude: 10, Position: 3},
			beam.Moment{Magnitude: 4, Position: 5, Direction: beam.Anticlockwise},
			beam.TriangularLoad{StartIntensity: 0, EndIntensity: 4, Start: 0, End: 6},
		})
	a, err := b.Analyze(beam.Options{Resolution: 13})
	require.NoError(t, err)

	data := diagramData(b, a)
	assert.Len(t, data.X, 13)
	assert.Len(t, data.V, 13)
	assert.Len(t, data.M, 13)
	assert.Equal(t, a.Reactions.RA, data.RA)
	assert.Equal(t, a.MaxAbsM.Value, data.MaxM.Value)
	assert.Equal(t, "Roller", data.Supports[1].Type)

	require.Len(t, data.Loads, 3)
	assert.Equal(t, "point", data.Loads[0].Kind)
	assert.Equal(t, 3.0, data.Loads[0].Start)
	assert.Equal(t, -4.0, data.Loads[1].W1, "anticlockwise moments are negative")
	assert.Equal(t, 4.0, data.Loads[2].W2)
}

func TestOptions_ConfigDefaults(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = config.Config{Resolution: 800, Exact: true, OutputDir: "out"}

	var f analysisFlags
	c := &cobra.Command{Use: "test"}
	f.addFlags(c)
	assert.Equal(t, beam.Options{Resolution: 800, Exact: true}, f.options(c))

	require.NoError(t, c.Flags().Set("resolution", "50"))
	require.NoError(t, c.Flags().Set("exact", "false"))
	assert.Equal(t, beam.Options{Resolution: 50}, f.options(c), "flags override the configuration")

	assert.Equal(t, filepath.Join("out", "beam.png"), outputPath("beam.png"))
	abs := filepath.Join(t.TempDir(), "beam.png")
	assert.Equal(t, abs, outputPath(abs))
}

func TestApplyCombination(t *testing.T) {
	supports := []beam.Support{{Type: beam.Pinned, Position: 0}, {Type: beam.Roller, Position: 6}}

	t.Run("Factored", func(t *testing.T) {
		b := beam.New(6, supports, []beam.Load{
			beam.PointLoad{Magnitude: 10, Position: 3, Case: nscp.Dead},
			beam.PointLoad{Magnitude: 5, Position: 2, Case: nscp.Live},
		})
		got, combo, err := applyCombination(b, "1")
		require.NoError(t, err)
		require.NotNil(t, combo)
		assert.Equal(t, "1", combo.ID)
		require.Len(t, got.Loads, 1, "the live load has no factor in 1.4D")
		p, ok := got.Loads[0].(beam.PointLoad)
		require.True(t, ok)
		assert.InDelta(t, 14, p.Magnitude, 1e-9)
		assert.Len(t, b.Loads, 2, "the input beam is left as given")
	})

	t.Run("NoCombination", func(t *testing.T) {
		b := beam.New(6, supports, []beam.Load{beam.PointLoad{Magnitude: 10, Position: 3}})
		got, combo, err := applyCombination(b, "")
		require.NoError(t, err)
		assert.Nil(t, combo)
		assert.Same(t, b, got)
	})

	t.Run("DroppedLoadStillValidated", func(t *testing.T) {
		// 1.4D gives the live load a zero factor
		b := beam.New(6, supports, []beam.Load{
			beam.PointLoad{Magnitude: 10, Position: 3, Case: nscp.Dead},
			beam.PointLoad{Magnitude: 5, Position: 99, Case: nscp.Live},
		})
		_, _, err := applyCombination(b, "1")
		require.ErrorIs(t, err, beam.ErrInvalidGeometry)
		assert.Contains(t, err.Error(), "loads[1].position")
	})

	t.Run("Unsupported", func(t *testing.T) {
		b := beam.New(6, supports[:1], []beam.Load{beam.PointLoad{Magnitude: 10, Position: 3}})
		_, _, err := applyCombination(b, "1")
		require.ErrorIs(t, err, beam.ErrUnsupportedConfiguration)

		var out bytes.Buffer
		c := &cobra.Command{Use: "test"}
		c.SetOut(&out)
		assert.True(t, unsupported(c, err))
		assert.NotEmpty(t, out.String())
	})

	t.Run("UnknownCombination", func(t *testing.T) {
		b := beam.New(6, supports, []beam.Load{beam.PointLoad{Magnitude: 10, Position: 3}})
		_, _, err := applyCombination(b, "99")
		assert.ErrorContains(t, err, "unknown load combination")
	})
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	out, err := run(t, "beam", "analyze", "-L", "6", "-s", "pinned@0", "-s", "roller@6",
		"-l", "point:10@3", "-n", "7", "--json")
	require.NoError(t, err)

	var got struct {
		Reactions beam.Reactions `json:"reactions"`
		Diagram   []beam.Station `json:"diagram"`
		MaxAbsM   beam.Extreme   `json:"maxAbsM"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 5, got.Reactions.RA, 1e-9)
	assert.InDelta(t, 5, got.Reactions.RB, 1e-9)
	assert.Len(t, got.Diagram, 7)
	assert.InDelta(t, 15, got.MaxAbsM.Value, 1e-9)
	assert.InDelta(t, 3, got.MaxAbsM.X, 1e-9)
}

func TestCombosCommand_Unsupported(t *testing.T) {
	out, err := run(t, "beam", "combos", "-L", "8", "-s", "pinned@0", "-s", "roller@4", "-s", "roller@8",
		"-l", "udl:2@0-8")
	require.NoError(t, err, "an indeterminate beam is not a failure")
	assert.Contains(t, out, "statically indeterminate")
	assert.NotContains(t, out, "GOVERNS")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range [][]any{
		{"name", "length", "supports", "loads"},
		{"B-1", 6, "pinned@0;roller@6", "point:10@3"},
		{"B-2", 8, "pinned@0;roller@4;roller@8", "udl:2@0-8"},
		{"B-3", 6, "pinned@0;roller@6", "point:10@9"},
	} {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	in := filepath.Join(dir, "beams.xlsx")
	require.NoError(t, f.SaveAs(in))
	summary := filepath.Join(dir, "summary.xlsx")

	out, err := run(t, "beam", "batch", "-f", in, "--xlsx", summary)
	require.NoError(t, err)
	assert.Contains(t, out, "Analyzed 1 of 3 beams (1 unsupported)")

	sf, err := excelize.OpenFile(summary)
	require.NoError(t, err)
	defer sf.Close()
	rows, err := sf.GetRows(report.BatchSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "ok", rows[1][len(rows[1])-1])
}
