package importer_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/importer"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	header := []any{"name", "length", "supports", "loads"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestRead(t *testing.T) {
	f := workbook(t, [][]any{
		{"B-1", 6, "pinned@0; roller@6", "point:10@3;udl:2@0-6/L"},
		{"B-2", 4, "pinned@0;roller@4"},
		{},
		{"C-1", 8, "pinned@0;roller@6;roller@8", "udl:3@0-8"},
		{"bad", "six", "pinned@0;roller@6"},
		{"", 5, "pinned@0;roller@5", "crane:10@2"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	entries, err := importer.Read(buf)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	b1 := entries[0]
	require.NoError(t, b1.Err)
	assert.Equal(t, 2, b1.Row)
	assert.Equal(t, "B-1", b1.Name())
	assert.Equal(t, 6.0, b1.Beam.Length)
	assert.Equal(t, []beam.Support{{Type: beam.Pinned, Position: 0}, {Type: beam.Roller, Position: 6}}, b1.Beam.Supports)
	assert.Equal(t, []beam.Load{
		beam.PointLoad{Magnitude: 10, Position: 3, Case: nscp.Dead},
		beam.UDL{Intensity: 2, Start: 0, End: 6, Case: nscp.Live},
	}, b1.Beam.Loads)

	b2 := entries[1]
	require.NoError(t, b2.Err)
	assert.Empty(t, b2.Beam.Loads)

	// Parsed, but rejected later by the analysis
	c1 := entries[2]
	require.NoError(t, c1.Err)
	assert.Equal(t, 5, c1.Row, "blank rows keep the row numbering")
	assert.Len(t, c1.Beam.Supports, 3)

	assert.ErrorContains(t, entries[3].Err, "row 6")
	assert.ErrorContains(t, entries[3].Err, "invalid length")
	assert.Nil(t, entries[3].Beam)
	assert.Equal(t, "Row 6", entries[3].Name())

	assert.ErrorContains(t, entries[4].Err, "row 7")
}

func TestReadFile(t *testing.T) {
	f := workbook(t, [][]any{{"B-1", 6, "pinned@0;roller@6", "point:10@3"}})
	path := filepath.Join(t.TempDir(), "beams.xlsx")
	require.NoError(t, f.SaveAs(path))

	entries, err := importer.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	a, err := entries[0].Beam.Analyze(beam.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 5, a.Reactions.RA, 1e-9)
}

func TestRead_Errors(t *testing.T) {
	f := workbook(t, nil)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	_, err = importer.Read(buf)
	assert.ErrorIs(t, err, importer.ErrEmptySheet)

	_, err = importer.Read(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)

	_, err = importer.ReadFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.True(t, err != nil && strings.Contains(err.Error(), "missing.xlsx"))
}
