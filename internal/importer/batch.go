// Package importer reads beams from Excel workbooks for batch analysis.
//
// The first sheet holds one beam per row after a header row:
//
//	name | length | supports         | loads
//	B-1  | 6      | pinned@0;roller@6 | point:10@3;udl:2@0-6/L
//
// Supports and loads use the same notation as the command-line flags,
// separated by semicolons.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet is returned when the workbook has no data rows
var ErrEmptySheet = errors.New("empty sheet")

// Entry is one data row. Err is set when the row could not be parsed;
// Beam is nil then. Rows are numbered as Excel shows them.
type Entry struct {
	Row  int
	Beam *beam.Beam
	Err  error
}

// Name is the beam name, or the row number when the beam is missing
func (e Entry) Name() string {
	if e.Beam != nil && e.Beam.Name != "" {
		return e.Beam.Name
	}
	return fmt.Sprintf("Row %d", e.Row)
}

// ReadFile opens an .xlsx workbook and parses its first sheet
func ReadFile(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

// Read parses a workbook from r
func Read(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) ([]Entry, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		b, err := parseRow(row)
		if err != nil {
			err = fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, Entry{Row: i + 1, Beam: b, Err: err})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrEmptySheet)
	}
	return entries, nil
}

// parseRow reads name, length, supports and loads. Trailing empty cells are
// dropped by GetRows, so a beam without loads has only three columns.
func parseRow(row []string) (*beam.Beam, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("expected name, length and supports, got %d columns", len(row))
	}

	length, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid length %q", row[1])
	}

	var supports []beam.Support
	for _, s := range split(row[2]) {
		sup, err := beam.ParseSupport(s)
		if err != nil {
			return nil, err
		}
		supports = append(supports, sup)
	}

	var loads []beam.Load
	if len(row) > 3 {
		for _, s := range split(row[3]) {
			l, err := beam.ParseLoad(s)
			if err != nil {
				return nil, err
			}
			loads = append(loads, l)
		}
	}

	b := beam.New(length, supports, loads)
	b.Name = strings.TrimSpace(row[0])
	return b, nil
}

func split(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
