package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/hilldiv"
	"github.com/katalvlaran/hilldiv/community"
	"github.com/katalvlaran/hilldiv/matrix"
)

// Table is a labeled grid of text cells.
type Table struct {
	RowLabels []string
	ColLabels []string
	Cells     [][]string // len(RowLabels) rows of len(ColLabels) cells
}

// ReadTable opens path and reads it by extension: .csv, .tsv/.txt or .xlsx.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f, ',')
	case ".tsv", ".txt":
		return ReadCSV(f, '\t')
	case ".xlsx":
		return ReadXLSX(f, "")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV reads a delimited table.
func ReadCSV(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1 // ragged rows are reported by fromRows
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: ReadCSV: %w", err)
	}

	return fromRows(rows)
}

// ReadXLSX reads one worksheet of a workbook; an empty sheet name selects the
// first sheet.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: ReadXLSX: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("dataset: ReadXLSX: %w", ErrEmptyTable)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: ReadXLSX: sheet %q: %w", sheet, err)
	}
	// GetRows drops trailing empty cells
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row
		}
	}

	return fromRows(rows)
}

func fromRows(rows [][]string) (*Table, error) {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, ErrEmptyTable
	}
	t := &Table{ColLabels: trimAll(rows[0][1:])}
	for i, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("dataset: row %d has %d cells, want %d: %w",
				i+2, len(row), len(rows[0]), hilldiv.ErrShapeMismatch)
		}
		t.RowLabels = append(t.RowLabels, strings.TrimSpace(row[0]))
		t.Cells = append(t.Cells, trimAll(row[1:]))
	}

	return t, nil
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}

	return out
}

// Numeric parses every cell as a float and attaches the labels. Empty or "NA"
// cells are rejected.
func (t *Table) Numeric() (*matrix.Labeled, error) {
	data := make([][]float64, len(t.Cells))
	for i, row := range t.Cells {
		data[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %q column %q: %q", ErrBadNumber, t.RowLabels[i], t.ColLabels[j], cell)
			}
			data[i][j] = v
		}
	}
	d, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, fmt.Errorf("dataset: Numeric: %w", err)
	}

	return matrix.NewLabeled(d, t.RowLabels, t.ColLabels)
}

// ReadCommunity reads a site × species table from path.
func ReadCommunity(path string) (*community.Matrix, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	lab, err := t.Numeric()
	if err != nil {
		return nil, err
	}

	return community.FromLabeled(lab)
}
