package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/hilldiv"
)

// Format is an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write encodes f in the given format.
func Write(w io.Writer, format Format, f Frame) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, f)
	case FormatJSON:
		return WriteJSON(w, f)
	case FormatXLSX:
		return WriteXLSX(w, f, "")
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// WriteCSV writes a header line and one line per row.
func WriteCSV(w io.Writer, f Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Header); err != nil {
		return fmt.Errorf("dataset: WriteCSV: %w", err)
	}
	for i := range f.Values {
		if err := cw.Write(record(f, i)); err != nil {
			return fmt.Errorf("dataset: WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: WriteCSV: %w", err)
	}

	return nil
}

func record(f Frame, i int) []string {
	rec := make([]string, 0, len(f.Header))
	if i < len(f.Keys) {
		rec = append(rec, f.Keys[i]...)
	}
	for _, v := range f.Values[i] {
		rec = append(rec, formatFloat(v))
	}

	return rec
}

// WriteJSON writes an array of objects keyed by header; NaN becomes null.
func WriteJSON(w io.Writer, f Frame) error {
	return encodeJSON(w, jsonRows(f))
}

func jsonRows(f Frame) []map[string]any {
	k := f.NumKeys()
	objs := make([]map[string]any, len(f.Values))
	for i, row := range f.Values {
		obj := make(map[string]any, len(f.Header))
		for c := 0; c < k; c++ {
			obj[f.Header[c]] = f.Keys[i][c]
		}
		for c, v := range row {
			if math.IsNaN(v) {
				obj[f.Header[k+c]] = nil
			} else {
				obj[f.Header[k+c]] = v
			}
		}
		objs[i] = obj
	}

	return objs
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("dataset: WriteJSON: %w", err)
	}

	return nil
}

// WriteXLSX writes f as a single-sheet workbook. An empty sheet name keeps
// the default "Sheet1".
func WriteXLSX(w io.Writer, f Frame, sheet string) error {
	return WriteSheets(w, FormatXLSX, []string{sheet}, []Frame{f})
}

// WriteSheets writes several named frames at once: one worksheet each in
// XLSX, one "name": rows member each in JSON, and "# name" separated blocks
// in CSV.
func WriteSheets(w io.Writer, format Format, names []string, frames []Frame) error {
	if len(names) != len(frames) {
		return fmt.Errorf("dataset: WriteSheets: %d names for %d frames: %w",
			len(names), len(frames), hilldiv.ErrShapeMismatch)
	}
	switch format {
	case FormatCSV:
		for i, f := range frames {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return fmt.Errorf("dataset: WriteSheets: %w", err)
				}
			}
			if _, err := fmt.Fprintf(w, "# %s\n", names[i]); err != nil {
				return fmt.Errorf("dataset: WriteSheets: %w", err)
			}
			if err := WriteCSV(w, f); err != nil {
				return err
			}
		}

		return nil
	case FormatJSON:
		obj := make(map[string]any, len(frames))
		for i, f := range frames {
			obj[names[i]] = jsonRows(f)
		}

		return encodeJSON(w, obj)
	case FormatXLSX:
		return writeWorkbook(w, names, frames)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func writeWorkbook(w io.Writer, names []string, frames []Frame) error {
	book := excelize.NewFile()
	defer book.Close()

	for i, f := range frames {
		sheet := names[i]
		switch {
		case sheet == "" && i == 0:
			sheet = "Sheet1"
		case sheet == "":
			sheet = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			if sheet != "Sheet1" {
				if err := book.SetSheetName("Sheet1", sheet); err != nil {
					return fmt.Errorf("dataset: WriteXLSX: %w", err)
				}
			}
		} else if _, err := book.NewSheet(sheet); err != nil {
			return fmt.Errorf("dataset: WriteXLSX: %w", err)
		}
		if err := writeSheet(book, sheet, f); err != nil {
			return fmt.Errorf("dataset: WriteXLSX: sheet %q: %w", sheet, err)
		}
	}
	if _, err := book.WriteTo(w); err != nil {
		return fmt.Errorf("dataset: WriteXLSX: %w", err)
	}

	return nil
}

func writeSheet(book *excelize.File, sheet string, f Frame) error {
	put := func(row int, cells []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return book.SetSheetRow(sheet, cell, &cells)
	}

	header := make([]any, len(f.Header))
	for i, h := range f.Header {
		header[i] = h
	}
	if err := put(1, header); err != nil {
		return err
	}
	for i, row := range f.Values {
		cells := make([]any, 0, len(f.Header))
		if i < len(f.Keys) {
			for _, k := range f.Keys[i] {
				cells = append(cells, k)
			}
		}
		for _, v := range row {
			if math.IsNaN(v) {
				cells = append(cells, "NA")
			} else {
				cells = append(cells, v)
			}
		}
		if err := put(i+2, cells); err != nil {
			return err
		}
	}

	return nil
}
