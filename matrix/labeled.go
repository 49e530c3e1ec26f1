// SPDX-License-Identifier: MIT

// Package matrix - Labeled: a Dense with explicit row/column label lists.
//
// Purpose:
//   - Replace implicit positional alignment between datasets (community,
//     traits, phylogeny) with an explicit label→index mapping.
//   - Fail fast with ErrUnknownLabel on any unresolved label instead of
//     silently reindexing.
//
// Complexity quicksheet:
//   - NewLabeled: O(r + c) index build; RowIndex/ColIndex: O(1);
//     Align*: O(k) for k labels; Select: O(r'*c').

package matrix

import "fmt"

const (
	ctxLabeled = "Labeled"
	ctxAlign   = "Align"
	ctxSelect  = "Select"
)

// Labeled couples a *Dense with ordered row and column labels.
// The embedded Dense carries the numbers; labels are immutable after construction.
type Labeled struct {
	*Dense
	rows     []Label
	cols     []Label
	rowIndex map[Label]int
	colIndex map[Label]int
}

// NewLabeled attaches labels to d.
//
// Errors:
//   - ErrNilMatrix for a nil d.
//   - ErrDimensionMismatch when len(rows) != d.Rows() or len(cols) != d.Cols().
//   - ErrEmptyLabel / ErrDuplicateLabel on invalid label lists.
//
// Complexity: O(r + c).
func NewLabeled(d *Dense, rows, cols []Label) (*Labeled, error) {
	if d == nil {
		return nil, matrixErrorf(ctxLabeled, ErrNilMatrix)
	}
	if len(rows) != d.r {
		return nil, fmt.Errorf("%s: %d row labels for %d rows: %w", ctxLabeled, len(rows), d.r, ErrDimensionMismatch)
	}
	if len(cols) != d.c {
		return nil, fmt.Errorf("%s: %d column labels for %d columns: %w", ctxLabeled, len(cols), d.c, ErrDimensionMismatch)
	}
	rowIndex, err := indexLabels(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: rows: %w", ctxLabeled, err)
	}
	colIndex, err := indexLabels(cols)
	if err != nil {
		return nil, fmt.Errorf("%s: cols: %w", ctxLabeled, err)
	}

	return &Labeled{
		Dense:    d,
		rows:     append([]Label(nil), rows...),
		cols:     append([]Label(nil), cols...),
		rowIndex: rowIndex,
		colIndex: colIndex,
	}, nil
}

// indexLabels builds label→position, rejecting empty and duplicate labels.
func indexLabels(labels []Label) (map[Label]int, error) {
	idx := make(map[Label]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptyLabel)
		}
		if prev, ok := idx[l]; ok {
			return nil, fmt.Errorf("%q at %d and %d: %w", l, prev, i, ErrDuplicateLabel)
		}
		idx[l] = i
	}

	return idx, nil
}

// RowLabels returns a copy of the row labels in order.
func (l *Labeled) RowLabels() []Label { return append([]Label(nil), l.rows...) }

// ColLabels returns a copy of the column labels in order.
func (l *Labeled) ColLabels() []Label { return append([]Label(nil), l.cols...) }

// RowLabel returns the label of row i ("" when out of range).
func (l *Labeled) RowLabel(i int) Label {
	if i < 0 || i >= len(l.rows) {
		return ""
	}

	return l.rows[i]
}

// RowIndex resolves a row label.
func (l *Labeled) RowIndex(label Label) (int, bool) {
	i, ok := l.rowIndex[label]
	return i, ok
}

// ColIndex resolves a column label.
func (l *Labeled) ColIndex(label Label) (int, bool) {
	j, ok := l.colIndex[label]
	return j, ok
}

// AlignRows maps every label to its row position, in the order given.
// Errors: ErrUnknownLabel naming the first unresolved label.
func (l *Labeled) AlignRows(labels []Label) ([]int, error) {
	return align(labels, l.rowIndex, "row")
}

// AlignCols maps every label to its column position, in the order given.
// Errors: ErrUnknownLabel naming the first unresolved label.
func (l *Labeled) AlignCols(labels []Label) ([]int, error) {
	return align(labels, l.colIndex, "column")
}

func align(labels []Label, index map[Label]int, axis string) ([]int, error) {
	out := make([]int, len(labels))
	for k, lab := range labels {
		i, ok := index[lab]
		if !ok {
			return nil, fmt.Errorf("%s: %s %q: %w", ctxAlign, axis, lab, ErrUnknownLabel)
		}
		out[k] = i
	}

	return out, nil
}

// Select copies the submatrix at the given row and column positions.
// Duplicate positions are allowed (a self-pair selects the same site twice);
// the label index then resolves to the first occurrence.
//
// Errors: ErrInvalidDimensions for empty selections, ErrOutOfRange for bad positions.
func (l *Labeled) Select(rows, cols []int) (*Labeled, error) {
	d, err := l.Dense.Induced(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxSelect, err)
	}
	out := &Labeled{
		Dense:    d,
		rows:     make([]Label, len(rows)),
		cols:     make([]Label, len(cols)),
		rowIndex: make(map[Label]int, len(rows)),
		colIndex: make(map[Label]int, len(cols)),
	}
	for k, i := range rows {
		out.rows[k] = l.rows[i]
		if _, seen := out.rowIndex[l.rows[i]]; !seen {
			out.rowIndex[l.rows[i]] = k
		}
	}
	for k, j := range cols {
		out.cols[k] = l.cols[j]
		if _, seen := out.colIndex[l.cols[j]]; !seen {
			out.colIndex[l.cols[j]] = k
		}
	}

	return out, nil
}

// SelectSymmetric resolves labels against both axes of a square matrix and
// returns the |labels|×|labels| submatrix in the order given. Used to carve a
// species-by-species distance matrix down to a community's species.
func (l *Labeled) SelectSymmetric(labels []Label) (*Labeled, error) {
	rows, err := l.AlignRows(labels)
	if err != nil {
		return nil, matrixErrorf(ctxSelect, err)
	}
	cols, err := l.AlignCols(labels)
	if err != nil {
		return nil, matrixErrorf(ctxSelect, err)
	}

	return l.Select(rows, cols)
}
