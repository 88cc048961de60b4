// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Table is an ordered set of rows loaded from a CSV or Excel sheet. The first
// source row is the Header; Rows hold the data rows in file order. Rows may
// be ragged: a row shorter than the header has missing trailing cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the index of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at row r, column c as a RawRecord. Empty and missing
// cells are nil.
func (t *Table) Cell(r, c int) RawRecord {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= len(t.Rows[r]) {
		return nil
	}
	v := t.Rows[r][c]
	if v == "" {
		return nil
	}
	return &v
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
