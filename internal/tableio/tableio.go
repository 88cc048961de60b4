// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tableio loads work-order tables from CSV and Excel files and
// writes processed tables back as CSV, Excel or SQLite.
package tableio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/polesplit/pkg/types"
)

// Format identifies a table file format by extension.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatExcel  Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// DefaultSheet is the sheet name used for Excel output.
const DefaultSheet = "Processed Data"

// ErrEmptyInput is returned when an input file has no header row.
var ErrEmptyInput = errors.New("input file is empty")

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatExcel, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported file format: %q", ext)
	}
}

// Read loads the table at path. sheet selects an Excel sheet and is ignored
// for CSV; an empty sheet means the first one.
func Read(path, sheet string) (*types.Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return ReadCSV(path)
	case FormatExcel:
		return ReadExcel(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// WriteOptions controls output styling.
type WriteOptions struct {
	// Sheet is the Excel sheet name (default "Processed Data").
	Sheet string

	// Highlight lists header names whose data cells are filled yellow.
	// When non-empty, Excel output also gets a styled header row, cell
	// borders, fitted column widths and a frozen header.
	Highlight []string
}

// Write stores header and records at path in the format its extension names.
func Write(path string, header []string, records [][]string, opts WriteOptions) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatCSV:
		return WriteCSV(path, header, records)
	case FormatExcel:
		return WriteExcel(path, header, records, opts)
	case FormatSQLite:
		return WriteSQLite(path, header, records)
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

// HighlightedOutputPath returns path unchanged when it names an Excel file,
// and otherwise the same path with an .xlsx extension. Highlighting needs
// Excel output.
func HighlightedOutputPath(path string) (string, bool) {
	if f, err := FormatOf(path); err == nil && f == FormatExcel {
		return path, false
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx", true
}
