// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableio

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/polesplit/pkg/types"
)

const (
	highlightColor = "FFFF00"
	headerColor    = "4472C4"
	maxColumnWidth = 50
)

// ReadExcel reads sheet (or the first sheet) of an Excel workbook. The first
// row is the header.
func ReadExcel(path, sheet string) (*types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyInput
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return &types.Table{Header: rows[0], Rows: rows[1:]}, nil
}

// WriteExcel writes header and records to a single-sheet workbook.
func WriteExcel(path string, header []string, records [][]string, opts WriteOptions) error {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if first := f.GetSheetName(0); first != sheet {
		if err := f.SetSheetName(first, sheet); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	}

	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, rec := range records {
		if err := setRow(f, sheet, i+2, rec); err != nil {
			return err
		}
	}

	if len(opts.Highlight) > 0 {
		if err := styleSheet(f, sheet, header, records, opts.Highlight); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

// styleSheet applies the header style, thin borders, yellow fill on the
// highlighted columns, fitted widths and a frozen header row.
func styleSheet(f *excelize.File, sheet string, header []string, records [][]string, highlight []string) error {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	plainStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return fmt.Errorf("creating cell style: %w", err)
	}
	markStyle, err := f.NewStyle(&excelize.Style{
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Color: []string{highlightColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating highlight style: %w", err)
	}

	marked := make(map[string]bool, len(highlight))
	for _, h := range highlight {
		marked[h] = true
	}

	lastRow := len(records) + 1
	for c, name := range header {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, col+"1", col+"1", headerStyle); err != nil {
			return err
		}
		if lastRow > 1 {
			style := plainStyle
			if marked[name] {
				style = markStyle
			}
			if err := f.SetCellStyle(sheet, col+"2", fmt.Sprintf("%s%d", col, lastRow), style); err != nil {
				return err
			}
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth(c, header, records)); err != nil {
			return err
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// columnWidth is the longest value in column c plus 2, capped at 50.
func columnWidth(c int, header []string, records [][]string) float64 {
	longest := utf8.RuneCountInString(header[c])
	for _, rec := range records {
		if c < len(rec) {
			if n := utf8.RuneCountInString(rec[c]); n > longest {
				longest = n
			}
		}
	}
	return float64(min(longest+2, maxColumnWidth))
}
