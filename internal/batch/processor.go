// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch applies the marker extractor across a table: it filters job
// numbers, extracts the three fields for every row, deduplicates by pole
// number and computes the summary report.
package batch

import (
	"context"
	"log/slog"

	"github.com/pdiddy/polesplit/internal/extract"
	"github.com/pdiddy/polesplit/pkg/types"
)

// OutputRow is one surviving input row with its extracted fields.
type OutputRow struct {
	// Index is the zero-based position of the row in the input table.
	Index int

	// Cells are the input cells in header order, padded to the header width.
	Cells []string

	// Raw is the marker cell the fields were extracted from.
	Raw types.RawRecord

	Fields types.ExtractedFields
}

// Result is the output of one batch run.
type Result struct {
	// Header is the output header: the input header (minus the raw column
	// unless it was kept) with the extracted columns. An input column that
	// already carries an extracted name is overwritten in place; the others
	// are appended.
	Header []string

	Rows    []OutputRow
	Summary types.ReportSummary

	layout []slot
}

// slot is the source of one output column: an input cell or, when cell is
// negative, the extracted field at index field.
type slot struct {
	cell  int
	field int
}

// Records renders Rows as string records aligned with Header. Absent fields
// are empty strings.
func (r *Result) Records() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		values := row.Fields.Values()
		rec := make([]string, len(r.layout))
		for c, s := range r.layout {
			if s.cell >= 0 {
				rec[c] = row.Cells[s.cell]
			} else {
				rec[c] = values[s.field]
			}
		}
		out[i] = rec
	}
	return out
}

// Processor runs batches with a shared extractor.
type Processor struct {
	extractor *extract.Extractor
	logger    *slog.Logger
}

// NewProcessor returns a Processor. A nil logger uses slog.Default().
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{extractor: extract.New(logger), logger: logger}
}

// Process runs the batch with a background context.
func (p *Processor) Process(table *types.Table, column string, opts types.ProcessOptions) (*Result, error) {
	return p.ProcessContext(context.Background(), table, column, opts)
}

// ProcessContext validates the marker column and runs the batch steps in
// order: job-number filter, extraction, deduplication, summary. Rows keep
// their input order throughout.
//
// It returns a *types.ConfigurationError when column is not in the header
// and a *types.ValidationError when the column holds no values; neither
// produces partial output. Rows that fail to parse are kept with empty
// fields. ctx is checked between rows.
func (p *Processor) ProcessContext(ctx context.Context, table *types.Table, column string, opts types.ProcessOptions) (*Result, error) {
	col, err := Validate(table, column)
	if err != nil {
		return nil, err
	}

	p.logger.Info("processing rows", "rows", table.Len(), "column", column)

	header, layout := outputLayout(table.Header, col, opts.KeepOriginalColumn)
	result := &Result{Header: header, layout: layout}

	var filtered int
	rows := make([]OutputRow, 0, table.Len())
	for i := range table.Rows {
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		raw := table.Cell(i, col)
		if opts.FilterJobNumbers && raw != nil && extract.IsJobNumber(*raw) {
			filtered++
			continue
		}
		rows = append(rows, OutputRow{
			Index:  i,
			Cells:  padCells(table.Rows[i], len(table.Header)),
			Raw:    raw,
			Fields: p.extractor.Extract(raw),
		})
	}
	if filtered > 0 {
		p.logger.Info("filtered job number rows", "count", filtered)
	}

	parsed := 0
	for _, r := range rows {
		if r.Fields.Parsed() {
			parsed++
		}
	}
	p.logger.Info("split rows", "parsed", parsed)
	if failed := len(rows) - parsed; failed > 0 {
		p.logger.Warn("rows without engine number", "count", failed)
	}

	var removed int
	if opts.DeduplicateByPole {
		rows, removed = DedupeByPole(rows)
		if removed > 0 {
			p.logger.Info("removed duplicate pole numbers", "count", removed)
		}
	}

	result.Rows = rows
	result.Summary = Summarize(rows)
	result.Summary.InputRows = table.Len()
	result.Summary.OutputRows = len(rows)
	result.Summary.JobNumbersFiltered = filtered
	result.Summary.DuplicatesRemoved = removed
	return result, nil
}

// Validate returns the index of column in table, or the structural error
// that aborts a batch.
func Validate(table *types.Table, column string) (int, error) {
	col := table.ColumnIndex(column)
	if col < 0 {
		return -1, &types.ConfigurationError{Column: column, Available: table.Header}
	}
	for i := range table.Rows {
		if table.Cell(i, col) != nil {
			return col, nil
		}
	}
	return -1, &types.ValidationError{Column: column, Rows: table.Len()}
}

// DedupeByPole keeps the first row for each pole number, in input order.
// Rows without a pole number are always kept.
func DedupeByPole(rows []OutputRow) ([]OutputRow, int) {
	seen := make(map[string]struct{}, len(rows))
	out := make([]OutputRow, 0, len(rows))
	for _, r := range rows {
		if r.Fields.PoleNumber != nil {
			if _, dup := seen[*r.Fields.PoleNumber]; dup {
				continue
			}
			seen[*r.Fields.PoleNumber] = struct{}{}
		}
		out = append(out, r)
	}
	return out, len(rows) - len(out)
}

// outputLayout maps the input header to the output header. Input columns
// named like an extracted column are replaced by it, so reprocessing an
// output file does not duplicate them. The raw column is dropped unless keep
// is set or it was itself replaced.
func outputLayout(in []string, col int, keep bool) ([]string, []slot) {
	fieldIndex := make(map[string]int, len(types.ExtractedColumns))
	for i, name := range types.ExtractedColumns {
		fieldIndex[name] = i
	}

	header := make([]string, 0, len(in)+len(types.ExtractedColumns))
	layout := make([]slot, 0, cap(header))
	placed := make([]bool, len(types.ExtractedColumns))
	for i, h := range in {
		if f, ok := fieldIndex[h]; ok {
			header = append(header, h)
			layout = append(layout, slot{cell: -1, field: f})
			placed[f] = true
			continue
		}
		if i == col && !keep {
			continue
		}
		header = append(header, h)
		layout = append(layout, slot{cell: i, field: -1})
	}
	for f, name := range types.ExtractedColumns {
		if !placed[f] {
			header = append(header, name)
			layout = append(layout, slot{cell: -1, field: f})
		}
	}
	return header, layout
}

func padCells(cells []string, width int) []string {
	out := make([]string, width)
	copy(out, cells)
	return out
}
