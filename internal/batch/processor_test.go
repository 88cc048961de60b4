// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/polesplit/pkg/types"
)

const rawColumn = "Raw_Marker_Data"

func quietProcessor() *Processor {
	return NewProcessor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// singleColumn builds a table with only the raw marker column.
func singleColumn(values ...string) *types.Table {
	t := &types.Table{Header: []string{rawColumn}}
	for _, v := range values {
		t.Rows = append(t.Rows, []string{v})
	}
	return t
}

func poles(r *Result) []string {
	var out []string
	for _, row := range r.Rows {
		if row.Fields.PoleNumber == nil {
			out = append(out, "")
			continue
		}
		out = append(out, *row.Fields.PoleNumber)
	}
	return out
}

func TestProcess_EndToEnd(t *testing.T) {
	table := singleColumn(
		"POLE TRANSFER 1237876 - 07613020",
		"3584096 - 10823022",
		"Plant Repair",
	)

	res, err := quietProcessor().Process(table, rawColumn, types.DefaultProcessOptions())
	require.NoError(t, err)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, 3, res.Summary.TotalRows)
	assert.Equal(t, 2, res.Summary.RowsWithEngineNumber)
	assert.Equal(t, 1, res.Summary.UnparsedRows)
	assert.Equal(t, 1, res.Summary.RowsWithMarkerName)

	first := res.Rows[0].Fields
	assert.Equal(t, "POLE TRANSFER", *first.MarkerName)
	assert.Equal(t, "1237876", *first.EngineNumber)
	assert.Equal(t, "07613020", *first.PoleNumber)
	assert.False(t, res.Rows[2].Fields.Parsed())
}

func TestProcess_Deduplicate(t *testing.T) {
	table := singleColumn(
		"POLE TRANSFER 1237876 - 07613020",
		"3584096 - 10823022",
		"UG SPAN REPLACE 2841567 - 07613020",
	)

	res, err := quietProcessor().Process(table, rawColumn, types.DefaultProcessOptions())
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, 0, res.Rows[0].Index, "first occurrence is kept")
	assert.Equal(t, "POLE TRANSFER", *res.Rows[0].Fields.MarkerName)
	assert.Equal(t, 1, res.Summary.DuplicatesRemoved)
	assert.Equal(t, 2, res.Summary.UniquePoleNumbers)
}

func TestProcess_AbsentPolesAreNotDuplicates(t *testing.T) {
	table := singleColumn("Plant Repair", "Plant Repair", "", "Storm Damage")

	res, err := quietProcessor().Process(table, rawColumn, types.DefaultProcessOptions())
	require.NoError(t, err)

	assert.Len(t, res.Rows, 4)
	assert.Equal(t, 0, res.Summary.DuplicatesRemoved)
	assert.Equal(t, 4, res.Summary.UnparsedRows)
}

func TestProcess_NoDedupe(t *testing.T) {
	table := singleColumn("1234567 - 1", "7654321 - 1")
	opts := types.DefaultProcessOptions()
	opts.DeduplicateByPole = false

	res, err := quietProcessor().Process(table, rawColumn, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, poles(res))
	assert.Equal(t, 1, res.Summary.UniquePoleNumbers)
	assert.Equal(t, 2, res.Summary.UniqueEngineNumbers)
}

func TestProcess_JobNumberFilter(t *testing.T) {
	table := singleColumn(
		"JB0001234 POLE TRANSFER 1237876 - 07613020",
		"3584096 - 10823022",
	)

	tests := []struct {
		name     string
		filter   bool
		wantRows int
		wantJobs int
	}{
		{"filter enabled", true, 1, 1},
		{"filter disabled", false, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := types.DefaultProcessOptions()
			opts.FilterJobNumbers = tt.filter

			res, err := quietProcessor().Process(table, rawColumn, opts)
			require.NoError(t, err)
			assert.Len(t, res.Rows, tt.wantRows)
			assert.Equal(t, tt.wantJobs, res.Summary.JobNumbersFiltered)
			assert.Equal(t, 2, res.Summary.InputRows)
			assert.Equal(t, tt.wantRows, res.Summary.OutputRows)
		})
	}
}

func TestProcess_MissingColumn(t *testing.T) {
	table := singleColumn("1234567 - 1")

	res, err := quietProcessor().Process(table, "Nope", types.DefaultProcessOptions())
	assert.Nil(t, res)

	var cfgErr *types.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "Nope", cfgErr.Column)
	assert.Equal(t, []string{rawColumn}, cfgErr.Available)
}

func TestProcess_EmptyColumn(t *testing.T) {
	tests := []struct {
		name  string
		table *types.Table
	}{
		{"all cells empty", singleColumn("", "")},
		{"no rows", singleColumn()},
		{"ragged rows", &types.Table{Header: []string{"Job", rawColumn}, Rows: [][]string{{"a"}, {"b"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := quietProcessor().Process(tt.table, rawColumn, types.DefaultProcessOptions())
			assert.Nil(t, res)

			var valErr *types.ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, rawColumn, valErr.Column)
		})
	}
}

func TestProcess_KeepsOtherColumns(t *testing.T) {
	table := &types.Table{
		Header: []string{"Job", rawColumn, "Crew"},
		Rows: [][]string{
			{"A-1", "POLE TRANSFER 1237876 - 07613020", "North"},
			{"A-2", "Plant Repair"},
		},
	}

	tests := []struct {
		name       string
		keep       bool
		wantHeader []string
		wantRecs   [][]string
	}{
		{
			name:       "drop raw column",
			wantHeader: []string{"Job", "Crew", "Marker_Name", "Engine_Number", "Pole_Number"},
			wantRecs: [][]string{
				{"A-1", "North", "POLE TRANSFER", "1237876", "07613020"},
				{"A-2", "", "", "", ""},
			},
		},
		{
			name:       "keep raw column",
			keep:       true,
			wantHeader: []string{"Job", rawColumn, "Crew", "Marker_Name", "Engine_Number", "Pole_Number"},
			wantRecs: [][]string{
				{"A-1", "POLE TRANSFER 1237876 - 07613020", "North", "POLE TRANSFER", "1237876", "07613020"},
				{"A-2", "Plant Repair", "", "", "", ""},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := types.DefaultProcessOptions()
			opts.KeepOriginalColumn = tt.keep

			res, err := quietProcessor().Process(table, rawColumn, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, res.Header)
			assert.Equal(t, tt.wantRecs, res.Records())
		})
	}
}

func TestProcess_ReplacesExistingExtractedColumns(t *testing.T) {
	table := &types.Table{
		Header: []string{"Job", rawColumn, "Engine_Number", "Crew", "Marker_Name", "Pole_Number"},
		Rows: [][]string{
			{"A-1", "3584096 - 10823022", "stale", "North", "old marker", "old pole"},
			{"A-2", "Plant Repair", "stale", "South", "old marker", "old pole"},
		},
	}

	res, err := quietProcessor().Process(table, rawColumn, types.DefaultProcessOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Job", "Engine_Number", "Crew", "Marker_Name", "Pole_Number"}, res.Header)
	assert.Equal(t, [][]string{
		{"A-1", "3584096", "North", "", "10823022"},
		{"A-2", "", "South", "", ""},
	}, res.Records())
}

func TestProcess_ReplacesSomeExtractedColumns(t *testing.T) {
	table := &types.Table{
		Header: []string{rawColumn, "Pole_Number"},
		Rows:   [][]string{{"POLE TRANSFER 1237876 - 07613020", "x"}},
	}
	opts := types.DefaultProcessOptions()
	opts.KeepOriginalColumn = true

	res, err := quietProcessor().Process(table, rawColumn, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{rawColumn, "Pole_Number", "Marker_Name", "Engine_Number"}, res.Header)
	assert.Equal(t, [][]string{
		{"POLE TRANSFER 1237876 - 07613020", "07613020", "POLE TRANSFER", "1237876"},
	}, res.Records())
}

func TestProcess_PreservesOrder(t *testing.T) {
	table := singleColumn("7000001 - C", "Plant Repair", "7000002 - A", "JB9 7000003 - B", "7000004 - A", "7000005 - B")

	res, err := quietProcessor().Process(table, rawColumn, types.DefaultProcessOptions())
	require.NoError(t, err)

	var idx []int
	for _, r := range res.Rows {
		idx = append(idx, r.Index)
	}
	assert.Equal(t, []int{0, 1, 2, 5}, idx)
	assert.Equal(t, []string{"C", "", "A", "B"}, poles(res))
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietProcessor().ProcessContext(ctx, singleColumn("1234567 - 1"), rawColumn, types.DefaultProcessOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	p := quietProcessor()
	var rows []OutputRow
	for _, in := range []string{
		"POLE TRANSFER 1237876 - 07613020",
		"POLE TRANSFER 1237877 - 07613021",
		"1237877 - 07613022",
		"Plant Repair",
	} {
		rows = append(rows, OutputRow{Fields: p.extractor.ExtractText(in)})
	}

	got := Summarize(rows)
	assert.Equal(t, types.ReportSummary{
		TotalRows:            4,
		RowsWithMarkerName:   2,
		RowsWithEngineNumber: 3,
		RowsWithPoleNumber:   3,
		UniqueMarkers:        1,
		UniqueEngineNumbers:  2,
		UniquePoleNumbers:    3,
		UnparsedRows:         1,
	}, got)
}
