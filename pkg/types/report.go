// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReportSummary holds aggregate counts over one processed batch. The counts
// describe the final row set, after job-number filtering and deduplication.
type ReportSummary struct {
	// RunID identifies the processing run.
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`

	// InputFile and OutputFile are set by the CLI layer.
	InputFile  string `json:"input_file,omitempty" yaml:"input_file,omitempty"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`

	// InputRows is the number of data rows before any filtering.
	InputRows int `json:"input_rows" yaml:"input_rows"`

	// OutputRows is the number of rows written.
	OutputRows int `json:"output_rows" yaml:"output_rows"`

	TotalRows            int `json:"total_rows" yaml:"total_rows"`
	RowsWithMarkerName   int `json:"rows_with_marker_name" yaml:"rows_with_marker_name"`
	RowsWithEngineNumber int `json:"rows_with_engine_number" yaml:"rows_with_engine_number"`
	RowsWithPoleNumber   int `json:"rows_with_pole_number" yaml:"rows_with_pole_number"`
	UniqueMarkers        int `json:"unique_markers" yaml:"unique_markers"`
	UniqueEngineNumbers  int `json:"unique_engine_numbers" yaml:"unique_engine_numbers"`
	UniquePoleNumbers    int `json:"unique_pole_numbers" yaml:"unique_pole_numbers"`

	// JobNumbersFiltered counts rows dropped by the "JB<digits>" filter.
	JobNumbersFiltered int `json:"job_numbers_filtered" yaml:"job_numbers_filtered"`

	// DuplicatesRemoved counts rows dropped by pole-number deduplication.
	DuplicatesRemoved int `json:"duplicates_removed" yaml:"duplicates_removed"`

	// UnparsedRows is TotalRows minus RowsWithEngineNumber.
	UnparsedRows int `json:"unparsed_rows" yaml:"unparsed_rows"`
}

// Filtered returns how many input rows did not reach the output.
func (s ReportSummary) Filtered() int {
	return s.InputRows - s.OutputRows
}

// HasUnparsed reports whether any output row lacks an engine number.
func (s ReportSummary) HasUnparsed() bool {
	return s.UnparsedRows > 0
}
