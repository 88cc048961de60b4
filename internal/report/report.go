// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints and exports the per-batch summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/polesplit/pkg/types"
)

const rule = "================================================================================"

// Print writes the human-readable summary block to w.
func Print(w io.Writer, s types.ReportSummary) {
	fmt.Fprintf(w, "\n%s\nPROCESSING COMPLETE\n%s\n", rule, rule)
	if s.InputFile != "" || s.OutputFile != "" {
		fmt.Fprintf(w, "\nInput File:  %s\n", s.InputFile)
		fmt.Fprintf(w, "Output File: %s\n", s.OutputFile)
	}
	fmt.Fprintf(w, "\nRows Processed: %d -> %d\n", s.InputRows, s.OutputRows)
	fmt.Fprintf(w, "Rows Filtered: %d (job numbers: %d, duplicates: %d)\n",
		s.Filtered(), s.JobNumbersFiltered, s.DuplicatesRemoved)
	fmt.Fprintln(w, "\nSuccessfully Parsed:")
	fmt.Fprintf(w, "  - Rows with Engine Number: %d\n", s.RowsWithEngineNumber)
	fmt.Fprintf(w, "  - Rows with Marker Name:   %d\n", s.RowsWithMarkerName)
	fmt.Fprintf(w, "  - Rows with Pole Number:   %d\n", s.RowsWithPoleNumber)
	fmt.Fprintln(w, "\nUnique Values:")
	fmt.Fprintf(w, "  - Unique Markers:        %d\n", s.UniqueMarkers)
	fmt.Fprintf(w, "  - Unique Engine Numbers: %d\n", s.UniqueEngineNumbers)
	fmt.Fprintf(w, "  - Unique Pole Numbers:   %d\n", s.UniquePoleNumbers)
	fmt.Fprintf(w, "\nUnparsed Rows: %d\n", s.UnparsedRows)
	if s.RunID != "" {
		fmt.Fprintf(w, "Run ID: %s\n", s.RunID)
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

// Write stores s at path as YAML (.yaml, .yml) or JSON (.json).
func Write(path string, s types.ReportSummary) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return WriteYAML(path, s)
	case ".json":
		return WriteJSON(path, s)
	default:
		return fmt.Errorf("unsupported report format %q: use .yaml or .json", ext)
	}
}

// WriteYAML writes s to path as YAML.
func WriteYAML(path string, s types.ReportSummary) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes s to path as indented JSON.
func WriteJSON(path string, s types.ReportSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
