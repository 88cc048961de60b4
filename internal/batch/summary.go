// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import "github.com/pdiddy/polesplit/pkg/types"

// Summarize computes per-field presence and distinct counts over rows.
// File names and filter counts are left for the caller.
func Summarize(rows []OutputRow) types.ReportSummary {
	markers := map[string]struct{}{}
	engines := map[string]struct{}{}
	poles := map[string]struct{}{}

	s := types.ReportSummary{TotalRows: len(rows)}
	for _, r := range rows {
		if v := r.Fields.MarkerName; v != nil {
			s.RowsWithMarkerName++
			markers[*v] = struct{}{}
		}
		if v := r.Fields.EngineNumber; v != nil {
			s.RowsWithEngineNumber++
			engines[*v] = struct{}{}
		}
		if v := r.Fields.PoleNumber; v != nil {
			s.RowsWithPoleNumber++
			poles[*v] = struct{}{}
		}
	}
	s.UniqueMarkers = len(markers)
	s.UniqueEngineNumbers = len(engines)
	s.UniquePoleNumbers = len(poles)
	s.UnparsedRows = s.TotalRows - s.RowsWithEngineNumber
	return s
}
