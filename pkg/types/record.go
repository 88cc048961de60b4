// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the polesplit pipeline:
// the raw marker cells handed to the extractor, the fields it produces, the
// in-memory table the I/O layer loads, and the per-batch report.
package types

// RawRecord is one row's unparsed marker text. A nil RawRecord is a null or
// missing cell, which is expected for sparse columns.
type RawRecord = *string

// Text returns a RawRecord holding s.
func Text(s string) RawRecord {
	return &s
}

// Output column names appended to every processed table.
const (
	ColumnMarkerName   = "Marker_Name"
	ColumnEngineNumber = "Engine_Number"
	ColumnPoleNumber   = "Pole_Number"
)

// ExtractedColumns lists the appended columns in output order.
var ExtractedColumns = []string{ColumnMarkerName, ColumnEngineNumber, ColumnPoleNumber}

// ExtractedFields is the result of parsing one RawRecord.
//
// EngineNumber and PoleNumber are either both set or both nil. MarkerName is
// independent and may be nil even when the other two are set.
type ExtractedFields struct {
	// MarkerName is the free-form label preceding the engine number
	// (e.g. "POLE TRANSFER").
	MarkerName *string `json:"marker_name,omitempty" yaml:"marker_name,omitempty"`

	// EngineNumber is exactly seven ASCII digits.
	EngineNumber *string `json:"engine_number,omitempty" yaml:"engine_number,omitempty"`

	// PoleNumber is the alphanumeric token after the "-" delimiter
	// (e.g. "07613020", "IPID 77731", "NEW POLE").
	PoleNumber *string `json:"pole_number,omitempty" yaml:"pole_number,omitempty"`
}

// Parsed reports whether an engine number was extracted.
func (f ExtractedFields) Parsed() bool {
	return f.EngineNumber != nil
}

// Values returns the three fields in output column order, with "" for
// absent fields.
func (f ExtractedFields) Values() []string {
	return []string{deref(f.MarkerName), deref(f.EngineNumber), deref(f.PoleNumber)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
