// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package column picks the raw marker column out of a spreadsheet header.
// Detection runs an ordered list of strategies and returns the first hit.
package column

import (
	"strings"

	"github.com/pdiddy/polesplit/pkg/types"
)

// KnownNames are the exact header names tried first, in priority order.
var KnownNames = []string{
	"Raw_Marker_Data",
	"Area Section Marker / Installation plan",
	"Marker Data",
	"Marker",
	"Installation Plan",
	"Raw Data",
}

// Keywords are matched case-insensitively against each header when no exact
// name is present.
var Keywords = []string{"marker", "installation", "raw"}

// Strategy inspects a header and returns the chosen column name, if any.
type Strategy interface {
	Name() string
	Match(header []string) (string, bool)
}

// Exact picks the first candidate name present in the header. Candidates are
// tried in order, so the candidate list decides priority, not header order.
type Exact struct {
	Candidates []string
}

func (Exact) Name() string { return "exact" }

func (s Exact) Match(header []string) (string, bool) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, c := range s.Candidates {
		if present[c] {
			return c, true
		}
	}
	return "", false
}

// Keyword picks the first header, in header order, containing any keyword.
type Keyword struct {
	Keywords []string
}

func (Keyword) Name() string { return "keyword" }

func (s Keyword) Match(header []string) (string, bool) {
	for _, h := range header {
		lower := strings.ToLower(h)
		for _, k := range s.Keywords {
			if strings.Contains(lower, strings.ToLower(k)) {
				return h, true
			}
		}
	}
	return "", false
}

// Detector runs strategies in order.
type Detector struct {
	Strategies []Strategy
}

// DefaultDetector tries KnownNames, then Keywords.
func DefaultDetector() Detector {
	return Detector{Strategies: []Strategy{
		Exact{Candidates: KnownNames},
		Keyword{Keywords: Keywords},
	}}
}

// Detection is a successful detection: the column and the strategy that
// found it.
type Detection struct {
	Column   string
	Strategy string
}

// Detect returns the first strategy hit. With no hit it returns a
// *types.ConfigurationError listing the available columns.
func (d Detector) Detect(header []string) (Detection, error) {
	for _, s := range d.Strategies {
		if name, ok := s.Match(header); ok {
			return Detection{Column: name, Strategy: s.Name()}, nil
		}
	}
	return Detection{}, &types.ConfigurationError{Available: header}
}

// Detect runs the default detector.
func Detect(header []string) (Detection, error) {
	return DefaultDetector().Detect(header)
}
