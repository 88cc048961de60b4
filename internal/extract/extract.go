// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract splits one raw marker value into Marker Name, Engine Number
// and Pole Number.
//
// The grammar is an ordered pair of rules tried in turn:
//
//	labeled    <marker> <7 digits> - <pole>
//	unlabeled  <7 digits> - <pole>
//
// The first rule that matches wins. The marker is matched non-greedily, so
// the first 7-digit run that is followed by the "-" delimiter and a valid
// pole token becomes the engine number, even when the marker itself contains
// digits or hyphens. Text that matches neither rule yields no fields.
package extract

import (
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/pdiddy/polesplit/pkg/types"
)

// EngineDigits is the exact width of an engine number.
const EngineDigits = 7

// space is the whitespace class of the grammar. RE2's \s is ASCII only; this
// adds the Unicode spaces strings.TrimSpace strips, such as the NBSP Excel
// cells often carry.
const space = `\s\v\x{85}\p{Z}`

var (
	labeledPattern   = regexp.MustCompile(`^(.*?)[` + space + `]*(\d{7})[` + space + `]*-[` + space + `]*([0-9a-zA-Z` + space + `-]+)$`)
	unlabeledPattern = regexp.MustCompile(`^(\d{7})[` + space + `]*-[` + space + `]*([0-9a-zA-Z` + space + `-]+)$`)
	jobNumberPattern = regexp.MustCompile(`JB\d+`)
)

// rule is one stage of the matcher. Group indexes of 0 mean the rule has no
// such group.
type rule struct {
	name   string
	re     *regexp.Regexp
	marker int
	engine int
	pole   int
}

// match applies the rule to trimmed text.
func (r rule) match(text string) (types.ExtractedFields, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return types.ExtractedFields{}, false
	}
	var f types.ExtractedFields
	if r.marker > 0 {
		f.MarkerName = nonEmpty(m[r.marker])
	}
	engine := m[r.engine]
	f.EngineNumber = &engine
	f.PoleNumber = nonEmpty(m[r.pole])
	if f.PoleNumber == nil {
		return types.ExtractedFields{}, false
	}
	return f, true
}

// rules is the grammar in priority order.
var rules = []rule{
	{name: "labeled", re: labeledPattern, marker: 1, engine: 2, pole: 3},
	{name: "unlabeled", re: unlabeledPattern, engine: 1, pole: 2},
}

// IsJobNumber reports whether text contains "JB" followed by one or more
// digits. Rows matching it are filtered out before extraction.
func IsJobNumber(text string) bool {
	return jobNumberPattern.MatchString(text)
}

// Extractor parses raw marker values. It is safe for concurrent use.
type Extractor struct {
	logger   *slog.Logger
	unparsed atomic.Int64
}

// New returns an Extractor that logs unparsed values to logger. A nil logger
// uses slog.Default().
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Rules returns the rule names in the order they are tried.
func (e *Extractor) Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// Extract parses raw. A nil record yields no fields and is not counted as a
// parse failure.
func (e *Extractor) Extract(raw types.RawRecord) types.ExtractedFields {
	if raw == nil {
		return types.ExtractedFields{}
	}
	return e.ExtractText(*raw)
}

// ExtractText parses text. It never fails: text matching neither rule yields
// an all-absent result, logged at warn level.
func (e *Extractor) ExtractText(text string) types.ExtractedFields {
	text = strings.TrimSpace(text)
	for _, r := range rules {
		if f, ok := r.match(text); ok {
			e.logger.Debug("marker parsed", "rule", r.name, "text", text)
			return f
		}
	}
	e.unparsed.Add(1)
	e.logger.Warn("could not parse marker", "text", text)
	return types.ExtractedFields{}
}

// Unparsed returns how many non-nil values matched no rule since the
// Extractor was created or last reset.
func (e *Extractor) Unparsed() int {
	return int(e.unparsed.Load())
}

// ResetUnparsed zeroes the unparsed counter.
func (e *Extractor) ResetUnparsed() {
	e.unparsed.Store(0)
}

// nonEmpty trims s and returns nil when nothing is left.
func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
