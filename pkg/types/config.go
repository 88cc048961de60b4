// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProcessOptions controls the optional batch steps.
type ProcessOptions struct {
	// FilterJobNumbers drops rows whose raw text contains "JB" followed by
	// digits before extraction (default true).
	FilterJobNumbers bool `json:"filter_job_numbers" yaml:"filter_job_numbers"`

	// DeduplicateByPole keeps only the first row for each pole number
	// (default true).
	DeduplicateByPole bool `json:"deduplicate_by_pole" yaml:"deduplicate_by_pole"`

	// KeepOriginalColumn keeps the raw marker column in the output
	// (default false).
	KeepOriginalColumn bool `json:"keep_original_column" yaml:"keep_original_column"`
}

// DefaultProcessOptions returns the options used when none are given.
func DefaultProcessOptions() ProcessOptions {
	return ProcessOptions{
		FilterJobNumbers:   true,
		DeduplicateByPole:  true,
		KeepOriginalColumn: false,
	}
}

// ProcessConfig holds settings for the process command.
type ProcessConfig struct {
	// Column is the raw marker column name. Empty means auto-detect.
	Column string `json:"column,omitempty" yaml:"column,omitempty"`

	// Sheet is the Excel sheet to read. Empty means the first sheet.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`

	// KeepOriginal keeps the raw marker column in the output.
	KeepOriginal bool `json:"keep_original" yaml:"keep_original"`

	// NoDedupe disables pole-number deduplication.
	NoDedupe bool `json:"no_dedupe" yaml:"no_dedupe"`

	// KeepJobNumbers disables the job-number row filter.
	KeepJobNumbers bool `json:"keep_job_numbers" yaml:"keep_job_numbers"`

	// NoBackup skips the backup of an existing output file.
	NoBackup bool `json:"no_backup" yaml:"no_backup"`

	// Highlight forces styled Excel output with the new columns filled yellow.
	Highlight bool `json:"highlight" yaml:"highlight"`

	// Report is an optional path for a YAML or JSON copy of the summary.
	Report string `json:"report,omitempty" yaml:"report,omitempty" validate:"omitempty,reportpath"`
}

// Options converts the command settings into batch options.
func (c ProcessConfig) Options() ProcessOptions {
	return ProcessOptions{
		FilterJobNumbers:   !c.KeepJobNumbers,
		DeduplicateByPole:  !c.NoDedupe,
		KeepOriginalColumn: c.KeepOriginal,
	}
}

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// LoggingConfig holds diagnostic logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`

	// Format is text or json (default text).
	Format LogFormat `json:"format" yaml:"format" validate:"omitempty,oneof=text json"`
}

// Config groups all settings read from polesplit.yaml, the environment and flags.
type Config struct {
	Process ProcessConfig `json:"process" yaml:"process"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}
