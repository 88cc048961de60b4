// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline processes one work-order file end to end: back up the
// output, read the input, pick the marker column, run the batch, write the
// result and fill in the report.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/polesplit/internal/batch"
	"github.com/pdiddy/polesplit/internal/column"
	"github.com/pdiddy/polesplit/internal/tableio"
	"github.com/pdiddy/polesplit/pkg/types"
)

// Now is the clock used for backup names. Tests override it.
var Now = time.Now

// Request names one file run.
type Request struct {
	InputPath  string
	OutputPath string
	Config     types.ProcessConfig
}

// Run processes req and returns the batch summary. A missing or empty marker
// column aborts the run with *types.ConfigurationError or
// *types.ValidationError before anything is written.
func Run(ctx context.Context, req Request, logger *slog.Logger) (types.ReportSummary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := req.Config

	if _, err := os.Stat(req.InputPath); err != nil {
		return types.ReportSummary{}, fmt.Errorf("input file not found: %s", req.InputPath)
	}

	outPath := req.OutputPath
	if cfg.Highlight {
		var changed bool
		outPath, changed = tableio.HighlightedOutputPath(outPath)
		if changed {
			logger.Warn("changing output extension to .xlsx for highlighting", "output", outPath)
		}
	}
	if _, err := tableio.FormatOf(outPath); err != nil {
		return types.ReportSummary{}, err
	}

	if !cfg.NoBackup {
		backup, err := tableio.Backup(outPath, Now())
		if err != nil {
			logger.Warn("could not create backup", "output", outPath, "error", err)
		} else if backup != "" {
			logger.Info("created backup", "path", backup)
		}
	}

	logger.Info("reading file", "path", req.InputPath)
	table, err := tableio.Read(req.InputPath, cfg.Sheet)
	if err != nil {
		return types.ReportSummary{}, err
	}
	logger.Info("read table", "rows", table.Len(), "columns", len(table.Header))

	name := cfg.Column
	if name == "" {
		d, err := column.Detect(table.Header)
		if err != nil {
			return types.ReportSummary{}, err
		}
		logger.Info("detected marker column", "column", d.Column, "strategy", d.Strategy)
		name = d.Column
	}

	result, err := batch.NewProcessor(logger).ProcessContext(ctx, table, name, cfg.Options())
	if err != nil {
		return types.ReportSummary{}, err
	}

	opts := tableio.WriteOptions{Sheet: tableio.DefaultSheet}
	if cfg.Highlight {
		opts.Highlight = types.ExtractedColumns
	}
	logger.Info("writing output", "path", outPath)
	if err := tableio.Write(outPath, result.Header, result.Records(), opts); err != nil {
		return types.ReportSummary{}, err
	}
	logger.Info("wrote rows", "rows", len(result.Rows), "path", outPath)

	summary := result.Summary
	summary.RunID = uuid.NewString()
	summary.InputFile = req.InputPath
	summary.OutputFile = outPath
	return summary, nil
}
