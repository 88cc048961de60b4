// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/polesplit/internal/config"
	"github.com/pdiddy/polesplit/internal/pipeline"
	"github.com/pdiddy/polesplit/internal/report"
)

var processCmd = &cobra.Command{
	Use:   "process <input> <output>",
	Short: "Split the marker column of a CSV or Excel file",
	Long: `Process reads a CSV or Excel work-order file, auto-detects the marker
column (or uses --column), splits it into Marker_Name, Engine_Number and
Pole_Number, and writes the result. The output format follows the output
extension: .csv, .xlsx or .db (SQLite). An existing output file is backed
up first.

Examples:
  polesplit process input.csv output.csv
  polesplit process data.xlsx processed.xlsx --sheet "Sheet1"
  polesplit process input.csv output.csv --column "Area Section Marker / Installation plan"
  polesplit process input.csv output.xlsx --highlight --keep-original --no-dedupe`,
	Args: cobra.ExactArgs(2),
	RunE: runProcess,
}

func init() {
	f := processCmd.Flags()
	f.String("column", "", "name of the raw marker column (auto-detected if omitted)")
	f.String("sheet", "", "sheet name for Excel input")
	f.Bool("keep-original", false, "keep the original raw column")
	f.Bool("no-dedupe", false, "do not remove duplicate pole numbers")
	f.Bool("keep-job-numbers", false, "keep rows with job numbers (JB...)")
	f.Bool("no-backup", false, "do not back up an existing output file")
	f.Bool("highlight", false, "write styled Excel output with the new columns highlighted")
	f.String("report", "", "also write the summary to this .yaml or .json file")

	for flag, key := range map[string]string{
		"column":           config.KeyColumn,
		"sheet":            config.KeySheet,
		"keep-original":    config.KeyKeepOriginal,
		"no-dedupe":        config.KeyNoDedupe,
		"keep-job-numbers": config.KeyKeepJobNumbers,
		"no-backup":        config.KeyNoBackup,
		"highlight":        config.KeyHighlight,
		"report":           config.KeyReport,
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pc := cfg.Process
	summary, err := pipeline.Run(ctx, pipeline.Request{
		InputPath:  args[0],
		OutputPath: args[1],
		Config:     pc,
	}, logger)
	if err != nil {
		logger.Error("processing failed", "error", err)
		return err
	}

	report.Print(cmd.OutOrStdout(), summary)

	if pc.Report != "" {
		if err := report.Write(pc.Report, summary); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("wrote report", "path", pc.Report)
	}
	return nil
}
