//go:build mage

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const sampleDir = "testdata"

var sampleRows = [][]string{
	{"Work_Order", "Area Section Marker / Installation plan", "Crew"},
	{"WO-1001", "POLE TRANSFER 1237876 - 07613020", "North"},
	{"WO-1002", "3584096 - 10823022", "North"},
	{"WO-1003", "JB12345 - ARFDSA", "South"},
	{"WO-1004", "   POLE TRANSFER 1234567    -    98765432   ", "South"},
	{"WO-1005", "SECTION A-1 7654321 - 12345678", "East"},
	{"WO-1006", "Invalid text without numbers", "East"},
	{"WO-1007", "", "East"},
	{"WO-1008", "POLE TRANSFER 2 7654321 - 07613020", "West"},
	{"WO-1009", "LINE 4 1111111 - P-104A", "West"},
}

// Sample writes testdata/sample_markers.csv for manual runs of the CLI.
func Sample() error {
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	path := filepath.Join(sampleDir, "sample_markers.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(sampleRows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d rows)\n", path, len(sampleRows)-1)
	return nil
}

// Process builds the CLI and runs it on the sample file, writing a
// highlighted workbook and a YAML report next to it.
func Process() error {
	mg.Deps(Build, Sample)
	return sh.RunV(filepath.Join(binDir, binName), "process",
		filepath.Join(sampleDir, "sample_markers.csv"),
		filepath.Join(sampleDir, "sample_processed.xlsx"),
		"--highlight",
		"--report", filepath.Join(sampleDir, "sample_report.yaml"),
	)
}
