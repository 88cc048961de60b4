// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/polesplit/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a CSV file whose first record is the header. Rows may have
// fewer or more fields than the header.
func ReadCSV(path string) (*types.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseCSV(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
}

func parseCSV(r io.Reader) (*types.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("parsing CSV header: %w", err)
	}

	t := &types.Table{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing CSV row %d: %w", len(t.Rows)+2, err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// WriteCSV writes header and records to path, replacing any existing file.
func WriteCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing CSV records: %w", err)
	}
	return f.Close()
}
