// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableio

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTable is the table WriteSQLite creates.
const SQLiteTable = "processed_data"

// RowIDColumn is the synthetic primary key of SQLiteTable.
const RowIDColumn = "row_id"

// WriteSQLite writes header and records into the processed_data table of the
// SQLite database at path, replacing any previous contents of that table.
// Every column is TEXT; empty cells are stored as NULL. Column names come
// from ColumnNames.
func WriteSQLite(path string, header []string, records [][]string) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	names := ColumnNames(header)
	cols := make([]string, len(names))
	marks := make([]string, len(names))
	for i, n := range names {
		names[i] = quoteIdent(n)
		cols[i] = names[i] + " TEXT"
		marks[i] = "?"
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DROP TABLE IF EXISTS ` + SQLiteTable,
		`CREATE TABLE ` + SQLiteTable + ` (` + RowIDColumn + ` INTEGER PRIMARY KEY AUTOINCREMENT, ` + strings.Join(cols, ", ") + `)`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	stmt, err := tx.Prepare(`INSERT INTO ` + SQLiteTable + ` (` + strings.Join(names, ", ") + `) VALUES (` + strings.Join(marks, ", ") + `)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(header))
	for n, rec := range records {
		for i := range header {
			var v sql.NullString
			if i < len(rec) && rec[i] != "" {
				v = sql.NullString{String: rec[i], Valid: true}
			}
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", n+1, err)
		}
	}

	return tx.Commit()
}

// ColumnNames turns a header into distinct SQLite column names. Blank names
// become "Unnamed: N" with N the zero-based position, and a name already
// taken gets a "_2", "_3", ... suffix. SQLite compares identifiers without
// case, and RowIDColumn is always taken.
func ColumnNames(header []string) []string {
	used := map[string]bool{strings.ToLower(RowIDColumn): true}
	out := make([]string, len(header))
	for i, h := range header {
		base := h
		if strings.TrimSpace(base) == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		used[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
