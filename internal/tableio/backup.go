// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tableio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupPath returns the backup name for path at now:
// <dir>/<stem>_backup_<YYYYMMDD_HHMMSS><ext>.
func BackupPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), stem+"_backup_"+now.Format("20060102_150405")+ext)
}

// Backup copies an existing file at path to BackupPath(path, now), keeping
// its modification time. It returns "" without error when path does not
// exist.
func Backup(path string, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	dst := BackupPath(path, now)
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("copying backup: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing backup: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("preserving backup times: %w", err)
	}
	return dst, nil
}
