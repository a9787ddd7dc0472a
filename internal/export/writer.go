// Package export persists team collections as downloadable JSON files and
// reads them back for import.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileNameAt builds the export file name for a point in time, embedding an
// ISO-like UTC timestamp. This is the convention import users see on disk.
func FileNameAt(at time.Time) string {
	return fmt.Sprintf("teams-%s.json", at.UTC().Format("20060102T150405Z"))
}

// Writer persists exported payloads under a base directory.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteTeams writes the serialized collection to a timestamped file and
// returns its path. The write is atomic: a temp file is renamed into place
// so a crashed export never leaves a half-written file.
func (w *Writer) WriteTeams(data []byte) (string, error) {
	if w == nil {
		return "", fmt.Errorf("export writer not configured")
	}
	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return "", err
	}

	target := filepath.Join(w.basePath, FileNameAt(w.now()))
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, target); err != nil {
		return "", err
	}
	return target, nil
}

// ReadFile loads a previously exported payload from disk.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
