// Package fs implements crash-safe file persistence for generated output.
package fs

import (
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/google/renameio/v2"
)

// FilePerm is the permission mode for generated files.
const FilePerm os.FileMode = 0o644

// Writer implements ports.AtomicWriter using a same-directory temporary
// file that is flushed and atomically renamed over the destination. On any
// failure the destination is left untouched and the temporary file is
// removed.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile atomically replaces path with data, creating any missing
// parent directories.
func (w *Writer) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, FilePerm)
}

// WriteFileIfChanged atomically replaces path with data unless the file
// already holds identical content, and reports whether a write happened.
// Skipping identical content keeps downstream mtime-based tools from
// rebuilding the world after every regeneration.
func (w *Writer) WriteFileIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && len(existing) == len(data) && xxhash.Sum64(existing) == xxhash.Sum64(data) {
		return false, nil
	}

	if err := w.WriteFile(path, data); err != nil {
		return false, err
	}
	return true, nil
}
