// Package output serializes results as indented JSON.
package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultWriter = (*JSONWriter)(nil)

// JSONWriter implements ports.ResultWriter with two-space indentation and no HTML escaping.
type JSONWriter struct{}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Encode writes v to w followed by a newline.
func (j *JSONWriter) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}
	return nil
}

// WriteFile encodes v into the file at path, creating parent directories.
func (j *JSONWriter) WriteFile(path string, v any) error {
	var buf bytes.Buffer
	if err := j.Encode(&buf, v); err != nil {
		return zerr.With(err, "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", path)
	}

	//nolint:gosec // Path is provided by trusted caller
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write result"), "path", path)
	}
	return nil
}
