package ports

import "io"

// ResultWriter serializes build results.
type ResultWriter interface {
	// Encode writes v to w.
	Encode(w io.Writer, v any) error

	// WriteFile writes v to the file at path, creating parent directories.
	WriteFile(path string, v any) error
}
