// Package cas stores what each exported file was produced from.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where the export state lives, relative to the working directory.
const DefaultPath = ".deparse/state.json"

var _ ports.ExportInfoStore = (*Store)(nil)

// Store implements ports.ExportInfoStore using a flat JSON file keyed by target path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ExportInfo
}

// NewStore creates a new ExportInfoStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ExportInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read export state"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal export state"), "path", s.path)
	}

	return nil
}

// save writes the whole state while holding the write lock, so concurrent Puts never
// interleave on the file.
func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal export state")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for export state")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write export state")
	}

	return nil
}

// Get retrieves the export info for a target path. Returns nil, nil if not found.
func (s *Store) Get(target string) (*domain.ExportInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the export info and flushes the whole state to disk.
func (s *Store) Put(info domain.ExportInfo) error {
	s.mu.Lock()
	s.cache[info.Target] = info
	s.mu.Unlock()

	return s.save()
}
