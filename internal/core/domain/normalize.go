package domain

import "go.trai.ch/zerr"

// NormalizedState is the id-assigned, de-duplicated view of a lock table, plus the synthetic
// root entry for the project itself. It is immutable once Normalize returns and may be shared
// between concurrent readers.
type NormalizedState struct {
	manifest   *Manifest
	table      *LockTable
	root       *LockEntry
	rootIntent Intent

	entries     []*LockEntry
	names       []string
	ids         map[*LockEntry]int
	directKinds map[int]DependencyKind
}

// Normalize walks table once in insertion order and assigns every distinct entry a sequential
// id starting at 0. A root entry for the project is appended under manifest.RootIntent(); its
// dependencies are the direct dependencies met during the walk, each under the range it was
// first seen with. Neither manifest nor table is modified.
func Normalize(manifest *Manifest, table *LockTable) (*NormalizedState, error) {
	if manifest == nil {
		return nil, zerr.With(zerr.Wrap(ErrManifestInvalid, "cannot normalize"), "reason", "nil manifest")
	}
	if table == nil {
		table = NewLockTable()
	}

	s := &NormalizedState{
		manifest:    manifest,
		table:       table.Clone(),
		rootIntent:  manifest.RootIntent(),
		ids:         make(map[*LockEntry]int),
		directKinds: make(map[int]DependencyKind),
	}
	s.root = &LockEntry{Version: manifest.Version}
	s.table.Set(s.root, s.rootIntent)

	rootDeps := []DependencyRequest{}
	rootNames := make(map[string]struct{})

	for intent, entry := range s.table.All() {
		if entry == s.root {
			s.assign(entry, manifest.Name)
			continue
		}

		name, rng, err := intent.Split()
		if err != nil {
			return nil, err
		}
		id := s.assign(entry, name)

		kind, err := manifest.Classify(intent)
		if err != nil {
			return nil, err
		}
		if kind == KindNone {
			continue
		}
		if _, exists := rootNames[name]; exists {
			continue
		}
		rootNames[name] = struct{}{}
		rootDeps = append(rootDeps, NewDependencyRequest(name, rng))
		if _, seen := s.directKinds[id]; !seen {
			s.directKinds[id] = kind
		}
	}

	s.root.Dependencies = rootDeps
	return s, nil
}

// assign gives entry the next id unless it already has one, and returns its id.
func (s *NormalizedState) assign(entry *LockEntry, name string) int {
	if id, ok := s.ids[entry]; ok {
		return id
	}
	id := len(s.entries)
	s.ids[entry] = id
	s.entries = append(s.entries, entry)
	s.names = append(s.names, name)
	return id
}

// Manifest returns the manifest the state was built from.
func (s *NormalizedState) Manifest() *Manifest {
	return s.manifest
}

// Root returns the synthetic root entry.
func (s *NormalizedState) Root() *LockEntry {
	return s.root
}

// RootID returns the id of the synthetic root entry.
func (s *NormalizedState) RootID() int {
	return s.ids[s.root]
}

// RootIntent returns the intent the root entry is stored under.
func (s *NormalizedState) RootIntent() Intent {
	return s.rootIntent
}

// Len returns the number of distinct entries, root included.
func (s *NormalizedState) Len() int {
	return len(s.entries)
}

// Entry returns the entry with the given id.
func (s *NormalizedState) Entry(id int) (*LockEntry, bool) {
	if id < 0 || id >= len(s.entries) {
		return nil, false
	}
	return s.entries[id], true
}

// Name returns the package name of the intent that first reached the entry with the given id.
func (s *NormalizedState) Name(id int) string {
	if id < 0 || id >= len(s.names) {
		return ""
	}
	return s.names[id]
}

// ID returns the id assigned to entry.
func (s *NormalizedState) ID(entry *LockEntry) (int, bool) {
	id, ok := s.ids[entry]
	return id, ok
}

// DirectKind returns the kind under which the entry with the given id was first reached as a
// direct dependency of the root.
func (s *NormalizedState) DirectKind(id int) (DependencyKind, bool) {
	kind, ok := s.directKinds[id]
	return kind, ok
}

// Lookup resolves an intent against the normalized table, root included.
func (s *NormalizedState) Lookup(intent Intent) (*LockEntry, error) {
	return s.table.Lookup(intent)
}

// lookupID resolves an intent to the id of its entry.
func (s *NormalizedState) lookupID(intent Intent) (int, error) {
	entry, err := s.table.Lookup(intent)
	if err != nil {
		return 0, err
	}
	return s.ids[entry], nil
}
