package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// LockEntry is one resolved package version.
// Several intents may point at the same *LockEntry when their ranges resolved to one version.
type LockEntry struct {
	// Version is the concrete resolved version (e.g. "4.17.21").
	Version string

	// Dependencies lists the entry's own requests in lock file order.
	// A nil slice means the entry declares no dependencies at all; a non-nil empty slice
	// means the block is present but empty. Builders treat the two differently.
	Dependencies []DependencyRequest
}

// HasDependencies reports whether the entry carries a dependencies block, even an empty one.
func (e *LockEntry) HasDependencies() bool {
	return e.Dependencies != nil
}

// LockTable maps intents to resolved entries, preserving insertion order.
type LockTable struct {
	order   []Intent
	entries map[Intent]*LockEntry
}

// NewLockTable creates an empty LockTable.
func NewLockTable() *LockTable {
	return &LockTable{
		entries: make(map[Intent]*LockEntry),
	}
}

// Set maps every intent to entry. An intent that already exists keeps its position.
func (t *LockTable) Set(entry *LockEntry, intents ...Intent) {
	for _, intent := range intents {
		if _, exists := t.entries[intent]; !exists {
			t.order = append(t.order, intent)
		}
		t.entries[intent] = entry
	}
}

// Get returns the entry for intent.
func (t *LockTable) Get(intent Intent) (*LockEntry, bool) {
	entry, ok := t.entries[intent]
	return entry, ok
}

// Lookup returns the entry for intent or ErrIntentNotFound.
func (t *LockTable) Lookup(intent Intent) (*LockEntry, error) {
	entry, ok := t.entries[intent]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrIntentNotFound, "lookup failed"), "intent", intent.String())
	}
	return entry, nil
}

// Len returns the number of intents (not distinct entries).
func (t *LockTable) Len() int {
	return len(t.order)
}

// All yields intents and their entries in insertion order.
func (t *LockTable) All() iter.Seq2[Intent, *LockEntry] {
	return func(yield func(Intent, *LockEntry) bool) {
		for _, intent := range t.order {
			if !yield(intent, t.entries[intent]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: a new index sharing the same *LockEntry values.
func (t *LockTable) Clone() *LockTable {
	c := &LockTable{
		order:   make([]Intent, len(t.order)),
		entries: make(map[Intent]*LockEntry, len(t.entries)),
	}
	copy(c.order, t.order)
	for intent, entry := range t.entries {
		c.entries[intent] = entry
	}
	return c
}
