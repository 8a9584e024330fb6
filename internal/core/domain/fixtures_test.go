package domain_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.trai.ch/deparse/internal/core/domain"
)

func group(pairs ...string) *domain.DependencyGroup {
	g := domain.NewDependencyGroup()
	for i := 0; i+1 < len(pairs); i += 2 {
		g.Add(pairs[i], pairs[i+1])
	}
	return g
}

func entry(version string, deps ...string) *domain.LockEntry {
	e := &domain.LockEntry{Version: version}
	if deps == nil {
		return e
	}
	e.Dependencies = []domain.DependencyRequest{}
	for i := 0; i+1 < len(deps); i += 2 {
		e.Dependencies = append(e.Dependencies, domain.NewDependencyRequest(deps[i], deps[i+1]))
	}
	return e
}

// flatFixture is the four-package project with one package per relationship kind.
func flatFixture() (*domain.Manifest, *domain.LockTable) {
	m := domain.NewManifest("app", "1.0.0")
	m.SetGroup(domain.KindRuntime, group("moment", "^2.22.2", "react", "^16.4.2"))
	m.SetGroup(domain.KindDev, group("mocha", "^5.2.0"))
	m.SetGroup(domain.KindOptional, group("fsevents", "^1.2.4"))

	table := domain.NewLockTable()
	table.Set(entry("2.22.2"), "moment@^2.22.2")
	table.Set(entry("16.4.0"), "react@^16.4.2")
	table.Set(entry("5.2.0"), "mocha@^5.2.0")
	table.Set(entry("1.2.4"), "fsevents@^1.2.4")
	return m, table
}

// nestedFixture has transitive dependencies and one entry aliased by two intents.
func nestedFixture() (*domain.Manifest, *domain.LockTable) {
	m := domain.NewManifest("app", "1.0.0")
	m.SetGroup(domain.KindRuntime, group("chalk", "^2.4.1"))
	m.SetGroup(domain.KindDev, group("mocha", "^5.2.0"))

	table := domain.NewLockTable()
	table.Set(entry("2.4.1", "ansi-styles", "^3.2.1", "supports-color", "^5.3.0"), "chalk@^2.4.1")
	table.Set(entry("3.2.1", "color-convert", "^1.9.0"), "ansi-styles@^3.2.1")
	table.Set(entry("1.9.3"), "color-convert@^1.9.0")
	table.Set(entry("5.5.0", "has-flag", "^3.0.0"), "supports-color@^5.3.0", "supports-color@5.4.0")
	table.Set(entry("3.0.0"), "has-flag@^3.0.0")
	table.Set(entry("5.2.0", "supports-color", "5.4.0"), "mocha@^5.2.0")
	return m, table
}

func mustNormalize(t *testing.T, m *domain.Manifest, table *domain.LockTable) *domain.NormalizedState {
	t.Helper()
	state, err := domain.Normalize(m, table)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return state
}

// mustJSON encodes v the way the CLI prints results.
func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		t.Fatalf("failed to encode JSON: %v", err)
	}
	return buf.Bytes()
}
