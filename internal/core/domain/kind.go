package domain

import "go.trai.ch/zerr"

// DependencyKind is the relationship under which a package was declared in a manifest.
type DependencyKind int

const (
	// KindNone marks an intent that is not a literal entry of any manifest group.
	KindNone DependencyKind = iota
	// KindRuntime is a "dependencies" entry.
	KindRuntime
	// KindDev is a "devDependencies" entry.
	KindDev
	// KindPeer is a "peerDependencies" entry.
	KindPeer
	// KindBundled is a "bundledDependencies" entry.
	KindBundled
	// KindOptional is an "optionalDependencies" entry.
	KindOptional
)

type kindInfo struct {
	kind  DependencyKind
	field string
	label string
}

// kindTable lists the declarable kinds in classification priority order.
var kindTable = [...]kindInfo{
	{KindRuntime, "dependencies", "dependency"},
	{KindDev, "devDependencies", "devDependency"},
	{KindPeer, "peerDependencies", "peerDependency"},
	{KindBundled, "bundledDependencies", "bundledDependency"},
	{KindOptional, "optionalDependencies", "optionalDependency"},
}

// Kinds returns the declarable kinds in classification priority order.
func Kinds() []DependencyKind {
	kinds := make([]DependencyKind, len(kindTable))
	for i, info := range kindTable {
		kinds[i] = info.kind
	}
	return kinds
}

func (k DependencyKind) info() (kindInfo, bool) {
	for _, info := range kindTable {
		if info.kind == k {
			return info, true
		}
	}
	return kindInfo{}, false
}

// Field returns the manifest field holding this kind's group, or "" for KindNone.
func (k DependencyKind) Field() string {
	info, _ := k.info()
	return info.field
}

// String returns the output label (e.g. "devDependency"), or "" for KindNone.
func (k DependencyKind) String() string {
	info, _ := k.info()
	return info.label
}

// OrRuntime returns k, or KindRuntime when k is KindNone.
func (k DependencyKind) OrRuntime() DependencyKind {
	if k == KindNone {
		return KindRuntime
	}
	return k
}

// MarshalText implements encoding.TextMarshaler using the output label.
func (k DependencyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *DependencyKind) UnmarshalText(text []byte) error {
	parsed, err := ParseDependencyKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseDependencyKind maps an output label back to its kind. The empty label maps to KindNone.
func ParseDependencyKind(label string) (DependencyKind, error) {
	if label == "" {
		return KindNone, nil
	}
	for _, info := range kindTable {
		if info.label == label {
			return info.kind, nil
		}
	}
	return KindNone, zerr.With(zerr.Wrap(ErrUnknownDependencyKind, "cannot parse dependency kind"), "label", label)
}
