// Package manifest reads package.json files into domain manifests, keeping declaration order.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
)

// bundleAlias is the older spelling npm still accepts for bundledDependencies.
const bundleAlias = "bundleDependencies"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the manifest at path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Decode parses manifest JSON.
func Decode(data []byte) (*domain.Manifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, invalid("", err)
	}

	var name, version string
	if raw, ok := fields["name"]; ok {
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, invalid("name", err)
		}
	}
	if name == "" {
		return nil, zerr.Wrap(domain.ErrNoManifestName, "cannot decode manifest")
	}
	if raw, ok := fields["version"]; ok {
		if err := json.Unmarshal(raw, &version); err != nil {
			return nil, invalid("version", err)
		}
	}

	m := domain.NewManifest(name, version)
	for _, kind := range domain.Kinds() {
		if kind == domain.KindBundled {
			continue
		}
		raw, ok := fields[kind.Field()]
		if !ok {
			continue
		}
		group, err := decodeGroup(raw)
		if err != nil {
			return nil, invalid(kind.Field(), err)
		}
		m.SetGroup(kind, group)
	}

	raw, ok := fields[domain.KindBundled.Field()]
	if !ok {
		raw, ok = fields[bundleAlias]
	}
	if ok {
		group, err := decodeBundled(raw, m)
		if err != nil {
			return nil, invalid(domain.KindBundled.Field(), err)
		}
		m.SetGroup(domain.KindBundled, group)
	}

	return m, nil
}

// invalid reports a decoding failure as ErrManifestInvalid. The cause is kept as the
// "reason" attribute along with any metadata it carries.
func invalid(field string, cause error) error {
	err := zerr.With(zerr.Wrap(domain.ErrManifestInvalid, "cannot decode manifest"), "reason", cause.Error())
	if field != "" {
		err = zerr.With(err, "field", field)
	}
	var zErr *zerr.Error
	if errors.As(cause, &zErr) {
		for k, v := range zErr.Metadata() {
			err = zerr.With(err, k, v)
		}
	}
	return err
}

// decodeGroup reads a JSON object of name -> range pairs in document order.
func decodeGroup(raw json.RawMessage) (*domain.DependencyGroup, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return domain.NewDependencyGroup(), nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, zerr.With(zerr.New("expected an object"), "token", tok)
	}

	group := domain.NewDependencyGroup()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := keyTok.(string)

		var rng string
		if err := dec.Decode(&rng); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid range"), "dependency", name)
		}
		group.Add(name, rng)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return group, nil
}

// decodeBundled accepts the object form, the array-of-names form, or a boolean.
// Names take their range from the runtime or optional group; true bundles every runtime dependency.
func decodeBundled(raw json.RawMessage, m *domain.Manifest) (*domain.DependencyGroup, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return domain.NewDependencyGroup(), nil
	}

	switch trimmed[0] {
	case '{', 'n':
		return decodeGroup(raw)
	case 't', 'f':
		var all bool
		if err := json.Unmarshal(raw, &all); err != nil {
			return nil, err
		}
		if !all {
			return domain.NewDependencyGroup(), nil
		}
		return domain.NewDependencyGroup(m.Group(domain.KindRuntime).Requests()...), nil
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, err
	}
	group := domain.NewDependencyGroup()
	for _, name := range names {
		for _, source := range []domain.DependencyKind{domain.KindRuntime, domain.KindOptional} {
			if rng, ok := m.Group(source).Range(name); ok {
				group.Add(name, rng)
				break
			}
		}
	}
	return group, nil
}
