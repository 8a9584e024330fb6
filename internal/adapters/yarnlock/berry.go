package yarnlock

import (
	"strings"

	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const npmProtocol = "npm:"

// decodeBerry parses the YAML lock file written by yarn 2 and later. Mapping order is kept
// by walking the yaml.Node tree instead of decoding into a map.
func decodeBerry(data []byte) (*domain.LockTable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileInvalid, "cannot parse berry lock file"), "reason", err.Error())
	}
	table := domain.NewLockTable()
	if len(doc.Content) == 0 {
		return table, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, invalid(root.Line, "expected a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Value == metadataKey {
			continue
		}
		if valueNode.Kind != yaml.MappingNode {
			return nil, invalid(valueNode.Line, "expected entry fields")
		}

		entry, err := berryEntry(valueNode)
		if err != nil {
			return nil, err
		}

		var intents []domain.Intent
		for _, key := range strings.Split(keyNode.Value, ",") {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			intents = append(intents, stripProtocol(domain.Intent(key)))
		}
		table.Set(entry, intents...)
	}

	return table, nil
}

func berryEntry(node *yaml.Node) (*domain.LockEntry, error) {
	entry := &domain.LockEntry{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "version":
			entry.Version = value.Value
		case "dependencies":
			if value.Kind != yaml.MappingNode {
				return nil, invalid(value.Line, "expected dependency mapping")
			}
			entry.Dependencies = make([]domain.DependencyRequest, 0, len(value.Content)/2)
			for j := 0; j+1 < len(value.Content); j += 2 {
				name, rng := value.Content[j].Value, value.Content[j+1].Value
				entry.Dependencies = append(entry.Dependencies,
					domain.NewDependencyRequest(name, strings.TrimPrefix(rng, npmProtocol)))
			}
		}
	}
	return entry, nil
}

// stripProtocol turns "chalk@npm:^2.4.2" into "chalk@^2.4.2". Other protocols are kept.
func stripProtocol(intent domain.Intent) domain.Intent {
	name, rng, err := intent.Split()
	if err != nil {
		return intent
	}
	if !strings.HasPrefix(rng, npmProtocol) {
		return intent
	}
	return domain.NewIntent(name, strings.TrimPrefix(rng, npmProtocol))
}
