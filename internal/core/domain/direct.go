package domain

// DirectDependency is a package declared in the manifest together with its resolved version.
type DirectDependency struct {
	Name           string         `json:"name"`
	Version        string         `json:"version"`
	DependencyType DependencyKind `json:"dependencyType"`
}

// DirectDependencies resolves every manifest intent, in Manifest.Intents order.
func DirectDependencies(state *NormalizedState) ([]DirectDependency, error) {
	intents := state.Manifest().Intents()
	deps := make([]DirectDependency, 0, len(intents))
	for _, intent := range intents {
		name, _, err := intent.Split()
		if err != nil {
			return nil, err
		}
		entry, err := state.Lookup(intent)
		if err != nil {
			return nil, err
		}
		kind, err := state.Manifest().Classify(intent)
		if err != nil {
			return nil, err
		}
		deps = append(deps, DirectDependency{
			Name:           name,
			Version:        entry.Version,
			DependencyType: kind.OrRuntime(),
		})
	}
	return deps, nil
}
