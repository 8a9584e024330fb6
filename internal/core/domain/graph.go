package domain

// Module is one distinct resolved package in a GraphResult.
type Module struct {
	Name           string         `json:"name"`
	Version        string         `json:"version"`
	ID             int            `json:"id"`
	DependencyType DependencyKind `json:"dependencyType"`
}

// Edge is a directed dependency between two module ids.
type Edge struct {
	Source         int            `json:"source"`
	Target         int            `json:"target"`
	DependencyType DependencyKind `json:"dependencyType"`
}

// GraphResult is the flat module/edge view of a normalized lock table.
type GraphResult struct {
	Modules []Module `json:"modules"`
	Edges   []Edge   `json:"edges"`
}

// BuildGraph emits one module per distinct entry, in id order, and one edge per dependency of
// each entry. Edges leaving the root carry the target's direct kind; every other edge and every
// module without a direct kind is tagged as a runtime dependency.
func BuildGraph(state *NormalizedState) (*GraphResult, error) {
	result := &GraphResult{
		Modules: make([]Module, 0, state.Len()),
		Edges:   []Edge{},
	}
	rootID := state.RootID()

	for id := range state.Len() {
		entry, _ := state.Entry(id)
		kind, _ := state.DirectKind(id)
		result.Modules = append(result.Modules, Module{
			Name:           state.Name(id),
			Version:        entry.Version,
			ID:             id,
			DependencyType: kind.OrRuntime(),
		})

		for _, req := range entry.Dependencies {
			target, err := state.lookupID(req.Intent())
			if err != nil {
				return nil, err
			}
			edgeKind := KindRuntime
			if id == rootID {
				direct, _ := state.DirectKind(target)
				edgeKind = direct.OrRuntime()
			}
			result.Edges = append(result.Edges, Edge{
				Source:         id,
				Target:         target,
				DependencyType: edgeKind,
			})
		}
	}
	return result, nil
}
