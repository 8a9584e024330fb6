package domain

import (
	"slices"
	"strings"
)

// TreeNode is one resolved package in a dependency tree.
// Children is nil for leaf packages and non-nil (possibly empty) when the lock entry has a
// dependencies block. Circular replaces Children when the package is its own ancestor.
type TreeNode struct {
	Name           string         `json:"name"`
	Version        string         `json:"version"`
	DependencyType DependencyKind `json:"dependencyType"`
	Children       []TreeNode     `json:"children,omitzero"`
	Circular       string         `json:"circular,omitempty"`
}

// BuildTree expands intents into nested nodes, in input order.
// Top-level nodes are tagged with the manifest group they were declared under; nested nodes
// are tagged as runtime dependencies. Expansion stops at any intent already present on the
// path from the top level, which yields a node with Circular set to the '>'-joined path.
func BuildTree(state *NormalizedState, intents []Intent) ([]TreeNode, error) {
	return buildTree(state, intents, nil)
}

func buildTree(state *NormalizedState, intents []Intent, ancestors []Intent) ([]TreeNode, error) {
	nodes := make([]TreeNode, 0, len(intents))
	for _, intent := range intents {
		node, err := buildNode(state, intent, ancestors)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func buildNode(state *NormalizedState, intent Intent, ancestors []Intent) (TreeNode, error) {
	name, _, err := intent.Split()
	if err != nil {
		return TreeNode{}, err
	}
	entry, err := state.Lookup(intent)
	if err != nil {
		return TreeNode{}, err
	}

	kind := KindRuntime
	if len(ancestors) == 0 {
		kind, err = state.Manifest().Classify(intent)
		if err != nil {
			return TreeNode{}, err
		}
		kind = kind.OrRuntime()
	}

	node := TreeNode{
		Name:           name,
		Version:        entry.Version,
		DependencyType: kind,
	}
	if !entry.HasDependencies() {
		return node, nil
	}

	path := append(slices.Clip(ancestors), intent)
	if slices.Contains(ancestors, intent) {
		node.Circular = formatPath(path)
		return node, nil
	}

	children := make([]Intent, len(entry.Dependencies))
	for i, req := range entry.Dependencies {
		children[i] = req.Intent()
	}
	node.Children, err = buildTree(state, children, path)
	if err != nil {
		return TreeNode{}, err
	}
	return node, nil
}

// formatPath renders a path as ">a@^1>b@^2".
func formatPath(path []Intent) string {
	var b strings.Builder
	for _, intent := range path {
		b.WriteByte('>')
		b.WriteString(intent.String())
	}
	return b.String()
}
