package domain

// DependencyGroup is one manifest group ("dependencies", "devDependencies", ...).
// It keeps declaration order; names are unique within a group.
type DependencyGroup struct {
	requests []DependencyRequest
	ranges   map[string]string
}

// NewDependencyGroup builds a group from requests in declaration order.
// A repeated name keeps its first position and takes the last range.
func NewDependencyGroup(requests ...DependencyRequest) *DependencyGroup {
	g := &DependencyGroup{
		ranges: make(map[string]string, len(requests)),
	}
	for _, req := range requests {
		g.Add(req.Name.String(), req.Range.String())
	}
	return g
}

// Add declares name at rng.
func (g *DependencyGroup) Add(name, rng string) {
	if _, exists := g.ranges[name]; exists {
		for i, req := range g.requests {
			if req.Name.String() == name {
				g.requests[i].Range = NewInternedString(rng)
				break
			}
		}
	} else {
		g.requests = append(g.requests, NewDependencyRequest(name, rng))
	}
	g.ranges[name] = rng
}

// Range returns the range declared for name. It is safe to call on a nil group.
func (g *DependencyGroup) Range(name string) (string, bool) {
	if g == nil {
		return "", false
	}
	rng, ok := g.ranges[name]
	return rng, ok
}

// Len returns the number of declared dependencies.
func (g *DependencyGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.requests)
}

// Requests returns the declared dependencies in declaration order.
func (g *DependencyGroup) Requests() []DependencyRequest {
	if g == nil {
		return nil
	}
	out := make([]DependencyRequest, len(g.requests))
	copy(out, g.requests)
	return out
}

// Manifest is the parsed project manifest.
type Manifest struct {
	Name    string
	Version string

	groups map[DependencyKind]*DependencyGroup
}

// NewManifest creates a manifest without any dependency groups.
func NewManifest(name, version string) *Manifest {
	return &Manifest{
		Name:    name,
		Version: version,
		groups:  make(map[DependencyKind]*DependencyGroup),
	}
}

// SetGroup replaces the group for kind. KindNone is ignored.
func (m *Manifest) SetGroup(kind DependencyKind, group *DependencyGroup) {
	if kind == KindNone {
		return
	}
	if m.groups == nil {
		m.groups = make(map[DependencyKind]*DependencyGroup)
	}
	m.groups[kind] = group
}

// Group returns the group for kind, or nil if the manifest does not declare it.
func (m *Manifest) Group(kind DependencyKind) *DependencyGroup {
	return m.groups[kind]
}

// RootIntent returns the intent of the project itself ("name@version").
func (m *Manifest) RootIntent() Intent {
	return NewIntent(m.Name, m.Version)
}

// Intents returns every declared intent, groups in classification priority order and
// entries in declaration order. An intent declared in several groups is listed once.
func (m *Manifest) Intents() []Intent {
	seen := make(map[Intent]struct{})
	var intents []Intent
	for _, kind := range Kinds() {
		for _, req := range m.Group(kind).Requests() {
			intent := req.Intent()
			if _, dup := seen[intent]; dup {
				continue
			}
			seen[intent] = struct{}{}
			intents = append(intents, intent)
		}
	}
	return intents
}
