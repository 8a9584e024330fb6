package domain

// Classify reports the manifest group an intent was literally declared under.
// Groups are checked in priority order (runtime, dev, peer, bundled, optional) and the
// range must match exactly. Transitive intents classify as KindNone.
func (m *Manifest) Classify(intent Intent) (DependencyKind, error) {
	name, rng, err := intent.Split()
	if err != nil {
		return KindNone, err
	}
	for _, kind := range Kinds() {
		if declared, ok := m.Group(kind).Range(name); ok && declared == rng {
			return kind, nil
		}
	}
	return KindNone, nil
}
