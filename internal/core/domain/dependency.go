package domain

// DependencyRequest is a declared dependency: a package name and the range it was requested at.
// It appears both in manifest groups and in the dependency lists of lock entries.
type DependencyRequest struct {
	// Name is the package name (e.g. "react", "@babel/core").
	Name InternedString

	// Range is the requested version range, kept verbatim (e.g. "^16.4.2").
	Range InternedString
}

// NewDependencyRequest creates a DependencyRequest from plain strings.
func NewDependencyRequest(name, rng string) DependencyRequest {
	return DependencyRequest{
		Name:  NewInternedString(name),
		Range: NewInternedString(rng),
	}
}

// Intent returns the "name@range" key used to look the request up in a lock table.
func (r DependencyRequest) Intent() Intent {
	return NewIntent(r.Name.String(), r.Range.String())
}
