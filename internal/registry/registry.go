// Package registry holds the version constraints generators write into
// project manifests. Operators never type dependency versions; every pin
// comes from the table embedded in versions.toml.
package registry

import (
	"fmt"
	"sort"
)

// Registry maps npm package names to semver constraint strings.
// It is read-only once parsed.
type Registry struct {
	pins map[string]string
}

// Lookup returns the constraint pinned for name.
func (r *Registry) Lookup(name string) (string, bool) {
	c, ok := r.pins[name]
	return c, ok
}

// Constraint is Lookup for callers that treat a missing pin as an error.
func (r *Registry) Constraint(name string) (string, error) {
	c, ok := r.pins[name]
	if !ok {
		return "", fmt.Errorf("no version pinned for %q", name)
	}
	return c, nil
}

// Names returns the pinned package names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pins))
	for name := range r.pins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
