package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
)

//go:embed versions.toml
var embeddedVersions []byte

// document is the on-disk shape of versions.toml.
type document struct {
	Packages map[string]string `toml:"packages"`
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Parse(embeddedVersions)
})

// Default returns the registry embedded in the binary. The table is parsed
// on first use and shared for the rest of the process.
func Default() (*Registry, error) {
	return loadDefault()
}

// Parse decodes a TOML pin table. Every constraint must be a valid semver
// range; a single bad entry fails the whole table.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("parse registry: no packages pinned")
	}

	pins := make(map[string]string, len(doc.Packages))
	for name, constraint := range doc.Packages {
		if _, err := semver.NewConstraint(constraint); err != nil {
			return nil, fmt.Errorf("parse registry: %s: invalid constraint %q: %w", name, constraint, err)
		}
		pins[name] = constraint
	}
	return &Registry{pins: pins}, nil
}
