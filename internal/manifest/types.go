// Package manifest models the two files a generator writes into a new
// project: the npm package descriptor (package.json) and the editor
// workspace descriptor (<dir>.code-workspace).
package manifest

import "path/filepath"

// FileName is the name of the package descriptor inside the project directory.
const FileName = "package.json"

// Scripts are the npm run targets of a generated project.
type Scripts struct {
	Dev   string `json:"dev"`
	Start string `json:"start"`
	Test  string `json:"test"`
}

// ModuleAliases configures the module-alias package.
type ModuleAliases struct {
	Root string `json:"root"`
}

// Manifest is the package descriptor. Field order is the serialized order.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Private         bool              `json:"private"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         Scripts           `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	Licence         string            `json:"licence"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	ModuleAliases   ModuleAliases     `json:"_moduleAliases"`
}

// New returns a manifest whose collections serialize as [] and {} rather
// than null.
func New(name, version string) *Manifest {
	return &Manifest{
		Name:            name,
		Version:         version,
		Keywords:        []string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
		ModuleAliases:   ModuleAliases{Root: "."},
	}
}

// AddDependency pins a runtime dependency. Adding the same package twice
// keeps a single entry.
func (m *Manifest) AddDependency(name, constraint string) {
	m.Dependencies[name] = constraint
}

// AddDevDependency pins a development-only dependency.
func (m *Manifest) AddDevDependency(name, constraint string) {
	m.DevDependencies[name] = constraint
}

// Folder is one root of an editor workspace.
type Folder struct {
	Path string `json:"path"`
}

// Workspace is the editor workspace descriptor.
type Workspace struct {
	Folders  []Folder       `json:"folders"`
	Settings map[string]any `json:"settings"`
}

// NewWorkspace returns a workspace with the project directory as its only
// folder and no settings.
func NewWorkspace() Workspace {
	return Workspace{
		Folders:  []Folder{{Path: "."}},
		Settings: map[string]any{},
	}
}

// WorkspaceFileName returns the workspace file name for projectDir.
func WorkspaceFileName(projectDir string) string {
	return filepath.Base(projectDir) + ".code-workspace"
}
