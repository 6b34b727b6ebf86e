package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Output holds both encoded files for one project. Encoding happens before
// anything touches the filesystem, so an encoding failure writes nothing.
type Output struct {
	Dir           string
	ManifestPath  string
	WorkspacePath string

	manifest  []byte
	workspace []byte
}

// Stage encodes m and ws for dir without writing them.
func Stage(dir string, m *Manifest, ws Workspace) (*Output, error) {
	pkg, err := Encode(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	cw, err := Encode(ws)
	if err != nil {
		return nil, fmt.Errorf("marshal workspace: %w", err)
	}
	return &Output{
		Dir:           dir,
		ManifestPath:  filepath.Join(dir, FileName),
		WorkspacePath: filepath.Join(dir, WorkspaceFileName(dir)),
		manifest:      pkg,
		workspace:     cw,
	}, nil
}

// MakeDir creates the project directory and any missing parents.
func (o *Output) MakeDir() error {
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	return nil
}

// WriteManifest writes package.json.
func (o *Output) WriteManifest() error {
	if err := os.WriteFile(o.ManifestPath, o.manifest, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// WriteWorkspace writes the .code-workspace file.
func (o *Output) WriteWorkspace() error {
	if err := os.WriteFile(o.WorkspacePath, o.workspace, 0o644); err != nil {
		return fmt.Errorf("write workspace: %w", err)
	}
	return nil
}

// Write creates the directory, then writes the manifest, then the workspace.
// A failure part way leaves earlier files in place.
func (o *Output) Write() error {
	if err := o.MakeDir(); err != nil {
		return err
	}
	if err := o.WriteManifest(); err != nil {
		return err
	}
	return o.WriteWorkspace()
}

// Encode renders v as compact JSON with no trailing newline. HTML-sensitive
// characters are written literally, so a description containing "&" or "<"
// round-trips unchanged.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
