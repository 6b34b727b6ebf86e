// Package node generates NodeJS projects: it asks the npm-specific questions,
// derives package.json from the answers and writes it together with an
// editor workspace file.
package node

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kb-labs/projgen/internal/generator"
	"github.com/kb-labs/projgen/internal/logger"
	"github.com/kb-labs/projgen/internal/manifest"
	"github.com/kb-labs/projgen/internal/prompt"
	"github.com/kb-labs/projgen/internal/registry"
)

// Generator is the NodeJS project generator.
type Generator struct {
	Prompter prompt.Prompter
	Registry *registry.Registry
	Log      *logger.Logger
	OnStep   generator.StepFunc // called at each output step
}

var _ generator.Generator = (*Generator)(nil)

// Generate asks the NodeJS questions and writes package.json and the
// workspace file into projectPath. Filesystem errors are returned as-is;
// files written before the failure stay on disk.
func (g *Generator) Generate(ctx context.Context, projectPath string) (*generator.Result, error) {
	start := time.Now()

	answers, err := g.Prompter.Ask(ctx, Questions(projectPath))
	if err != nil {
		return nil, err
	}

	var dialects []string
	if answers.Has(KeyFeatures, FeatureSequelize) {
		db, err := g.Prompter.Ask(ctx, DatabaseQuestions())
		if err != nil {
			return nil, err
		}
		dialects = []string{db.String(KeyDevelopmentDB), db.String(KeyTestDB), db.String(KeyProductionDB)}
	}

	m, err := Build(answers, dialects, g.Registry)
	if err != nil {
		return nil, fmt.Errorf("build manifest: %w", err)
	}
	if err := m.Scripts.Check(); err != nil {
		g.Log.Warn("generated npm script may not run", "err", err)
	}

	out, err := manifest.Stage(projectPath, m, manifest.NewWorkspace())
	if err != nil {
		return nil, err
	}

	g.Log.Info("starting generation", "path", projectPath)

	g.step(1, 3, "Creating project directory")
	if err := out.MakeDir(); err != nil {
		return nil, err
	}

	g.step(2, 3, "Writing "+manifest.FileName)
	if err := out.WriteManifest(); err != nil {
		return nil, err
	}
	g.Log.Debug("wrote file", "path", out.ManifestPath)

	g.step(3, 3, "Writing "+filepath.Base(out.WorkspacePath))
	if err := out.WriteWorkspace(); err != nil {
		return nil, err
	}
	g.Log.Debug("wrote file", "path", out.WorkspacePath)

	return &generator.Result{
		ProjectDir: projectPath,
		Files:      []string{out.ManifestPath, out.WorkspacePath},
		Duration:   time.Since(start),
	}, nil
}

func (g *Generator) step(n, total int, label string) {
	g.Log.Debug("step", "n", n, "total", total, "label", label)
	if g.OnStep != nil {
		g.OnStep(n, total, label)
	}
}
