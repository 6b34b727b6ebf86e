// Package generator defines the contract between the dialogue controller and
// the per-ecosystem project generators.
package generator

import (
	"context"
	"time"
)

// Generator asks its own questions and materializes a project at
// projectPath, which is always absolute.
type Generator interface {
	Generate(ctx context.Context, projectPath string) (*Result, error)
}

// StepFunc is called as a generator moves through its output steps.
type StepFunc func(step, total int, label string)

// Result describes a generated project.
type Result struct {
	ProjectDir string
	Files      []string // absolute paths, in write order
	Duration   time.Duration
}
