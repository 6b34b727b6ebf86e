// Package pm knows how to talk about the node package managers projgen
// suggests in its next steps. Nothing here runs a package manager.
package pm

import (
	"os/exec"
)

// PackageManager describes the commands an operator types after generation.
type PackageManager interface {
	// Name returns "npm" or "pnpm".
	Name() string
	// InstallCommand installs every dependency listed in package.json.
	InstallCommand() string
	// RunCommand runs the named package.json script.
	RunCommand(script string) string
}

// LookPathFunc reports where an executable lives; exec.LookPath satisfies it.
type LookPathFunc func(file string) (string, error)

// Detect returns pnpm if it is on PATH, otherwise npm.
func Detect() PackageManager {
	return DetectWith(exec.LookPath)
}

// DetectWith is Detect with a custom lookup.
func DetectWith(lookPath LookPathFunc) PackageManager {
	if _, err := lookPath("pnpm"); err == nil {
		return &PnpmManager{}
	}
	return &NpmManager{}
}
