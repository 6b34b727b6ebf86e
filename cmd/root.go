// Package cmd implements the projgen CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo is called from main.go with values injected at build time via -ldflags.
// It must be called before Execute().
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "projgen [destination]",
	Short: "Interactive project scaffolder",
	Long: `projgen asks a few questions and writes a new project skeleton.

For NodeJS it writes package.json and a VS Code workspace file into the
destination directory (the current directory when omitted).

Examples:
  projgen my-app                 interactive prompts
  projgen my-app --yes           accept every default
  projgen my-app --lang NodeJS   skip the language question`,
	RunE:          runGenerate,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	os.Exit(Run())
}

// Run executes the root command and returns the process exit code.
func Run() int {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return 1
	}
	return 0
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
