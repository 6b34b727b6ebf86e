package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kb-labs/projgen/internal/dialogue"
	"github.com/kb-labs/projgen/internal/generator"
	"github.com/kb-labs/projgen/internal/generator/node"
	"github.com/kb-labs/projgen/internal/logger"
	"github.com/kb-labs/projgen/internal/pm"
	"github.com/kb-labs/projgen/internal/prompt"
	"github.com/kb-labs/projgen/internal/registry"
	"github.com/kb-labs/projgen/internal/wizard"
)

var (
	flagYes        bool
	flagLang       string
	flagAccessible bool
	flagLogFile    string
	flagVerbose    bool
)

func init() {
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip prompts and accept every default")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "project language, one of: NodeJS, C++")
	rootCmd.Flags().BoolVar(&flagAccessible, "accessible", false, "use line-oriented prompts")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "also write log output to this file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	destination := ""
	if len(args) > 0 {
		destination = args[0]
	}

	log, err := logger.New(logger.Options{
		Writer:  cmd.ErrOrStderr(),
		File:    flagLogFile,
		Verbose: flagVerbose,
	})
	if err != nil {
		return err
	}
	defer log.Close()

	reg, err := registry.Default()
	if err != nil {
		return fmt.Errorf("load version registry: %w", err)
	}

	out := cmd.OutOrStdout()
	prompter := choosePrompter(cmd.InOrStdin(), out)
	log.Debug("prompter selected", "type", fmt.Sprintf("%T", prompter))

	ctrl := &dialogue.Controller{
		Prompter: prompter,
		Log:      log,
		Language: flagLang,
		Out:      out,
		Generators: map[string]generator.Generator{
			dialogue.LanguageNode: &node.Generator{
				Prompter: prompter,
				Registry: reg,
				Log:      log,
				OnStep:   printStep(out),
			},
		},
	}

	result, err := ctrl.Run(cmd.Context(), destination)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	printSuccess(out, result, pm.Detect())
	return nil
}

// choosePrompter picks the answer source: defaults for --yes, huh's
// accessible mode off a terminal, otherwise the Bubble Tea wizard.
func choosePrompter(in io.Reader, out io.Writer) prompt.Prompter {
	switch {
	case flagYes:
		return prompt.NewPreset()
	case flagAccessible || !isTerminal(in) || !isTerminal(out):
		return &wizard.Accessible{In: in, Out: out}
	default:
		return &wizard.TUI{Title: "projgen", In: in, Out: out}
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ── progress ──────────────────────────────────────────────────────────────────

func printStep(w io.Writer) generator.StepFunc {
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	return func(step, total int, label string) {
		fmt.Fprintf(w, "  %s [%d/%d] %s\n", ok.Render("✓"), step, total, label)
	}
}

// ── success banner ────────────────────────────────────────────────────────────

func printSuccess(w io.Writer, r *generator.Result, mgr pm.PackageManager) {
	ok := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, ok.Render("✓ Project created")+dim.Render(fmt.Sprintf("  (%s)", r.Duration.Round(time.Millisecond))))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Project:   %s\n", val.Render(r.ProjectDir))
	for _, f := range r.Files {
		fmt.Fprintf(w, "  Wrote:     %s\n", val.Render(filepath.Base(f)))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", dim.Render("Next steps:"))
	fmt.Fprintf(w, "    cd %s\n", r.ProjectDir)
	fmt.Fprintf(w, "    %s\n", mgr.InstallCommand())
	fmt.Fprintf(w, "    %s\n", mgr.RunCommand("dev"))
	fmt.Fprintln(w)
}
