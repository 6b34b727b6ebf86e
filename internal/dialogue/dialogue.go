// Package dialogue runs the top of the projgen conversation: it resolves the
// destination, asks which language the project uses and hands over to the
// generator registered for that language.
package dialogue

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kb-labs/projgen/internal/generator"
	"github.com/kb-labs/projgen/internal/logger"
	"github.com/kb-labs/projgen/internal/prompt"
)

// QuestionLanguage is the answer key of the language question.
const QuestionLanguage = "language"

const (
	LanguageNode   = "NodeJS"
	LanguageNative = "C++"
)

// Languages are the project languages offered, in display order.
var Languages = []string{LanguageNode, LanguageNative}

// Controller dispatches to a generator by language. A language listed in
// Languages but absent from Generators is reported as not yet supported.
type Controller struct {
	Prompter   prompt.Prompter
	Generators map[string]generator.Generator
	Log        *logger.Logger
	// Language, if set, answers the language question without asking.
	Language string
	// Out receives operator-facing messages. Defaults to os.Stdout.
	Out io.Writer
}

// LanguageQuestion returns the first question of every run.
func LanguageQuestion() prompt.Question {
	return prompt.Select(QuestionLanguage, "Select project type:", prompt.Choices(Languages...), LanguageNode)
}

// Run resolves destination to an absolute path and dispatches. It returns
// (nil, nil) when the chosen language has no generator; nothing is written
// in that case.
func (c *Controller) Run(ctx context.Context, destination string) (*generator.Result, error) {
	if destination == "" {
		destination = "."
	}
	projectPath, err := filepath.Abs(destination)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	language, err := c.language(ctx)
	if err != nil {
		return nil, err
	}

	gen, ok := c.Generators[language]
	if !ok {
		fmt.Fprintf(c.out(), "%s projects are not yet supported.\n", language)
		return nil, nil
	}

	c.Log.Debug("dispatching", "language", language, "path", projectPath)
	return gen.Generate(ctx, projectPath)
}

func (c *Controller) language(ctx context.Context) (string, error) {
	q := LanguageQuestion()
	if c.Language != "" {
		v, err := q.Resolve(c.Language)
		if err != nil {
			return "", fmt.Errorf("%w for %s: %v", prompt.ErrInvalidAnswer, QuestionLanguage, err)
		}
		return v, nil
	}

	answers, err := c.Prompter.Ask(ctx, []prompt.Question{q})
	if err != nil {
		return "", err
	}
	return answers.String(QuestionLanguage), nil
}

func (c *Controller) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}
