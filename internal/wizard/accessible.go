package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/kb-labs/projgen/internal/prompt"
)

// Accessible asks questions one line at a time using huh's accessible mode.
// It needs no cursor control and works when stdin is a pipe.
type Accessible struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements prompt.Prompter.
func (a *Accessible) Ask(ctx context.Context, questions []prompt.Question) (*prompt.Answers, error) {
	var in io.Reader = os.Stdin
	if a.In != nil {
		in = a.In
	}
	// each form scans its own lines; reading a byte at a time keeps the
	// answers to later questions in the underlying reader.
	in = byteReader{in}

	answers := prompt.NewAnswers()
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values, err := a.ask(ctx, q, in)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, prompt.ErrCancelled
			}
			return nil, err
		}
		answers.Set(q.Key, values...)
	}
	return answers, nil
}

func (a *Accessible) ask(ctx context.Context, q prompt.Question, in io.Reader) ([]string, error) {
	var field huh.Field
	var single string
	var many []string

	switch q.Kind {
	case prompt.KindInput:
		field = huh.NewInput().
			Title(q.Message).
			Placeholder(q.Default).
			Value(&single).
			Validate(func(s string) error {
				_, err := q.Resolve(s)
				return err
			})
	case prompt.KindSelect:
		single = q.Default
		field = huh.NewSelect[string]().
			Title(q.Message).
			Options(options(q, nil)...).
			Value(&single)
	case prompt.KindMultiSelect:
		many = append(many, q.Defaults...)
		field = huh.NewMultiSelect[string]().
			Title(q.Message).
			Options(options(q, q.Defaults)...).
			Value(&many)
	default:
		return nil, fmt.Errorf("question %s: unknown kind %d", q.Key, q.Kind)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeBase()).
		WithAccessible(true).
		WithShowHelp(false).
		WithInput(in)
	if a.Out != nil {
		form = form.WithOutput(a.Out)
	}
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	if q.Kind == prompt.KindMultiSelect {
		return q.ResolveMany(many)
	}
	v, err := q.Resolve(single)
	if err != nil {
		return nil, err
	}
	return []string{v}, nil
}

func options(q prompt.Question, selected []string) []huh.Option[string] {
	opts := make([]huh.Option[string], len(q.Choices))
	for i, c := range q.Choices {
		opt := huh.NewOption(c.Label, c.Value)
		for _, s := range selected {
			if s == c.Value {
				opt = opt.Selected(true)
			}
		}
		opts[i] = opt
	}
	return opts
}

type byteReader struct {
	r io.Reader
}

func (b byteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.r.Read(p[:1])
}
