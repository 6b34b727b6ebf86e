// Package prompt describes the questions a generator asks and the answers it
// gets back. It is independent of how questions are presented: the wizard
// package renders them on a terminal, Preset answers them from a table.
package prompt

import (
	"context"
	"errors"
)

var (
	// ErrCancelled is returned when the operator aborts a prompt sequence.
	ErrCancelled = errors.New("prompt cancelled")
	// ErrInvalidAnswer is returned when a non-interactive answer fails
	// validation and cannot be asked again.
	ErrInvalidAnswer = errors.New("invalid answer")
)

// Prompter asks questions in order and returns one answer per question.
// Implementations block until every question is answered, the operator
// cancels, or ctx is done.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (*Answers, error)
}
