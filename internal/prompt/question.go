package prompt

import (
	"fmt"
	"slices"
	"strings"
)

// Kind selects how a question is answered.
type Kind int

const (
	KindInput       Kind = iota // free text
	KindSelect                  // exactly one choice
	KindMultiSelect             // any subset of choices
)

// Choice is one option of a select question. Value is what lands in the
// answer set; Label is what the operator sees.
type Choice struct {
	Label string
	Value string
}

// Choices builds choices whose label and value are the same string.
func Choices(values ...string) []Choice {
	out := make([]Choice, len(values))
	for i, v := range values {
		out[i] = Choice{Label: v, Value: v}
	}
	return out
}

// Question is a single prompt.
type Question struct {
	Key     string
	Kind    Kind
	Message string
	// Default is used for input and select questions when the answer is empty.
	Default string
	// Defaults are the choices pre-selected in a multi-select question.
	Defaults []string
	Choices  []Choice
	// Validate, if set, checks input answers after the default is applied.
	Validate func(string) error
}

// Input returns a free-text question.
func Input(key, message, def string) Question {
	return Question{Key: key, Kind: KindInput, Message: message, Default: def}
}

// Select returns a single-choice question.
func Select(key, message string, choices []Choice, def string) Question {
	return Question{Key: key, Kind: KindSelect, Message: message, Choices: choices, Default: def}
}

// MultiSelect returns a question whose answer is any subset of choices.
func MultiSelect(key, message string, choices []Choice, defaults ...string) Question {
	return Question{Key: key, Kind: KindMultiSelect, Message: message, Choices: choices, Defaults: defaults}
}

// WithValidate returns a copy of q that checks answers with fn.
func (q Question) WithValidate(fn func(string) error) Question {
	q.Validate = fn
	return q
}

// ChoiceIndex returns the position of the choice whose value or label is v,
// or -1.
func (q Question) ChoiceIndex(v string) int {
	return slices.IndexFunc(q.Choices, func(c Choice) bool {
		return c.Value == v || c.Label == v
	})
}

// Label returns the display label for value, or value itself when no
// choice matches.
func (q Question) Label(value string) string {
	if i := q.ChoiceIndex(value); i >= 0 {
		return q.Choices[i].Label
	}
	return value
}

// Resolve turns a raw single answer into the stored value. An empty answer
// takes the default. Input answers then go through Validate; select answers
// must name one of the choices, by value or label.
func (q Question) Resolve(raw string) (string, error) {
	v := raw
	if v == "" {
		v = q.Default
	}

	switch q.Kind {
	case KindInput:
		if q.Validate != nil {
			if err := q.Validate(v); err != nil {
				return "", err
			}
		}
		return v, nil
	case KindSelect:
		i := q.ChoiceIndex(v)
		if i < 0 {
			return "", fmt.Errorf("%q is not one of: %s", v, q.labels())
		}
		return q.Choices[i].Value, nil
	default:
		return "", fmt.Errorf("question %s takes multiple answers", q.Key)
	}
}

// ResolveMany validates a multi-select answer. Values may be given by value
// or label; the result holds each selected value once, in choice order.
// An empty selection is valid.
func (q Question) ResolveMany(raw []string) ([]string, error) {
	if q.Kind != KindMultiSelect {
		return nil, fmt.Errorf("question %s takes a single answer", q.Key)
	}

	picked := make([]bool, len(q.Choices))
	for _, v := range raw {
		i := q.ChoiceIndex(v)
		if i < 0 {
			return nil, fmt.Errorf("%q is not one of: %s", v, q.labels())
		}
		picked[i] = true
	}

	out := []string{}
	for i, c := range q.Choices {
		if picked[i] {
			out = append(out, c.Value)
		}
	}
	return out, nil
}

func (q Question) labels() string {
	labels := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		labels[i] = c.Label
	}
	return strings.Join(labels, ", ")
}
