package prompt

import (
	"context"
	"fmt"
)

// Preset answers questions from a fixed table without operator interaction.
// Questions missing from the table take their defaults, so an empty Preset
// accepts every default. Since nobody can be asked again, an answer that
// fails validation is an error wrapping ErrInvalidAnswer.
type Preset struct {
	values map[string][]string
	asked  []string
}

// NewPreset returns a Preset with no answers set.
func NewPreset() *Preset {
	return &Preset{values: make(map[string][]string)}
}

// Set records the answer for key and returns p for chaining. For a
// multi-select question, calling Set with no values selects nothing.
func (p *Preset) Set(key string, values ...string) *Preset {
	p.values[key] = append([]string{}, values...)
	return p
}

// Asked returns the keys of every question asked so far, in order.
func (p *Preset) Asked() []string {
	return append([]string{}, p.asked...)
}

// Ask implements Prompter.
func (p *Preset) Ask(ctx context.Context, questions []Question) (*Answers, error) {
	answers := NewAnswers()
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.asked = append(p.asked, q.Key)

		raw, ok := p.values[q.Key]
		if q.Kind == KindMultiSelect {
			if !ok {
				raw = q.Defaults
			}
			values, err := q.ResolveMany(raw)
			if err != nil {
				return nil, fmt.Errorf("%w for %s: %v", ErrInvalidAnswer, q.Key, err)
			}
			answers.Set(q.Key, values...)
			continue
		}

		var v string
		if len(raw) > 0 {
			v = raw[0]
		}
		got, err := q.Resolve(v)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %v", ErrInvalidAnswer, q.Key, err)
		}
		answers.Set(q.Key, got)
	}
	return answers, nil
}
