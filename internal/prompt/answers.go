package prompt

import "slices"

// Answers maps question keys to answers, in the order the questions were
// answered. Single answers are stored as one-element lists.
type Answers struct {
	keys   []string
	values map[string][]string
}

// NewAnswers returns an empty answer set.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string][]string)}
}

// Set records the answer for key. Setting a key again replaces its value
// but keeps its original position.
func (a *Answers) Set(key string, values ...string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = append([]string{}, values...)
}

// String returns the single answer for key, or "" if unanswered.
func (a *Answers) String(key string) string {
	if v := a.values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Strings returns every value answered for key.
func (a *Answers) Strings(key string) []string {
	return slices.Clone(a.values[key])
}

// Has reports whether value is among the answers for key.
func (a *Answers) Has(key, value string) bool {
	return slices.Contains(a.values[key], value)
}

// Keys returns the answered keys in order.
func (a *Answers) Keys() []string {
	return slices.Clone(a.keys)
}

// Len returns the number of answered questions.
func (a *Answers) Len() int {
	return len(a.keys)
}
