// Package wizard renders prompt questions on a terminal. TUI is a Bubble Tea
// program that walks the questions one at a time, keeping earlier answers on
// screen. Accessible uses huh in line-oriented mode for screen readers,
// pipes and dumb terminals.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kb-labs/projgen/internal/prompt"
)

// TUI asks questions with a full-screen-style terminal UI.
type TUI struct {
	// Title is shown above every question.
	Title string
	// AltScreen runs each batch of questions in the alternate screen buffer.
	AltScreen bool
	// In and Out override the terminal; nil means stdin and stdout.
	In  io.Reader
	Out io.Writer
}

// Ask implements prompt.Prompter. A rejected answer is shown with its
// validation message and asked again; esc or ctrl+c returns
// prompt.ErrCancelled.
func (t *TUI) Ask(ctx context.Context, questions []prompt.Question) (*prompt.Answers, error) {
	if len(questions) == 0 {
		return prompt.NewAnswers(), nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}
	if t.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(newModel(t.Title, questions), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, prompt.ErrCancelled
		}
		return nil, fmt.Errorf("run prompts: %w", err)
	}
	result := final.(wizardModel)
	if result.cancelled {
		return nil, prompt.ErrCancelled
	}
	return result.answers, nil
}

// ── styles ────────────────────────────────────────────────────────────────────

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = dimStyle
)

// ── model ─────────────────────────────────────────────────────────────────────

type wizardModel struct {
	answers   *prompt.Answers
	title     string
	errMsg    string
	questions []prompt.Question
	checked   []bool // multi-select state of the current question
	input     textinput.Model
	index     int
	cursor    int
	cancelled bool
	done      bool
}

func newModel(title string, questions []prompt.Question) wizardModel {
	ti := textinput.New()
	ti.Width = 50

	m := wizardModel{
		title:     title,
		questions: questions,
		answers:   prompt.NewAnswers(),
		input:     ti,
	}
	m.enter(0)
	return m
}

// enter prepares the widgets for question i.
func (m *wizardModel) enter(i int) {
	m.index = i
	m.errMsg = ""
	m.cursor = 0
	m.checked = nil
	if i >= len(m.questions) {
		return
	}

	q := m.questions[i]
	switch q.Kind {
	case prompt.KindInput:
		m.input.Reset()
		m.input.Placeholder = q.Default
		m.input.Focus()
	case prompt.KindSelect:
		m.input.Blur()
		if idx := q.ChoiceIndex(q.Default); idx >= 0 {
			m.cursor = idx
		}
	case prompt.KindMultiSelect:
		m.input.Blur()
		m.checked = make([]bool, len(q.Choices))
		for _, d := range q.Defaults {
			if idx := q.ChoiceIndex(d); idx >= 0 {
				m.checked[idx] = true
			}
		}
	}
}

func (m wizardModel) current() prompt.Question {
	return m.questions[m.index]
}

// ── tea.Model interface ───────────────────────────────────────────────────────

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done || m.cancelled {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	// forward blink and other ticks to the text input
	var cmd tea.Cmd
	if m.current().Kind == prompt.KindInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m wizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	}

	switch m.current().Kind {
	case prompt.KindInput:
		return m.handleInputKey(msg)
	case prompt.KindSelect:
		return m.handleSelectKey(msg)
	case prompt.KindMultiSelect:
		return m.handleMultiKey(msg)
	}
	return m, nil
}

func (m wizardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		v, err := m.current().Resolve(m.input.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.advance(v)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m wizardModel) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.current()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Choices)-1 {
			m.cursor++
		}
	case "enter":
		v, err := q.Resolve(q.Choices[m.cursor].Value)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.advance(v)
	}
	return m, nil
}

func (m wizardModel) handleMultiKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.current()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Choices)-1 {
			m.cursor++
		}
	case " ":
		m.checked[m.cursor] = !m.checked[m.cursor]
	case "enter":
		var picked []string
		for i, c := range q.Choices {
			if m.checked[i] {
				picked = append(picked, c.Value)
			}
		}
		values, err := q.ResolveMany(picked)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		return m.advance(values...)
	}
	return m, nil
}

// advance records the answer to the current question and moves on, quitting
// after the last one.
func (m wizardModel) advance(values ...string) (tea.Model, tea.Cmd) {
	m.answers.Set(m.current().Key, values...)
	if m.index+1 >= len(m.questions) {
		m.done = true
		return m, tea.Quit
	}
	m.enter(m.index + 1)
	if m.current().Kind == prompt.KindInput {
		return m, textinput.Blink
	}
	return m, nil
}

// ── View ──────────────────────────────────────────────────────────────────────

func (m wizardModel) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render("  "+m.title) + "\n\n")
	}

	for _, q := range m.questions[:m.index] {
		b.WriteString(m.renderAnswered(q))
	}
	if m.done || m.cancelled {
		if m.done && m.index < len(m.questions) {
			b.WriteString(m.renderAnswered(m.current()))
		}
		return b.String()
	}

	q := m.current()
	b.WriteString("  " + sectionStyle.Render(q.Message) + "\n")
	switch q.Kind {
	case prompt.KindInput:
		b.WriteString("  " + m.input.View() + "\n")
	case prompt.KindSelect:
		for i, c := range q.Choices {
			b.WriteString(m.renderItem(i, c.Label, i == m.cursor))
		}
	case prompt.KindMultiSelect:
		for i, c := range q.Choices {
			b.WriteString(m.renderItem(i, c.Label, m.checked[i]))
		}
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("  " + errorStyle.Render("✖ "+m.errMsg) + "\n\n")
	}

	b.WriteString(helpStyle.Render("  " + helpText(q.Kind)))
	return b.String()
}

func (m wizardModel) renderAnswered(q prompt.Question) string {
	values := m.answers.Strings(q.Key)
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = q.Label(v)
	}
	return fmt.Sprintf("  %s %s %s\n",
		selectedStyle.Render("✔"),
		normalStyle.Render(q.Message),
		focusStyle.Render(strings.Join(labels, ", ")),
	)
}

func (m wizardModel) renderItem(idx int, label string, marked bool) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = focusStyle.Render(" ▶")
	}
	check := "○"
	style := normalStyle
	if marked {
		check = selectedStyle.Render("◉")
		style = selectedStyle
	}
	return fmt.Sprintf("%s %s  %s\n", cursor, check, style.Render(label))
}

func helpText(kind prompt.Kind) string {
	switch kind {
	case prompt.KindSelect:
		return "↑↓ move · enter select · esc quit"
	case prompt.KindMultiSelect:
		return "↑↓ move · space toggle · enter confirm · esc quit"
	default:
		return "enter accept · esc quit"
	}
}
