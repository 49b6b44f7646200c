/*
Package widget renders an interactive typeahead box for terminal UIs.

The widget wires a text input to the suggestion state machine: typing
refilters the candidate list, tab cycles through the matches, enter accepts
the focused one, and escape or a click elsewhere dismisses the box. It is a
standard bubbletea model, so hosts embed it like any other component.
*/
package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/sberney/typeahead/pkg/config"
	"github.com/sberney/typeahead/pkg/keys"
	"github.com/sberney/typeahead/pkg/suggest"
)

// Model is the bubbletea model for the typeahead widget.
type Model struct {
	Input  textinput.Model
	KeyMap KeyMap
	Styles Styles

	controller *suggest.Controller
	maxVisible int
	highlight  bool
	lastText   string
	submitted  string
	quitting   bool
}

// Option configures the widget.
type Option func(*Model)

// WithPrompt sets the input prompt string.
func WithPrompt(s string) Option {
	return func(m *Model) {
		m.Input.Prompt = s
	}
}

// WithPlaceholder sets the input placeholder text.
func WithPlaceholder(s string) Option {
	return func(m *Model) {
		m.Input.Placeholder = s
	}
}

// WithMaxVisible caps how many suggestion rows are shown at once.
// Zero or negative means no cap.
func WithMaxVisible(n int) Option {
	return func(m *Model) {
		m.maxVisible = n
	}
}

// WithHighlight toggles bold rendering of the matched prefix.
func WithHighlight(on bool) Option {
	return func(m *Model) {
		m.highlight = on
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.KeyMap = km
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// WithWidgetConfig applies the widget section of a config file.
func WithWidgetConfig(cfg config.WidgetConfig) Option {
	return func(m *Model) {
		m.maxVisible = cfg.MaxVisible
		m.highlight = cfg.HighlightPrefix
	}
}

// New creates a typeahead widget over the given matcher.
func New(matcher suggest.IMatcher, opts ...Option) Model {
	input := textinput.New()
	input.Focus()
	input.Prompt = "> "
	input.Placeholder = "start typing"

	m := Model{
		Input:      input,
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(),
		controller: suggest.NewController(matcher),
		maxVisible: 8,
		highlight:  true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.Input.Value()
}

// Submitted returns the text confirmed with enter while no suggestion
// was focused, or "" if nothing has been submitted yet.
func (m Model) Submitted() string {
	return m.submitted
}

// State exposes the controller state for hosts that render extra chrome.
func (m Model) State() suggest.State {
	return m.controller.State()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.KeyMap.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	press := m.press(msg)
	state := m.controller.State()

	var consumed bool
	if state.Focus == suggest.FocusSuggestion {
		var err error
		consumed, err = m.controller.SuggestionKey(state.FocusedIndex, press)
		if err != nil {
			log.Errorf("Suggestion key: %v", err)
		}
	} else {
		consumed = m.controller.FieldKey(press)
	}
	if consumed {
		m.syncFromController()
		return m, nil
	}

	// Unconsumed keys fall through to the host behavior: enter submits
	// the field text as typed, escape leaves without submitting.
	switch press.Key {
	case keys.Enter:
		m.submitted = m.Input.Value()
		m.quitting = true
		return m, tea.Quit
	case keys.Escape:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.syncText()
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if index, ok := m.rowAt(msg.X, msg.Y); ok {
		if err := m.controller.ClickSuggestion(index); err != nil {
			log.Errorf("Suggestion click: %v", err)
		}
		m.syncFromController()
		return m, nil
	}
	if !m.insideWidget(msg.X, msg.Y) {
		m.controller.OutsideInteraction()
	}
	return m, nil
}

// press maps a key message onto the events the suggestion machine knows.
func (m Model) press(msg tea.KeyMsg) keys.Press {
	switch {
	case key.Matches(msg, m.KeyMap.PrevSuggestion):
		return keys.Press{Key: keys.Tab, Shift: true}
	case key.Matches(msg, m.KeyMap.NextSuggestion):
		return keys.Press{Key: keys.Tab}
	case key.Matches(msg, m.KeyMap.Accept):
		return keys.Press{Key: keys.Enter}
	case key.Matches(msg, m.KeyMap.Dismiss):
		return keys.Press{Key: keys.Escape}
	}
	return keys.Press{Key: keys.Other}
}

// syncText pushes edits from the text input into the suggestion machine.
func (m *Model) syncText() {
	if v := m.Input.Value(); v != m.lastText {
		m.lastText = v
		m.controller.SetText(v)
	}
}

// syncFromController pulls a committed suggestion back into the text input.
func (m *Model) syncFromController() {
	s := m.controller.State()
	if s.Input != m.Input.Value() {
		m.Input.SetValue(s.Input)
		m.Input.CursorEnd()
		m.lastText = s.Input
	}
}

// visibleWindow returns the [start, end) slice of suggestions on screen,
// scrolled so the focused row stays visible.
func (m Model) visibleWindow(s suggest.State) (int, int) {
	n := len(s.Suggestions)
	max := m.maxVisible
	if max <= 0 || max > n {
		max = n
	}
	start := 0
	if s.FocusedIndex >= max {
		start = s.FocusedIndex - max + 1
	}
	return start, start + max
}

// rowAt maps a screen position onto a suggestion index. Positions assume the
// widget renders at the top left, as it does under the alt screen.
func (m Model) rowAt(x, y int) (int, bool) {
	s := m.controller.State()
	if !s.BoxVisible || len(s.Suggestions) == 0 {
		return 0, false
	}
	if x >= lipgloss.Width(m.viewBox(s)) {
		return 0, false
	}
	start, end := m.visibleWindow(s)
	inputHeight := lipgloss.Height(m.Input.View())
	row := y - inputHeight - 1 // one line of top border
	if row < 0 || row >= end-start {
		return 0, false
	}
	return start + row, true
}

// insideWidget reports whether a screen position is on the widget itself,
// the input line or any part of the box including its border.
func (m Model) insideWidget(x, y int) bool {
	inputHeight := lipgloss.Height(m.Input.View())
	if y < inputHeight {
		return x < lipgloss.Width(m.Input.View())
	}
	s := m.controller.State()
	if !s.BoxVisible || len(s.Suggestions) == 0 {
		return false
	}
	start, end := m.visibleWindow(s)
	if y >= inputHeight+(end-start)+2 {
		return false
	}
	return x < lipgloss.Width(m.viewBox(s))
}

func (m Model) View() string {
	if m.quitting {
		if m.submitted != "" {
			return m.Styles.Picked.Render("picked "+m.submitted) + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Input.View())

	s := m.controller.State()
	if s.BoxVisible && len(s.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewBox(s))
	}
	return b.String()
}

// viewBox renders the visible suggestion rows inside the border.
func (m Model) viewBox(s suggest.State) string {
	start, end := m.visibleWindow(s)

	width := 0
	for i := start; i < end; i++ {
		if w := lipgloss.Width(s.Suggestions[i].String()); w > width {
			width = w
		}
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cand := s.Suggestions[i]
		if i == s.FocusedIndex {
			rows = append(rows, m.Styles.Selected.Width(width+2).Render(cand.String()))
			continue
		}
		text := cand.String()
		if m.highlight && cand.Prefix != "" {
			text = m.Styles.Matched.Render(cand.Prefix) + cand.Remainder
		}
		rows = append(rows, m.Styles.Row.Width(width+2).Render(text))
	}
	return m.Styles.Box.Render(strings.Join(rows, "\n"))
}
