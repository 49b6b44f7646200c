package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sberney/typeahead/pkg/config"
	"github.com/sberney/typeahead/pkg/suggest"
)

func newBrandWidget(t *testing.T, opts ...Option) Model {
	t.Helper()
	set, err := suggest.NewCandidateSet([]string{"Audi", "Alfa Romeo", "BMW"})
	if err != nil {
		t.Fatalf("NewCandidateSet: %v", err)
	}
	return New(set, opts...)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want widget.Model", next)
	}
	return model, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, keyType tea.KeyType) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: keyType})
	return m
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m, _ = update(t, m, tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return m
}

func TestWidgetTypingShowsSuggestions(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	s := m.State()
	if !s.BoxVisible {
		t.Fatal("box hidden after typing a matching letter")
	}
	if len(s.Suggestions) != 2 {
		t.Fatalf("Suggestions = %v, want 2 entries", s.Suggestions)
	}

	view := m.View()
	if !strings.Contains(view, "udi") || !strings.Contains(view, "lfa Romeo") {
		t.Errorf("view does not show the matches:\n%s", view)
	}
}

func TestWidgetBlankInputHidesBox(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")
	m = press(t, m, tea.KeyBackspace)

	if s := m.State(); s.BoxVisible {
		t.Error("box still visible after clearing the input")
	}
	if view := m.View(); strings.Contains(view, "udi") {
		t.Errorf("view still shows matches:\n%s", view)
	}
}

func TestWidgetTabCycles(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	m = press(t, m, tea.KeyTab)
	if got := m.State().FocusedIndex; got != 0 {
		t.Fatalf("FocusedIndex = %d, want 0", got)
	}
	m = press(t, m, tea.KeyTab)
	if got := m.State().FocusedIndex; got != 1 {
		t.Fatalf("FocusedIndex = %d, want 1", got)
	}

	// Past the last row it wraps around.
	m = press(t, m, tea.KeyTab)
	if got := m.State().FocusedIndex; got != 0 {
		t.Errorf("FocusedIndex = %d, want wrap to 0", got)
	}
}

func TestWidgetShiftTabStepsBack(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")
	m = press(t, m, tea.KeyTab)

	m = press(t, m, tea.KeyShiftTab)
	s := m.State()
	if s.FocusedIndex != suggest.NoFocus {
		t.Errorf("FocusedIndex = %d, want NoFocus", s.FocusedIndex)
	}
	if s.Focus != suggest.FocusField {
		t.Errorf("Focus = %v, want the field", s.Focus)
	}
	if !s.BoxVisible {
		t.Error("box should stay open when focus returns to the field")
	}
}

func TestWidgetEnterCommitsFocusedSuggestion(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyEnter)

	if got := m.Value(); got != "Audi" {
		t.Errorf("Value() = %q, want %q", got, "Audi")
	}
	s := m.State()
	if s.BoxVisible {
		t.Error("box visible after accepting a suggestion")
	}
	if s.Focus != suggest.FocusField {
		t.Errorf("Focus = %v, want the field after commit", s.Focus)
	}
	if m.Submitted() != "" {
		t.Errorf("Submitted() = %q, accepting a suggestion is not a submit", m.Submitted())
	}
}

func TestWidgetEnterWithoutFocusSubmits(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "bmw")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Submitted(); got != "bmw" {
		t.Errorf("Submitted() = %q, want %q", got, "bmw")
	}
	if cmd == nil {
		t.Fatal("submit should end the session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("submit produced %T, want tea.QuitMsg", cmd())
	}
	if !strings.Contains(m.View(), "picked bmw") {
		t.Errorf("view does not confirm the submit:\n%s", m.View())
	}
}

func TestWidgetEscapeDismissesThenQuits(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd != nil {
		t.Fatal("first escape should be consumed by the box")
	}
	if s := m.State(); s.BoxVisible {
		t.Error("box visible after escape")
	}
	if got := m.Value(); got != "a" {
		t.Errorf("Value() = %q, escape should not clear the text", got)
	}

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("second escape should fall through to the host")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("second escape produced %T, want tea.QuitMsg", cmd())
	}
}

func TestWidgetTypingWhileRowFocused(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")
	m = press(t, m, tea.KeyTab)

	// More typing goes to the field and refilters from scratch.
	m = typeText(t, m, "l")
	if got := m.Value(); got != "al" {
		t.Fatalf("Value() = %q, want %q", got, "al")
	}
	s := m.State()
	if s.FocusedIndex != suggest.NoFocus {
		t.Errorf("FocusedIndex = %d, want NoFocus after refilter", s.FocusedIndex)
	}
	if len(s.Suggestions) != 1 || s.Suggestions[0].String() != "Alfa Romeo" {
		t.Errorf("Suggestions = %v, want only Alfa Romeo", s.Suggestions)
	}
}

func TestWidgetClickCommits(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	// Input on line 0, top border on 1, first row on 2.
	m = click(t, m, 2, 3)
	if got := m.Value(); got != "Alfa Romeo" {
		t.Errorf("Value() = %q, want %q", got, "Alfa Romeo")
	}
	if m.State().BoxVisible {
		t.Error("box visible after click commit")
	}
}

func TestWidgetClickOutsideDismisses(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	m = click(t, m, 0, 20)
	s := m.State()
	if s.BoxVisible {
		t.Error("box visible after clicking elsewhere")
	}
	if got := m.Value(); got != "a" {
		t.Errorf("Value() = %q, dismissal should not touch the text", got)
	}

	// With the box already gone, stray clicks change nothing.
	m = click(t, m, 0, 20)
	if got := m.State().Phase; got != suggest.PhaseDismissed {
		t.Errorf("Phase = %v, want %v", got, suggest.PhaseDismissed)
	}
}

func TestWidgetClickBesideBoxDismisses(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	// Row 0's screen line, but well past the box's right edge.
	m = click(t, m, lipgloss.Width(m.View())+40, 2)
	if got := m.Value(); got != "a" {
		t.Errorf("Value() = %q, a click beside the box must not commit", got)
	}
	s := m.State()
	if s.BoxVisible {
		t.Error("box visible after clicking beside it")
	}
	if s.Phase != suggest.PhaseDismissed {
		t.Errorf("Phase = %v, want %v", s.Phase, suggest.PhaseDismissed)
	}
}

func TestWidgetClickOnBorderIsInert(t *testing.T) {
	m := newBrandWidget(t)
	m = typeText(t, m, "a")

	m = click(t, m, 0, 1)
	if s := m.State(); !s.BoxVisible {
		t.Error("clicking the box border dismissed it")
	}
}

func TestWidgetMaxVisibleWindow(t *testing.T) {
	set, err := suggest.NewCandidateSet([]string{"Alpha1", "Alpha2", "Alpha3", "Alpha4"})
	if err != nil {
		t.Fatalf("NewCandidateSet: %v", err)
	}
	m := New(set, WithMaxVisible(2))
	m = typeText(t, m, "a")

	view := m.View()
	if !strings.Contains(view, "lpha1") || !strings.Contains(view, "lpha2") {
		t.Errorf("view missing the first window:\n%s", view)
	}
	if strings.Contains(view, "lpha3") {
		t.Errorf("view shows rows beyond the cap:\n%s", view)
	}

	// Focusing below the window scrolls it.
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyTab)
	view = m.View()
	if !strings.Contains(view, "lpha3") {
		t.Errorf("window did not follow the focus:\n%s", view)
	}
	if strings.Contains(view, "lpha1") {
		t.Errorf("first row still visible after scrolling:\n%s", view)
	}
}

func TestWidgetQuitKey(t *testing.T) {
	m := newBrandWidget(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c produced %T, want tea.QuitMsg", cmd())
	}
	if got := m.View(); got != "" {
		t.Errorf("View() after quit = %q, want empty", got)
	}
}

func TestWidgetConfigOption(t *testing.T) {
	m := newBrandWidget(t, WithWidgetConfig(config.WidgetConfig{
		MaxVisible:      1,
		HighlightPrefix: false,
	}))

	m = typeText(t, m, "a")
	view := m.View()
	if !strings.Contains(view, "Audi") {
		t.Errorf("view missing the only visible row:\n%s", view)
	}
	if strings.Contains(view, "lfa Romeo") {
		t.Errorf("view shows more rows than configured:\n%s", view)
	}
}
