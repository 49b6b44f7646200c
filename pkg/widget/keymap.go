package widget

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings for the typeahead widget.
type KeyMap struct {
	NextSuggestion key.Binding
	PrevSuggestion key.Binding
	Accept         key.Binding
	Dismiss        key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSuggestion: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next suggestion"),
		),
		PrevSuggestion: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev suggestion"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.NextSuggestion, km.PrevSuggestion, km.Accept, km.Dismiss}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.NextSuggestion, km.PrevSuggestion},
		{km.Accept, km.Dismiss, km.Quit},
	}
}
