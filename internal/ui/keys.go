package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the viewer key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Jump     key.Binding
	Status   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up", "h", "left"), key.WithHelp("↑/k", "back")),
		Down:     key.NewBinding(key.WithKeys("j", "down", "l", "right"), key.WithHelp("↓/j", "forward")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page back")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " "), key.WithHelp("pgdn", "page forward")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "start")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
		Jump:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to index")),
		Status:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Top, k.Bottom, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp},
		{k.Top, k.Bottom, k.Jump},
		{k.Status, k.Help, k.Quit},
	}
}
