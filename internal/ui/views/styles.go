package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Banner     lipgloss.Style
	Gutter     lipgloss.Style
	Item       lipgloss.Style
	ItemAlt    lipgloss.Style
	Chip       lipgloss.Style
	Status     lipgloss.Style
	StatusEdge lipgloss.Style
	Event      lipgloss.Style
	Error      lipgloss.Style
	Prompt     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Banner:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Gutter:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemAlt:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		Chip:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Event:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),             // green
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),            // red
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}
