package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Point      lipgloss.Style
	Bullet     lipgloss.Style
	MetricNum  lipgloss.Style
	MetricBox  lipgloss.Style
	MetricText lipgloss.Style
	Slide      lipgloss.Style
	Divider    lipgloss.Style
	Dot        lipgloss.Style
	DotActive  lipgloss.Style
	Progress   lipgloss.Style
	Hint       lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Italic(true),
		Body:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Point:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		MetricNum: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78")),
		MetricBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 2).
			MarginRight(2),
		MetricText: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Slide:      lipgloss.NewStyle().Padding(1, 4),
		Divider:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dot:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Progress:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:       lipgloss.NewStyle().Faint(true),
	}
}
