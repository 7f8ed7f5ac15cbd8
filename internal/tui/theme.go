package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the palette. Colors follow the mobile app's
// blue scheme.
type Theme struct {
	Background lipgloss.Color
	Card       lipgloss.Color
	CardText   lipgloss.Color
	Title      lipgloss.Color
	Faint      lipgloss.Color
	Accent     lipgloss.Color
	Edit       lipgloss.Color
	Danger     lipgloss.Color
	Input      lipgloss.Color
}

var DefaultTheme = Theme{
	Background: lipgloss.Color("#1e3a8a"),
	Card:       lipgloss.Color("#3b82f6"),
	CardText:   lipgloss.Color("#e0f2fe"),
	Title:      lipgloss.Color("#ffffff"),
	Faint:      lipgloss.Color("#cbd5e1"),
	Accent:     lipgloss.Color("#2563eb"),
	Edit:       lipgloss.Color("#60a5fa"),
	Danger:     lipgloss.Color("#f87171"),
	Input:      lipgloss.Color("#1e40af"),
}

func (t Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title)
}

func (t Theme) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Faint)
}

func (t Theme) card(width int, selected bool) lipgloss.Style {
	border := t.Card
	if selected {
		border = t.Title
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(t.CardText).
		Padding(0, 1).
		Width(width)
}

func (t Theme) cardTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title)
}

func (t Theme) dialog(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Padding(1, 2)
}

func (t Theme) label() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title)
}

func (t Theme) button(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title).Background(bg).Padding(0, 2)
}
