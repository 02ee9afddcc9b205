package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	accentColor  = lipgloss.Color("63")
	successColor = lipgloss.Color("42")
	warnColor    = lipgloss.Color("214")
	errorColor   = lipgloss.Color("203")
	mutedColor   = lipgloss.Color("245")

	selectedStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	strikeStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	badgeStyle    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(accentColor)
	kpiStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			Align(lipgloss.Center)
)

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func chip(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(color).
		Padding(0, 1).
		Render(text)
}

// cursorPrefix marks the highlighted row of a hand-drawn list.
func cursorPrefix(active bool) string {
	if active {
		return selectedStyle.Render("> ")
	}
	return "  "
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func radio(checked bool) string {
	if checked {
		return "(•)"
	}
	return "( )"
}

// panel frames modal content, narrowing to the terminal when it is known.
func panel(width int, content string) string {
	style := panelStyle
	if width > 56 {
		cardWidth := width - 8
		if cardWidth > 84 {
			cardWidth = 84
		}
		style = style.Width(cardWidth)
	}
	rendered := style.Render(content)
	if width > 0 {
		rendered = lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered)
	}
	return rendered
}

func warnText(text string) string {
	return lipgloss.NewStyle().Foreground(warnColor).Render(text)
}

func errText(text string) string {
	return lipgloss.NewStyle().Foreground(errorColor).Bold(true).Render(text)
}
