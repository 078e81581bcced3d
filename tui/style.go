package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleEcho = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleMenu = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	styleRoster = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleHeader = lipgloss.NewStyle().
			Bold(true)

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleNotice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindMenu
	kindRoster
	kindHeader
	kindCombat
	kindNotice
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case isNumberedChoice(line):
		return kindMenu
	case strings.HasPrefix(line, " - "):
		return kindRoster
	case line == "People here:" || line == "Available actions:":
		return kindHeader
	case strings.Contains(line, " HP: "):
		return kindCombat
	case strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")"):
		return kindNotice
	default:
		return kindNarrative
	}
}

// isNumberedChoice reports whether the line is an "N. label" menu entry.
func isNumberedChoice(line string) bool {
	dot := strings.Index(line, ". ")
	if dot <= 0 {
		return false
	}
	for _, r := range line[:dot] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindMenu:
		return styleMenu.Render(line)
	case kindRoster:
		return styleRoster.Render(line)
	case kindHeader:
		return styleHeader.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindNotice:
		return styleNotice.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
