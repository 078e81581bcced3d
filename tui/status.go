package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// appName labels the status bar until the session pushes a real line.
const appName = "fieldops"

// renderStatusBar produces a full-width inverted line: the operative
// summary pushed by the session on the left, scroll position on the
// right.
func (m Model) renderStatusBar() string {
	left := " " + m.status
	right := fmt.Sprintf("%3.0f%% ", m.viewport.ScrollPercent()*100)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
