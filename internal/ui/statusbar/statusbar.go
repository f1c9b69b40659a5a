// Package statusbar renders the bottom bar: input mode, keybinding
// hints and the collection statistics.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/types"
	"github.com/tasklyhq/taskly/internal/ui/styles"
	"github.com/tasklyhq/taskly/internal/view"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	stats  view.Stats
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar
func New(mode types.Mode, stats view.Stats, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		stats:  stats,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	statsText := fmt.Sprintf("%d tasks · %d done · %d pending · %d overdue · %d%%",
		sb.stats.Total, sb.stats.Done, sb.stats.Pending, sb.stats.Overdue, sb.stats.CompletionPct)
	statsRendered := sb.styles.StatusHint.Render(statsText)

	separator := sb.styles.StatusHint.Render(" │ ")

	var content string
	if hints := Hints(sb.mode); hints != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Left,
			modeBadge, separator, statsRendered, separator, sb.styles.StatusHint.Render(hints))
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, statsRendered)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
