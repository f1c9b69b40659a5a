// Package list renders the scrolling task list.
package list

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/domain"
	"github.com/tasklyhq/taskly/internal/ui/styles"
)

// List renders a sequence of task cards with one cursor position
type List struct {
	tasks  []domain.Task
	cursor int
	width  int
	height int
	clock  domain.Clock
	styles *styles.Styles
}

// New creates a list renderer for the given view output.
func New(tasks []domain.Task, cursor, width, height int, clock domain.Clock, styles *styles.Styles) List {
	return List{
		tasks:  tasks,
		cursor: cursor,
		width:  width,
		height: height,
		clock:  clock,
		styles: styles,
	}
}

// Render renders the visible window of the task list.
func (l List) Render() string {
	if len(l.tasks) == 0 {
		return l.styles.Subtitle.Render("No tasks here — press 'a' to add one")
	}

	today := domain.Today(l.clock)
	cardWidth := l.width - 2

	var cards []string
	used := 0
	for i := visibleStart(l.cursor, len(l.tasks)); i < len(l.tasks); i++ {
		t := l.tasks[i]
		card := renderCard(t, i == l.cursor, cardWidth, today, domain.TimeAgo(t.CreatedAt, l.clock), l.styles)
		h := lipgloss.Height(card)
		if used+h > l.height && len(cards) > 0 {
			break
		}
		used += h
		cards = append(cards, card)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// visibleStart keeps the cursor inside the rendered window by starting
// a few cards above it.
func visibleStart(cursor, count int) int {
	start := cursor - 2
	if start < 0 {
		start = 0
	}
	if start >= count {
		start = count - 1
	}
	return start
}
