package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/domain"
	"github.com/tasklyhq/taskly/internal/ui/styles"
)

// renderCard renders a single task card
func renderCard(task domain.Task, isCursor bool, width int, today string, age string, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardSelected
	}
	cardStyle = cardStyle.Width(width)

	// Header line: check mark, pin, text, badges
	check := "○"
	textStyle := s.TaskText
	if task.Done {
		check = "●"
		textStyle = s.TaskTextDone
	}

	pin := ""
	if task.Pinned {
		pin = "📌 "
	}

	cursor := ""
	if isCursor {
		cursor = "▶ "
	}

	maxTextLen := width - 8
	text := task.Text
	if len(text) > maxTextLen && maxTextLen > 1 {
		text = text[:maxTextLen-1] + "…"
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		cursor+check+" ", pin, textStyle.Render(text))

	// Imported tasks may carry no priority; skip the badge then
	if p := task.Priority.String(); p != "" {
		badge := s.PriorityBadge(task.Priority).Render(strings.ToUpper(p[:1]) + p[1:])
		headerLine = lipgloss.JoinHorizontal(lipgloss.Left, headerLine, " ", badge)
	}

	if task.Category != "" {
		label := task.Category
		if emoji := domain.CategoryEmoji(task.Category); emoji != "" {
			label = emoji + " " + label
		}
		headerLine = lipgloss.JoinHorizontal(lipgloss.Left,
			headerLine, " ", s.CategoryBadge(task.Category).Render(label))
	}

	// Meta line: due date, subtask progress, age
	var meta []string
	if task.DueDate != "" {
		switch {
		case domain.IsOverdue(task, today):
			meta = append(meta, s.DueOverdue.Render("⚠ "+task.DueDate))
		case domain.IsDueSoon(task, today):
			meta = append(meta, s.DueSoon.Render("⏰ due "+task.DueDate))
		default:
			meta = append(meta, s.DueNormal.Render("📅 "+task.DueDate))
		}
	}
	if done, total := task.SubtaskProgress(); total > 0 {
		meta = append(meta, s.Meta.Render(fmt.Sprintf("📎 %d/%d subtasks", done, total)))
	}
	meta = append(meta, s.Meta.Render("added "+age))

	lines := []string{headerLine, strings.Join(meta, "  ")}

	if task.Note != "" {
		lines = append(lines, s.Note.Render("📝 "+task.Note))
	}

	// Subtask rows only on the focused card, to keep the list compact
	if isCursor {
		for _, sub := range task.Subtasks {
			mark, style := "○", s.Subtask
			if sub.Done {
				mark, style = "●", s.SubtaskDone
			}
			lines = append(lines, style.Render("  "+mark+" "+sub.Text))
		}
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, width int, today string, age string, s *styles.Styles) string {
	return renderCard(task, isCursor, width, today, age, s)
}
