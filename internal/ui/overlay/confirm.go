// Package overlay contains modal components drawn over the task list.
package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/ui/styles"
)

// Confirm is a yes/no prompt shown before destructive operations.
// The presentation layer owns confirmation; the store never asks.
type Confirm struct {
	Title   string
	Message string
}

// NewConfirm creates a confirmation prompt.
func NewConfirm(title, message string) Confirm {
	return Confirm{Title: title, Message: message}
}

// Render renders the dialog box.
func (c Confirm) Render(s *styles.Styles) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.OverlayTitle.Render(c.Title),
		c.Message,
		"",
		s.StatusHint.Render("y: yes · n: no"),
	)
	return s.Overlay.Render(body)
}
