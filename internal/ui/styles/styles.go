// Package styles defines the lipgloss styles shared by all UI
// components, themed from a Palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/config"
	"github.com/tasklyhq/taskly/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	Palette Palette

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Stats bar
	StatsLabel lipgloss.Style
	StatsValue lipgloss.Style
	Progress   lipgloss.Style

	// Filter tabs and category chips
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Chip       func(color lipgloss.Color) lipgloss.Style
	ChipActive func(color lipgloss.Color) lipgloss.Style

	// Task cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	TaskText     lipgloss.Style
	TaskTextDone lipgloss.Style
	Meta         lipgloss.Style
	Note         lipgloss.Style
	DueNormal    lipgloss.Style
	DueSoon      lipgloss.Style
	DueOverdue   lipgloss.Style
	Subtask      lipgloss.Style
	SubtaskDone  lipgloss.Style

	// Badges
	PriorityBadge func(p domain.Priority) lipgloss.Style
	CategoryBadge func(category string) lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	FieldLabel   lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// ForTheme creates the Styles for a theme preference.
func ForTheme(theme config.Theme) *Styles {
	if theme == config.ThemeLight {
		return New(Light())
	}
	return New(Dark())
}

// New creates a new Styles instance from a palette
func New(p Palette) *Styles {
	badge := lipgloss.NewStyle().
		Foreground(p.Base).
		Padding(0, 1).
		Bold(true)

	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		StatsLabel: lipgloss.NewStyle().
			Foreground(p.Subtext),

		StatsValue: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),

		Progress: lipgloss.NewStyle().
			Foreground(p.Green),

		Tab: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),

		Chip: func(color lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(color).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(color).
				Padding(0, 1)
		},

		ChipActive: func(color lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(p.Base).
				Background(color).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(color).
				Padding(0, 1)
		},

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),

		TaskText: lipgloss.NewStyle().
			Foreground(p.Text),

		TaskTextDone: lipgloss.NewStyle().
			Foreground(p.Muted).
			Strikethrough(true),

		Meta: lipgloss.NewStyle().
			Foreground(p.Muted),

		Note: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Italic(true),

		DueNormal: lipgloss.NewStyle().
			Foreground(p.Subtext),

		DueSoon: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		DueOverdue: lipgloss.NewStyle().
			Foreground(p.Red).
			Bold(true),

		Subtask: lipgloss.NewStyle().
			Foreground(p.Subtext),

		SubtaskDone: lipgloss.NewStyle().
			Foreground(p.Muted).
			Strikethrough(true),

		PriorityBadge: func(priority domain.Priority) lipgloss.Style {
			return badge.Background(p.PriorityColor(priority))
		},

		CategoryBadge: func(category string) lipgloss.Style {
			return badge.Background(CategoryColor(category))
		},

		StatusBar: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Subtext).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(p.Blue).
			Foreground(p.Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(p.Muted),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(p.Subtext),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Blue).
			Foreground(p.Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Green).
			Foreground(p.Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Yellow).
			Foreground(p.Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Red).
			Foreground(p.Red).
			Padding(0, 1),
	}
}
