package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/domain"
)

// Palette is the set of colors a theme provides
type Palette struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Yellow  lipgloss.Color
	Green   lipgloss.Color
	Red     lipgloss.Color
	Peach   lipgloss.Color
	Blue    lipgloss.Color
}

// Dark is the default palette (Catppuccin Macchiato)
func Dark() Palette {
	return Palette{
		Base:    lipgloss.Color("#24273a"),
		Surface: lipgloss.Color("#363a4f"),
		Border:  lipgloss.Color("#494d64"),
		Text:    lipgloss.Color("#cad3f5"),
		Subtext: lipgloss.Color("#a5adcb"),
		Muted:   lipgloss.Color("#6e738d"),
		Accent:  lipgloss.Color("#c6a0f6"),
		Yellow:  lipgloss.Color("#eed49f"),
		Green:   lipgloss.Color("#a6da95"),
		Red:     lipgloss.Color("#ed8796"),
		Peach:   lipgloss.Color("#f5a97f"),
		Blue:    lipgloss.Color("#8aadf4"),
	}
}

// Light is the light palette (Catppuccin Latte)
func Light() Palette {
	return Palette{
		Base:    lipgloss.Color("#eff1f5"),
		Surface: lipgloss.Color("#ccd0da"),
		Border:  lipgloss.Color("#acb0be"),
		Text:    lipgloss.Color("#4c4f69"),
		Subtext: lipgloss.Color("#5c5f77"),
		Muted:   lipgloss.Color("#9ca0b0"),
		Accent:  lipgloss.Color("#8839ef"),
		Yellow:  lipgloss.Color("#df8e1d"),
		Green:   lipgloss.Color("#40a02b"),
		Red:     lipgloss.Color("#d20f39"),
		Peach:   lipgloss.Color("#fe640b"),
		Blue:    lipgloss.Color("#1e66f5"),
	}
}

// CategoryColors maps the preset categories to their accent colors.
// Unknown categories fall back to gray.
var CategoryColors = map[string]lipgloss.Color{
	"work":     lipgloss.Color("#5b8dee"),
	"personal": lipgloss.Color("#e07b39"),
	"health":   lipgloss.Color("#52c98a"),
	"shopping": lipgloss.Color("#a86ee0"),
	"study":    lipgloss.Color("#f4c430"),
	"finance":  lipgloss.Color("#e05252"),
}

// CategoryColor returns the preset color for a category, or the
// fallback gray for unknown ones.
func CategoryColor(category string) lipgloss.Color {
	if c, ok := CategoryColors[category]; ok {
		return c
	}
	return lipgloss.Color("#888888")
}

// PriorityColor returns the badge color for a priority level.
func (p Palette) PriorityColor(priority domain.Priority) lipgloss.Color {
	switch priority {
	case domain.PriorityHigh:
		return p.Red
	case domain.PriorityLow:
		return p.Green
	default:
		return p.Yellow
	}
}
