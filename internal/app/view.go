package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/domain"
	"github.com/tasklyhq/taskly/internal/types"
	"github.com/tasklyhq/taskly/internal/ui/list"
	"github.com/tasklyhq/taskly/internal/ui/statusbar"
	"github.com/tasklyhq/taskly/internal/ui/styles"
	uitoast "github.com/tasklyhq/taskly/internal/ui/toast"
)

var statusFilters = []domain.StatusFilter{
	domain.FilterAll,
	domain.FilterActive,
	domain.FilterDone,
	domain.FilterOverdue,
	domain.FilterPinned,
}

// View renders the whole application
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	header := m.renderHeader()
	tabs := m.renderTabs()
	chips := m.renderChips()
	inputLine := m.renderInputLine()

	bar := statusbar.New(m.mode, m.result.Stats, m.width, m.styles).Render()

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(tabs) + lipgloss.Height(bar) + 1
	if chips != "" {
		chromeHeight += lipgloss.Height(chips)
	}
	if inputLine != "" {
		chromeHeight += lipgloss.Height(inputLine)
	}

	var body string
	switch {
	case m.showHelp:
		body = m.renderHelp()
	case m.mode == types.ModeEdit && m.editForm != nil:
		body = m.editForm.Render(m.styles)
	case m.mode == types.ModeConfirm:
		body = m.confirm.Render(m.styles)
	default:
		body = list.New(m.result.Tasks, m.cursor, m.width, m.height-chromeHeight, m.clock, m.styles).Render()
	}

	sections := []string{header, tabs}
	if chips != "" {
		sections = append(sections, chips)
	}
	if inputLine != "" {
		sections = append(sections, inputLine)
	}
	sections = append(sections, body)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the status bar to the bottom
	gap := m.height - lipgloss.Height(content) - lipgloss.Height(bar)
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, content, bar)

	if toasts := uitoast.New(m.styles).Render(m.toasts, m.width); toasts != "" {
		out = lipgloss.JoinVertical(lipgloss.Right, out, toasts)
	}

	return out
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Taskly")

	s := m.result.Stats
	progress := m.styles.Progress.Render(renderProgressBar(s.CompletionPct, 20))
	stats := m.styles.StatsLabel.Render(fmt.Sprintf(" %d%% of %d tasks done", s.CompletionPct, s.Total))

	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", progress, stats)
}

func renderProgressBar(pct, width int) string {
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, f := range statusFilters {
		style := m.styles.Tab
		if f == m.criteria.Status {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(f.String()))
	}
	tabs = append(tabs, m.styles.StatusHint.Render("  sort: "+m.criteria.Sort.Label()))
	return lipgloss.JoinHorizontal(lipgloss.Left, tabs...)
}

func (m Model) renderChips() string {
	cats := m.result.Categories
	if len(cats) == 0 {
		return ""
	}

	allStyle := m.styles.Chip
	if m.criteria.Category == "" {
		allStyle = m.styles.ChipActive
	}
	chips := []string{allStyle(m.styles.Palette.Accent).Render("All")}

	for _, cat := range cats {
		color := styles.CategoryColor(cat)
		style := m.styles.Chip
		if cat == m.criteria.Category {
			style = m.styles.ChipActive
		}
		label := cat
		if emoji := domain.CategoryEmoji(cat); emoji != "" {
			label = emoji + " " + label
		}
		chips = append(chips, style(color).Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, chips...)
}

func (m Model) renderInputLine() string {
	switch m.mode {
	case types.ModeInput:
		prio := m.styles.PriorityBadge(m.addPriority).Render(m.addPriority.String())
		return lipgloss.JoinHorizontal(lipgloss.Left, m.input.View(), " ", prio)
	case types.ModeSearch:
		return m.searchInput.View()
	case types.ModeSubtask:
		return m.subInput.View()
	}
	if m.criteria.Search != "" {
		return m.styles.StatusHint.Render("search: " + m.criteria.Search + "  (/ to change, esc to clear)")
	}
	return ""
}

func (m Model) renderHelp() string {
	rows := []string{
		m.styles.OverlayTitle.Render("Keybindings"),
		"a        add task          /        search",
		"x/space  toggle done       p        toggle pin",
		"e        edit task         d        delete task",
		"s        add subtask       1-9      toggle subtask",
		"alt+1-9  delete subtask    J/K      move task (manual)",
		"f        cycle filter      c        cycle category",
		"o        cycle sort        ctrl+p   new-task priority",
		"M        mark all          D        clear done",
		"X        clear all         t        toggle theme",
		"E        export backup     I        import backup",
		"q        quit",
	}
	return m.styles.Overlay.Render(strings.Join(rows, "\n"))
}
