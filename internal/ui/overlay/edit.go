package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasklyhq/taskly/internal/domain"
	"github.com/tasklyhq/taskly/internal/ui/styles"
)

// Field indexes into the edit form
const (
	fieldText = iota
	fieldNote
	fieldPriority
	fieldCategory
	fieldDueDate
	fieldColor
	fieldCount
)

var priorityCycle = []domain.Priority{
	domain.PriorityHigh,
	domain.PriorityMedium,
	domain.PriorityLow,
}

// EditForm edits a task's mutable fields. It never touches id, done,
// pinned, subtasks or createdAt; the store preserves those on save.
type EditForm struct {
	TaskID   string
	priority domain.Priority
	inputs   map[int]*textinput.Model
	focus    int
}

// NewEditForm creates a form pre-filled from the task.
func NewEditForm(t domain.Task) *EditForm {
	mk := func(placeholder, value string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = limit
		return &in
	}

	f := &EditForm{
		TaskID:   t.ID,
		priority: t.Priority,
		inputs: map[int]*textinput.Model{
			fieldText:     mk("Task", t.Text, 200),
			fieldNote:     mk("Note", t.Note, 500),
			fieldCategory: mk("Category", t.Category, 40),
			fieldDueDate:  mk("YYYY-MM-DD", t.DueDate, 10),
			fieldColor:    mk("#rrggbb", t.Color, 9),
		},
	}
	f.inputs[fieldText].Focus()
	return f
}

// Update handles key events for the form
func (f *EditForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return nil
		case "left", "right":
			if f.focus == fieldPriority {
				f.cyclePriority(key.String() == "right")
				return nil
			}
		}
	}

	if in, ok := f.inputs[f.focus]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (f *EditForm) setFocus(i int) {
	if in, ok := f.inputs[f.focus]; ok {
		in.Blur()
	}
	f.focus = i
	if in, ok := f.inputs[f.focus]; ok {
		in.Focus()
	}
}

func (f *EditForm) cyclePriority(forward bool) {
	cur := 1
	for i, p := range priorityCycle {
		if p == f.priority {
			cur = i
		}
	}
	if forward {
		cur = (cur + 1) % len(priorityCycle)
	} else {
		cur = (cur + len(priorityCycle) - 1) % len(priorityCycle)
	}
	f.priority = priorityCycle[cur]
}

// Values returns the edited field values.
func (f *EditForm) Values() (text, note string, priority domain.Priority, category, dueDate, color string) {
	return f.inputs[fieldText].Value(),
		f.inputs[fieldNote].Value(),
		f.priority,
		f.inputs[fieldCategory].Value(),
		f.inputs[fieldDueDate].Value(),
		f.inputs[fieldColor].Value()
}

// Render renders the form as an overlay box.
func (f *EditForm) Render(s *styles.Styles) string {
	row := func(idx int, label, value string) string {
		l := s.FieldLabel.Render(label)
		if idx == f.focus {
			l = s.OverlayTitle.Render(label)
		}
		return lipgloss.JoinHorizontal(lipgloss.Left, l, " ", value)
	}

	prio := f.priority.String()
	if f.focus == fieldPriority {
		prio = "◂ " + prio + " ▸"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.OverlayTitle.Render("Edit task"),
		row(fieldText, "Text:    ", f.inputs[fieldText].View()),
		row(fieldNote, "Note:    ", f.inputs[fieldNote].View()),
		row(fieldPriority, "Priority:", prio),
		row(fieldCategory, "Category:", f.inputs[fieldCategory].View()),
		row(fieldDueDate, "Due:     ", f.inputs[fieldDueDate].View()),
		row(fieldColor, "Color:   ", f.inputs[fieldColor].View()),
	)
	return s.Overlay.Render(body)
}
