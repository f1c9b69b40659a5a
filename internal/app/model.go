// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tasklyhq/taskly/internal/config"
	"github.com/tasklyhq/taskly/internal/domain"
	"github.com/tasklyhq/taskly/internal/storage"
	"github.com/tasklyhq/taskly/internal/store"
	"github.com/tasklyhq/taskly/internal/types"
	"github.com/tasklyhq/taskly/internal/ui/overlay"
	"github.com/tasklyhq/taskly/internal/ui/styles"
	"github.com/tasklyhq/taskly/internal/view"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

const backupFile = "taskly-backup.json"

// toastTickMsg prunes expired toasts
type toastTickMsg time.Time

// Model is the main application state
type Model struct {
	// Core data
	store  *store.Store
	engine *view.Engine
	clock  domain.Clock

	// Persistence
	fileStore *storage.FileStore
	cfg       *config.Config

	// View state
	criteria domain.Criteria
	result   view.Result
	cursor   int

	// Input mode state
	mode        types.Mode
	input       textinput.Model // add task
	searchInput textinput.Model
	subInput    textinput.Model // add subtask
	editForm    *overlay.EditForm
	confirm     overlay.Confirm
	onConfirm   func() Toast
	showHelp    bool
	addPriority domain.Priority

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	// Styles
	styles *styles.Styles

	// Logger
	logger *slog.Logger
}

// New creates the application model, loading persisted tasks and the
// theme preference.
func New(cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	clock := domain.SystemClock{}

	fileStore := storage.NewFileStore(cfg.DataDir, logger)
	st := store.New(clock, fileStore, logger)
	st.Seed(fileStore.Load())

	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200

	searchInput := textinput.New()
	searchInput.Placeholder = "Search tasks, notes, categories…"
	searchInput.CharLimit = 100

	subInput := textinput.New()
	subInput.Placeholder = "Add subtask…"
	subInput.CharLimit = 100

	engine := view.NewEngine(clock)

	m := Model{
		store:       st,
		engine:      engine,
		clock:       clock,
		fileStore:   fileStore,
		cfg:         cfg,
		input:       input,
		searchInput: searchInput,
		subInput:    subInput,
		addPriority: domain.PriorityMedium,
		styles:      styles.ForTheme(cfg.Theme),
		logger:      logger,
	}
	m.recompute()
	m.pushToast(ToastInfo, "👋 Welcome to Taskly!")
	return m
}

// Init starts the toast expiry ticker
func (m Model) Init() tea.Cmd {
	return tickToasts()
}

func tickToasts() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// Update handles all events
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastTickMsg:
		now := time.Time(msg)
		kept := m.toasts[:0]
		for _, t := range m.toasts {
			if t.Expires.After(now) {
				kept = append(kept, t)
			}
		}
		m.toasts = kept
		return m, tickToasts()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case types.ModeInput:
		return m.updateInputMode(msg)
	case types.ModeSearch:
		return m.updateSearchMode(msg)
	case types.ModeSubtask:
		return m.updateSubtaskMode(msg)
	case types.ModeEdit:
		return m.updateEditMode(msg)
	case types.ModeConfirm:
		return m.updateConfirmMode(msg)
	}
	return m.updateNormalMode(msg)
}

func (m Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "a":
		m.mode = types.ModeInput
		m.input.Focus()

	case "/":
		m.mode = types.ModeSearch
		m.searchInput.SetValue(m.criteria.Search)
		m.searchInput.Focus()

	case "j", "down":
		if m.cursor < len(m.result.Tasks)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g":
		m.cursor = 0

	case "G":
		m.cursor = len(m.result.Tasks) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}

	case "x", " ":
		if t, ok := m.selected(); ok {
			done, err := m.store.ToggleDone(t.ID)
			if err == nil {
				if done {
					m.pushToast(ToastSuccess, "🎉 Completed!")
				} else {
					m.pushToast(ToastInfo, "↩️ Marked active")
				}
			}
			m.recompute()
		}

	case "p":
		if t, ok := m.selected(); ok {
			pinned, err := m.store.TogglePin(t.ID)
			if err == nil {
				if pinned {
					m.pushToast(ToastSuccess, "📌 Pinned!")
				} else {
					m.pushToast(ToastInfo, "Unpinned")
				}
			}
			m.recompute()
		}

	case "d":
		if t, ok := m.selected(); ok {
			id := t.ID
			m.mode = types.ModeConfirm
			m.confirm = overlay.NewConfirm("Delete task", "Delete this task?")
			m.onConfirm = func() Toast {
				if err := m.store.DeleteTask(id); err != nil {
					return toast(ToastError, "Task no longer exists")
				}
				return toast(ToastSuccess, "🗑️ Task deleted")
			}
		}

	case "e":
		if t, ok := m.selected(); ok {
			m.mode = types.ModeEdit
			m.editForm = overlay.NewEditForm(t)
		}

	case "s":
		if _, ok := m.selected(); ok {
			m.mode = types.ModeSubtask
			m.subInput.Focus()
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if t, ok := m.selected(); ok {
			n := int(key[0] - '1')
			if n < len(t.Subtasks) {
				if err := m.store.ToggleSubtask(t.ID, t.Subtasks[n].ID); err == nil {
					m.recompute()
				}
			}
		}

	case "alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9":
		if t, ok := m.selected(); ok {
			n := int(key[len(key)-1] - '1')
			if n < len(t.Subtasks) {
				if err := m.store.DeleteSubtask(t.ID, t.Subtasks[n].ID); err == nil {
					m.recompute()
				}
			}
		}

	case "f":
		m.criteria.Status = (m.criteria.Status + 1) % 5
		m.cursor = 0
		m.recompute()

	case "F":
		m.criteria.Status = domain.FilterAll
		m.cursor = 0
		m.recompute()

	case "c":
		m.cycleCategory()
		m.cursor = 0
		m.recompute()

	case "o":
		m.criteria.Sort = (m.criteria.Sort + 1) % 6
		m.pushToast(ToastInfo, "Sort: "+m.criteria.Sort.Label())
		m.recompute()

	case "J":
		m.moveSelected(1)

	case "K":
		m.moveSelected(-1)

	case "ctrl+p":
		m.addPriority = nextPriority(m.addPriority)
		m.pushToast(ToastInfo, "New task priority: "+m.addPriority.String())

	case "t":
		m.cfg.Theme = m.cfg.Theme.Toggle()
		if err := config.Save(m.cfg); err != nil {
			m.logger.Warn("failed to save theme", "error", err)
		}
		m.styles = styles.ForTheme(m.cfg.Theme)
		if m.cfg.Theme == config.ThemeDark {
			m.pushToast(ToastInfo, "🌙 Dark mode")
		} else {
			m.pushToast(ToastInfo, "☀️ Light mode")
		}

	case "E":
		snap := m.store.ExportSnapshot()
		path := filepath.Join(m.cfg.DataDir, backupFile)
		if err := storage.WriteBackup(path, snap.Tasks, snap.ExportedAt); err != nil {
			m.logger.Warn("export failed", "error", err)
			m.pushToast(ToastError, "Export failed")
		} else {
			m.pushToast(ToastSuccess, "📤 Exported to "+path)
		}

	case "I":
		m.importBackup(filepath.Join(m.cfg.DataDir, backupFile))

	case "M":
		if m.store.MarkAll() {
			m.pushToast(ToastSuccess, "🎉 All completed!")
		} else {
			m.pushToast(ToastInfo, "↩️ All marked active")
		}
		m.recompute()

	case "D":
		m.mode = types.ModeConfirm
		m.confirm = overlay.NewConfirm("Clear completed", "Remove all completed tasks?")
		m.onConfirm = func() Toast {
			n := m.store.ClearDone()
			if n == 0 {
				return toast(ToastInfo, "No completed tasks")
			}
			return toast(ToastSuccess, fmt.Sprintf("🗑️ %d task(s) cleared", n))
		}

	case "X":
		m.mode = types.ModeConfirm
		m.confirm = overlay.NewConfirm("Clear all", "Delete ALL tasks? This cannot be undone.")
		m.onConfirm = func() Toast {
			n := m.store.ClearAll()
			if n == 0 {
				return toast(ToastInfo, "Nothing to clear")
			}
			return toast(ToastSuccess, "🗑️ All tasks cleared")
		}
	}

	return m, nil
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = types.ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case "enter":
		_, err := m.store.AddTask(m.input.Value(), m.addPriority, m.criteria.Category, "", "")
		if err != nil {
			m.pushToast(ToastWarning, "⚠️ Please enter a task")
			return m, nil
		}
		m.input.SetValue("")
		m.mode = types.ModeNormal
		m.input.Blur()
		m.cursor = 0
		m.recompute()
		m.pushToast(ToastSuccess, "✅ Task added!")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = types.ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.criteria.Search = ""
		m.cursor = 0
		m.recompute()
		return m, nil
	case "enter":
		m.mode = types.ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live filtering as the query changes
	m.criteria.Search = m.searchInput.Value()
	m.cursor = 0
	m.recompute()
	return m, cmd
}

func (m Model) updateSubtaskMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = types.ModeNormal
		m.subInput.Blur()
		m.subInput.SetValue("")
		return m, nil
	case "enter":
		if t, ok := m.selected(); ok {
			if err := m.store.AddSubtask(t.ID, m.subInput.Value()); err != nil {
				if errors.Is(err, domain.ErrEmptyText) {
					m.pushToast(ToastWarning, "⚠️ Subtask cannot be empty")
				}
				return m, nil
			}
			m.recompute()
		}
		m.subInput.SetValue("")
		m.subInput.Blur()
		m.mode = types.ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.subInput, cmd = m.subInput.Update(msg)
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = types.ModeNormal
		m.editForm = nil
		return m, nil
	case "enter":
		text, note, priority, category, dueDate, color := m.editForm.Values()
		err := m.store.EditTask(m.editForm.TaskID, text, note, priority, category, dueDate, color)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyText) {
				m.pushToast(ToastWarning, "⚠️ Task cannot be empty")
			} else {
				m.pushToast(ToastError, "Task no longer exists")
				m.mode = types.ModeNormal
				m.editForm = nil
			}
			return m, nil
		}
		m.mode = types.ModeNormal
		m.editForm = nil
		m.recompute()
		m.pushToast(ToastSuccess, "✏️ Task updated!")
		return m, nil
	}

	cmd := m.editForm.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if m.onConfirm != nil {
			t := m.onConfirm()
			m.toasts = append(m.toasts, t)
		}
		m.mode = types.ModeNormal
		m.onConfirm = nil
		m.recompute()
	case "n", "N", "esc":
		m.mode = types.ModeNormal
		m.onConfirm = nil
	}
	return m, nil
}

// selected returns the task under the cursor in the displayed sequence.
func (m Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.result.Tasks) {
		return domain.Task{}, false
	}
	return m.result.Tasks[m.cursor], true
}

// moveSelected reorders the selected task one slot up or down. Manual
// reordering always drops the view back to manual sort; that transition
// belongs to the presentation layer, not the store.
func (m *Model) moveSelected(delta int) {
	if m.criteria.Sort != domain.SortManual {
		m.criteria.Sort = domain.SortManual
		m.recompute()
	}
	src, ok := m.selected()
	if !ok {
		return
	}
	di := m.cursor + delta
	if di < 0 || di >= len(m.result.Tasks) {
		return
	}
	dest := m.result.Tasks[di]
	if err := m.store.Reorder(src.ID, dest.ID); err != nil {
		return
	}
	m.cursor = di
	m.recompute()
}

// cycleCategory advances the category chip: all → each chip → all.
func (m *Model) cycleCategory() {
	cats := m.result.Categories
	if len(cats) == 0 {
		m.criteria.Category = ""
		return
	}
	if m.criteria.Category == "" {
		m.criteria.Category = cats[0]
		return
	}
	for i, c := range cats {
		if c == m.criteria.Category {
			if i+1 < len(cats) {
				m.criteria.Category = cats[i+1]
			} else {
				m.criteria.Category = ""
			}
			return
		}
	}
	m.criteria.Category = ""
}

func (m *Model) importBackup(path string) {
	tasks, err := storage.ReadBackup(path)
	if err != nil {
		m.logger.Warn("import failed", "path", path, "error", err)
		if errors.Is(err, domain.ErrInvalidBackup) {
			m.pushToast(ToastError, "⚠️ Invalid backup file")
		} else {
			m.pushToast(ToastError, "No backup found at "+path)
		}
		return
	}
	if err := m.store.ImportMerge(tasks); err != nil {
		m.pushToast(ToastWarning, "⚠️ No tasks found")
		return
	}
	m.cursor = 0
	m.recompute()
	m.pushToast(ToastSuccess, fmt.Sprintf("📥 Imported %d task(s)!", len(tasks)))
}

// recompute refreshes the derived view after any state or criteria
// change and clamps the cursor to the new sequence.
func (m *Model) recompute() {
	m.result = m.engine.Compute(m.store.Tasks(), m.criteria)
	if m.cursor >= len(m.result.Tasks) {
		m.cursor = len(m.result.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) pushToast(level ToastLevel, message string) {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: m.clock.Now().Add(2400 * time.Millisecond),
	})
}

func toast(level ToastLevel, message string) Toast {
	return Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(2400 * time.Millisecond),
	}
}

func nextPriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityHigh:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityLow
	default:
		return domain.PriorityHigh
	}
}
