// Package store owns the authoritative task collection and all
// mutations on it. Every mutating operation notifies the configured
// Saver with a full snapshot before returning, so persisted state never
// lags the in-memory collection.
package store

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tasklyhq/taskly/internal/domain"
)

// Saver receives the full task collection after every mutation.
// A file-backed implementation lives in internal/storage; tests pass
// nil or an in-memory recorder.
type Saver interface {
	Save(tasks []domain.Task) error
}

// Snapshot is a point-in-time export of the collection
type Snapshot struct {
	Tasks      []domain.Task
	ExportedAt time.Time
}

// Store is the sole owner and mutator of the task collection.
// It is not safe for concurrent use: all access happens on the single
// TEA event loop.
type Store struct {
	tasks  []domain.Task
	clock  domain.Clock
	saver  Saver
	logger *slog.Logger
	newID  func() string
}

// New creates an empty store. saver may be nil, in which case mutations
// are not persisted.
func New(clock domain.Clock, saver Saver, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		clock:  clock,
		saver:  saver,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Seed replaces the collection with previously persisted tasks.
// Called once at startup; does not trigger a save.
func (s *Store) Seed(tasks []domain.Task) {
	s.tasks = tasks
}

// Tasks returns a snapshot of the collection in stored order.
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (domain.Task, error) {
	i := s.index(id)
	if i < 0 {
		return domain.Task{}, domain.ErrNotFound
	}
	return s.tasks[i], nil
}

// AddTask creates a task with the given fields and prepends it to the
// collection. Returns ErrEmptyText if text trims to empty.
func (s *Store) AddTask(text string, priority domain.Priority, category, dueDate, color string) (domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Task{}, domain.ErrEmptyText
	}

	task := domain.Task{
		ID:        s.newID(),
		Text:      text,
		Priority:  priority,
		Category:  category,
		DueDate:   dueDate,
		Color:     color,
		Subtasks:  []domain.Subtask{},
		CreatedAt: s.clock.Now().UnixMilli(),
	}

	s.tasks = append([]domain.Task{task}, s.tasks...)
	s.save()
	return task, nil
}

// ToggleDone flips the completion flag on the task with the given id.
// Returns the new flag value.
func (s *Store) ToggleDone(id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, domain.ErrNotFound
	}
	s.tasks[i].Done = !s.tasks[i].Done
	s.save()
	return s.tasks[i].Done, nil
}

// TogglePin flips the pinned flag on the task with the given id.
// Returns the new flag value.
func (s *Store) TogglePin(id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, domain.ErrNotFound
	}
	s.tasks[i].Pinned = !s.tasks[i].Pinned
	s.save()
	return s.tasks[i].Pinned, nil
}

// DeleteTask removes the task with the given id. The caller is expected
// to have confirmed destructive intent.
func (s *Store) DeleteTask(id string) error {
	i := s.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.save()
	return nil
}

// EditTask overwrites the mutable fields of a task, preserving its id,
// flags, subtasks and creation time.
func (s *Store) EditTask(id, text, note string, priority domain.Priority, category, dueDate, color string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyText
	}
	i := s.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}

	t := &s.tasks[i]
	t.Text = text
	t.Note = strings.TrimSpace(note)
	t.Priority = priority
	t.Category = category
	t.DueDate = dueDate
	t.Color = color

	s.save()
	return nil
}

// AddSubtask appends a subtask to the given task. No-op if the task is
// absent or text trims to empty.
func (s *Store) AddSubtask(taskID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyText
	}
	i := s.index(taskID)
	if i < 0 {
		return domain.ErrNotFound
	}

	s.tasks[i].Subtasks = append(s.tasks[i].Subtasks, domain.Subtask{
		ID:   s.newID(),
		Text: text,
	})
	s.save()
	return nil
}

// ToggleSubtask flips the completion flag on a subtask.
func (s *Store) ToggleSubtask(taskID, subtaskID string) error {
	i := s.index(taskID)
	if i < 0 {
		return domain.ErrNotFound
	}
	for j := range s.tasks[i].Subtasks {
		if s.tasks[i].Subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks[j].Done = !s.tasks[i].Subtasks[j].Done
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteSubtask removes a subtask, keeping the remaining order intact.
func (s *Store) DeleteSubtask(taskID, subtaskID string) error {
	i := s.index(taskID)
	if i < 0 {
		return domain.ErrNotFound
	}
	subs := s.tasks[i].Subtasks
	for j := range subs {
		if subs[j].ID == subtaskID {
			s.tasks[i].Subtasks = append(subs[:j], subs[j+1:]...)
			s.save()
			return nil
		}
	}
	return domain.ErrNotFound
}

// MarkAll toggles the whole collection's aggregate completion state:
// if every task is done, all become active; otherwise all become done.
// Returns the state every task was set to.
func (s *Store) MarkAll() bool {
	allDone := true
	for _, t := range s.tasks {
		if !t.Done {
			allDone = false
			break
		}
	}
	for i := range s.tasks {
		s.tasks[i].Done = !allDone
	}
	s.save()
	return !allDone
}

// ClearDone removes all completed tasks and returns how many were
// removed. When nothing is completed the collection is untouched and
// no save happens.
func (s *Store) ClearDone() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Done {
			removed++
		} else {
			kept = append(kept, t)
		}
	}
	if removed == 0 {
		return 0
	}
	s.tasks = kept
	s.save()
	return removed
}

// ClearAll empties the collection and returns how many tasks were
// removed.
func (s *Store) ClearAll() int {
	removed := len(s.tasks)
	if removed == 0 {
		return 0
	}
	s.tasks = nil
	s.save()
	return removed
}

// Reorder moves the task with sourceID to the position destID occupies
// at call time, i.e. the dragged task lands in the drop target's slot.
// Only meaningful under manual sort; switching the view to manual is
// the caller's concern.
func (s *Store) Reorder(sourceID, destID string) error {
	if sourceID == destID {
		return nil
	}
	src := s.index(sourceID)
	dst := s.index(destID)
	if src < 0 || dst < 0 {
		return domain.ErrNotFound
	}

	moved := s.tasks[src]
	s.tasks = append(s.tasks[:src], s.tasks[src+1:]...)
	// Insertion index was captured before removal, matching drag-and-drop
	// semantics of dropping onto the destination's slot.
	if dst > len(s.tasks) {
		dst = len(s.tasks)
	}
	s.tasks = append(s.tasks[:dst], append([]domain.Task{moved}, s.tasks[dst:]...)...)

	s.save()
	return nil
}

// ImportMerge prepends externally sourced tasks to the collection.
// Imported records are kept verbatim, ids included; collisions with
// existing ids are not detected.
func (s *Store) ImportMerge(imported []domain.Task) error {
	if len(imported) == 0 {
		return domain.ErrEmptyImport
	}
	s.tasks = append(append([]domain.Task{}, imported...), s.tasks...)
	s.save()
	return nil
}

// ExportSnapshot returns the collection and the export timestamp.
// Pure read, no mutation.
func (s *Store) ExportSnapshot() Snapshot {
	return Snapshot{
		Tasks:      s.Tasks(),
		ExportedAt: s.clock.Now(),
	}
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// save pushes a full snapshot to the saver. Persistence failures are
// logged and swallowed: the in-memory state stays authoritative.
func (s *Store) save() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.Tasks()); err != nil {
		s.logger.Warn("failed to persist tasks", "error", err)
	}
}
