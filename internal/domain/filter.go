package domain

import "strings"

// StatusFilter selects tasks by completion state
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterDone
	FilterOverdue
	FilterPinned
)

func (f StatusFilter) String() string {
	return [...]string{"all", "active", "done", "overdue", "pinned"}[f]
}

// Criteria represents the full view state: status tab, category chip,
// search box and sort mode.
type Criteria struct {
	Status   StatusFilter
	Category string // empty = no category filter
	Search   string // empty = no search filter
	Sort     SortMode
}

// IsActive returns true if any filter would exclude tasks
func (c Criteria) IsActive() bool {
	return c.Status != FilterAll || c.Category != "" || c.Search != ""
}

// Matches returns true if the task passes all active filters.
// Filters apply in order: category, search, status.
func (c Criteria) Matches(t Task, today string) bool {
	if c.Category != "" && t.Category != c.Category {
		return false
	}

	// Search matches text, note or category, case-insensitive
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Text), q) &&
			!strings.Contains(strings.ToLower(t.Note), q) &&
			!strings.Contains(strings.ToLower(t.Category), q) {
			return false
		}
	}

	switch c.Status {
	case FilterActive:
		return !t.Done
	case FilterDone:
		return t.Done
	case FilterOverdue:
		return IsOverdue(t, today)
	case FilterPinned:
		return t.Pinned
	}
	return true
}

// Apply filters a list of tasks, preserving order. today is the ISO
// date used for the overdue filter.
func (c Criteria) Apply(tasks []Task, today string) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Matches(t, today) {
			result = append(result, t)
		}
	}
	return result
}
