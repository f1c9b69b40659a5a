package domain

import (
	"sort"
	"strings"
)

// SortMode represents how the task list is ordered
type SortMode int

const (
	SortManual SortMode = iota
	SortDateDesc
	SortDateAsc
	SortAlpha
	SortDue
	SortPriority
)

func (m SortMode) String() string {
	return [...]string{"manual", "date-desc", "date-asc", "alpha", "due", "priority"}[m]
}

// Label returns the human-readable name shown in the sort menu
func (m SortMode) Label() string {
	return [...]string{"Manual", "Newest first", "Oldest first", "A → Z", "Due date", "Priority"}[m]
}

// SortTasks orders a list of tasks for display. Manual mode keeps the
// stored order untouched. Every other mode orders pinned tasks first,
// then applies the mode's comparator. The sort is stable: equal-ranked
// tasks keep their relative order.
func SortTasks(tasks []Task, mode SortMode) []Task {
	if len(tasks) == 0 || mode == SortManual {
		return tasks
	}

	// Copy so the caller's slice order is never mutated
	result := make([]Task, len(tasks))
	copy(result, tasks)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]

		// Pinned always first
		if a.Pinned != b.Pinned {
			return a.Pinned
		}

		switch mode {
		case SortDateDesc:
			return a.CreatedAt > b.CreatedAt
		case SortDateAsc:
			return a.CreatedAt < b.CreatedAt
		case SortAlpha:
			return strings.ToLower(a.Text) < strings.ToLower(b.Text)
		case SortDue:
			// Tasks without a due date sort after all dated tasks
			if a.DueDate == "" || b.DueDate == "" {
				return a.DueDate != "" && b.DueDate == ""
			}
			return a.DueDate < b.DueDate
		case SortPriority:
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return false
	})

	return result
}
