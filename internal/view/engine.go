// Package view derives the presentation-ready task list and aggregate
// statistics from the store's current state plus the active criteria.
// Everything here is a pure function of its inputs.
package view

import (
	"math"

	"github.com/tasklyhq/taskly/internal/domain"
)

// Stats aggregates the unfiltered collection
type Stats struct {
	Total         int
	Done          int
	Pending       int
	Overdue       int
	CompletionPct int
}

// Result is the computed view: the filtered and sorted display
// sequence, stats over the whole collection, and the category chip set.
type Result struct {
	Tasks      []domain.Task
	Stats      Stats
	Categories []string
}

// Engine computes views. It holds only a clock, for overdue
// classification.
type Engine struct {
	clock domain.Clock
}

// NewEngine creates a view engine backed by the given clock.
func NewEngine(clock domain.Clock) *Engine {
	return &Engine{clock: clock}
}

// Compute derives the display sequence and statistics for the given
// collection snapshot and criteria. Filters apply in order (category,
// search, status), then the sort mode; stats and categories always
// cover the full unfiltered collection.
func (e *Engine) Compute(tasks []domain.Task, c domain.Criteria) Result {
	today := domain.Today(e.clock)

	filtered := c.Apply(tasks, today)
	sorted := domain.SortTasks(filtered, c.Sort)

	return Result{
		Tasks:      sorted,
		Stats:      e.ComputeStats(tasks),
		Categories: Categories(tasks),
	}
}

// ComputeStats aggregates counts over the full collection.
func (e *Engine) ComputeStats(tasks []domain.Task) Stats {
	today := domain.Today(e.clock)

	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			s.Done++
		}
		if domain.IsOverdue(t, today) {
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Done

	if s.Total > 0 {
		s.CompletionPct = int(math.Round(float64(s.Done) / float64(s.Total) * 100))
	}
	return s
}

// Categories returns the distinct non-empty categories present in the
// collection, in first-seen order. The chip set is independent of the
// active filters.
func Categories(tasks []domain.Task) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, t := range tasks {
		if t.Category == "" || seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		cats = append(cats, t.Category)
	}
	return cats
}
