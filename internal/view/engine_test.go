package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklyhq/taskly/internal/domain"
)

// Fixed so overdue classification is deterministic: "today" is 2024-06-10.
var testClock = domain.FixedClock{Time: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)}

func TestComputeStats(t *testing.T) {
	e := NewEngine(testClock)

	tests := []struct {
		name  string
		tasks []domain.Task
		want  Stats
	}{
		{
			name:  "empty collection",
			tasks: nil,
			want:  Stats{},
		},
		{
			name: "mixed",
			tasks: []domain.Task{
				{Text: "a", Done: true},
				{Text: "b"},
				{Text: "c", DueDate: "2024-06-08"},
			},
			want: Stats{Total: 3, Done: 1, Pending: 2, Overdue: 1, CompletionPct: 33},
		},
		{
			name: "percentage rounds half up",
			tasks: []domain.Task{
				{Done: true}, {Done: true}, {Done: true},
				{}, {}, {}, {}, {},
			},
			want: Stats{Total: 8, Done: 3, Pending: 5, CompletionPct: 38},
		},
		{
			name: "all done",
			tasks: []domain.Task{
				{Done: true}, {Done: true},
			},
			want: Stats{Total: 2, Done: 2, CompletionPct: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ComputeStats(tt.tasks))
		})
	}
}

func TestComputeStats_DoneNeverOverdue(t *testing.T) {
	e := NewEngine(testClock)

	stats := e.ComputeStats([]domain.Task{
		{Text: "finished late", Done: true, DueDate: "2024-06-01"},
		{Text: "still late", DueDate: "2024-06-01"},
	})

	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, Stats{Total: 2, Done: 1, Pending: 1, Overdue: 1, CompletionPct: 50}, stats)
}

func TestCompute_StatsIgnoreFilters(t *testing.T) {
	e := NewEngine(testClock)
	tasks := []domain.Task{
		{ID: "1", Text: "alpha", Category: "work", Done: true},
		{ID: "2", Text: "beta", Category: "home"},
		{ID: "3", Text: "gamma", Category: "work"},
	}

	res := e.Compute(tasks, domain.Criteria{Category: "home"})

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "2", res.Tasks[0].ID)
	// Stats and chips still cover the whole collection
	assert.Equal(t, 3, res.Stats.Total)
	assert.Equal(t, 1, res.Stats.Done)
	assert.Equal(t, []string{"work", "home"}, res.Categories)
}

func TestCompute_FilterThenSort(t *testing.T) {
	e := NewEngine(testClock)
	tasks := []domain.Task{
		{ID: "1", Text: "banana", CreatedAt: 3},
		{ID: "2", Text: "apple", CreatedAt: 2, Done: true},
		{ID: "3", Text: "cherry", CreatedAt: 1},
	}

	res := e.Compute(tasks, domain.Criteria{
		Status: domain.FilterActive,
		Sort:   domain.SortAlpha,
	})

	assert.Equal(t, []string{"1", "3"}, func() []string {
		out := make([]string, len(res.Tasks))
		for i, task := range res.Tasks {
			out[i] = task.ID
		}
		return out
	}())
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name  string
		tasks []domain.Task
		want  []string
	}{
		{
			name: "first seen order with duplicates",
			tasks: []domain.Task{
				{Category: "work"},
				{Category: "home"},
				{Category: "work"},
				{Category: "errands"},
			},
			want: []string{"work", "home", "errands"},
		},
		{
			name: "empty categories skipped",
			tasks: []domain.Task{
				{Category: ""},
				{Category: "work"},
				{Category: ""},
			},
			want: []string{"work"},
		},
		{
			name:  "no tasks",
			tasks: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categories(tt.tasks))
		})
	}
}
