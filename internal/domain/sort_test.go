package domain

import (
	"testing"
)

func TestSortTasks_ManualKeepsOrder(t *testing.T) {
	tasks := []Task{
		{ID: "1", CreatedAt: 100},
		{ID: "3", CreatedAt: 300, Pinned: true},
		{ID: "2", CreatedAt: 200},
	}

	got := SortTasks(tasks, SortManual)
	assertOrder(t, got, []string{"1", "3", "2"})
}

func TestSortTasks_PinnedAlwaysFirst(t *testing.T) {
	// Pinned wins despite older creation time
	tasks := []Task{
		{ID: "A", Pinned: true, CreatedAt: 100},
		{ID: "B", CreatedAt: 200},
	}

	got := SortTasks(tasks, SortDateDesc)
	assertOrder(t, got, []string{"A", "B"})
}

func TestSortTasks_DateModes(t *testing.T) {
	tasks := []Task{
		{ID: "1", CreatedAt: 200},
		{ID: "2", CreatedAt: 100},
		{ID: "3", CreatedAt: 300},
	}

	t.Run("newest first", func(t *testing.T) {
		got := SortTasks(tasks, SortDateDesc)
		assertOrder(t, got, []string{"3", "1", "2"})
	})

	t.Run("oldest first", func(t *testing.T) {
		got := SortTasks(tasks, SortDateAsc)
		assertOrder(t, got, []string{"2", "1", "3"})
	})
}

func TestSortTasks_Alpha(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "clean the garage"},
		{ID: "2", Text: "Buy milk"},
		{ID: "3", Text: "answer emails"},
	}

	got := SortTasks(tasks, SortAlpha)
	assertOrder(t, got, []string{"3", "2", "1"})
}

func TestSortTasks_Due(t *testing.T) {
	tasks := []Task{
		{ID: "1"},
		{ID: "2", DueDate: "2024-06-20"},
		{ID: "3", DueDate: "2024-06-05"},
		{ID: "4"},
	}

	got := SortTasks(tasks, SortDue)
	// Dated tasks ascending, dateless after them keeping relative order
	assertOrder(t, got, []string{"3", "2", "1", "4"})
}

func TestSortTasks_Priority(t *testing.T) {
	tasks := []Task{
		{ID: "1", Priority: PriorityLow},
		{ID: "2", Priority: PriorityHigh},
		{ID: "3", Priority: PriorityMedium},
		{ID: "4", Priority: PriorityHigh},
	}

	got := SortTasks(tasks, SortPriority)
	assertOrder(t, got, []string{"2", "4", "3", "1"})
}

func TestSortTasks_Stable(t *testing.T) {
	// Equal-ranked tasks keep their filtered order
	tasks := []Task{
		{ID: "1", Priority: PriorityMedium},
		{ID: "2", Priority: PriorityMedium},
		{ID: "3", Priority: PriorityMedium},
	}

	got := SortTasks(tasks, SortPriority)
	assertOrder(t, got, []string{"1", "2", "3"})
}

func TestSortTasks_DoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: "1", CreatedAt: 100},
		{ID: "2", CreatedAt: 200},
	}

	SortTasks(tasks, SortDateDesc)
	if tasks[0].ID != "1" {
		t.Error("input slice order was mutated")
	}
}

func TestSortTasks_Empty(t *testing.T) {
	if got := SortTasks([]Task{}, SortPriority); len(got) != 0 {
		t.Errorf("sorting empty list returned %d tasks", len(got))
	}
}
