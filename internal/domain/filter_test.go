package domain

import (
	"testing"
)

const testToday = "2024-06-10"

func TestCriteria_IsActive(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"empty criteria", Criteria{}, false},
		{"sort alone is not a filter", Criteria{Sort: SortPriority}, false},
		{"status filter", Criteria{Status: FilterActive}, true},
		{"category filter", Criteria{Category: "work"}, true},
		{"search filter", Criteria{Search: "milk"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriteria_Matches_Status(t *testing.T) {
	tests := []struct {
		name   string
		status StatusFilter
		task   Task
		want   bool
	}{
		{"all matches done", FilterAll, Task{Done: true}, true},
		{"all matches active", FilterAll, Task{Done: false}, true},
		{"active excludes done", FilterActive, Task{Done: true}, false},
		{"active matches not done", FilterActive, Task{Done: false}, true},
		{"done matches done", FilterDone, Task{Done: true}, true},
		{"done excludes active", FilterDone, Task{Done: false}, false},
		{"overdue matches past due", FilterOverdue, Task{DueDate: "2024-06-01"}, true},
		{"overdue excludes done task", FilterOverdue, Task{DueDate: "2024-06-01", Done: true}, false},
		{"overdue excludes dateless", FilterOverdue, Task{}, false},
		{"pinned matches pinned", FilterPinned, Task{Pinned: true}, true},
		{"pinned excludes unpinned", FilterPinned, Task{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Status: tt.status}
			if got := c.Matches(tt.task, testToday); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriteria_Matches_Search(t *testing.T) {
	task := Task{
		Text:     "Buy Milk",
		Note:     "from the Corner shop",
		Category: "Shopping",
	}

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{"matches text case-insensitive", "buy m", true},
		{"matches note", "corner", true},
		{"matches category", "shop", true},
		{"no match", "laundry", false},
		{"empty search matches", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Search: tt.search}
			if got := c.Matches(task, testToday); got != tt.want {
				t.Errorf("Matches(search=%q) = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestCriteria_Matches_SearchMissingFields(t *testing.T) {
	// Absent note/category are treated as empty, not a match failure
	c := Criteria{Search: "milk"}
	if !c.Matches(Task{Text: "buy milk"}, testToday) {
		t.Error("task without note or category should still match on text")
	}
}

func TestCriteria_Matches_Category(t *testing.T) {
	c := Criteria{Category: "work"}
	if !c.Matches(Task{Category: "work"}, testToday) {
		t.Error("exact category should match")
	}
	if c.Matches(Task{Category: "personal"}, testToday) {
		t.Error("other category should not match")
	}
	if c.Matches(Task{}, testToday) {
		t.Error("empty category should not match an active category filter")
	}
}

func TestCriteria_Apply(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "write report", Category: "work", Done: true},
		{ID: "2", Text: "buy milk", Category: "shopping"},
		{ID: "3", Text: "work out", Category: "health"},
		{ID: "4", Text: "email client", Category: "work"},
	}

	t.Run("combined filters use AND", func(t *testing.T) {
		c := Criteria{Status: FilterActive, Category: "work"}
		got := c.Apply(tasks, testToday)
		if len(got) != 1 || got[0].ID != "4" {
			t.Errorf("Apply() = %v, want only task 4", ids(got))
		}
	})

	t.Run("search spans text and category", func(t *testing.T) {
		c := Criteria{Search: "work"}
		got := c.Apply(tasks, testToday)
		// "write report" (category work), "work out" (text), "email client" (category work)
		want := []string{"1", "3", "4"}
		assertOrder(t, got, want)
	})

	t.Run("preserves collection order", func(t *testing.T) {
		c := Criteria{Status: FilterActive}
		got := c.Apply(tasks, testToday)
		assertOrder(t, got, []string{"2", "3", "4"})
	})
}

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertOrder(t *testing.T, got []Task, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tasks %v, want %d %v", len(got), ids(got), len(want), want)
	}
	for i, task := range got {
		if task.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, task.ID, want[i])
		}
	}
}
