// Package domain contains core business types for the Taskly application.
package domain

// Priority represents task priority. It is serialized as its string
// value, so the constants double as the wire format.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort rank for a priority (0 = most urgent).
// Unknown values rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}

// Task represents a single unit of work
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	Pinned    bool      `json:"pinned"`
	Priority  Priority  `json:"priority"`
	Category  string    `json:"category"`
	DueDate   string    `json:"dueDate"` // ISO date (YYYY-MM-DD) or empty
	Color     string    `json:"color"`
	Note      string    `json:"note"`
	Subtasks  []Subtask `json:"subtasks"`
	CreatedAt int64     `json:"createdAt"` // epoch milliseconds
}

// Subtask is a checklist item owned by exactly one task. Its ID is only
// unique within the parent's subtask list.
type Subtask struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// SubtaskProgress returns how many subtasks are done and the total count.
func (t Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Done {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// CategoryEmojis maps the preset categories to their emoji. Category is
// an open string domain: anything else renders with no emoji.
var CategoryEmojis = map[string]string{
	"work":     "💼",
	"personal": "🏠",
	"health":   "💪",
	"shopping": "🛒",
	"study":    "📚",
	"finance":  "💰",
}

// CategoryEmoji returns the preset emoji for a category, or "" for
// unknown categories.
func CategoryEmoji(category string) string {
	return CategoryEmojis[category]
}
