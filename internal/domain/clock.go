package domain

import (
	"fmt"
	"time"
)

// ISODate is the calendar date layout used for due dates. ISO-formatted
// dates compare correctly as plain strings.
const ISODate = "2006-01-02"

// Clock supplies the current time. The store and view engine take a
// Clock instead of calling time.Now directly so date logic is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Test helper.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// Today returns the clock's current date in ISO form.
func Today(c Clock) string {
	return c.Now().Format(ISODate)
}

// IsOverdue reports whether the task has a due date in the past and is
// not done. today is an ISO date string.
func IsOverdue(t Task, today string) bool {
	return t.DueDate != "" && !t.Done && t.DueDate < today
}

// IsDueSoon reports whether the task is incomplete and due within the
// next two days, inclusive of today.
func IsDueSoon(t Task, today string) bool {
	if t.DueDate == "" || t.Done {
		return false
	}
	due, err := time.Parse(ISODate, t.DueDate)
	if err != nil {
		return false
	}
	ref, err := time.Parse(ISODate, today)
	if err != nil {
		return false
	}
	diff := int(due.Sub(ref) / (24 * time.Hour))
	return diff >= 0 && diff <= 2
}

// TimeAgo renders a created-at timestamp (epoch milliseconds) as a
// human-readable age relative to the clock.
func TimeAgo(createdAt int64, c Clock) string {
	d := c.Now().Sub(time.UnixMilli(createdAt))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}
