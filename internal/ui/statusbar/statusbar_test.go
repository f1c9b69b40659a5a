package statusbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasklyhq/taskly/internal/types"
	"github.com/tasklyhq/taskly/internal/ui/styles"
	"github.com/tasklyhq/taskly/internal/view"
)

func TestRenderShowsModeAndStats(t *testing.T) {
	s := styles.New(styles.Dark())
	sb := New(types.ModeNormal, view.Stats{Total: 5, Done: 2, Pending: 3, Overdue: 1, CompletionPct: 40}, 120, s)

	out := sb.Render()
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "5 tasks")
	assert.Contains(t, out, "2 done")
	assert.Contains(t, out, "3 pending")
	assert.Contains(t, out, "1 overdue")
	assert.Contains(t, out, "40%")
}

func TestRenderShowsModeHints(t *testing.T) {
	s := styles.New(styles.Dark())

	out := New(types.ModeInput, view.Stats{}, 120, s).Render()
	assert.Contains(t, out, "ADD")
	assert.Contains(t, out, Hints(types.ModeInput))
}
