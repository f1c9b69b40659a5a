// Package cli implements the headless taskly commands: inspecting,
// exporting and importing the task collection without the TUI.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/tasklyhq/taskly/internal/config"
	"github.com/tasklyhq/taskly/internal/domain"
	"github.com/tasklyhq/taskly/internal/storage"
	"github.com/tasklyhq/taskly/internal/store"
	"github.com/tasklyhq/taskly/internal/view"
)

// Dependencies holds the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Store  *store.Store
	Engine *view.Engine
	Logger *slog.Logger
}

// NewDependencies loads the persisted collection and wires the store
// and view engine the same way the TUI does.
func NewDependencies(cfg *config.Config) *Dependencies {
	logger := slog.Default()
	clock := domain.SystemClock{}

	fileStore := storage.NewFileStore(cfg.DataDir, logger)
	st := store.New(clock, fileStore, logger)
	st.Seed(fileStore.Load())

	return &Dependencies{
		Config: cfg,
		Store:  st,
		Engine: view.NewEngine(clock),
		Logger: logger,
	}
}

// ListCommand prints the task list in display order for the given
// criteria.
func ListCommand(deps *Dependencies, criteria domain.Criteria) error {
	result := deps.Engine.Compute(deps.Store.Tasks(), criteria)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DONE\tPIN\tPRIORITY\tCATEGORY\tDUE\tTEXT")
	for _, t := range result.Tasks {
		done, pin := " ", " "
		if t.Done {
			done = "x"
		}
		if t.Pinned {
			pin = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			done, pin, t.Priority, t.Category, t.DueDate, t.Text)
	}
	return w.Flush()
}

// StatsCommand prints aggregate statistics for the whole collection.
func StatsCommand(deps *Dependencies) error {
	s := deps.Engine.ComputeStats(deps.Store.Tasks())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "total\t%d\n", s.Total)
	fmt.Fprintf(w, "done\t%d\n", s.Done)
	fmt.Fprintf(w, "pending\t%d\n", s.Pending)
	fmt.Fprintf(w, "overdue\t%d\n", s.Overdue)
	fmt.Fprintf(w, "complete\t%d%%\n", s.CompletionPct)
	return w.Flush()
}

// AddCommand creates a task from the command line.
func AddCommand(deps *Dependencies, text string, priority domain.Priority, category, dueDate string) error {
	task, err := deps.Store.AddTask(text, priority, category, dueDate, "")
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	fmt.Printf("added %s\n", task.ID)
	return nil
}

// ExportCommand writes a backup file of the whole collection.
func ExportCommand(deps *Dependencies, path string) error {
	snap := deps.Store.ExportSnapshot()
	if err := storage.WriteBackup(path, snap.Tasks, snap.ExportedAt); err != nil {
		return err
	}
	deps.Logger.Info("exported tasks", "count", len(snap.Tasks), "path", path)
	fmt.Printf("exported %d task(s) to %s\n", len(snap.Tasks), path)
	return nil
}

// ImportCommand merges a backup file into the collection.
func ImportCommand(deps *Dependencies, path string) error {
	tasks, err := storage.ReadBackup(path)
	if err != nil {
		return err
	}
	if err := deps.Store.ImportMerge(tasks); err != nil {
		if errors.Is(err, domain.ErrEmptyImport) {
			return fmt.Errorf("%s: no tasks found", path)
		}
		return err
	}
	fmt.Printf("imported %d task(s)\n", len(tasks))
	return nil
}
