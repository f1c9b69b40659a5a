// Package main provides the entry point for the Taskly TUI application.
//
// Taskly is a terminal to-do manager: tasks carry priority, category,
// due date, color, notes and subtasks, with filtering, sorting and
// JSON backup import/export. State persists under ~/.taskly.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tasklyhq/taskly/internal/app"
	"github.com/tasklyhq/taskly/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogFile)

	model := app.New(cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to the configured file. Stderr is
// owned by the TUI, so a broken log file just means silent logs.
func newLogger(path string) *slog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
