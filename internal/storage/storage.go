// Package storage persists the task collection as a single JSON
// snapshot on disk and handles the user-facing backup format.
package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tasklyhq/taskly/internal/domain"
)

const tasksFile = "tasks.json"

// FileStore reads and writes the task snapshot under a fixed path in
// the data directory. It satisfies store.Saver.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{dir: dir, logger: logger}
}

// Path returns the snapshot file path.
func (f *FileStore) Path() string {
	return filepath.Join(f.dir, tasksFile)
}

// Save serializes the full collection, overwriting any prior snapshot.
func (f *FileStore) Save(tasks []domain.Task) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path(), data, 0644)
}

// Load reads the persisted collection. An absent or malformed snapshot
// degrades to an empty collection rather than an error: corrupt state
// must never prevent startup.
func (f *FileStore) Load() []domain.Task {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		return []domain.Task{}
	}
	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		f.logger.Warn("discarding malformed task snapshot", "path", f.Path(), "error", err)
		return []domain.Task{}
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks
}
