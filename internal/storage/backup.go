package storage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tasklyhq/taskly/internal/domain"
)

// Backup is the user-facing export file shape
type Backup struct {
	Tasks      []domain.Task `json:"tasks"`
	ExportedAt string        `json:"exportedAt"`
}

// WriteBackup writes a pretty-printed backup file containing the given
// tasks and export timestamp.
func WriteBackup(path string, tasks []domain.Task, exportedAt time.Time) error {
	b := Backup{
		Tasks:      tasks,
		ExportedAt: exportedAt.Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return &domain.BackupError{Op: "write", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.BackupError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// ReadBackup parses a backup file. It accepts either a bare JSON array
// of tasks or an object with a "tasks" array field; any other shape
// fails with ErrInvalidBackup. An empty task list is returned as-is;
// rejecting it is the import operation's concern.
func ReadBackup(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.BackupError{Op: "read", Path: path, Err: err}
	}
	return ParseBackup(data)
}

// ParseBackup decodes backup bytes in either accepted shape.
func ParseBackup(data []byte) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err == nil {
		return tasks, nil
	}

	var wrapped struct {
		Tasks *[]domain.Task `json:"tasks"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil || wrapped.Tasks == nil {
		return nil, domain.ErrInvalidBackup
	}
	return *wrapped.Tasks, nil
}
