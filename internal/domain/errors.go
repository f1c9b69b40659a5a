package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyText     = errors.New("text is empty")
	ErrEmptyImport   = errors.New("no tasks found")
	ErrInvalidBackup = errors.New("invalid backup file")
)

// BackupError represents a failure reading or writing a backup file
type BackupError struct {
	Op   string // "read", "write"
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("backup %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("backup %s: %v", e.Op, e.Err)
}

func (e *BackupError) Unwrap() error {
	return e.Err
}
