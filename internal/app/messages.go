package app

import (
	"github.com/henrilemoine/tabler/internal/store"
)

// Message types for the bubbletea app.

// TasksLoadedMsg is sent when the task file has been read again.
type TasksLoadedMsg struct {
	Tasks []*store.Task
	Err   error
}

// TasksSavedMsg is sent when the task file has been written.
type TasksSavedMsg struct {
	Path string
	Err  error
}
