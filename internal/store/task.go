package store

import "github.com/henrilemoine/tabler/internal/source"

// Status values for a task.
const (
	StatusTodo    = "todo"
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Fields are the editable values of a task.
type Fields struct {
	Name     string
	Status   string
	Priority int
	Done     bool
}

// Task is one observable record. Its fields only change through Store.Update.
type Task struct {
	id       int
	fields   Fields
	notifier source.Notifier
}

// NewTask returns a task with the given id and fields.
func NewTask(id int, f Fields) *Task {
	return &Task{id: id, fields: f}
}

func (t *Task) ID() int { return t.id }

func (t *Task) Name() string { return t.fields.Name }

func (t *Task) Status() string { return t.fields.Status }

func (t *Task) Priority() int { return t.fields.Priority }

func (t *Task) Done() bool { return t.fields.Done }

// Fields returns a copy of the task's values.
func (t *Task) Fields() Fields { return t.fields }

// Observe registers fn to run when this task's fields change.
func (t *Task) Observe(fn func()) (cancel func()) {
	return t.notifier.Observe(fn)
}

// set replaces the fields and reports whether anything changed.
func (t *Task) set(f Fields) bool {
	if t.fields == f {
		return false
	}
	t.fields = f
	return true
}
