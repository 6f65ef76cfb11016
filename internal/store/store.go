package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/henrilemoine/tabler/internal/debug"
	"github.com/henrilemoine/tabler/internal/source"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// Store owns the task table. It is the only writer of task fields.
type Store struct {
	path string

	mu     sync.Mutex
	tasks  []*Task
	byID   map[int]*Task
	nextID int

	results []*Results
}

// New returns a store holding tasks, saved to path. Tasks with a duplicate
// id are dropped.
func New(path string, tasks ...*Task) *Store {
	s := &Store{path: path}
	s.setTasks(tasks)
	return s
}

// Open loads the store from path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	tasks, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	debug.Log("store: loaded %d tasks from %s", len(tasks), path)
	return New(path, tasks...), nil
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Get returns the task with id.
func (s *Store) Get(id int) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	return t, ok
}

// Fetch returns live results for req. They refresh whenever the store changes.
func (s *Store) Fetch(req Request) *Results {
	r := &Results{store: s, req: req}
	r.records = req.apply(s.snapshot())

	s.mu.Lock()
	s.results = append(s.results, r)
	s.mu.Unlock()
	return r
}

// Insert adds a new task with the next free id.
func (s *Store) Insert(f Fields) *Task {
	s.mu.Lock()
	t := NewTask(s.nextID, f)
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.byID[t.ID()] = t
	s.mu.Unlock()

	s.refresh()
	return t
}

// Delete removes the task with id.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	if _, ok := s.byID[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID() == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.refresh()
	return nil
}

// Update edits the task with id. Observers of that task are notified if
// any field changed, then every live result set is refreshed.
func (s *Store) Update(id int, fn func(f *Fields)) error {
	s.mu.Lock()
	t, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	f := t.Fields()
	fn(&f)
	changed := t.set(f)
	s.mu.Unlock()

	if !changed {
		return nil
	}
	t.notifier.Notify()
	s.refresh()
	return nil
}

// Replace swaps the whole table, as after a reload from disk. Tasks whose
// id survives keep their instance and are updated in place.
func (s *Store) Replace(tasks []*Task) {
	s.mu.Lock()
	var changed []*Task
	merged := make([]*Task, 0, len(tasks))
	for _, nt := range tasks {
		if t, ok := s.byID[nt.ID()]; ok {
			if t.set(nt.Fields()) {
				changed = append(changed, t)
			}
			merged = append(merged, t)
			continue
		}
		merged = append(merged, nt)
	}
	s.mu.Unlock()

	s.setTasks(merged)
	for _, t := range changed {
		t.notifier.Notify()
	}
	s.refresh()
}

// Snapshot returns detached copies of every task, safe to hand to another
// goroutine, for example to write them out in the background.
func (s *Store) Snapshot() []*Task {
	tasks := s.snapshot()
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = NewTask(t.ID(), t.Fields())
	}
	return out
}

// Save writes the table to the store's path.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("store has no path")
	}
	return WriteFile(s.path, s.snapshot())
}

func (s *Store) setTasks(tasks []*Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]*Task, 0, len(tasks))
	s.byID = make(map[int]*Task, len(tasks))
	s.nextID = 1
	for _, t := range tasks {
		if _, dup := s.byID[t.ID()]; dup {
			debug.Log("store: duplicate task id %d dropped", t.ID())
			continue
		}
		s.tasks = append(s.tasks, t)
		s.byID[t.ID()] = t
		if t.ID() >= s.nextID {
			s.nextID = t.ID() + 1
		}
	}
}

func (s *Store) snapshot() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Task(nil), s.tasks...)
}

func (s *Store) refresh() {
	s.mu.Lock()
	results := append([]*Results(nil), s.results...)
	s.mu.Unlock()

	for _, r := range results {
		r.refresh()
	}
}

func (s *Store) detach(r *Results) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, x := range s.results {
		if x == r {
			s.results = append(s.results[:i], s.results[i+1:]...)
			return
		}
	}
}

// Results is the live outcome of a fetch. It satisfies the grid's source
// contract: observers hear about insertions, removals and reordering.
type Results struct {
	store    *Store
	req      Request
	records  []*Task
	notifier source.Notifier
}

// Records returns the fetched tasks in order.
func (r *Results) Records() []*Task {
	return append([]*Task(nil), r.records...)
}

// Observe registers fn for structural changes of the results.
func (r *Results) Observe(fn func()) (cancel func()) {
	return r.notifier.Observe(fn)
}

// Request returns the request the results were fetched with.
func (r *Results) Request() Request { return r.req }

// Refetch re-evaluates the results for req.
func (r *Results) Refetch(req Request) {
	r.req = req
	r.refresh()
}

// Close stops the results from following the store.
func (r *Results) Close() {
	r.store.detach(r)
}

func (r *Results) refresh() {
	next := r.req.apply(r.store.snapshot())
	if sameOrder(r.records, next) {
		return
	}
	r.records = next
	r.notifier.Notify()
}

func sameOrder(a, b []*Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
