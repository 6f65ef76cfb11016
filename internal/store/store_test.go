package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleStore() *Store {
	return New("",
		NewTask(1, Fields{Name: "write docs", Status: StatusTodo, Priority: 2}),
		NewTask(2, Fields{Name: "fix parser", Status: StatusActive, Priority: 3}),
		NewTask(3, Fields{Name: "release", Status: StatusBlocked, Priority: 1, Done: true}),
		NewTask(4, Fields{Name: "fix docs link", Status: StatusTodo, Priority: 1}),
	)
}

func taskIDs(tasks []*Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID())
	}
	return out
}

func TestFetchSortAndFilter(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []int
	}{
		{"default by id", Request{}, []int{1, 2, 3, 4}},
		{"by id descending", Request{Descending: true}, []int{4, 3, 2, 1}},
		{"by name", Request{Sort: SortByName}, []int{4, 2, 3, 1}},
		{"by priority", Request{Sort: SortByPriority}, []int{3, 4, 1, 2}},
		{"by priority descending", Request{Sort: SortByPriority, Descending: true}, []int{2, 1, 4, 3}},
		{"by status", Request{Sort: SortByStatus}, []int{2, 3, 1, 4}},
		{"hide done", Request{HideDone: true}, []int{1, 2, 4}},
		{"fuzzy query", Request{Query: "fix"}, []int{2, 4}},
		{"query no match", Request{Query: "zzz"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleStore().Fetch(tt.req)
			if diff := cmp.Diff(tt.want, taskIDs(r.Records())); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateNotifiesTaskOnly(t *testing.T) {
	s := sampleStore()
	r := s.Fetch(Request{})
	t1, _ := s.Get(1)
	t2, _ := s.Get(2)

	var task1, task2, structural int
	t1.Observe(func() { task1++ })
	t2.Observe(func() { task2++ })
	r.Observe(func() { structural++ })

	if err := s.Update(1, func(f *Fields) { f.Done = true }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if !t1.Done() {
		t.Error("Expected task 1 to be done")
	}
	if task1 != 1 || task2 != 0 {
		t.Errorf("Expected only task 1 notified, got %d/%d", task1, task2)
	}
	if structural != 0 {
		t.Errorf("Expected no structural change, got %d", structural)
	}
}

func TestUpdateWithoutChangeIsSilent(t *testing.T) {
	s := sampleStore()
	t1, _ := s.Get(1)
	calls := 0
	t1.Observe(func() { calls++ })

	if err := s.Update(1, func(f *Fields) {}); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no notification, got %d", calls)
	}
}

func TestUpdateReordersResults(t *testing.T) {
	s := sampleStore()
	r := s.Fetch(Request{Sort: SortByPriority})
	structural := 0
	r.Observe(func() { structural++ })

	if err := s.Update(2, func(f *Fields) { f.Priority = 0 }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if structural != 1 {
		t.Errorf("Expected 1 structural notification, got %d", structural)
	}
	if got := taskIDs(r.Records()); got[0] != 2 {
		t.Errorf("Expected task 2 first, got %v", got)
	}
}

func TestUpdateHidesDoneTask(t *testing.T) {
	s := sampleStore()
	r := s.Fetch(Request{HideDone: true})

	if err := s.Update(1, func(f *Fields) { f.Done = true }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if diff := cmp.Diff([]int{2, 4}, taskIDs(r.Records())); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	err := sampleStore().Update(99, func(f *Fields) {})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestInsertAndDelete(t *testing.T) {
	s := sampleStore()
	r := s.Fetch(Request{})

	task := s.Insert(Fields{Name: "new"})
	if task.ID() != 5 {
		t.Errorf("Expected next id 5, got %d", task.ID())
	}
	if len(r.Records()) != 5 {
		t.Errorf("Expected results to include the new task, got %d", len(r.Records()))
	}

	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 3, 4, 5}, taskIDs(r.Records())); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if err := s.Delete(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRefetchAndClose(t *testing.T) {
	s := sampleStore()
	r := s.Fetch(Request{})
	structural := 0
	r.Observe(func() { structural++ })

	r.Refetch(Request{Query: "docs"})
	if structural != 1 {
		t.Errorf("Expected 1 notification, got %d", structural)
	}
	if r.Request().Query != "docs" {
		t.Errorf("Expected request to be kept, got %+v", r.Request())
	}

	r.Close()
	s.Insert(Fields{Name: "more docs"})
	if len(r.Records()) != 2 {
		t.Errorf("Expected closed results not to follow the store, got %d", len(r.Records()))
	}
}

func TestReplaceKeepsInstances(t *testing.T) {
	s := sampleStore()
	t1, _ := s.Get(1)
	calls := 0
	t1.Observe(func() { calls++ })

	s.Replace([]*Task{
		NewTask(1, Fields{Name: "write docs", Status: StatusActive, Priority: 2}),
		NewTask(7, Fields{Name: "fresh"}),
	})

	got, _ := s.Get(1)
	if got != t1 {
		t.Error("Expected surviving task to keep its instance")
	}
	if calls != 1 || t1.Status() != StatusActive {
		t.Errorf("Expected in-place update with one notification, got %d calls", calls)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 tasks, got %d", s.Len())
	}
	if _, ok := s.Get(2); ok {
		t.Error("Expected task 2 to be gone")
	}
}

func TestNewDropsDuplicateIDs(t *testing.T) {
	s := New("", NewTask(1, Fields{Name: "a"}), NewTask(1, Fields{Name: "b"}))
	if s.Len() != 1 {
		t.Errorf("Expected 1 task, got %d", s.Len())
	}
	if task, _ := s.Get(1); task.Name() != "a" {
		t.Errorf("Expected first task to win, got %q", task.Name())
	}
}

func TestOpenTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	content := `[[tasks]]
id = 1
name = "write docs"
status = "todo"
priority = 2

[[tasks]]
id = 2
name = "ship"
done = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test data: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Expected 2 tasks, got %d", s.Len())
	}
	t1, _ := s.Get(1)
	want := Fields{Name: "write docs", Status: StatusTodo, Priority: 2}
	if diff := cmp.Diff(want, t1.Fields()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	t2, _ := s.Get(2)
	if !t2.Done() {
		t.Error("Expected task 2 to be done")
	}
}

func TestOpenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `tasks:
  - id: 3
    name: triage
    status: active
    priority: 1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test data: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	task, ok := s.Get(3)
	if !ok || task.Name() != "triage" || task.Status() != StatusActive {
		t.Errorf("Unexpected task %+v", task)
	}
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d tasks", s.Len())
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "tasks.csv"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks"+ext)
			s := sampleStore()
			s.path = path

			if err := s.Save(); err != nil {
				t.Fatalf("Save() error: %v", err)
			}

			loaded, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			if loaded.Len() != s.Len() {
				t.Fatalf("Expected %d tasks, got %d", s.Len(), loaded.Len())
			}
			for _, orig := range s.snapshot() {
				got, ok := loaded.Get(orig.ID())
				if !ok {
					t.Errorf("task %d missing after reload", orig.ID())
					continue
				}
				if diff := cmp.Diff(orig.Fields(), got.Fields()); diff != "" {
					t.Errorf("task %d mismatch (-want +got):\n%s", orig.ID(), diff)
				}
			}
		})
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := sampleStore().Save(); err == nil {
		t.Error("Expected error saving a store without a path")
	}
}

func TestParseSortKey(t *testing.T) {
	for _, k := range []SortKey{SortByID, SortByName, SortByStatus, SortByPriority} {
		got, err := ParseSortKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseSortKey(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseSortKey("color"); err == nil {
		t.Error("Expected error for unknown sort key")
	}
	if SortByPriority.Next() != SortByID {
		t.Error("Expected Next to wrap around")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := sampleStore()
	snap := s.Snapshot()

	if err := s.Update(1, func(f *Fields) { f.Name = "renamed" }); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if snap[0].Name() != "write docs" {
		t.Errorf("Expected snapshot to keep old value, got %q", snap[0].Name())
	}
}
