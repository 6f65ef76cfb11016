package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/henrilemoine/tabler/internal/debug"
)

// ErrUnsupportedFormat is returned for data files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// document is the on-disk layout of a task file.
type document struct {
	Tasks []record `toml:"tasks" yaml:"tasks"`
}

type record struct {
	ID       int    `toml:"id" yaml:"id"`
	Name     string `toml:"name" yaml:"name"`
	Status   string `toml:"status,omitempty" yaml:"status,omitempty"`
	Priority int    `toml:"priority,omitempty" yaml:"priority,omitempty"`
	Done     bool   `toml:"done" yaml:"done"`
}

func (r record) fields() Fields {
	return Fields{Name: r.Name, Status: r.Status, Priority: r.Priority, Done: r.Done}
}

func recordOf(t *Task) record {
	f := t.Fields()
	return record{ID: t.ID(), Name: f.Name, Status: f.Status, Priority: f.Priority, Done: f.Done}
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

func lockPath(path string) string {
	return path + ".lock"
}

// ReadFile reads the tasks stored at path under a shared lock. A missing
// file yields no tasks.
func ReadFile(path string) ([]*Task, error) {
	defer debug.Timed("read " + path)()

	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	lock := flock.New(lockPath(path))
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var doc document
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &doc)
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	tasks := make([]*Task, 0, len(doc.Tasks))
	for _, r := range doc.Tasks {
		tasks = append(tasks, NewTask(r.ID, r.fields()))
	}
	return tasks, nil
}

// WriteFile stores tasks at path under an exclusive lock, replacing the
// file atomically.
func WriteFile(path string, tasks []*Task) error {
	defer debug.Timed("write " + path)()

	f, err := formatFor(path)
	if err != nil {
		return err
	}

	doc := document{Tasks: make([]record, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, recordOf(t))
	}

	var data []byte
	switch f {
	case formatTOML:
		data, err = toml.Marshal(doc)
	case formatYAML:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	lock := flock.New(lockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
