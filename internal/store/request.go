package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// SortKey selects the field results are ordered by.
type SortKey int

const (
	SortByID SortKey = iota
	SortByName
	SortByStatus
	SortByPriority
)

var sortKeyNames = []string{"id", "name", "status", "priority"}

func (k SortKey) String() string {
	if int(k) < 0 || int(k) >= len(sortKeyNames) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

// Next returns the following sort key, wrapping around.
func (k SortKey) Next() SortKey {
	return SortKey((int(k) + 1) % len(sortKeyNames))
}

// ParseSortKey parses a sort key name such as "priority".
func ParseSortKey(s string) (SortKey, error) {
	for i, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return SortKey(i), nil
		}
	}
	return SortByID, fmt.Errorf("unknown sort key %q", s)
}

// Request describes which tasks a fetch returns and in what order.
type Request struct {
	Sort       SortKey
	Descending bool

	// Query fuzzy-matches task names. Empty matches everything.
	Query string

	HideDone bool
}

// taskSource implements fuzzy.Source over task names.
type taskSource []*Task

func (s taskSource) String(i int) string { return s[i].Name() }

func (s taskSource) Len() int { return len(s) }

// apply filters and sorts tasks according to r.
func (r Request) apply(tasks []*Task) []*Task {
	var out []*Task
	for _, t := range tasks {
		if r.HideDone && t.Done() {
			continue
		}
		out = append(out, t)
	}

	if r.Query != "" {
		matches := fuzzy.FindFrom(r.Query, taskSource(out))
		matched := make([]*Task, 0, len(matches))
		for _, m := range matches {
			matched = append(matched, out[m.Index])
		}
		out = matched
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if r.Descending {
			a, b = b, a
		}
		switch r.Sort {
		case SortByName:
			if na, nb := strings.ToLower(a.Name()), strings.ToLower(b.Name()); na != nb {
				return na < nb
			}
		case SortByStatus:
			if a.Status() != b.Status() {
				return a.Status() < b.Status()
			}
		case SortByPriority:
			if a.Priority() != b.Priority() {
				return a.Priority() < b.Priority()
			}
		}
		return a.ID() < b.ID()
	})
	return out
}
