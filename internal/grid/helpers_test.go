package grid

import (
	"github.com/henrilemoine/tabler/internal/source"
)

// item is a minimal observable record for tests.
type item struct {
	id       int
	name     string
	notifier source.Notifier
}

func newItem(id int, name string) *item {
	return &item{id: id, name: name}
}

func (i *item) ID() int { return i.id }

func (i *item) Observe(fn func()) func() { return i.notifier.Observe(fn) }

func (i *item) rename(name string) {
	i.name = name
	i.notifier.Notify()
}

func newList(items ...*item) *source.List[int, *item] {
	return source.NewList[int, *item](items...)
}

func nameRow(s *Scope[int, *item]) string {
	return s.Record().name
}

func literalHeader(text string) HeaderFunc {
	return func(*Context) string { return text }
}

func rowIDs(f Frame[int]) []int {
	ids := make([]int, 0, len(f.Rows))
	for _, r := range f.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}
