package grid

import (
	"reflect"

	"github.com/henrilemoine/tabler/internal/debug"
)

// Scope is the observation scope of one record. It is the handle passed to
// the row slot, and it caches the last row render until the record changes.
type Scope[K comparable, R Record[K]] struct {
	record  R
	id      K
	cancel  func()
	version int
	dirty   bool
	content string
	renders int
	closed  bool
}

// Record returns the record this scope observes.
func (s *Scope[K, R]) Record() R { return s.record }

// ID returns the record's identifier.
func (s *Scope[K, R]) ID() K { return s.id }

// Version counts the field changes seen since the scope was opened.
func (s *Scope[K, R]) Version() int { return s.version }

// render returns the cached row content, calling fn only when the record
// changed since the last call.
func (s *Scope[K, R]) render(fn RowFunc[K, R]) string {
	if s.dirty {
		s.content = fn(s)
		s.dirty = false
		s.renders++
	}
	return s.content
}

func (s *Scope[K, R]) close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Projector keeps one Scope per record identity across source changes.
// Scopes of records that leave the source are torn down; a record that comes
// back later gets a fresh scope.
type Projector[K comparable, R Record[K]] struct {
	scopes   map[K]*Scope[K, R]
	order    []*Scope[K, R]
	onChange func(id K)
}

// NewProjector returns an empty Projector. onChange, if non-nil, runs after
// any observed record reports a field change.
func NewProjector[K comparable, R Record[K]](onChange func(id K)) *Projector[K, R] {
	return &Projector[K, R]{
		scopes:   make(map[K]*Scope[K, R]),
		onChange: onChange,
	}
}

// Sync brings the scopes in line with records and returns them in source
// order. When an id appears more than once only the first occurrence is kept.
func (p *Projector[K, R]) Sync(records []R) []*Scope[K, R] {
	seen := make(map[K]struct{}, len(records))
	order := make([]*Scope[K, R], 0, len(records))

	for _, r := range records {
		id := r.ID()
		if _, dup := seen[id]; dup {
			debug.Log("grid: duplicate record id %v ignored", id)
			continue
		}
		seen[id] = struct{}{}

		s, ok := p.scopes[id]
		switch {
		case !ok:
			s = p.open(id, r)
			p.scopes[id] = s
		case !sameRecord(s.record, r):
			// Same identity, new instance: observe the new one.
			s.close()
			s = p.open(id, r)
			p.scopes[id] = s
		}
		order = append(order, s)
	}

	for id, s := range p.scopes {
		if _, ok := seen[id]; !ok {
			s.close()
			delete(p.scopes, id)
			debug.Log("grid: closed scope %v", id)
		}
	}

	p.order = order
	return order
}

// Scope returns the live scope for id.
func (p *Projector[K, R]) Scope(id K) (*Scope[K, R], bool) {
	s, ok := p.scopes[id]
	return s, ok
}

// Len returns the number of live scopes.
func (p *Projector[K, R]) Len() int {
	return len(p.scopes)
}

// Scopes returns the scopes from the last Sync, in source order.
func (p *Projector[K, R]) Scopes() []*Scope[K, R] {
	return p.order
}

// Invalidate marks every scope dirty so each row renders again.
func (p *Projector[K, R]) Invalidate() {
	for _, s := range p.scopes {
		s.dirty = true
	}
}

// Close tears down every scope.
func (p *Projector[K, R]) Close() {
	for id, s := range p.scopes {
		s.close()
		delete(p.scopes, id)
	}
	p.order = nil
}

func (p *Projector[K, R]) open(id K, r R) *Scope[K, R] {
	s := &Scope[K, R]{record: r, id: id, dirty: true}
	s.cancel = r.Observe(func() {
		if s.closed {
			return
		}
		s.version++
		s.dirty = true
		if p.onChange != nil {
			p.onChange(id)
		}
	})
	debug.Log("grid: opened scope %v", id)
	return s
}

// sameRecord reports whether a and b are the same record instance. Records
// whose dynamic type is not comparable are treated as the same.
func sameRecord[R any](a, b R) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() {
		return va.Type() == vb.Type()
	}
	return va.Equal(vb)
}
