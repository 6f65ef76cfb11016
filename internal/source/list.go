package source

// Identifiable is anything with a stable identifier.
type Identifiable[K comparable] interface {
	ID() K
}

// List is an ordered, observable sequence of records. Structural changes
// (insert, remove, move, replace) notify observers synchronously.
type List[K comparable, R Identifiable[K]] struct {
	notifier Notifier
	records  []R
}

// NewList returns a List holding records in order.
func NewList[K comparable, R Identifiable[K]](records ...R) *List[K, R] {
	return &List[K, R]{records: append([]R(nil), records...)}
}

// Records returns a copy of the current sequence.
func (l *List[K, R]) Records() []R {
	return append([]R(nil), l.records...)
}

// Observe registers fn for structural changes.
func (l *List[K, R]) Observe(fn func()) (cancel func()) {
	return l.notifier.Observe(fn)
}

// Len returns the number of records.
func (l *List[K, R]) Len() int {
	return len(l.records)
}

// Index returns the position of id, or -1.
func (l *List[K, R]) Index(id K) int {
	for i, r := range l.records {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

// Append adds records at the end.
func (l *List[K, R]) Append(records ...R) {
	if len(records) == 0 {
		return
	}
	l.records = append(l.records, records...)
	l.notifier.Notify()
}

// Insert places r at index i, clamped to the list bounds.
func (l *List[K, R]) Insert(i int, r R) {
	if i < 0 {
		i = 0
	}
	if i > len(l.records) {
		i = len(l.records)
	}
	l.records = append(l.records, r)
	copy(l.records[i+1:], l.records[i:])
	l.records[i] = r
	l.notifier.Notify()
}

// Remove deletes the first record with id. It reports whether one was found.
func (l *List[K, R]) Remove(id K) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	l.notifier.Notify()
	return true
}

// Move relocates the record with id to index to, clamped to the list bounds.
func (l *List[K, R]) Move(id K, to int) bool {
	from := l.Index(id)
	if from < 0 {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to >= len(l.records) {
		to = len(l.records) - 1
	}
	if from == to {
		return true
	}
	r := l.records[from]
	l.records = append(l.records[:from], l.records[from+1:]...)
	l.records = append(l.records, r)
	copy(l.records[to+1:], l.records[to:])
	l.records[to] = r
	l.notifier.Notify()
	return true
}

// Replace swaps the whole sequence.
func (l *List[K, R]) Replace(records []R) {
	l.records = append([]R(nil), records...)
	l.notifier.Notify()
}
