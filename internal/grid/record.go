package grid

// Record is one row's worth of data owned by an external provider.
// ID must not change for the lifetime of the record.
type Record[K comparable] interface {
	ID() K

	// Observe registers fn to run whenever one of the record's own fields
	// changes. The returned func removes the registration.
	Observe(fn func()) (cancel func())
}

// Source is an ordered, externally mutated sequence of records.
type Source[K comparable, R Record[K]] interface {
	// Records returns the current sequence in display order.
	Records() []R

	// Observe registers fn to run on structural changes: insertion,
	// removal or reordering.
	Observe(fn func()) (cancel func())
}
