package grid

// Interaction owns the hover state and the Context of one grid.
type Interaction[K comparable] struct {
	hovered K
	active  bool
	ctx     *Context
}

// NewInteraction returns an Interaction with nothing hovered.
func NewInteraction[K comparable](cfg Config) *Interaction[K] {
	return &Interaction[K]{ctx: newContext(cfg)}
}

// SetHovered marks id as hovered, replacing any previous value.
func (s *Interaction[K]) SetHovered(id K) {
	s.hovered = id
	s.active = true
}

// ClearHovered unconditionally clears the hover state.
func (s *Interaction[K]) ClearHovered() {
	var zero K
	s.hovered = zero
	s.active = false
}

// Enter handles the pointer entering the row for id.
func (s *Interaction[K]) Enter(id K) {
	s.SetHovered(id)
}

// Exit handles the pointer leaving the row for id. It only clears the hover
// state if id is still the hovered row, so an exit delivered after the
// neighbouring row's enter does not wipe the newer hover.
func (s *Interaction[K]) Exit(id K) bool {
	if !s.active || s.hovered != id {
		return false
	}
	s.ClearHovered()
	return true
}

// IsHovered reports whether id is the hovered row.
func (s *Interaction[K]) IsHovered(id K) bool {
	return s.active && s.hovered == id
}

// Hovered returns the hovered id, if any.
func (s *Interaction[K]) Hovered() (K, bool) {
	return s.hovered, s.active
}

// Context returns the shared grid context.
func (s *Interaction[K]) Context() *Context {
	return s.ctx
}
