package grid

import (
	"testing"
)

func TestProjectorPreservesOrder(t *testing.T) {
	p := NewProjector[int, *item](nil)
	scopes := p.Sync([]*item{newItem(3, "c"), newItem(1, "a"), newItem(2, "b")})

	want := []int{3, 1, 2}
	if len(scopes) != len(want) {
		t.Fatalf("Expected %d scopes, got %d", len(want), len(scopes))
	}
	for i, s := range scopes {
		if s.ID() != want[i] {
			t.Errorf("scope %d: expected id %d, got %d", i, want[i], s.ID())
		}
	}
}

func TestProjectorReusesScopes(t *testing.T) {
	a, b, c := newItem(1, "a"), newItem(2, "b"), newItem(3, "c")
	p := NewProjector[int, *item](nil)

	first := p.Sync([]*item{a, b, c})
	second := p.Sync([]*item{c, a, b})

	if second[0] != first[2] || second[1] != first[0] || second[2] != first[1] {
		t.Error("Expected reorder to reuse existing scopes")
	}
	if a.notifier.Observers() != 1 {
		t.Errorf("Expected one subscription per record, got %d", a.notifier.Observers())
	}
}

func TestProjectorTearsDownRemovedScopes(t *testing.T) {
	a, b := newItem(1, "a"), newItem(2, "b")
	p := NewProjector[int, *item](nil)

	p.Sync([]*item{a, b})
	p.Sync([]*item{a})

	if p.Len() != 1 {
		t.Errorf("Expected 1 live scope, got %d", p.Len())
	}
	if b.notifier.Observers() != 0 {
		t.Error("Expected removed record to be unsubscribed")
	}
	if _, ok := p.Scope(2); ok {
		t.Error("Expected no scope for removed record")
	}
}

func TestProjectorDuplicateIDsFirstWins(t *testing.T) {
	first, dup := newItem(1, "first"), newItem(1, "dup")
	p := NewProjector[int, *item](nil)

	scopes := p.Sync([]*item{first, newItem(2, "b"), dup})

	if len(scopes) != 2 {
		t.Fatalf("Expected duplicates to be dropped, got %d scopes", len(scopes))
	}
	if scopes[0].Record() != first {
		t.Error("Expected first occurrence to own the scope")
	}
	if dup.notifier.Observers() != 0 {
		t.Error("Expected duplicate record not to be observed")
	}
}

func TestProjectorRebindsNewInstance(t *testing.T) {
	old, replacement := newItem(1, "old"), newItem(1, "new")
	p := NewProjector[int, *item](nil)

	p.Sync([]*item{old})
	scopes := p.Sync([]*item{replacement})

	if scopes[0].Record() != replacement {
		t.Error("Expected scope to follow the new instance")
	}
	if old.notifier.Observers() != 0 || replacement.notifier.Observers() != 1 {
		t.Error("Expected subscription to move to the new instance")
	}
}

func TestProjectorFieldChangeMarksOnlyThatScope(t *testing.T) {
	a, b := newItem(1, "a"), newItem(2, "b")
	var changed []int
	p := NewProjector[int, *item](func(id int) { changed = append(changed, id) })

	scopes := p.Sync([]*item{a, b})
	for _, s := range scopes {
		s.render(nameRow)
	}

	b.rename("bb")

	if len(changed) != 1 || changed[0] != 2 {
		t.Errorf("Expected change callback for 2 only, got %v", changed)
	}
	if scopes[0].dirty || !scopes[1].dirty {
		t.Error("Expected only the changed record's scope to be dirty")
	}
	if scopes[1].Version() != 1 {
		t.Errorf("Expected version 1, got %d", scopes[1].Version())
	}
}

func TestProjectorIgnoresChangesAfterClose(t *testing.T) {
	a := newItem(1, "a")
	calls := 0
	p := NewProjector[int, *item](func(int) { calls++ })

	p.Sync([]*item{a})
	p.Close()
	a.rename("late")

	if calls != 0 {
		t.Errorf("Expected no callbacks after Close, got %d", calls)
	}
	if p.Len() != 0 {
		t.Errorf("Expected no scopes after Close, got %d", p.Len())
	}
}
