package grid

import "testing"

func TestSetHovered(t *testing.T) {
	s := NewInteraction[int](NewConfig())

	if _, ok := s.Hovered(); ok {
		t.Fatal("Expected nothing hovered initially")
	}

	s.SetHovered(3)
	if !s.IsHovered(3) {
		t.Error("Expected 3 to be hovered")
	}
	for _, other := range []int{0, 1, 2, 4} {
		if s.IsHovered(other) {
			t.Errorf("Expected %d not to be hovered", other)
		}
	}

	s.SetHovered(4)
	if s.IsHovered(3) || !s.IsHovered(4) {
		t.Error("Expected SetHovered to overwrite the previous value")
	}

	s.ClearHovered()
	if s.IsHovered(4) {
		t.Error("Expected ClearHovered to clear the hover")
	}
}

func TestZeroIDIsNotHoveredByDefault(t *testing.T) {
	s := NewInteraction[int](NewConfig())
	if s.IsHovered(0) {
		t.Error("The zero id must not read as hovered before any enter")
	}
}

func TestExitAfterEnter(t *testing.T) {
	s := NewInteraction[string](NewConfig())

	s.Enter("A")
	s.Enter("B")
	if s.Exit("A") {
		t.Error("Expected stale exit to be ignored")
	}

	id, ok := s.Hovered()
	if !ok || id != "B" {
		t.Errorf("Expected B hovered, got %q (%v)", id, ok)
	}

	if !s.Exit("B") {
		t.Error("Expected exit of the hovered row to clear it")
	}
	if _, ok := s.Hovered(); ok {
		t.Error("Expected nothing hovered after exit")
	}
}

func TestContextStartsFromConfig(t *testing.T) {
	s := NewInteraction[int](NewConfig(WithShowHeader(false)))
	ctx := s.Context()

	if ctx.ShowHeader {
		t.Error("Expected context ShowHeader to follow config")
	}
	if ctx.SortColumn != NoSort {
		t.Errorf("Expected no sort column, got %d", ctx.SortColumn)
	}
	if ctx.Config().ShowHeader() {
		t.Error("Expected context to expose the config it was built from")
	}
}

func TestToggleSort(t *testing.T) {
	ctx := newContext(NewConfig())

	ctx.ToggleSort(1)
	if ctx.SortColumn != 1 || ctx.SortDescending {
		t.Errorf("Expected ascending sort on 1, got %d/%v", ctx.SortColumn, ctx.SortDescending)
	}
	if got := ctx.SortIndicator(1); got != "↑" {
		t.Errorf("Expected ↑, got %q", got)
	}

	ctx.ToggleSort(1)
	if !ctx.SortDescending {
		t.Error("Expected second toggle to flip direction")
	}
	if got := ctx.SortIndicator(1); got != "↓" {
		t.Errorf("Expected ↓, got %q", got)
	}

	ctx.ToggleSort(2)
	if ctx.SortColumn != 2 || ctx.SortDescending {
		t.Error("Expected new column to start ascending")
	}
	if got := ctx.SortIndicator(1); got != "" {
		t.Errorf("Expected no indicator for unsorted column, got %q", got)
	}
}
