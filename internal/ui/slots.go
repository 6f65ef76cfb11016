package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henrilemoine/tabler/internal/grid"
	"github.com/henrilemoine/tabler/internal/store"
)

// Column indexes, in display order. They match store.SortKey values.
const (
	ColumnID = iota
	ColumnName
	ColumnStatus
	ColumnPriority
)

// UrgentPriority is the priority at and above which a row gets the urgent
// background marker.
const UrgentPriority = 3

// Columns returns the task grid's column layout for a content width.
// The name column takes whatever the fixed columns leave over.
func Columns(width, spacing int) []grid.Column {
	cols := []grid.Column{
		{Title: "#", Width: 4, Align: lipgloss.Right},
		{Title: "TASK", Width: 0},
		{Title: "STATUS", Width: 8},
		{Title: "PRI", Width: 4, Align: lipgloss.Right},
	}

	fixed := 2 // done marker and its space
	for _, c := range cols {
		fixed += c.Width
	}
	fixed += spacing * (len(cols) - 1)

	cols[ColumnName].Width = width - fixed
	if cols[ColumnName].Width < 8 {
		cols[ColumnName].Width = 8
	}
	return cols
}

// HeaderSlot renders the column titles with the sort indicator taken from
// the grid context.
func HeaderSlot(ctx *grid.Context) string {
	cfg := ctx.Config()
	cols := cfg.Columns()
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title + ctx.SortIndicator(i)
	}
	return HeaderStyle.Render("  " + cfg.Cells(titles...))
}

// RowSlot returns the row content slot for tasks.
func RowSlot(cfg grid.Config) grid.RowFunc[int, *store.Task] {
	return func(s *grid.Scope[int, *store.Task]) string {
		t := s.Record()

		marker := SymbolOpen
		name := NormalStyle.Render(t.Name())
		if t.Done() {
			marker = StatusStyle.Render(SymbolDone)
			name = DoneStyle.Render(t.Name())
		}

		return marker + " " + cfg.Cells(
			strconv.Itoa(t.ID()),
			name,
			statusStyle(t.Status()).Render(t.Status()),
			strconv.Itoa(t.Priority()),
		)
	}
}

// BackgroundSlot returns the background slot for tasks: urgent, unfinished
// tasks get a marker at the right edge of width.
func BackgroundSlot(width int) grid.BackgroundFunc[*store.Task] {
	return func(t *store.Task) string {
		if t.Done() || t.Priority() < UrgentPriority || width <= 0 {
			return ""
		}
		return strings.Repeat(" ", width-1) + UrgentStyle.Render(SymbolUrgent)
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case store.StatusActive:
		return ActiveStyle
	case store.StatusBlocked:
		return BlockedStyle
	default:
		return TodoStyle
	}
}
