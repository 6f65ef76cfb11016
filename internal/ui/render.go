package ui

import (
	"fmt"
	"path/filepath"
	"strings"
)

// State constants (matching app.State)
const (
	StateList = iota
	StateFilter
	StateHelp
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State        int
	Grid         string
	RowCount     int
	TotalCount   int
	Width        int
	Height       int
	Err          error
	Status       string
	DataPath     string
	SortLabel    string
	FilterInput  string
	FilterValue  string
	ShowHelp     bool
	HelpSections []HelpSection
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 40

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// ContentWidth returns the width available inside the box for a terminal
// of the given width.
func ContentWidth(width int) int {
	if width < MinWidth {
		width = MinWidth
	}
	// Border and horizontal padding on both sides.
	return width - 2 - 4
}

// GridLeft is the screen column on which the grid starts: the left border
// and two cells of padding.
const GridLeft = 3

// InGridColumns reports whether screen column x falls inside the box
// content for a terminal of the given width.
func InGridColumns(x, width int) bool {
	return x >= GridLeft && x < GridLeft+ContentWidth(width)
}

// GridTop returns the screen line on which the grid starts, so mouse
// coordinates can be mapped to grid lines.
func GridTop(p RenderParams) int {
	// Border, top padding, title and divider.
	top := 4
	if p.State == StateFilter || p.FilterValue != "" {
		top++
	}
	if p.Err != nil {
		top++
	}
	return top
}

// Render renders the full UI.
func Render(p RenderParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	switch p.State {
	case StateHelp:
		return renderHelp(p)
	default:
		return renderList(p)
	}
}

// renderList renders the task grid. The number of lines written before the
// grid must stay in step with GridTop.
func renderList(p RenderParams) string {
	var b strings.Builder
	contentWidth := ContentWidth(p.Width)

	title := TitleStyle.Render("TASKS") + "  " + PathStyle.Render(filepath.Base(p.DataPath))
	if p.SortLabel != "" {
		title += "  " + PathStyle.Render("sort: "+p.SortLabel)
	}
	b.WriteString(title + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	if p.State == StateFilter {
		b.WriteString(HeaderStyle.Render("FILTER") + "  " + p.FilterInput + "\n")
	} else if p.FilterValue != "" {
		b.WriteString(PathStyle.Render("filter: "+p.FilterValue) + "\n")
	}

	if p.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.Err.Error()) + "\n")
	}

	if p.Grid == "" {
		msg := "No tasks. Add some to " + p.DataPath
		if p.TotalCount > 0 {
			msg = "No matching tasks."
		}
		b.WriteString(PathStyle.Render(msg) + "\n")
	} else {
		b.WriteString(p.Grid + "\n")
	}

	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")

	footer := PathStyle.Render(fmt.Sprintf("%d of %d", p.RowCount, p.TotalCount))
	if p.Status != "" {
		footer += "  " + StatusStyle.Render(p.Status)
	}
	b.WriteString(footer)

	if p.ShowHelp {
		helpText := compactHelp(
			"space done • s sort • / filter • h header • w save • R reload • ? help • q quit",
			"space•s•/•h•w•R•?•q",
			p.Width,
		)
		b.WriteString("\n" + HelpStyle.Render(helpText))
	}

	return wrapInBox(b.String(), p.Width)
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams) string {
	var b strings.Builder
	contentWidth := ContentWidth(p.Width)

	b.WriteString(TitleStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for i, section := range p.HelpSections {
		b.WriteString(NormalStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, 40)) + "\n")
		for _, binding := range section.Bindings {
			keys := binding.Keys
			if len(keys) < 10 {
				keys = keys + strings.Repeat(" ", 10-len(keys))
			}
			b.WriteString(PathStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return wrapInBox(b.String(), p.Width)
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width int) string {
	boxWidth := width - 2
	if boxWidth < MinWidth-2 {
		boxWidth = MinWidth - 2
	}
	return BoxStyle.Width(boxWidth).Render(content)
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 90 {
		return full
	}
	return compact
}
