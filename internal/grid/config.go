package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one column of the grid.
type Column struct {
	Title string
	Width int
	Align lipgloss.Position
}

// Config holds grid-wide rendering parameters. It is immutable once built.
type Config struct {
	columnSpacing int
	rowSpacing    int
	showHeader    bool
	columns       []Column
	hoverStyle    lipgloss.Style
}

// Option configures a Config.
type Option func(*Config)

// WithColumnSpacing sets the gap, in cells, between columns.
func WithColumnSpacing(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.columnSpacing = n
		}
	}
}

// WithRowSpacing sets the number of blank lines between rows.
func WithRowSpacing(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.rowSpacing = n
		}
	}
}

// WithShowHeader controls whether the header slot is rendered.
func WithShowHeader(show bool) Option {
	return func(c *Config) {
		c.showHeader = show
	}
}

// WithColumns sets the column layout used by Cells.
func WithColumns(cols ...Column) Option {
	return func(c *Config) {
		c.columns = append([]Column(nil), cols...)
	}
}

// WithHoverStyle sets the style applied to the hovered row.
func WithHoverStyle(s lipgloss.Style) Option {
	return func(c *Config) {
		c.hoverStyle = s
	}
}

// NewConfig returns a Config with defaults applied, then opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		columnSpacing: 1,
		showHeader:    true,
		hoverStyle:    lipgloss.NewStyle().Reverse(true),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) ColumnSpacing() int { return c.columnSpacing }

func (c Config) RowSpacing() int { return c.rowSpacing }

func (c Config) ShowHeader() bool { return c.showHeader }

func (c Config) HoverStyle() lipgloss.Style { return c.hoverStyle }

// Columns returns a copy of the column layout.
func (c Config) Columns() []Column {
	return append([]Column(nil), c.columns...)
}

// Width returns the total width of the column layout, including spacing.
// It is zero when no columns are configured.
func (c Config) Width() int {
	if len(c.columns) == 0 {
		return 0
	}
	w := c.columnSpacing * (len(c.columns) - 1)
	for _, col := range c.columns {
		w += col.Width
	}
	return w
}

// Cells lays out values across the configured columns on a single line.
// Each value is padded or truncated to its column width. Values beyond the
// last column are appended as-is.
func (c Config) Cells(values ...string) string {
	gap := strings.Repeat(" ", c.columnSpacing)
	out := make([]string, 0, len(values))
	for i, v := range values {
		if i >= len(c.columns) || c.columns[i].Width <= 0 {
			out = append(out, v)
			continue
		}
		col := c.columns[i]
		style := lipgloss.NewStyle().
			Inline(true).
			Width(col.Width).
			MaxWidth(col.Width).
			Align(col.Align)
		out = append(out, style.Render(v))
	}
	return strings.Join(out, gap)
}
