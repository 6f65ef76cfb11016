package grid

// NoSort is the SortColumn value when no column is sorted.
const NoSort = -1

// Context is the grid-wide state shared with the header slot. The header
// receives a pointer and may change it; changes made through
// Grid.UpdateContext invalidate the grid.
type Context struct {
	// ShowHeader starts from Config.ShowHeader.
	ShowHeader bool

	SortColumn     int
	SortDescending bool

	config Config
}

func newContext(cfg Config) *Context {
	return &Context{
		ShowHeader: cfg.ShowHeader(),
		SortColumn: NoSort,
		config:     cfg,
	}
}

// Config returns the configuration the grid was built with.
func (c *Context) Config() Config {
	return c.config
}

// ToggleSort selects col as the sort column, flipping the direction if it
// was already selected.
func (c *Context) ToggleSort(col int) {
	if c.SortColumn == col {
		c.SortDescending = !c.SortDescending
		return
	}
	c.SortColumn = col
	c.SortDescending = false
}

// SortIndicator returns the arrow to show next to column col's title, or
// the empty string when col is not the sort column.
func (c *Context) SortIndicator(col int) string {
	if c.SortColumn != col {
		return ""
	}
	if c.SortDescending {
		return "↓"
	}
	return "↑"
}
