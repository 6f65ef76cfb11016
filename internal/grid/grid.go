package grid

import "github.com/henrilemoine/tabler/internal/debug"

// HeaderFunc renders the header. It receives the grid's Context and may
// modify it.
type HeaderFunc func(ctx *Context) string

// RowFunc renders the content of one row from its scope.
type RowFunc[K comparable, R Record[K]] func(s *Scope[K, R]) string

// BackgroundFunc renders what is drawn beneath a row's content.
type BackgroundFunc[R any] func(r R) string

// EmptyHeader is the header used when none is supplied.
func EmptyHeader(*Context) string { return "" }

// EmptyBackground is the row background used when none is supplied.
func EmptyBackground[R any](R) string { return "" }

// Grid composes a header, one row per record and row decoration.
type Grid[K comparable, R Record[K]] struct {
	config     Config
	source     Source[K, R]
	header     HeaderFunc
	row        RowFunc[K, R]
	background BackgroundFunc[R]

	state     *Interaction[K]
	projector *Projector[K, R]

	cancelSource func()
	onInvalidate func()
	closed       bool
}

// New returns a Grid over source. A nil header or background is replaced by
// EmptyHeader or EmptyBackground.
func New[K comparable, R Record[K]](
	cfg Config,
	source Source[K, R],
	header HeaderFunc,
	row RowFunc[K, R],
	background BackgroundFunc[R],
) *Grid[K, R] {
	if header == nil {
		header = EmptyHeader
	}
	if background == nil {
		background = EmptyBackground[R]
	}
	g := &Grid[K, R]{
		config:     cfg,
		source:     source,
		header:     header,
		row:        row,
		background: background,
		state:      NewInteraction[K](cfg),
	}
	g.projector = NewProjector[K, R](func(K) { g.invalidate() })
	g.cancelSource = source.Observe(g.invalidate)
	return g
}

// NewWithoutHeader returns a Grid whose header renders nothing.
func NewWithoutHeader[K comparable, R Record[K]](
	cfg Config,
	source Source[K, R],
	row RowFunc[K, R],
	background BackgroundFunc[R],
) *Grid[K, R] {
	return New(cfg, source, EmptyHeader, row, background)
}

// NewWithoutBackground returns a Grid whose rows have no background.
func NewWithoutBackground[K comparable, R Record[K]](
	cfg Config,
	source Source[K, R],
	header HeaderFunc,
	row RowFunc[K, R],
) *Grid[K, R] {
	return New(cfg, source, header, row, EmptyBackground[R])
}

// NewRowsOnly returns a Grid with neither header nor row background.
func NewRowsOnly[K comparable, R Record[K]](
	cfg Config,
	source Source[K, R],
	row RowFunc[K, R],
) *Grid[K, R] {
	return New(cfg, source, EmptyHeader, row, EmptyBackground[R])
}

// Config returns the grid's configuration.
func (g *Grid[K, R]) Config() Config { return g.config }

// Context returns the context shared with the header slot.
func (g *Grid[K, R]) Context() *Context { return g.state.Context() }

// Interaction returns the grid's hover and context state.
func (g *Grid[K, R]) Interaction() *Interaction[K] { return g.state }

// OnInvalidate sets fn to run whenever the source, a record or the context
// changes. The host uses it to schedule a redraw.
func (g *Grid[K, R]) OnInvalidate(fn func()) {
	g.onInvalidate = fn
}

// UpdateContext applies fn to the context and invalidates the grid.
func (g *Grid[K, R]) UpdateContext(fn func(ctx *Context)) {
	fn(g.state.Context())
	g.invalidate()
}

// Enter marks id hovered.
func (g *Grid[K, R]) Enter(id K) {
	g.state.Enter(id)
	g.invalidate()
}

// Exit clears the hover state if id is still the hovered row.
func (g *Grid[K, R]) Exit(id K) {
	if g.state.Exit(id) {
		g.invalidate()
	}
}

// Hovered returns the hovered id, if any. A row that has left the source
// is no longer hovered.
func (g *Grid[K, R]) Hovered() (K, bool) {
	g.sync()
	return g.state.Hovered()
}

// Refresh forces every row to render again on the next Render, for changes
// the records cannot report themselves, such as a new terminal width.
func (g *Grid[K, R]) Refresh() {
	g.projector.Invalidate()
}

// RenderCount returns how many times the row slot has run for id's current
// scope, or zero when id has no scope.
func (g *Grid[K, R]) RenderCount(id K) int {
	s, ok := g.projector.Scope(id)
	if !ok {
		return 0
	}
	return s.renders
}

// Render syncs with the source and composes the current frame.
func (g *Grid[K, R]) Render() Frame[K] {
	scopes := g.sync()

	f := Frame[K]{config: g.config}
	ctx := g.state.Context()
	if ctx.ShowHeader {
		if h := g.header(ctx); h != "" {
			f.Header = h
			f.HasHeader = true
		}
	}

	f.Rows = make([]Row[K], 0, len(scopes))
	for _, s := range scopes {
		f.Rows = append(f.Rows, Row[K]{
			ID:         s.id,
			Content:    s.render(g.row),
			Background: g.background(s.record),
			Hovered:    g.state.IsHovered(s.id),
		})
	}
	return f
}

// Close unsubscribes from the source and tears down every scope.
func (g *Grid[K, R]) Close() {
	g.closed = true
	if g.cancelSource != nil {
		g.cancelSource()
		g.cancelSource = nil
	}
	g.projector.Close()
}

// sync brings the scopes in line with the source and drops the hover when
// the hovered record has no live scope.
func (g *Grid[K, R]) sync() []*Scope[K, R] {
	if g.closed {
		return nil
	}
	scopes := g.projector.Sync(g.source.Records())
	if id, ok := g.state.Hovered(); ok {
		if _, live := g.projector.Scope(id); !live {
			g.state.ClearHovered()
			debug.Log("grid: hovered row %v left the source", id)
		}
	}
	return scopes
}

func (g *Grid[K, R]) invalidate() {
	if g.onInvalidate != nil {
		g.onInvalidate()
	}
}
