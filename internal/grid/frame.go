package grid

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Row is one rendered row.
type Row[K comparable] struct {
	ID         K
	Content    string
	Background string
	Hovered    bool
}

// Frame is the output of one Render.
type Frame[K comparable] struct {
	Header    string
	HasHeader bool
	Rows      []Row[K]

	config Config
}

// span is the half-open line range [start, end) a row occupies.
type span[K comparable] struct {
	id         K
	start, end int
}

// String renders the frame as terminal text.
func (f Frame[K]) String() string {
	lines, _ := f.layout()
	return strings.Join(lines, "\n")
}

// RowAt returns the id of the row drawn on line, counting from the first
// line of String's output.
func (f Frame[K]) RowAt(line int) (K, bool) {
	_, spans := f.layout()
	for _, s := range spans {
		if line >= s.start && line < s.end {
			return s.id, true
		}
	}
	var zero K
	return zero, false
}

// Height returns the number of lines String produces.
func (f Frame[K]) Height() int {
	lines, _ := f.layout()
	return len(lines)
}

func (f Frame[K]) layout() ([]string, []span[K]) {
	var lines []string
	if f.HasHeader {
		lines = append(lines, strings.Split(f.Header, "\n")...)
	}

	spans := make([]span[K], 0, len(f.Rows))
	for i, r := range f.Rows {
		if i > 0 {
			for j := 0; j < f.config.RowSpacing(); j++ {
				lines = append(lines, "")
			}
		}
		body := overlay(r.Content, r.Background)
		if r.Hovered {
			body = f.config.HoverStyle().Render(body)
		}
		start := len(lines)
		lines = append(lines, strings.Split(body, "\n")...)
		spans = append(spans, span[K]{id: r.ID, start: start, end: len(lines)})
	}
	return lines, spans
}

// overlay draws content over background line by line. Wherever the
// background is wider than the content line, its remainder shows through.
func overlay(content, background string) string {
	if background == "" {
		return content
	}
	cl := strings.Split(content, "\n")
	bl := strings.Split(background, "\n")
	n := len(cl)
	if len(bl) > n {
		n = len(bl)
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		var c, b string
		if i < len(cl) {
			c = cl[i]
		}
		if i < len(bl) {
			b = bl[i]
		}
		wc, wb := ansi.StringWidth(c), ansi.StringWidth(b)
		if wb > wc {
			c += ansi.Cut(b, wc, wb)
		}
		out[i] = c
	}
	return strings.Join(out, "\n")
}
