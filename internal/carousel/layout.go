package carousel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/exclusive-store/server/internal/model"
)

// DefaultBreakpoints mirrors the storefront grid: one column on phones and up
// to four on wide screens.
var DefaultBreakpoints = []model.Breakpoint{
	{MinWidth: 0, SlidesPerView: 1},
	{MinWidth: 768, SlidesPerView: 2},
	{MinWidth: 1024, SlidesPerView: 3},
	{MinWidth: 1280, SlidesPerView: 4},
}

// Layout paginates a product list into grid pages.
type Layout struct {
	breakpoints []model.Breakpoint
	rows        int
	loop        bool
}

// ParseBreakpoints reads "minWidth:slides" pairs separated by commas.
func ParseBreakpoints(v string) ([]model.Breakpoint, error) {
	var out []model.Breakpoint
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		width, slides, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("breakpoint %q: expected minWidth:slides", part)
		}
		w, err := strconv.Atoi(strings.TrimSpace(width))
		if err != nil || w < 0 {
			return nil, fmt.Errorf("breakpoint %q: invalid width", part)
		}
		s, err := strconv.Atoi(strings.TrimSpace(slides))
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("breakpoint %q: invalid slides per view", part)
		}
		out = append(out, model.Breakpoint{MinWidth: w, SlidesPerView: s})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no breakpoints in %q", v)
	}
	return out, nil
}

// NewLayout builds a layout; the breakpoints are sorted by width.
func NewLayout(breakpoints []model.Breakpoint, rows int, loop bool) (*Layout, error) {
	if len(breakpoints) == 0 {
		breakpoints = DefaultBreakpoints
	}
	if rows <= 0 {
		return nil, fmt.Errorf("rows must be positive, got %d", rows)
	}
	bps := make([]model.Breakpoint, len(breakpoints))
	copy(bps, breakpoints)
	sort.SliceStable(bps, func(i, j int) bool { return bps[i].MinWidth < bps[j].MinWidth })
	return &Layout{breakpoints: bps, rows: rows, loop: loop}, nil
}

// NewLayoutFromConfig parses the CAROUSEL_* layout settings.
func NewLayoutFromConfig(cfg model.CarouselConfig) (*Layout, error) {
	bps, err := ParseBreakpoints(cfg.Breakpoints)
	if err != nil {
		return nil, err
	}
	return NewLayout(bps, cfg.Rows, cfg.Loop)
}

// SlidesPerView returns the column count of the widest breakpoint not exceeding width.
func (l *Layout) SlidesPerView(width int) int {
	slides := l.breakpoints[0].SlidesPerView
	for _, bp := range l.breakpoints {
		if width >= bp.MinWidth {
			slides = bp.SlidesPerView
		}
	}
	return slides
}

// PageSize is the number of products shown at once for width.
func (l *Layout) PageSize(width int) int {
	return l.SlidesPerView(width) * l.rows
}

// PageCount returns how many pages n products fill at width.
func (l *Layout) PageCount(n, width int) int {
	size := l.PageSize(width)
	return (n + size - 1) / size
}

// Paginate splits list into pages, each filled row by row.
func (l *Layout) Paginate(list model.ProductList, width int) []model.Page {
	cols := l.SlidesPerView(width)
	size := cols * l.rows
	pages := make([]model.Page, 0, l.PageCount(len(list), width))

	for start := 0; start < len(list); start += size {
		end := min(start+size, len(list))
		page := model.Page{Index: len(pages), Columns: cols}
		for r := start; r < end; r += cols {
			page.Rows = append(page.Rows, list[r:min(r+cols, end):min(r+cols, end)])
		}
		pages = append(pages, page)
	}
	return pages
}

// Navigate returns the page reached from current in dir. Looping layouts wrap
// around at both ends, others stop at the first and last page.
func (l *Layout) Navigate(current, total int, dir model.Direction) int {
	if total <= 0 {
		return 0
	}
	next := current
	switch dir {
	case model.DirectionNext:
		next++
	case model.DirectionPrev:
		next--
	}
	if l.loop {
		return ((next % total) + total) % total
	}
	return max(0, min(next, total-1))
}

// Loop reports whether navigation wraps around.
func (l *Layout) Loop() bool {
	return l.loop
}
