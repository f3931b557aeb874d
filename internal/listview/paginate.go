package listview

// DefaultPageSize matches the list views' table page length.
const DefaultPageSize = 10

// DefaultWindowWidth is how many page-number buttons the pagination
// widget renders at once.
const DefaultWindowWidth = 5

// PageState tracks the current page over a collection of known size.
// The invariant 1 <= currentPage <= TotalPages() holds after every
// operation; out-of-range requests clamp, they never fail.
type PageState struct {
	current int
	size    int
	total   int
}

// NewPageState creates page 1 of an empty collection. Non-positive
// sizes fall back to DefaultPageSize.
func NewPageState(pageSize int) *PageState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PageState{current: 1, size: pageSize}
}

func (p *PageState) Current() int    { return p.current }
func (p *PageState) PageSize() int   { return p.size }
func (p *PageState) TotalItems() int { return p.total }

// TotalPages is at least 1: an empty collection still reads
// "page 1 of 1".
func (p *PageState) TotalPages() int {
	pages := (p.total + p.size - 1) / p.size
	if pages < 1 {
		return 1
	}
	return pages
}

func (p *PageState) HasNext() bool     { return p.current < p.TotalPages() }
func (p *PageState) HasPrevious() bool { return p.current > 1 }

// SetTotal records a new collection size and re-clamps the current
// page, so a page that became invalid after filtering snaps back into
// range instead of showing an empty slice.
func (p *PageState) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	p.total = n
	p.GoToPage(p.current)
}

// GoToPage clamps n into [1, TotalPages()].
func (p *PageState) GoToPage(n int) {
	if max := p.TotalPages(); n > max {
		n = max
	}
	if n < 1 {
		n = 1
	}
	p.current = n
}

// Next advances one page; a no-op on the last page.
func (p *PageState) Next() { p.GoToPage(p.current + 1) }

// Previous goes back one page; a no-op on page 1.
func (p *PageState) Previous() { p.GoToPage(p.current - 1) }

// Slice returns the items of the current page, clipped to collection
// bounds.
func Slice[T any](items []T, p *PageState) []T {
	start := (p.current - 1) * p.size
	if start >= len(items) {
		return []T{}
	}
	end := start + p.size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window is the visible range of page-number buttons plus the
// first/last shortcuts around it.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
	// ShowFirst/ShowLast indicate shortcuts to page 1 / the last
	// page outside the visible range.
	ShowFirst bool `json:"showFirst"`
	ShowLast  bool `json:"showLast"`
	// Ellipses appear only when more than one page is skipped
	// between a shortcut and the window.
	LeadingEllipsis  bool `json:"leadingEllipsis"`
	TrailingEllipsis bool `json:"trailingEllipsis"`
}

// Pages returns the page numbers inside the window.
func (w Window) Pages() []int {
	out := make([]int, 0, w.End-w.Start+1)
	for i := w.Start; i <= w.End; i++ {
		out = append(out, i)
	}
	return out
}

// PageWindow computes the visible page range centered on current,
// clamped to [1, total]. When clamping at either edge would shrink
// the range below width, the window shifts instead, so width pages
// stay visible whenever total >= width.
func PageWindow(current, total, width int) Window {
	if width <= 0 {
		width = DefaultWindowWidth
	}
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
	}
	if end-start+1 < width {
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	return Window{
		Start:            start,
		End:              end,
		ShowFirst:        start > 1,
		ShowLast:         end < total,
		LeadingEllipsis:  start > 2,
		TrailingEllipsis: end < total-1,
	}
}
