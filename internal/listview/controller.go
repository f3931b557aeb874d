package listview

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Query is the argument bundle passed to a fetch collaborator: the
// current filter values at the time the load was issued.
type Query struct {
	Filters map[string]string
}

// FetchFunc loads a fresh collection from the data source.
type FetchFunc[T any] func(ctx context.Context, q Query) ([]T, error)

// Options configures a Controller.
type Options struct {
	// PageSize defaults to DefaultPageSize.
	PageSize int
	// Filters declares the filter key set with defaults. The
	// SearchKey entry is added automatically when absent.
	Filters map[string]string
	// SearchDelay is the debounce interval for SetSearch. Zero
	// commits immediately.
	SearchDelay time.Duration
}

// Controller composes filtering, debounced search, and pagination
// over a collection obtained from a fetch collaborator. One
// controller owns one view's raw collection and list state; all
// methods are safe for concurrent use.
//
// Loads are sequenced: each carries a monotonically increasing token
// and a response is discarded when a newer load has already been
// applied, so an older request finishing late can never overwrite
// fresher data.
type Controller[T any] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	fields  FieldsFunc[T]
	filters *Filters
	page    *PageState
	search  *Debouncer

	raw     []T
	seq     uint64 // last issued load token
	applied uint64 // last applied load token
	loading int    // in-flight loads
	lastErr string
	closed  bool
}

// NewController wires a controller for one list view.
func NewController[T any](fetch FetchFunc[T], fields FieldsFunc[T], opts Options) *Controller[T] {
	defaults := make(map[string]string, len(opts.Filters)+1)
	for k, v := range opts.Filters {
		defaults[k] = v
	}
	if _, ok := defaults[SearchKey]; !ok {
		defaults[SearchKey] = ""
	}

	c := &Controller[T]{
		fetch:   fetch,
		fields:  fields,
		filters: NewFilters(defaults),
		page:    NewPageState(opts.PageSize),
	}
	c.search = NewDebouncer(opts.SearchDelay, func(v string) {
		c.UpdateFilter(SearchKey, v)
	})
	return c
}

// Load fetches a fresh collection and, if this is still the newest
// load, replaces the raw collection and resets to page 1. On failure
// the previous collection stays visible and the error message is
// retained for display.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("listview: controller closed")
	}
	c.seq++
	token := c.seq
	q := Query{Filters: c.filters.Values()}
	c.loading++
	c.mu.Unlock()

	items, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	if c.closed || token <= c.applied {
		// Torn down, or a newer response already landed.
		return err
	}
	c.applied = token
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.lastErr = ""
	c.raw = items
	c.page.SetTotal(len(items))
	c.page.GoToPage(1)
	return nil
}

// UpdateFilter sets one filter value and returns to page 1. Unknown
// keys are a no-op and do not touch the page.
func (c *Controller[T]) UpdateFilter(key, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.filters.Set(key, value) {
		return false
	}
	c.page.GoToPage(1)
	return true
}

// ResetFilters restores the declared defaults and returns to page 1.
func (c *Controller[T]) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.filters.Reset()
	c.page.GoToPage(1)
}

// SetSearch feeds the raw search input through the debouncer; the
// search filter updates once the value has been stable for the
// configured delay.
func (c *Controller[T]) SetSearch(value string) {
	c.search.Input(value)
}

// FlushSearch commits any pending search input immediately.
func (c *Controller[T]) FlushSearch() {
	c.search.Flush()
}

// Visible returns the current page of the filtered collection,
// re-deriving totals first so the page number always matches what is
// shown.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := Apply(c.raw, c.filters, c.fields)
	c.page.SetTotal(len(filtered))
	return Slice(filtered, c.page)
}

// PageInfo reports paging metadata for the filtered collection.
type PageInfo struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

func (c *Controller[T]) PageInfo() PageInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := Apply(c.raw, c.filters, c.fields)
	c.page.SetTotal(len(filtered))
	return PageInfo{
		Page:        c.page.Current(),
		PageSize:    c.page.PageSize(),
		TotalItems:  c.page.TotalItems(),
		TotalPages:  c.page.TotalPages(),
		HasNext:     c.page.HasNext(),
		HasPrevious: c.page.HasPrevious(),
	}
}

// PageWindow computes the visible page-number window for the widget.
func (c *Controller[T]) PageWindow(width int) Window {
	info := c.PageInfo()
	return PageWindow(info.Page, info.TotalPages, width)
}

// GoToPage clamps into range; it never rejects a page number.
func (c *Controller[T]) GoToPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.GoToPage(n)
}

func (c *Controller[T]) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Next()
}

func (c *Controller[T]) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Previous()
}

// Filters returns a copy of the current filter state.
func (c *Controller[T]) Filters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.Values()
}

// Loading reports whether any load is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading > 0
}

// LastError returns the user-facing message of the most recent failed
// load, or "" after a successful one.
func (c *Controller[T]) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Close tears the controller down: the pending search commit is
// cancelled and any in-flight load resolution is ignored.
func (c *Controller[T]) Close() {
	c.search.Stop()
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}
