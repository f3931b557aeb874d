package listview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type order struct {
	Number   string
	Customer string
	Status   string
}

func orderFields(o order) Fields {
	return Fields{
		"orderNumber": o.Number,
		"customer":    o.Customer,
		"status":      o.Status,
	}
}

func fixedFetch(items []order) FetchFunc[order] {
	return func(ctx context.Context, q Query) ([]order, error) {
		return items, nil
	}
}

func makeOrders(n int) []order {
	statuses := []string{"pending", "processing", "shipped", "delivered", "cancelled"}
	out := make([]order, n)
	for i := range out {
		out[i] = order{
			Number:   "ORD-" + string(rune('A'+i%26)) + string(rune('0'+i%10)),
			Customer: "Customer",
			Status:   statuses[i%len(statuses)],
		}
	}
	return out
}

func TestControllerLoadAndVisible(t *testing.T) {
	c := NewController(fixedFetch(makeOrders(23)), orderFields, Options{
		PageSize: 10,
		Filters:  map[string]string{"status": "all"},
	})
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	info := c.PageInfo()
	if info.Page != 1 || info.TotalItems != 23 || info.TotalPages != 3 {
		t.Fatalf("pageInfo = %+v", info)
	}
	if got := len(c.Visible()); got != 10 {
		t.Fatalf("page 1 has %d items, want 10", got)
	}

	c.GoToPage(3)
	if got := len(c.Visible()); got != 3 {
		t.Fatalf("page 3 has %d items, want 3", got)
	}
}

func TestControllerUpdateFilterResetsPage(t *testing.T) {
	c := NewController(fixedFetch(makeOrders(40)), orderFields, Options{
		PageSize: 10,
		Filters:  map[string]string{"status": "all"},
	})
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	c.GoToPage(4)
	if c.PageInfo().Page != 4 {
		t.Fatalf("setup: page = %d", c.PageInfo().Page)
	}

	c.UpdateFilter("status", "shipped")
	if got := c.PageInfo().Page; got != 1 {
		t.Fatalf("updateFilter left page %d, want 1", got)
	}

	c.GoToPage(1)
	for _, o := range c.Visible() {
		if o.Status != "shipped" {
			t.Fatalf("filter leaked %q into view", o.Status)
		}
	}
}

func TestControllerResetFiltersResetsPage(t *testing.T) {
	c := NewController(fixedFetch(makeOrders(40)), orderFields, Options{
		PageSize: 10,
		Filters:  map[string]string{"status": "all"},
	})
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	c.UpdateFilter("status", "shipped")
	c.GoToPage(2)

	c.ResetFilters()
	info := c.PageInfo()
	if info.Page != 1 {
		t.Fatalf("resetFilters left page %d, want 1", info.Page)
	}
	if got := c.Filters()["status"]; got != "all" {
		t.Fatalf("status filter = %q after reset, want all", got)
	}
	if info.TotalItems != 40 {
		t.Fatalf("totalItems = %d after reset, want 40", info.TotalItems)
	}
}

func TestControllerUnknownFilterKeyNoOp(t *testing.T) {
	c := NewController(fixedFetch(makeOrders(30)), orderFields, Options{
		PageSize: 10,
		Filters:  map[string]string{"status": "all"},
	})
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	c.GoToPage(2)

	if c.UpdateFilter("category", "Electronics") {
		t.Fatalf("undeclared key accepted")
	}
	if got := c.PageInfo().Page; got != 2 {
		t.Fatalf("no-op update moved page to %d", got)
	}
}

func TestControllerStaleResponseDiscarded(t *testing.T) {
	first := []order{{Number: "OLD-1", Status: "pending"}}
	second := []order{{Number: "NEW-1", Status: "pending"}, {Number: "NEW-2", Status: "shipped"}}

	var calls int
	var mu sync.Mutex
	release := make(chan struct{})

	fetch := func(ctx context.Context, q Query) ([]order, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release // first request finishes last
			return first, nil
		}
		return second, nil
	}

	c := NewController(fetch, orderFields, Options{PageSize: 10})
	defer c.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = c.Load(context.Background())
	}()
	time.Sleep(50 * time.Millisecond)
	go func() {
		defer wg.Done()
		_ = c.Load(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	got := c.Visible()
	if len(got) != 2 || got[0].Number != "NEW-1" {
		t.Fatalf("stale response overwrote fresh data: %+v", got)
	}
}

func TestControllerFetchFailureKeepsPreviousData(t *testing.T) {
	good := makeOrders(5)
	var fail bool
	fetch := func(ctx context.Context, q Query) ([]order, error) {
		if fail {
			return nil, errors.New("service unavailable")
		}
		return good, nil
	}

	c := NewController(fetch, orderFields, Options{PageSize: 10})
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}

	fail = true
	if err := c.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if got := len(c.Visible()); got != 5 {
		t.Fatalf("failed load dropped previous data: %d items", got)
	}
	if c.LastError() == "" {
		t.Fatalf("expected a user-facing error message")
	}

	fail = false
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("recovery load: %v", err)
	}
	if c.LastError() != "" {
		t.Fatalf("error message survived a successful load: %q", c.LastError())
	}
}

func TestControllerDebouncedSearch(t *testing.T) {
	items := []order{
		{Number: "ORD-001", Customer: "John Smith", Status: "delivered"},
		{Number: "ORD-002", Customer: "Sarah Johnson", Status: "processing"},
		{Number: "ORD-003", Customer: "Emily Davis", Status: "pending"},
	}
	c := NewController(fixedFetch(items), orderFields, Options{
		PageSize:    10,
		SearchDelay: 20 * time.Millisecond,
	})
	defer c.Close()

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	c.SetSearch("j")
	c.SetSearch("jo")
	c.SetSearch("john")

	// Before the delay elapses the filter is untouched.
	if got := c.Filters()[SearchKey]; got != "" {
		t.Fatalf("search committed early: %q", got)
	}

	time.Sleep(60 * time.Millisecond)
	if got := c.Filters()[SearchKey]; got != "john" {
		t.Fatalf("search filter = %q, want john", got)
	}
	if got := len(c.Visible()); got != 2 {
		t.Fatalf("visible = %d, want 2 (John Smith, Sarah Johnson)", got)
	}
}

func TestControllerCloseCancelsPendingWork(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context, q Query) ([]order, error) {
		close(started)
		<-release
		return makeOrders(8), nil
	}

	c := NewController(fetch, orderFields, Options{
		PageSize:    10,
		SearchDelay: 10 * time.Millisecond,
	})

	done := make(chan struct{})
	go func() {
		_ = c.Load(context.Background())
		close(done)
	}()
	<-started

	c.SetSearch("pending-search")
	c.Close()
	close(release)
	<-done

	if got := len(c.Visible()); got != 0 {
		t.Fatalf("in-flight load applied after Close: %d items", got)
	}
	time.Sleep(40 * time.Millisecond)
	if got := c.Filters()[SearchKey]; got != "" {
		t.Fatalf("debounce fired after Close: %q", got)
	}
	if err := c.Load(context.Background()); err == nil {
		t.Fatalf("load after Close should fail")
	}
}
