package listview

import (
	"reflect"
	"testing"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSliceScenario23Items(t *testing.T) {
	items := intRange(23)
	p := NewPageState(10)
	p.SetTotal(len(items))

	if got := p.TotalPages(); got != 3 {
		t.Fatalf("totalPages = %d, want 3", got)
	}

	p.GoToPage(5)
	if p.Current() != 3 {
		t.Fatalf("goToPage(5) landed on %d, want clamp to 3", p.Current())
	}
	if got := Slice(items, p); len(got) != 3 {
		t.Fatalf("page 3 has %d items, want 3", len(got))
	}
}

func TestPaginationCoverage(t *testing.T) {
	items := intRange(23)
	p := NewPageState(10)
	p.SetTotal(len(items))

	var all []int
	for n := 1; n <= p.TotalPages(); n++ {
		p.GoToPage(n)
		all = append(all, Slice(items, p)...)
	}
	if !reflect.DeepEqual(all, items) {
		t.Fatalf("concatenated pages != collection: %v", all)
	}
}

func TestGoToPageClamps(t *testing.T) {
	p := NewPageState(10)
	p.SetTotal(23)

	for _, n := range []int{-100, -1, 0, 1, 2, 3, 4, 1000000} {
		p.GoToPage(n)
		if p.Current() < 1 || p.Current() > p.TotalPages() {
			t.Fatalf("goToPage(%d) left currentPage=%d outside [1,%d]", n, p.Current(), p.TotalPages())
		}
	}
}

func TestNextPreviousIdempotentAtEdges(t *testing.T) {
	p := NewPageState(10)
	p.SetTotal(23)

	p.Previous()
	if p.Current() != 1 {
		t.Fatalf("previous() on page 1 moved to %d", p.Current())
	}
	p.GoToPage(3)
	p.Next()
	if p.Current() != 3 {
		t.Fatalf("next() on last page moved to %d", p.Current())
	}
	p.Previous()
	if p.Current() != 2 {
		t.Fatalf("previous() from page 3 = %d, want 2", p.Current())
	}
}

func TestEmptyCollectionIsPageOneOfOne(t *testing.T) {
	p := NewPageState(10)
	p.SetTotal(0)
	if p.TotalPages() != 1 || p.Current() != 1 {
		t.Fatalf("empty collection: page %d of %d, want 1 of 1", p.Current(), p.TotalPages())
	}
	if got := Slice([]int{}, p); len(got) != 0 {
		t.Fatalf("empty collection sliced to %d items", len(got))
	}
	if p.HasNext() || p.HasPrevious() {
		t.Fatalf("empty collection should have no navigation")
	}
}

func TestSetTotalReclampsAfterNarrowing(t *testing.T) {
	p := NewPageState(10)
	p.SetTotal(100)
	p.GoToPage(10)

	// A filter narrows the collection to 15 items; page 10 no
	// longer exists and must snap back.
	p.SetTotal(15)
	if p.Current() != 2 {
		t.Fatalf("currentPage = %d after narrowing, want 2", p.Current())
	}
}

func TestDefaultPageSize(t *testing.T) {
	p := NewPageState(0)
	if p.PageSize() != DefaultPageSize {
		t.Fatalf("pageSize = %d, want %d", p.PageSize(), DefaultPageSize)
	}
}

func TestPageWindowAtStart(t *testing.T) {
	w := PageWindow(1, 20, 5)
	if w.Start != 1 || w.End != 5 {
		t.Fatalf("window = [%d,%d], want [1,5]", w.Start, w.End)
	}
	if w.ShowFirst || w.LeadingEllipsis {
		t.Fatalf("no leading shortcut expected at the start: %+v", w)
	}
	if !w.ShowLast || !w.TrailingEllipsis {
		t.Fatalf("want trailing ellipsis and last-page shortcut: %+v", w)
	}
}

func TestPageWindowCentered(t *testing.T) {
	w := PageWindow(10, 20, 5)
	if w.Start != 8 || w.End != 12 {
		t.Fatalf("window = [%d,%d], want [8,12]", w.Start, w.End)
	}
	if !w.ShowFirst || !w.LeadingEllipsis || !w.ShowLast || !w.TrailingEllipsis {
		t.Fatalf("want shortcuts and ellipses on both sides: %+v", w)
	}
}

func TestPageWindowAtEndShiftsNotShrinks(t *testing.T) {
	w := PageWindow(20, 20, 5)
	if w.Start != 16 || w.End != 20 {
		t.Fatalf("window = [%d,%d], want [16,20]", w.Start, w.End)
	}
	if w.ShowLast || w.TrailingEllipsis {
		t.Fatalf("no trailing shortcut expected at the end: %+v", w)
	}
	if !w.ShowFirst || !w.LeadingEllipsis {
		t.Fatalf("want leading ellipsis and first-page shortcut: %+v", w)
	}
}

func TestPageWindowNoEllipsisForAdjacentShortcut(t *testing.T) {
	// Window [2,6] of 7: page 1 is adjacent to the window, so a
	// shortcut renders without an ellipsis.
	w := PageWindow(4, 7, 5)
	if w.Start != 2 || w.End != 6 {
		t.Fatalf("window = [%d,%d], want [2,6]", w.Start, w.End)
	}
	if !w.ShowFirst || w.LeadingEllipsis {
		t.Fatalf("adjacent first page: shortcut yes, ellipsis no: %+v", w)
	}
	if !w.ShowLast || w.TrailingEllipsis {
		t.Fatalf("adjacent last page: shortcut yes, ellipsis no: %+v", w)
	}
}

func TestPageWindowFewerPagesThanWidth(t *testing.T) {
	w := PageWindow(2, 3, 5)
	if w.Start != 1 || w.End != 3 {
		t.Fatalf("window = [%d,%d], want [1,3]", w.Start, w.End)
	}
	if w.ShowFirst || w.ShowLast {
		t.Fatalf("no shortcuts when every page is visible: %+v", w)
	}
	if got := w.Pages(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("pages = %v", got)
	}
}
