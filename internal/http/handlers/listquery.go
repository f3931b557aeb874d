package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"storeadmin/internal/listview"

	"github.com/gin-gonic/gin"
)

// listParams are the paging knobs shared by every list endpoint.
type listParams struct {
	page   int
	limit  int
	window int
}

func parseListParams(c *gin.Context) listParams {
	p := listParams{
		page:   1,
		limit:  listview.DefaultPageSize,
		window: listview.DefaultWindowWidth,
	}
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.limit = n
		}
	}
	if p.limit > 200 {
		p.limit = 200
	}
	if v := strings.TrimSpace(c.Query("window")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.window = n
		}
	}
	return p
}

// respondPage slices a full result set into one page and answers with
// the data, paging metadata and the page-number window the frontend
// renders. Out-of-range pages clamp instead of erroring.
func respondPage[T any](c *gin.Context, items []T, p listParams) {
	state := listview.NewPageState(p.limit)
	state.SetTotal(len(items))
	state.GoToPage(p.page)

	pageItems := listview.Slice(items, state)
	window := listview.PageWindow(state.Current(), state.TotalPages(), p.window)

	c.JSON(http.StatusOK, gin.H{
		"data":       pageItems,
		"pagination": pageMeta(state),
		"window":     window,
	})
}

// pageMeta mirrors the pagination block of respondPage for handlers
// that build the response themselves.
func pageMeta(state *listview.PageState) gin.H {
	return gin.H{
		"page":        state.Current(),
		"pageSize":    state.PageSize(),
		"totalItems":  state.TotalItems(),
		"totalPages":  state.TotalPages(),
		"hasNext":     state.HasNext(),
		"hasPrevious": state.HasPrevious(),
	}
}

// applyExtraFilters runs any query params beyond the reserved ones
// through the in-memory filter engine, so clients can narrow lists by
// arbitrary fields without new repository queries.
func applyExtraFilters[T any](c *gin.Context, items []T, defaults map[string]string, fields listview.FieldsFunc[T]) []T {
	filters := listview.NewFilters(defaults)
	touched := false
	for key := range defaults {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			if filters.Set(key, v) {
				touched = true
			}
		}
	}
	if !touched {
		return items
	}
	return listview.Apply(items, filters, fields)
}
