// Package listview implements the client-side list mechanics shared by
// the orders, products, and customers views: named filters with a
// full-record search term, debounced search input, fixed-size
// pagination with a visible page window, and a controller composing
// them over an async data source.
package listview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SearchKey is the reserved filter key that matches against every
// field of a record instead of a single named field.
const SearchKey = "search"

// All is the sentinel value meaning "no constraint", alongside "".
const All = "all"

// Fields is the canonical string form of a record, keyed by field
// name. Matching is always performed on these strings.
type Fields map[string]string

// FieldsFunc projects a record into its matchable fields.
type FieldsFunc[T any] func(T) Fields

// Filters holds the named constraints currently applied to a
// collection. The key set is fixed at construction; Set on an unknown
// key is a no-op.
type Filters struct {
	defaults map[string]string
	values   map[string]string
}

// NewFilters declares the filter key set with its default values.
func NewFilters(initial map[string]string) *Filters {
	f := &Filters{
		defaults: make(map[string]string, len(initial)),
		values:   make(map[string]string, len(initial)),
	}
	for k, v := range initial {
		f.defaults[k] = v
		f.values[k] = v
	}
	return f
}

// Set updates one filter value. It returns false (and changes
// nothing) when the key was not declared at construction.
func (f *Filters) Set(key, value string) bool {
	if _, ok := f.values[key]; !ok {
		return false
	}
	f.values[key] = value
	return true
}

// Get returns the current value for key, or "" for unknown keys.
func (f *Filters) Get(key string) string {
	return f.values[key]
}

// Reset restores every filter to its declared default.
func (f *Filters) Reset() {
	for k, v := range f.defaults {
		f.values[k] = v
	}
}

// Values returns a copy of the current filter state.
func (f *Filters) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Keys returns the declared filter keys in stable order.
func (f *Filters) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// active reports whether value constrains anything. Empty values and
// the "all" sentinel match every record.
func active(value string) bool {
	return value != "" && value != All
}

// Apply filters items down to those satisfying every active
// constraint in filters. The search key matches case-insensitively
// against any field; every other key matches against the field of the
// same name. Matching is substring containment, deliberately
// permissive even for categorical fields. Input order is preserved
// and items is never mutated.
func Apply[T any](items []T, filters *Filters, fields FieldsFunc[T]) []T {
	if filters == nil {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(fields(item), filters) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single record satisfies every active
// filter ("AND" across keys).
func Matches(rec Fields, filters *Filters) bool {
	for key, value := range filters.values {
		if !active(value) {
			continue
		}
		term := strings.ToLower(value)
		if key == SearchKey {
			if !anyFieldContains(rec, term) {
				return false
			}
			continue
		}
		// Missing fields compare as the empty string.
		if !strings.Contains(strings.ToLower(rec[key]), term) {
			return false
		}
	}
	return true
}

func anyFieldContains(rec Fields, term string) bool {
	for _, v := range rec {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Coerce renders an arbitrary field value in its canonical string
// form for matching. Floats drop trailing zeros so 249.99 and 45
// read the way they display.
func Coerce(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
