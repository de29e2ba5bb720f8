// Package query implements the pagination, filtering, and sorting
// helpers shared by the list endpoints.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPerPage is the page size used when per_page is absent or invalid.
const DefaultPerPage = 20

// Pagination is the metadata block returned alongside every paginated list.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalCount int  `json:"total_count"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Page reads page and per_page from query values. Both clamp to at
// least 1; per_page defaults to DefaultPerPage when absent or invalid.
func Page(values url.Values) (page, perPage int) {
	page = positiveInt(values.Get("page"), 1)
	perPage = positiveInt(values.Get("per_page"), DefaultPerPage)
	return page, perPage
}

func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Paginate computes the half-open index window [lo, hi) selecting the
// requested page over a list of n items, plus the resolved metadata.
// A page beyond the last page is clamped down to the last page, so an
// overflowing request returns the final slice rather than an empty one.
func Paginate(n, page, perPage int) (lo, hi int, meta Pagination) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	totalPages := (n + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo = (page - 1) * perPage
	hi = lo + perPage
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}

	meta = Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalCount: n,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
	return lo, hi, meta
}

// Slice paginates items directly, returning the selected page.
func Slice[T any](items []T, page, perPage int) ([]T, Pagination) {
	lo, hi, meta := Paginate(len(items), page, perPage)
	return items[lo:hi], meta
}

// Str reads a trimmed string filter value. ok is false when the
// parameter is absent or blank.
func Str(values url.Values, key string) (string, bool) {
	v := strings.TrimSpace(values.Get(key))
	return v, v != ""
}

// Fold reads a trimmed, lowercased string filter value for
// case-insensitive matching.
func Fold(values url.Values, key string) (string, bool) {
	v, ok := Str(values, key)
	return strings.ToLower(v), ok
}

// Int reads a positive integer filter value. ok is false when the
// parameter is absent, non-numeric, or not positive, matching the
// convention that zero and negative codes mean "no filter".
func Int(values url.Values, key string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(values.Get(key)), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Bool reads an explicit "true"/"false" filter value. ok is false for
// anything else, leaving the filter unapplied.
func Bool(values url.Values, key string) (value, ok bool) {
	switch strings.TrimSpace(values.Get(key)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// Contains reports whether haystack contains needle, ignoring case.
// needle is assumed already lowercased (as returned by Fold).
func Contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// Sort reads the sort column and direction, applying the given default
// column. Direction defaults to descending.
func Sort(values url.Values, defaultColumn string) (column string, desc bool) {
	column, ok := Str(values, "sort")
	if !ok {
		column = defaultColumn
	}
	dir, _ := Str(values, "direction")
	return column, dir != "asc"
}
