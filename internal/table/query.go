package table

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names used by ParseQuery and Query.Values.
const (
	ParamPage     = "page"
	ParamPageSize = "size"
	ParamSort     = "sort"
	ParamDir      = "dir"
	ParamSearch   = "q"
)

// Query is the navigational state of a table as carried in a URL.
type Query struct {
	Page     int
	PageSize int
	Sort     SortState
	Search   string
}

// ParseQuery reads table state from URL values. Missing or malformed values
// fall back to defaults; out-of-range values are clamped.
func ParseQuery(v url.Values, defaults Query) Query {
	q := defaults
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	if n, err := strconv.Atoi(v.Get(ParamPage)); err == nil {
		q.Page = max(n, 1)
	}
	if n, err := strconv.Atoi(v.Get(ParamPageSize)); err == nil {
		q.PageSize = ClampPageSize(n)
	}
	if key := strings.TrimSpace(v.Get(ParamSort)); key != "" {
		dir := ParseDirection(v.Get(ParamDir))
		if dir == None {
			dir = Asc
		}
		q.Sort = SortBy(key, dir)
	}
	if v.Has(ParamSearch) {
		q.Search = v.Get(ParamSearch)
	}
	return q
}

// HasTableParams reports whether any table parameter is present.
func HasTableParams(v url.Values) bool {
	for _, p := range []string{ParamPage, ParamPageSize, ParamSort, ParamDir, ParamSearch} {
		if v.Has(p) {
			return true
		}
	}
	return false
}

// Values encodes the query. Page 1, an unsorted state and an empty search are omitted.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set(ParamPageSize, strconv.Itoa(q.PageSize))
	}
	if q.Sort.IsSorted() {
		v.Set(ParamSort, q.Sort.ColumnKey)
		v.Set(ParamDir, q.Sort.Direction.String())
	}
	if q.Search != "" {
		v.Set(ParamSearch, q.Search)
	}
	return v
}

// Merge returns extra (which is not modified) with the table parameters
// replaced by the query's.
func (q Query) Merge(extra url.Values) url.Values {
	v := url.Values{}
	for k, vals := range extra {
		v[k] = append([]string(nil), vals...)
	}
	for _, p := range []string{ParamPage, ParamPageSize, ParamSort, ParamDir, ParamSearch} {
		v.Del(p)
	}
	for k, vals := range q.Values() {
		v[k] = vals
	}
	return v
}

// Encode merges the query into extra and encodes it.
func (q Query) Encode(extra url.Values) string {
	return q.Merge(extra).Encode()
}

// WithPage returns the query on another page.
func (q Query) WithPage(page int) Query {
	q.Page = max(page, 1)
	return q
}

// WithPageSize returns the query with another page size, on page 1.
func (q Query) WithPageSize(size int) Query {
	q.PageSize = ClampPageSize(size)
	q.Page = 1
	return q
}

// WithSortToggled returns the query after a header click on key.
func (q Query) WithSortToggled(key string) Query {
	q.Sort = q.Sort.Toggle(key)
	return q
}

// WithSearch returns the query with new search text, on page 1 if it changed.
func (q Query) WithSearch(text string) Query {
	if text != q.Search {
		q.Search = text
		q.Page = 1
	}
	return q
}
