package table

// Token identifies one host refresh request.
type Token uint64

// Option configures a Table.
type Option func(*Table)

// WithPageSize sets the initial page size.
func WithPageSize(size int) Option {
	return func(t *Table) {
		t.pagination.PageSize = positiveSize(size)
	}
}

// WithServerPaging marks rows as already paged by the host.
// The total row count must then be supplied with Deliver or SetTotal.
func WithServerPaging() Option {
	return func(t *Table) {
		t.mode = ServerSide
	}
}

// WithoutPagination shows the full filtered, sorted row set.
func WithoutPagination() Option {
	return func(t *Table) {
		t.paginate = false
	}
}

// WithOnPageChange registers the callback invoked with the new page number
// whenever the current page changes through navigation.
func WithOnPageChange(fn func(page int)) Option {
	return func(t *Table) {
		t.onPageChange = fn
	}
}

// WithOnRowClick registers the callback invoked by ClickRow.
func WithOnRowClick(fn func(Row)) Option {
	return func(t *Table) {
		t.onRowClick = fn
	}
}

// WithSearchable enables the search box. Keys narrows the searched columns.
func WithSearchable(keys ...string) Option {
	return func(t *Table) {
		t.searchable = true
		t.filter.Keys = keys
	}
}

// WithSort sets the initial sort state.
func WithSort(s SortState) Option {
	return func(t *Table) {
		t.sort = s
	}
}

// WithQuery restores page, page size, sort and search text.
func WithQuery(q Query) Option {
	return func(t *Table) {
		if q.PageSize > 0 {
			t.pagination.PageSize = positiveSize(q.PageSize)
		}
		if q.Page > 0 {
			t.pagination.Page = q.Page
		}
		t.sort = q.Sort
		t.filter.Text = q.Search
	}
}

// Table holds the interactive state of one table instance.
// It is not safe for concurrent use; wrap it in a Refresher when fetches
// complete on other goroutines.
type Table struct {
	columns *ColumnSet
	rows    []Row

	sort       SortState
	pagination PaginationState
	filter     Filter
	mode       Mode
	paginate   bool
	searchable bool
	loading    bool

	onPageChange func(int)
	onRowClick   func(Row)

	issued  Token
	applied Token
}

// New validates the columns and creates a table on page 1.
func New(cols []Column, opts ...Option) (*Table, error) {
	set, err := DefineColumns(cols...)
	if err != nil {
		return nil, err
	}
	return NewWithColumns(set, opts...), nil
}

// NewWithColumns creates a table from an already validated column set.
func NewWithColumns(set *ColumnSet, opts ...Option) *Table {
	t := &Table{
		columns:    set,
		pagination: PaginationState{Page: 1, PageSize: DefaultPageSize},
		paginate:   true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.sort.IsSorted() {
		if col, ok := set.Lookup(t.sort.ColumnKey); !ok || !col.Sortable {
			t.sort = SortState{}
		}
	}
	return t
}

// Columns returns the table's column set.
func (t *Table) Columns() *ColumnSet {
	return t.columns
}

// Sort returns the current sort state.
func (t *Table) Sort() SortState {
	return t.sort
}

// Pagination returns the current pagination state.
func (t *Table) Pagination() PaginationState {
	p := t.pagination
	p.Total = t.total()
	return p
}

// FilterText returns the current filter text.
func (t *Table) FilterText() string {
	return t.filter.Text
}

// Loading reports whether a refresh is outstanding.
func (t *Table) Loading() bool {
	return t.loading
}

// Query returns the navigational state as a Query.
func (t *Table) Query() Query {
	return Query{
		Page:     t.pagination.Page,
		PageSize: t.pagination.PageSize,
		Sort:     t.sort,
		Search:   t.filter.Text,
	}
}

// SetRows replaces the row set and clears the loading flag. A page past the
// new last page is clamped and reported as a page change.
func (t *Table) SetRows(rows []Row) {
	t.rows = rows
	t.loading = false
	t.goTo(t.pagination.Page)
}

// SetTotal sets the host-reported total for server-side paging.
func (t *Table) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	t.pagination.Total = total
}

// SetLoading sets the loading flag directly.
func (t *Table) SetLoading(loading bool) {
	t.loading = loading
}

// BeginRefresh marks the table as loading and returns a token for the fetch.
// Only the most recently issued token can be delivered.
func (t *Table) BeginRefresh() Token {
	t.issued++
	t.loading = true
	return t.issued
}

// Deliver applies a fetch result if token belongs to the latest refresh.
// Results of superseded refreshes are dropped and false is returned.
func (t *Table) Deliver(token Token, rows []Row, total int) bool {
	if token != t.issued || token == t.applied {
		return false
	}
	t.applied = token
	if t.mode == ServerSide {
		t.SetTotal(total)
	}
	t.SetRows(rows)
	return true
}

// Abandon clears the loading flag for a failed fetch. It is a no-op for
// superseded tokens.
func (t *Table) Abandon(token Token) bool {
	if token != t.issued || token == t.applied {
		return false
	}
	t.applied = token
	t.loading = false
	return true
}

// ClickHeader toggles sorting on a column. It returns false for unknown or
// non-sortable columns. The current page is kept, clamped to the page count.
func (t *Table) ClickHeader(key string) bool {
	col, ok := t.columns.Lookup(key)
	if !ok || !col.Sortable {
		return false
	}
	t.sort = t.sort.Toggle(key)
	t.goTo(t.pagination.Page)
	return true
}

// SetPage navigates to page, clamped to [1, TotalPages].
func (t *Table) SetPage(page int) {
	t.goTo(page)
}

// SetPageSize changes the page size and returns to page 1.
func (t *Table) SetPageSize(size int) {
	t.pagination.PageSize = positiveSize(size)
	t.goTo(1)
}

// SetFilter changes the filter text. A changed filter returns to page 1.
func (t *Table) SetFilter(text string) {
	if text == t.filter.Text {
		return
	}
	t.filter.Text = text
	t.goTo(1)
}

// ResetPage returns to page 1, e.g. after host-side filters changed.
func (t *Table) ResetPage() {
	t.goTo(1)
}

// ClickRow invokes the row click callback with the full row of a visible row.
func (t *Table) ClickRow(id string) bool {
	if t.onRowClick == nil {
		return false
	}
	for _, r := range t.View().Rows {
		if r.ID == id {
			t.onRowClick(r.Row)
			return true
		}
	}
	return false
}

// View derives the current visible state.
func (t *Table) View() View {
	v := Derive(t.input())
	v.Searchable = t.searchable
	return v
}

func (t *Table) input() Input {
	return Input{
		Rows:       t.rows,
		Columns:    t.columns,
		Sort:       t.sort,
		Pagination: t.Pagination(),
		Filter:     t.filter,
		Mode:       t.mode,
		Paginate:   t.paginate,
		Loading:    t.loading,
	}
}

func (t *Table) goTo(page int) {
	if !t.paginate {
		t.pagination.Page = 1
		return
	}
	page = ClampPage(page, t.totalPages())
	if page == t.pagination.Page {
		return
	}
	t.pagination.Page = page
	if t.onPageChange != nil {
		t.onPageChange(page)
	}
}

func (t *Table) total() int {
	if t.mode == ServerSide {
		return t.pagination.Total
	}
	return len(ApplyFilter(t.rows, t.filter, t.columns))
}

func (t *Table) totalPages() int {
	return TotalPages(t.total(), t.pagination.PageSize)
}
