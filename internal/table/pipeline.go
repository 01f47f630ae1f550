package table

// Input is everything the pipeline derives a view from.
type Input struct {
	Rows       []Row
	Columns    *ColumnSet
	Sort       SortState
	Pagination PaginationState
	Filter     Filter
	Mode       Mode

	// Paginate false returns the whole filtered, sorted set on one page.
	Paginate bool
	Loading  bool
}

// Header describes one column header as displayed.
type Header struct {
	Key       string
	Title     string
	Sortable  bool
	Direction Direction
}

// View is the derived, renderable state of a table.
type View struct {
	Headers    []Header
	Rows       []RenderedRow
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Sort       SortState
	Filter     string
	Paginated  bool
	Searchable bool

	// Loading is set while the host is fetching; Rows is then empty.
	Loading bool
	// Empty is set when there is nothing to show and the host is not loading.
	Empty bool
}

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool {
	return v.Paginated && v.Page > 1
}

// HasNext reports whether a next page exists.
func (v View) HasNext() bool {
	return v.Paginated && v.Page < v.TotalPages
}

// Derive runs filter -> sort -> paginate -> render. It has no side effects:
// the same input always yields the same view.
func Derive(in Input) View {
	view := View{
		Headers:   headers(in.Columns, in.Sort),
		Sort:      in.Sort,
		Filter:    in.Filter.Text,
		Paginated: in.Paginate,
		Loading:   in.Loading,
	}

	if in.Loading {
		p := in.Pagination.Normalize()
		view.Rows = []RenderedRow{}
		view.Page = p.Page
		view.PageSize = p.PageSize
		view.Total = p.Total
		view.TotalPages = TotalPages(p.Total, p.PageSize)
		return view
	}

	filtered := ApplyFilter(in.Rows, in.Filter, in.Columns)
	sorted := ApplySort(filtered, in.Sort, in.Columns)

	if !in.Paginate {
		view.Rows = RenderRows(sorted, in.Columns)
		view.Page = 1
		view.PageSize = len(sorted)
		view.Total = len(sorted)
		view.TotalPages = 1
		view.Empty = len(sorted) == 0
		return view
	}

	page := ApplyPagination(sorted, in.Pagination, in.Mode)
	view.Rows = RenderRows(page.Rows, in.Columns)
	view.Page = page.Page
	view.PageSize = page.PageSize
	view.Total = page.Total
	view.TotalPages = page.TotalPages
	view.Empty = len(page.Rows) == 0
	return view
}

func headers(cols *ColumnSet, sort SortState) []Header {
	if cols == nil {
		return nil
	}
	out := make([]Header, len(cols.columns))
	for i, col := range cols.columns {
		out[i] = Header{
			Key:       col.Key,
			Title:     col.Header,
			Sortable:  col.Sortable,
			Direction: sort.DirectionOf(col.Key),
		}
	}
	return out
}
