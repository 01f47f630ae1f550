package table

// Page size bounds. MaxPageSize bounds sizes taken from requests; the engine
// itself accepts any positive size.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Mode selects where paging happens.
type Mode int

const (
	// ClientSide slices the in-memory row set; the total is the filtered row count.
	ClientSide Mode = iota
	// ServerSide treats the rows as one page already; the total comes from the host.
	ServerSide
)

// PaginationState is the current page, page size and total row count.
type PaginationState struct {
	Page     int
	PageSize int
	Total    int
}

// Page is the result of paginating a row set.
type Page struct {
	Rows       []Row
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// TotalPages returns ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	pageSize = positiveSize(pageSize)
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage limits page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// positiveSize raises sizes below 1 to 1.
func positiveSize(size int) int {
	if size < 1 {
		return 1
	}
	return size
}

// ClampPageSize limits a requested size to [1, MaxPageSize].
func ClampPageSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Normalize returns the state with page size and page clamped to valid values.
func (p PaginationState) Normalize() PaginationState {
	p.PageSize = positiveSize(p.PageSize)
	if p.Total < 0 {
		p.Total = 0
	}
	p.Page = ClampPage(p.Page, TotalPages(p.Total, p.PageSize))
	return p
}

// ApplyPagination returns the visible slice of rows for the state.
//
// In ClientSide mode the total is len(rows) and the page is clamped to the
// resulting page count. In ServerSide mode rows are returned as-is and
// state.Total is trusted.
func ApplyPagination(rows []Row, state PaginationState, mode Mode) Page {
	if mode == ClientSide {
		state.Total = len(rows)
	}
	state = state.Normalize()

	page := Page{
		Page:       state.Page,
		PageSize:   state.PageSize,
		Total:      state.Total,
		TotalPages: TotalPages(state.Total, state.PageSize),
	}

	if mode == ServerSide {
		page.Rows = rows
		return page
	}

	start := (state.Page - 1) * state.PageSize
	end := min(start+state.PageSize, len(rows))
	if start >= len(rows) {
		page.Rows = []Row{}
		return page
	}
	page.Rows = rows[start:end]
	return page
}
