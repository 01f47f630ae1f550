package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/hotelier/internal/table"
)

func newTable(t *testing.T, opts ...table.Option) *table.Table {
	t.Helper()
	tbl, err := table.New(bookingColumns(), opts...)
	require.NoError(t, err)
	return tbl
}

func TestDerive_RoundTrip(t *testing.T) {
	rows := numberedRows(17)
	view := table.Derive(table.Input{
		Rows:       rows,
		Columns:    mustColumns(bookingColumns()...),
		Pagination: table.PaginationState{Page: 1, PageSize: len(rows)},
		Paginate:   true,
	})
	assert.Equal(t, ids(rows), renderedIDs(view.Rows))
	assert.Equal(t, 1, view.TotalPages)
}

func TestDerive_IsPure(t *testing.T) {
	in := table.Input{
		Rows:       numberedRows(23),
		Columns:    mustColumns(bookingColumns()...),
		Sort:       table.SortBy("status", table.Desc),
		Pagination: table.PaginationState{Page: 2, PageSize: 5},
		Filter:     table.Filter{Text: "guest"},
		Paginate:   true,
	}
	assert.Equal(t, table.Derive(in), table.Derive(in))
}

func TestDerive_FilterBeforePaging(t *testing.T) {
	view := table.Derive(table.Input{
		Rows:       numberedRows(30),
		Columns:    mustColumns(bookingColumns()...),
		Pagination: table.PaginationState{Page: 1, PageSize: 10},
		Filter:     table.Filter{Text: "cancelled"},
		Paginate:   true,
	})
	assert.Equal(t, 10, view.Total)
	assert.Equal(t, 1, view.TotalPages)
	assert.Len(t, view.Rows, 10)
}

func TestDerive_Loading(t *testing.T) {
	view := table.Derive(table.Input{
		Rows:       numberedRows(5),
		Columns:    mustColumns(bookingColumns()...),
		Pagination: table.PaginationState{Page: 1, PageSize: 10},
		Paginate:   true,
		Loading:    true,
	})
	assert.True(t, view.Loading)
	assert.False(t, view.Empty)
	assert.Empty(t, view.Rows)
}

func TestDerive_EmptyResult(t *testing.T) {
	view := table.Derive(table.Input{
		Rows:       guestRows(),
		Columns:    mustColumns(bookingColumns()...),
		Pagination: table.PaginationState{Page: 1, PageSize: 10},
		Filter:     table.Filter{Text: "zzz"},
		Paginate:   true,
	})
	assert.True(t, view.Empty)
	assert.False(t, view.Loading)
}

func TestTable_HeaderClickCycle(t *testing.T) {
	tbl := newTable(t)
	tbl.SetRows(amountRows())

	require.True(t, tbl.ClickHeader("amount"))
	assert.Equal(t, []string{"B", "C", "A"}, renderedIDs(tbl.View().Rows))

	require.True(t, tbl.ClickHeader("amount"))
	assert.Equal(t, []string{"A", "C", "B"}, renderedIDs(tbl.View().Rows))

	require.True(t, tbl.ClickHeader("amount"))
	assert.Equal(t, []string{"A", "B", "C"}, renderedIDs(tbl.View().Rows))

	assert.False(t, tbl.ClickHeader("name"), "not sortable")
	assert.False(t, tbl.ClickHeader("unknown"))
}

func TestTable_HeaderDirections(t *testing.T) {
	tbl := newTable(t)
	tbl.ClickHeader("amount")

	for _, h := range tbl.View().Headers {
		if h.Key == "amount" {
			assert.Equal(t, table.Asc, h.Direction)
		} else {
			assert.Equal(t, table.None, h.Direction)
		}
	}
}

func TestTable_SortKeepsPage(t *testing.T) {
	tbl := newTable(t)
	tbl.SetRows(numberedRows(30))
	tbl.SetPage(3)

	tbl.ClickHeader("n")
	assert.Equal(t, 3, tbl.View().Page)
	tbl.ClickHeader("n")
	view := tbl.View()
	assert.Equal(t, 3, view.Page)
	assert.Equal(t, []string{"10", "9", "8", "7", "6", "5", "4", "3", "2", "1"}, renderedIDs(view.Rows))
}

func TestTable_PageChangeCallback(t *testing.T) {
	var calls []int
	tbl := newTable(t, table.WithOnPageChange(func(p int) { calls = append(calls, p) }))
	tbl.SetRows(numberedRows(25))

	tbl.SetPage(2)
	tbl.SetPage(2)
	tbl.SetPage(99)
	tbl.SetPage(-1)

	assert.Equal(t, []int{2, 3, 1}, calls)
}

func TestTable_DeliverClampReportsPageChange(t *testing.T) {
	var calls []int
	tbl := newTable(t,
		table.WithServerPaging(),
		table.WithQuery(table.Query{Page: 4, PageSize: 10}),
		table.WithOnPageChange(func(p int) { calls = append(calls, p) }),
	)

	require.True(t, tbl.Deliver(tbl.BeginRefresh(), numberedRows(5), 25))
	assert.Equal(t, 3, tbl.View().Page)
	assert.Equal(t, []int{3}, calls)

	require.True(t, tbl.Deliver(tbl.BeginRefresh(), numberedRows(5), 25))
	assert.Equal(t, []int{3}, calls, "no change, no callback")
}

func TestTable_PageSizeResetsPage(t *testing.T) {
	tbl := newTable(t)
	tbl.SetRows(numberedRows(60))
	tbl.SetPage(3)
	require.Equal(t, 3, tbl.View().Page)

	tbl.SetPageSize(25)
	view := tbl.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 25, view.PageSize)
	assert.Equal(t, 3, view.TotalPages)
}

func TestTable_LargePageSize(t *testing.T) {
	tbl := newTable(t)
	tbl.SetRows(numberedRows(250))

	tbl.SetPageSize(200)
	view := tbl.View()
	assert.Equal(t, 200, view.PageSize)
	assert.Len(t, view.Rows, 200)
	assert.Equal(t, 2, view.TotalPages)
}

func TestTable_FilterResetsPage(t *testing.T) {
	tbl := newTable(t, table.WithSearchable())
	tbl.SetRows(append(guestRows(), numberedRows(20)...))
	tbl.SetPage(2)

	tbl.SetFilter("john")
	view := tbl.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, []string{"1", "2"}, renderedIDs(view.Rows))
	assert.True(t, view.Searchable)
	assert.Equal(t, "john", view.Filter)
}

func TestTable_ResetPage(t *testing.T) {
	tbl := newTable(t)
	tbl.SetRows(numberedRows(40))
	tbl.SetPage(4)
	tbl.ResetPage()
	assert.Equal(t, 1, tbl.View().Page)
}

func TestTable_WithoutPagination(t *testing.T) {
	tbl := newTable(t, table.WithoutPagination())
	tbl.SetRows(numberedRows(42))
	tbl.SetPage(3)

	view := tbl.View()
	assert.Len(t, view.Rows, 42)
	assert.Equal(t, 1, view.TotalPages)
	assert.False(t, view.HasNext())
}

func TestTable_ServerSide(t *testing.T) {
	var calls []int
	tbl := newTable(t, table.WithServerPaging(), table.WithOnPageChange(func(p int) { calls = append(calls, p) }))

	token := tbl.BeginRefresh()
	assert.True(t, tbl.View().Loading)

	require.True(t, tbl.Deliver(token, numberedRows(10), 42))
	view := tbl.View()
	assert.False(t, view.Loading)
	assert.Equal(t, 42, view.Total)
	assert.Equal(t, 5, view.TotalPages)
	assert.Len(t, view.Rows, 10)

	tbl.SetPage(5)
	tbl.SetPage(6)
	assert.Equal(t, []int{5}, calls)
	assert.True(t, tbl.View().HasPrev())
	assert.False(t, tbl.View().HasNext())
}

func TestTable_LastRequestWins(t *testing.T) {
	tbl := newTable(t)

	first := tbl.BeginRefresh()
	second := tbl.BeginRefresh()

	assert.False(t, tbl.Deliver(first, amountRows(), 0), "superseded result is dropped")
	assert.True(t, tbl.View().Loading)

	assert.True(t, tbl.Deliver(second, guestRows(), 0))
	assert.Equal(t, []string{"1", "2", "3"}, renderedIDs(tbl.View().Rows))

	assert.False(t, tbl.Deliver(second, amountRows(), 0), "a token is applied once")
	assert.False(t, tbl.Abandon(first))
}

func TestTable_Abandon(t *testing.T) {
	tbl := newTable(t)
	tbl.SetRows(guestRows())

	token := tbl.BeginRefresh()
	assert.Empty(t, tbl.View().Rows)
	assert.True(t, tbl.Abandon(token))

	view := tbl.View()
	assert.False(t, view.Loading)
	assert.Len(t, view.Rows, 3, "previous rows remain after a failed refresh")
}

func TestTable_ClickRow(t *testing.T) {
	var clicked table.Row
	tbl := newTable(t, table.WithPageSize(2), table.WithOnRowClick(func(r table.Row) { clicked = r }))
	tbl.SetRows(guestRows())

	require.True(t, tbl.ClickRow("2"))
	assert.Equal(t, "Johnny Appleseed", clicked.String("guestName"))

	assert.False(t, tbl.ClickRow("3"), "row 3 is not on the visible page")
}

func TestTable_WithQuery(t *testing.T) {
	q := table.Query{Page: 2, PageSize: 5, Sort: table.SortBy("n", table.Desc), Search: "guest"}
	tbl := newTable(t, table.WithQuery(q))
	tbl.SetRows(numberedRows(12))

	view := tbl.View()
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, []string{"7", "6", "5", "4", "3"}, renderedIDs(view.Rows))
	assert.Equal(t, q, tbl.Query())
}

func TestTable_InvalidInitialSortIgnored(t *testing.T) {
	tbl := newTable(t, table.WithSort(table.SortBy("name", table.Asc)))
	assert.False(t, tbl.Sort().IsSorted())
}
