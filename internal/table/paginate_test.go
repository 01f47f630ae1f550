package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vangoframework/hotelier/internal/table"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{12, 10, 2},
		{25, 5, 5},
		{5, 0, 5}, // size clamps to 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestApplyPagination_TwelveRows(t *testing.T) {
	rows := numberedRows(12)

	p1 := table.ApplyPagination(rows, table.PaginationState{Page: 1, PageSize: 10}, table.ClientSide)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, ids(p1.Rows))
	assert.Equal(t, 2, p1.TotalPages)
	assert.Equal(t, 12, p1.Total)

	p2 := table.ApplyPagination(rows, table.PaginationState{Page: 2, PageSize: 10}, table.ClientSide)
	assert.Equal(t, []string{"11", "12"}, ids(p2.Rows))
	assert.Equal(t, 2, p2.TotalPages)
}

func TestApplyPagination_ClampsPage(t *testing.T) {
	rows := numberedRows(12)

	high := table.ApplyPagination(rows, table.PaginationState{Page: 9, PageSize: 10}, table.ClientSide)
	assert.Equal(t, 2, high.Page)
	assert.Equal(t, []string{"11", "12"}, ids(high.Rows))

	low := table.ApplyPagination(rows, table.PaginationState{Page: -3, PageSize: 10}, table.ClientSide)
	assert.Equal(t, 1, low.Page)
	assert.Len(t, low.Rows, 10)
}

func TestApplyPagination_Empty(t *testing.T) {
	p := table.ApplyPagination(nil, table.PaginationState{Page: 1, PageSize: 10}, table.ClientSide)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.Total)
}

func TestApplyPagination_ServerSide(t *testing.T) {
	rows := numberedRows(10)

	p := table.ApplyPagination(rows, table.PaginationState{Page: 3, PageSize: 10, Total: 95}, table.ServerSide)
	assert.Equal(t, ids(rows), ids(p.Rows), "server pages are passed through")
	assert.Equal(t, 95, p.Total)
	assert.Equal(t, 10, p.TotalPages)
	assert.Equal(t, 3, p.Page)
}

func TestApplyPagination_Coverage(t *testing.T) {
	for n := 0; n <= 25; n++ {
		rows := numberedRows(n)
		for size := 1; size <= 13; size++ {
			totalPages := table.TotalPages(n, size)
			var seen []string
			for page := 1; page <= totalPages; page++ {
				p := table.ApplyPagination(rows, table.PaginationState{Page: page, PageSize: size}, table.ClientSide)
				seen = append(seen, ids(p.Rows)...)
			}
			assert.Equal(t, ids(rows), seen, "n=%d size=%d", n, size)
		}
	}
}

func TestApplyPagination_RoundTripLargeSet(t *testing.T) {
	cols := mustColumns(bookingColumns()...)
	rows := numberedRows(150)

	filtered := table.ApplyFilter(rows, table.Filter{}, cols)
	sorted := table.ApplySort(filtered, table.Unsorted(), cols)
	page := table.ApplyPagination(sorted, table.PaginationState{Page: 1, PageSize: len(rows)}, table.ClientSide)

	assert.Equal(t, ids(rows), ids(page.Rows))
	assert.Equal(t, 150, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, 1, table.ClampPageSize(0))
	assert.Equal(t, 25, table.ClampPageSize(25))
	assert.Equal(t, table.MaxPageSize, table.ClampPageSize(1000))
}
