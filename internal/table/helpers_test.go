package table_test

import (
	"fmt"

	"github.com/vangoframework/hotelier/internal/table"
)

func amountRows() []table.Row {
	return []table.Row{
		table.NewRow("A", map[string]any{"amount": 300, "guestName": "Ann"}),
		table.NewRow("B", map[string]any{"amount": 100, "guestName": "Bob"}),
		table.NewRow("C", map[string]any{"amount": 200, "guestName": "Cid"}),
	}
}

func guestRows() []table.Row {
	return []table.Row{
		table.NewRow("1", map[string]any{"guestName": "John Smith", "status": "confirmed"}),
		table.NewRow("2", map[string]any{"guestName": "Johnny Appleseed", "status": "pending"}),
		table.NewRow("3", map[string]any{"guestName": "Jane Doe", "status": "confirmed"}),
	}
}

// numberedRows returns n rows with ids "1".."n" and a repeating status field.
func numberedRows(n int) []table.Row {
	statuses := []string{"pending", "confirmed", "cancelled"}
	rows := make([]table.Row, n)
	for i := range rows {
		rows[i] = table.NewRow(fmt.Sprint(i+1), map[string]any{
			"n":      i + 1,
			"status": statuses[i%len(statuses)],
			"name":   fmt.Sprintf("Guest %02d", i+1),
		})
	}
	return rows
}

func bookingColumns() []table.Column {
	return []table.Column{
		{Key: "guestName", Header: "Guest", Sortable: true},
		{Key: "amount", Header: "Amount", Sortable: true},
		{Key: "status", Header: "Status", Sortable: true},
		{Key: "n", Header: "#", Sortable: true},
		{Key: "name", Header: "Name"},
	}
}

func mustColumns(cols ...table.Column) *table.ColumnSet {
	return table.MustDefineColumns(cols...)
}

func ids(rows []table.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func renderedIDs(rows []table.RenderedRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
