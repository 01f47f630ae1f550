package table_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/hotelier/internal/table"
)

func TestDefineColumns(t *testing.T) {
	tests := []struct {
		name    string
		cols    []table.Column
		wantErr error
	}{
		{"valid", bookingColumns(), nil},
		{"empty key", []table.Column{{Header: "Guest"}}, table.ErrEmptyKey},
		{"duplicate key", []table.Column{{Key: "a"}, {Key: "b"}, {Key: "a"}}, table.ErrDuplicateKey},
		{"sortable virtual without source", []table.Column{{Key: "actions", Virtual: true, Sortable: true}}, table.ErrNoSortSource},
		{"sortable virtual with sort key", []table.Column{{Key: "room", Virtual: true, Sortable: true, SortKey: "roomType"}}, nil},
		{"sortable virtual with sort value", []table.Column{{Key: "x", Virtual: true, Sortable: true, SortValue: func(table.Row) any { return 1 }}}, nil},
		{"sortable virtual with render", []table.Column{{Key: "x", Virtual: true, Sortable: true, Render: func(table.Row) any { return "x" }}}, nil},
		{"unsortable virtual", []table.Column{{Key: "actions", Virtual: true}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := table.DefineColumns(tt.cols...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, len(tt.cols), set.Len())
				return
			}

			assert.Nil(t, set)
			assert.ErrorIs(t, err, tt.wantErr)

			var cfgErr *table.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestDefineColumns_DefaultHeader(t *testing.T) {
	set := mustColumns(table.Column{Key: "roomNumber"})
	col, ok := set.Lookup("roomNumber")
	require.True(t, ok)
	assert.Equal(t, "roomNumber", col.Header)
}

func TestNew_ConfigurationError(t *testing.T) {
	_, err := table.New([]table.Column{{Key: "a"}, {Key: "a"}})
	var cfgErr *table.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "a", cfgErr.Column)
	assert.Contains(t, err.Error(), `column "a"`)
}

func TestMustDefineColumns_Panics(t *testing.T) {
	assert.Panics(t, func() {
		table.MustDefineColumns(table.Column{Key: ""})
	})
}

func TestColumnValue(t *testing.T) {
	row := table.NewRow("1", map[string]any{
		"guestName": "John",
		"status":    "pending",
	})

	tests := []struct {
		name string
		col  table.Column
		want any
	}{
		{"sort value wins", table.Column{Key: "status", SortValue: func(table.Row) any { return 2 }}, 2},
		{"sort key field", table.Column{Key: "guest", SortKey: "guestName"}, "John"},
		{"key field", table.Column{Key: "status"}, "pending"},
		{"render fallback", table.Column{Key: "missing", Render: func(r table.Row) any { return "#" + r.ID }}, "#1"},
		{"missing", table.Column{Key: "missing"}, nil},
		{"virtual without render", table.Column{Key: "actions", Virtual: true}, nil},
		{"panicking sort value", table.Column{Key: "status", SortValue: func(table.Row) any { panic("boom") }}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.Value(row))
		})
	}
}

func TestRowGet(t *testing.T) {
	row := table.NewRow("1", map[string]any{"a": "x", "n": nil})

	v, ok := row.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = row.Get("n")
	assert.False(t, ok, "nil values count as missing")

	_, ok = table.Row{ID: "2"}.Get("a")
	assert.False(t, ok)

	assert.Equal(t, "", row.String("missing"))
}
