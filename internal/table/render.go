package table

// EmptyValue is displayed for missing cell values.
const EmptyValue = "-"

// Cell is one rendered value.
type Cell struct {
	Key   string
	Value any
	Empty bool
}

// Text returns the cell's value as a string.
func (c Cell) Text() string {
	if c.Empty {
		return EmptyValue
	}
	if s := stringify(c.Value); s != "" {
		return s
	}
	return EmptyValue
}

// RenderedRow is a row with one cell per column.
type RenderedRow struct {
	ID    string
	Row   Row
	Cells []Cell
}

// RenderRow renders each column of a row: Render(row) if set, else the row's
// Key field. Missing values, nil results and panicking render functions all
// produce an empty cell holding EmptyValue.
func RenderRow(row Row, cols *ColumnSet) RenderedRow {
	out := RenderedRow{ID: row.ID, Row: row}
	if cols == nil {
		return out
	}

	out.Cells = make([]Cell, len(cols.columns))
	for i, col := range cols.columns {
		out.Cells[i] = renderCell(row, col)
	}
	return out
}

// RenderRows renders every row in order.
func RenderRows(rows []Row, cols *ColumnSet) []RenderedRow {
	out := make([]RenderedRow, len(rows))
	for i, row := range rows {
		out[i] = RenderRow(row, cols)
	}
	return out
}

func renderCell(row Row, col Column) Cell {
	var (
		v  any
		ok bool
	)
	if col.Render != nil {
		v, ok = safeCall(col.Render, row)
	} else if !col.Virtual {
		v, ok = row.Get(col.Key)
	}

	if !ok || isEmptyValue(v) {
		return Cell{Key: col.Key, Value: EmptyValue, Empty: true}
	}
	return Cell{Key: col.Key, Value: v}
}

func isEmptyValue(v any) bool {
	if isNil(v) {
		return true
	}
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	default:
		return false
	}
}
