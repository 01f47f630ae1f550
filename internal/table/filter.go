package table

import "strings"

// Filter is a case-insensitive free-text filter.
// Keys narrows the searched columns; empty means every column.
type Filter struct {
	Text string
	Keys []string
}

// IsBlank reports whether the filter text is empty or whitespace only.
func (f Filter) IsBlank() bool {
	return strings.TrimSpace(f.Text) == ""
}

// ApplyFilter returns the rows matching the filter, in input order.
// A row matches when the filter text occurs in the string form of any searched
// column's display value, sort value or raw field value.
func ApplyFilter(rows []Row, f Filter, cols *ColumnSet) []Row {
	if f.IsBlank() || cols == nil {
		return append([]Row(nil), rows...)
	}

	needle := strings.ToLower(strings.TrimSpace(f.Text))
	searched := searchColumns(f.Keys, cols)

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, needle, searched) {
			out = append(out, row)
		}
	}
	return out
}

func searchColumns(keys []string, cols *ColumnSet) []Column {
	if len(keys) == 0 {
		return cols.columns
	}
	out := make([]Column, 0, len(keys))
	for _, key := range keys {
		if col, ok := cols.Lookup(key); ok {
			out = append(out, col)
		}
	}
	return out
}

func rowMatches(row Row, needle string, cols []Column) bool {
	for _, col := range cols {
		for _, candidate := range searchableStrings(row, col) {
			if strings.Contains(strings.ToLower(candidate), needle) {
				return true
			}
		}
	}
	return false
}

func searchableStrings(row Row, col Column) []string {
	out := make([]string, 0, 3)
	if !col.Virtual {
		if v, ok := row.Get(col.Key); ok {
			out = append(out, stringify(v))
		}
	}
	if v := col.Value(row); v != nil {
		out = append(out, stringify(v))
	}
	if col.Render != nil {
		if v, ok := safeCall(col.Render, row); ok {
			if s, isText := displayText(v); isText {
				out = append(out, s)
			}
		}
	}
	return out
}

// displayText returns the text of plain display values. Values such as HTML
// components are not searchable through their rendered form.
func displayText(v any) (string, bool) {
	switch v.(type) {
	case nil:
		return "", false
	case string, int, int64, float64, bool:
		return stringify(v), true
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String(), true
	}
	return "", false
}
