// Package table implements a reusable data table engine: column definitions,
// free-text filtering, stable sorting, pagination and per-cell rendering.
//
// Data flows one way (rows -> filter -> sort -> paginate -> render) and every
// stage is a pure function of its inputs. The Table type holds the interactive
// state (sort, page, filter, loading) for one table instance.
package table

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Row is one record supplied by the host. The engine never mutates it.
type Row struct {
	ID     string
	Fields map[string]any
}

// NewRow creates a row with the given identifier and fields.
func NewRow(id string, fields map[string]any) Row {
	return Row{ID: id, Fields: fields}
}

// Get returns the raw value of a field and whether it is present.
func (r Row) Get(field string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[field]
	if ok && isNil(v) {
		return nil, false
	}
	return v, ok
}

// isNil reports whether v is nil or a nil pointer, map, slice, channel,
// func or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// String returns the string form of a field, or "" if it is missing.
func (r Row) String(field string) string {
	v, _ := r.Get(field)
	return stringify(v)
}

// Column declares how one field is rendered and sorted.
type Column struct {
	Key      string
	Header   string
	Sortable bool

	// SortKey names the row field used for sorting. Defaults to Key.
	SortKey string

	// Virtual marks a column whose Key does not name a row field.
	Virtual bool

	Render    func(Row) any
	SortValue func(Row) any
}

// ColumnSet is a validated, ordered set of columns.
type ColumnSet struct {
	columns []Column
	index   map[string]int
}

// DefineColumns validates column definitions and returns them as a set.
func DefineColumns(cols ...Column) (*ColumnSet, error) {
	set := &ColumnSet{
		columns: make([]Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}

	for _, col := range cols {
		if col.Key == "" {
			return nil, &ConfigurationError{Column: col.Header, Err: ErrEmptyKey}
		}
		if _, exists := set.index[col.Key]; exists {
			return nil, &ConfigurationError{Column: col.Key, Err: ErrDuplicateKey}
		}
		if col.Sortable && !col.hasSortSource() {
			return nil, &ConfigurationError{Column: col.Key, Err: ErrNoSortSource}
		}
		if col.Header == "" {
			col.Header = col.Key
		}

		set.index[col.Key] = len(set.columns)
		set.columns = append(set.columns, col)
	}

	return set, nil
}

// MustDefineColumns is like DefineColumns but panics on invalid definitions.
// It is intended for package-level column declarations.
func MustDefineColumns(cols ...Column) *ColumnSet {
	set, err := DefineColumns(cols...)
	if err != nil {
		panic(err)
	}
	return set
}

// Columns returns the columns in declaration order.
func (s *ColumnSet) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s *ColumnSet) Len() int {
	return len(s.columns)
}

// Lookup returns the column with the given key.
func (s *ColumnSet) Lookup(key string) (Column, bool) {
	i, ok := s.index[key]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

func (c Column) hasSortSource() bool {
	return c.SortValue != nil || c.SortKey != "" || c.Render != nil || !c.Virtual
}

func (c Column) sortField() string {
	if c.SortKey != "" {
		return c.SortKey
	}
	if c.Virtual {
		return ""
	}
	return c.Key
}

// Value resolves the comparable value of the column for a row: SortValue if
// set, else the SortKey (or Key) field, else the render output as a string.
// A nil result means the value is missing.
func (c Column) Value(row Row) any {
	if c.SortValue != nil {
		if v, ok := safeCall(c.SortValue, row); ok && v != nil {
			return v
		}
		return nil
	}
	if field := c.sortField(); field != "" {
		if v, ok := row.Get(field); ok {
			return v
		}
	}
	if c.Render != nil {
		if v, ok := safeCall(c.Render, row); ok && v != nil {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return nil
}

// safeCall runs a host-supplied row function, reporting false if it panics.
func safeCall(fn func(Row) any, row Row) (v any, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	return fn(row), true
}

// stringify returns the display string of a value; nil becomes "".
func stringify(v any) string {
	if isNil(v) {
		return ""
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}
