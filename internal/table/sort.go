package table

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// Direction is the sort direction of a column.
type Direction int

const (
	None Direction = iota
	Asc
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	default:
		return ""
	}
}

// ParseDirection parses "asc" or "desc" (case-insensitive). Anything else is None.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc
	case "desc":
		return Desc
	default:
		return None
	}
}

// SortState is the current sort column and direction.
// The zero value means unsorted: rows keep their insertion order.
type SortState struct {
	ColumnKey string
	Direction Direction
}

// Unsorted returns the unsorted state.
func Unsorted() SortState {
	return SortState{}
}

// SortBy returns an ascending or descending sort on a column.
func SortBy(key string, dir Direction) SortState {
	if key == "" || dir == None {
		return SortState{}
	}
	return SortState{ColumnKey: key, Direction: dir}
}

// IsSorted reports whether the state orders rows.
func (s SortState) IsSorted() bool {
	return s.ColumnKey != "" && s.Direction != None
}

// DirectionOf returns the direction applied to the given column.
func (s SortState) DirectionOf(key string) Direction {
	if s.IsSorted() && s.ColumnKey == key {
		return s.Direction
	}
	return None
}

// Toggle returns the state after a header click on key.
// The same column cycles asc -> desc -> unsorted; a different column starts at asc.
func (s SortState) Toggle(key string) SortState {
	if !s.IsSorted() || s.ColumnKey != key {
		return SortState{ColumnKey: key, Direction: Asc}
	}
	if s.Direction == Asc {
		return SortState{ColumnKey: key, Direction: Desc}
	}
	return SortState{}
}

// ApplySort returns the rows ordered by the sort state. The input slice is not
// modified. The sort is stable: equal rows keep their relative input order.
// Unknown or non-sortable columns leave the order unchanged.
func ApplySort(rows []Row, state SortState, cols *ColumnSet) []Row {
	out := slices.Clone(rows)
	if !state.IsSorted() || cols == nil {
		return out
	}

	col, ok := cols.Lookup(state.ColumnKey)
	if !ok || !col.Sortable {
		return out
	}

	// Extract once per row; render and sort functions may be expensive.
	keyed := make([]keyedRow, len(out))
	for i, row := range out {
		keyed[i] = keyedRow{row: row, key: classify(col.Value(row))}
	}

	desc := state.Direction == Desc
	slices.SortStableFunc(keyed, func(a, b keyedRow) int {
		c := compareKeys(a.key, b.key)
		if desc {
			return -c
		}
		return c
	})

	for i := range keyed {
		out[i] = keyed[i].row
	}
	return out
}

type keyedRow struct {
	row Row
	key sortKey
}

// valueKind ranks sort values so that mixed columns still order totally:
// missing values first, then numbers, then dates, then everything else as text.
type valueKind int

const (
	kindMissing valueKind = iota
	kindNumber
	kindTime
	kindText
)

type sortKey struct {
	kind valueKind
	num  float64
	at   time.Time
	text string
}

func classify(v any) sortKey {
	if isNil(v) {
		return sortKey{kind: kindMissing}
	}
	if n, ok := toNumber(v); ok {
		return sortKey{kind: kindNumber, num: n}
	}
	if t, ok := toTime(v); ok {
		return sortKey{kind: kindTime, at: t}
	}
	return sortKey{kind: kindText, text: strings.ToLower(stringify(v))}
}

// compareKeys orders two classified sort values. Different kinds order by
// kind. Within a kind, text compares case-insensitively.
func compareKeys(x, y sortKey) int {
	if x.kind != y.kind {
		return cmp.Compare(x.kind, y.kind)
	}
	switch x.kind {
	case kindNumber:
		return cmp.Compare(x.num, y.num)
	case kindTime:
		return x.at.Compare(y.at)
	case kindText:
		return strings.Compare(x.text, y.text)
	default:
		return 0
	}
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// dateLayouts are the formats accepted when comparing string values as dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"Jan 2, 2006",
}

func toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		return parseDate(x)
	default:
		return time.Time{}, false
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len("2006-01-02") {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
