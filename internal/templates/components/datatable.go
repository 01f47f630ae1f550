// Package components holds reusable page fragments.
package components

import (
	"context"
	"maps"
	"net/url"
	"slices"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/table"
	"github.com/vangoframework/hotelier/internal/templates"
)

// DefaultPageSizes are offered in the page size selector.
var DefaultPageSizes = []int{10, 25, 50, 100}

// DataTableProps configures a DataTable.
type DataTableProps struct {
	ID       string
	View     table.View
	Query    table.Query
	BasePath string
	// Extra holds non-table query parameters (filters) kept on every link.
	Extra url.Values
	// RowHref, when set, makes rows navigate on click.
	RowHref      func(table.RenderedRow) string
	EmptyMessage string
	PageSizes    []int
}

func (p DataTableProps) href(q table.Query) string {
	enc := q.Encode(p.Extra)
	if enc == "" {
		return p.BasePath
	}
	return p.BasePath + "?" + enc
}

// DataTable renders a table view with sortable headers, search and
// pagination. All interaction happens through GET links.
func DataTable(p DataTableProps) templ.Component {
	return templates.Func(func(ctx context.Context, w *templates.Writer) {
		v := p.View
		w.Open("div", "class", "datatable", "id", p.ID)

		if v.Searchable {
			searchForm(w, p)
		}

		w.Raw("<table><thead><tr>")
		for _, h := range v.Headers {
			header(w, p, h)
		}
		w.Raw("</tr></thead><tbody>")

		cols := strconv.Itoa(max(len(v.Headers), 1))
		switch {
		case v.Loading:
			w.Raw(`<tr><td class="loading" colspan="` + cols + `">`)
			w.Text("Loading…")
			w.Raw("</td></tr>")
		case v.Empty:
			msg := p.EmptyMessage
			if msg == "" {
				msg = "No data available"
			}
			w.Raw(`<tr><td class="empty" colspan="` + cols + `">`)
			w.Text(msg)
			w.Raw("</td></tr>")
		default:
			for _, row := range v.Rows {
				if p.RowHref != nil {
					w.Open("tr", "data-row-id", row.ID, "data-href", p.RowHref(row))
				} else {
					w.Open("tr", "data-row-id", row.ID)
				}
				for _, cell := range row.Cells {
					w.Open("td")
					if c, ok := cell.Value.(templ.Component); ok && !cell.Empty {
						w.Render(ctx, c)
					} else {
						w.Text(cell.Text())
					}
					w.Close("td")
				}
				w.Close("tr")
			}
		}
		w.Raw("</tbody></table>")

		if v.Paginated && !v.Loading {
			pagination(w, p)
		}
		w.Close("div")
	})
}

func header(w *templates.Writer, p DataTableProps, h table.Header) {
	ariaSort := "none"
	switch h.Direction {
	case table.Asc:
		ariaSort = "ascending"
	case table.Desc:
		ariaSort = "descending"
	}

	if !h.Sortable {
		w.Element("th", h.Title, "scope", "col")
		return
	}

	w.Open("th", "scope", "col", "aria-sort", ariaSort)
	w.Open("a", "href", p.href(p.Query.WithSortToggled(h.Key)))
	w.Text(h.Title)
	switch h.Direction {
	case table.Asc:
		w.Raw(" &#9650;")
	case table.Desc:
		w.Raw(" &#9660;")
	}
	w.Close("a")
	w.Close("th")
}

func hiddenInputs(w *templates.Writer, values url.Values, skip ...string) {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if slices.Contains(skip, key) {
			continue
		}
		for _, val := range values[key] {
			w.Open("input", "type", "hidden", "name", key, "value", val)
		}
	}
}

func searchForm(w *templates.Writer, p DataTableProps) {
	w.Open("form", "method", "get", "action", p.BasePath, "class", "datatable-search")
	// Searching starts over on page 1.
	hiddenInputs(w, p.Query.Merge(p.Extra), table.ParamSearch, table.ParamPage)
	w.Open("input", "type", "search", "name", table.ParamSearch, "value", p.View.Filter, "placeholder", "Search…", "aria-label", "Search")
	w.Raw(`<button type="submit">Search</button>`)
	w.Close("form")
}

// pageWindow returns the page numbers to link, with 0 marking a gap.
func pageWindow(page, totalPages int) []int {
	const span = 2
	var out []int
	for n := 1; n <= totalPages; n++ {
		if n == 1 || n == totalPages || (n >= page-span && n <= page+span) {
			out = append(out, n)
			continue
		}
		if len(out) > 0 && out[len(out)-1] != 0 {
			out = append(out, 0)
		}
	}
	return out
}

func pagination(w *templates.Writer, p DataTableProps) {
	v := p.View
	w.Open("nav", "class", "pagination", "aria-label", "Pagination")

	from, to := 0, 0
	if v.Total > 0 {
		from = (v.Page-1)*v.PageSize + 1
		to = min(v.Page*v.PageSize, v.Total)
	}
	w.Open("span", "class", "summary")
	w.Textf("Showing %d to %d of %d results", from, to, v.Total)
	w.Close("span")

	if v.HasPrev() {
		w.Element("a", "Previous", "href", p.href(p.Query.WithPage(v.Page-1)), "rel", "prev")
	} else {
		w.Element("span", "Previous", "class", "disabled", "aria-disabled", "true")
	}

	for _, n := range pageWindow(v.Page, v.TotalPages) {
		switch {
		case n == 0:
			w.Raw("<span>&hellip;</span>")
		case n == v.Page:
			w.Element("span", strconv.Itoa(n), "class", "current", "aria-current", "page")
		default:
			w.Element("a", strconv.Itoa(n), "href", p.href(p.Query.WithPage(n)))
		}
	}

	if v.HasNext() {
		w.Element("a", "Next", "href", p.href(p.Query.WithPage(v.Page+1)), "rel", "next")
	} else {
		w.Element("span", "Next", "class", "disabled", "aria-disabled", "true")
	}

	sizes := p.PageSizes
	if len(sizes) == 0 {
		sizes = DefaultPageSizes
	}
	w.Open("form", "method", "get", "action", p.BasePath, "class", "page-size")
	hiddenInputs(w, p.Query.Merge(p.Extra), table.ParamPageSize, table.ParamPage)
	w.Open("select", "name", table.ParamPageSize, "aria-label", "Rows per page", "onchange", "this.form.submit()")
	for _, size := range sizes {
		w.Raw("<option")
		w.Attr("value", strconv.Itoa(size))
		w.BoolAttr("selected", size == v.PageSize)
		w.Raw(">")
		w.Textf("%d per page", size)
		w.Close("option")
	}
	w.Close("select")
	w.Raw(`<noscript><button type="submit">Apply</button></noscript>`)
	w.Close("form")

	w.Close("nav")
}
