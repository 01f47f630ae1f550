package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/auth"
)

// CSRFFieldName is the form field gorilla/csrf reads the token from.
const CSRFFieldName = "gorilla.csrf.Token"

// Flash is a one-off message shown above the page content.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// Page is the per-request data every page layout needs.
type Page struct {
	Title     string
	Path      string
	User      *auth.SessionData
	CSRFToken string
	Flash     Flash
}

// CSRFField renders the hidden CSRF input.
func (p Page) CSRFField() templ.Component {
	return Func(func(_ context.Context, w *Writer) {
		w.Open("input", "type", "hidden", "name", CSRFFieldName, "value", p.CSRFToken)
	})
}

const styles = `body{font-family:system-ui,sans-serif;margin:0;color:#1f2937;background:#f9fafb}
header{background:#111827;color:#fff;padding:.75rem 1.5rem;display:flex;gap:1rem;align-items:center}
header a{color:#e5e7eb;text-decoration:none}header .spacer{flex:1}
main{max-width:72rem;margin:0 auto;padding:1.5rem}
table{width:100%;border-collapse:collapse;background:#fff}
th,td{padding:.5rem .75rem;border-bottom:1px solid #e5e7eb;text-align:left}
tr[data-href]{cursor:pointer}tr[data-href]:hover{background:#f3f4f6}
.badge{display:inline-block;padding:.1rem .5rem;border-radius:9999px;font-size:.75rem}
.badge-yellow{background:#fef3c7}.badge-blue{background:#dbeafe}.badge-green{background:#d1fae5}
.badge-gray{background:#f3f4f6}.badge-red{background:#fee2e2}
.flash{padding:.75rem 1rem;margin-bottom:1rem;border-radius:.25rem}
.flash-success{background:#d1fae5}.flash-error{background:#fee2e2}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(12rem,1fr));gap:1rem;margin-bottom:1.5rem}
.card{background:#fff;padding:1rem;border-radius:.25rem;box-shadow:0 1px 2px rgba(0,0,0,.05)}
.pagination{display:flex;gap:.5rem;align-items:center;margin-top:.75rem}
.field-error{color:#b91c1c;font-size:.8rem}`

// rowLinks makes rows carrying data-href navigate on click.
const rowLinks = `document.addEventListener("click",function(e){var r=e.target.closest("tr[data-href]");if(r&&!e.target.closest("a,button,form"))location.href=r.dataset.href});`

// Layout wraps body in the HTML document and navigation.
func Layout(p Page, body templ.Component) templ.Component {
	return Func(func(ctx context.Context, w *Writer) {
		w.Raw("<!DOCTYPE html>")
		w.Open("html", "lang", "en")
		w.Raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		title := "Hotelier"
		if p.Title != "" {
			title = p.Title + " | Hotelier"
		}
		w.Element("title", title)
		w.Raw("<style>" + styles + "</style></head><body>")

		nav(ctx, w, p)

		w.Open("main")
		if p.Flash.Message != "" {
			kind := p.Flash.Kind
			if kind == "" {
				kind = "success"
			}
			w.Element("div", p.Flash.Message, "class", templ.Classes("flash", "flash-"+kind).String(), "role", "status")
		}
		w.Render(ctx, body)
		w.Close("main")

		w.Raw("<script>" + rowLinks + "</script></body></html>")
	})
}

func nav(ctx context.Context, w *Writer, p Page) {
	w.Open("header")
	w.Element("a", "Hotelier", "href", "/")
	if p.User == nil {
		w.Element("a", "Book a room", "href", "/book")
		w.Raw(`<span class="spacer"></span>`)
		w.Element("a", "Sign in", "href", "/login")
		w.Element("a", "Sign up", "href", "/signup")
		w.Close("header")
		return
	}

	if p.User.Role.AtLeast(auth.RoleStaff) {
		w.Element("a", "Dashboard", "href", "/admin")
		w.Element("a", "Bookings", "href", "/admin/bookings")
		w.Element("a", "Rooms", "href", "/admin/rooms")
		if p.User.Role.AtLeast(auth.RoleAdmin) {
			w.Element("a", "Users", "href", "/admin/users")
		}
	} else {
		w.Element("a", "My stay", "href", "/dashboard")
		w.Element("a", "Book a room", "href", "/book")
	}

	w.Raw(`<span class="spacer"></span>`)
	w.Open("span")
	w.Text(p.User.DisplayName())
	w.Raw(" &middot; ")
	w.Text(p.User.Role.Label())
	w.Close("span")
	w.Open("form", "method", "post", "action", "/logout")
	w.Render(ctx, p.CSRFField())
	w.Raw(`<button type="submit">Sign out</button></form>`)
	w.Close("header")
}
