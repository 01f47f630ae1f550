// Package pages holds the full-page components.
package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/templates"
)

var roomBlurbs = map[domain.RoomType]string{
	domain.RoomStandard: "Comfortable rooms with everything you need for a short stay.",
	domain.RoomDeluxe:   "More space, city views and a work desk.",
	domain.RoomSuite:    "A separate living area and premium amenities.",
	domain.RoomFamily:   "Room for up to six with connecting bedrooms.",
}

// Home is the public landing page.
func Home(p templates.Page) templ.Component {
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Open("section", "class", "hero")
		w.Element("h1", "Stay with us")
		w.Element("p", "Book a room in a few clicks and manage your stay online.")
		w.Element("a", "Book a room", "href", "/book", "class", "button")
		w.Close("section")

		w.Open("section", "class", "cards")
		for _, rt := range domain.RoomTypes {
			w.Open("div", "class", "card")
			w.Element("h3", rt.Label())
			w.Element("p", roomBlurbs[rt])
			w.Close("div")
		}
		w.Close("section")

		w.Open("p", "class", "staff-links")
		w.Text("Staff? ")
		w.Element("a", "Staff sign in", "href", "/staff/login")
		w.Raw(" &middot; ")
		w.Element("a", "Admin sign in", "href", "/admin/login")
		w.Close("p")
	})
	return templates.Layout(p, body)
}
