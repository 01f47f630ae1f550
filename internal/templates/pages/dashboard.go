package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/templates"
)

// Dashboard is the signed-in landing page for guests.
func Dashboard(p templates.Page) templ.Component {
	p.Title = "Guest dashboard"
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", "Welcome, "+p.User.DisplayName())
		w.Element("p", "Your luxury experience", "class", "subtitle")

		w.Open("dl", "class", "card")
		w.Element("dt", "Email")
		w.Element("dd", p.User.Email)
		if p.User.Username != "" {
			w.Element("dt", "Username")
			w.Element("dd", p.User.Username)
		}
		w.Element("dt", "Account")
		w.Element("dd", p.User.Role.Label())
		w.Close("dl")

		w.Open("p")
		w.Element("a", "Book a room", "href", "/book", "class", "button")
		if p.User.Role.AtLeast(auth.RoleStaff) {
			w.Raw(" ")
			w.Element("a", "Go to administration", "href", "/admin")
		}
		w.Close("p")
	})
	return templates.Layout(p, body)
}
