package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/templates"
	"github.com/vangoframework/hotelier/internal/templates/components"
)

// LoginForm is the state of a login page.
type LoginForm struct {
	Role       auth.Role
	Identifier string
	Next       string
	Error      string
	Errors     map[string]string
}

// ByEmail reports whether the form asks for an email instead of a username.
func (f LoginForm) ByEmail() bool {
	return f.Role != auth.RoleGuest
}

func loginTitle(role auth.Role) string {
	switch role {
	case auth.RoleStaff:
		return "Staff sign in"
	case auth.RoleAdmin:
		return "Administrator sign in"
	case auth.RoleSuperAdmin:
		return "Super administrator sign in"
	default:
		return "Sign in"
	}
}

// Login renders the login form for one role.
func Login(p templates.Page, f LoginForm) templ.Component {
	p.Title = loginTitle(f.Role)
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", p.Title)
		if f.Error != "" {
			w.Element("div", f.Error, "class", "flash flash-error", "role", "alert")
		}

		w.Open("form", "method", "post", "action", f.Role.LoginPage(), "class", "auth-form")
		w.Render(ctx, p.CSRFField())
		if f.Next != "" {
			w.Open("input", "type", "hidden", "name", "next", "value", f.Next)
		}
		if f.ByEmail() {
			w.Render(ctx, components.Input(components.Field{
				Name: "email", Label: "Email", Type: "email", Value: f.Identifier,
				Error: f.Errors["email"], Required: true, Autocomplete: "username",
			}))
		} else {
			w.Render(ctx, components.Input(components.Field{
				Name: "username", Label: "Username", Value: f.Identifier,
				Error: f.Errors["username"], Required: true, Autocomplete: "username",
			}))
		}
		w.Render(ctx, components.Input(components.Field{
			Name: "password", Label: "Password", Type: "password",
			Error: f.Errors["password"], Required: true, Autocomplete: "current-password",
		}))
		w.Raw(`<button type="submit">Sign in</button>`)
		w.Close("form")

		if f.Role == auth.RoleGuest {
			w.Open("p")
			w.Text("New here? ")
			w.Element("a", "Create an account", "href", "/signup")
			w.Close("p")
		}
	})
	return templates.Layout(p, body)
}

// SignupForm is the state of the sign-up page.
type SignupForm struct {
	Values domain.SignupRequest
	Error  string
	Errors map[string]string
}

// Signup renders the guest sign-up form.
func Signup(p templates.Page, f SignupForm) templ.Component {
	p.Title = "Create an account"
	body := templates.Func(func(ctx context.Context, w *templates.Writer) {
		w.Element("h1", p.Title)
		if f.Error != "" {
			w.Element("div", f.Error, "class", "flash flash-error", "role", "alert")
		}

		w.Open("form", "method", "post", "action", "/signup", "class", "auth-form")
		w.Render(ctx, p.CSRFField())
		for _, field := range []components.Field{
			{Name: "firstname", Label: "First name", Value: f.Values.FirstName, Required: true},
			{Name: "lastname", Label: "Last name", Value: f.Values.LastName, Required: true},
			{Name: "username", Label: "Username", Value: f.Values.Username, Required: true, Autocomplete: "username"},
			{Name: "email", Label: "Email", Type: "email", Value: f.Values.Email, Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true, Autocomplete: "new-password"},
			{Name: "confirmpassword", Label: "Confirm password", Type: "password", Required: true, Autocomplete: "new-password"},
		} {
			field.Error = f.Errors[field.Name]
			w.Render(ctx, components.Input(field))
		}
		w.Raw(`<button type="submit">Sign up</button>`)
		w.Close("form")

		w.Open("p")
		w.Text("Already have an account? ")
		w.Element("a", "Sign in", "href", "/login")
		w.Close("p")
	})
	return templates.Layout(p, body)
}
