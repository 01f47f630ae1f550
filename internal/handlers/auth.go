package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/domain"
	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/templates/pages"
)

var errRoleMismatch = errors.New("account role does not match login")

// LoginPage renders the login form for role.
func (h *Handlers) LoginPage(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s := middleware.GetSession(r.Context()); s != nil && s.Role.AtLeast(role) {
			http.Redirect(w, r, safeNext(r.URL.Query().Get("next"), s.Role.HomePath()), http.StatusSeeOther)
			return
		}

		form := pages.LoginForm{Role: role, Next: r.URL.Query().Get("next")}
		pages.Login(h.page(r, ""), form).Render(r.Context(), w)
	}
}

// LoginSubmit signs in through the API endpoint for role.
func (h *Handlers) LoginSubmit(role auth.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		form := pages.LoginForm{Role: role, Next: r.FormValue("next")}
		creds := domain.Credentials{Password: r.FormValue("password")}
		if form.ByEmail() {
			creds.Email = strings.TrimSpace(r.FormValue("email"))
			form.Identifier = creds.Email
		} else {
			creds.Username = strings.TrimSpace(r.FormValue("username"))
			form.Identifier = creds.Username
		}

		if err := creds.Validate(form.ByEmail()); err != nil {
			form.Errors = domain.FieldErrors(err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			pages.Login(h.page(r, ""), form).Render(ctx, w)
			return
		}

		sess, err := h.api.Login(ctx, role.LoginPath(), creds)
		if err == nil {
			err = h.startSession(w, sess, role)
		}
		if err != nil {
			h.logger.Info("login failed", "role", role, "identifier", form.Identifier, "error", err)
			form.Error = loginError(err)
			w.WriteHeader(http.StatusUnauthorized)
			pages.Login(h.page(r, ""), form).Render(ctx, w)
			return
		}

		http.Redirect(w, r, safeNext(form.Next, role.HomePath()), http.StatusSeeOther)
	}
}

func loginError(err error) string {
	switch {
	case errors.Is(err, errRoleMismatch):
		return "This account cannot sign in here."
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired), errors.Is(err, api.ErrNoToken):
		return "Sign in failed. Please try again."
	default:
		return userMessage(err, "Invalid credentials")
	}
}

// startSession verifies the API token and stores the session cookie. want is
// the role of the login endpoint used.
func (h *Handlers) startSession(w http.ResponseWriter, s *api.Session, want auth.Role) error {
	claims, err := h.verifier.Parse(s.AccessToken)
	if err != nil {
		return err
	}

	role := claims.Role
	if role == "" {
		role = auth.Role(s.User.Role)
	}
	role, err = auth.ParseRole(string(role))
	if err != nil || role != want {
		return errRoleMismatch
	}

	data := &auth.SessionData{
		Username:    s.User.Username,
		Email:       s.User.Email,
		FirstName:   s.User.FirstName,
		LastName:    s.User.LastName,
		Role:        role,
		AccessToken: s.AccessToken,
	}
	if data.Email == "" {
		data.Email = claims.Email
	}

	return h.sessions.Set(w, data)
}

// SignupPage renders the guest sign-up form.
func (h *Handlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	pages.Signup(h.page(r, ""), pages.SignupForm{}).Render(r.Context(), w)
}

// SignupSubmit creates a guest account and signs it in.
func (h *Handlers) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := domain.SignupRequest{
		FirstName:       strings.TrimSpace(r.FormValue("firstname")),
		LastName:        strings.TrimSpace(r.FormValue("lastname")),
		Username:        strings.TrimSpace(r.FormValue("username")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmpassword"),
	}
	form := pages.SignupForm{Values: req}

	if err := req.Validate(); err != nil {
		form.Errors = domain.FieldErrors(err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		pages.Signup(h.page(r, ""), form).Render(ctx, w)
		return
	}

	sess, err := h.api.Signup(ctx, req)
	if err == nil {
		err = h.startSession(w, sess, auth.RoleGuest)
	}
	if err != nil {
		h.logger.Info("signup failed", "username", req.Username, "error", err)
		form.Error = userMessage(err, "Sign up failed. Please try again.")
		w.WriteHeader(http.StatusBadRequest)
		pages.Signup(h.page(r, ""), form).Render(ctx, w)
		return
	}

	http.Redirect(w, r, auth.RoleGuest.HomePath(), http.StatusSeeOther)
}

// Logout ends the API session and clears the session cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	role := auth.RoleGuest
	if s := middleware.GetSession(r.Context()); s != nil {
		role = s.Role
		if err := h.client(r).Logout(r.Context()); err != nil {
			h.logger.Warn("api logout failed", "session_id", s.ID, "error", err)
		}
	}

	h.sessions.Clear(w)
	http.Redirect(w, r, role.LoginPage()+"?flash=signed_out", http.StatusSeeOther)
}
