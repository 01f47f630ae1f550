package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"github.com/vangoframework/hotelier/internal/api"
	"github.com/vangoframework/hotelier/internal/auth"
	"github.com/vangoframework/hotelier/internal/config"
	"github.com/vangoframework/hotelier/internal/database"
	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/prefs"
	"github.com/vangoframework/hotelier/internal/templates"
)

// TableObserver counts rendered tables.
type TableObserver interface {
	ObserveTable(table, mode string)
}

type noopObserver struct{}

func (noopObserver) ObserveTable(string, string) {}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	api      *api.Client
	db       *database.DB
	sessions *auth.SessionStore
	verifier *auth.TokenVerifier
	views    prefs.Store
	tables   TableObserver
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures optional dependencies.
type Option func(*Handlers)

// WithDatabase reports database health on /health.
func WithDatabase(db *database.DB) Option {
	return func(h *Handlers) { h.db = db }
}

// WithTableObserver records table renders.
func WithTableObserver(o TableObserver) Option {
	return func(h *Handlers) { h.tables = o }
}

// WithClock overrides the current time, used to validate booking dates.
func WithClock(now func() time.Time) Option {
	return func(h *Handlers) { h.now = now }
}

// New creates a new Handlers instance with all dependencies.
func New(
	cfg *config.Config,
	client *api.Client,
	sessions *auth.SessionStore,
	verifier *auth.TokenVerifier,
	views prefs.Store,
	logger *slog.Logger,
	opts ...Option,
) *Handlers {
	h := &Handlers{
		config:   cfg,
		api:      client,
		sessions: sessions,
		verifier: verifier,
		views:    views,
		tables:   noopObserver{},
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var flashMessages = map[string]templates.Flash{
	"booked":          {Kind: "success", Message: "Your booking has been received. We will email you a confirmation."},
	"status_updated":  {Kind: "success", Message: "Status updated."},
	"role_updated":    {Kind: "success", Message: "Role updated."},
	"deleted":         {Kind: "success", Message: "Booking deleted."},
	"signed_out":      {Kind: "success", Message: "You have been signed out."},
	"session_expired": {Kind: "error", Message: "Your session has expired. Please sign in again."},
	"update_failed":   {Kind: "error", Message: "The change could not be saved. Please try again."},
}

// page builds the layout data shared by every page.
func (h *Handlers) page(r *http.Request, title string) templates.Page {
	p := templates.Page{
		Title:     title,
		Path:      r.URL.Path,
		User:      middleware.GetSession(r.Context()),
		CSRFToken: csrf.Token(r),
	}
	if f, ok := flashMessages[r.URL.Query().Get("flash")]; ok {
		p.Flash = f
	}
	return p
}

// client returns the API client acting as the signed-in user.
func (h *Handlers) client(r *http.Request) *api.Client {
	if s := middleware.GetSession(r.Context()); s != nil {
		return h.api.WithToken(s.AccessToken)
	}
	return h.api
}

// apiFailure answers a failed API call. An expired or revoked token ends the
// session; a missing record is a 404; anything else is logged as a 502.
func (h *Handlers) apiFailure(w http.ResponseWriter, r *http.Request, what string, err error) {
	switch {
	case api.StatusCode(err) == http.StatusUnauthorized:
		role := auth.RoleGuest
		if s := middleware.GetSession(r.Context()); s != nil {
			role = s.Role
		}
		h.sessions.Clear(w)
		http.Redirect(w, r, role.LoginPage()+"?flash=session_expired", http.StatusSeeOther)
	case api.StatusCode(err) == http.StatusForbidden:
		http.Error(w, "Forbidden", http.StatusForbidden)
	case api.IsNotFound(err):
		http.NotFound(w, r)
	default:
		h.logger.Error("api request failed", "what", what, "error", err)
		http.Error(w, "Failed to load "+what, http.StatusBadGateway)
	}
}

// userMessage turns an API error into text fit for a form.
func userMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.StatusCode < 500 {
		return apiErr.Message
	}
	return fallback
}

// safeNext keeps post-login redirects on this site.
func safeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}
