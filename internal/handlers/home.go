package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/templates/pages"
)

// Home handles the root path.
// Signed-in users go to their dashboard, everyone else sees the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if session := middleware.GetSession(r.Context()); session != nil {
		http.Redirect(w, r, session.Role.HomePath(), http.StatusSeeOther)
		return
	}

	pages.Home(h.page(r, "Welcome")).Render(r.Context(), w)
}

// Dashboard renders the guest dashboard.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	pages.Dashboard(h.page(r, "Dashboard")).Render(r.Context(), w)
}

// Health reports whether the API and, when configured, the database answer.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.api.Health(ctx); err != nil {
		h.logger.Warn("health check failed", "component", "api", "error", err)
		http.Error(w, "api unavailable", http.StatusServiceUnavailable)
		return
	}
	if h.db != nil {
		if err := h.db.Health(ctx); err != nil {
			h.logger.Warn("health check failed", "component", "database", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Write([]byte("ok"))
}
