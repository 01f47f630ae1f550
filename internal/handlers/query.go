package handlers

import (
	"net/http"

	"github.com/vangoframework/hotelier/internal/middleware"
	"github.com/vangoframework/hotelier/internal/prefs"
	"github.com/vangoframework/hotelier/internal/table"
)

// tableQuery resolves the navigational state of tableID for this request.
// Explicit query parameters win and are remembered for the user; a bare URL
// restores the saved view; ?reset=1 forgets it.
func (h *Handlers) tableQuery(r *http.Request, tableID string) table.Query {
	ctx := r.Context()
	values := r.URL.Query()
	defaults := table.Query{Page: 1, PageSize: table.ClampPageSize(h.config.DefaultPageSize)}

	var userKey string
	if s := middleware.GetSession(ctx); s != nil {
		userKey = s.Email
		if userKey == "" {
			userKey = s.Username
		}
	}
	if userKey == "" {
		return table.ParseQuery(values, defaults)
	}

	if values.Has("reset") {
		if err := h.views.Delete(ctx, userKey, tableID); err != nil {
			h.logger.Warn("failed to reset table view", "table", tableID, "error", err)
		}
		return defaults
	}

	if !table.HasTableParams(values) {
		saved, ok, err := h.views.Get(ctx, userKey, tableID)
		if err != nil {
			h.logger.Warn("failed to load table view", "table", tableID, "error", err)
		}
		if ok {
			return saved.Apply(defaults)
		}
		return defaults
	}

	q := table.ParseQuery(values, defaults)
	if err := h.views.Save(ctx, userKey, tableID, prefs.FromQuery(q)); err != nil {
		h.logger.Warn("failed to save table view", "table", tableID, "error", err)
	}
	return q
}
