package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vangoframework/hotelier/internal/auth"
)

type contextKey string

// SessionContextKey is the context key for the session.
const SessionContextKey contextKey = "session"

// Session returns a middleware that loads the session into the request context.
// A session whose API access token no longer verifies is cleared.
func Session(store *auth.SessionStore, verifier *auth.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r)
			if err == nil && session != nil {
				if _, err := verifier.Parse(session.AccessToken); err != nil {
					logger.Info("dropping session", "session_id", session.ID, "error", err)
					store.Clear(w)
				} else {
					r = r.WithContext(WithSession(r.Context(), session))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a context carrying session.
func WithSession(ctx context.Context, session *auth.SessionData) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) *auth.SessionData {
	session, ok := ctx.Value(SessionContextKey).(*auth.SessionData)
	if !ok {
		return nil
	}
	return session
}
