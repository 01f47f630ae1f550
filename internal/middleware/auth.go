package middleware

import (
	"net/http"
	"net/url"

	"github.com/vangoframework/hotelier/internal/auth"
)

// RequireAuth redirects unauthenticated users to login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := GetSession(r.Context())
		if session == nil {
			redirectToLogin(w, r, auth.RoleGuest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole admits users holding at least min. Anonymous users are sent to
// the login page for min; signed-in users without the role get 403.
func RequireRole(min auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSession(r.Context())
			if session == nil {
				redirectToLogin(w, r, min)
				return
			}
			if !session.Role.AtLeast(min) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, role auth.Role) {
	target := role.LoginPage()
	if r.Method == http.MethodGet {
		target += "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
