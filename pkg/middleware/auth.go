package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/altindan/pkg/auth"
	"github.com/shashiranjanraj/altindan/pkg/response"
	"github.com/shashiranjanraj/altindan/pkg/session"
)

// AdminPage guards the HTML panel: a browser without an admin session is
// sent to the login page rather than handed a JSON envelope.
func AdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if admin, ok := session.FromCtx(r).GetString("admin"); ok && admin != "" {
			next.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "/admin/login", http.StatusFound)
	})
}

// AdminAuth guards the admin JSON API. It accepts either a logged-in admin
// session (the HTML panel) or a Bearer JWT (scripted access).
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if admin, ok := session.FromCtx(r).GetString("admin"); ok && admin != "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
