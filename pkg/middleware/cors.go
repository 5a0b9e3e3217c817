package middleware

import "net/http"

// CORSOptions configures the CORS middleware.
type CORSOptions struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
}

// DefaultCORSOptions allows any origin, which suits the Telegram Web App
// surface — the Web App page runs inside Telegram's own webview domain.
func DefaultCORSOptions() CORSOptions {
	return CORSOptions{
		AllowOrigin:  "*",
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Request-ID",
	}
}

// CORS sets CORS headers and answers preflight requests.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", opts.AllowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", opts.AllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", opts.AllowHeaders)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
