package middleware

import (
	"net/http"
	"strings"
)

// HTMX inspects the HX-Request header and annotates the context.
func HTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			is := strings.EqualFold(r.Header.Get("HX-Request"), "true")
			next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
		})
	}
}

// RequireHTMX hides fragment routes from direct navigation; non-htmx
// requests get a 404 rather than a bare fragment.
func RequireHTMX() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsHTMX(r.Context()) {
				http.NotFound(w, r)
				return
			}
			w.Header().Add("Vary", "HX-Request")
			next.ServeHTTP(w, r)
		})
	}
}
