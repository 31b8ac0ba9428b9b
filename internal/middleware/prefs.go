// Package middleware carries the per-request concerns of the menu page:
// visitor preference resolution (language and theme cookies) and htmx
// request detection for the fragment routes.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
)

const (
	// LanguageCookie persists the visitor's language across fresh loads.
	LanguageCookie = "hl"
	// ThemeCookie persists the dark-mode choice.
	ThemeCookie = "theme"

	themeDark  = "dark"
	themeLight = "light"

	prefsCookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// Preferences resolves the visitor's language and theme and stores them in
// the request context. Language precedence: ?hl= query override, then the hl
// cookie, then Accept-Language, then the bundle fallback. Unsupported values
// fall through to the next source.
func Preferences(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLanguage(bundle, r)
			SetPreferenceCookie(w, LanguageCookie, lang)
			w.Header().Set("Content-Language", lang)
			w.Header().Add("Vary", "Accept-Language")

			prefs := domain.Preferences{Language: lang, Dark: resolveDark(r)}
			next.ServeHTTP(w, r.WithContext(WithPreferences(r.Context(), prefs)))
		})
	}
}

// SetPreferenceCookie writes one preference cookie the way every preference
// route does: path-wide, long-lived, lax.
func SetPreferenceCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   prefsCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// ThemeValue renders the cookie value for a dark flag.
func ThemeValue(dark bool) string {
	if dark {
		return themeDark
	}
	return themeLight
}

func resolveLanguage(bundle *i18n.Bundle, r *http.Request) string {
	if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(LanguageCookie))); q != "" && bundle.IsSupported(q) {
		return q
	}
	if c, err := r.Cookie(LanguageCookie); err == nil {
		if v := strings.ToLower(strings.TrimSpace(c.Value)); v != "" && bundle.IsSupported(v) {
			return v
		}
	}
	return bundle.Resolve(r.Header.Get("Accept-Language"))
}

func resolveDark(r *http.Request) bool {
	c, err := r.Cookie(ThemeCookie)
	return err == nil && strings.EqualFold(strings.TrimSpace(c.Value), themeDark)
}
