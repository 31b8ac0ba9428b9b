package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
	"github.com/cartasycatalogos/cartamuestraBR/internal/middleware"
)

// PrefsHandlers flips the persisted language and theme preferences. Both
// toggles answer with a redirect so the next request re-renders from the new
// cookie state; there is no in-place patching.
type PrefsHandlers struct {
	bundle *i18n.Bundle
}

// NewPrefsHandlers constructs the preference handler set.
func NewPrefsHandlers(bundle *i18n.Bundle) (*PrefsHandlers, error) {
	if bundle == nil {
		return nil, errors.New("prefs handlers: bundle is required")
	}
	return &PrefsHandlers{bundle: bundle}, nil
}

// ToggleLanguage switches to the other supported language and reloads the page.
func (h *PrefsHandlers) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	prefs := middleware.PreferencesFromContext(r.Context())
	next := h.nextLanguage(prefs.Language)
	middleware.SetPreferenceCookie(w, middleware.LanguageCookie, next)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ToggleTheme flips the dark-mode cookie and returns to the referring page.
func (h *PrefsHandlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	prefs := middleware.PreferencesFromContext(r.Context())
	middleware.SetPreferenceCookie(w, middleware.ThemeCookie, middleware.ThemeValue(!prefs.Dark))
	http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
}

// nextLanguage cycles through the supported languages in order. With the
// usual two-language deployment this is a plain toggle.
func (h *PrefsHandlers) nextLanguage(current string) string {
	supported := h.bundle.Supported()
	if len(supported) == 0 {
		return h.bundle.Fallback()
	}
	for i, lang := range supported {
		if lang == current {
			return supported[(i+1)%len(supported)]
		}
	}
	return supported[0]
}

// redirectTarget keeps redirects on-site; external referers fall back to "/".
func redirectTarget(r *http.Request) string {
	ref := strings.TrimSpace(r.Referer())
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	return "/"
}
