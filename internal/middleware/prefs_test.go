package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
)

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	bundle, err := i18n.Load("es", []string{"es", "en"})
	require.NoError(t, err)
	return bundle
}

func resolvePrefs(t *testing.T, bundle *i18n.Bundle, build func(*http.Request)) (domain.Preferences, *httptest.ResponseRecorder) {
	t.Helper()

	var got domain.Preferences
	handler := Preferences(bundle)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = PreferencesFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if build != nil {
		build(req)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestPreferencesDefaultsToFallback(t *testing.T) {
	t.Parallel()

	prefs, rec := resolvePrefs(t, testBundle(t), nil)
	assert.Equal(t, "es", prefs.Language)
	assert.False(t, prefs.Dark)
	assert.Equal(t, "es", rec.Header().Get("Content-Language"))
}

func TestPreferencesQueryOverridesCookie(t *testing.T) {
	t.Parallel()

	prefs, rec := resolvePrefs(t, testBundle(t), func(r *http.Request) {
		r.URL.RawQuery = "hl=en"
		r.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "es"})
	})
	assert.Equal(t, "en", prefs.Language)

	cookie := findCookie(rec, LanguageCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "en", cookie.Value)
}

func TestPreferencesCookieBeatsAcceptLanguage(t *testing.T) {
	t.Parallel()

	prefs, _ := resolvePrefs(t, testBundle(t), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "en"})
		r.Header.Set("Accept-Language", "es-AR,es;q=0.9")
	})
	assert.Equal(t, "en", prefs.Language)
}

func TestPreferencesAcceptLanguageResolution(t *testing.T) {
	t.Parallel()

	prefs, _ := resolvePrefs(t, testBundle(t), func(r *http.Request) {
		r.Header.Set("Accept-Language", "fr-FR,en-GB;q=0.8,es;q=0.5")
	})
	assert.Equal(t, "en", prefs.Language)
}

func TestPreferencesIgnoresUnsupportedOverride(t *testing.T) {
	t.Parallel()

	prefs, _ := resolvePrefs(t, testBundle(t), func(r *http.Request) {
		r.URL.RawQuery = "hl=pt"
		r.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "en"})
	})
	assert.Equal(t, "en", prefs.Language)
}

func TestPreferencesThemeCookie(t *testing.T) {
	t.Parallel()

	prefs, _ := resolvePrefs(t, testBundle(t), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: ThemeCookie, Value: "dark"})
	})
	assert.True(t, prefs.Dark)

	prefs, _ = resolvePrefs(t, testBundle(t), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: ThemeCookie, Value: "light"})
	})
	assert.False(t, prefs.Dark)
}

func TestRequireHTMXHidesFragmentRoutes(t *testing.T) {
	t.Parallel()

	handler := HTMX()(RequireHTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fragment", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/fragment", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
