package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cartasycatalogos/cartamuestraBR/internal/i18n"
	"github.com/cartasycatalogos/cartamuestraBR/internal/middleware"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/httpx"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/observability"
	"github.com/cartasycatalogos/cartamuestraBR/internal/services"
	"github.com/cartasycatalogos/cartamuestraBR/internal/view"
	"github.com/cartasycatalogos/cartamuestraBR/public"
)

const (
	defaultTimeout    = 30 * time.Second
	errorNotFoundCode = "route_not_found"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Logger       *zap.Logger
	Bundle       *i18n.Bundle
	Menu         *services.MenuService
	Interactions *services.InteractionService
	View         *view.Builder
	Readiness    map[string]ReadinessCheck
}

// NewRouter constructs the chi router with the shared middleware stack and
// every route of the page.
func NewRouter(deps RouterDeps) (chi.Router, error) {
	if deps.Bundle == nil {
		return nil, errors.New("router: i18n bundle is required")
	}
	menuHandlers, err := NewMenuHandlers(deps.Menu, deps.Interactions, deps.View)
	if err != nil {
		return nil, err
	}
	prefsHandlers, err := NewPrefsHandlers(deps.Bundle)
	if err != nil {
		return nil, err
	}
	health := NewHealthHandlers(deps.Readiness)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(defaultTimeout))
	r.Use(observability.InjectLoggerMiddleware(deps.Logger))
	r.Use(observability.TraceMiddleware())
	r.Use(observability.RequestLoggerMiddleware())
	r.Use(observability.RecoveryMiddleware(deps.Logger))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError(errorNotFoundCode, fmt.Sprintf("no route for %s", req.URL.Path), http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(req.Context(), w, httpx.NewError("method_not_allowed", fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path), http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	r.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	r.Group(func(page chi.Router) {
		page.Use(middleware.Preferences(deps.Bundle))
		page.Use(middleware.HTMX())

		page.Get("/", menuHandlers.Page)
		page.Post("/prefs/language", prefsHandlers.ToggleLanguage)
		page.Post("/prefs/theme", prefsHandlers.ToggleTheme)

		page.Group(func(fragment chi.Router) {
			fragment.Use(middleware.RequireHTMX())
			fragment.Post("/menu/items/{itemID}/like", menuHandlers.Like)
		})
	})

	return r, nil
}
