// Package handlers wires the HTTP surface of the menu page: the full page
// render, the like fragment, the preference toggles and operational probes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cartasycatalogos/cartamuestraBR/internal/middleware"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/observability"
	"github.com/cartasycatalogos/cartamuestraBR/internal/services"
	"github.com/cartasycatalogos/cartamuestraBR/internal/view"
)

// MenuHandlers serves the page and the per-card like fragment.
type MenuHandlers struct {
	menu         *services.MenuService
	interactions *services.InteractionService
	builder      *view.Builder
}

// NewMenuHandlers constructs the page handler set.
func NewMenuHandlers(menu *services.MenuService, interactions *services.InteractionService, builder *view.Builder) (*MenuHandlers, error) {
	if menu == nil || interactions == nil || builder == nil {
		return nil, errors.New("menu handlers: all collaborators are required")
	}
	return &MenuHandlers{menu: menu, interactions: interactions, builder: builder}, nil
}

// Page renders the full menu document for the resolved preferences. A load
// failure renders the localised unavailable page with working controls.
func (h *MenuHandlers) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	prefs := middleware.PreferencesFromContext(ctx)

	doc, err := h.menu.Document(ctx, prefs.Language)
	if err != nil {
		observability.FromContext(ctx).Warn("menu document unavailable",
			zap.String("lang", prefs.Language),
			zap.Error(err),
		)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = view.PageComponent(h.builder.Unavailable(prefs)).Render(ctx, w)
		return
	}

	counts := h.interactions.CountsFor(ctx, doc)
	page := h.builder.Page(doc, counts, prefs)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = view.PageComponent(page).Render(ctx, w)
}

// Like increments one counter and returns the refreshed control fragment.
// When the backend is unreachable the current (unadvanced) count is returned
// with a 200: the page keeps working, the miss is logged.
func (h *MenuHandlers) Like(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	prefs := middleware.PreferencesFromContext(ctx)
	itemID := chi.URLParam(r, "itemID")

	count, err := h.interactions.Like(ctx, itemID)
	if err != nil {
		if errors.Is(err, services.ErrLikeInvalidInput) {
			http.NotFound(w, r)
			return
		}
		observability.FromContext(ctx).Warn("like increment failed",
			zap.String("item_id", itemID),
			zap.Error(err),
		)
		count, err = h.interactions.GetCount(ctx, itemID)
		if err != nil {
			count = 0
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = view.LikeControlComponent(h.builder.LikeControl(itemID, count, prefs.Language)).Render(ctx, w)
}
