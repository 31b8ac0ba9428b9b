package services

import (
	"context"
	"errors"
	"sort"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/identity"
	"github.com/cartasycatalogos/cartamuestraBR/internal/menu"
)

// DefaultPopularSize caps the derived popular section.
const DefaultPopularSize = 6

// MenuServiceDeps bundles collaborators required to construct a menu service.
type MenuServiceDeps struct {
	Loader menu.Loader
}

// MenuService loads language documents and derives render-time projections.
type MenuService struct {
	loader menu.Loader
}

// NewMenuService constructs a MenuService.
func NewMenuService(deps MenuServiceDeps) (*MenuService, error) {
	if deps.Loader == nil {
		return nil, errors.New("menu service: loader is required")
	}
	return &MenuService{loader: deps.Loader}, nil
}

// Document loads the normalised menu document for lang. Failures surface as
// menu.ErrDataUnavailable; there is no retry and no partial document.
func (s *MenuService) Document(ctx context.Context, lang string) (domain.Document, error) {
	return s.loader.Load(ctx, lang)
}

// PopularItems derives the top-n liked items: zero-count items never appear,
// order is count descending, ties keep document discovery order. Recomputed
// on every render, never stored.
func PopularItems(doc domain.Document, counts map[string]int64, n int) []domain.PopularItem {
	if n <= 0 {
		n = DefaultPopularSize
	}

	ranked := make([]domain.PopularItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		count := counts[identity.Resolve(item.Title)]
		if count <= 0 {
			continue
		}
		ranked = append(ranked, domain.PopularItem{Item: item, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
