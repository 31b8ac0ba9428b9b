package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cartasycatalogos/cartamuestraBR/internal/domain"
	"github.com/cartasycatalogos/cartamuestraBR/internal/identity"
	"github.com/cartasycatalogos/cartamuestraBR/internal/platform/observability"
	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories"
)

// ErrLikeInvalidInput indicates the caller supplied an unusable item id.
var ErrLikeInvalidInput = errors.New("interaction: invalid input")

// InteractionServiceDeps bundles collaborators required to construct an
// interaction service instance.
type InteractionServiceDeps struct {
	Repository repositories.LikeRepository
	Meter      *observability.LikeMeter
}

// InteractionService owns the mutable, persisted interaction state: like
// counters behind the configured repository. Preferences (language, theme)
// are device-scoped cookies handled at the middleware layer.
type InteractionService struct {
	repo  repositories.LikeRepository
	meter *observability.LikeMeter
}

// NewInteractionService constructs an InteractionService.
func NewInteractionService(deps InteractionServiceDeps) (*InteractionService, error) {
	if deps.Repository == nil {
		return nil, errors.New("interaction service: repository is required")
	}
	return &InteractionService{repo: deps.Repository, meter: deps.Meter}, nil
}

// GetCount returns the persisted counter for a derived item id, 0 when unseen.
func (s *InteractionService) GetCount(ctx context.Context, itemID string) (int64, error) {
	if itemID == "" {
		return 0, fmt.Errorf("%w: item id is required", ErrLikeInvalidInput)
	}
	return s.repo.Count(ctx, itemID)
}

// Like increments the counter and returns the new value.
func (s *InteractionService) Like(ctx context.Context, itemID string) (int64, error) {
	if itemID == "" {
		return 0, fmt.Errorf("%w: item id is required", ErrLikeInvalidInput)
	}
	count, err := s.repo.Increment(ctx, itemID)
	if err != nil {
		return 0, err
	}
	s.meter.Record(ctx, itemID)
	return count, nil
}

// CountsFor reads the counters for every item in the document, keyed by
// derived id. A failed read degrades that item to 0 rather than failing the
// render; the warning is the only trace the user ever sees of it.
func (s *InteractionService) CountsFor(ctx context.Context, doc domain.Document) map[string]int64 {
	counts := make(map[string]int64, len(doc.Items))
	for _, item := range doc.Items {
		id := identity.Resolve(item.Title)
		if id == "" {
			continue
		}
		if _, done := counts[id]; done {
			continue
		}
		count, err := s.repo.Count(ctx, id)
		if err != nil {
			observability.FromContext(ctx).Warn("like count read failed",
				zap.String("item_id", id),
				zap.Error(err),
			)
			count = 0
		}
		counts[id] = count
	}
	return counts
}
