package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pfirestore "github.com/cartasycatalogos/cartamuestraBR/internal/platform/firestore"
	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories"
)

const defaultLikesCollection = "likes"

type likeDocument struct {
	Likes     int64     `firestore:"likes"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// LikeRepository implements repositories.LikeRepository backed by Firestore.
// One document per derived item id; increments run inside a transaction so a
// read-modify-write on one key can never lose an update.
type LikeRepository struct {
	provider   *pfirestore.Provider
	collection string
}

// NewLikeRepository constructs a Firestore-backed like repository.
func NewLikeRepository(provider *pfirestore.Provider, collection string) (*LikeRepository, error) {
	if provider == nil {
		return nil, errors.New("like repository requires firestore provider")
	}
	collection = strings.TrimSpace(collection)
	if collection == "" {
		collection = defaultLikesCollection
	}
	return &LikeRepository{provider: provider, collection: collection}, nil
}

// Count reads the current counter for itemID, materialising a zero record on
// first access so the document exists before any like lands.
func (r *LikeRepository) Count(ctx context.Context, itemID string) (int64, error) {
	ref, err := r.documentRef(ctx, itemID)
	if err != nil {
		return 0, err
	}

	snapshot, err := ref.Get(ctx)
	switch status.Code(err) {
	case codes.OK:
		var doc likeDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return 0, fmt.Errorf("firestore likes decode %s: %w", itemID, err)
		}
		return doc.Likes, nil
	case codes.NotFound:
		zero := likeDocument{Likes: 0, UpdatedAt: time.Now().UTC()}
		if _, err := ref.Create(ctx, zero); err != nil && status.Code(err) != codes.AlreadyExists {
			return 0, wrapLikeError("likes.count", err)
		}
		return 0, nil
	default:
		return 0, wrapLikeError("likes.count", err)
	}
}

// Increment adds one to the counter inside a transaction and returns the new
// value.
func (r *LikeRepository) Increment(ctx context.Context, itemID string) (int64, error) {
	ref, err := r.documentRef(ctx, itemID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	var newValue int64

	err = r.provider.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snapshot, err := tx.Get(ref)
		switch status.Code(err) {
		case codes.NotFound:
			doc := likeDocument{Likes: 1, UpdatedAt: now}
			if err := tx.Create(ref, doc); err != nil {
				return err
			}
			newValue = doc.Likes
			return nil
		case codes.OK:
			// proceed
		default:
			return err
		}

		var doc likeDocument
		if err := snapshot.DataTo(&doc); err != nil {
			return fmt.Errorf("firestore likes decode %s: %w", itemID, err)
		}
		doc.Likes++
		doc.UpdatedAt = now
		if err := tx.Set(ref, doc); err != nil {
			return err
		}
		newValue = doc.Likes
		return nil
	})
	if err != nil {
		return 0, wrapLikeError("likes.increment", err)
	}
	return newValue, nil
}

func (r *LikeRepository) documentRef(ctx context.Context, itemID string) (*firestore.DocumentRef, error) {
	if r == nil || r.provider == nil {
		return nil, errors.New("like repository not initialised")
	}
	id := strings.TrimSpace(itemID)
	if id == "" {
		return nil, repositories.NewLikeError(repositories.LikeErrorInvalidInput, "item id is required", nil)
	}
	client, err := r.provider.Client(ctx)
	if err != nil {
		return nil, wrapLikeError("likes.client", err)
	}
	return client.Collection(r.collection).Doc(id), nil
}

func wrapLikeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var likeErr *repositories.LikeError
	if errors.As(err, &likeErr) {
		return likeErr
	}
	wrapped := pfirestore.WrapError(op, err)
	var fsErr *pfirestore.Error
	if errors.As(wrapped, &fsErr) && fsErr.IsUnavailable() {
		return repositories.NewLikeError(repositories.LikeErrorUnavailable, fsErr.Error(), fsErr)
	}
	return repositories.NewLikeError(repositories.LikeErrorUnknown, wrapped.Error(), wrapped)
}
