// Package repositories declares the persistence contracts for interaction state.
package repositories

import "context"

// LikeRepository stores per-item like counters keyed by derived item id.
//
// The two implementations (Firestore, local JSON file) are alternate
// deployment strategies behind the same contract; they are never layered and
// never reconciled with each other.
type LikeRepository interface {
	// Count returns the current counter for the item, 0 when unseen.
	Count(ctx context.Context, itemID string) (int64, error)

	// Increment adds one to the counter as a single read-modify-write per
	// key and returns the new value.
	Increment(ctx context.Context, itemID string) (int64, error)
}
