// Package jsonstore persists like counters in a single local JSON file.
//
// This is the device-local counter backend: human-readable, synchronous
// writes after every mutation, no cross-device consistency. A handful of
// writes per user action keeps file I/O well below any performance concern
// at menu-page scale.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cartasycatalogos/cartamuestraBR/internal/repositories"
)

type fileFormat struct {
	Likes map[string]int64 `json:"likes"`
}

// Store implements repositories.LikeRepository on a local JSON file.
type Store struct {
	path string

	mu    sync.Mutex
	likes map[string]int64
}

// Open loads (or initialises) the store at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("jsonstore: path is required")
	}

	s := &Store{path: path, likes: map[string]int64{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("jsonstore: read %s: %w", path, err)
	}
	var data fileFormat
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("jsonstore: unmarshal %s: %w", path, err)
	}
	if data.Likes != nil {
		s.likes = data.Likes
	}
	return s, nil
}

// Count implements repositories.LikeRepository.
func (s *Store) Count(_ context.Context, itemID string) (int64, error) {
	if strings.TrimSpace(itemID) == "" {
		return 0, repositories.NewLikeError(repositories.LikeErrorInvalidInput, "item id is required", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes[itemID], nil
}

// Increment implements repositories.LikeRepository. The mutex makes the
// read-modify-write a critical section per store, so counts survive being
// called from concurrent request handlers.
func (s *Store) Increment(_ context.Context, itemID string) (int64, error) {
	if strings.TrimSpace(itemID) == "" {
		return 0, repositories.NewLikeError(repositories.LikeErrorInvalidInput, "item id is required", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.likes[itemID]++
	if err := s.persistLocked(); err != nil {
		// roll back so the in-memory view matches what is on disk
		s.likes[itemID]--
		return 0, repositories.NewLikeError(repositories.LikeErrorUnavailable, err.Error(), err)
	}
	return s.likes[itemID], nil
}

func (s *Store) persistLocked() error {
	b, err := json.MarshalIndent(fileFormat{Likes: s.likes}, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("jsonstore: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("jsonstore: write %s: %w", s.path, err)
	}
	return nil
}
