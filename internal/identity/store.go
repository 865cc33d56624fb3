// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
)

// ErrItemNotFound is returned by fingerprint and id lookups that miss.
var ErrItemNotFound = errors.New("canonical item not found")

// ItemStore is the canonical-item registry. It is the only state shared
// across search runs, so implementations must serialize find-or-create
// and the running-average update per fingerprint: two concurrent analyses
// can race on the same fingerprint, and the registry — not the caller —
// owns that hazard.
type ItemStore interface {
	// FindByFingerprint returns the item with the given fingerprint, or
	// ErrItemNotFound.
	FindByFingerprint(ctx context.Context, fingerprint string) (*models.CanonicalItem, error)

	// Items returns all items in creation order.
	Items(ctx context.Context) ([]*models.CanonicalItem, error)

	// FindOrCreate stores the item unless another item with the same
	// fingerprint already exists, in which case the existing item is
	// returned. The boolean reports whether a new item was created.
	FindOrCreate(ctx context.Context, item *models.CanonicalItem) (*models.CanonicalItem, bool, error)

	// RecordMatch folds a match score into the item's running average and
	// increments its match count, atomically per item.
	RecordMatch(ctx context.Context, itemID uuid.UUID, score float64) (*models.CanonicalItem, error)

	// SaveMatchResult persists one listing-to-item match edge.
	SaveMatchResult(ctx context.Context, result *models.MatchResult) error

	// MatchResults returns all stored match edges in insertion order.
	MatchResults(ctx context.Context) ([]*models.MatchResult, error)
}

// MemoryItemStore is an in-memory ItemStore for single-process runs and
// tests. Safe for concurrent use.
type MemoryItemStore struct {
	mu            sync.RWMutex
	byFingerprint map[string]*models.CanonicalItem
	byID          map[uuid.UUID]*models.CanonicalItem
	ordinal       uint64
	matches       []*models.MatchResult
}

// NewMemoryItemStore creates an empty in-memory registry.
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{
		byFingerprint: make(map[string]*models.CanonicalItem),
		byID:          make(map[uuid.UUID]*models.CanonicalItem),
	}
}

// FindByFingerprint implements ItemStore.
func (s *MemoryItemStore) FindByFingerprint(_ context.Context, fingerprint string) (*models.CanonicalItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.byFingerprint[fingerprint]
	if !ok {
		return nil, ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

// Items implements ItemStore.
func (s *MemoryItemStore) Items(_ context.Context) ([]*models.CanonicalItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*models.CanonicalItem, 0, len(s.byFingerprint))
	for _, item := range s.byFingerprint {
		cp := *item
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Ordinal < items[j].Ordinal })
	return items, nil
}

// FindOrCreate implements ItemStore.
func (s *MemoryItemStore) FindOrCreate(_ context.Context, item *models.CanonicalItem) (*models.CanonicalItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byFingerprint[item.Fingerprint]; ok {
		cp := *existing
		return &cp, false, nil
	}

	stored := *item
	s.ordinal++
	stored.Ordinal = s.ordinal
	if stored.FirstSeenAt.IsZero() {
		stored.FirstSeenAt = time.Now()
	}
	stored.UpdatedAt = stored.FirstSeenAt

	s.byFingerprint[stored.Fingerprint] = &stored
	s.byID[stored.ID] = &stored

	cp := stored
	return &cp, true, nil
}

// RecordMatch implements ItemStore.
func (s *MemoryItemStore) RecordMatch(_ context.Context, itemID uuid.UUID, score float64) (*models.CanonicalItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.byID[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}

	item.AvgConfidence = foldConfidence(item.AvgConfidence, item.MatchCount, score)
	item.MatchCount++
	item.UpdatedAt = time.Now()

	cp := *item
	return &cp, nil
}

// SaveMatchResult implements ItemStore.
func (s *MemoryItemStore) SaveMatchResult(_ context.Context, result *models.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *result
	s.matches = append(s.matches, &cp)
	return nil
}

// MatchResults implements ItemStore.
func (s *MemoryItemStore) MatchResults(_ context.Context) ([]*models.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.MatchResult, 0, len(s.matches))
	for _, m := range s.matches {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// foldConfidence updates a running average: (avg*count + score)/(count+1).
func foldConfidence(avg float64, count int, score float64) float64 {
	return (avg*float64(count) + score) / float64(count+1)
}
