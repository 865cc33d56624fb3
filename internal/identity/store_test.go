// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
)

func TestMemoryStoreFindOrCreate(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()

	item := &models.CanonicalItem{ID: uuid.New(), Fingerprint: "fp-1", Title: "Abbey Road"}
	stored, created, err := s.FindOrCreate(ctx, item)
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if !created {
		t.Error("created = false on first insert")
	}
	if stored.Ordinal != 1 {
		t.Errorf("Ordinal = %d, want 1", stored.Ordinal)
	}

	dup := &models.CanonicalItem{ID: uuid.New(), Fingerprint: "fp-1", Title: "Abbey Road"}
	existing, created, err := s.FindOrCreate(ctx, dup)
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if created {
		t.Error("created = true on duplicate fingerprint")
	}
	if existing.ID != item.ID {
		t.Errorf("duplicate insert returned item %s, want %s", existing.ID, item.ID)
	}
}

func TestMemoryStoreFindByFingerprint(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()

	if _, err := s.FindByFingerprint(ctx, "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("FindByFingerprint(missing) error = %v, want ErrItemNotFound", err)
	}

	item := &models.CanonicalItem{ID: uuid.New(), Fingerprint: "fp-2"}
	if _, _, err := s.FindOrCreate(ctx, item); err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	found, err := s.FindByFingerprint(ctx, "fp-2")
	if err != nil {
		t.Fatalf("FindByFingerprint() error = %v", err)
	}
	if found.ID != item.ID {
		t.Errorf("found item %s, want %s", found.ID, item.ID)
	}
}

func TestMemoryStoreItemsCreationOrder(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()

	for _, fp := range []string{"fp-c", "fp-a", "fp-b"} {
		item := &models.CanonicalItem{ID: uuid.New(), Fingerprint: fp}
		if _, _, err := s.FindOrCreate(ctx, item); err != nil {
			t.Fatalf("FindOrCreate(%s) error = %v", fp, err)
		}
	}

	items, err := s.Items(ctx)
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	want := []string{"fp-c", "fp-a", "fp-b"}
	for i, item := range items {
		if item.Fingerprint != want[i] {
			t.Errorf("items[%d].Fingerprint = %s, want %s (creation order)", i, item.Fingerprint, want[i])
		}
	}
}

func TestMemoryStoreConcurrentFindOrCreate(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := &models.CanonicalItem{ID: uuid.New(), Fingerprint: "fp-race"}
			stored, _, err := s.FindOrCreate(ctx, item)
			if err != nil {
				t.Errorf("FindOrCreate() error = %v", err)
				return
			}
			ids[i] = stored.ID
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("concurrent find-or-create produced divergent items: %s != %s", ids[i], ids[0])
		}
	}

	items, err := s.Items(ctx)
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("item count = %d, want 1", len(items))
	}
}

func TestMemoryStoreRecordMatchRunningAverage(t *testing.T) {
	s := NewMemoryItemStore()
	ctx := context.Background()

	item := &models.CanonicalItem{ID: uuid.New(), Fingerprint: "fp-avg"}
	stored, _, err := s.FindOrCreate(ctx, item)
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}

	scores := []float64{100, 80, 90}
	var updated *models.CanonicalItem
	for _, score := range scores {
		updated, err = s.RecordMatch(ctx, stored.ID, score)
		if err != nil {
			t.Fatalf("RecordMatch() error = %v", err)
		}
	}
	if updated.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", updated.MatchCount)
	}
	if updated.AvgConfidence != 90 {
		t.Errorf("AvgConfidence = %v, want 90", updated.AvgConfidence)
	}

	if _, err := s.RecordMatch(ctx, uuid.New(), 50); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("RecordMatch(unknown) error = %v, want ErrItemNotFound", err)
	}
}

func TestFoldConfidence(t *testing.T) {
	tests := []struct {
		avg   float64
		count int
		score float64
		want  float64
	}{
		{0, 0, 90, 90},
		{90, 1, 70, 80},
		{80, 2, 50, 70},
	}
	for _, tt := range tests {
		if got := foldConfidence(tt.avg, tt.count, tt.score); got != tt.want {
			t.Errorf("foldConfidence(%v, %d, %v) = %v, want %v", tt.avg, tt.count, tt.score, got, tt.want)
		}
	}
}
