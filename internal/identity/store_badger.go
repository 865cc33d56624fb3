// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package identity

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	itemKeyPrefix   = "item:fp:"
	itemIDKeyPrefix = "item:id:"
	matchKeyPrefix  = "match:"

	itemSequenceKey = "item_seq"
)

// maxTxnRetries bounds retry loops on write-write conflicts. Badger's
// SSI transactions abort one side of a conflicting pair, which is exactly
// the retry-on-conflict upsert strategy the registry needs for concurrent
// find-or-create on the same fingerprint.
const maxTxnRetries = 8

// BadgerItemStore is a durable ItemStore backed by BadgerDB. Suitable for
// deployments where the canonical-item registry must survive restarts and
// be shared by concurrently running search analyses.
type BadgerItemStore struct {
	db  *badger.DB
	seq *badger.Sequence
}

// NewBadgerItemStore creates a registry on an open Badger database.
// Callers own the database lifecycle; Close releases only the store's
// sequence allocator.
func NewBadgerItemStore(db *badger.DB) (*BadgerItemStore, error) {
	seq, err := db.GetSequence([]byte(itemSequenceKey), 64)
	if err != nil {
		return nil, fmt.Errorf("acquire item sequence: %w", err)
	}
	return &BadgerItemStore{db: db, seq: seq}, nil
}

// Close releases the ordinal sequence allocator.
func (s *BadgerItemStore) Close() error {
	return s.seq.Release()
}

// FindByFingerprint implements ItemStore.
func (s *BadgerItemStore) FindByFingerprint(_ context.Context, fingerprint string) (*models.CanonicalItem, error) {
	var item models.CanonicalItem

	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(itemKeyPrefix + fingerprint))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		return entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &item)
		})
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Items implements ItemStore. Results are sorted by creation ordinal so
// fuzzy candidate scans remain deterministic.
func (s *BadgerItemStore) Items(_ context.Context) ([]*models.CanonicalItem, error) {
	var items []*models.CanonicalItem

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(itemKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var item models.CanonicalItem
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			})
			if err != nil {
				return fmt.Errorf("decode item: %w", err)
			}
			items = append(items, &item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Ordinal < items[j].Ordinal })
	return items, nil
}

// FindOrCreate implements ItemStore. The read-check-write runs inside one
// transaction; a concurrent create of the same fingerprint aborts with
// ErrConflict and is retried, at which point the existing item wins.
func (s *BadgerItemStore) FindOrCreate(ctx context.Context, item *models.CanonicalItem) (*models.CanonicalItem, bool, error) {
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		var (
			existing *models.CanonicalItem
			created  models.CanonicalItem
		)
		err := s.db.Update(func(txn *badger.Txn) error {
			key := []byte(itemKeyPrefix + item.Fingerprint)
			entry, err := txn.Get(key)
			if err == nil {
				var found models.CanonicalItem
				if err := entry.Value(func(val []byte) error {
					return json.Unmarshal(val, &found)
				}); err != nil {
					return fmt.Errorf("decode existing item: %w", err)
				}
				existing = &found
				return nil
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("get item: %w", err)
			}

			ordinal, err := s.seq.Next()
			if err != nil {
				return fmt.Errorf("next ordinal: %w", err)
			}

			created = *item
			created.Ordinal = ordinal + 1 // sequences start at 0
			if created.FirstSeenAt.IsZero() {
				created.FirstSeenAt = time.Now()
			}
			created.UpdatedAt = created.FirstSeenAt

			data, err := json.Marshal(&created)
			if err != nil {
				return fmt.Errorf("marshal item: %w", err)
			}
			if err := txn.Set(key, data); err != nil {
				return fmt.Errorf("set item: %w", err)
			}
			idKey := []byte(itemIDKeyPrefix + created.ID.String())
			if err := txn.Set(idKey, []byte(created.Fingerprint)); err != nil {
				return fmt.Errorf("set id index: %w", err)
			}
			return nil
		})

		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
		return &created, true, nil
	}
	return nil, false, fmt.Errorf("find-or-create %s: retries exhausted", item.Fingerprint)
}

// RecordMatch implements ItemStore. The running-average read-modify-write
// is transactional; conflicting concurrent updates retry.
func (s *BadgerItemStore) RecordMatch(ctx context.Context, itemID uuid.UUID, score float64) (*models.CanonicalItem, error) {
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var updated models.CanonicalItem
		err := s.db.Update(func(txn *badger.Txn) error {
			idEntry, err := txn.Get([]byte(itemIDKeyPrefix + itemID.String()))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrItemNotFound
			}
			if err != nil {
				return fmt.Errorf("get id index: %w", err)
			}

			var fingerprint string
			if err := idEntry.Value(func(val []byte) error {
				fingerprint = string(val)
				return nil
			}); err != nil {
				return fmt.Errorf("read id index: %w", err)
			}

			key := []byte(itemKeyPrefix + fingerprint)
			entry, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrItemNotFound
			}
			if err != nil {
				return fmt.Errorf("get item: %w", err)
			}
			if err := entry.Value(func(val []byte) error {
				return json.Unmarshal(val, &updated)
			}); err != nil {
				return fmt.Errorf("decode item: %w", err)
			}

			updated.AvgConfidence = foldConfidence(updated.AvgConfidence, updated.MatchCount, score)
			updated.MatchCount++
			updated.UpdatedAt = time.Now()

			data, err := json.Marshal(&updated)
			if err != nil {
				return fmt.Errorf("marshal item: %w", err)
			}
			return txn.Set(key, data)
		})

		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, fmt.Errorf("record match for %s: retries exhausted", itemID)
}

// SaveMatchResult implements ItemStore.
func (s *BadgerItemStore) SaveMatchResult(_ context.Context, result *models.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal match result: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(matchKeyPrefix+result.ID.String()), data)
	})
}

// MatchResults implements ItemStore. Ordered by creation time; Badger
// iterates key order, so results are re-sorted.
func (s *BadgerItemStore) MatchResults(_ context.Context) ([]*models.MatchResult, error) {
	var results []*models.MatchResult

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(matchKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var result models.MatchResult
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &result)
			})
			if err != nil {
				return fmt.Errorf("decode match result: %w", err)
			}
			results = append(results, &result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].CreatedAt.Before(results[j].CreatedAt) })
	return results, nil
}
