// Cratedigger - Cross-Platform Marketplace Deal Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cratedigger

package seller

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cratedigger/internal/models"
)

// registryKey is the seller's natural key.
type registryKey struct {
	platform string
	sellerID string
}

// Registry deduplicates sellers across listings and searches. Upserts are
// serialized under one mutex: the registry is a find-or-create-by-natural-
// key structure shared by concurrent analyses, and the refresh of mutable
// fields is a read-modify-write that must not interleave.
type Registry struct {
	mu      sync.RWMutex
	sellers map[registryKey]*models.Seller
	order   []*models.Seller // first-seen order
}

// NewRegistry creates an empty seller registry.
func NewRegistry() *Registry {
	return &Registry{
		sellers: make(map[registryKey]*models.Seller),
	}
}

// Upsert records one observation of a seller. New sellers are created;
// known sellers have their mutable fields refreshed with the latest
// observation and their region recomputed from the latest location.
// Identity fields (platform, platform seller id) are never touched.
func (r *Registry) Upsert(platform string, attrs models.SellerAttrs) *models.Seller {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{platform: platform, sellerID: attrs.PlatformSellerID}
	now := time.Now()

	s, ok := r.sellers[key]
	if !ok {
		s = &models.Seller{
			ID:               uuid.New(),
			Platform:         platform,
			PlatformSellerID: attrs.PlatformSellerID,
			FirstSeenAt:      now,
		}
		r.sellers[key] = s
		r.order = append(r.order, s)
	}

	s.Name = attrs.Name
	s.Location = attrs.Location
	s.Region = NormalizeRegion(attrs.Location)
	s.FeedbackScore = attrs.FeedbackScore
	s.FeedbackCount = attrs.FeedbackCount
	s.PositiveFeedbackPct = attrs.PositiveFeedbackPct
	s.ShipsInternational = attrs.ShipsInternational
	s.ShippingEstimate = attrs.ShippingEstimate
	s.Metadata = attrs.Metadata
	s.LastSeenAt = now

	cp := *s
	return &cp
}

// Get returns the seller for a natural key, or nil when unseen.
func (r *Registry) Get(platform, sellerID string) *models.Seller {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sellers[registryKey{platform: platform, sellerID: sellerID}]
	if !ok {
		return nil
	}
	cp := *s
	return &cp
}

// All returns every registered seller in first-seen order.
func (r *Registry) All() []*models.Seller {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Seller, 0, len(r.order))
	for _, s := range r.order {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

// Len returns the number of distinct sellers seen.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sellers)
}
