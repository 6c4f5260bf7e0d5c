// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import "pressroom/internal/models"

// TermCache memoizes taxonomy lookups within a single page render, so one
// render never fetches the same category or group twice. It is created per
// render and discarded afterwards — it is deliberately not shared across
// requests, which keeps it trivially consistent with upstream edits and
// needs no locking.
type TermCache struct {
	byID   map[string]map[int]models.Term
	bySlug map[string]map[string]models.Term
}

// NewTermCache returns an empty per-render cache.
func NewTermCache() *TermCache {
	return &TermCache{
		byID:   make(map[string]map[int]models.Term),
		bySlug: make(map[string]map[string]models.Term),
	}
}

// GetID returns a cached term by taxonomy and ID.
func (tc *TermCache) GetID(taxonomy string, id int) (models.Term, bool) {
	t, ok := tc.byID[taxonomy][id]
	return t, ok
}

// PutID caches a term under its taxonomy and ID.
func (tc *TermCache) PutID(taxonomy string, id int, t models.Term) {
	if tc.byID[taxonomy] == nil {
		tc.byID[taxonomy] = make(map[int]models.Term)
	}
	tc.byID[taxonomy][id] = t
}

// GetSlug returns a cached term by taxonomy and slug.
func (tc *TermCache) GetSlug(taxonomy, slug string) (models.Term, bool) {
	t, ok := tc.bySlug[taxonomy][slug]
	return t, ok
}

// PutSlug caches a term under its taxonomy and slug. Absent lookups are
// cached too (as zero terms), so a missing slug is only asked for once per
// render.
func (tc *TermCache) PutSlug(taxonomy, slug string, t models.Term) {
	if tc.bySlug[taxonomy] == nil {
		tc.bySlug[taxonomy] = make(map[string]models.Term)
	}
	tc.bySlug[taxonomy][slug] = t
	if t.ID != 0 {
		tc.PutID(taxonomy, t.ID, t)
	}
}
