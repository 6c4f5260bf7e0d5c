// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"

	"pressroom/internal/models"
)

// synthesizeEmbedded rebuilds a compact _embedded bundle for every article
// in the batch, fetching related entities in bulk: one resolver call per
// entity type regardless of batch size. The wp:term array is ordered
// [category, post_tag, topic, group] to match native embedding, with the
// topic slot left empty since topics are never synthesized locally.
//
// groupFilter is the group filter the listing was fetched with. When it
// names exactly one group and an article resolved no group terms of its
// own, that group is force-attached so browsing-by-group pages stay
// coherent even when an article's own group list is inconsistent.
func (c *Client) synthesizeEmbedded(ctx context.Context, articles []models.Article, groupFilter []int) error {
	authorIDs := make(map[int]struct{})
	mediaIDs := make(map[int]struct{})
	categoryIDs := make(map[int]struct{})
	tagIDs := make(map[int]struct{})
	groupIDs := make(map[int]struct{})
	for _, gid := range groupFilter {
		groupIDs[gid] = struct{}{}
	}

	for i := range articles {
		a := &articles[i]
		if a.Author > 0 {
			authorIDs[a.Author] = struct{}{}
		}
		if a.FeaturedMedia > 0 {
			mediaIDs[a.FeaturedMedia] = struct{}{}
		}
		for _, id := range a.Categories {
			categoryIDs[id] = struct{}{}
		}
		for _, id := range a.Tags {
			tagIDs[id] = struct{}{}
		}
		for _, id := range a.GroupIDs {
			groupIDs[id] = struct{}{}
		}
	}

	userID := func(u models.User) int { return u.ID }
	mediaID := func(m models.Media) int { return m.ID }
	termID := func(t models.Term) int { return t.ID }

	usersMap, err := bulkFetchMap(ctx, c, "users", sortedKeys(authorIDs), userFields, userID)
	if err != nil {
		return err
	}
	mediaMap, err := bulkFetchMap(ctx, c, "media", sortedKeys(mediaIDs), mediaFields, mediaID)
	if err != nil {
		return err
	}
	categoriesMap, err := bulkFetchMap(ctx, c, "categories", sortedKeys(categoryIDs), categoryFields, termID)
	if err != nil {
		return err
	}
	tagsMap, err := bulkFetchMap(ctx, c, "tags", sortedKeys(tagIDs), tagFields, termID)
	if err != nil {
		return err
	}
	groupsMap, err := bulkFetchMap(ctx, c, "group", sortedKeys(groupIDs), groupFields, termID)
	if err != nil {
		return err
	}

	for i := range articles {
		a := &articles[i]

		catTerms := matchTerms(a.Categories, categoriesMap)
		tagTerms := matchTerms(a.Tags, tagsMap)
		groupTerms := matchTerms(a.GroupIDs, groupsMap)

		if len(groupTerms) == 0 && len(groupFilter) == 1 {
			if g, ok := groupsMap[groupFilter[0]]; ok {
				groupTerms = []models.Term{g}
			}
		}

		embedded := &models.Embedded{
			Terms: [][]models.Term{catTerms, tagTerms, {}, groupTerms},
		}
		if u, ok := usersMap[a.Author]; ok {
			embedded.Author = []models.User{u}
		}
		if m, ok := mediaMap[a.FeaturedMedia]; ok {
			embedded.FeaturedMedia = []models.Media{m}
		}
		a.Embedded = embedded
	}

	return nil
}

// matchTerms resolves a per-article ID list against a bulk-fetched map,
// preserving the article's own reference order and skipping unresolved IDs.
func matchTerms(ids []int, resolved map[int]models.Term) []models.Term {
	terms := make([]models.Term, 0, len(ids))
	for _, id := range ids {
		if t, ok := resolved[id]; ok {
			terms = append(terms, t)
		}
	}
	return terms
}
