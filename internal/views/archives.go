// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"strings"
	"time"

	"pressroom/internal/cache"
	"pressroom/internal/models"
	"pressroom/internal/wordpress"
)

// ArchivesQuery narrows an archives page. Year and Month are numeric;
// Month without Year is ignored. Categories is a comma separated list of
// category slugs; unknown slugs are skipped.
type ArchivesQuery struct {
	Page       int
	Group      string
	Month      int
	Year       int
	Categories string
}

// ArchivesContext is the context for the archives page.
type ArchivesContext struct {
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	TotalPosts  int              `json:"total_posts"`
	Articles    []models.Article `json:"articles"`
	Group       models.Term      `json:"group"`
	Title       string           `json:"title"`
}

// GetArchives builds the archives page. The boolean is false when a group
// filter was given and the group does not exist.
func (v *Views) GetArchives(ctx context.Context, q ArchivesQuery) (ArchivesContext, bool, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	tc := cache.NewTermCache()

	var group models.Term
	var groupPtr *models.Term
	var groups []int
	if q.Group != "" {
		g, ok, err := v.groupBySlug(ctx, tc, q.Group)
		if err != nil || !ok {
			return ArchivesContext{}, false, err
		}
		group = g
		groupPtr = &group
		groups = append(groups, g.ID)
	}

	categories, err := v.categorySlugsToIDs(ctx, tc, q.Categories)
	if err != nil {
		return ArchivesContext{}, false, err
	}

	after, before := archiveRange(q.Year, q.Month, v.cfg.YearEnd)

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Groups:      groups,
		Categories:  categories,
		After:       after,
		Before:      before,
		PerPage:     v.cfg.PerPage,
		Page:        q.Page,
	}, groupPtr)
	if err != nil {
		return ArchivesContext{}, false, err
	}

	return ArchivesContext{
		CurrentPage: q.Page,
		TotalPages:  meta.TotalPages,
		TotalPosts:  meta.TotalPosts,
		Articles:    articles,
		Group:       group,
		Title:       v.cfg.BlogTitle,
	}, true, nil
}

// archiveRange turns a year and optional month into an after/before pair.
// Zero values mean no date filtering.
func archiveRange(year, month int, boundary YearEndBoundary) (after, before time.Time) {
	if year == 0 {
		return time.Time{}, time.Time{}
	}
	if month >= 1 && month <= 12 {
		after = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		before = after.AddDate(0, 1, 0)
		return after, before
	}
	after = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	before = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if boundary == YearEndOfDay {
		before = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	}
	return after, before
}

func (v *Views) categorySlugsToIDs(ctx context.Context, tc *cache.TermCache, csv string) ([]int, error) {
	var ids []int
	for _, slug := range strings.Split(csv, ",") {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		category, ok, err := v.categoryBySlug(ctx, tc, slug)
		if err != nil {
			return nil, err
		}
		if ok {
			ids = append(ids, category.ID)
		}
	}
	return ids, nil
}
