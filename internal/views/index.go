// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"

	"pressroom/internal/cache"
	"pressroom/internal/models"
	"pressroom/internal/wordpress"
)

// IndexContext is the blog landing page context.
type IndexContext struct {
	CurrentPage       int              `json:"current_page"`
	TotalPages        int              `json:"total_pages"`
	Articles          []models.Article `json:"articles"`
	FeaturedArticles  []models.Article `json:"featured_articles"`
	EventsAndWebinars []models.Article `json:"events_and_webinars"`
	Title             string           `json:"title"`
	CategorySlug      string           `json:"category_slug,omitempty"`
}

// GetIndex builds the landing page. Page one additionally carries up to
// three sticky featured articles and, when the feature is enabled, up to
// three upcoming events and webinars; featured IDs are excluded from the
// main listing so no article appears twice.
func (v *Views) GetIndex(ctx context.Context, page int, categorySlug string) (IndexContext, error) {
	if page < 1 {
		page = 1
	}
	tc := cache.NewTermCache()

	var categories []int
	if categorySlug != "" {
		category, ok, err := v.categoryBySlug(ctx, tc, categorySlug)
		if err != nil {
			return IndexContext{}, err
		}
		if ok {
			categories = append(categories, category.ID)
		}
	}

	var featured, events []models.Article
	if page == 1 {
		var err error
		featured, _, err = v.fetchArticles(ctx, wordpress.ArticleQuery{
			Tags:        v.cfg.TagIDs,
			TagsExclude: v.cfg.ExcludedTags,
			Sticky:      wordpress.Bool(true),
			PerPage:     3,
			Page:        1,
		}, nil)
		if err != nil {
			return IndexContext{}, err
		}

		if v.cfg.EventsEnabled {
			events, err = v.upcomingEvents(ctx, tc, 3)
			if err != nil {
				return IndexContext{}, err
			}
		}
	}

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Exclude:     articleIDs(featured),
		Categories:  categories,
		PerPage:     v.cfg.PerPage,
		Page:        page,
	}, nil)
	if err != nil {
		return IndexContext{}, err
	}

	return IndexContext{
		CurrentPage:       page,
		TotalPages:        meta.TotalPages,
		Articles:          articles,
		FeaturedArticles:  featured,
		EventsAndWebinars: events,
		Title:             v.cfg.BlogTitle,
		CategorySlug:      categorySlug,
	}, nil
}

// upcomingEvents fetches the newest articles in the events and webinars
// categories. The category slugs are fixed but their IDs are resolved
// dynamically, through the render cache.
func (v *Views) upcomingEvents(ctx context.Context, tc *cache.TermCache, limit int) ([]models.Article, error) {
	var categories []int
	for _, slug := range []string{"events", "webinars"} {
		category, ok, err := v.categoryBySlug(ctx, tc, slug)
		if err != nil {
			return nil, err
		}
		if ok {
			categories = append(categories, category.ID)
		}
	}
	if len(categories) == 0 {
		return nil, nil
	}

	events, _, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Categories:  categories,
		PerPage:     limit,
		Page:        1,
	}, nil)
	return events, err
}

// EventsContext is the events-and-webinars listing page context.
type EventsContext struct {
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	Articles    []models.Article `json:"articles"`
	Title       string           `json:"title"`
}

// GetEventsAndWebinars builds the paginated events/webinars listing.
func (v *Views) GetEventsAndWebinars(ctx context.Context, page int) (EventsContext, error) {
	if page < 1 {
		page = 1
	}
	tc := cache.NewTermCache()

	var categories []int
	for _, slug := range []string{"events", "webinars"} {
		category, ok, err := v.categoryBySlug(ctx, tc, slug)
		if err != nil {
			return EventsContext{}, err
		}
		if ok {
			categories = append(categories, category.ID)
		}
	}
	// Without the category filter the query would list every article.
	if len(categories) == 0 {
		return EventsContext{CurrentPage: page, Title: v.cfg.BlogTitle}, nil
	}

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Categories:  categories,
		PerPage:     v.cfg.PerPage,
		Page:        page,
	}, nil)
	if err != nil {
		return EventsContext{}, err
	}

	return EventsContext{
		CurrentPage: page,
		TotalPages:  meta.TotalPages,
		Articles:    articles,
		Title:       v.cfg.BlogTitle,
	}, nil
}

// LatestNewsContext is the JSON payload for the latest-news endpoint.
type LatestNewsContext struct {
	LatestArticles       []models.Article `json:"latest_articles"`
	LatestPinnedArticles []models.Article `json:"latest_pinned_articles"`
}

// GetLatestNews returns the most recent pinned (sticky) article plus the
// latest non-sticky articles, excluding the pinned one so it never shows
// twice. Tag and group filters default to the configured allow list.
func (v *Views) GetLatestNews(ctx context.Context, limit int, tagIDs, groupIDs []int) (LatestNewsContext, error) {
	if limit < 1 {
		limit = 3
	}
	tags := tagIDs
	if len(tags) == 0 {
		tags = v.cfg.TagIDs
	}

	pinned, _, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        tags,
		TagsExclude: v.cfg.ExcludedTags,
		Groups:      groupIDs,
		Sticky:      wordpress.Bool(true),
		PerPage:     1,
		Page:        1,
	}, nil)
	if err != nil {
		return LatestNewsContext{}, err
	}

	latest, _, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        tags,
		TagsExclude: v.cfg.ExcludedTags,
		Groups:      groupIDs,
		Exclude:     articleIDs(pinned),
		Sticky:      wordpress.Bool(false),
		PerPage:     limit,
		Page:        1,
	}, nil)
	if err != nil {
		return LatestNewsContext{}, err
	}

	return LatestNewsContext{
		LatestArticles:       latest,
		LatestPinnedArticles: pinned,
	}, nil
}
