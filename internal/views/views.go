// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package views assembles template-ready contexts for every public page
// type. Each builder is a pure function of the request parameters and the
// upstream API state; the only shared state is a taxonomy cache scoped to
// a single render.
package views

import (
	"context"
	"fmt"
	"strings"

	"pressroom/internal/cache"
	"pressroom/internal/models"
	"pressroom/internal/transform"
	"pressroom/internal/wordpress"
)

// seriesTagPrefix marks tags that link an article into a series.
const seriesTagPrefix = "sc:series"

// Taxonomy names used as term-cache namespaces.
const (
	taxCategory = "categories"
	taxGroup    = "group"
	taxTag      = "tags"
)

// YearEndBoundary selects how a year-only archive range is closed.
type YearEndBoundary int

const (
	// YearEndMidnight bounds the range at Dec 31 00:00:00, excluding
	// anything published later that day. This matches the historical
	// behavior and stays the default; see DESIGN.md.
	YearEndMidnight YearEndBoundary = iota

	// YearEndOfDay extends the boundary to Dec 31 23:59:59.
	YearEndOfDay
)

// Config tunes the view builders for one blog deployment.
type Config struct {
	BlogTitle       string // defaults to "Blog"
	BlogPath        string // path segment under the site root, e.g. "blog"
	FeedDescription string // defaults to "<title> feed"
	PerPage         int    // main listing page size, defaults to 12

	// TagIDs restricts every listing to these tags; ExcludedTags is the
	// deny list applied everywhere.
	TagIDs       []int
	ExcludedTags []int

	// EventsEnabled turns the upcoming events/webinars rail on page one
	// of the index on.
	EventsEnabled bool

	YearEnd YearEndBoundary

	// Content transform settings, passed through to transform.Decorate.
	UseImageTemplate bool
	ThumbnailWidth   int
	ThumbnailHeight  int
	URLRewriteFrom   string
	URLRewriteTo     string
}

// Views builds page contexts against the upstream CMS.
type Views struct {
	api *wordpress.Client
	cfg Config
}

// New creates a Views with defaults applied.
func New(api *wordpress.Client, cfg Config) *Views {
	if cfg.BlogTitle == "" {
		cfg.BlogTitle = "Blog"
	}
	cfg.BlogPath = strings.Trim(cfg.BlogPath, "/")
	if cfg.BlogPath == "" {
		cfg.BlogPath = "blog"
	}
	if cfg.FeedDescription == "" {
		cfg.FeedDescription = fmt.Sprintf("%s feed", cfg.BlogTitle)
	}
	if cfg.PerPage == 0 {
		cfg.PerPage = 12
	}
	return &Views{api: api, cfg: cfg}
}

// transformOpts builds the decoration options for one render. group, when
// non-nil, is the group the listing was filtered by.
func (v *Views) transformOpts(group *models.Term) transform.Options {
	return transform.Options{
		Group:            group,
		UseImageTemplate: v.cfg.UseImageTemplate,
		ThumbnailWidth:   v.cfg.ThumbnailWidth,
		ThumbnailHeight:  v.cfg.ThumbnailHeight,
		URLRewriteFrom:   v.cfg.URLRewriteFrom,
		URLRewriteTo:     v.cfg.URLRewriteTo,
	}
}

// fetchArticles runs an article query and decorates the results.
func (v *Views) fetchArticles(ctx context.Context, q wordpress.ArticleQuery, group *models.Term) ([]models.Article, models.Pagination, error) {
	articles, meta, err := v.api.GetArticles(ctx, q)
	if err != nil {
		return nil, meta, err
	}
	transform.DecorateAll(articles, v.transformOpts(group))
	return articles, meta, nil
}

// categoryBySlug resolves a category through the per-render cache. Absent
// slugs are cached too, so each is asked for at most once per render.
func (v *Views) categoryBySlug(ctx context.Context, tc *cache.TermCache, slug string) (models.Term, bool, error) {
	if t, ok := tc.GetSlug(taxCategory, slug); ok {
		return t, !t.IsZero(), nil
	}
	t, ok, err := v.api.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return models.Term{}, false, err
	}
	tc.PutSlug(taxCategory, slug, t)
	return t, ok, nil
}

// groupBySlug resolves a group through the per-render cache.
func (v *Views) groupBySlug(ctx context.Context, tc *cache.TermCache, slug string) (models.Term, bool, error) {
	if t, ok := tc.GetSlug(taxGroup, slug); ok {
		return t, !t.IsZero(), nil
	}
	t, ok, err := v.api.GetGroupBySlug(ctx, slug)
	if err != nil {
		return models.Term{}, false, err
	}
	tc.PutSlug(taxGroup, slug, t)
	return t, ok, nil
}

// tagBySlug resolves a tag through the per-render cache.
func (v *Views) tagBySlug(ctx context.Context, tc *cache.TermCache, slug string) (models.Term, bool, error) {
	if t, ok := tc.GetSlug(taxTag, slug); ok {
		return t, !t.IsZero(), nil
	}
	t, ok, err := v.api.GetTagBySlug(ctx, slug)
	if err != nil {
		return models.Term{}, false, err
	}
	tc.PutSlug(taxTag, slug, t)
	return t, ok, nil
}

// isInSeries reports whether any tag carries the series prefix.
func isInSeries(tags []models.Term) bool {
	for _, tag := range tags {
		if strings.HasPrefix(tag.Name, seriesTagPrefix) {
			return true
		}
	}
	return false
}

// articleIDs extracts the IDs of a listing, for exclusion filters.
func articleIDs(articles []models.Article) []int {
	ids := make([]int, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

// termIDs extracts the IDs of a term list.
func termIDs(terms []models.Term) []int {
	ids := make([]int, 0, len(terms))
	for _, t := range terms {
		ids = append(ids, t.ID)
	}
	return ids
}
