// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"time"

	"pressroom/internal/models"
)

// FieldMode selects the fetch strategy for article queries.
type FieldMode int

const (
	// FieldModeList requests a minimal field set without native embedding
	// and synthesizes the _embedded bundle locally. This trades a handful
	// of bulk lookups for much smaller per-article payloads, so it is the
	// default for listings.
	FieldModeList FieldMode = iota

	// FieldModeDetail requests native embedding plus the fuller detail
	// field set directly from upstream. Used for article pages.
	FieldModeDetail
)

// ArticleQuery is the filter set for GetArticles. All fields are optional;
// array-valued filters pass straight through to the upstream API, which
// defines their multi-value semantics.
type ArticleQuery struct {
	Tags        []int
	TagsExclude []int
	Exclude     []int
	Categories  []int
	Groups      []int
	Author      int
	Sticky      *bool
	Before      time.Time
	After       time.Time
	Status      []string
	PerPage     int // default 12
	Page        int // default 1
	Mode        FieldMode
	Fields      []string // overrides the mode's field set when non-empty
}

// Bool is a convenience for ArticleQuery.Sticky.
func Bool(v bool) *bool { return &v }

// GetArticles fetches one page of articles matching the query, along with
// pagination metadata parsed from the response headers. In FieldModeList
// the returned articles carry locally synthesized _embedded bundles.
func (c *Client) GetArticles(ctx context.Context, q ArticleQuery) ([]models.Article, models.Pagination, error) {
	perPage := q.PerPage
	if perPage == 0 {
		perPage = 12
	}
	page := q.Page
	if page == 0 {
		page = 1
	}

	fields := q.Fields
	if len(fields) == 0 {
		if q.Mode == FieldModeList {
			fields = listPostFields
		} else {
			fields = detailPostFields
		}
	}

	var articles []models.Article
	headers, err := c.getJSON(ctx, "posts", params{
		"tags":         q.Tags,
		"tags_exclude": q.TagsExclude,
		"exclude":      q.Exclude,
		"categories":   q.Categories,
		"group":        q.Groups,
		"author":       q.Author,
		"sticky":       q.Sticky,
		"before":       q.Before,
		"after":        q.After,
		"status":       q.Status,
		"per_page":     perPage,
		"page":         page,
	}, q.Mode == FieldModeDetail, fields, &articles)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	if q.Mode == FieldModeList {
		if err := c.synthesizeEmbedded(ctx, articles, q.Groups); err != nil {
			return nil, models.Pagination{}, err
		}
	}

	return articles, pagination(headers), nil
}

// ArticleOptions narrows a single-article lookup.
type ArticleOptions struct {
	Tags        []int
	TagsExclude []int
	Status      []string
	Mode        FieldMode
	Fields      []string
}

// GetArticle fetches one article by slug. The boolean is false when no
// article matched; errors are reserved for transport and upstream failures.
func (c *Client) GetArticle(ctx context.Context, slug string, opts ArticleOptions) (models.Article, bool, error) {
	fields := opts.Fields
	if len(fields) == 0 {
		fields = detailPostFields
	}

	article, ok, err := getFirst[models.Article](ctx, c, "posts", params{
		"slug":         slug,
		"tags":         opts.Tags,
		"tags_exclude": opts.TagsExclude,
		"status":       opts.Status,
	}, opts.Mode == FieldModeDetail, fields)
	if err != nil || !ok {
		return models.Article{}, false, err
	}

	if opts.Mode == FieldModeList {
		single := []models.Article{article}
		if err := c.synthesizeEmbedded(ctx, single, nil); err != nil {
			return models.Article{}, false, err
		}
		article = single[0]
	}

	return article, true, nil
}
