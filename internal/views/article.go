// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"sort"

	"pressroom/internal/models"
	"pressroom/internal/transform"
	"pressroom/internal/wordpress"
)

// ArticleContext is the article detail page context.
type ArticleContext struct {
	Article         models.Article   `json:"article"`
	RelatedArticles []models.Article `json:"related_articles"`
	Tags            []models.Term    `json:"tags"`
	IsInSeries      bool             `json:"is_in_series"`
}

// GetArticle builds the detail page for one slug. The boolean is false
// when no article matched.
func (v *Views) GetArticle(ctx context.Context, slug string) (ArticleContext, bool, error) {
	article, ok, err := v.api.GetArticle(ctx, slug, wordpress.ArticleOptions{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
	})
	if err != nil || !ok {
		return ArticleContext{}, false, err
	}

	return v.buildArticleContext(ctx, article)
}

// GetLatestArticle builds the detail context for the newest article.
func (v *Views) GetLatestArticle(ctx context.Context) (ArticleContext, bool, error) {
	articles, _, err := v.api.GetArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		PerPage:     1,
		Page:        1,
	})
	if err != nil || len(articles) == 0 {
		return ArticleContext{}, false, err
	}

	return v.buildArticleContext(ctx, articles[0])
}

// buildArticleContext assembles the tag list, related articles, and the
// series flag around a fetched article.
func (v *Views) buildArticleContext(ctx context.Context, article models.Article) (ArticleContext, bool, error) {
	tags := article.Embedded.EmbeddedTags()

	related, err := v.relatedArticles(ctx, article, tags, v.cfg.TagIDs)
	if err != nil {
		return ArticleContext{}, false, err
	}

	transform.Decorate(&article, v.transformOpts(nil))

	return ArticleContext{
		Article:         article,
		RelatedArticles: related,
		Tags:            tags,
		IsInSeries:      isInSeries(tags),
	}, true, nil
}

// relatedArticles finds up to three articles sharing tags with the given
// one, excluding the article itself. Candidates are ranked by how many
// tags they share; requiredTagIDs narrows the candidates to those carrying
// every listed tag (AND semantics, unlike the upstream tag filter's OR).
func (v *Views) relatedArticles(ctx context.Context, article models.Article, tags []models.Term, requiredTagIDs []int) ([]models.Article, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	candidates, _, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        termIDs(tags),
		TagsExclude: v.cfg.ExcludedTags,
		Exclude:     []int{article.ID},
		PerPage:     30,
		Page:        1,
	}, nil)
	if err != nil {
		return nil, err
	}

	currentTags := make(map[int]struct{}, len(tags))
	for _, t := range tags {
		currentTags[t.ID] = struct{}{}
	}

	type ranked struct {
		article       models.Article
		compatibility int
	}
	var matches []ranked
	for _, candidate := range candidates {
		if !containsAll(candidate.Tags, requiredTagIDs) {
			continue
		}
		shared := 0
		for _, id := range candidate.Tags {
			if _, ok := currentTags[id]; ok {
				shared++
			}
		}
		matches = append(matches, ranked{article: candidate, compatibility: shared})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].compatibility > matches[j].compatibility
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}

	related := make([]models.Article, 0, len(matches))
	for _, m := range matches {
		related = append(related, m.article)
	}
	return related, nil
}

// containsAll reports whether ids includes every required ID.
func containsAll(ids []int, required []int) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	for _, id := range required {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
