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

// GroupContext is the context for a group (site section) listing page.
type GroupContext struct {
	CurrentPage  int              `json:"current_page"`
	TotalPages   int              `json:"total_pages"`
	Articles     []models.Article `json:"articles"`
	Group        models.Term      `json:"group"`
	Title        string           `json:"title"`
	CategorySlug string           `json:"category_slug,omitempty"`
}

// GetGroup builds a group listing page, optionally narrowed by a category
// slug. The boolean is false when the group does not exist.
func (v *Views) GetGroup(ctx context.Context, groupSlug string, page int, categorySlug string) (GroupContext, bool, error) {
	if page < 1 {
		page = 1
	}
	tc := cache.NewTermCache()

	group, ok, err := v.groupBySlug(ctx, tc, groupSlug)
	if err != nil || !ok {
		return GroupContext{}, false, err
	}

	var categories []int
	if categorySlug != "" {
		category, found, err := v.categoryBySlug(ctx, tc, categorySlug)
		if err != nil {
			return GroupContext{}, false, err
		}
		if found {
			categories = append(categories, category.ID)
		}
	}

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Groups:      []int{group.ID},
		Categories:  categories,
		PerPage:     v.cfg.PerPage,
		Page:        page,
	}, &group)
	if err != nil {
		return GroupContext{}, false, err
	}

	return GroupContext{
		CurrentPage:  page,
		TotalPages:   meta.TotalPages,
		Articles:     articles,
		Group:        group,
		Title:        v.cfg.BlogTitle,
		CategorySlug: categorySlug,
	}, true, nil
}

// TopicContext is the context for a topic listing page. Topics are tags
// browsed alongside the configured allow list.
type TopicContext struct {
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	Articles    []models.Article `json:"articles"`
	Topic       models.Term      `json:"topic"`
	Title       string           `json:"title"`
}

// GetTopic builds a topic listing page. The boolean is false when the
// topic tag does not exist.
func (v *Views) GetTopic(ctx context.Context, topicSlug string, page int) (TopicContext, bool, error) {
	if page < 1 {
		page = 1
	}
	tc := cache.NewTermCache()

	tag, ok, err := v.tagBySlug(ctx, tc, topicSlug)
	if err != nil || !ok {
		return TopicContext{}, false, err
	}

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        append(append([]int{}, v.cfg.TagIDs...), tag.ID),
		TagsExclude: v.cfg.ExcludedTags,
		PerPage:     v.cfg.PerPage,
		Page:        page,
	}, nil)
	if err != nil {
		return TopicContext{}, false, err
	}

	return TopicContext{
		CurrentPage: page,
		TotalPages:  meta.TotalPages,
		Articles:    articles,
		Topic:       tag,
		Title:       v.cfg.BlogTitle,
	}, true, nil
}

// TagContext is the context for a plain tag listing page.
type TagContext struct {
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	Articles    []models.Article `json:"articles"`
	Tag         models.Term      `json:"tag"`
	Title       string           `json:"title"`
}

// GetTag builds a tag listing page. Unlike topics, the tag replaces the
// configured allow list instead of extending it. The boolean is false when
// the tag does not exist.
func (v *Views) GetTag(ctx context.Context, slug string, page int) (TagContext, bool, error) {
	if page < 1 {
		page = 1
	}
	tc := cache.NewTermCache()

	tag, ok, err := v.tagBySlug(ctx, tc, slug)
	if err != nil || !ok {
		return TagContext{}, false, err
	}

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        []int{tag.ID},
		TagsExclude: v.cfg.ExcludedTags,
		PerPage:     v.cfg.PerPage,
		Page:        page,
	}, nil)
	if err != nil {
		return TagContext{}, false, err
	}

	return TagContext{
		CurrentPage: page,
		TotalPages:  meta.TotalPages,
		Articles:    articles,
		Tag:         tag,
		Title:       v.cfg.BlogTitle,
	}, true, nil
}

// AuthorContext is the context for an author page.
type AuthorContext struct {
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	TotalPosts  int              `json:"total_posts"`
	Articles    []models.Article `json:"articles"`
	Author      models.User      `json:"author"`
	Title       string           `json:"title"`
}

// GetAuthor builds an author page. The boolean is false when no author
// matches the username.
func (v *Views) GetAuthor(ctx context.Context, username string, page int) (AuthorContext, bool, error) {
	if page < 1 {
		page = 1
	}

	author, ok, err := v.api.GetUserByUsername(ctx, username)
	if err != nil || !ok {
		return AuthorContext{}, false, err
	}

	articles, meta, err := v.fetchArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Author:      author.ID,
		PerPage:     v.cfg.PerPage,
		Page:        page,
	}, nil)
	if err != nil {
		return AuthorContext{}, false, err
	}

	return AuthorContext{
		CurrentPage: page,
		TotalPages:  meta.TotalPages,
		TotalPosts:  meta.TotalPosts,
		Articles:    articles,
		Author:      author,
		Title:       v.cfg.BlogTitle,
	}, true, nil
}
