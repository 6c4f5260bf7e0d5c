// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"fmt"
	"strings"

	"pressroom/internal/cache"
	"pressroom/internal/feed"
	"pressroom/internal/wordpress"
)

const feedPerPage = 20

// blogURL joins the site base URL with the configured blog path.
func (v *Views) blogURL(siteURL string) string {
	return strings.TrimRight(siteURL, "/") + "/" + v.cfg.BlogPath
}

// GetIndexFeed renders the RSS feed for the blog index.
func (v *Views) GetIndexFeed(ctx context.Context, siteURL string) (string, error) {
	articles, _, err := v.api.GetArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		PerPage:     feedPerPage,
		Fields:      wordpress.FeedFields(),
	})
	if err != nil {
		return "", err
	}

	blogURL := v.blogURL(siteURL)
	return feed.Build(feed.Params{
		BlogURL:     blogURL,
		FeedURL:     blogURL + "/feed",
		Title:       v.cfg.BlogTitle,
		Description: v.cfg.FeedDescription,
	}, articles)
}

// GetGroupFeed renders the RSS feed for a group. The boolean is false when
// the group does not exist.
func (v *Views) GetGroupFeed(ctx context.Context, siteURL, groupSlug string) (string, bool, error) {
	tc := cache.NewTermCache()
	group, ok, err := v.groupBySlug(ctx, tc, groupSlug)
	if err != nil || !ok {
		return "", false, err
	}

	articles, _, err := v.api.GetArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Groups:      []int{group.ID},
		PerPage:     feedPerPage,
		Fields:      wordpress.FeedFields(),
	})
	if err != nil {
		return "", false, err
	}

	blogURL := v.blogURL(siteURL)
	xml, err := feed.Build(feed.Params{
		BlogURL:     blogURL,
		FeedURL:     fmt.Sprintf("%s/%s/feed", blogURL, group.Slug),
		Title:       fmt.Sprintf("%s - %s", group.Name, v.cfg.BlogTitle),
		Description: v.cfg.FeedDescription,
	}, articles)
	if err != nil {
		return "", false, err
	}
	return xml, true, nil
}

// GetTopicFeed renders the RSS feed for a topic. The boolean is false when
// the topic tag does not exist.
func (v *Views) GetTopicFeed(ctx context.Context, siteURL, topicSlug string) (string, bool, error) {
	tc := cache.NewTermCache()
	tag, ok, err := v.tagBySlug(ctx, tc, topicSlug)
	if err != nil || !ok {
		return "", false, err
	}

	articles, _, err := v.api.GetArticles(ctx, wordpress.ArticleQuery{
		Tags:        append(append([]int{}, v.cfg.TagIDs...), tag.ID),
		TagsExclude: v.cfg.ExcludedTags,
		PerPage:     feedPerPage,
		Fields:      wordpress.FeedFields(),
	})
	if err != nil {
		return "", false, err
	}

	blogURL := v.blogURL(siteURL)
	xml, err := feed.Build(feed.Params{
		BlogURL:     blogURL,
		FeedURL:     fmt.Sprintf("%s/topic/%s/feed", blogURL, tag.Slug),
		Title:       fmt.Sprintf("%s - %s", tag.Name, v.cfg.BlogTitle),
		Description: v.cfg.FeedDescription,
	}, articles)
	if err != nil {
		return "", false, err
	}
	return xml, true, nil
}

// GetAuthorFeed renders the RSS feed for an author. The boolean is false
// when no author matches the username.
func (v *Views) GetAuthorFeed(ctx context.Context, siteURL, username string) (string, bool, error) {
	author, ok, err := v.api.GetUserByUsername(ctx, username)
	if err != nil || !ok {
		return "", false, err
	}

	articles, _, err := v.api.GetArticles(ctx, wordpress.ArticleQuery{
		Tags:        v.cfg.TagIDs,
		TagsExclude: v.cfg.ExcludedTags,
		Author:      author.ID,
		PerPage:     feedPerPage,
		Fields:      wordpress.FeedFields(),
	})
	if err != nil {
		return "", false, err
	}

	blogURL := v.blogURL(siteURL)
	xml, err := feed.Build(feed.Params{
		BlogURL:     blogURL,
		FeedURL:     fmt.Sprintf("%s/author/%s/feed", blogURL, author.Slug),
		Title:       fmt.Sprintf("%s - %s", author.Name, v.cfg.BlogTitle),
		Description: v.cfg.FeedDescription,
	}, articles)
	if err != nil {
		return "", false, err
	}
	return xml, true, nil
}
