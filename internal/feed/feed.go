// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed serializes article listings as RSS documents. One entry per
// article: title, rendered excerpt as description, rendered content as
// body, author, canonical link, and the article's tags as categories.
package feed

import (
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"pressroom/internal/models"
)

const dateGMTLayout = "2006-01-02T15:04:05"

// Params describes the feed being built.
type Params struct {
	// BlogURL is the canonical base for entry links (link = BlogURL/slug).
	BlogURL string
	// FeedURL is the feed's own URL, advertised as the channel link.
	FeedURL     string
	Title       string
	Description string
}

// Build renders an RSS document for the given articles. Articles are
// expected to carry an embedded bundle (native or synthesized) for author
// and tag resolution; entries degrade gracefully when parts are missing.
func Build(p Params, articles []models.Article) (string, error) {
	f := &feeds.Feed{
		Title:       p.Title,
		Link:        &feeds.Link{Href: p.FeedURL},
		Description: p.Description,
		Created:     time.Now().UTC(),
	}

	for i := range articles {
		f.Items = append(f.Items, buildItem(&articles[i], p.BlogURL))
	}

	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Generator = "pressroom"

	// gorilla/feeds' generic Item has no category slot; attach the tag
	// names onto the RSS items directly.
	for i := range articles {
		if i >= len(rss.Items) {
			break
		}
		rss.Items[i].Category = categories(&articles[i])
	}

	return feeds.ToXML(rss)
}

// buildItem converts one article into a feed entry.
func buildItem(a *models.Article, blogURL string) *feeds.Item {
	item := &feeds.Item{
		Title:       a.Title.Rendered,
		Link:        &feeds.Link{Href: strings.TrimRight(blogURL, "/") + "/" + a.Slug},
		Description: a.Excerpt.Rendered,
		Content:     a.Content.Rendered,
	}

	if t, err := time.Parse(dateGMTLayout, a.DateGMT); err == nil {
		item.Created = t.UTC()
	}
	if t, err := time.Parse(dateGMTLayout, a.ModifiedGMT); err == nil {
		item.Updated = t.UTC()
	}

	if author := a.Embedded.EmbeddedAuthor(); author != nil {
		item.Author = &feeds.Author{Name: author.Name, Email: author.Name}
	}

	return item
}

// categories joins the article's tag names. RSS items take a single
// category element here, so multiple tags are comma-joined.
func categories(a *models.Article) string {
	var names []string
	for _, tag := range a.Embedded.EmbeddedTags() {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}
