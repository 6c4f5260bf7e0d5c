// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"strings"
	"testing"

	"pressroom/internal/models"
)

func sampleArticles() []models.Article {
	return []models.Article{
		{
			Slug:        "new-release",
			DateGMT:     "2026-02-10T09:00:00",
			ModifiedGMT: "2026-02-11T10:00:00",
			Title:       models.Rendered{Rendered: "A new release"},
			Excerpt:     models.Rendered{Rendered: "<p>Short summary.</p>"},
			Content:     models.Rendered{Rendered: "<p>Full body.</p>"},
			Embedded: &models.Embedded{
				Author: []models.User{{ID: 11, Name: "Jo Writer"}},
				Terms: [][]models.Term{
					{},
					{{ID: 20, Name: "kernel"}, {ID: 10, Name: "desktop"}},
					{},
					{},
				},
			},
		},
		{
			Slug:  "bare-note",
			Title: models.Rendered{Rendered: "Bare note"},
		},
	}
}

// TestBuild verifies the channel metadata and per-entry fields land in the
// RSS output.
func TestBuild(t *testing.T) {
	xml, err := Build(Params{
		BlogURL:     "https://example.com/blog",
		FeedURL:     "https://example.com/blog/feed",
		Title:       "Example Blog",
		Description: "Example Blog feed",
	}, sampleArticles())
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}

	for _, want := range []string{
		"<title>Example Blog</title>",
		"<link>https://example.com/blog/feed</link>",
		"<description>Example Blog feed</description>",
		"<title>A new release</title>",
		"<link>https://example.com/blog/new-release</link>",
		"<category>kernel, desktop</category>",
		"Jo Writer",
		"<generator>pressroom</generator>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("Build() output missing %q", want)
		}
	}
}

// TestBuild_MissingParts verifies entries degrade when an article has no
// embedded bundle at all.
func TestBuild_MissingParts(t *testing.T) {
	xml, err := Build(Params{
		BlogURL: "https://example.com/blog",
		FeedURL: "https://example.com/blog/feed",
		Title:   "Example Blog",
	}, sampleArticles()[1:])
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}

	if !strings.Contains(xml, "<title>Bare note</title>") {
		t.Error("Build() output missing the bare entry")
	}
	if strings.Contains(xml, "<author>") {
		t.Error("Build() emitted an author for an article without one")
	}
}

// TestBuild_Empty verifies an empty listing still yields a valid channel.
func TestBuild_Empty(t *testing.T) {
	xml, err := Build(Params{FeedURL: "https://example.com/blog/feed", Title: "Empty"}, nil)
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	if !strings.Contains(xml, "<title>Empty</title>") {
		t.Error("Build() output missing channel title")
	}
	if strings.Contains(xml, "<item>") {
		t.Error("Build() emitted items for an empty listing")
	}
}
