// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"net/url"
	"testing"

	"pressroom/internal/models"
)

// TestGetArticle verifies the detail context: tags resolved, related
// articles ranked by shared tags with the allow list applied as a hard
// requirement, and the series flag derived from tag names.
func TestGetArticle(t *testing.T) {
	f := newFakeCMS(func(q url.Values) []models.Article {
		if q.Get("slug") == "my-post" {
			return []models.Article{{ID: 1, Slug: "my-post", Tags: []int{20, 99}}}
		}
		// Related-candidate query.
		return []models.Article{
			{ID: 4, Slug: "partial", Tags: []int{20}},
			{ID: 3, Slug: "one-shared", Tags: []int{99}},
			{ID: 2, Slug: "both-shared", Tags: []int{20, 99}},
		}
	})
	v := newTestViews(t, Config{TagIDs: []int{99}}, f)

	ctx, ok, err := v.GetArticle(context.Background(), "my-post")
	if err != nil {
		t.Fatalf("GetArticle() returned unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("GetArticle() ok = false for existing slug")
	}

	if len(ctx.Tags) != 2 {
		t.Fatalf("Tags = %v, want both tags resolved", ctx.Tags)
	}
	if !ctx.IsInSeries {
		t.Error("IsInSeries = false, want true for a series tag")
	}

	// Article 4 lacks required tag 99; article 2 shares more tags than 3.
	if len(ctx.RelatedArticles) != 2 {
		t.Fatalf("RelatedArticles = %v, want 2 entries", relatedSlugs(ctx))
	}
	if ctx.RelatedArticles[0].ID != 2 || ctx.RelatedArticles[1].ID != 3 {
		t.Errorf("related order = %v, want [both-shared one-shared]", relatedSlugs(ctx))
	}

	related := f.postQuery(func(q url.Values) bool { return q.Get("exclude") == "1" })
	if related == nil {
		t.Fatal("no related-candidate query issued")
	}
	if related.Get("tags") != "20,99" {
		t.Errorf("related candidate tags = %q, want 20,99", related.Get("tags"))
	}
	if related.Get("per_page") != "30" {
		t.Errorf("related candidate per_page = %q, want 30", related.Get("per_page"))
	}
}

// TestGetArticle_NoTags verifies an article without tags gets no related
// lookup at all.
func TestGetArticle_NoTags(t *testing.T) {
	f := newFakeCMS(func(q url.Values) []models.Article {
		if q.Get("slug") == "untagged" {
			return []models.Article{{ID: 9, Slug: "untagged"}}
		}
		t.Errorf("unexpected posts query %v", q)
		return nil
	})
	v := newTestViews(t, Config{}, f)

	ctx, ok, err := v.GetArticle(context.Background(), "untagged")
	if err != nil || !ok {
		t.Fatalf("GetArticle() = (ok=%v, err=%v), want found", ok, err)
	}
	if len(ctx.RelatedArticles) != 0 {
		t.Errorf("RelatedArticles = %v, want none", ctx.RelatedArticles)
	}
	if ctx.IsInSeries {
		t.Error("IsInSeries = true for untagged article")
	}
}

// TestGetArticle_Absent verifies an unknown slug is absence, not an error.
func TestGetArticle_Absent(t *testing.T) {
	f := newFakeCMS(func(q url.Values) []models.Article { return nil })
	v := newTestViews(t, Config{}, f)

	_, ok, err := v.GetArticle(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetArticle() returned unexpected error: %v", err)
	}
	if ok {
		t.Error("GetArticle() ok = true for unknown slug, want false")
	}
}

// TestGetLatestArticle verifies the newest article is fetched with a
// single-entry listing.
func TestGetLatestArticle(t *testing.T) {
	f := newFakeCMS(func(q url.Values) []models.Article {
		if q.Get("per_page") == "1" {
			return []models.Article{{ID: 50, Slug: "newest"}}
		}
		return nil
	})
	v := newTestViews(t, Config{}, f)

	ctx, ok, err := v.GetLatestArticle(context.Background())
	if err != nil || !ok {
		t.Fatalf("GetLatestArticle() = (ok=%v, err=%v), want found", ok, err)
	}
	if ctx.Article.Slug != "newest" {
		t.Errorf("Article.Slug = %q, want newest", ctx.Article.Slug)
	}
}

func relatedSlugs(ctx ArticleContext) []string {
	out := make([]string, len(ctx.RelatedArticles))
	for i, a := range ctx.RelatedArticles {
		out[i] = a.Slug
	}
	return out
}
