// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"pressroom/internal/models"
)

// fakeCMS builds a fake upstream serving a fixed entity catalog, resolving
// include= filters the way the real API does.
func fakeCMS(t *testing.T, posts []models.Article) *Client {
	t.Helper()

	users := map[int]models.User{
		11: {ID: 11, Name: "Jo Writer", Slug: "jo"},
	}
	media := map[int]models.Media{
		31: {ID: 31, SourceURL: "https://cms.example.com/img.png"},
	}
	categories := map[int]models.Term{
		3: {ID: 3, Name: "Releases", Slug: "releases"},
		5: {ID: 5, Name: "Events", Slug: "events"},
	}
	tags := map[int]models.Term{
		20: {ID: 20, Name: "kernel", Slug: "kernel"},
		10: {ID: 10, Name: "desktop", Slug: "desktop"},
	}
	groups := map[int]models.Term{
		7: {ID: 7, Name: "Engineering", Slug: "engineering"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(posts)
	})
	serveByInclude := func(path string, lookup func(id int) (any, bool)) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			var items []any
			for _, id := range NormalizeIDs(strings.Split(r.URL.Query().Get("include"), ",")) {
				if item, ok := lookup(id); ok {
					items = append(items, item)
				}
			}
			json.NewEncoder(w).Encode(items)
		})
	}
	serveByInclude("/users", func(id int) (any, bool) { u, ok := users[id]; return u, ok })
	serveByInclude("/media", func(id int) (any, bool) { m, ok := media[id]; return m, ok })
	serveByInclude("/categories", func(id int) (any, bool) { c, ok := categories[id]; return c, ok })
	serveByInclude("/tags", func(id int) (any, bool) { tg, ok := tags[id]; return tg, ok })
	serveByInclude("/group", func(id int) (any, bool) { g, ok := groups[id]; return g, ok })

	return newTestClient(t, mux)
}

// TestSynthesizeEmbedded verifies compact listings come back with a bundle
// shaped like native embedding: wp:term ordered category, tag, topic,
// group, with the article's own reference order preserved.
func TestSynthesizeEmbedded(t *testing.T) {
	c := fakeCMS(t, []models.Article{
		{
			ID:            1,
			Slug:          "first",
			Author:        11,
			FeaturedMedia: 31,
			Categories:    []int{5, 3},
			Tags:          []int{20, 10},
			GroupIDs:      []int{7},
		},
	})

	articles, _, err := c.GetArticles(context.Background(), ArticleQuery{})
	if err != nil {
		t.Fatalf("GetArticles() returned unexpected error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("GetArticles() returned %d articles, want 1", len(articles))
	}

	embedded := articles[0].Embedded
	if embedded == nil {
		t.Fatal("article.Embedded = nil, want synthesized bundle")
	}

	if len(embedded.Terms) != 4 {
		t.Fatalf("wp:term has %d slots, want 4", len(embedded.Terms))
	}
	if len(embedded.Terms[models.TermSlotTopic]) != 0 {
		t.Errorf("topic slot = %v, want empty", embedded.Terms[models.TermSlotTopic])
	}

	catSlugs := termSlugs(embedded.EmbeddedCategories())
	if !reflect.DeepEqual(catSlugs, []string{"events", "releases"}) {
		t.Errorf("category slugs = %v, want reference order [events releases]", catSlugs)
	}

	tagSlugs := termSlugs(embedded.EmbeddedTags())
	if !reflect.DeepEqual(tagSlugs, []string{"kernel", "desktop"}) {
		t.Errorf("tag slugs = %v, want reference order [kernel desktop]", tagSlugs)
	}

	groups := embedded.EmbeddedGroups()
	if len(groups) != 1 || groups[0].Slug != "engineering" {
		t.Errorf("groups = %v, want [engineering]", groups)
	}

	if author := embedded.EmbeddedAuthor(); author == nil || author.Name != "Jo Writer" {
		t.Errorf("author = %v, want Jo Writer", author)
	}
	if m := embedded.EmbeddedFeaturedMedia(); m == nil || m.ID != 31 {
		t.Errorf("featured media = %v, want ID 31", m)
	}
}

// TestSynthesizeEmbedded_SkipsUnresolved verifies IDs the upstream cannot
// resolve are dropped rather than producing placeholder entries.
func TestSynthesizeEmbedded_SkipsUnresolved(t *testing.T) {
	c := fakeCMS(t, []models.Article{
		{ID: 2, Slug: "second", Author: 999, FeaturedMedia: 888, Tags: []int{20, 777}},
	})

	articles, _, err := c.GetArticles(context.Background(), ArticleQuery{})
	if err != nil {
		t.Fatalf("GetArticles() returned unexpected error: %v", err)
	}

	embedded := articles[0].Embedded
	if author := embedded.EmbeddedAuthor(); author != nil {
		t.Errorf("author = %v, want nil for unresolved ID", author)
	}
	if m := embedded.EmbeddedFeaturedMedia(); m != nil {
		t.Errorf("featured media = %v, want nil for unresolved ID", m)
	}
	if slugs := termSlugs(embedded.EmbeddedTags()); !reflect.DeepEqual(slugs, []string{"kernel"}) {
		t.Errorf("tag slugs = %v, want [kernel]", slugs)
	}
}

// TestSynthesizeEmbedded_GroupFallback verifies a single-group listing
// attaches the filtered group to articles whose own group list resolved
// empty.
func TestSynthesizeEmbedded_GroupFallback(t *testing.T) {
	c := fakeCMS(t, []models.Article{
		{ID: 3, Slug: "third", GroupIDs: nil},
	})

	articles, _, err := c.GetArticles(context.Background(), ArticleQuery{Groups: []int{7}})
	if err != nil {
		t.Fatalf("GetArticles() returned unexpected error: %v", err)
	}

	groups := articles[0].Embedded.EmbeddedGroups()
	if len(groups) != 1 || groups[0].ID != 7 {
		t.Errorf("groups = %v, want fallback to filtered group 7", groups)
	}
}

func termSlugs(terms []models.Term) []string {
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = term.Slug
	}
	return out
}
