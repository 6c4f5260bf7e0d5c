// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pressroom/internal/render"
	"pressroom/internal/views"
	"pressroom/internal/wordpress"
)

// Blog groups handlers for the public blog. Each handler builds a view
// context through the views layer and renders it, mapping absent resources
// to 404 and upstream failures to 502.
type Blog struct {
	views  *views.Views
	render *render.Renderer
}

// NewBlog creates a new Blog handler group.
func NewBlog(v *views.Views, r *render.Renderer) *Blog {
	return &Blog{views: v, render: r}
}

// Index renders the blog landing page. Accepts page and category query
// parameters.
func (b *Blog) Index(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page", 1)
	category := r.URL.Query().Get("category")

	ctx, err := b.views.GetIndex(r.Context(), page, category)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}

	b.page(w, r, "index", ctx)
}

// Article renders an article detail page by slug.
func (b *Blog) Article(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, ok, err := b.views.GetArticle(r.Context(), slug)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	b.page(w, r, "article", ctx)
}

// Latest redirects to the newest article.
func (b *Blog) Latest(w http.ResponseWriter, r *http.Request) {
	ctx, ok, err := b.views.GetLatestArticle(r.Context())
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "./"+ctx.Article.Slug, http.StatusFound)
}

// DatedArticle permanently redirects date-prefixed permalinks to the plain
// slug form.
func (b *Blog) DatedArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	prefix := "/" + chi.URLParam(r, "year")
	if month := chi.URLParam(r, "month"); month != "" {
		prefix += "/" + month
	}
	if day := chi.URLParam(r, "day"); day != "" {
		prefix += "/" + day
	}
	path := strings.TrimSuffix(r.URL.Path, "/")
	base := strings.TrimSuffix(path, prefix+"/"+slug)
	http.Redirect(w, r, base+"/"+slug, http.StatusMovedPermanently)
}

// Group renders a group listing page.
func (b *Blog) Group(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page := intQuery(r, "page", 1)
	category := r.URL.Query().Get("category")

	ctx, ok, err := b.views.GetGroup(r.Context(), slug, page, category)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	b.page(w, r, "group", ctx)
}

// Topic renders a topic listing page.
func (b *Blog) Topic(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page := intQuery(r, "page", 1)

	ctx, ok, err := b.views.GetTopic(r.Context(), slug, page)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	b.page(w, r, "topic", ctx)
}

// Tag renders a tag listing page.
func (b *Blog) Tag(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page := intQuery(r, "page", 1)

	ctx, ok, err := b.views.GetTag(r.Context(), slug, page)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	b.page(w, r, "tag", ctx)
}

// Author renders an author page.
func (b *Blog) Author(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	page := intQuery(r, "page", 1)

	ctx, ok, err := b.views.GetAuthor(r.Context(), username, page)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	b.page(w, r, "author", ctx)
}

// Archives renders the archives page. Accepts page, group, month, year,
// and category (comma-separated slugs) query parameters.
func (b *Blog) Archives(w http.ResponseWriter, r *http.Request) {
	q := views.ArchivesQuery{
		Page:       intQuery(r, "page", 1),
		Group:      r.URL.Query().Get("group"),
		Month:      intQuery(r, "month", 0),
		Year:       intQuery(r, "year", 0),
		Categories: r.URL.Query().Get("category"),
	}

	ctx, ok, err := b.views.GetArchives(r.Context(), q)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}

	b.page(w, r, "archives", ctx)
}

// EventsAndWebinars renders the paginated events and webinars listing.
func (b *Blog) EventsAndWebinars(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page", 1)

	ctx, err := b.views.GetEventsAndWebinars(r.Context(), page)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}

	b.page(w, r, "events", ctx)
}

// LatestNews serves the latest-news JSON payload consumed by other sites.
// Accepts limit plus repeatable tag-id and group-id query parameters.
func (b *Blog) LatestNews(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 3)
	tagIDs := wordpress.NormalizeIDs(r.URL.Query()["tag-id"])
	groupIDs := wordpress.NormalizeIDs(r.URL.Query()["group-id"])

	ctx, err := b.views.GetLatestNews(r.Context(), limit, tagIDs, groupIDs)
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ctx); err != nil {
		slog.Error("encode latest news failed", "error", err)
	}
}

// Feed serves the RSS feed for the blog index.
func (b *Blog) Feed(w http.ResponseWriter, r *http.Request) {
	xml, err := b.views.GetIndexFeed(r.Context(), siteURL(r))
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	writeFeed(w, xml)
}

// GroupFeed serves the RSS feed for a group.
func (b *Blog) GroupFeed(w http.ResponseWriter, r *http.Request) {
	xml, ok, err := b.views.GetGroupFeed(r.Context(), siteURL(r), chi.URLParam(r, "slug"))
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeFeed(w, xml)
}

// TopicFeed serves the RSS feed for a topic.
func (b *Blog) TopicFeed(w http.ResponseWriter, r *http.Request) {
	xml, ok, err := b.views.GetTopicFeed(r.Context(), siteURL(r), chi.URLParam(r, "slug"))
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeFeed(w, xml)
}

// AuthorFeed serves the RSS feed for an author.
func (b *Blog) AuthorFeed(w http.ResponseWriter, r *http.Request) {
	xml, ok, err := b.views.GetAuthorFeed(r.Context(), siteURL(r), chi.URLParam(r, "username"))
	if err != nil {
		b.upstreamError(w, r, err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeFeed(w, xml)
}

// page renders a template and maps render failures to 500.
func (b *Blog) page(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := b.render.Page(w, name, data); err != nil {
		slog.Error("render page failed", "error", err, "template", name, "path", r.URL.Path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// upstreamError maps view-layer failures onto HTTP status codes. Errors
// here mean the CMS API misbehaved or was unreachable, so the answer is a
// 502 rather than a 500.
func (b *Blog) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *wordpress.APIError
	if errors.As(err, &apiErr) {
		slog.Error("upstream api error", "status", apiErr.StatusCode, "url", apiErr.URL, "path", r.URL.Path)
	} else {
		slog.Error("upstream request failed", "error", err, "path", r.URL.Path)
	}
	http.Error(w, "Bad Gateway", http.StatusBadGateway)
}

func writeFeed(w http.ResponseWriter, xml string) {
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	fmt.Fprint(w, xml)
}

// siteURL reconstructs the external base URL from the request, honoring
// the forwarded proto header set by the fronting proxy.
func siteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}

func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
