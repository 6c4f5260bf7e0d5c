// Package router sets up all HTTP routes and middleware chains for the
// blog server. The blog mounts under a configurable path prefix so the
// site it extends keeps its own root.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pressroom/internal/handlers"
	"pressroom/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and blog routes wired up under the given path prefix.
func New(blogPath string, blog *handlers.Blog) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/"+blogPath, func(r chi.Router) {
		r.Get("/", blog.Index)
		r.Get("/feed", blog.Feed)
		r.Get("/latest-news", blog.LatestNews)
		r.Get("/latest", blog.Latest)
		r.Get("/events-and-webinars", blog.EventsAndWebinars)
		r.Get("/archives", blog.Archives)

		r.Get("/topic/{slug}", blog.Topic)
		r.Get("/topic/{slug}/feed", blog.TopicFeed)
		r.Get("/tag/{slug}", blog.Tag)
		r.Get("/author/{username}", blog.Author)
		r.Get("/author/{username}/feed", blog.AuthorFeed)

		// Date-prefixed permalinks from the previous platform redirect to
		// the canonical slug form.
		r.Get("/{year:[0-9]{4}}/{month:[0-9]{2}}/{day:[0-9]{2}}/{slug}", blog.DatedArticle)
		r.Get("/{year:[0-9]{4}}/{month:[0-9]{2}}/{slug}", blog.DatedArticle)
		r.Get("/{year:[0-9]{4}}/{slug}", blog.DatedArticle)

		// Group listings share the level below the blog root with article
		// slugs; articles win, so groups get an explicit prefix.
		r.Get("/group/{slug}", blog.Group)
		r.Get("/group/{slug}/feed", blog.GroupFeed)

		r.Get("/{slug}", blog.Article)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
