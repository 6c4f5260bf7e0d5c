// Package main is the entry point for the pressroom blog server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pressroom/internal/cache"
	"pressroom/internal/config"
	"pressroom/internal/handlers"
	"pressroom/internal/render"
	"pressroom/internal/router"
	"pressroom/internal/views"
	"pressroom/internal/wordpress"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Local .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"api_url", cfg.APIURL,
		"blog_path", cfg.BlogPath,
	)

	// The API client's HTTP transport. When Valkey is reachable, upstream
	// GET responses are cached in it for an hour; without it every render
	// hits the CMS directly.
	httpClient := &http.Client{Timeout: 30 * time.Second}
	var responseCache *cache.ResponseTransport
	if cfg.CacheEnabled {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, responses will not be cached", "error", err)
		} else {
			defer valkeyClient.Close()
			responseCache = cache.NewResponseTransport(valkeyClient, nil, cache.DefaultResponseTTL)
			httpClient.Transport = responseCache
			slog.Info("valkey response cache connected",
				"host", cfg.ValkeyHost,
				"ttl", cache.DefaultResponseTTL.String(),
			)
		}
	}

	// Upstream CMS API client.
	apiOpts := []wordpress.Option{wordpress.WithHTTPClient(httpClient)}
	if cfg.APIUsername != "" {
		apiOpts = append(apiOpts, wordpress.WithBasicAuth(cfg.APIUsername, cfg.APIPassword))
	}
	api := wordpress.New(cfg.APIURL, apiOpts...)

	// View-context builders.
	v := views.New(api, views.Config{
		BlogTitle:        cfg.BlogTitle,
		BlogPath:         cfg.BlogPath,
		FeedDescription:  cfg.FeedDescription,
		PerPage:          cfg.PerPage,
		TagIDs:           cfg.TagIDs,
		ExcludedTags:     cfg.ExcludedTags,
		EventsEnabled:    cfg.EventsEnabled,
		UseImageTemplate: cfg.UseImageTemplate,
		ThumbnailWidth:   cfg.ThumbnailWidth,
		ThumbnailHeight:  cfg.ThumbnailHeight,
		URLRewriteFrom:   cfg.URLRewriteFrom,
		URLRewriteTo:     cfg.URLRewriteTo,
	})

	// Initialize the HTML template renderer for blog pages.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	blogHandlers := handlers.NewBlog(v, renderer)

	// Set up the Chi router with all middleware and routes.
	r := router.New(cfg.BlogPath, blogHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate uncached pages that fan out into several upstream calls.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for signals: SIGHUP flushes the response cache (content was
	// published upstream), SIGINT/SIGTERM drain connections and exit.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	var sig os.Signal
	for sig = range sigs {
		if sig != syscall.SIGHUP {
			break
		}
		if responseCache == nil {
			slog.Info("SIGHUP received but no response cache to flush")
			continue
		}
		slog.Info("SIGHUP received, flushing response cache")
		responseCache.Invalidate(context.Background())
	}
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
