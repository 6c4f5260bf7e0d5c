// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Upstream CMS API
	APIURL      string
	APIUsername string
	APIPassword string

	// Blog identity and filtering
	BlogTitle       string
	BlogPath        string
	FeedDescription string
	TagIDs          []int // allow list: every listing query carries these
	ExcludedTags    []int
	PerPage         int
	EventsEnabled   bool

	// Image and link rewriting
	UseImageTemplate bool
	ThumbnailWidth   int
	ThumbnailHeight  int
	URLRewriteFrom   string
	URLRewriteTo     string

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	CacheEnabled   bool
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		APIURL:      os.Getenv("BLOG_API_URL"),
		APIUsername: os.Getenv("BLOG_API_USERNAME"),
		APIPassword: os.Getenv("BLOG_API_PASSWORD"),

		BlogTitle:       envOrDefault("BLOG_TITLE", "Blog"),
		BlogPath:        envOrDefault("BLOG_PATH", "blog"),
		FeedDescription: os.Getenv("BLOG_FEED_DESCRIPTION"),
		TagIDs:          envInts("BLOG_TAG_IDS"),
		ExcludedTags:    envInts("BLOG_EXCLUDED_TAG_IDS"),
		PerPage:         envInt("BLOG_PER_PAGE", 12),
		EventsEnabled:   envBool("BLOG_EVENTS_ENABLED", false),

		UseImageTemplate: envBool("BLOG_IMAGE_TEMPLATE", true),
		ThumbnailWidth:   envInt("BLOG_THUMBNAIL_WIDTH", 330),
		ThumbnailHeight:  envInt("BLOG_THUMBNAIL_HEIGHT", 185),
		URLRewriteFrom:   os.Getenv("BLOG_URL_REWRITE_FROM"),
		URLRewriteTo:     os.Getenv("BLOG_URL_REWRITE_TO"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		CacheEnabled:   envBool("CACHE_ENABLED", true),
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("BLOG_API_URL must be set")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt reads an integer environment variable, returning a fallback if
// unset or malformed.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envInts reads a comma separated list of integers, skipping entries that
// do not parse.
func envInts(key string) []int {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// envBool reads a boolean environment variable ("true"/"false", "1"/"0"),
// returning a fallback if unset or malformed.
func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
