// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"reflect"
	"testing"
)

// clearEnv blanks every variable Load reads so host environment values
// cannot leak into a test. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"BLOG_API_URL", "BLOG_API_USERNAME", "BLOG_API_PASSWORD",
		"BLOG_TITLE", "BLOG_PATH", "BLOG_FEED_DESCRIPTION",
		"BLOG_TAG_IDS", "BLOG_EXCLUDED_TAG_IDS", "BLOG_PER_PAGE",
		"BLOG_EVENTS_ENABLED", "BLOG_IMAGE_TEMPLATE",
		"BLOG_THUMBNAIL_WIDTH", "BLOG_THUMBNAIL_HEIGHT",
		"BLOG_URL_REWRITE_FROM", "BLOG_URL_REWRITE_TO",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "CACHE_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLOG_API_URL", "https://cms.example.com/wp-json/wp/v2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Errorf("Addr defaults = %s:%s, want 0.0.0.0:8080", cfg.Host, cfg.Port)
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.BlogTitle != "Blog" || cfg.BlogPath != "blog" {
		t.Errorf("blog identity = %q/%q, want Blog/blog", cfg.BlogTitle, cfg.BlogPath)
	}
	if cfg.PerPage != 12 {
		t.Errorf("PerPage = %d, want 12", cfg.PerPage)
	}
	if cfg.EventsEnabled {
		t.Error("EventsEnabled = true, want false by default")
	}
	if !cfg.UseImageTemplate {
		t.Error("UseImageTemplate = false, want true by default")
	}
	if cfg.ThumbnailWidth != 330 || cfg.ThumbnailHeight != 185 {
		t.Errorf("thumbnail = %dx%d, want 330x185", cfg.ThumbnailWidth, cfg.ThumbnailHeight)
	}
	if cfg.TagIDs != nil || cfg.ExcludedTags != nil {
		t.Errorf("tag filters = %v/%v, want empty", cfg.TagIDs, cfg.ExcludedTags)
	}
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled = false, want true by default")
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
}

func TestLoad_RequiresAPIURL(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil with BLOG_API_URL unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLOG_API_URL", "https://cms.example.com/wp-json/wp/v2")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BLOG_TITLE", "Example Blog")
	t.Setenv("BLOG_TAG_IDS", "99, 100")
	t.Setenv("BLOG_PER_PAGE", "20")
	t.Setenv("BLOG_EVENTS_ENABLED", "true")
	t.Setenv("CACHE_ENABLED", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.IsDev() {
		t.Error("IsDev() = true with APP_ENV=production")
	}
	if cfg.BlogTitle != "Example Blog" {
		t.Errorf("BlogTitle = %q, want Example Blog", cfg.BlogTitle)
	}
	if !reflect.DeepEqual(cfg.TagIDs, []int{99, 100}) {
		t.Errorf("TagIDs = %v, want [99 100]", cfg.TagIDs)
	}
	if cfg.PerPage != 20 {
		t.Errorf("PerPage = %d, want 20", cfg.PerPage)
	}
	if !cfg.EventsEnabled {
		t.Error("EventsEnabled = false, want true")
	}
	if cfg.CacheEnabled {
		t.Error("CacheEnabled = true, want false with CACHE_ENABLED=0")
	}
}

func TestEnvInts_SkipsMalformed(t *testing.T) {
	t.Setenv("TEST_IDS", "1, two, 3,, 4x, 5")

	got := envInts("TEST_IDS")
	if !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("envInts = %v, want [1 3 5]", got)
	}
}

func TestEnvInt_Malformed(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")

	if got := envInt("TEST_INT", 7); got != 7 {
		t.Errorf("envInt = %d, want fallback 7", got)
	}
}
