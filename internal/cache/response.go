// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for upstream API responses.
// Successful GET responses are stored by full request URL so repeated page
// renders within the TTL skip the round trip to the CMS entirely. Cache
// failures always degrade to a live fetch; the cache can slow a request
// down, never fail it.
package cache

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached responses.
	responseKeyPrefix = "api:"

	// DefaultResponseTTL is how long an upstream response stays cached.
	DefaultResponseTTL = time.Hour
)

// ResponseTransport is an http.RoundTripper that serves upstream GET
// responses from Valkey when possible.
type ResponseTransport struct {
	base   http.RoundTripper
	client *redis.Client
	ttl    time.Duration
}

// NewResponseTransport wraps base (http.DefaultTransport when nil) with the
// Valkey response cache.
func NewResponseTransport(client *redis.Client, base http.RoundTripper, ttl time.Duration) *ResponseTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseTransport{base: base, client: client, ttl: ttl}
}

// RoundTrip serves a cached response on hit and stores fresh 2xx responses
// on miss. Non-GET requests and non-2xx responses pass through uncached.
func (t *ResponseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}

	key := responseKeyPrefix + req.URL.String()
	ctx := req.Context()

	if cached, ok := t.get(ctx, key); ok {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(cached)), req)
		if err == nil {
			return resp, nil
		}
		slog.Warn("response cache decode error", "key", key, "error", err)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		// DumpResponse reads and replaces the body, so resp stays usable.
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			t.set(ctx, key, dump)
		}
	}

	return resp, nil
}

func (t *ResponseTransport) get(ctx context.Context, key string) ([]byte, bool) {
	val, err := t.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

func (t *ResponseTransport) set(ctx context.Context, key string, data []byte) {
	if err := t.client.Set(ctx, key, data, t.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes every cached response by scanning for the prefix.
// Used when upstream content is known to have changed.
func (t *ResponseTransport) Invalidate(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := t.client.Scan(ctx, cursor, responseKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := t.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache fully cleared", "deleted", deleted)
	}
}
