// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package wordpress is the REST client for the upstream CMS. It builds
// query strings, paginates, batches related-entity lookups through the
// include parameter, and synthesizes compact _embedded bundles for list
// views. The client is read-only: it never writes to the CMS.
package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"pressroom/internal/models"
)

// APIError is returned for any non-2xx upstream response. The route layer
// maps it to a 502-equivalent; it is never used for empty result sets.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress: status %d from %s", e.StatusCode, e.URL)
}

// Client talks to a WordPress-shaped REST API rooted at apiURL
// (e.g. https://cms.example.com/wp-json/wp/v2).
type Client struct {
	apiURL   string
	username string
	password string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBasicAuth attaches HTTP basic auth credentials to every request.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithHTTPClient replaces the default HTTP client. Used to inject the
// Valkey-backed response cache transport, and by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client for the given API base URL.
func New(apiURL string, opts ...Option) *Client {
	c := &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// params is a loosely typed query parameter set. Values may be string, int,
// bool pointers, time.Time, or int/string slices; empty values are dropped
// and slices are comma-joined, mirroring the upstream query conventions.
type params map[string]any

// encode converts params into url.Values, dropping empty values. When embed
// is true an _embed=true parameter is added; a non-empty fields list becomes
// a comma-joined _fields parameter.
func (p params) encode(embed bool, fields []string) url.Values {
	values := url.Values{}
	for key, raw := range p {
		switch v := raw.(type) {
		case nil:
		case string:
			if v != "" {
				values.Set(key, v)
			}
		case int:
			if v != 0 {
				values.Set(key, strconv.Itoa(v))
			}
		case *bool:
			if v != nil {
				values.Set(key, strconv.FormatBool(*v))
			}
		case time.Time:
			if !v.IsZero() {
				values.Set(key, v.Format("2006-01-02T15:04:05"))
			}
		case []int:
			if len(v) > 0 {
				values.Set(key, joinInts(v))
			}
		case []string:
			if joined := strings.Join(nonEmpty(v), ","); joined != "" {
				values.Set(key, joined)
			}
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	if len(fields) > 0 {
		values.Set("_fields", strings.Join(fields, ","))
	}
	if embed {
		values.Set("_embed", "true")
	}
	return values
}

// joinInts renders a comma-joined ID list.
func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// request issues a GET against an API endpoint and returns the raw response.
// Any non-2xx status is converted into an *APIError after draining the body.
func (c *Client) request(ctx context.Context, endpoint string, p params, embed bool, fields []string) (*http.Response, error) {
	reqURL := c.apiURL + "/" + strings.TrimLeft(endpoint, "/")
	if query := p.encode(embed, fields).Encode(); query != "" {
		reqURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wordpress request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	if c.username != "" && c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordpress http: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	return resp, nil
}

// getJSON performs a request and decodes the JSON body into v, returning the
// response headers for pagination metadata.
func (c *Client) getJSON(ctx context.Context, endpoint string, p params, embed bool, fields []string, v any) (http.Header, error) {
	resp, err := c.request(ctx, endpoint, p, embed, fields)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return nil, fmt.Errorf("wordpress decode %s: %w", endpoint, err)
	}
	return resp.Header, nil
}

// getFirst fetches a filtered listing and returns its first item. An empty
// result set is not an error: the second return is false and the first is
// the zero value. This is the single not-found convention used across the
// whole client.
func getFirst[T any](ctx context.Context, c *Client, endpoint string, p params, embed bool, fields []string) (T, bool, error) {
	var items []T
	if _, err := c.getJSON(ctx, endpoint, p, embed, fields, &items); err != nil {
		var zero T
		return zero, false, err
	}
	if len(items) == 0 {
		var zero T
		return zero, false, nil
	}
	return items[0], true, nil
}

// getOne fetches a single resource by its ID path (e.g. tags/42). A 404 is
// folded into the not-found convention rather than surfaced as an APIError.
func getOne[T any](ctx context.Context, c *Client, endpoint string, fields []string) (T, bool, error) {
	var item T
	_, err := c.getJSON(ctx, endpoint, nil, false, fields, &item)
	if err != nil {
		var zero T
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return zero, false, nil
		}
		return zero, false, err
	}
	return item, true, nil
}

// pagination reads the listing metadata headers, coercing the string values
// to integers. Missing or malformed headers yield zero counts.
func pagination(h http.Header) models.Pagination {
	var p models.Pagination
	p.TotalPages, _ = strconv.Atoi(h.Get("X-WP-TotalPages"))
	p.TotalPosts, _ = strconv.Atoi(h.Get("X-WP-Total"))
	return p
}

// sortedKeys returns the sorted keys of an int-keyed set. Used to keep bulk
// requests deterministic.
func sortedKeys[T any](m map[int]T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
