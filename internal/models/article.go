// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the WordPress REST resources Pressroom consumes.
// All types are read-only snapshots of upstream state: articles are created
// and edited in the remote CMS, Pressroom only fetches and decorates
// in-memory copies per request.
package models

// Rendered is a WordPress raw/rendered field pair. The API only sends
// Rendered; Raw is filled locally by the excerpt transform.
type Rendered struct {
	Raw      string `json:"raw,omitempty"`
	Rendered string `json:"rendered"`
}

// Article is a single post from the upstream CMS. Fields up to Embedded map
// directly onto the WordPress REST shape. The fields after the divider are
// never sent by the API — they are populated by the transform layer before
// an article reaches a template.
type Article struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	DateGMT       string   `json:"date_gmt"`
	ModifiedGMT   string   `json:"modified_gmt"`
	Title         Rendered `json:"title"`
	Excerpt       Rendered `json:"excerpt"`
	Content       Rendered `json:"content"`
	Author        int      `json:"author"`
	FeaturedMedia int      `json:"featured_media"`
	Categories    []int    `json:"categories"`
	Tags          []int    `json:"tags"`
	GroupIDs      []int    `json:"group"`
	Sticky        bool     `json:"sticky"`

	// Event-style posts carry their start/end date parts as string meta
	// fields. All three parts must be present for a date to be built.
	StartDay   string `json:"_start_day,omitempty"`
	StartMonth string `json:"_start_month,omitempty"`
	StartYear  string `json:"_start_year,omitempty"`
	EndDay     string `json:"_end_day,omitempty"`
	EndMonth   string `json:"_end_month,omitempty"`
	EndYear    string `json:"_end_year,omitempty"`

	Embedded *Embedded `json:"_embedded,omitempty"`

	// Decorated fields, filled by transform.Decorate.
	Date            string `json:"date,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Image           *Media `json:"image,omitempty"`
	AuthorInfo      *User  `json:"author_info,omitempty"`
	DisplayCategory *Term  `json:"display_category,omitempty"`
	GroupTerm       *Term  `json:"group_term,omitempty"`
}

// Pagination carries the listing metadata the CMS returns in the
// X-WP-TotalPages and X-WP-Total response headers, coerced to integers.
type Pagination struct {
	TotalPages int `json:"total_pages"`
	TotalPosts int `json:"total_posts"`
}
