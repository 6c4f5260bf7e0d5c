// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Media is a featured image record. Rendered is never sent by the API; the
// transform layer fills it with a ready-to-embed <img> tag.
type Media struct {
	ID           int          `json:"id"`
	SourceURL    string       `json:"source_url"`
	MediaDetails MediaDetails `json:"media_details"`

	Rendered string `json:"rendered,omitempty"`
}

// MediaDetails carries the intrinsic dimensions of an image.
type MediaDetails struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}
