// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Term is a single taxonomy entry. Categories, tags, topics, and groups all
// share this shape upstream; Parent is only meaningful for categories, which
// form a tree that is never traversed recursively here.
type Term struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Parent int    `json:"parent,omitempty"`
}

// IsZero reports whether the term is the empty value, i.e. an absent lookup
// result.
func (t Term) IsZero() bool {
	return t.ID == 0 && t.Name == "" && t.Slug == ""
}
