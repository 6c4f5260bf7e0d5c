// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Term slot positions inside Embedded.Terms. WordPress always orders the
// wp:term array as [category, post_tag, topic, group]; locally synthesized
// bundles follow the same convention so downstream code is mode-agnostic.
const (
	TermSlotCategory = 0
	TermSlotTag      = 1
	TermSlotTopic    = 2
	TermSlotGroup    = 3
)

// Embedded is the per-article bundle of related resources. It is either
// returned natively by the CMS (_embed=true, detail views) or synthesized
// locally from bulk lookups (list views). Author and FeaturedMedia are
// omitted entirely when the referenced resource did not resolve, so callers
// must handle both an absent key and an empty list.
type Embedded struct {
	Author        []User   `json:"author,omitempty"`
	FeaturedMedia []Media  `json:"wp:featuredmedia,omitempty"`
	Terms         [][]Term `json:"wp:term,omitempty"`
}

// termSlot returns the terms at a wp:term position, tolerating short or
// missing arrays from partially embedded responses.
func (e *Embedded) termSlot(slot int) []Term {
	if e == nil || slot >= len(e.Terms) {
		return nil
	}
	return e.Terms[slot]
}

// EmbeddedCategories returns the category terms of the bundle.
func (e *Embedded) EmbeddedCategories() []Term { return e.termSlot(TermSlotCategory) }

// EmbeddedTags returns the tag terms of the bundle.
func (e *Embedded) EmbeddedTags() []Term { return e.termSlot(TermSlotTag) }

// EmbeddedGroups returns the group terms of the bundle.
func (e *Embedded) EmbeddedGroups() []Term { return e.termSlot(TermSlotGroup) }

// EmbeddedAuthor returns the first embedded author, or nil.
func (e *Embedded) EmbeddedAuthor() *User {
	if e == nil || len(e.Author) == 0 {
		return nil
	}
	return &e.Author[0]
}

// EmbeddedFeaturedMedia returns the first embedded featured image, or nil.
func (e *Embedded) EmbeddedFeaturedMedia() *Media {
	if e == nil || len(e.FeaturedMedia) == 0 {
		return nil
	}
	return &e.FeaturedMedia[0]
}
