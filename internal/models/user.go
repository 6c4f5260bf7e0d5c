// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// User is an article author. Fetched by ID (embedding) or by username slug
// (author pages).
type User struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description,omitempty"`
	AvatarURLs  map[string]string `json:"avatar_urls,omitempty"`
	JobTitle    string            `json:"user_job_title,omitempty"`
	Twitter     string            `json:"user_twitter,omitempty"`
	Facebook    string            `json:"user_facebook,omitempty"`
}
