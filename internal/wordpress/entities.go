// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"fmt"

	"pressroom/internal/models"
)

// Slug lookups share the first-item-or-absent pattern: fetch with an exact
// slug filter and take the first result. ID lookups hit the resource path
// directly. Both fold "not found" into a false boolean.

// GetTagBySlug looks up a tag by its slug.
func (c *Client) GetTagBySlug(ctx context.Context, slug string) (models.Term, bool, error) {
	return getFirst[models.Term](ctx, c, "tags", params{"slug": slug}, false, tagFields)
}

// GetTagByName searches tags by name and returns the first match.
func (c *Client) GetTagByName(ctx context.Context, name string) (models.Term, bool, error) {
	return getFirst[models.Term](ctx, c, "tags", params{"search": name}, false, tagFields)
}

// GetTagByID fetches a single tag.
func (c *Client) GetTagByID(ctx context.Context, id int) (models.Term, bool, error) {
	return getOne[models.Term](ctx, c, fmt.Sprintf("tags/%d", id), tagFields)
}

// GetCategoryBySlug looks up a category by its slug.
func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (models.Term, bool, error) {
	return getFirst[models.Term](ctx, c, "categories", params{"slug": slug}, false, categoryFields)
}

// GetCategoryByID fetches a single category.
func (c *Client) GetCategoryByID(ctx context.Context, id int) (models.Term, bool, error) {
	return getOne[models.Term](ctx, c, fmt.Sprintf("categories/%d", id), categoryFields)
}

// GetCategories returns the first hundred categories. The upstream taxonomy
// is small enough that a single page covers it.
func (c *Client) GetCategories(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	_, err := c.getJSON(ctx, "categories", params{"per_page": 100}, false, categoryFields, &terms)
	return terms, err
}

// GetGroupBySlug looks up a group by its slug.
func (c *Client) GetGroupBySlug(ctx context.Context, slug string) (models.Term, bool, error) {
	return getFirst[models.Term](ctx, c, "group", params{"slug": slug}, false, groupFields)
}

// GetGroupByID fetches a single group.
func (c *Client) GetGroupByID(ctx context.Context, id int) (models.Term, bool, error) {
	return getOne[models.Term](ctx, c, fmt.Sprintf("group/%d", id), groupFields)
}

// GetUserByUsername looks up an author by username slug.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	return getFirst[models.User](ctx, c, "users", params{"slug": username}, false, userFields)
}

// GetUserByID fetches a single author.
func (c *Client) GetUserByID(ctx context.Context, id int) (models.User, bool, error) {
	return getOne[models.User](ctx, c, fmt.Sprintf("users/%d", id), userFields)
}

// GetMedia fetches a single media record.
func (c *Client) GetMedia(ctx context.Context, id int) (models.Media, bool, error) {
	return getOne[models.Media](ctx, c, fmt.Sprintf("media/%d", id), mediaFields)
}
