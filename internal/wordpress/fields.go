// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

// Field selections sent through the _fields parameter. Keeping these small
// is what makes compact mode worthwhile: list payloads carry IDs for joins
// plus display basics, detail payloads add the rendered content.

var categoryFields = []string{"id", "name", "slug", "parent"}

var tagFields = []string{"id", "name", "slug"}

var groupFields = []string{"id", "name", "slug"}

var userFields = []string{
	"id",
	"name",
	"slug",
	"description",
	"avatar_urls",
	"user_job_title",
	"user_twitter",
	"user_facebook",
}

var mediaFields = []string{"id", "source_url", "media_details"}

// commonPostFields are shared across detail and list views.
var commonPostFields = []string{
	"id",
	"slug",
	"date_gmt",
	"modified_gmt",
	"categories",
	"tags",
	"_start_day",
	"_start_month",
	"_start_year",
	"_end_day",
	"_end_month",
	"_end_year",
	"author",
	"sticky",
	"title.rendered",
	"excerpt.rendered",
	"group",
}

// listPostFields is the very small field set for listings: IDs for the
// embedding synthesizer plus display basics.
var listPostFields = append(append([]string{}, commonPostFields...),
	"featured_media",
)

// detailPostFields is the fuller set for article pages, relying on native
// embedding instead of synthesis.
var detailPostFields = append(append([]string{}, commonPostFields...),
	"content.rendered",
	"_links",
	"_embedded",
)

// feedPostFields adds the rendered content needed for RSS bodies on top of
// the list set.
var feedPostFields = append(append([]string{}, listPostFields...),
	"content.rendered",
)

// FeedFields returns the field selection for feed queries, which need the
// rendered content on top of the compact list set.
func FeedFields() []string {
	return append([]string{}, feedPostFields...)
}
