// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package transform decorates articles for template consumption: human
// readable dates, truncated excerpts, responsive image markup, and the
// flattened embedded author/media/taxonomy fields templates reach for.
package transform

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pressroom/internal/models"
)

const (
	// excerptLimit is the maximum excerpt length in runes before the
	// ellipsis marker is appended.
	excerptLimit = 340

	// ellipsisMarker closes every truncated excerpt.
	ellipsisMarker = " […]"

	dateGMTLayout = "2006-01-02T15:04:05"
)

var tagRe = regexp.MustCompile(`<.*?>`)

// StripHTML removes tags from an HTML string, unescapes entities, and drops
// newlines.
func StripHTML(raw string) string {
	clean := tagRe.ReplaceAllString(raw, "")
	return strings.ReplaceAll(html.UnescapeString(clean), "\n", "")
}

// TruncateExcerpt strips a rendered excerpt down to plain text, cuts it to
// the excerpt limit, scrubs any pre-existing truncation artifacts from the
// boundary, and appends the ellipsis marker. Output length is bounded by
// the limit plus the marker regardless of input length.
func TruncateExcerpt(rendered string) string {
	runes := []rune(StripHTML(rendered))
	if len(runes) > excerptLimit {
		runes = runes[:excerptLimit]
	}

	// The upstream excerpt may already end in part of a "[…]" marker cut
	// mid-way by our truncation; scrub those characters from the last
	// three positions before appending our own.
	cut := max(len(runes)-3, 0)
	tail := string(runes[cut:])
	for _, artifact := range []string{"[", "…", "]"} {
		tail = strings.ReplaceAll(tail, artifact, "")
	}

	return string(runes[:cut]) + tail + ellipsisMarker
}

// FormatDate renders a date_gmt timestamp as "2 January 2006". Returns an
// empty string when the input does not parse.
func FormatDate(gmt string) string {
	t, err := time.Parse(dateGMTLayout, gmt)
	if err != nil {
		return ""
	}
	return t.Format("2 January 2006")
}

// MonthName returns the English month name for a 1-based month index.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// EventDate assembles a "1 June 2024" string from day/month/year meta
// parts. All three parts must be present and the month numeric.
func EventDate(day, month, year string) (string, bool) {
	if day == "" || month == "" || year == "" {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return "", false
	}
	name := MonthName(m)
	if name == "" {
		return "", false
	}
	return fmt.Sprintf("%s %s %s", day, name, year), true
}

// Options configures Decorate.
type Options struct {
	// Group is force-attached when the embedded bundle carries no group
	// terms, keeping group listings coherent.
	Group *models.Term

	// UseImageTemplate rewrites content and thumbnail images to the
	// CDN-templated responsive form.
	UseImageTemplate bool

	// ContentWidth is the default width for content images (720 when zero).
	ContentWidth int

	// ThumbnailWidth and ThumbnailHeight size the featured image
	// (330x185 when zero).
	ThumbnailWidth  int
	ThumbnailHeight int

	// URLRewriteFrom/To replace the upstream media host in content and
	// image URLs, e.g. rewriting the CMS admin host to the public CDN.
	URLRewriteFrom string
	URLRewriteTo   string
}

// Decorate fills an article's template-facing fields in place. It is
// applied to every article before it reaches a template or a feed, in both
// compact and full-embed modes; the synthesized bundle's ordering contract
// makes the two indistinguishable here.
func Decorate(a *models.Article, opts Options) {
	contentWidth := opts.ContentWidth
	if contentWidth == 0 {
		contentWidth = 720
	}
	thumbWidth := opts.ThumbnailWidth
	if thumbWidth == 0 {
		thumbWidth = 330
	}
	thumbHeight := opts.ThumbnailHeight
	if thumbHeight == 0 {
		thumbHeight = 185
	}

	if a.Embedded != nil {
		a.Image = a.Embedded.EmbeddedFeaturedMedia()
		a.AuthorInfo = a.Embedded.EmbeddedAuthor()

		if a.DisplayCategory == nil {
			if cats := a.Embedded.EmbeddedCategories(); len(cats) > 0 {
				a.DisplayCategory = &cats[len(cats)-1]
			}
		}

		if groups := a.Embedded.EmbeddedGroups(); len(groups) > 0 {
			a.GroupTerm = &groups[0]
		} else if opts.Group != nil {
			a.GroupTerm = opts.Group
		}
	}

	if a.DateGMT != "" {
		a.Date = FormatDate(a.DateGMT)
	}

	if a.Excerpt.Rendered != "" {
		a.Excerpt.Raw = TruncateExcerpt(a.Excerpt.Rendered)
	}

	if start, ok := EventDate(a.StartDay, a.StartMonth, a.StartYear); ok {
		a.StartDate = start
	}
	if end, ok := EventDate(a.EndDay, a.EndMonth, a.EndYear); ok {
		a.EndDate = end
	}

	if opts.URLRewriteFrom != "" && a.Content.Rendered != "" {
		a.Content.Rendered = strings.ReplaceAll(a.Content.Rendered, opts.URLRewriteFrom, opts.URLRewriteTo)
	}

	if a.Image != nil && a.Image.SourceURL != "" {
		if opts.URLRewriteFrom != "" {
			a.Image.SourceURL = strings.ReplaceAll(a.Image.SourceURL, opts.URLRewriteFrom, opts.URLRewriteTo)
		}
		a.Image.Rendered = `<img src="` + a.Image.SourceURL + `" loading="lazy">`
	}

	if opts.UseImageTemplate {
		if a.Content.Rendered != "" {
			if templated, err := TemplateImages(a.Content.Rendered, contentWidth, 0, false); err == nil {
				a.Content.Rendered = templated
			}
		}
		if a.Image != nil && a.Image.Rendered != "" {
			if templated, err := TemplateImages(a.Image.Rendered, thumbWidth, thumbHeight, true); err == nil {
				a.Image.Rendered = templated
			}
		}
	}
}

// DecorateAll applies Decorate to every article in a slice.
func DecorateAll(articles []models.Article, opts Options) {
	for i := range articles {
		Decorate(&articles[i], opts)
	}
}
