// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cloudinaryBase is the CDN fetch prefix images are routed through for
// on-the-fly resizing and format negotiation.
const cloudinaryBase = "https://res.cloudinary.com/canonical/image/fetch"

// fetchURL builds a CDN fetch URL for a source image with the given
// transformation options.
func fetchURL(options, src string) string {
	return cloudinaryBase + "/" + options + "/" + src
}

// imageOptions renders the CDN transformation segment for a width/height
// pair. Height zero means "width only".
func imageOptions(width, height int, eSharpen bool) string {
	parts := []string{"q_auto", "f_auto", "fl_sanitize", "c_fill"}
	if eSharpen {
		parts = append(parts, "e_sharpen")
	}
	parts = append(parts, fmt.Sprintf("w_%d", width))
	if height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", height))
	}
	return strings.Join(parts, ",")
}

// TemplateImages rewrites every <img> in an HTML fragment to load through
// the CDN with explicit dimensions, a hi-def 2x srcset, and lazy loading.
// Width/height attributes already on a tag take precedence over the
// defaults. Images without an absolute http(s) src are left untouched.
func TemplateImages(content string, width, height int, eSharpen bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || !strings.Contains(src, "http") {
			return
		}

		imgWidth := attrInt(img, "width", width)
		imgHeight := attrInt(img, "height", height)

		img.SetAttr("src", fetchURL(imageOptions(imgWidth, imgHeight, eSharpen), src))
		img.SetAttr("srcset", strings.Join([]string{
			fetchURL(imageOptions(imgWidth, imgHeight, eSharpen), src) + " 1x",
			fetchURL(imageOptions(imgWidth*2, imgHeight*2, eSharpen), src) + " 2x",
		}, ", "))
		img.SetAttr("width", strconv.Itoa(imgWidth))
		if imgHeight > 0 {
			img.SetAttr("height", strconv.Itoa(imgHeight))
		}
		img.SetAttr("loading", "lazy")
		img.SetAttr("decoding", "async")
	})

	// goquery wraps fragments in html/body; return only the body content.
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serialize content: %w", err)
	}
	return out, nil
}

// attrInt reads a numeric attribute, falling back when absent or not a
// plain integer.
func attrInt(s *goquery.Selection, name string, fallback int) int {
	v, ok := s.Attr(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
