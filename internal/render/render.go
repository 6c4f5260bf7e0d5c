// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public blog
// pages. Each page template is paired with the base layout and parsed once
// at startup from the embedded filesystem.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"embed"
)

//go:embed templates/blog/*.html
var blogFS embed.FS

// Renderer handles template parsing and execution for blog pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all blog templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// safeHTML marks upstream-rendered markup as trusted. The CMS
			// sanitizes content before it reaches us.
			"safeHTML": func(s string) template.HTML {
				return template.HTML(s)
			},
			"inc": func(n int) int { return n + 1 },
			"dec": func(n int) int { return n - 1 },
			// join renders a term slice as a comma separated name list.
			"joinNames": func(names []string) string {
				return strings.Join(names, ", ")
			},
		},
	}

	entries, err := blogFS.ReadDir("templates/blog")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := filepath.Base(e.Name())
		if name == "base.html" {
			continue
		}

		tmplName := name[:len(name)-len(".html")]

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			blogFS, "templates/blog/base.html", "templates/blog/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a blog page into the response. The template executes into a
// buffer first so a failed render never sends a partial body.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data any) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
