// ABOUTME: Template loading, rendering, and FuncMap for the public site and admin pages.
// ABOUTME: Provides TemplateRenderer that parses pages + partials once from an embedded FS.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"
)

// TemplateRenderer loads and renders HTML templates. Templates are parsed
// once at construction and reused for each request.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRendererFromFS parses all page and partial templates from the
// given filesystem (expects templates/*.html and templates/partials/*.html).
func NewTemplateRendererFromFS(fsys fs.FS) (*TemplateRenderer, error) {
	tmpl := template.New("").Funcs(buildFuncMap())

	tmpl, err := tmpl.ParseFS(fsys, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &TemplateRenderer{templates: tmpl}, nil
}

// Render executes a named page template and writes the result to w.
func (r *TemplateRenderer) Render(w http.ResponseWriter, templateName string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.templates.ExecuteTemplate(w, templateName, data); err != nil {
		http.Error(w, fmt.Sprintf("template render error: %v", err), http.StatusInternalServerError)
	}
}

// buildFuncMap creates the template FuncMap with helper functions.
func buildFuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": markdownToHTML,
		"safeHTML": safeHTML,
		"dict":     dict,
		"year":     func() int { return time.Now().Year() },
		"navHref":  navHref,
	}
}

// navHref roots fragment-only links at the home page so they work from any
// page, not just the landing page.
func navHref(href string) string {
	if strings.HasPrefix(href, "#") {
		return "/" + href
	}
	return href
}

// markdownToHTML converts a markdown string to HTML using goldmark.
// Raw HTML in the input is stripped to prevent XSS.
func markdownToHTML(input string) template.HTML {
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}

// safeHTML marks a string as safe HTML, preventing double-escaping.
func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

// dict creates a map[string]any from alternating key-value pairs for passing
// multiple values into sub-templates.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments (%d)", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key at position %d is not a string", i)
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
