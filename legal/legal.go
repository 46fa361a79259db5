// ABOUTME: Renders the embedded legal markdown documents into styled standalone HTML.
// ABOUTME: Serves /legal/* pages and backs the one-shot `familybond legal` command.
package legal

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed docs/*.md
var docsFS embed.FS

// Document names one embedded legal document.
type Document struct {
	Slug  string // URL path segment and output file stem
	Title string
	input string // path inside docsFS
}

// Documents lists every legal document in publication order.
var Documents = []Document{
	{Slug: "privacy-policy", Title: "Privacy Policy", input: "docs/privacy-policy.md"},
	{Slug: "terms-of-service", Title: "Terms of Service", input: "docs/terms-of-service.md"},
}

// BySlug returns the document with the given slug.
func BySlug(slug string) (Document, bool) {
	for _, doc := range Documents {
		if doc.Slug == slug {
			return doc, true
		}
	}
	return Document{}, false
}

// pageStyle keeps the rendered documents readable on screen and in print.
const pageStyle = `body{font-family:Georgia,serif;max-width:44rem;margin:2rem auto;padding:0 1.5rem;color:#1f2937;line-height:1.6}
h1{font-size:1.8rem;border-bottom:2px solid #02B1C5;padding-bottom:.5rem}
h2{font-size:1.25rem;margin-top:2rem}
h3{font-size:1.05rem;margin-top:1.5rem}
a{color:#02B1C5}
@media print{body{margin:0;max-width:none}a{color:inherit;text-decoration:none}}`

var pageTemplate = template.Must(template.New("legal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} — Family Bond Australia</title>
<style>{{.Style}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderHTML converts one document's markdown into a self-contained HTML page.
func RenderHTML(doc Document) ([]byte, error) {
	source, err := docsFS.ReadFile(doc.input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", doc.input, err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("convert %s: %w", doc.input, err)
	}

	var page bytes.Buffer
	err = pageTemplate.Execute(&page, struct {
		Title string
		Style template.CSS
		Body  template.HTML
	}{
		Title: doc.Title,
		Style: template.CSS(pageStyle),
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.Slug, err)
	}
	return page.Bytes(), nil
}

// Generate writes every document as <slug>.html under outDir.
func Generate(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, doc := range Documents {
		page, err := RenderHTML(doc)
		if err != nil {
			return err
		}
		outPath := filepath.Join(outDir, doc.Slug+".html")
		if err := os.WriteFile(outPath, page, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return nil
}
