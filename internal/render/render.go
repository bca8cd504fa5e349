// Package render turns author-supplied text into HTML that is safe to
// inject into a page. Every piece of author content rendered as markup
// goes through Sanitize and its one allow-list.
package render

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"portfolio/internal/content"
)

var (
	// AllowedTags are the only elements that survive sanitizing.
	AllowedTags = []string{"p", "br", "strong", "b", "em", "i", "s", "a", "ul", "ol", "li", "h2", "h3"}
	// AllowedAttrs are the only attributes that survive, and only on links.
	AllowedAttrs = []string{"href", "target", "rel"}
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedTags...)
	p.AllowAttrs(AllowedAttrs...).OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.AllowRelativeURLs(true)
	return p
}

var md = goldmark.New()

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Sanitize returns HTML safe for direct injection. Input containing a '<'
// is treated as HTML and filtered through the allow-list. Anything else is
// plain text: it is escaped, newlines become <br/>, and the result is
// wrapped in a single paragraph.
func Sanitize(raw string) string {
	html := raw
	if !strings.Contains(raw, "<") {
		text := strings.ReplaceAll(raw, "\r\n", "\n")
		html = "<p>" + strings.ReplaceAll(htmlEscaper.Replace(text), "\n", "<br/>") + "</p>"
	}
	return policy.Sanitize(html)
}

// Detail renders a project's long description, falling back to its short
// description.
func Detail(p content.Project) string {
	raw := p.DetailDescription
	if raw == "" {
		raw = p.Description
	}
	return Sanitize(raw)
}

// Paragraphs renders blank-line separated text, such as the about body,
// as paragraphs. Markdown emphasis and links are honored; goldmark drops
// raw HTML and the output is still filtered by Sanitize.
func Paragraphs(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Sanitize(body)
	}
	return Sanitize(buf.String())
}
