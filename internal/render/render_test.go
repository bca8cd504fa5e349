package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/content"
)

func TestSanitize_StripsImageAndHandlers(t *testing.T) {
	out := Sanitize(`<img src=x onerror=alert(1)>Hello`)
	assert.NotContains(t, out, "img")
	assert.NotContains(t, out, "onerror")
	assert.Contains(t, out, "Hello")
}

func TestSanitize_PlainText(t *testing.T) {
	out := Sanitize("Line one\nLine two")
	assert.Regexp(t, `^<p>Line one<br/?>Line two</p>$`, out)

	out = Sanitize("Tom & Jerry > cats\r\nsecond")
	assert.Contains(t, out, "Tom &amp; Jerry &gt; cats")
	assert.Regexp(t, `cats<br/?>second`, out)
	assert.Equal(t, 1, strings.Count(out, "<p>"))
}

func TestSanitize_HTML(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains []string
		absent   []string
	}{
		{
			name:     "script removed with its body",
			in:       `<p>Hi</p><script>alert(1)</script>`,
			contains: []string{"<p>Hi</p>"},
			absent:   []string{"script", "alert"},
		},
		{
			name:     "javascript url dropped",
			in:       `<a href="javascript:alert(1)">click</a>`,
			contains: []string{"click"},
			absent:   []string{"javascript"},
		},
		{
			name:     "safe link kept",
			in:       `<a href="https://example.com" target="_blank" rel="noopener">site</a>`,
			contains: []string{`href="https://example.com"`, `target="_blank"`, `rel="noopener"`, "site</a>"},
		},
		{
			name:     "event attribute stripped",
			in:       `<p onclick="steal()" class="x">text</p>`,
			contains: []string{"<p>text</p>"},
			absent:   []string{"onclick", "class"},
		},
		{
			name:     "disallowed heading unwrapped",
			in:       `<h1>Title</h1><h2>Sub</h2>`,
			contains: []string{"Title", "<h2>Sub</h2>"},
			absent:   []string{"<h1>"},
		},
		{
			name:     "lists and emphasis kept",
			in:       `<ul><li><strong>a</strong></li><li><em>b</em> <s>c</s></li></ul>`,
			contains: []string{"<ul>", "<li><strong>a</strong></li>", "<em>b</em>", "<s>c</s>"},
		},
		{
			name:   "iframe and style removed",
			in:     `<iframe src="https://evil"></iframe><style>body{}</style><p>ok</p>`,
			absent: []string{"iframe", "style", "body{}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Sanitize(tt.in)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestDetail_FallsBackToDescription(t *testing.T) {
	out := Detail(content.Project{Description: "Short"})
	assert.Equal(t, "<p>Short</p>", out)

	out = Detail(content.Project{Description: "Short", DetailDescription: "<h3>Long</h3>"})
	assert.Equal(t, "<h3>Long</h3>", out)
}

func TestParagraphs(t *testing.T) {
	out := Paragraphs("First para.\n\nSecond *para*.")
	assert.Contains(t, out, "<p>First para.</p>")
	assert.Contains(t, out, "<em>para</em>")

	out = Paragraphs("Hi\n\n<script>alert(1)</script>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")

	assert.Empty(t, Paragraphs("   "))
}
