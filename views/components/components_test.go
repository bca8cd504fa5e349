package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/views/models"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(ctx, &sb))
	return sb.String()
}

func TestPage_WrapsChildren(t *testing.T) {
	ctx := templ.WithChildren(context.Background(), Markup("<p>kid</p>"))
	out := render(t, ctx, Page("A & B", nil))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>A &amp; B</title>")
	assert.Contains(t, out, "<main><p>kid</p></main>")
	assert.Contains(t, out, `<a href="/#contact">Contact</a>`)
}

func TestFlashMessage(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, render(t, ctx, FlashMessage(nil)))
	assert.Equal(t, `<p class="flash" role="status">Saved.</p>`,
		render(t, ctx, FlashMessage(&models.Flash{Text: "Saved."})))
	assert.Equal(t, `<p class="flash flash-error" role="status">&lt;b&gt;bad</p>`,
		render(t, ctx, FlashMessage(&models.Flash{Error: true, Text: "<b>bad"})))
}

func TestLinksRejectScriptURLs(t *testing.T) {
	ctx := context.Background()

	out := render(t, ctx, SocialLinks([]models.SocialLinkView{
		{Name: "Evil", Href: "javascript:alert(1)", Icon: "link"},
		{Name: "GitHub", Href: "https://github.com/me", Icon: "github"},
	}))
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, string(templ.FailedSanitizationURL))
	assert.Contains(t, out, `href="https://github.com/me"`)
	assert.Contains(t, out, `<span class="icon icon-github"></span>GitHub</a>`)

	out = render(t, ctx, ProjectCard(models.ProjectView{ID: "a b", Title: `"Quoted"`, Image: "javascript:alert(2)"}))
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `href="/projects/a%20b"`)
	assert.Contains(t, out, `alt="&#34;Quoted&#34;"`)
}

func TestCategoryFilter_MarksActive(t *testing.T) {
	out := render(t, context.Background(), CategoryFilter("/projects", []models.CategoryView{
		{Name: "Web Design", Count: 2, Active: true},
		{Name: "Branding", Count: 0},
	}, false))

	assert.Contains(t, out, `<a href="/projects">All</a>`)
	assert.Contains(t, out, `<a href="/projects?category=Web+Design" class="active">Web Design <small>2</small></a>`)
	assert.Contains(t, out, `<a href="/projects?category=Branding">Branding <small>0</small></a>`)
}
