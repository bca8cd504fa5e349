package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/content"
	"portfolio/internal/kv"
)

func newTestRepo(t *testing.T) *content.Repo {
	t.Helper()
	repo := content.NewRepo(kv.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, repo.Load(context.Background()))
	return repo
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestNewServer(t *testing.T) {
	srv := NewServer(newTestRepo(t))
	require.NotNil(t, srv)
}

func TestListProjects(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("all", func(t *testing.T) {
		result := call(t, handleListProjects(repo), map[string]any{})
		require.False(t, result.IsError)
		var projects []content.Project
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &projects))
		assert.Len(t, projects, len(content.DefaultProjects()))
	})

	t.Run("by category", func(t *testing.T) {
		result := call(t, handleListProjects(repo), map[string]any{"category": "Illustration"})
		var projects []content.Project
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &projects))
		require.Len(t, projects, 1)
		assert.Equal(t, "city-of-glass", projects[0].ID)
	})
}

func TestGetProject(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("found", func(t *testing.T) {
		result := call(t, handleGetProject(repo), map[string]any{"id": "northwind-coffee"})
		require.False(t, result.IsError)
		var got ProjectResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &got))
		assert.Equal(t, "Northwind Coffee", got.Title)
		assert.Contains(t, got.DetailHTML, "<p>")
	})

	t.Run("missing id", func(t *testing.T) {
		result := call(t, handleGetProject(repo), map[string]any{})
		assert.True(t, result.IsError)
	})

	t.Run("unknown id", func(t *testing.T) {
		result := call(t, handleGetProject(repo), map[string]any{"id": "ghost"})
		assert.True(t, result.IsError)
	})
}

func TestSectionTools(t *testing.T) {
	repo := newTestRepo(t)

	var usage []content.CategoryUsage
	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, handleListCategories(repo), nil))), &usage))
	assert.Len(t, usage, len(content.DefaultCategories()))

	var about content.About
	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, handleGetAbout(repo), nil))), &about))
	assert.Equal(t, content.DefaultAbout(), about)

	var contact ContactResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, call(t, handleGetContact(repo), nil))), &contact))
	assert.Equal(t, content.DefaultContact(), contact.Contact)
	assert.Equal(t, content.DefaultSocialLinks(), contact.SocialLinks)
}
