package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio/internal/content"
	"portfolio/internal/render"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with read-only tools over the site content
func NewServer(repo *content.Repo) *server.MCPServer {
	s := server.NewMCPServer(
		"Portfolio",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_projects - Projects, optionally in one category
	s.AddTool(
		mcp.NewTool("list_projects",
			mcp.WithDescription("List portfolio projects in display order. Use this to see what work is published on the site."),
			mcp.WithString("category",
				mcp.Description("Optional: only return projects in this category (exact name, e.g. 'Branding')"),
			),
		),
		handleListProjects(repo),
	)

	// Tool: get_project - One project with its rendered detail body
	s.AddTool(
		mcp.NewTool("get_project",
			mcp.WithDescription("Get a single project by its id, including the sanitized HTML shown on its detail page."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The project id (a slug such as 'northwind-coffee')"),
			),
		),
		handleGetProject(repo),
	)

	// Tool: list_categories - Categories with project counts
	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List project categories in display order with the number of projects filed under each."),
		),
		handleListCategories(repo),
	)

	// Tool: get_about - About section
	s.AddTool(
		mcp.NewTool("get_about",
			mcp.WithDescription("Get the about section: label, headline, body, portrait image and the three headline stats."),
		),
		handleGetAbout(repo),
	)

	// Tool: get_contact - Contact section and social links
	s.AddTool(
		mcp.NewTool("get_contact",
			mcp.WithDescription("Get the contact section and the social links shown in the footer."),
		),
		handleGetContact(repo),
	)

	return s
}

// ProjectResult is a project plus its rendered detail body
type ProjectResult struct {
	content.Project
	DetailHTML string `json:"detailHtml"`
}

// ContactResult combines the contact section with social links
type ContactResult struct {
	content.Contact
	SocialLinks []content.SocialLink `json:"socialLinks"`
}

func handleListProjects(repo *content.Repo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(repo.ProjectsInCategory(req.GetString("category", "")))
	}
}

func handleGetProject(repo *content.Repo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		p, ok := repo.ProjectByID(id)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("project %q not found", id)), nil
		}
		return jsonResult(ProjectResult{Project: p, DetailHTML: render.Detail(p)})
	}
}

func handleListCategories(repo *content.Repo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(repo.CategoryUsage())
	}
}

func handleGetAbout(repo *content.Repo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(repo.About())
	}
}

func handleGetContact(repo *content.Repo) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(ContactResult{Contact: repo.Contact(), SocialLinks: repo.SocialLinks()})
	}
}

// Helper functions

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
