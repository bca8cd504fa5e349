// Package site serves the public pages, the admin dashboard and the JSON
// API on top of the content repository.
package site

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"portfolio/internal/auth"
	"portfolio/internal/content"
	"portfolio/internal/render"
	"portfolio/internal/upload"
	"portfolio/views/models"
)

type Handler struct {
	repo    *content.Repo
	gate    *auth.Gate
	uploads *upload.Client
	log     *slog.Logger
}

func NewHandler(repo *content.Repo, gate *auth.Gate, uploads *upload.Client, log *slog.Logger) *Handler {
	return &Handler{repo: repo, gate: gate, uploads: uploads, log: log}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("GET /", h.HomePage)
	mux.HandleFunc("GET /projects", h.ProjectsPage)
	mux.HandleFunc("GET /projects/{id}", h.ProjectDetailPage)

	// Admin pages
	mux.HandleFunc("GET /admin", h.AdminPage)
	mux.HandleFunc("POST /admin/login", h.AdminLogin)
	mux.HandleFunc("POST /admin/logout", h.AdminLogout)
	mux.HandleFunc("POST /admin/projects", h.requireAdminPage(h.AdminAddProject))
	mux.HandleFunc("POST /admin/projects/{id}", h.requireAdminPage(h.AdminUpdateProject))
	mux.HandleFunc("POST /admin/projects/{id}/delete", h.requireAdminPage(h.AdminDeleteProject))
	mux.HandleFunc("POST /admin/categories", h.requireAdminPage(h.AdminAddCategory))
	mux.HandleFunc("POST /admin/categories/rename", h.requireAdminPage(h.AdminRenameCategory))
	mux.HandleFunc("POST /admin/categories/delete", h.requireAdminPage(h.AdminDeleteCategory))
	mux.HandleFunc("POST /admin/about", h.requireAdminPage(h.AdminSaveAbout))
	mux.HandleFunc("POST /admin/contact", h.requireAdminPage(h.AdminSaveContact))
	mux.HandleFunc("POST /admin/social", h.requireAdminPage(h.AdminSaveSocial))

	// Read API
	mux.HandleFunc("GET /api/content", h.GetContent)
	mux.HandleFunc("GET /api/projects", h.ListProjects)
	mux.HandleFunc("GET /api/projects/{id}", h.GetProject)
	mux.HandleFunc("GET /api/projects/{id}/detail", h.GetProjectDetail)
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/about", h.GetAbout)
	mux.HandleFunc("GET /api/social", h.GetSocialLinks)
	mux.HandleFunc("GET /api/contact", h.GetContact)

	// Session
	mux.HandleFunc("GET /api/session", h.GetSession)
	mux.HandleFunc("POST /api/session", h.CreateSession)
	mux.HandleFunc("DELETE /api/session", h.DeleteSession)

	// Admin API
	mux.HandleFunc("POST /api/projects", h.requireAdmin(h.CreateProject))
	mux.HandleFunc("PATCH /api/projects/{id}", h.requireAdmin(h.UpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", h.requireAdmin(h.DeleteProject))
	mux.HandleFunc("POST /api/categories", h.requireAdmin(h.CreateCategory))
	mux.HandleFunc("PUT /api/categories/{name}", h.requireAdmin(h.RenameCategory))
	mux.HandleFunc("DELETE /api/categories/{name}", h.requireAdmin(h.DeleteCategory))
	mux.HandleFunc("PATCH /api/about", h.requireAdmin(h.UpdateAbout))
	mux.HandleFunc("PUT /api/social", h.requireAdmin(h.UpdateSocialLinks))
	mux.HandleFunc("PATCH /api/contact", h.requireAdmin(h.UpdateContact))
	mux.HandleFunc("POST /api/uploads", h.requireAdmin(h.Upload))
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) internalError(w http.ResponseWriter, msg string, err error) {
	h.log.Error(msg, "error", err)
	h.jsonError(w, "internal error", http.StatusInternalServerError)
}

func (h *Handler) hasCategory(name string) bool {
	for _, c := range h.repo.Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// splitList splits a comma separated field, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// --- View model converters ---

func projectToView(p content.Project) models.ProjectView {
	return models.ProjectView{
		ID:           p.ID,
		Title:        p.Title,
		Category:     p.Category,
		Description:  p.Description,
		Image:        p.Image,
		Link:         p.Link,
		Year:         p.Year,
		Technologies: p.Technologies,

		DetailDescription: p.DetailDescription,
	}
}

func projectsToViews(projects []content.Project) []models.ProjectView {
	views := make([]models.ProjectView, len(projects))
	for i, p := range projects {
		views[i] = projectToView(p)
	}
	return views
}

func categoriesToViews(usage []content.CategoryUsage, active string) []models.CategoryView {
	views := make([]models.CategoryView, len(usage))
	for i, u := range usage {
		views[i] = models.CategoryView{Name: u.Name, Count: u.Projects, Active: u.Name == active}
	}
	return views
}

func aboutToView(a content.About) models.AboutView {
	stats := make([]models.StatView, len(a.Stats))
	for i, s := range a.Stats {
		stats[i] = models.StatView{Value: s.Value, Suffix: s.Suffix, Label: s.Label}
	}
	return models.AboutView{
		Label:    a.Label,
		Headline: a.Headline,
		Body:     a.Body,
		BodyHTML: render.Paragraphs(a.Body),
		ImageURL: a.ImageURL,
		Stats:    stats,
	}
}

func socialToViews(links []content.SocialLink) []models.SocialLinkView {
	views := make([]models.SocialLinkView, len(links))
	for i, l := range links {
		views[i] = models.SocialLinkView{Name: l.Name, Href: l.Href, Icon: string(content.IconForSocial(l.Name))}
	}
	return views
}

func contactToView(c content.Contact) models.ContactView {
	items := make([]models.ContactItemView, len(c.ContactInfo))
	for i, it := range c.ContactInfo {
		items[i] = models.ContactItemView{
			Label: it.Label,
			Value: it.Value,
			Href:  it.Href,
			Icon:  string(content.IconForContact(it.Label)),
		}
	}
	return models.ContactView{
		Label:       c.Label,
		Headline:    c.Headline,
		Subheadline: c.Subheadline,
		Items:       items,
	}
}
