package site

import (
	"net/http"

	"portfolio/internal/render"
	"portfolio/views/models"
	"portfolio/views/pages"
)

// HomePage handles GET /
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	snap := h.repo.Snapshot()
	v := models.HomeView{
		About:      aboutToView(snap.About),
		Contact:    contactToView(snap.Contact),
		Social:     socialToViews(snap.SocialLinks),
		Projects:   projectsToViews(snap.Projects),
		Categories: categoriesToViews(h.repo.CategoryUsage(), ""),
	}
	pages.HomePage(v).Render(r.Context(), w)
}

// ProjectsPage handles GET /projects
func (h *Handler) ProjectsPage(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("category")
	v := models.ProjectsView{
		Projects:   projectsToViews(h.repo.ProjectsInCategory(active)),
		Categories: categoriesToViews(h.repo.CategoryUsage(), active),
		Active:     active,
	}
	pages.ProjectsPage(v, socialToViews(h.repo.SocialLinks())).Render(r.Context(), w)
}

// ProjectDetailPage handles GET /projects/{id}
func (h *Handler) ProjectDetailPage(w http.ResponseWriter, r *http.Request) {
	social := socialToViews(h.repo.SocialLinks())

	p, ok := h.repo.ProjectByID(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		pages.NotFoundPage(social).Render(r.Context(), w)
		return
	}

	v := models.DetailView{
		Project:    projectToView(p),
		DetailHTML: render.Detail(p),
	}
	pages.ProjectDetailPage(v, social).Render(r.Context(), w)
}
