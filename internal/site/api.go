package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"portfolio/internal/content"
	"portfolio/internal/render"
	"portfolio/internal/upload"
)

// maxUploadBytes caps image uploads accepted by the server.
const maxUploadBytes = 10 << 20

// --- Read API ---

// GetContent handles GET /api/content
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.repo.Snapshot(), http.StatusOK)
}

// ListProjects handles GET /api/projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.repo.ProjectsInCategory(r.URL.Query().Get("category")), http.StatusOK)
}

// GetProject handles GET /api/projects/{id}
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.repo.ProjectByID(r.PathValue("id"))
	if !ok {
		h.jsonError(w, "project not found", http.StatusNotFound)
		return
	}
	h.jsonResponse(w, p, http.StatusOK)
}

// GetProjectDetail handles GET /api/projects/{id}/detail and returns the
// sanitized detail HTML.
func (h *Handler) GetProjectDetail(w http.ResponseWriter, r *http.Request) {
	p, ok := h.repo.ProjectByID(r.PathValue("id"))
	if !ok {
		h.jsonError(w, "project not found", http.StatusNotFound)
		return
	}
	h.jsonResponse(w, map[string]string{"id": p.ID, "html": render.Detail(p)}, http.StatusOK)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.repo.CategoryUsage(), http.StatusOK)
}

// GetAbout handles GET /api/about
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.repo.About(), http.StatusOK)
}

// GetSocialLinks handles GET /api/social
func (h *Handler) GetSocialLinks(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.repo.SocialLinks(), http.StatusOK)
}

// GetContact handles GET /api/contact
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.repo.Contact(), http.StatusOK)
}

// --- Session API ---

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// GetSession handles GET /api/session
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, sessionResponse{Authenticated: h.authenticated(r)}, http.StatusOK)
}

// CreateSession handles POST /api/session
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	ok, err := h.login(w, r, input.Password)
	if err != nil {
		h.internalError(w, "failed to store session", err)
		return
	}
	if !ok {
		h.jsonError(w, "Invalid password", http.StatusUnauthorized)
		return
	}
	h.jsonResponse(w, sessionResponse{Authenticated: true}, http.StatusOK)
}

// DeleteSession handles DELETE /api/session
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := h.gate.Logout(r.Context(), id); err != nil {
			h.internalError(w, "failed to clear session", err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Admin API ---

// CreateProject handles POST /api/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input content.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if msg := h.validateProject(input); msg != "" {
		h.jsonError(w, msg, http.StatusBadRequest)
		return
	}

	p, err := h.repo.AddProject(r.Context(), input)
	if err != nil {
		h.internalError(w, "failed to add project", err)
		return
	}
	h.jsonResponse(w, p, http.StatusCreated)
}

// validateProject enforces the fields the dashboard form requires.
func (h *Handler) validateProject(in content.ProjectInput) string {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return "title is required"
	case strings.TrimSpace(in.Description) == "":
		return "description is required"
	case !h.hasCategory(in.Category):
		return fmt.Sprintf("unknown category %q", in.Category)
	}
	return ""
}

// UpdateProject handles PATCH /api/projects/{id}
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var input content.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if input.Category != nil && !h.hasCategory(*input.Category) {
		h.jsonError(w, fmt.Sprintf("unknown category %q", *input.Category), http.StatusBadRequest)
		return
	}

	ok, err := h.repo.UpdateProject(r.Context(), id, input)
	if err != nil {
		h.internalError(w, "failed to update project", err)
		return
	}
	if !ok {
		h.jsonError(w, "project not found", http.StatusNotFound)
		return
	}
	p, _ := h.repo.ProjectByID(id)
	h.jsonResponse(w, p, http.StatusOK)
}

// DeleteProject handles DELETE /api/projects/{id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		h.internalError(w, "failed to delete project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type categoryInput struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	ok, err := h.repo.AddCategory(r.Context(), input.Name)
	if err != nil {
		h.internalError(w, "failed to add category", err)
		return
	}
	if !ok {
		if strings.TrimSpace(input.Name) == "" {
			h.jsonError(w, "Please enter a category name.", http.StatusBadRequest)
		} else {
			h.jsonError(w, "Category already exists.", http.StatusConflict)
		}
		return
	}
	h.jsonResponse(w, h.repo.CategoryUsage(), http.StatusCreated)
}

// RenameCategory handles PUT /api/categories/{name}
func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	oldName := r.PathValue("name")
	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if !h.hasCategory(oldName) {
		h.jsonError(w, "category not found", http.StatusNotFound)
		return
	}

	ok, err := h.repo.UpdateCategory(r.Context(), oldName, input.Name)
	if err != nil {
		h.internalError(w, "failed to rename category", err)
		return
	}
	if !ok && strings.TrimSpace(input.Name) != oldName {
		h.jsonError(w, "category name is blank or already in use", http.StatusConflict)
		return
	}
	h.jsonResponse(w, h.repo.CategoryUsage(), http.StatusOK)
}

// DeleteCategory handles DELETE /api/categories/{name}
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	ok, err := h.repo.DeleteCategory(r.Context(), name)
	if err != nil {
		h.internalError(w, "failed to delete category", err)
		return
	}
	if !ok {
		h.jsonError(w, inUseMessage(name), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func inUseMessage(name string) string {
	return fmt.Sprintf("Cannot delete %q: it is used by one or more projects.", name)
}

// UpdateAbout handles PATCH /api/about
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var input content.AboutUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.repo.UpdateAbout(r.Context(), input); err != nil {
		h.internalError(w, "failed to update about", err)
		return
	}
	h.jsonResponse(w, h.repo.About(), http.StatusOK)
}

// UpdateSocialLinks handles PUT /api/social
func (h *Handler) UpdateSocialLinks(w http.ResponseWriter, r *http.Request) {
	var input []content.SocialLink
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.repo.UpdateSocialLinks(r.Context(), input); err != nil {
		h.internalError(w, "failed to update social links", err)
		return
	}
	h.jsonResponse(w, h.repo.SocialLinks(), http.StatusOK)
}

// UpdateContact handles PATCH /api/contact
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var input content.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.repo.UpdateContact(r.Context(), input); err != nil {
		h.internalError(w, "failed to update contact", err)
		return
	}
	h.jsonResponse(w, h.repo.Contact(), http.StatusOK)
}

// Upload handles POST /api/uploads. The response carries the hosted URL;
// callers write it into their own draft.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, hdr, err := r.FormFile("file")
	if err != nil {
		h.jsonError(w, "multipart field \"file\" is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.uploads.Upload(r.Context(), hdr.Filename, file)
	if errors.Is(err, upload.ErrNotConfigured) {
		h.jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		h.log.Warn("image upload failed", "error", err)
		h.jsonError(w, err.Error(), http.StatusBadGateway)
		return
	}
	h.jsonResponse(w, map[string]string{"url": url}, http.StatusCreated)
}
