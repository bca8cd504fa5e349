package site

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"portfolio/internal/content"
	"portfolio/views/models"
	"portfolio/views/pages"
)

// AdminPage handles GET /admin. Logged-out sessions get the login form.
func (h *Handler) AdminPage(w http.ResponseWriter, r *http.Request) {
	flash := flashFromQuery(r.URL.Query())
	if !h.authenticated(r) {
		pages.LoginPage(flash).Render(r.Context(), w)
		return
	}

	snap := h.repo.Snapshot()
	v := models.DashboardView{
		Projects:      projectsToViews(snap.Projects),
		Categories:    categoriesToViews(h.repo.CategoryUsage(), ""),
		About:         aboutToView(snap.About),
		Social:        socialToViews(snap.SocialLinks),
		Contact:       contactToView(snap.Contact),
		UploadEnabled: h.uploads.Configured(),
		Flash:         flash,
	}
	pages.DashboardPage(v).Render(r.Context(), w)
}

// AdminLogin handles POST /admin/login
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ok, err := h.login(w, r, r.FormValue("password"))
	if err != nil {
		h.log.Error("failed to store session", "error", err)
		h.redirect(w, r, "Could not log in, please try again.", true)
		return
	}
	if !ok {
		h.redirect(w, r, "Invalid password", true)
		return
	}
	h.redirect(w, r, "", false)
}

// AdminLogout handles POST /admin/logout
func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := h.gate.Logout(r.Context(), id); err != nil {
			h.log.Error("failed to clear session", "error", err)
		}
	}
	h.redirect(w, r, "", false)
}

// parseUploadForm reads a possibly multipart form body, capped at
// maxUploadBytes. It redirects and returns false on failure.
func (h *Handler) parseUploadForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.redirect(w, r, "The upload is too large or malformed.", true)
		return false
	}
	return true
}

// uploadImage replaces *dst with the hosted URL of an attached imageFile.
// Without an attachment *dst is left alone. It redirects and returns false
// when the upload fails.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request, dst *string) bool {
	file, hdr, err := r.FormFile("imageFile")
	if err != nil {
		return true
	}
	defer file.Close()
	hosted, err := h.uploads.Upload(r.Context(), hdr.Filename, file)
	if err != nil {
		h.log.Warn("image upload failed", "error", err)
		h.redirect(w, r, err.Error(), true)
		return false
	}
	*dst = hosted
	return true
}

func projectForm(r *http.Request) content.ProjectInput {
	return content.ProjectInput{
		Title:             strings.TrimSpace(r.FormValue("title")),
		Category:          r.FormValue("category"),
		Description:       strings.TrimSpace(r.FormValue("description")),
		Image:             strings.TrimSpace(r.FormValue("image")),
		Link:              strings.TrimSpace(r.FormValue("link")),
		DetailDescription: r.FormValue("detailDescription"),
		Technologies:      splitList(r.FormValue("technologies")),
		Year:              strings.TrimSpace(r.FormValue("year")),
	}
}

// AdminAddProject handles POST /admin/projects. An attached imageFile is
// uploaded first and its hosted URL replaces the image field.
func (h *Handler) AdminAddProject(w http.ResponseWriter, r *http.Request) {
	if !h.parseUploadForm(w, r) {
		return
	}
	input := projectForm(r)
	if msg := h.validateProject(input); msg != "" {
		h.redirect(w, r, msg, true)
		return
	}
	if !h.uploadImage(w, r, &input.Image) {
		return
	}

	p, err := h.repo.AddProject(r.Context(), input)
	if err != nil {
		h.log.Error("failed to add project", "error", err)
		h.redirect(w, r, "Could not save the project.", true)
		return
	}
	h.redirect(w, r, fmt.Sprintf("Added %q.", p.Title), false)
}

// AdminUpdateProject handles POST /admin/projects/{id}. The form carries
// every field, so each one is replaced.
func (h *Handler) AdminUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.repo.ProjectByID(id); !ok {
		h.redirect(w, r, "Project not found.", true)
		return
	}
	if !h.parseUploadForm(w, r) {
		return
	}
	in := projectForm(r)
	if msg := h.validateProject(in); msg != "" {
		h.redirect(w, r, msg, true)
		return
	}
	if !h.uploadImage(w, r, &in.Image) {
		return
	}

	ok, err := h.repo.UpdateProject(r.Context(), id, content.ProjectUpdate{
		Title:             &in.Title,
		Category:          &in.Category,
		Description:       &in.Description,
		Image:             &in.Image,
		Link:              &in.Link,
		DetailDescription: &in.DetailDescription,
		Technologies:      &in.Technologies,
		Year:              &in.Year,
	})
	if err != nil {
		h.log.Error("failed to update project", "id", id, "error", err)
		h.redirect(w, r, "Could not save the project.", true)
		return
	}
	if !ok {
		h.redirect(w, r, "Project not found.", true)
		return
	}
	h.redirect(w, r, fmt.Sprintf("Saved %q.", in.Title), false)
}

// AdminDeleteProject handles POST /admin/projects/{id}/delete
func (h *Handler) AdminDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		h.log.Error("failed to delete project", "error", err)
		h.redirect(w, r, "Could not delete the project.", true)
		return
	}
	h.redirect(w, r, "Project deleted.", false)
}

// AdminAddCategory handles POST /admin/categories
func (h *Handler) AdminAddCategory(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if strings.TrimSpace(name) == "" {
		h.redirect(w, r, "Please enter a category name.", true)
		return
	}
	ok, err := h.repo.AddCategory(r.Context(), name)
	if err != nil {
		h.log.Error("failed to add category", "error", err)
		h.redirect(w, r, "Could not save the category.", true)
		return
	}
	if !ok {
		h.redirect(w, r, "Category already exists.", true)
		return
	}
	h.redirect(w, r, "Category added.", false)
}

// AdminRenameCategory handles POST /admin/categories/rename
func (h *Handler) AdminRenameCategory(w http.ResponseWriter, r *http.Request) {
	oldName, newName := r.FormValue("old"), strings.TrimSpace(r.FormValue("new"))
	if !h.hasCategory(oldName) {
		h.redirect(w, r, "Category not found.", true)
		return
	}
	if newName == oldName {
		h.redirect(w, r, "", false)
		return
	}
	ok, err := h.repo.UpdateCategory(r.Context(), oldName, newName)
	if err != nil {
		h.log.Error("failed to rename category", "error", err)
		h.redirect(w, r, "Could not rename the category.", true)
		return
	}
	if !ok {
		h.redirect(w, r, "Category names must be non-empty and unique.", true)
		return
	}
	h.redirect(w, r, fmt.Sprintf("Renamed %q to %q.", oldName, newName), false)
}

// AdminDeleteCategory handles POST /admin/categories/delete
func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	ok, err := h.repo.DeleteCategory(r.Context(), name)
	if err != nil {
		h.log.Error("failed to delete category", "error", err)
		h.redirect(w, r, "Could not delete the category.", true)
		return
	}
	if !ok {
		h.redirect(w, r, inUseMessage(name), true)
		return
	}
	h.redirect(w, r, "Category deleted.", false)
}

// AdminSaveAbout handles POST /admin/about. An attached imageFile replaces
// the image URL.
func (h *Handler) AdminSaveAbout(w http.ResponseWriter, r *http.Request) {
	if !h.parseUploadForm(w, r) {
		return
	}
	stats := make([]content.AboutStat, content.StatCount)
	for i := range stats {
		n := strconv.Itoa(i)
		v, err := strconv.Atoi(strings.TrimSpace(r.FormValue("stat_value_" + n)))
		if err != nil || v < 0 {
			h.redirect(w, r, "Stat values must be whole numbers.", true)
			return
		}
		stats[i] = content.AboutStat{
			Value:  v,
			Suffix: strings.TrimSpace(r.FormValue("stat_suffix_" + n)),
			Label:  strings.TrimSpace(r.FormValue("stat_label_" + n)),
		}
	}

	label, headline := r.FormValue("label"), r.FormValue("headline")
	body, image := r.FormValue("body"), strings.TrimSpace(r.FormValue("imageUrl"))
	if !h.uploadImage(w, r, &image) {
		return
	}
	err := h.repo.UpdateAbout(r.Context(), content.AboutUpdate{
		Label:    &label,
		Headline: &headline,
		Body:     &body,
		ImageURL: &image,
		Stats:    stats,
	})
	if err != nil {
		h.log.Error("failed to update about", "error", err)
		h.redirect(w, r, "Could not save the about section.", true)
		return
	}
	h.redirect(w, r, "About section saved.", false)
}

// AdminSaveContact handles POST /admin/contact
func (h *Handler) AdminSaveContact(w http.ResponseWriter, r *http.Request) {
	items := []content.ContactInfoItem{}
	for _, f := range parseLines(r.FormValue("contactInfo"), 3) {
		if f[0] == "" {
			continue
		}
		items = append(items, content.ContactInfoItem{Label: f[0], Value: f[1], Href: f[2]})
	}

	label, headline, sub := r.FormValue("label"), r.FormValue("headline"), r.FormValue("subheadline")
	err := h.repo.UpdateContact(r.Context(), content.ContactUpdate{
		Label:       &label,
		Headline:    &headline,
		Subheadline: &sub,
		ContactInfo: items,
	})
	if err != nil {
		h.log.Error("failed to update contact", "error", err)
		h.redirect(w, r, "Could not save the contact section.", true)
		return
	}
	h.redirect(w, r, "Contact section saved.", false)
}

// AdminSaveSocial handles POST /admin/social
func (h *Handler) AdminSaveSocial(w http.ResponseWriter, r *http.Request) {
	links := []content.SocialLink{}
	for _, f := range parseLines(r.FormValue("links"), 2) {
		if f[0] == "" {
			continue
		}
		href := f[1]
		if href == "" {
			href = "#"
		}
		links = append(links, content.SocialLink{Name: f[0], Href: href})
	}

	if err := h.repo.UpdateSocialLinks(r.Context(), links); err != nil {
		h.log.Error("failed to update social links", "error", err)
		h.redirect(w, r, "Could not save the social links.", true)
		return
	}
	h.redirect(w, r, "Social links saved.", false)
}

// --- Form helpers ---

// redirect sends the browser back to the dashboard with an optional status
// message.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, msg string, isErr bool) {
	target := "/admin"
	if msg != "" {
		q := url.Values{"msg": {msg}}
		if isErr {
			q.Set("error", "1")
		}
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func flashFromQuery(q url.Values) *models.Flash {
	msg := q.Get("msg")
	if msg == "" {
		return nil
	}
	return &models.Flash{Text: msg, Error: q.Get("error") == "1"}
}

// parseLines splits a textarea into non-blank lines of exactly n
// pipe-separated, trimmed fields. Missing fields are empty; extra pipes
// stay in the last field.
func parseLines(text string, n int) [][]string {
	var out [][]string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "|", n)
		fields := make([]string, n)
		for i, p := range parts {
			fields[i] = strings.TrimSpace(p)
		}
		out = append(out, fields)
	}
	return out
}
