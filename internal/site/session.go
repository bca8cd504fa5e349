package site

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie identifies a browser session. It has no expiry, so it
// ends when the browser session does.
const SessionCookie = "portfolio_session"

// sessionID returns the request's session id, or "" when there is none.
func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// login checks password and, when it matches, moves the browser onto a
// fresh session id. An id the browser held before logging in is never the
// one that ends up authenticated.
func (h *Handler) login(w http.ResponseWriter, r *http.Request, password string) (bool, error) {
	id := uuid.NewString()
	ok, err := h.gate.Login(r.Context(), id, password)
	if err != nil || !ok {
		return false, err
	}
	if old := sessionID(r); old != "" {
		if err := h.gate.Logout(r.Context(), old); err != nil {
			h.log.Warn("failed to clear previous session", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return true, nil
}

func (h *Handler) authenticated(r *http.Request) bool {
	return h.gate.Authenticated(r.Context(), sessionID(r))
}

// requireAdmin rejects API calls from sessions that have not logged in.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticated(r) {
			h.jsonError(w, "login required", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// requireAdminPage sends logged-out form posts back to the login page.
func (h *Handler) requireAdminPage(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authenticated(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
