// ABOUTME: Session endpoints: JSON login/logout/status plus the admin login form flow.
// ABOUTME: Wrong passwords get a generic failure; successful logins set the session cookie.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// handleSessionStatus reports whether the request carries a valid session.
func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"authenticated": s.sessions.Authenticated(r),
	})
}

// loginRequest is the JSON login body.
type loginRequest struct {
	Password string `json:"password"`
}

// handleLoginJSON validates the admin password and issues a session cookie.
func (s *Server) handleLoginJSON(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !s.sessions.VerifyPassword(req.Password) {
		writeJSONError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := s.sessions.Issue(time.Now())
	if err != nil {
		log.Printf("component=web action=login err=%v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	s.sessions.SetCookie(w, r, token)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleLogoutJSON clears the session cookie.
func (s *Server) handleLogoutJSON(w http.ResponseWriter, r *http.Request) {
	s.sessions.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleLoginPage renders the admin login form. An authenticated visitor is
// sent straight to the dashboard.
func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Authenticated(r) {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	s.renderer.Render(w, "admin_login.html", adminLoginData{})
}

// handleLoginForm processes the login form submission.
func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderer.Render(w, "admin_login.html", adminLoginData{Error: "Invalid form data."})
		return
	}

	if !s.sessions.VerifyPassword(r.FormValue("password")) {
		w.WriteHeader(http.StatusUnauthorized)
		s.renderer.Render(w, "admin_login.html", adminLoginData{Error: "Incorrect password."})
		return
	}

	token, err := s.sessions.Issue(time.Now())
	if err != nil {
		log.Printf("component=web action=login err=%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		s.renderer.Render(w, "admin_login.html", adminLoginData{Error: "Failed to create session."})
		return
	}
	s.sessions.SetCookie(w, r, token)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// handleLogoutForm clears the session and returns to the login page.
func (s *Server) handleLogoutForm(w http.ResponseWriter, r *http.Request) {
	s.sessions.ClearCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

// adminLoginData is the view-model for the login page.
type adminLoginData struct {
	Error string
}
