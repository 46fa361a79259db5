// ABOUTME: JSON API handlers for reading and writing section documents.
// ABOUTME: Reads are public; writes require a valid admin session.
package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/familybond-au/familybond/content"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("component=web action=write_json err=%v", err)
	}
}

// writeJSONError writes a {"error": msg} body with the given status.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleContentGet returns one section when ?section names a known key, and
// the nine-section home aggregate otherwise. Reads are public and never fail:
// a degraded store serves defaults.
func (s *Server) handleContentGet(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	if content.Known(section) {
		doc := s.accessor.Get(r.Context(), content.Key(section))
		writeJSON(w, http.StatusOK, map[string]any{section: doc})
		return
	}
	writeJSON(w, http.StatusOK, s.accessor.GetAll(r.Context()))
}

// contentWriteRequest is the POST body for a section replacement.
type contentWriteRequest struct {
	Section string          `json:"section"`
	Content json.RawMessage `json:"content"`
}

// handleContentPost replaces one section document. Exactly one store write
// happens per success; concurrent writers race and the last write wins.
func (s *Server) handleContentPost(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Authenticated(r) {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req contentWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// A JSON null decodes into a non-empty RawMessage; it carries no document.
	if req.Section == "" || len(req.Content) == 0 ||
		bytes.Equal(bytes.TrimSpace(req.Content), []byte("null")) {
		writeJSONError(w, http.StatusBadRequest, "Section and content are required")
		return
	}
	if !content.Known(req.Section) {
		writeJSONError(w, http.StatusBadRequest, "Invalid section")
		return
	}

	err := s.accessor.Set(r.Context(), content.Key(req.Section), req.Content)
	if errors.Is(err, content.ErrInvalidDocument) {
		writeJSONError(w, http.StatusBadRequest, "Content does not match the section schema")
		return
	}
	if err != nil {
		log.Printf("component=web action=content_save section=%s err=%v", req.Section, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to save content")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
