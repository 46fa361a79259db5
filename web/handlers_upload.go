// ABOUTME: Upload passthrough: validates declared MIME type and size, forwards bytes to
// ABOUTME: the object store, and returns the resulting public URL.
package web

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Size ceilings are inclusive: a file exactly at the limit is accepted.
const (
	maxImageBytes = 5 << 20  // 5 MiB
	maxPDFBytes   = 10 << 20 // 10 MiB
)

// imageTypes is the upload allow-list for images.
var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// pdfType is the single allowed document type.
const pdfType = "application/pdf"

// uploadRejection carries the HTTP status and message for a refused upload.
type uploadRejection struct {
	status  int
	message string
}

// storeUpload validates the multipart "file" field and forwards it to the
// object store. It returns the public URL and "image" or "pdf" on success.
// The caller is responsible for authentication.
func (s *Server) storeUpload(r *http.Request) (url, kind string, rej *uploadRejection) {
	if s.objects == nil {
		log.Printf("component=web action=upload err=object store not configured")
		return "", "", &uploadRejection{http.StatusInternalServerError, "Server configuration error: Blob storage not configured"}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", "", &uploadRejection{http.StatusBadRequest, "No file provided"}
	}
	defer func() { _ = file.Close() }()

	declaredType := header.Header.Get("Content-Type")
	isPDF := declaredType == pdfType
	if !isPDF && !imageTypes[declaredType] {
		return "", "", &uploadRejection{http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF, WebP, and PDF are allowed."}
	}

	maxSize := int64(maxImageBytes)
	limitLabel := "5MB"
	if isPDF {
		maxSize = maxPDFBytes
		limitLabel = "10MB"
	}
	if header.Size > maxSize {
		return "", "", &uploadRejection{http.StatusBadRequest, fmt.Sprintf("File too large. Maximum size is %s.", limitLabel)}
	}

	folder, kind := "uploads", "image"
	if isPDF {
		folder, kind = "documents", "pdf"
	}
	key := folder + "/" + ulid.Make().String() + strings.ToLower(filepath.Ext(header.Filename))

	url, err = s.objects.Put(r.Context(), key, declaredType, file, header.Size)
	if err != nil {
		log.Printf("component=web action=upload key=%s err=%v", key, err)
		return "", "", &uploadRejection{http.StatusInternalServerError, "Failed to upload file"}
	}
	return url, kind, nil
}

// handleUpload accepts a single multipart file, validates it, and stores it
// in the object store. Only the returned URL ever reaches the content layer.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Authenticated(r) {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	url, kind, rej := s.storeUpload(r)
	if rej != nil {
		writeJSONError(w, rej.status, rej.message)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     url,
		"type":    kind,
	})
}
