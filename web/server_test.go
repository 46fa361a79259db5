// ABOUTME: HTTP-level tests for the router: public pages, session flow, content API, uploads.
// ABOUTME: Uses the in-memory KV and object stores so tests need no external services.
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/familybond-au/familybond/blob"
	"github.com/familybond-au/familybond/content"
	"github.com/familybond-au/familybond/server"
	"github.com/familybond-au/familybond/store"
)

const testPassword = "hunter2"

func newTestServer(t *testing.T, objects blob.ObjectStore) (*Server, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	srv, err := NewServer(ServerConfig{
		Accessor: content.NewAccessor(kv),
		Sessions: server.NewSessions(testPassword, ""),
		Objects:  objects,
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv, kv
}

func sessionCookie(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()
	token, err := srv.sessions.Issue(time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return &http.Cookie{Name: server.SessionCookieName, Value: token}
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v\nbody: %s", err, resp.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health: got %d, want 200", w.Code)
	}
}

func TestHomeRendersDefaults(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("home: got %d, want 200", w.Code)
	}
	html := w.Body.String()
	hero := content.DefaultHero()
	if !strings.Contains(html, hero.Heading) {
		t.Errorf("home page missing hero heading %q", hero.Heading)
	}
	if !strings.Contains(html, content.DefaultSiteSettings().SiteName) {
		t.Error("home page missing site name")
	}
}

func TestHomeRendersStoredContent(t *testing.T) {
	srv, kv := newTestServer(t, nil)
	a := content.NewAccessor(kv)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if err := a.Set(ctx, content.KeyHero, json.RawMessage(`{"heading":"Custom Heading"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(w.Body.String(), "Custom Heading") {
		t.Error("home page does not reflect the stored hero document")
	}
}

func TestServicesAndResourcesPages(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	for _, path := range []string{"/services", "/resources"} {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, w.Code)
		}
	}
}

func TestLegalPages(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/legal/privacy-policy", nil))
	if w.Code != http.StatusOK {
		t.Errorf("privacy policy: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Privacy Policy") {
		t.Error("privacy policy page missing title")
	}

	w2 := httptest.NewRecorder()
	srv.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/legal/nope", nil))
	if w2.Code != http.StatusNotFound {
		t.Errorf("unknown legal slug: got %d, want 404", w2.Code)
	}
}

func TestAdminPagesRedirectWithoutSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	for _, path := range []string{"/admin", "/admin/sections/hero", "/admin/resources"} {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusFound {
			t.Errorf("%s: got %d, want 302", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("%s: redirect to %q, want /admin/login", path, loc)
		}
	}
}

func TestLoginFormFlow(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	// Wrong password re-renders the form with 401.
	form := strings.NewReader("password=wrong")
	r := httptest.NewRequest(http.MethodPost, "/admin/login", form)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d, want 401", w.Code)
	}

	// Correct password sets a cookie and redirects to the dashboard.
	form = strings.NewReader("password=" + testPassword)
	r = httptest.NewRequest(http.MethodPost, "/admin/login", form)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusFound {
		t.Fatalf("correct password: got %d, want 302", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != server.SessionCookieName || cookies[0].Value == "" {
		t.Fatal("login did not set a session cookie")
	}

	// The cookie opens the dashboard.
	r = httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("dashboard with session: got %d, want 200", w.Code)
	}
}

func TestSessionStatusEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/auth/session", nil))
	if body := decodeBody(t, w); body["authenticated"] != false {
		t.Errorf("anonymous status: got %v, want false", body["authenticated"])
	}

	r := httptest.NewRequest(http.MethodGet, "/api/admin/auth/session", nil)
	r.AddCookie(sessionCookie(t, srv))
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if body := decodeBody(t, w); body["authenticated"] != true {
		t.Errorf("authenticated status: got %v, want true", body["authenticated"])
	}
}

func TestLoginJSON(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login",
		strings.NewReader(`{"password":"wrong"}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d, want 401", w.Code)
	}

	r = httptest.NewRequest(http.MethodPost, "/api/admin/auth/login",
		strings.NewReader(fmt.Sprintf(`{"password":%q}`, testPassword)))
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("correct password: got %d, want 200", w.Code)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("JSON login did not set a session cookie")
	}
}

func TestContentGetSingleSection(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/content?section=hero", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get hero: got %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	hero, ok := body["hero"].(map[string]any)
	if !ok {
		t.Fatalf("response missing hero wrapper: %v", body)
	}
	if hero["heading"] != content.DefaultHero().Heading {
		t.Errorf("heading: got %v, want default", hero["heading"])
	}
}

func TestContentGetAggregate(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/content", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get all: got %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	for _, key := range content.HomeKeys {
		if _, ok := body[string(key)]; !ok {
			t.Errorf("aggregate missing section %q", key)
		}
	}
}

func TestContentPostRequiresSession(t *testing.T) {
	srv, kv := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/content",
		strings.NewReader(`{"section":"hero","content":{"heading":"hacked"}}`))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated write: got %d, want 401", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Unauthorized" {
		t.Errorf("error message: got %v, want Unauthorized", body["error"])
	}
	if kv.Len() != 0 {
		t.Error("unauthenticated write mutated the store")
	}
}

func TestContentPostValidation(t *testing.T) {
	srv, kv := newTestServer(t, nil)

	cases := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"missing section", `{"content":{"heading":"x"}}`, "Section and content are required"},
		{"missing content", `{"section":"hero"}`, "Section and content are required"},
		{"null content", `{"section":"hero","content":null}`, "Section and content are required"},
		{"unknown section", `{"section":"bogus","content":{"a":1}}`, "Invalid section"},
		{"mis-shaped document", `{"section":"hero","content":[1,2]}`, "Content does not match the section schema"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/content", strings.NewReader(tc.payload))
			r.AddCookie(sessionCookie(t, srv))
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, r)
			if w.Code != http.StatusBadRequest {
				t.Errorf("got %d, want 400", w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tc.wantMsg {
				t.Errorf("error: got %v, want %q", body["error"], tc.wantMsg)
			}
		})
	}
	if kv.Len() != 0 {
		t.Error("a rejected write mutated the store")
	}
}

func TestContentPostStoresDocument(t *testing.T) {
	srv, kv := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/content",
		strings.NewReader(`{"section":"hero","content":{"heading":"Updated"}}`))
	r.AddCookie(sessionCookie(t, srv))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("write: got %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["success"] != true {
		t.Errorf("body: got %v, want success", body)
	}
	if kv.Len() != 1 {
		t.Fatalf("store keys: got %d, want 1", kv.Len())
	}

	// The stored document is visible through the read API.
	w2 := httptest.NewRecorder()
	srv.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/admin/content?section=hero", nil))
	hero := decodeBody(t, w2)["hero"].(map[string]any)
	if hero["heading"] != "Updated" {
		t.Errorf("heading after write: got %v, want Updated", hero["heading"])
	}
}

func TestContentPostStoreFailure(t *testing.T) {
	failing := &store.Failing{Err: fmt.Errorf("store down")}
	srv, err := NewServer(ServerConfig{
		Accessor: content.NewAccessor(failing),
		Sessions: server.NewSessions(testPassword, ""),
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/admin/content",
		strings.NewReader(`{"section":"hero","content":{"heading":"x"}}`))
	r.AddCookie(sessionCookie(t, srv))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("store outage: got %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Failed to save content" {
		t.Errorf("error: got %v, want Failed to save content", body["error"])
	}
}

// multipartUpload builds a multipart body with one "file" part carrying the
// declared content type.
func multipartUpload(t *testing.T, filename, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := io.CopyN(part, bytes.NewReader(bytes.Repeat([]byte{0xab}, size)), int64(size)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func postUpload(t *testing.T, srv *Server, filename, contentType string, size int, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body, boundary := multipartUpload(t, filename, contentType, size)
	r := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	r.Header.Set("Content-Type", boundary)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func TestUploadWithoutObjectStore(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := postUpload(t, srv, "photo.jpg", "image/jpeg", 100, sessionCookie(t, srv))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("got %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Server configuration error: Blob storage not configured" {
		t.Errorf("error: got %v", body["error"])
	}
}

func TestUploadRequiresSession(t *testing.T) {
	objects := blob.NewMemory()
	srv, _ := newTestServer(t, objects)

	w := postUpload(t, srv, "photo.jpg", "image/jpeg", 100, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", w.Code)
	}
	if len(objects.Objects()) != 0 {
		t.Error("unauthenticated upload reached the object store")
	}
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	objects := blob.NewMemory()
	srv, _ := newTestServer(t, objects)

	w := postUpload(t, srv, "evil.svg", "image/svg+xml", 100, sessionCookie(t, srv))
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Invalid file type. Only JPEG, PNG, GIF, WebP, and PDF are allowed." {
		t.Errorf("error: got %v", body["error"])
	}
	if len(objects.Objects()) != 0 {
		t.Error("a rejected upload reached the object store")
	}
}

func TestUploadSizeLimits(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		size        int
		wantOK      bool
		wantMsg     string
	}{
		{"image at limit", "a.png", "image/png", 5 << 20, true, ""},
		{"image over limit", "a.png", "image/png", 5<<20 + 1, false, "File too large. Maximum size is 5MB."},
		{"pdf at limit", "a.pdf", "application/pdf", 10 << 20, true, ""},
		{"pdf over limit", "a.pdf", "application/pdf", 10<<20 + 1, false, "File too large. Maximum size is 10MB."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			objects := blob.NewMemory()
			srv, _ := newTestServer(t, objects)

			w := postUpload(t, srv, tc.filename, tc.contentType, tc.size, sessionCookie(t, srv))
			if tc.wantOK {
				if w.Code != http.StatusOK {
					t.Fatalf("got %d, want 200\nbody: %s", w.Code, w.Body.String())
				}
				if len(objects.Objects()) != 1 {
					t.Error("accepted upload not recorded")
				}
			} else {
				if w.Code != http.StatusBadRequest {
					t.Fatalf("got %d, want 400", w.Code)
				}
				if body := decodeBody(t, w); body["error"] != tc.wantMsg {
					t.Errorf("error: got %v, want %q", body["error"], tc.wantMsg)
				}
				if len(objects.Objects()) != 0 {
					t.Error("a rejected upload reached the object store")
				}
			}
		})
	}
}

func TestUploadKeyAndKind(t *testing.T) {
	objects := blob.NewMemory()
	srv, _ := newTestServer(t, objects)

	w := postUpload(t, srv, "Photo.JPG", "image/jpeg", 128, sessionCookie(t, srv))
	if w.Code != http.StatusOK {
		t.Fatalf("image upload: got %d\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["type"] != "image" {
		t.Errorf("type: got %v, want image", body["type"])
	}

	stored := objects.Objects()
	if len(stored) != 1 {
		t.Fatalf("objects: got %d, want 1", len(stored))
	}
	key := stored[0].Key
	if !strings.HasPrefix(key, "uploads/") || !strings.HasSuffix(key, ".jpg") {
		t.Errorf("image key: got %q, want uploads/<id>.jpg", key)
	}

	w2 := postUpload(t, srv, "guide.pdf", "application/pdf", 128, sessionCookie(t, srv))
	if w2.Code != http.StatusOK {
		t.Fatalf("pdf upload: got %d", w2.Code)
	}
	if body := decodeBody(t, w2); body["type"] != "pdf" {
		t.Errorf("type: got %v, want pdf", body["type"])
	}
	stored = objects.Objects()
	if key := stored[1].Key; !strings.HasPrefix(key, "documents/") || !strings.HasSuffix(key, ".pdf") {
		t.Errorf("pdf key: got %q, want documents/<id>.pdf", key)
	}
}

func TestUploadNoFile(t *testing.T) {
	objects := blob.NewMemory()
	srv, _ := newTestServer(t, objects)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "not a file")
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.AddCookie(sessionCookie(t, srv))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "No file provided" {
		t.Errorf("error: got %v", body["error"])
	}
}

func TestSectionEditorRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	cookie := sessionCookie(t, srv)

	// The editor shows the current document.
	r := httptest.NewRequest(http.MethodGet, "/admin/sections/hero", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("editor: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), content.DefaultHero().Heading) {
		t.Error("editor missing the current heading")
	}

	// A valid save redirects back to the editor.
	form := strings.NewReader("document=" + `{"heading":"From Editor"}`)
	r = httptest.NewRequest(http.MethodPost, "/admin/sections/hero", form)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(cookie)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("save: got %d, want 303\nbody: %s", w.Code, w.Body.String())
	}

	// The save is visible on the public site.
	w2 := httptest.NewRecorder()
	srv.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(w2.Body.String(), "From Editor") {
		t.Error("saved heading not rendered on the home page")
	}
}

func TestSectionEditorRejectsBadDocument(t *testing.T) {
	srv, kv := newTestServer(t, nil)
	cookie := sessionCookie(t, srv)

	form := strings.NewReader("document=" + `["wrong","shape"]`)
	r := httptest.NewRequest(http.MethodPost, "/admin/sections/hero", form)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("bad document: got %d, want 400", w.Code)
	}
	// The submitted text survives so the operator's edits are not lost.
	if !strings.Contains(w.Body.String(), "wrong") {
		t.Error("rejected document not preserved in the form")
	}
	if kv.Len() != 0 {
		t.Error("rejected save mutated the store")
	}
}

func TestSectionEditorUnknownKey(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/admin/sections/bogus", nil)
	r.AddCookie(sessionCookie(t, srv))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown section: got %d, want 404", w.Code)
	}
}

func TestResourceAddAndDelete(t *testing.T) {
	objects := blob.NewMemory()
	srv, _ := newTestServer(t, objects)
	cookie := sessionCookie(t, srv)

	// Upload a document through the admin form.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "Intake Guide")
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="guide.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	_, _ = part.Write([]byte("%PDF-1.4"))
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/admin/resources", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("resource add: got %d, want 303", w.Code)
	}

	// The document shows on the public resources page.
	w2 := httptest.NewRecorder()
	srv.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/resources", nil))
	if !strings.Contains(w2.Body.String(), "Intake Guide") {
		t.Fatal("uploaded resource not listed on the public page")
	}

	// Find its ID through the content API and delete it.
	w3 := httptest.NewRecorder()
	srv.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/api/admin/content?section=resources", nil))
	res := decodeBody(t, w3)["resources"].(map[string]any)
	docs := res["documents"].([]any)
	if len(docs) != 1 {
		t.Fatalf("documents: got %d, want 1", len(docs))
	}
	id := docs[0].(map[string]any)["id"].(string)

	form := strings.NewReader("id=" + id)
	r = httptest.NewRequest(http.MethodPost, "/admin/resources/delete", form)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(cookie)
	w4 := httptest.NewRecorder()
	srv.ServeHTTP(w4, r)
	if w4.Code != http.StatusSeeOther {
		t.Fatalf("resource delete: got %d, want 303", w4.Code)
	}

	w5 := httptest.NewRecorder()
	srv.ServeHTTP(w5, httptest.NewRequest(http.MethodGet, "/resources", nil))
	if strings.Contains(w5.Body.String(), "Intake Guide") {
		t.Error("deleted resource still listed")
	}
}
