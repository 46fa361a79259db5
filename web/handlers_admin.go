// ABOUTME: Admin page handlers: dashboard, per-section editor, and resources management.
// ABOUTME: All routes here sit behind the session middleware; saves go through the accessor.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/familybond-au/familybond/content"
)

// sectionCard describes one dashboard entry.
type sectionCard struct {
	Key         string
	Title       string
	Description string
}

// dashboardCards fixes the dashboard layout; the order mirrors the site.
var dashboardCards = []sectionCard{
	{Key: "hero", Title: "Hero Section", Description: "Edit heading, subheading, badges, and hero image"},
	{Key: "features", Title: "Features", Description: "Manage feature cards, highlights, and the approach section"},
	{Key: "process", Title: "Process Steps", Description: "Edit the 4-step process with titles and content"},
	{Key: "pricing", Title: "Pricing", Description: "Update pricing plans and additional info"},
	{Key: "serviceAreas", Title: "Service Areas", Description: "Manage Melbourne regions and council areas"},
	{Key: "about", Title: "About Section", Description: "Edit about content, features list, and team image"},
	{Key: "contact", Title: "Contact", Description: "Manage contact form options and contact info"},
	{Key: "footer", Title: "Footer", Description: "Manage footer columns, links, and contact details"},
	{Key: "navigation", Title: "Navigation", Description: "Edit the header navigation links"},
	{Key: "siteSettings", Title: "Site Settings", Description: "Site name, description, and contact details"},
	{Key: "services", Title: "Services Page", Description: "Edit offerings, fees, travel, and payment terms"},
}

// adminDashboardData is the view-model for the dashboard.
type adminDashboardData struct {
	Title    string
	Sections []sectionCard
	Message  string
}

// handleDashboard renders the admin dashboard of section cards.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.renderer.Render(w, "admin_dashboard.html", adminDashboardData{
		Title:    "Content Dashboard",
		Sections: dashboardCards,
		Message:  r.URL.Query().Get("message"),
	})
}

// adminSectionData is the view-model for the section editor.
type adminSectionData struct {
	Title    string
	Key      string
	Document string
	Message  string
	Error    string
}

// findCard returns the dashboard card for key, defaulting to the key itself.
func findCard(key string) sectionCard {
	for _, card := range dashboardCards {
		if card.Key == key {
			return card
		}
	}
	return sectionCard{Key: key, Title: key}
}

// handleSectionEditor renders the editor for one section with its current
// document pretty-printed for editing.
func (s *Server) handleSectionEditor(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !content.Known(key) {
		http.NotFound(w, r)
		return
	}

	doc := s.accessor.Get(r.Context(), content.Key(key))
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("component=web action=section_editor section=%s err=%v", key, err)
		http.Error(w, "failed to encode document", http.StatusInternalServerError)
		return
	}

	s.renderer.Render(w, "admin_section.html", adminSectionData{
		Title:    findCard(key).Title,
		Key:      key,
		Document: string(pretty),
		Message:  r.URL.Query().Get("message"),
	})
}

// handleSectionSave replaces a section document from the editor form. The
// submitted text is kept on a failed save so the operator's edits survive.
func (s *Server) handleSectionSave(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !content.Known(key) {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	document := r.FormValue("document")
	data := adminSectionData{
		Title:    findCard(key).Title,
		Key:      key,
		Document: document,
	}

	err := s.accessor.Set(r.Context(), content.Key(key), json.RawMessage(document))
	switch {
	case errors.Is(err, content.ErrInvalidDocument):
		data.Error = "The document does not match this section's schema. Nothing was saved."
		w.WriteHeader(http.StatusBadRequest)
		s.renderer.Render(w, "admin_section.html", data)
	case err != nil:
		log.Printf("component=web action=section_save section=%s err=%v", key, err)
		data.Error = "Failed to save. Your edits are still in the form; please try again."
		w.WriteHeader(http.StatusInternalServerError)
		s.renderer.Render(w, "admin_section.html", data)
	default:
		http.Redirect(w, r, "/admin/sections/"+key+"?message="+url.QueryEscape("Saved."), http.StatusSeeOther)
	}
}

// adminResourcesData is the view-model for the resources admin page.
type adminResourcesData struct {
	Title         string
	Resources     *content.Resources
	UploadEnabled bool
	Message       string
	Error         string
}

// handleResourcesAdmin renders the resource list and upload form.
func (s *Server) handleResourcesAdmin(w http.ResponseWriter, r *http.Request) {
	s.renderer.Render(w, "admin_resources.html", adminResourcesData{
		Title:         "Resources",
		Resources:     s.accessor.Resources(r.Context()),
		UploadEnabled: s.objects != nil,
		Message:       r.URL.Query().Get("message"),
		Error:         r.URL.Query().Get("error"),
	})
}

// handleResourceAdd uploads a document and appends it to the resources
// section. The resource list is rewritten wholesale, like every other save.
func (s *Server) handleResourceAdd(w http.ResponseWriter, r *http.Request) {
	fileURL, _, rej := s.storeUpload(r)
	if rej != nil {
		s.redirectResources(w, r, "", rej.message)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = "Document"
	}

	ctx := r.Context()
	resources := s.accessor.Resources(ctx)
	resources.Documents = append(resources.Documents, content.ResourceDocument{
		ID:         uuid.NewString(),
		Name:       name,
		URL:        fileURL,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	})

	if err := s.saveResources(ctx, resources); err != nil {
		log.Printf("component=web action=resource_add err=%v", err)
		s.redirectResources(w, r, "", "Failed to save the resource list.")
		return
	}
	s.redirectResources(w, r, "Resource added.", "")
}

// handleResourceDelete removes one document from the resources section by ID.
func (s *Server) handleResourceDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	id := r.FormValue("id")

	ctx := r.Context()
	resources := s.accessor.Resources(ctx)
	kept := resources.Documents[:0]
	for _, doc := range resources.Documents {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	resources.Documents = kept

	if err := s.saveResources(ctx, resources); err != nil {
		log.Printf("component=web action=resource_delete err=%v", err)
		s.redirectResources(w, r, "", "Failed to save the resource list.")
		return
	}
	s.redirectResources(w, r, "Resource removed.", "")
}

// saveResources writes the resources document back through the accessor.
func (s *Server) saveResources(ctx context.Context, resources *content.Resources) error {
	raw, err := json.Marshal(resources)
	if err != nil {
		return err
	}
	return s.accessor.Set(ctx, content.KeyResources, raw)
}

// redirectResources bounces back to the resources admin page with a banner.
func (s *Server) redirectResources(w http.ResponseWriter, r *http.Request, message, errMsg string) {
	target := "/admin/resources"
	switch {
	case message != "":
		target += "?message=" + url.QueryEscape(message)
	case errMsg != "":
		target += "?error=" + url.QueryEscape(errMsg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
