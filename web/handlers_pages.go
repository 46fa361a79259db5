// ABOUTME: Handlers for the public server-rendered pages: home, services, resources, legal.
// ABOUTME: Every page degrades to default content when the store is unavailable.
package web

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/familybond-au/familybond/content"
	"github.com/familybond-au/familybond/legal"
)

// pageChrome carries the shared header/footer data every public page needs.
type pageChrome struct {
	Title    string
	Settings *content.SiteSettings
	Nav      []content.NavLink
	Footer   *content.Footer
}

// chrome assembles the shared page data from the content store.
func (s *Server) chrome(r *http.Request, titleSuffix string) pageChrome {
	ctx := r.Context()
	settings := s.accessor.SiteSettings(ctx)
	nav := s.accessor.Get(ctx, content.KeyNavigation).(*content.Navigation)

	title := settings.SiteName
	if titleSuffix != "" {
		title = titleSuffix + " — " + settings.SiteName
	}
	return pageChrome{
		Title:    title,
		Settings: settings,
		Nav:      []content.NavLink(*nav),
		Footer:   s.accessor.Footer(ctx),
	}
}

// homePageData is the view-model for the landing page.
type homePageData struct {
	pageChrome
	Home *content.Home
}

// handleHome renders the landing page from the nine-section aggregate.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	home := s.accessor.GetAll(r.Context())
	s.renderer.Render(w, "home.html", homePageData{
		pageChrome: s.chrome(r, ""),
		Home:       home,
	})
}

// servicesPageData is the view-model for the services page.
type servicesPageData struct {
	pageChrome
	Services *content.Services
}

// handleServices renders the services page.
func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	services := s.accessor.Services(r.Context())
	s.renderer.Render(w, "services.html", servicesPageData{
		pageChrome: s.chrome(r, services.PageTitle),
		Services:   services,
	})
}

// resourcesPageData is the view-model for the resources page.
type resourcesPageData struct {
	pageChrome
	Resources *content.Resources
}

// handleResources renders the downloadable-resources page.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	resources := s.accessor.Resources(r.Context())
	s.renderer.Render(w, "resources.html", resourcesPageData{
		pageChrome: s.chrome(r, resources.SectionTitle),
		Resources:  resources,
	})
}

// handleLegal serves a rendered legal document by slug.
func (s *Server) handleLegal(w http.ResponseWriter, r *http.Request) {
	doc, ok := legal.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	page, err := legal.RenderHTML(doc)
	if err != nil {
		log.Printf("component=web action=legal slug=%s err=%v", doc.Slug, err)
		http.Error(w, "failed to render document", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
