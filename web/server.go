// ABOUTME: HTTP server for the public site, admin pages, and the content JSON API.
// ABOUTME: Routes through chi with logging/recovery middleware and graceful shutdown.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/familybond-au/familybond/blob"
	"github.com/familybond-au/familybond/content"
	"github.com/familybond-au/familybond/server"
)

// ServerConfig holds the collaborators the web server is wired with.
type ServerConfig struct {
	Addr     string
	Accessor *content.Accessor
	Sessions *server.Sessions
	// Objects may be nil, which disables the upload passthrough.
	Objects blob.ObjectStore
}

// Server serves the marketing site, the admin surface, and the JSON API.
type Server struct {
	addr     string
	accessor *content.Accessor
	sessions *server.Sessions
	objects  blob.ObjectStore
	renderer *TemplateRenderer
	router   chi.Router
}

// NewServer creates a configured web server.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8311"
	}
	if cfg.Accessor == nil {
		return nil, errors.New("content accessor is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session guard is required")
	}

	renderer, err := NewTemplateRendererFromFS(ContentFS)
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	s := &Server{
		addr:     cfg.Addr,
		accessor: cfg.Accessor,
		sessions: cfg.Sessions,
		objects:  cfg.Objects,
		renderer: renderer,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the HTTP server until the context ends, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	serveErr := make(chan error, 1)
	log.Printf("component=web action=listening addr=%s", s.addr)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	staticFS, err := fs.Sub(ContentFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Public pages
	r.Get("/", s.handleHome)
	r.Get("/services", s.handleServices)
	r.Get("/resources", s.handleResources)
	r.Get("/legal/{slug}", s.handleLegal)

	// Admin pages; everything except login sits behind the session guard.
	r.Get("/admin/login", s.handleLoginPage)
	r.Post("/admin/login", s.handleLoginForm)
	r.Post("/admin/logout", s.handleLogoutForm)
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return server.RequireAuth(next, s.sessions, "/admin/login")
		})
		r.Get("/admin", s.handleDashboard)
		r.Get("/admin/sections/{key}", s.handleSectionEditor)
		r.Post("/admin/sections/{key}", s.handleSectionSave)
		r.Get("/admin/resources", s.handleResourcesAdmin)
		r.Post("/admin/resources", s.handleResourceAdd)
		r.Post("/admin/resources/delete", s.handleResourceDelete)
	})

	// JSON API
	r.Get("/api/admin/content", s.handleContentGet)
	r.Post("/api/admin/content", s.handleContentPost)
	r.Get("/api/admin/auth/session", s.handleSessionStatus)
	r.Post("/api/admin/auth/login", s.handleLoginJSON)
	r.Post("/api/admin/auth/logout", s.handleLogoutJSON)
	r.Post("/api/upload", s.handleUpload)

	return r
}
