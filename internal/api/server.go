// Package api provides the HTTP API server and handlers for the bookmarks service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fberrez/bookmarks/internal/service"
	"github.com/fberrez/bookmarks/internal/store"
	"github.com/fberrez/bookmarks/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	bookmarks *service.BookmarkService
	validator *validation.Validator
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *store.Store, bookmarks *service.BookmarkService, logger *slog.Logger) *Server {
	s := &Server{
		store:     store,
		bookmarks: bookmarks,
		validator: validation.New(),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/bookmarks", func(r chi.Router) {
		r.Get("/", s.handleListBookmarks)
		r.Post("/", s.handleCreateBookmark)
		r.Get("/{id}", s.handleGetBookmark)
		r.Put("/{id}", s.handleUpdateBookmark)
		r.Delete("/{id}", s.handleDeleteBookmark)
	})
}
