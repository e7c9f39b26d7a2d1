// Package server hosts the report editor's HTTP surface: the REST API, the
// live preview websocket and the static frontend assets.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/db"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/editor"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/generate"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/storage"
)

// Config holds server configuration.
type Config struct {
	Port     int
	DataDir  string // directory for the SQLite DB
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server wires the editor session, the persistence store and the generation
// client behind one router.
type Server struct {
	cfg        Config
	db         *db.DB
	store      *storage.Store
	session    *editor.Session
	hub        *editor.Hub
	generator  *generate.Client
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around an already-loaded session.
func New(cfg Config, database *db.DB, store *storage.Store, session *editor.Session, hub *editor.Hub, generator *generate.Client) *Server {
	s := &Server{
		cfg:       cfg,
		db:        database,
		store:     store,
		session:   session,
		hub:       hub,
		generator: generator,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	editor.RegisterRoutes(r, s.session, s.store)
	generate.RegisterRoutes(r, s.generator, func() *report.ReportDocument {
		return s.session.Snapshot()
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Session returns the live editing session.
func (s *Server) Session() *editor.Session { return s.session }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		// No WriteTimeout: the preview websocket and slow document
		// generation both outlive any sane fixed deadline.
		IdleTimeout: 120 * time.Second,
	}

	log.Printf("rapport editor listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and flushes pending work.
func (s *Server) Shutdown(ctx context.Context) error {
	s.session.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
