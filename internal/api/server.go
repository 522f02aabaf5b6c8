// Package api exposes the game core and element catalog to display
// surfaces over HTTP. Handlers only translate between JSON and the pure
// core operations; all game semantics live below this package.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"periodictutor/internal/adiabatic"
	"periodictutor/internal/elements"
	"periodictutor/internal/session"
	"periodictutor/internal/store"
)

// Server handles HTTP requests.
type Server struct {
	db         store.DB
	catalog    *elements.Catalog
	sessions   *session.Manager
	scenario   adiabatic.Scenario
	corsOrigin string
	logger     *log.Logger
	startTime  time.Time
}

// NewServer creates a new API server around the given element database and
// default game scenario.
func NewServer(db store.DB, catalog *elements.Catalog, scenario adiabatic.Scenario, corsOrigin string) *Server {
	return &Server{
		db:         db,
		catalog:    catalog,
		sessions:   session.NewManager(),
		scenario:   scenario,
		corsOrigin: corsOrigin,
		logger:     log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile),
		startTime:  time.Now(),
	}
}

// Routes sets up the HTTP routes with proper middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.recoveryHandler)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealthCheck)
	r.Get("/health/ready", s.handleReadiness)
	r.Get("/health/live", s.handleLiveness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{id}", s.handleGetSession)
			r.Delete("/{id}", s.handleDeleteSession)
			r.Put("/{id}/volume", s.handleSetVolume)
			r.Post("/{id}/advance", s.handleAdvance)
			r.Post("/{id}/guess", s.handleGuess)
		})

		r.Get("/elements", s.handleListElements)
		r.Get("/elements/alphabet", s.handleAlphabet)
		r.Get("/elements/{query}", s.handleGetElement)
	})

	return r
}

// corsMiddleware allows the browser-hosted display surface to call the API
// from another origin during development.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recoveryHandler turns panics into structured 500 responses.
func (s *Server) recoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				requestID := middleware.GetReqID(r.Context())
				s.logger.Printf("panic_recovered request_id=%s path=%s panic=%v", requestID, r.URL.Path, rvr)
				s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, "Internal server error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-App-Version", AppVersion)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string, context map[string]any) {
	requestID := middleware.GetReqID(r.Context())

	if status >= 500 {
		s.logger.Printf("error type=%s status=%d request_id=%s path=%s message=%q",
			errType, status, requestID, r.URL.Path, message)
	}

	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		Context:   context,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
