package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"periodictutor/internal/elements"
)

// handleListElements returns the full catalog, ordered by atomic number.
func (s *Server) handleListElements(w http.ResponseWriter, r *http.Request) {
	els := s.catalog.All()
	s.writeJSON(w, http.StatusOK, ElementsResponse{
		Elements:   els,
		Count:      len(els),
		AppVersion: AppVersion,
	})
}

// handleGetElement resolves a symbol or name query to one element.
func (s *Server) handleGetElement(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	el, err := s.catalog.Find(query)
	if errors.Is(err, elements.ErrNotFound) {
		s.writeError(w, r, http.StatusNotFound, ErrTypeElementNotFound, "Element not found",
			map[string]any{"query": query})
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error(), nil)
		return
	}

	s.writeJSON(w, http.StatusOK, ElementResponse{
		Element:    el,
		AppVersion: AppVersion,
	})
}

// handleAlphabet returns the A-Z buckets for the letter-matching game.
func (s *Server) handleAlphabet(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, AlphabetResponse{
		Groups:     elements.GroupByInitial(s.catalog.All()),
		AppVersion: AppVersion,
	})
}
