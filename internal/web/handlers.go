package web

import (
	"net/http"

	"github.com/blackwell-systems/booklist/internal/view"
)

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	success(w, map[string]any{
		"status": "healthy",
		"books":  s.store.Len(),
	}, s.logger)
}

// handleCatalog serves the loaded catalog as a plain JSON array, in the
// same shape the catalog source uses.
func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Books(), s.logger)
}

// handleListBooks returns one page of the filtered, sorted catalog.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		badRequest(w, err.Error(), s.logger)
		return
	}
	success(w, view.Compute(s.store.Books(), q), s.logger)
}

// handleFacets returns the values available for each filter.
func (s *Server) handleFacets(w http.ResponseWriter, _ *http.Request) {
	success(w, s.store.Facets(), s.logger)
}

// handleIndex renders the browsing page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page := renderPage(s.store, q, view.Compute(s.store.Books(), q))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(page)); err != nil {
		s.logger.Debug("Failed to write page", "error", err)
	}
}
