package server

import (
	"net/http"

	"github.com/haruto/threads-studio/internal/templates"
)

// handleListTemplates returns the template catalog, optionally filtered by
// pattern via ?pattern=.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if pattern := r.URL.Query().Get("pattern"); pattern != "" {
		s.jsonResponse(w, http.StatusOK, templates.ByPattern(pattern))
		return
	}
	s.jsonResponse(w, http.StatusOK, templates.All())
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	template, ok := templates.ByID(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "template not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, template)
}
