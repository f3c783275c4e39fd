package server

import (
	"encoding/json"
	"net/http"

	"github.com/haruto/threads-studio/internal/scrape"
)

type scrapeRequest struct {
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"omitempty,oneof=auto post profile"`
}

// handleScrape pulls metadata from a Threads URL. The URL type is detected
// from the path unless the caller forces one.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	urlType := scrape.URLType(req.Type)
	if req.Type == "" || req.Type == "auto" {
		urlType = scrape.DetectURLType(req.URL)
	}

	switch urlType {
	case scrape.URLTypePost:
		result, err := s.deps.Scraper.Post(r.Context(), req.URL)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, result)
	default:
		result, err := s.deps.Scraper.Profile(r.Context(), req.URL)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, result)
	}
}
