package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/haruto/threads-studio/internal/research"
	"github.com/haruto/threads-studio/internal/types"
)

// handleListResearch lists research posts; ?tags=a,b filters to posts
// carrying any of the given tags.
func (s *Server) handleListResearch(w http.ResponseWriter, r *http.Request) {
	var (
		result []types.ResearchPost
		err    error
	)
	if tags := r.URL.Query().Get("tags"); tags != "" {
		result, err = s.deps.Research.FilterByTags(r.Context(), strings.Split(tags, ","))
	} else {
		result, err = s.deps.Research.List(r.Context())
	}
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if result == nil {
		result = []types.ResearchPost{}
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleCreateResearch(w http.ResponseWriter, r *http.Request) {
	var input research.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	post, err := s.deps.Research.Create(r.Context(), input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, post)
}

func (s *Server) handleGetResearch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	post, err := s.deps.Research.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

func (s *Server) handleUpdateResearch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var input research.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	post, err := s.deps.Research.Update(r.Context(), id, input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

func (s *Server) handleDeleteResearch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.deps.Research.Delete(r.Context(), id); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleTopResearch returns the highest-engagement posts. ?limit= overrides
// the default of 10.
func (s *Server) handleTopResearch(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	top, err := s.deps.Research.Top(r.Context(), limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if top == nil {
		top = []types.ResearchPost{}
	}
	s.jsonResponse(w, http.StatusOK, top)
}

func (s *Server) handleResearchTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.deps.Research.Tags(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	s.jsonResponse(w, http.StatusOK, tags)
}

type analyzeRequest struct {
	// Empty means analyze the top posts; otherwise the named posts.
	PostIDs []string `json:"postIds"`
}

// handleAnalyzeResearch runs LLM analysis over a batch of research posts.
func (s *Server) handleAnalyzeResearch(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var batch []types.ResearchPost
	if len(req.PostIDs) == 0 {
		top, err := s.deps.Research.Top(r.Context(), 0)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		batch = top
	} else {
		for _, raw := range req.PostIDs {
			id, ok := parseUUIDParam(raw)
			if !ok {
				s.errorResponse(w, http.StatusBadRequest, "invalid post id")
				return
			}
			post, err := s.deps.Research.Get(r.Context(), id)
			if err != nil {
				s.serviceError(w, err)
				return
			}
			batch = append(batch, *post)
		}
	}

	result, err := s.deps.Analyzer.Analyze(r.Context(), batch)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
