package server

import (
	"encoding/json"
	"net/http"

	"github.com/haruto/threads-studio/internal/generation"
	"github.com/haruto/threads-studio/internal/templates"
	"github.com/haruto/threads-studio/internal/types"
)

type generateRequest struct {
	TemplateID        string   `json:"templateId"`
	TemplateStructure string   `json:"templateStructure"`
	ReferenceTexts    []string `json:"referenceTexts"`
	ReferencePostIDs  []string `json:"referencePostIds"`
	Count             int      `json:"count"`
}

// buildGenerationRequest resolves the stored profile, template and
// references into the immutable payload generation calls are built from.
func (s *Server) buildGenerationRequest(w http.ResponseWriter, r *http.Request, req generateRequest) (generation.Request, bool) {
	profile, err := s.deps.Profiles.GetProfile(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return generation.Request{}, false
	}
	if profile == nil {
		s.serviceError(w, generation.ErrMissingProfile)
		return generation.Request{}, false
	}

	structure := req.TemplateStructure
	if req.TemplateID != "" {
		template, ok := templates.ByID(req.TemplateID)
		if !ok {
			s.errorResponse(w, http.StatusNotFound, "template not found")
			return generation.Request{}, false
		}
		structure = template.Structure
	}

	references := append([]string(nil), req.ReferenceTexts...)
	for _, raw := range req.ReferencePostIDs {
		id, ok := parseUUIDParam(raw)
		if !ok {
			s.errorResponse(w, http.StatusBadRequest, "invalid reference post id")
			return generation.Request{}, false
		}
		post, err := s.deps.Research.Get(r.Context(), id)
		if err != nil {
			s.serviceError(w, err)
			return generation.Request{}, false
		}
		references = append(references, post.Content)
	}

	return generation.Request{
		Profile:           *profile,
		TemplateStructure: structure,
		ReferenceTexts:    references,
	}, true
}

// handleGenerate produces a single candidate post.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	genReq, ok := s.buildGenerationRequest(w, r, req)
	if !ok {
		return
	}

	candidate, err := s.deps.Generator.Generate(r.Context(), genReq)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleGenerateBatch produces count candidates in parallel. The batch is
// all-or-nothing: any failed call fails the whole request.
func (s *Server) handleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !generation.ValidBatchSize(req.Count) {
		s.errorResponse(w, http.StatusBadRequest, "count must be 1, 3, 5 or 10")
		return
	}

	genReq, ok := s.buildGenerationRequest(w, r, req)
	if !ok {
		return
	}

	candidates, err := s.deps.Generator.GenerateBatch(r.Context(), genReq, req.Count)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

type variationRequest struct {
	Content       string              `json:"content" validate:"required"`
	VariationType types.VariationType `json:"variationType" validate:"required,oneof=hook cta emoji tone"`
}

// handleGenerateVariation produces an A/B variation of existing content
// that changes only the named dimension.
func (s *Server) handleGenerateVariation(w http.ResponseWriter, r *http.Request) {
	var req variationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidate, err := s.deps.Generator.GenerateVariation(r.Context(), req.Content, req.VariationType)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}
