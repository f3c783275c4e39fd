package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/haruto/threads-studio/internal/types"
)

type profileRequest struct {
	Genre          string             `json:"genre"`
	TargetAudience string             `json:"targetAudience"`
	BackendProduct string             `json:"backendProduct"`
	ToneSettings   types.ToneSettings `json:"toneSettings" validate:"required"`
}

// handleGetProfile returns the operator profile. A fresh install without a
// saved profile answers with the default tone so the dashboard can render.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.deps.Profiles.GetProfile(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if profile == nil {
		profile = &types.UserProfile{ToneSettings: types.DefaultToneSettings()}
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleSaveProfile creates or replaces the operator profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing, err := s.deps.Profiles.GetProfile(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}

	now := time.Now().UTC()
	profile := &types.UserProfile{
		ID:             uuid.New(),
		Genre:          req.Genre,
		TargetAudience: req.TargetAudience,
		BackendProduct: req.BackendProduct,
		ToneSettings:   req.ToneSettings,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.deps.Profiles.SaveProfile(r.Context(), profile); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleResetProfile deletes the stored profile, returning the dashboard to
// its initial state.
func (s *Server) handleResetProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Profiles.DeleteProfile(r.Context()); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}
