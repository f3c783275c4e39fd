package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/haruto/threads-studio/internal/types"
)

type presetRequest struct {
	Name     string             `json:"name" validate:"required"`
	Settings types.ToneSettings `json:"settings" validate:"required"`
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.deps.Presets.ListTonePresets(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if presets == nil {
		presets = []types.TonePreset{}
	}
	s.jsonResponse(w, http.StatusOK, presets)
}

func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	now := time.Now().UTC()
	preset := &types.TonePreset{
		ID:        uuid.New(),
		Name:      req.Name,
		Settings:  req.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deps.Presets.InsertTonePreset(r.Context(), preset); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, preset)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	preset, err := s.deps.Presets.GetTonePreset(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if preset == nil {
		s.errorResponse(w, http.StatusNotFound, "tone preset not found")
		return
	}

	if err := s.deps.Presets.DeleteTonePreset(r.Context(), id); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
