package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/haruto/threads-studio/internal/posts"
	"github.com/haruto/threads-studio/internal/types"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	list, err := s.deps.Posts.List(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if list == nil {
		list = []types.GeneratedPost{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var input posts.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	post, err := s.deps.Posts.Create(r.Context(), input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, post)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	post, err := s.deps.Posts.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

type updatePostRequest struct {
	Content string            `json:"content"`
	Status  *types.PostStatus `json:"status"`
}

// handleUpdatePost rewrites the post body, moves it through the lifecycle,
// or both. Content edits apply before status moves; the move is checked up
// front so a rejected move never leaves a half-applied edit.
func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" && req.Status == nil {
		s.errorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}

	if req.Content != "" && req.Status != nil {
		current, err := s.deps.Posts.Get(r.Context(), id)
		if err != nil {
			s.serviceError(w, err)
			return
		}
		if !current.Status.CanTransitionTo(*req.Status) {
			s.serviceError(w, &posts.InvalidTransitionError{From: current.Status, To: *req.Status})
			return
		}
	}

	var (
		post *types.GeneratedPost
		err  error
	)
	if req.Content != "" {
		post, err = s.deps.Posts.UpdateContent(r.Context(), id, req.Content)
		if err != nil {
			s.serviceError(w, err)
			return
		}
	}
	if req.Status != nil {
		post, err = s.deps.Posts.SetStatus(r.Context(), id, *req.Status)
		if err != nil {
			s.serviceError(w, err)
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, post)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.deps.Posts.Delete(r.Context(), id); err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type scheduleRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

func (s *Server) handleSchedulePost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	post, err := s.deps.Posts.Schedule(r.Context(), id, req.ScheduledAt)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

func (s *Server) handlePublishPost(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	post, err := s.deps.Posts.Publish(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}

func (s *Server) handleRecordPerformance(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var input posts.PerformanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	post, err := s.deps.Posts.RecordPerformance(r.Context(), id, input)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, post)
}
