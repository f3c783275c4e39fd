// Package server provides the HTTP REST API for the Threads studio.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/haruto/threads-studio/internal/analysis"
	"github.com/haruto/threads-studio/internal/generation"
	"github.com/haruto/threads-studio/internal/posts"
	"github.com/haruto/threads-studio/internal/research"
	"github.com/haruto/threads-studio/internal/scrape"
)

// ErrInvalidPasscode indicates a failed login attempt.
type ErrInvalidPasscode struct{}

func (e *ErrInvalidPasscode) Error() string {
	return "invalid passcode"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		invalidPasscode *ErrInvalidPasscode
		validation      *ErrValidation
		badTransition   *posts.InvalidTransitionError
		badAnalysis     *analysis.ValidationError
	)

	switch {
	case errors.As(err, &invalidPasscode):
		return http.StatusUnauthorized
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, research.ErrNotFound), errors.Is(err, posts.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &badTransition),
		errors.Is(err, posts.ErrNotEditable),
		errors.Is(err, posts.ErrMissingSchedule),
		errors.Is(err, posts.ErrNotPosted):
		return http.StatusConflict
	case errors.Is(err, posts.ErrEmptyContent),
		errors.Is(err, generation.ErrMissingProfile),
		errors.Is(err, generation.ErrMissingTemplate),
		errors.Is(err, generation.ErrMissingContent),
		errors.Is(err, analysis.ErrNoPosts),
		errors.Is(err, scrape.ErrNotThreadsURL):
		return http.StatusBadRequest
	case errors.Is(err, posts.ErrNoPublisher):
		return http.StatusServiceUnavailable
	case errors.As(err, &badAnalysis):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
