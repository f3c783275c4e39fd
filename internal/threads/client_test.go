package threads

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-token", "17841400000000000")
	require.NoError(t, err)
	return client.WithBaseURL(server.URL)
}

func TestPublish_TwoPhaseFlow(t *testing.T) {
	var containerForm, publishForm map[string]string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form := map[string]string{}
		for key := range r.PostForm {
			form[key] = r.PostForm.Get(key)
		}

		switch r.URL.Path {
		case "/17841400000000000/threads":
			containerForm = form
			_, _ = w.Write([]byte(`{"id": "container-123"}`))
		case "/17841400000000000/threads_publish":
			publishForm = form
			_, _ = w.Write([]byte(`{"id": "17912345678901234"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	postID, err := client.Publish(context.Background(), "朝活のすすめ")

	require.NoError(t, err)
	assert.Equal(t, "17912345678901234", postID)
	assert.Equal(t, "TEXT", containerForm["media_type"])
	assert.Equal(t, "朝活のすすめ", containerForm["text"])
	assert.Equal(t, "test-token", containerForm["access_token"])
	assert.Equal(t, "container-123", publishForm["creation_id"])
	assert.Equal(t, "test-token", publishForm["access_token"])
}

func TestPublish_SurfacesUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid OAuth access token."}}`))
	}))

	_, err := client.Publish(context.Background(), "本文")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid OAuth access token.", apiErr.Message)
}

func TestPublish_PublishPhaseFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/17841400000000000/threads" {
			_, _ = w.Write([]byte(`{"id": "container-123"}`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "Application request limit reached"}}`))
	}))

	_, err := client.Publish(context.Background(), "本文")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish container")
	assert.Contains(t, err.Error(), "Application request limit reached")
}

func TestPublish_EmptyContent(t *testing.T) {
	client, err := NewClient("token", "user")
	require.NoError(t, err)

	_, err = client.Publish(context.Background(), "")
	assert.Error(t, err)
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "user")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewClient("token", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
