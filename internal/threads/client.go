// Package threads is a minimal client for the Threads Graph API publishing
// flow. Publishing is two-phase: a media container is created first, then
// published as a post.
package threads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Threads Graph API endpoint.
const DefaultBaseURL = "https://graph.threads.net/v1.0"

// ErrMissingCredentials is returned when the client has no access token or
// user id.
var ErrMissingCredentials = errors.New("threads access token and user id are required")

// APIError is an error response from the Threads Graph API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("threads api error (status %d): %s", e.StatusCode, e.Message)
}

// Client publishes text posts through the Threads Graph API.
type Client struct {
	baseURL     string
	accessToken string
	userID      string
	httpClient  *http.Client
}

// NewClient builds a Threads client for the given user.
func NewClient(accessToken, userID string) (*Client, error) {
	if accessToken == "" || userID == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		baseURL:     DefaultBaseURL,
		accessToken: accessToken,
		userID:      userID,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Publish posts text content and returns the published post id.
func (c *Client) Publish(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", errors.New("post content is required")
	}

	containerID, err := c.createContainer(ctx, content)
	if err != nil {
		return "", fmt.Errorf("failed to create media container: %w", err)
	}

	postID, err := c.publishContainer(ctx, containerID)
	if err != nil {
		return "", fmt.Errorf("failed to publish container: %w", err)
	}
	return postID, nil
}

func (c *Client) createContainer(ctx context.Context, content string) (string, error) {
	params := url.Values{
		"media_type":   {"TEXT"},
		"text":         {content},
		"access_token": {c.accessToken},
	}
	return c.postForm(ctx, fmt.Sprintf("%s/%s/threads", c.baseURL, c.userID), params)
}

func (c *Client) publishContainer(ctx context.Context, containerID string) (string, error) {
	params := url.Values{
		"creation_id":  {containerID},
		"access_token": {c.accessToken},
	}
	return c.postForm(ctx, fmt.Sprintf("%s/%s/threads_publish", c.baseURL, c.userID), params)
}

// postForm sends a form-encoded POST and returns the id field of the JSON
// response. Error responses surface the upstream error.message when the API
// provides one.
func (c *Client) postForm(ctx context.Context, endpoint string, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		message := "request failed"
		if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error.Message != "" {
			message = errBody.Error.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	var okBody struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &okBody); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if okBody.ID == "" {
		return "", errors.New("response did not include an id")
	}
	return okBody.ID, nil
}
