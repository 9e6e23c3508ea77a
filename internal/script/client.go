package script

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"scriptctl/pkg/logging"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production Apps Script API endpoint.
const DefaultBaseURL = "https://script.googleapis.com"

// RemoteFetchError indicates the script content read came back with a
// non-success status. It carries the remote status text for the user.
type RemoteFetchError struct {
	// StatusText is the HTTP status line text from the remote API.
	StatusText string
}

// Error returns the remote status text.
func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("fetching project content failed: %s", e.StatusText)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *RemoteFetchError) Is(target error) bool {
	_, ok := target.(*RemoteFetchError)
	return ok
}

// RunError indicates the remote function execution itself failed inside the
// script runtime.
type RunError struct {
	// Function is the function that was invoked.
	Function string
	// Message is the script error message reported by the API.
	Message string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("running %s failed: %s", e.Function, e.Message)
}

// Client talks to the Apps Script API over an authorized HTTP client.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a script API client. An empty baseURL uses the
// production endpoint.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: baseURL, http: httpClient}
}

// Content reads the remote project's file list. A single attempt is made;
// network-level retries are the caller's business, and there are none.
func (c *Client) Content(ctx context.Context, scriptID string) ([]File, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/content", c.base, scriptID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building content request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	logging.Debug("Script", "GET %s request=%s", url, reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching project content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		logging.Warn("Script", "content fetch for %s returned %s request=%s", scriptID, resp.Status, reqID)
		return nil, &RemoteFetchError{StatusText: resp.Status}
	}

	var content Content
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return nil, fmt.Errorf("decoding project content: %w", err)
	}
	return content.Files, nil
}

// Functions fetches the remote content and reduces it to the flattened
// function catalog.
func (c *Client) Functions(ctx context.Context, scriptID string) ([]string, error) {
	files, err := c.Content(ctx, scriptID)
	if err != nil {
		return nil, err
	}
	catalog := Catalog(files)
	logging.Debug("Script", "catalog for %s has %d functions across %d files", scriptID, len(catalog), len(files))
	return catalog, nil
}

type runRequest struct {
	Function string `json:"function"`
	DevMode  bool   `json:"devMode"`
}

type runResponse struct {
	Done  bool `json:"done"`
	Error *struct {
		Message string `json:"message"`
		Details []struct {
			ErrorMessage string `json:"errorMessage"`
		} `json:"details"`
	} `json:"error,omitempty"`
	Response *struct {
		Result json.RawMessage `json:"result"`
	} `json:"response,omitempty"`
}

// Run executes a function of the remote project in dev mode and returns the
// raw JSON result, which may be empty for void functions.
func (c *Client) Run(ctx context.Context, scriptID, function string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/v1/scripts/%s:run", c.base, scriptID)

	body, err := json.Marshal(runRequest{Function: function, DevMode: true})
	if err != nil {
		return nil, fmt.Errorf("encoding run request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building run request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	logging.Debug("Script", "POST %s function=%s request=%s", url, function, reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", function, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &RemoteFetchError{StatusText: resp.Status}
	}

	var out runResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding run response: %w", err)
	}
	if out.Error != nil {
		msg := out.Error.Message
		if len(out.Error.Details) > 0 && out.Error.Details[0].ErrorMessage != "" {
			msg = out.Error.Details[0].ErrorMessage
		}
		return nil, &RunError{Function: function, Message: msg}
	}
	if out.Response == nil {
		return nil, nil
	}
	return out.Response.Result, nil
}
