package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"scriptctl/pkg/logging"

	"golang.org/x/oauth2"
)

const (
	credentialsDir  = ".scriptctl"
	credentialsFile = "credentials.json"
)

// CredentialsError indicates stored credentials are missing or unusable.
type CredentialsError struct {
	// Path is the credentials file that was consulted.
	Path string
	// Reason is the underlying error, if any.
	Reason error
}

// Error returns a user-friendly message with actionable guidance.
func (e *CredentialsError) Error() string {
	return fmt.Sprintf(`No usable credentials at %s

Authorize scriptctl first by saving an OAuth2 token there, for example:
  gcloud auth application-default print-access-token`, e.Path)
}

// Unwrap returns the underlying error.
func (e *CredentialsError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *CredentialsError) Is(target error) bool {
	_, ok := target.(*CredentialsError)
	return ok
}

// Credentials holds a stored OAuth2 token and hands out authorized HTTP
// clients for the Google APIs.
type Credentials struct {
	token *oauth2.Token
	path  string
}

// DefaultPath returns the credentials file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, credentialsDir, credentialsFile), nil
}

// Load reads and validates the stored token at path. An empty path uses
// DefaultPath. The token is not refreshed here; an expired token surfaces as
// a 401 on the first API call.
func Load(path string) (*Credentials, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &CredentialsError{Path: path}
		}
		return nil, &CredentialsError{Path: path, Reason: err}
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, &CredentialsError{Path: path, Reason: err}
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, &CredentialsError{Path: path}
	}

	logging.Debug("Auth", "loaded credentials from %s", path)
	return &Credentials{token: &token, path: path}, nil
}

// Client returns an *http.Client that attaches the stored token to every
// request.
func (c *Credentials) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(c.token))
}
