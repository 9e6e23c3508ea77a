package serviceusage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"scriptctl/pkg/logging"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production Service Usage API endpoint.
const DefaultBaseURL = "https://serviceusage.googleapis.com"

// registryDomain is the suffix every Google service name carries in the
// registry.
const registryDomain = "googleapis.com"

// ResourceName derives the registry resource name for a service within a
// project, e.g. projects/my-proj/services/sheets.googleapis.com.
func ResourceName(projectID, service string) string {
	return fmt.Sprintf("projects/%s/services/%s.%s", projectID, service, registryDomain)
}

// Service is one registry entry, as returned by the list endpoint.
type Service struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Config struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"config"`
}

type listResponse struct {
	Services      []Service `json:"services"`
	NextPageToken string    `json:"nextPageToken"`
}

// Client talks to the Service Usage API over an authorized HTTP client.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a registry client. An empty baseURL uses the production
// endpoint.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: baseURL, http: httpClient}
}

// Enable turns the named service on. The name is a full resource name as
// produced by ResourceName.
func (c *Client) Enable(ctx context.Context, name string) error {
	return c.post(ctx, name, "enable")
}

// Disable turns the named service off.
func (c *Client) Disable(ctx context.Context, name string) error {
	return c.post(ctx, name, "disable")
}

func (c *Client) post(ctx context.Context, name, verb string) error {
	endpoint := fmt.Sprintf("%s/v1/%s:%s", c.base, name, verb)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", verb, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	logging.Debug("Registry", "POST %s request=%s", endpoint, reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", verb, name, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		// A non-existent service commonly comes back as 403 here, not 404.
		logging.Warn("Registry", "%s %s returned %s request=%s", verb, name, resp.Status, reqID)
		return fmt.Errorf("%s %s: remote returned %s", verb, name, resp.Status)
	}
	return nil
}

// ListEnabled pages through the services currently enabled for the project.
func (c *Client) ListEnabled(ctx context.Context, projectID string) ([]Service, error) {
	var services []Service
	pageToken := ""

	for {
		endpoint := fmt.Sprintf("%s/v1/projects/%s/services?%s", c.base, projectID, url.Values{
			"filter":   {"state:ENABLED"},
			"pageSize": {"200"},
		}.Encode())
		if pageToken != "" {
			endpoint += "&pageToken=" + url.QueryEscape(pageToken)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("building list request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("listing enabled services: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("listing enabled services: remote returned %s", resp.Status)
		}

		var page listResponse
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding service list: %w", err)
		}

		services = append(services, page.Services...)
		if page.NextPageToken == "" {
			return services, nil
		}
		pageToken = page.NextPageToken
	}
}
