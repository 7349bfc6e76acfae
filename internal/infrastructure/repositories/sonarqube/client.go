package sonarqube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// Client is a minimal SonarQube Web API client. The admin token is resolved on
// the first request, not at construction.
type Client struct {
	baseURL    string
	token      func() (string, error)
	httpClient *retryablehttp.Client
}

// NewClient creates a SonarQube client for the configured server.
func NewClient(settings *entities.Settings, lookup entities.EnvLookup) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.HTTPClient.Timeout = settings.Timeout
	httpClient.RetryMax = settings.Retry.MaxAttempts - 1
	httpClient.RetryWaitMin = settings.Retry.WaitMin
	httpClient.RetryWaitMax = settings.Retry.WaitMax
	httpClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	httpClient.Logger = leveledLogger{}

	explicit := settings.Token
	return &Client{
		baseURL:    strings.TrimSuffix(settings.URL, "/"),
		httpClient: httpClient,
		token: sync.OnceValues(func() (string, error) {
			return entities.ResolveToken(explicit, lookup)
		}),
	}
}

// BaseURL returns the address of the SonarQube server.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorResponse is the body SonarQube sends along with 4xx answers.
type errorResponse struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse %s response: %w", entities.ErrMalformedResponse, endpoint, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, query url.Values) ([]byte, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}

	target := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	logger.Debugf("%s %s", method, target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", entities.ErrTransport, method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", entities.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(endpoint, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// statusError maps a non-2xx answer to one of the entities sentinel errors.
func statusError(endpoint string, status int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	var parsed errorResponse
	if json.Unmarshal(body, &parsed) == nil && len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Msg)
		}
		detail = strings.Join(msgs, "; ")
	}

	var kind error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = entities.ErrAuth
	case http.StatusNotFound:
		kind = entities.ErrNotFound
	default:
		kind = entities.ErrTransport
	}
	return fmt.Errorf("%w: %s (status %d): %s", kind, endpoint, status, detail)
}
