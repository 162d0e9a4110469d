// Package archive fetches JSON resource representations from the upstream
// data service over plain HTTP GET. Failures are surfaced, never retried.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/evac-plan-etl/internal/observability"
)

// RequestError reports a transport-level fetch failure, including non-200
// responses.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("archive: request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not a valid JSON object.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("archive: decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client fetches resources from the archive service.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an archive client with a fixed per-request timeout.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// URL joins a resource path onto the configured endpoint,
// e.g. URL("/people/") -> "https://swapi.py4e.com/api/people/".
func (c *Client) URL(path string) string {
	return c.endpoint + "/" + strings.TrimLeft(path, "/")
}

// GetResource performs a single GET against resourceURL (absolute, typically
// taken from another record's reference field) and decodes the JSON object
// response. Optional query values are appended to the request.
func (c *Client) GetResource(ctx context.Context, resourceURL string, query url.Values) (map[string]any, error) {
	fullURL := resourceURL
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(resourceURL, "?") {
			sep = "&"
		}
		fullURL = resourceURL + sep + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &RequestError{URL: fullURL, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ArchiveRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ArchiveRequests.WithLabelValues("network_error").Inc()
		return nil, &RequestError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ArchiveRequests.WithLabelValues("network_error").Inc()
		return nil, &RequestError{URL: fullURL, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var resource map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		c.metrics.ArchiveRequests.WithLabelValues("decode_error").Inc()
		return nil, &DecodeError{URL: fullURL, Err: err}
	}

	c.metrics.ArchiveRequests.WithLabelValues("success").Inc()
	c.logger.Debug("archive resource fetched", "url", fullURL)
	return resource, nil
}
