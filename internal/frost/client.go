// Package frost provides a client for the BGS FROST Server, an OGC
// SensorThings API v1.1 deployment.
package frost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/frostlab/sensormcp/internal/errortypes"
	"github.com/frostlab/sensormcp/internal/telemetry"
)

const (
	// DefaultBaseURL is the BGS FROST Server API root.
	DefaultBaseURL = "https://sensors.bgs.ac.uk/FROST-Server/v1.1"

	// DefaultUserAgent identifies this client to the upstream server.
	DefaultUserAgent = "sensormcp/1.0.0"

	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second
)

// ErrUpstreamStatus wraps non-2xx upstream responses.
var ErrUpstreamStatus = errors.New("upstream returned non-success status")

// Fetcher issues a SensorThings request and returns the raw response body.
// endpoint is a path relative to the API root ("" addresses the root
// document itself, "Things(123)/Datastreams" a navigation path).
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, q Query) ([]byte, error)
}

// Client is an HTTP Fetcher against a FROST server.
type Client struct {
	baseURL    string
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	metrics    *telemetry.MetricsCollector
}

// Options configures a Client. Zero fields fall back to defaults.
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Metrics    *telemetry.MetricsCollector
}

// NewClient creates a FROST client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.Metrics == nil {
		opts.Metrics = telemetry.NewMetricsCollector()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		httpClient: &http.Client{Timeout: opts.Timeout},
		metrics:    opts.Metrics,
	}
}

// Metrics exposes the collector so callers can fold client metrics into
// their own reporting.
func (c *Client) Metrics() *telemetry.MetricsCollector {
	return c.metrics
}

// URL renders the absolute request URL for an endpoint and query. It is also
// the response cache key input.
func (c *Client) URL(endpoint string, q Query) string {
	u := c.baseURL
	if endpoint != "" {
		u += "/" + endpoint
	}
	if qs := q.Encode(); qs != "" {
		u += "?" + qs
	}
	return u
}

// Fetch performs a GET against the FROST server with bounded retries.
// Retries cover transport errors and 5xx responses; 4xx responses fail
// immediately since repeating them cannot help.
func (c *Client) Fetch(ctx context.Context, endpoint string, q Query) ([]byte, error) {
	reqURL := c.URL(endpoint, q)

	if name := endpointMetric(endpoint); name != "" {
		c.metrics.IncrementCounter(name, 1)
	}

	accept := "application/json"
	if q.Format == FormatCSV {
		accept = "text/csv"
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			c.metrics.IncrementCounter(telemetry.MetricRetryAttempts, 1)
			select {
			case <-ctx.Done():
				return nil, errortypes.NetworkError(ctx.Err(), "request canceled while waiting to retry")
			case <-time.After(c.retryDelay):
			}
		}

		body, retryable, err := c.fetchOnce(ctx, reqURL, accept)
		if err == nil {
			if attempt > 1 {
				c.metrics.IncrementCounter(telemetry.MetricRetrySuccess, 1)
			}
			c.metrics.IncrementCounter(telemetry.MetricAPICallsSuccess, 1)
			return body, nil
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	c.metrics.IncrementCounter(telemetry.MetricAPICallsFailure, 1)
	return nil, lastErr
}

// endpointMetric maps a request endpoint to its per-entity-set call counter.
// Navigation paths count against the final collection, so
// "Things(1)/Datastreams" bills the Datastreams counter. Unknown paths are
// not counted.
func endpointMetric(endpoint string) string {
	if endpoint == "" {
		return telemetry.MetricAPICallsRoot
	}
	segs := strings.Split(endpoint, "/")
	last := segs[len(segs)-1]
	if i := strings.IndexByte(last, '('); i >= 0 {
		last = last[:i]
	}
	switch last {
	case SetThings:
		return telemetry.MetricAPICallsThings
	case SetLocations:
		return telemetry.MetricAPICallsLocations
	case SetDatastreams:
		return telemetry.MetricAPICallsDatastreams
	case SetObservations:
		return telemetry.MetricAPICallsObservations
	case SetObservedProperties:
		return telemetry.MetricAPICallsObservedProperties
	case SetSensors:
		return telemetry.MetricAPICallsSensors
	case SetFeaturesOfInterest:
		return telemetry.MetricAPICallsFeatures
	}
	return ""
}

// fetchOnce performs a single request. The second return value reports
// whether the failure is worth retrying.
func (c *Client) fetchOnce(ctx context.Context, reqURL, accept string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, errortypes.InternalError(err, "failed to build upstream request")
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, errortypes.NetworkError(ctx.Err(), "upstream request canceled")
		}
		return nil, true, errortypes.NetworkError(err, "failed to reach FROST server").
			WithField("url", reqURL)
	}
	defer resp.Body.Close()
	c.metrics.RecordTimer(telemetry.MetricResponseTimeUpstream, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errortypes.NetworkError(err, "failed to read upstream response").
			WithField("url", reqURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := errortypes.APIError(
			fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode),
			"FROST server request failed").
			WithField("url", reqURL).
			WithField("status", resp.StatusCode).
			WithField("body", excerpt(body, 200))
		return nil, resp.StatusCode >= 500, apiErr
	}

	return body, false, nil
}

// FetchJSON fetches an endpoint and decodes the JSON response into v.
func FetchJSON(ctx context.Context, f Fetcher, endpoint string, q Query, v any) error {
	body, err := f.Fetch(ctx, endpoint, q)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errortypes.APIError(err, "failed to decode upstream response").
			WithField("endpoint", endpoint)
	}
	return nil
}

// excerpt truncates a response body for inclusion in error context.
func excerpt(body []byte, n int) string {
	s := strings.TrimSpace(string(body))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
