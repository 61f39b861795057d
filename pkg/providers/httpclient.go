package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultProbeTimeout bounds reachability probes. Probes are advisory
// pre-checks and must never eat into the per-request time budget.
const DefaultProbeTimeout = 2 * time.Second

// HTTPClient is the base implementation embedded by the HTTP adapters.
// It provides connection pooling, timeout handling, and normalization of
// HTTP-level failures into this package's error taxonomy.
//
// Unlike a general-purpose client, it performs exactly one attempt per
// request: the gateway's recovery mechanism is trying the next provider in
// the fallback chain, never retrying the same one.
type HTTPClient struct {
	// config contains the provider configuration.
	config Config

	// client is the HTTP client with connection pooling, bounded by the
	// provider's completion timeout.
	client *http.Client

	// probeClient is a separate short-timeout client for reachability
	// probes, so a probe can never block for the full completion timeout.
	probeClient *http.Client
}

// NewHTTPClient creates a new base HTTP client with connection pooling.
func NewHTTPClient(config Config) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	probeTimeout := config.ProbeTimeout
	if probeTimeout <= 0 || probeTimeout > DefaultProbeTimeout {
		probeTimeout = DefaultProbeTimeout
	}

	return &HTTPClient{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		probeClient: &http.Client{
			Transport: transport,
			Timeout:   probeTimeout,
		},
	}
}

// Name returns the provider's configured name.
func (c *HTTPClient) Name() string {
	return c.config.Name
}

// Model returns the provider's configured model.
func (c *HTTPClient) Model() string {
	return c.config.Model
}

// Config returns the provider's configuration.
func (c *HTTPClient) Config() Config {
	return c.config
}

// DoRequest performs a single HTTP request and classifies the outcome.
// Non-2xx statuses, network failures, and timeouts are all mapped to the
// package error types. The caller owns the response body on success.
func (c *HTTPClient) DoRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, &ProviderError{
			Provider: c.config.Name,
			Message:  "failed to create request",
			Cause:    err,
		}
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("Content-Type") == "" && body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("sending request to provider",
		"provider", c.config.Name,
		"method", method,
		"url", url,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || isTimeout(err) {
			return nil, &TimeoutError{
				Provider: c.config.Name,
				Timeout:  c.config.Timeout,
			}
		}
		return nil, &ProviderError{
			Provider: c.config.Name,
			Message:  "request failed",
			Cause:    err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &AuthError{
			Provider: c.config.Name,
			Message:  string(errorBody),
		}
	default:
		return nil, &ProviderError{
			Provider:   c.config.Name,
			StatusCode: resp.StatusCode,
			Message:    string(errorBody),
		}
	}
}

// DoJSONRequest performs a JSON request and decodes the response.
func (c *HTTPClient) DoJSONRequest(ctx context.Context, method, url string, reqBody interface{}, respBody interface{}, headers map[string]string) error {
	var bodyBytes []byte
	var err error
	if reqBody != nil {
		bodyBytes, err = json.Marshal(reqBody)
		if err != nil {
			return &ProviderError{
				Provider: c.config.Name,
				Message:  "failed to marshal request",
				Cause:    err,
			}
		}
	}

	resp, err := c.DoRequest(ctx, method, url, bodyBytes, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ParseError{
			Provider: c.config.Name,
			Cause:    fmt.Errorf("failed to read response: %w", err),
		}
	}

	if respBody != nil && len(responseBytes) > 0 {
		if err := json.Unmarshal(responseBytes, respBody); err != nil {
			return &ParseError{
				Provider:    c.config.Name,
				RawResponse: string(responseBytes),
				Cause:       fmt.Errorf("failed to unmarshal response: %w", err),
			}
		}
	}

	return nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	slog.Debug("provider closed", "provider", c.config.Name)
	return nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	type timeout interface {
		Timeout() bool
	}
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}
