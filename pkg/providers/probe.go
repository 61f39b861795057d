package providers

import (
	"context"
	"log/slog"
	"net/http"
)

// CredentialProbe reports whether the configured API key is present.
// It performs no network call.
func (c *HTTPClient) CredentialProbe() bool {
	return c.config.APIKey != ""
}

// ReachabilityProbe issues a short-timeout GET against url and reports
// whether the provider answered with a 2xx status. Any failure (timeout,
// connection refused, non-2xx, malformed response) means unavailable; the
// probe never returns an error and never propagates one.
func (c *HTTPClient) ReachabilityProbe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		slog.Debug("reachability probe failed",
			"provider", c.config.Name,
			"url", url,
			"error", err,
		)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
