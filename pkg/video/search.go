// Package video searches YouTube by scraping the results page for video
// IDs. There is no API key: the search page embeds every result's videoId
// in its inline JSON, which a single regular expression extracts.
package video

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Defaults for the search client.
const (
	DefaultBaseURL    = "https://www.youtube.com"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxResults = 8
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// videoIDPattern matches the 11-character video IDs embedded in the
// results page JSON.
var videoIDPattern = regexp.MustCompile(`"videoId":"([a-zA-Z0-9_-]{11})"`)

// ErrNoResults is returned when the results page contains no video IDs.
var ErrNoResults = errors.New("no videos found")

// ErrEmptyQuery is returned when the query is empty after trimming.
var ErrEmptyQuery = errors.New("query cannot be empty")

// Config contains the search client configuration.
type Config struct {
	// BaseURL overrides the YouTube endpoint, for tests.
	BaseURL string

	// MaxResults caps the number of IDs returned per search.
	MaxResults int

	// Timeout applies to the whole page fetch.
	Timeout time.Duration
}

// Client searches for videos.
type Client struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewClient creates a search client, filling zero config fields with
// defaults.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.MaxResults <= 0 {
		config.MaxResults = DefaultMaxResults
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: slog.Default().With("component", "video"),
	}
}

// Search returns the video IDs for query in page order, deduplicated and
// capped at the configured maximum. The first ID is the top result.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	u := fmt.Sprintf("%s/results?search_query=%s", c.config.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("search request failed", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	ids := ExtractIDs(string(body), c.config.MaxResults)
	if len(ids) == 0 {
		return nil, ErrNoResults
	}

	return ids, nil
}

// ExtractIDs pulls video IDs out of a results page, deduplicated in order
// of first appearance and capped at max.
func ExtractIDs(page string, max int) []string {
	matches := videoIDPattern.FindAllStringSubmatch(page, -1)

	seen := make(map[string]struct{}, max)
	ids := make([]string, 0, max)
	for _, m := range matches {
		id := m[1]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		if len(ids) >= max {
			break
		}
	}

	return ids
}
