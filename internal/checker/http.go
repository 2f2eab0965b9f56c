package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// fetchResult is one leaderboard response, kept raw for comparison.
type fetchResult struct {
	entries []Entry
	body    []byte
	elapsed time.Duration
}

// FetchLeaderboard performs GET {baseURL}/api/leaderboard and decodes the
// array. Non-200 responses are returned as ErrUnexpectedStatus carrying the
// served error message.
func (c *HTTPClient) FetchLeaderboard(ctx context.Context, baseURL string) (*fetchResult, error) {
	url := strings.TrimRight(baseURL, "/") + "/api/leaderboard"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &e)
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, e.Error)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return &fetchResult{
		entries: entries,
		body:    bytes.TrimSpace(body),
		elapsed: time.Since(start),
	}, nil
}
