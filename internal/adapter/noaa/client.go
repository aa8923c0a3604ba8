// Package noaa downloads best-track dataset archives over HTTP. Retrieval
// happens once at startup, before any record source is constructed; the
// extraction core never touches the network.
package noaa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxArchiveBytes caps a single dataset download. The largest published
// IBTrACS CSV is under 400 MB; anything bigger is a server fault.
const maxArchiveBytes = 1 << 30

// Client fetches dataset archives with a bounded timeout.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a dataset fetch client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch downloads one archive and returns its bytes. The response body is
// always released, on success or failure. No retry policy lives here.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: status %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes))
	if err != nil {
		return nil, fmt.Errorf("read dataset body: %w", err)
	}

	c.logger.Info("dataset fetched",
		"url", url,
		"bytes", len(data),
		"duration", time.Since(start),
	)
	return data, nil
}
