// Package media talks to the external host that stores profile photos.
package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tindev/internal/config"
)

// Client resolves a hosted file id to a browsable preview URL.
type Client interface {
	PreviewURL(ctx context.Context, fileID string) (string, error)
}

type httpClient struct {
	baseURL   string
	apiKey    string
	apiSecret string
	client    *http.Client
	logger    *log.Logger
}

type fileShowResponse struct {
	ID         string `json:"id"`
	URLPreview string `json:"url_preview"`
}

// NewClient returns nil when no base URL is configured; callers treat a nil
// client as "always fall back".
func NewClient(cfg config.MediaConfig, logger *log.Logger) Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    strings.TrimSpace(cfg.APIKey),
		apiSecret: strings.TrimSpace(cfg.APISecret),
		client:    &http.Client{Timeout: 5 * time.Second},
		logger:    logger,
	}
}

func (c *httpClient) PreviewURL(ctx context.Context, fileID string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("nil media client")
	}
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return "", errors.New("empty file id")
	}

	endpoint := c.baseURL + "/files/show/" + url.PathEscape(fileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	q := req.URL.Query()
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	if c.apiSecret != "" {
		q.Set("api_secret", c.apiSecret)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("media file show failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("[Media] PreviewURL error file=%s status=%d", fileID, resp.StatusCode)
		}
		return "", err
	}

	var out fileShowResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.URLPreview) == "" {
		return "", errors.New("media response missing url_preview")
	}
	return out.URLPreview, nil
}

var _ Client = (*httpClient)(nil)
