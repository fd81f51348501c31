// Package api is the HTTP client for the PanditAI computation backend. The
// backend is a black box: this package only shapes requests and decodes the
// partial response shapes the client consumes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

// DefaultTimeout bounds every backend call. A hung request degrades into the
// regular unavailable state instead of loading forever.
const DefaultTimeout = 60 * time.Second

// Client talks to the computation backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New creates a backend client for the given base URL.
func New(baseURL string, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     log,
	}
}

// calculateRequest is the /calculate body: a BirthDetail plus the ayanamsa
// parameter, passed through unvalidated.
type calculateRequest struct {
	astro.BirthDetail
	Ayanamsa string `json:"ayanamsa"`
}

// Calculate submits birth details and returns the full prediction snapshot.
func (c *Client) Calculate(ctx context.Context, detail astro.BirthDetail, ayanamsa string) (*astro.Snapshot, error) {
	var snap astro.Snapshot
	req := calculateRequest{BirthDetail: detail, Ayanamsa: ayanamsa}
	if err := c.postJSON(ctx, "/calculate", req, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Match submits two birth details and returns the compatibility result.
func (c *Client) Match(ctx context.Context, pair astro.BirthDetailPair) (*astro.MatchResult, error) {
	var result astro.MatchResult
	if err := c.postJSON(ctx, "/match", pair, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type chatRequest struct {
	Query   string `json:"query"`
	Context string `json:"context"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat sends one question with the report context and returns the
// astrologer's reply text.
func (c *Client) Chat(ctx context.Context, query, reportContext string) (string, error) {
	var resp chatResponse
	if err := c.postJSON(ctx, "/chat", chatRequest{Query: query, Context: reportContext}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// ChartImage fetches the rendered chart image for the given style
// ("d1" or "d9") as raw PNG bytes.
func (c *Client) ChartImage(ctx context.Context, style string, detail astro.BirthDetail) ([]byte, error) {
	body, err := json.Marshal(detail)
	if err != nil {
		return nil, fmt.Errorf("failed to encode birth details: %w", err)
	}

	url := fmt.Sprintf("%s/chart-image?style=%s", c.baseURL, style)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("style", style).Warn("chart image fetch failed")
		return nil, fmt.Errorf("chart image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.WithField("status", resp.StatusCode).WithField("style", style).Warn("chart image unavailable")
		return nil, fmt.Errorf("chart image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart image: %w", err)
	}
	c.log.WithFields(logrus.Fields{
		"style":   style,
		"bytes":   len(data),
		"latency": time.Since(start).Round(time.Millisecond),
	}).Debug("chart image fetched")
	return data, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("path", path).Warn("backend request failed")
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.WithField("status", resp.StatusCode).WithField("path", path).Warn("backend error response")
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	c.log.WithFields(logrus.Fields{
		"path":    path,
		"latency": time.Since(start).Round(time.Millisecond),
	}).Debug("backend request completed")
	return nil
}
