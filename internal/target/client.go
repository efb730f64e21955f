package target

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// Client represents a connection to a single endpoint target: an LLM
// gateway, an evaluation service, or any other sink a bulk run posts its
// task payloads to.
type Client struct {
	// Name is a friendly identifier for the target
	Name string

	// URL is the endpoint payloads are posted to
	URL string

	// Healthy indicates if the last health check passed
	Healthy bool

	httpClient *http.Client
	headers    map[string]string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a client for one configured target. The API key, when
// configured, is resolved from the named environment variable at
// construction time.
func NewClient(name string, cfg *config.TargetConfig, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, util.NewValidationError("target", name, "config cannot be nil")
	}
	if cfg.URL == "" {
		return nil, util.NewValidationError("url", nil, "target URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, util.NewValidationError("url", cfg.URL, "target URL is not valid")
	}
	if logger == nil {
		logger = slog.Default()
	}

	var apiKey string
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
		if apiKey == "" {
			logger.Warn("API key environment variable is empty",
				"target", name,
				"env", cfg.APIKeyEnv)
		}
	}

	client := &Client{
		Name:    name,
		URL:     cfg.URL,
		headers: cfg.Headers,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	logger.Debug("created target client",
		"target", name,
		"url", cfg.URL,
		"timeout", timeout)

	return client, nil
}

// Invoke posts one task payload to the target and returns the raw response
// body. A non-2xx response is an error; the body is still read so the
// status line can carry a snippet of the server's explanation.
func (c *Client) Invoke(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, util.WrapTargetError(c.Name, fmt.Errorf("failed to build request: %w", err))
	}
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, util.WrapTargetError(c.Name, fmt.Errorf("%w: %v", util.ErrConnectionFailed, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024*1024))
	if err != nil {
		return nil, util.WrapTargetError(c.Name, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, util.WrapTargetError(c.Name,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet(body)))
	}

	return body, nil
}

// Ping performs a lightweight health check against the target endpoint.
// Any response at all, error status included, proves the endpoint is
// reachable; only transport failures mark the target unhealthy.
func (c *Client) Ping(ctx context.Context) HealthStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(pingCtx, http.MethodHead, c.URL, nil)
	if err != nil {
		c.Healthy = false
		return HealthStatus{TargetName: c.Name, Error: err}
	}
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Healthy = false
		return HealthStatus{
			TargetName: c.Name,
			Error:      util.WrapTargetError(c.Name, fmt.Errorf("%w: %v", util.ErrConnectionFailed, err)),
		}
	}
	resp.Body.Close()

	c.Healthy = true
	return HealthStatus{
		TargetName: c.Name,
		Healthy:    true,
		StatusCode: resp.StatusCode,
	}
}

// IsHealthy returns the current health status
func (c *Client) IsHealthy() bool {
	return c.Healthy
}

// String returns a string representation of the client
func (c *Client) String() string {
	return fmt.Sprintf("Client{Name: %s, URL: %s, Healthy: %v}", c.Name, c.URL, c.Healthy)
}

// decorate applies content type, per-target headers, and auth.
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// snippet truncates a response body for inclusion in an error message.
func snippet(body []byte) string {
	const max = 200
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
