// Package api implements the resource gateways over the back office's
// REST API. One Client carries the connection settings; small typed
// views on it implement the per-resource service interfaces.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/officepro/officepro/internal/service"
)

// authHeader carries the demo token on every request, standing in for
// the real authentication layer.
const authHeader = "X-Demo-Auth"

// defaultTimeout bounds any single request to the back office.
const defaultTimeout = 30 * time.Second

// Client talks to the procurement back office.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	token      string
}

// NewClient builds a client for the given base URL. The token is sent
// on every request in the X-Demo-Auth header.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Gateways returns the full set of resource gateways backed by this
// client.
func (c *Client) Gateways() service.Gateways {
	return service.Gateways{
		Budgets:    c.Budgets(),
		Categories: c.Categories(),
		Suppliers:  c.Suppliers(),
		Users:      c.Users(),
		Purchases:  c.Purchases(),
	}
}

// deleteBody is the wire shape of a delete: the API takes the id in the
// request body addressed to the collection, not in the path.
type deleteBody struct {
	ID string `json:"id"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(authHeader, c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, service.ErrNotFound)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: backend returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
