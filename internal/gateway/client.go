// Package gateway implements the validating front tier. It checks request
// shape and rejects malformed input before anything reaches the core
// server, then forwards well-formed requests unchanged.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shareit-app/backend/internal/middleware"
)

// Client forwards validated requests to the core server and relays the
// responses verbatim, status code included.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client talking to the core server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Result is a relayed core server response.
type Result struct {
	Status int
	Body   json.RawMessage
}

// Forward sends the request to the core server. A non-zero actorID is
// carried in the sharer header; body may be nil for bodyless methods.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, actorID int64, body interface{}) (*Result, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actorID != 0 {
		req.Header.Set(middleware.HeaderSharerUserID, fmt.Sprintf("%d", actorID))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach core server: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Result{Status: resp.StatusCode, Body: data}, nil
}
