// Package proxy implements the dispatcher-side HTTP caller.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"lingua-proxy/domain/port"
)

// tokenHeader carries the optional bearer token to the handler.
const tokenHeader = "x-proxy-token"

// Client posts dispatch payloads to the proxy endpoint. The endpoint and
// token come from the settings resolver on every call, so settings changes
// take effect without restarting.
type Client struct {
	httpClient *http.Client
	settings   port.SettingsResolver
}

// NewClient creates a proxy client.
func NewClient(httpClient *http.Client, settings port.SettingsResolver) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		settings:   settings,
	}
}

// Call posts the payload as JSON and returns the raw result. Errors are
// transport-level only; any HTTP response comes back as a CallResult.
func (c *Client) Call(ctx context.Context, payload map[string]any) (*port.CallResult, error) {
	cfg := c.settings.Resolve()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Token != "" {
		req.Header.Set(tokenHeader, cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &port.CallResult{Status: resp.StatusCode, Body: respBody}, nil
}
