// Package local implements the provider.Generator interface against a
// locally hosted model server speaking the Ollama generate API.
package local

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cvpipe/internal/config"
	"cvpipe/internal/provider"
)

const backendName = "local"

// Client talks to a local model server. No API key is involved.
type Client struct {
	model        string
	endpoint     string
	probeTimeout time.Duration
	client       *http.Client
}

func NewClient(cfg *config.BackendConfig, probeTimeout, generateTimeout time.Duration) *Client {
	return &Client{
		model:        cfg.Model,
		endpoint:     cfg.Endpoint,
		probeTimeout: probeTimeout,
		client:       &http.Client{Timeout: generateTimeout},
	}
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.BackendConfig, endpoint string) *Client {
	c := NewClient(cfg, 10*time.Second, 120*time.Second)
	c.endpoint = endpoint
	return c
}

func (c *Client) Name() string { return backendName }

// Probe sends a minimal generation request to the local server.
func (c *Client) Probe(ctx context.Context) error {
	if c.endpoint == "" {
		return fmt.Errorf("%s: no endpoint configured", backendName)
	}
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	_, err := c.generate(ctx, "test")
	return err
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, "### Human: "+prompt+"\n### Assistant:")
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling local model server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", provider.NewStatusError(backendName, resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	// Some models echo the chat template back.
	out := parsed.Response
	if idx := strings.LastIndex(out, "### Assistant:"); idx >= 0 {
		out = out[idx+len("### Assistant:"):]
	}
	return strings.TrimSpace(out), nil
}
