// Package together implements the provider.Generator interface on the
// Together AI chat-completions API.
package together

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cvpipe/internal/config"
	"cvpipe/internal/provider"
)

const backendName = "together"

// Client talks to the Together AI chat-completions endpoint.
type Client struct {
	apiKey       string
	model        string
	endpoint     string
	probeTimeout time.Duration
	client       *http.Client
}

// NewClient creates a client from the backend configuration.
func NewClient(cfg *config.BackendConfig, probeTimeout, generateTimeout time.Duration) *Client {
	return &Client{
		apiKey:       cfg.APIKey,
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

// Probe sends a minimal one-token completion request.
func (c *Client) Probe(ctx context.Context) error {
	if c.apiKey == "" {
		return fmt.Errorf("%s: no API key configured", backendName)
	}
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	_, err := c.complete(ctx, "test", 10)
	return err
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, 4096)
}

func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": "You are a precise CV parsing assistant. Always respond with valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens":  maxTokens,
		"temperature": 0.2,
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling together API: %w", err)
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
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from together API: no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
