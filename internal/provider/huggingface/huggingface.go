// Package huggingface implements the provider.Generator interface on
// the Hugging Face Inference API.
package huggingface

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

const backendName = "huggingface"

// Client talks to the hosted inference endpoint for one model.
type Client struct {
	apiKey       string
	model        string
	baseURL      string
	probeTimeout time.Duration
	client       *http.Client
}

// NewClient creates a client from the backend configuration. The
// configured endpoint is the API base; the model name is appended.
func NewClient(cfg *config.BackendConfig, probeTimeout, generateTimeout time.Duration) *Client {
	return &Client{
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		baseURL:      strings.TrimRight(cfg.Endpoint, "/"),
		probeTimeout: probeTimeout,
		client:       &http.Client{Timeout: generateTimeout},
	}
}

// NewClientWithEndpoint creates a client pointing at a custom base URL
// (for testing).
func NewClientWithEndpoint(cfg *config.BackendConfig, baseURL string) *Client {
	c := NewClient(cfg, 10*time.Second, 120*time.Second)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) Name() string { return backendName }

func (c *Client) url() string {
	return c.baseURL + "/" + c.model
}

// Probe sends a minimal generation request.
func (c *Client) Probe(ctx context.Context) error {
	if c.apiKey == "" {
		return fmt.Errorf("%s: no API key configured", backendName)
	}
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	_, err := c.infer(ctx, "test", 10)
	return err
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.infer(ctx, prompt, 1024)
}

func (c *Client) infer(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	reqBody := map[string]interface{}{
		"inputs": prompt,
		"parameters": map[string]interface{}{
			"max_new_tokens":   maxNewTokens,
			"temperature":      0.2,
			"return_full_text": false,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling huggingface API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", provider.NewStatusError(backendName, resp.StatusCode, string(respBody))
	}

	var parsed []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed) == 0 {
		return "", fmt.Errorf("empty response from huggingface API")
	}
	return parsed[0].GeneratedText, nil
}
