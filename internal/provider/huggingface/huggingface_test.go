package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpipe/internal/config"
	"cvpipe/internal/provider"
)

func testConfig() *config.BackendConfig {
	return &config.BackendConfig{APIKey: "hf-key", Model: "test-model"}
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model", r.URL.Path)
		assert.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"generated_text": `{"skills": []}`},
		})
	}))
	defer server.Close()

	c := NewClientWithEndpoint(testConfig(), server.URL)
	out, err := c.Generate(context.Background(), "structure this")
	require.NoError(t, err)
	assert.Equal(t, `{"skills": []}`, out)
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := c.Generate(context.Background(), "structure this")

	var statusErr *provider.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	defer server.Close()

	c := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := c.Generate(context.Background(), "structure this")
	assert.ErrorContains(t, err, "empty response")
}

func TestProbeWithoutAPIKey(t *testing.T) {
	c := NewClientWithEndpoint(&config.BackendConfig{Model: "m"}, "http://127.0.0.1:0")
	assert.Error(t, c.Probe(context.Background()))
}
