package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixdiff/internal/config"
	"matrixdiff/internal/errors"
)

func testConfig(baseURL string, maxRetries int) config.EmbedConfig {
	return config.EmbedConfig{
		APIKey:     "test-key",
		Model:      config.DefaultModel,
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
	}
}

func TestEmbedSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"embedding":{"values":[0.1,0.2,0.3]}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 0))
	vec, err := client.Embed(context.Background(), "hello world")
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
	assert.True(t, strings.HasSuffix(gotPath, ":embedContent"), "path %q", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "SEMANTIC_SIMILARITY", gotBody["taskType"])
}

func TestEmbedRetriesRateLimit(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"embedding":{"values":[1]}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 2))
	vec, err := client.Embed(context.Background(), "retry me")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, vec)
	assert.Equal(t, 2, attempts)
}

func TestEmbedAuthErrorDoesNotRetry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 3))
	_, err := client.Embed(context.Background(), "no auth")
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "client errors must not be retried")
	assert.Equal(t, errors.CodeExternalService, errors.GetCode(err))
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestEmbedExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 1))
	_, err := client.Embed(context.Background(), "always fails")
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestEmbedMissingKey(t *testing.T) {
	cfg := testConfig("http://unused", 0)
	cfg.APIKey = ""
	client := NewClient(cfg)

	_, err := client.Embed(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestEmbedBlankTextPlaceholder(t *testing.T) {
	var gotBody struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"embedding":{"values":[1]}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 0))
	_, err := client.Embed(context.Background(), "   ")
	require.NoError(t, err)
	require.Len(t, gotBody.Content.Parts, 1)
	assert.Equal(t, "empty", gotBody.Content.Parts[0].Text)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&httpError{status: http.StatusTooManyRequests}))
	assert.True(t, isRetryable(&httpError{status: http.StatusBadGateway}))
	assert.True(t, isRetryable(&transportError{cause: context.DeadlineExceeded}))
	assert.False(t, isRetryable(&httpError{status: http.StatusUnauthorized}))
	assert.False(t, isRetryable(&httpError{status: http.StatusBadRequest}))
}
