package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"matrixdiff/internal"
	"matrixdiff/internal/config"
	"matrixdiff/internal/errors"
)

// Client calls the Gemini embedContent endpoint to turn a text string into
// a fixed-length embedding vector. It implements ports.Embedder.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
	httpClient *http.Client
	logger     *internal.Logger
}

// NewClient creates an embedding client from the embed configuration.
func NewClient(cfg config.EmbedConfig) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     internal.DefaultLogger,
	}
}

// Embed requests an embedding for the given text, retrying transient
// failures with exponential backoff. Auth and other client errors fail
// immediately.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if c.apiKey == "" {
		return nil, errors.ConfigInvalid("missing Gemini API key")
	}
	if strings.TrimSpace(text) == "" {
		// The API rejects empty content; mirror the placeholder the report
		// has always used for blank cells that reach the embedder.
		text = "empty"
	}

	var vector []float64
	err := retryWithBackoff(ctx, c.maxRetries, c.logger, func() error {
		var callErr error
		vector, callErr = c.embedOnce(ctx, text)
		return callErr
	})
	if err != nil {
		return nil, errors.ExternalServiceError("embedding", err)
	}
	return vector, nil
}

func (c *Client) embedOnce(ctx context.Context, text string) ([]float64, error) {
	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Parts []part `json:"parts"`
	}
	type reqBody struct {
		Model    string  `json:"model"`
		Content  content `json:"content"`
		TaskType string  `json:"taskType"`
	}
	body := reqBody{
		Model:    c.model,
		Content:  content{Parts: []part{{Text: text}}},
		TaskType: "SEMANTIC_SIMILARITY",
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:embedContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &transportError{cause: err}
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{cause: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &httpError{status: resp.StatusCode, body: string(respRaw)}
	}

	type embedding struct {
		Values []float64 `json:"values"`
	}
	type respBody struct {
		Embedding embedding `json:"embedding"`
	}
	var decoded respBody
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(decoded.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedContent response missing embedding values")
	}
	return decoded.Embedding.Values, nil
}
