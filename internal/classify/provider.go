package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// Request carries a single chat completion exchange.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Provider is a chat completion backend.
type Provider interface {
	Name() string
	Available() bool
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenRouterProvider talks to the OpenRouter chat completions API.
type OpenRouterProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type OpenRouterOption func(*OpenRouterProvider)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(url string) OpenRouterOption {
	return func(p *OpenRouterProvider) {
		p.baseURL = url
	}
}

func NewOpenRouterProvider(apiKey, model string, opts ...OpenRouterOption) *OpenRouterProvider {
	if model == "" {
		model = "google/gemini-2.0-flash-001"
	}
	p := &OpenRouterProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultOpenRouterURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenRouterProvider) Name() string {
	return "openrouter"
}

func (p *OpenRouterProvider) Available() bool {
	return p.apiKey != ""
}

func (p *OpenRouterProvider) Complete(ctx context.Context, req Request) (string, error) {
	if !p.Available() {
		return "", fmt.Errorf("openrouter provider not configured")
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	messages := []map[string]string{}
	if req.SystemPrompt != "" {
		messages = append(messages, map[string]string{
			"role":    "system",
			"content": req.SystemPrompt,
		})
	}
	messages = append(messages, map[string]string{
		"role":    "user",
		"content": req.UserPrompt,
	})

	body := map[string]any{
		"model":      p.model,
		"max_tokens": maxTokens,
		"messages":   messages,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("openrouter api error", "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("api error, status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", p.model)
	}

	return result.Choices[0].Message.Content, nil
}
