package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/londonlets/api/internal/infra/http/middleware"
)

var ErrMalformedResponse = errors.New("llm returned no usable content")

const defaultModel = "gpt-4o-mini"

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends the messages and returns the first choice's content.
// Absent, empty or non-string content is an error; the rewriter decides
// what fallback applies.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	payload := chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("llm")
		return "", fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		middleware.RecordIntegrationError("llm")
		return "", fmt.Errorf("llm rejected request (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		middleware.RecordIntegrationError("llm")
		return "", fmt.Errorf("decode llm response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	var content string
	if err := json.Unmarshal(response.Choices[0].Message.Content, &content); err != nil {
		return "", ErrMalformedResponse
	}
	if content == "" {
		return "", ErrMalformedResponse
	}

	return content, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "LondonLets/1.0")
}
