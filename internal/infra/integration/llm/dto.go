package llm

import "encoding/json"

// Message is one role-tagged turn in a completion request.
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message responseMessage `json:"message"`
}

// Content is kept raw: some backends return structured content instead of
// a plain string, and that case must be treated as a failure.
type responseMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}
