// Package llm provides the chat-completion client for the generation API.
package llm

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// ChatMessage represents a chat message for the completion API.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest represents a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// CompletionResponse represents a completion response.
type CompletionResponse struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
}

// Client is the interface to the generation API. The credential is supplied
// per call so the pipeline can rotate keys between attempts.
type Client interface {
	Complete(ctx context.Context, apiKey string, req *CompletionRequest) (*CompletionResponse, error)
}

// StatusCode extracts the HTTP status code from an API-level error. The
// second return value is false for transport errors, timeouts and anything
// else that never reached the endpoint.
func StatusCode(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}
