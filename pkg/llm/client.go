// Package llm provides the OpenAI-compatible backend boundary used by the
// ranking pipeline. All pipeline prompts go through Complete, which asks
// for a JSON object response and hands back the raw message for the
// caller to decode.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/tubescope/tubescope/pkg/config"
)

// Client is a thin wrapper around an OpenAI-compatible chat endpoint
type Client struct {
	client *openai.Client
	config config.LLMConfig
}

// New creates a new LLM client from configuration
func New(cfg config.LLMConfig) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Available reports whether the backend is configured at all. A custom
// endpoint (e.g. a local model) counts as configured even without a key.
func (c *Client) Available() bool {
	if c == nil {
		return false
	}
	return c.config.APIKey != "" || c.config.Endpoint != ""
}

// Complete sends a system+user prompt pair and returns the raw JSON
// object from the response. Retries up to 3 times when the model
// produces output that is not valid JSON.
func (c *Client) Complete(ctx context.Context, system, user string) (json.RawMessage, error) {
	reqCtx := ctx
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
	}
	if user != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})
	}

	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: float32(c.config.Temperature),
		MaxTokens:   c.config.MaxTokens,
		Messages:    messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	// retry on malformed JSON, the model occasionally wraps the object
	// in prose despite the response format hint
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		resp, err := c.client.CreateChatCompletion(reqCtx, req)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		content := resp.Choices[0].Message.Content
		if json.Valid([]byte(content)) {
			return json.RawMessage(content), nil
		}
		lastErr = fmt.Errorf("response is not valid json")
	}

	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}
