// Package llm wraps the OpenAI chat-completions API. One backend is
// assumed; Completer exists so the extraction engine can be exercised
// against a scripted fake in tests.
package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Completer issues a single completion request constrained to a JSON
// object response and returns the raw text body.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}

// Config holds the backend client configuration
type Config struct {
	// APIKey for the OpenAI API (falls back to OPENAI_API_KEY)
	APIKey string

	// Model name
	Model string

	// BaseURL for custom endpoints (used by tests)
	BaseURL string

	// Timeout for a single API request, in seconds
	Timeout int
}

// OpenAIClient implements Completer over the OpenAI chat-completions API
type OpenAIClient struct {
	client *openai.Client
	config Config
}

// NewOpenAIClient creates the backend client. The API key may come from
// the config or the OPENAI_API_KEY environment variable.
func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Model returns the model name requests are issued against.
func (c *OpenAIClient) Model() string {
	if c.config.Model == "" {
		return openai.GPT4oMini
	}
	return c.config.Model
}

// Complete sends one user-role message and returns the response body.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	timeout := time.Duration(c.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.Model(),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
