package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Client implements the relay.Generator interface on top of the Gemini
// API. It is stateless beyond the underlying model handle; every call is
// a single attempt with no retry and the library's default timeout.
type Client struct {
	model llms.Model
}

// NewClient creates a Gemini-backed client. The API key and model are
// passed explicitly; nothing is configured process-wide.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	llm, err := googleai.New(
		ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{model: llm}, nil
}

// NewClientWithModel wraps an already-constructed model. Used in tests.
func NewClientWithModel(model llms.Model) *Client {
	return &Client{model: model}
}

// Generate implements the relay.Generator interface. The prompt is sent
// verbatim with no system prompt and no conversation history.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from model")
	}

	return resp.Choices[0].Content, nil
}
