package matching

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// requestTemperature matches the service contract; the schema is enforced
// downstream by validation, not by a lower temperature.
const requestTemperature = 0.7

// openAIClient implements Client for any OpenAI-compatible chat-completions
// endpoint (DeepSeek hosted, or a custom base URL).
type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(baseURL, apiKey, model string) (*openAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimSuffix(baseURL, "/")

	return &openAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// CreateReport makes one chat-completions call and returns the message text.
func (c *openAIClient) CreateReport(ctx context.Context, payload *Payload) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: payload.System},
			{Role: openai.ChatMessageRoleUser, Content: payload.User},
		},
		Temperature: requestTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &TransportError{Message: "chat completion request failed", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &TransportError{Message: "response contains no choices"}
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &TransportError{Message: "response message is empty"}
	}
	return content, nil
}

func (c *openAIClient) Close() error {
	return nil
}
