package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiDefaultModel = "gemini-1.5-flash"

// geminiClient implements Client for the Google Gemini API. Gemini has no
// separate system role on this path, so the system instruction is set on the
// model and the user message goes as the prompt.
type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(ctx context.Context, apiKey, model string) (*geminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  defaultString(model, geminiDefaultModel),
	}, nil
}

// CreateReport makes one generate-content call and returns the joined text
// parts of the first candidate.
func (c *geminiClient) CreateReport(ctx context.Context, payload *Payload) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(requestTemperature)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(payload.System)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(payload.User))
	if err != nil {
		return "", &TransportError{Message: "generate content request failed", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &TransportError{Message: "response contains no text", Cause: err}
	}
	return text, nil
}

func (c *geminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
