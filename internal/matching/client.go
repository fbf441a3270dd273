package matching

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects the matching-service provider.
type Mode string

const (
	// ModeDeepSeek calls the hosted DeepSeek chat-completions endpoint.
	ModeDeepSeek Mode = "deepseek"
	// ModeCustom calls any OpenAI-compatible endpoint at a caller-supplied
	// base URL.
	ModeCustom Mode = "custom"
	// ModeGemini calls the Google Gemini API.
	ModeGemini Mode = "gemini"
	// ModeDemo bypasses network I/O and returns the embedded fixture.
	ModeDemo Mode = "demo"
)

// DeepSeek endpoint defaults.
const (
	DeepSeekBaseURL      = "https://api.deepseek.com"
	DeepSeekDefaultModel = "deepseek-chat"
)

// ClientConfig carries the provider settings for one client. APIKey, BaseURL
// and Model are opaque here; which ones are required depends on the mode and
// is enforced by config validation before a client is built.
type ClientConfig struct {
	Mode    Mode
	APIKey  string
	BaseURL string
	Model   string
}

// Client is an abstraction over matching-service providers. One analysis run
// makes exactly one CreateReport call.
type Client interface {
	// CreateReport sends the payload and returns the raw response text,
	// expected to be a single JSON object.
	CreateReport(ctx context.Context, payload *Payload) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a matching client for the configured mode.
func NewClient(ctx context.Context, config ClientConfig) (Client, error) {
	switch config.Mode {
	case ModeDeepSeek:
		return newOpenAIClient(DeepSeekBaseURL, config.APIKey, defaultString(config.Model, DeepSeekDefaultModel))
	case ModeCustom:
		return newOpenAIClient(config.BaseURL, config.APIKey, config.Model)
	case ModeGemini:
		return newGeminiClient(ctx, config.APIKey, config.Model)
	case ModeDemo:
		return newDemoClient(), nil
	default:
		return nil, fmt.Errorf("unknown matching mode %q", config.Mode)
	}
}

// CleanJSONBlock removes markdown code fence wrappers some services put
// around JSON responses.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
