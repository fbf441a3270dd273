package matching

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatCompletionStub serves a fixed chat-completions response and records the
// request body for assertions.
func chatCompletionStub(t *testing.T, content string, status int) (*httptest.Server, *map[string]any) {
	t.Helper()
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "deepseek-chat",
			"choices": []any{map[string]any{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func TestOpenAIClient_CreateReport(t *testing.T) {
	server, captured := chatCompletionStub(t, `{"total_score": 80}`, http.StatusOK)

	client, err := newOpenAIClient(server.URL, "test-key", "deepseek-chat")
	require.NoError(t, err)
	defer client.Close()

	raw, err := client.CreateReport(context.Background(), &Payload{
		System: "system instruction",
		User:   "user payload",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"total_score": 80}`, raw)

	req := *captured
	assert.Equal(t, "deepseek-chat", req["model"])
	assert.InDelta(t, 0.7, req["temperature"], 0.001)
	assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])

	messages := req["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "system instruction", messages[0].(map[string]any)["content"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	assert.Equal(t, "user payload", messages[1].(map[string]any)["content"])
}

func TestOpenAIClient_ServerError(t *testing.T) {
	server, _ := chatCompletionStub(t, "", http.StatusInternalServerError)

	client, err := newOpenAIClient(server.URL, "test-key", "deepseek-chat")
	require.NoError(t, err)

	raw, err := client.CreateReport(context.Background(), &Payload{System: "s", User: "u"})
	assert.Empty(t, raw)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, transportErr.Cause)
}

func TestOpenAIClient_EmptyContent(t *testing.T) {
	server, _ := chatCompletionStub(t, "   ", http.StatusOK)

	client, err := newOpenAIClient(server.URL, "test-key", "deepseek-chat")
	require.NoError(t, err)

	_, err = client.CreateReport(context.Background(), &Payload{System: "s", User: "u"})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestNewOpenAIClient_RequiredSettings(t *testing.T) {
	_, err := newOpenAIClient("", "key", "model")
	assert.Error(t, err)
	_, err = newOpenAIClient("https://example.com", "", "model")
	assert.Error(t, err)
	_, err = newOpenAIClient("https://example.com", "key", "")
	assert.Error(t, err)
}

func TestNewClient_UnknownMode(t *testing.T) {
	_, err := NewClient(context.Background(), ClientConfig{Mode: Mode("carrier-pigeon")})
	assert.Error(t, err)
}

func TestNewClient_DeepSeekDefaultsModel(t *testing.T) {
	client, err := NewClient(context.Background(), ClientConfig{Mode: ModeDeepSeek, APIKey: "key"})
	require.NoError(t, err)
	defer client.Close()

	oc, ok := client.(*openAIClient)
	require.True(t, ok)
	assert.Equal(t, DeepSeekDefaultModel, oc.model)
}
