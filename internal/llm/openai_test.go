package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomProviderComplete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "local-model",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "hello"}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}
		}`))
	}))
	defer srv.Close()

	p := NewCustomProvider(srv.URL+"/v1", "secret", "local-model")
	assert.Equal(t, "custom", p.Name())

	req := NewRequest("", "sys", "user")
	req.JSON = true
	resp, err := p.Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, 5, resp.Usage.TotalTokens)

	assert.Equal(t, "local-model", body["model"])
	format, ok := body["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])

	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, msgs, 2)
}

func TestCustomProviderNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewCustomProvider(srv.URL, "", "m").Complete(context.Background(), NewRequest("", "s", "u"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response from custom")
}

func TestSplitSystem(t *testing.T) {
	system, rest := splitSystem([]Message{
		{Role: "system", Content: "a"},
		{Role: "user", Content: "q"},
		{Role: "system", Content: "b"},
	})
	assert.Equal(t, "a\n\nb", system)
	assert.Equal(t, []Message{{Role: "user", Content: "q"}}, rest)
}
