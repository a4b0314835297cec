package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abirabbas/portfolio-api/internal/config"
)

func qwenClientFor(t *testing.T, serverURL string) (*Qwen, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	cfg := &config.Config{
		QwenAPIKey:      "sk-test",
		QwenAPIBase:     serverURL,
		QwenModel:       "qwen3-coder-32b-instruct",
		QwenTemperature: 0.6,
	}
	return NewQwen(cfg, zap.New(core)), logs
}

func TestQwen_Generate_Success(t *testing.T) {
	var captured qwenRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "sk-test", r.Header.Get("X-DashScope-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":{"choices":[{"message":{"content":"The Rust rebuild demo leads with 12,000 views."}}]}}`))
	}))
	defer server.Close()

	client, _ := qwenClientFor(t, server.URL)
	reply := client.Generate(context.Background(), []Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "most popular video?"},
	})

	assert.Equal(t, "The Rust rebuild demo leads with 12,000 views.", reply)
	assert.Equal(t, "qwen3-coder-32b-instruct", captured.Model)
	require.Len(t, captured.Input.Messages, 2)
	assert.Equal(t, RoleSystem, captured.Input.Messages[0].Role)
	assert.InDelta(t, 0.6, captured.Parameters.Temperature, 1e-6)
}

func TestQwen_Generate_NoAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	core, _ := observer.New(zap.DebugLevel)
	client := NewQwen(&config.Config{QwenAPIBase: server.URL}, zap.New(core))

	reply := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.Empty(t, reply)
	assert.False(t, called, "unconfigured client must not call the provider")
}

func TestQwen_Generate_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client, logs := qwenClientFor(t, server.URL)
	reply := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.Empty(t, reply)
	entries := logs.FilterMessage("qwen responded with a non-2xx status").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusTooManyRequests), entries[0].ContextMap()["status"])
	assert.Contains(t, entries[0].ContextMap()["body"], "rate limited")
}

func TestQwen_Generate_MissingContentShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output":{"choices":[]}}`))
	}))
	defer server.Close()

	client, logs := qwenClientFor(t, server.URL)
	reply := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.Empty(t, reply)
	assert.Equal(t, 1, logs.FilterMessage("qwen payload missing expected content shape").Len())
}

func TestQwen_Generate_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client, logs := qwenClientFor(t, server.URL)
	reply := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.Empty(t, reply)
	assert.Equal(t, 1, logs.FilterMessage("failed to decode qwen response").Len())
}

func TestQwen_Generate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, logs := qwenClientFor(t, server.URL)
	reply := client.Generate(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	assert.Empty(t, reply)
	assert.Equal(t, 1, logs.FilterMessage("failed to invoke qwen model").Len())
}

func TestQwen_Provider(t *testing.T) {
	client, _ := qwenClientFor(t, "http://localhost")
	assert.Equal(t, "qwen", client.Provider())
}
