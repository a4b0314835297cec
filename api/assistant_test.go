package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abirabbas/portfolio-api/internal/domain"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	t.Setenv("QWEN_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("VECTOR_DATABASE_URL", "")
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	clearProviderEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/assistant", nil)
	rec := httptest.NewRecorder()
	Handler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHandlerInvalidBody(t *testing.T) {
	clearProviderEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	Handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerValidationIssues(t *testing.T) {
	clearProviderEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	Handler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string                   `json:"error"`
		Issues []domain.ValidationIssue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request body", body.Error)
	assert.NotEmpty(t, body.Issues)
}

func TestHandlerFallbackReply(t *testing.T) {
	clearProviderEnv(t)

	payload := `{"message": "Tell me about the Rust rebuild demo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/assistant", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	Handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ModeFallback, resp.Mode)
	assert.NotEmpty(t, resp.Reply)
	assert.NotEmpty(t, resp.Sources)
}
