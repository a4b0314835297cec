//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/abirabbas/portfolio-api/internal/api/handlers"
	"github.com/abirabbas/portfolio-api/internal/assistant"
	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/embedding"
	"github.com/abirabbas/portfolio-api/internal/server"
	"github.com/abirabbas/portfolio-api/internal/vectorindex"
)

// TestEnv runs the full router against an in-process vector index with
// no generation provider, which is the minimal deployable configuration.
type TestEnv struct {
	T          *testing.T
	Server     *httptest.Server
	HTTPClient *http.Client
}

func SetupEnv(t *testing.T) *TestEnv {
	t.Helper()

	logger := zaptest.NewLogger(t)
	embedder := embedding.NewDeterministic(0)

	builder := func(ctx context.Context) (vectorindex.Index, error) {
		return vectorindex.NewMemory(ctx, embedder, domain.Passages())
	}
	runtime := assistant.New(builder, nil, logger)

	router := server.NewRouter(server.RouterConfig{
		AssistantHandler: handlers.NewAssistantHandler(runtime, logger),
		PortfolioHandler: handlers.NewPortfolioHandler(),
		Logger:           logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestEnv{
		T:          t,
		Server:     srv,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Post sends a JSON body and returns the status code and raw response body.
func (env *TestEnv) Post(path string, body interface{}) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	resp, err := env.HTTPClient.Post(env.Server.URL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// Get fetches a path and returns the status code and raw response body.
func (env *TestEnv) Get(path string) (int, []byte, error) {
	resp, err := env.HTTPClient.Get(env.Server.URL + path)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, raw, nil
}
