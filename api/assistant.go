// Package handler exposes the assistant as a single stateless HTTP
// function for serverless platforms. The runtime is built lazily on the
// first invocation and reused while the instance stays warm.
package handler

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/api"
	"github.com/abirabbas/portfolio-api/internal/assistant"
	"github.com/abirabbas/portfolio-api/internal/config"
	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/logging"
)

var (
	initOnce sync.Once
	runtime  *assistant.Runtime
	logger   *zap.Logger
)

func setup() {
	// Misconfigured environments fail fast rather than running with a
	// zero-value config that lost every provider default.
	cfg := config.MustLoad()
	logger = logging.New(cfg.Debug)
	runtime = assistant.NewFromConfig(cfg, logger)
}

// Handler answers one assistant request without any routing layer.
func Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		api.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	initOnce.Do(setup)

	var req domain.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("assistant function received invalid JSON payload", zap.Error(err))
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if issues := req.Validate(); len(issues) > 0 {
		logger.Warn("rejected invalid assistant request payload", zap.Any("issues", issues))
		api.ValidationError(w, issues)
		return
	}

	resp, err := runtime.Run(r.Context(), req)
	if err != nil {
		logger.Error("error while generating assistant response", zap.Error(err))
		api.Error(w, api.DomainErrorToHTTP(err), "Assistant service unavailable")
		return
	}

	api.JSON(w, http.StatusOK, resp)
}
