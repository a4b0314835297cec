package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/api"
	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/telemetry"
)

// AssistantRunner is the slice of the orchestrator the handler depends on.
type AssistantRunner interface {
	Run(ctx context.Context, req domain.AssistantRequest) (*domain.AssistantResponse, error)
}

type AssistantHandler struct {
	runtime AssistantRunner
	logger  *zap.Logger
}

func NewAssistantHandler(runtime AssistantRunner, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{runtime: runtime, logger: logger}
}

// Ask validates the request, runs the assistant, and serializes the
// uniform result envelope. Internal failure detail stays in the log; the
// caller only ever sees a generic unavailability message.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req domain.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("assistant endpoint received invalid JSON payload", zap.Error(err))
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if issues := req.Validate(); len(issues) > 0 {
		h.logger.Warn("rejected invalid assistant request payload", zap.Any("issues", issues))
		api.ValidationError(w, issues)
		return
	}

	resp, err := h.runtime.Run(r.Context(), req)
	if err != nil {
		h.logger.Error("error while generating assistant response", zap.Error(err))
		telemetry.CaptureError(r.Context(), err)
		api.Error(w, api.DomainErrorToHTTP(err), "Assistant service unavailable")
		return
	}

	h.logger.Info("assistant responded successfully",
		zap.Int("source_count", len(resp.Sources)),
		zap.String("mode", resp.Mode),
	)
	api.JSON(w, http.StatusOK, resp)
}
