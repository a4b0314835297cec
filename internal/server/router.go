package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/api"
	"github.com/abirabbas/portfolio-api/internal/api/handlers"
	"github.com/abirabbas/portfolio-api/internal/api/middleware"
)

type RouterConfig struct {
	AssistantHandler *handlers.AssistantHandler
	PortfolioHandler *handlers.PortfolioHandler
	Logger           *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog(cfg.Logger))
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/assistant", cfg.AssistantHandler.Ask)
	r.Get("/portfolio", cfg.PortfolioHandler.Get)

	return r
}
