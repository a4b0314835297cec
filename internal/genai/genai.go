// Package genai adapts hosted language-model providers behind one
// capability interface. Clients are best-effort: every failure mode, from
// missing credentials to malformed provider responses, yields an empty
// reply so the orchestrator can fall back without per-failure branching.
package genai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/config"
)

// Role names shared by the supported providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one provider-ready conversation entry.
type Message struct {
	Role    string
	Content string
}

// Client generates a reply from an assembled message list. Generate
// returns "" when no reply could be produced; it never returns an error.
// Provider identifies which generation path produced the reply, used as
// the response mode tag.
type Client interface {
	Generate(ctx context.Context, messages []Message) string
	Provider() string
}

// requestTimeout bounds the outbound generation call so a hung provider
// cannot occupy a request slot; timeouts degrade to fallback like any
// other failure.
const requestTimeout = 15 * time.Second

// FromConfig selects a generation client from configuration. It returns
// nil when no provider is configured, which is a valid, expected state:
// the assistant then answers in fallback mode.
func FromConfig(cfg *config.Config, logger *zap.Logger) Client {
	switch cfg.Provider {
	case "qwen":
		if cfg.HasQwen() {
			return NewQwen(cfg, logger)
		}
		return nil
	case "openai":
		if cfg.HasOpenAI() {
			return NewOpenAI(cfg, logger)
		}
		return nil
	}

	if cfg.HasQwen() {
		return NewQwen(cfg, logger)
	}
	if cfg.HasOpenAI() {
		return NewOpenAI(cfg, logger)
	}
	return nil
}
