// Package assistant holds the orchestrator for the portfolio assistant:
// retrieval over the fixed knowledge corpus, best-effort generation
// through a hosted provider, and the deterministic fallback composition
// used whenever generation cannot produce a reply.
package assistant

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/config"
	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/embedding"
	"github.com/abirabbas/portfolio-api/internal/genai"
	"github.com/abirabbas/portfolio-api/internal/telemetry"
	"github.com/abirabbas/portfolio-api/internal/vectorindex"
)

const (
	fallbackLeadIn     = "Here's what the BlackBox playbook highlights:"
	fallbackSoundtrack = "Soundtrack note: Sessions pulse with analog synthwave, diaspora jazz, and ambient club edits to keep human context front and center."
	fallbackTakeaway   = "Business & creative takeaway: secure, scalable, and human-aligned systems built on BlackBox, Agentverse, and Vibeverse, scored with the music that keeps our teams in flow."
)

// IndexBuilder constructs the vector index. It runs at most once per
// Runtime, on the first request.
type IndexBuilder func(ctx context.Context) (vectorindex.Index, error)

// Runtime is the assistant orchestrator. Construction is cheap; the
// index build is deferred to the first Run call and memoized, including
// a failed build (a runtime without an index cannot serve, and
// re-dialing an unreachable database per request would only mask that).
type Runtime struct {
	buildIndex IndexBuilder
	generator  genai.Client
	logger     *zap.Logger

	initOnce  sync.Once
	retriever *Retriever
	initErr   error
}

// New creates a Runtime with explicit collaborators. generator may be
// nil, which pins the assistant to fallback mode.
func New(buildIndex IndexBuilder, generator genai.Client, logger *zap.Logger) *Runtime {
	return &Runtime{
		buildIndex: buildIndex,
		generator:  generator,
		logger:     logger,
	}
}

// NewFromConfig wires the runtime from environment configuration: the
// embedder choice, remote-or-in-process index policy, and generation
// provider selection.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) *Runtime {
	var embedder embedding.Embedder
	if cfg.Embedder == "openai" && cfg.HasOpenAI() {
		embedder = embedding.NewOpenAI(cfg.OpenAIAPIKey)
	} else {
		embedder = embedding.NewDeterministic(0)
	}

	builder := func(ctx context.Context) (vectorindex.Index, error) {
		if cfg.HasVectorDatabase() {
			return vectorindex.NewPostgres(ctx, cfg.VectorDatabaseURL, cfg.VectorCollection, embedder, domain.Passages())
		}
		logger.Warn("VECTOR_DATABASE_URL not configured, falling back to in-process vector index for assistant context")
		return vectorindex.NewMemory(ctx, embedder, domain.Passages())
	}

	generator := genai.FromConfig(cfg, logger)
	if generator == nil {
		logger.Warn("no generation provider configured, assistant will respond with deterministic context summaries")
	}

	return New(builder, generator, logger)
}

func (rt *Runtime) init(ctx context.Context) error {
	rt.initOnce.Do(func() {
		index, err := rt.buildIndex(ctx)
		if err != nil {
			rt.initErr = domain.NewDomainErrorWithCause(domain.ErrCodeUnavailable, "vector index initialization failed", err)
			rt.logger.Error("failed to initialize vector index", zap.Error(err))
			return
		}
		rt.retriever = NewRetriever(index)
	})
	return rt.initErr
}

// Run answers one validated visitor request. Retrieval always runs;
// generation is attempted when a provider is configured and any failure
// there degrades to the deterministic fallback reply.
func (rt *Runtime) Run(ctx context.Context, req domain.AssistantRequest) (*domain.AssistantResponse, error) {
	provider := domain.ModeFallback
	if rt.generator != nil {
		provider = rt.generator.Provider()
	}
	ctx, span := telemetry.StartSpan(ctx, "Runtime.Run", telemetry.SpanAttributes{
		Provider:  provider,
		Operation: "assistant_run",
	})
	defer span.End()

	if err := rt.init(ctx); err != nil {
		span.SetError(err)
		return nil, err
	}

	matches, err := rt.retriever.Retrieve(ctx, req.Message)
	if err != nil {
		err = domain.NewDomainErrorWithCause(domain.ErrCodeInternalError, "retrieval failed", err)
		span.SetError(err)
		return nil, err
	}

	texts := make([]string, len(matches))
	sources := make([]map[string]string, len(matches))
	for i, match := range matches {
		texts[i] = match.Text
		sources[i] = match.Metadata
	}
	contextBlock := strings.Join(texts, ContextSeparator)

	if rt.generator != nil {
		messages := BuildMessages(req.Message, contextBlock, req.History)
		if reply := rt.generator.Generate(ctx, messages); reply != "" {
			rt.logger.Info("assistant replied",
				zap.Int("source_count", len(sources)),
				zap.String("mode", rt.generator.Provider()),
			)
			return &domain.AssistantResponse{
				Reply:   reply,
				Sources: sources,
				Mode:    rt.generator.Provider(),
			}, nil
		}
	}

	reply := strings.Join([]string{
		fallbackLeadIn,
		contextBlock,
		fallbackSoundtrack,
		fallbackTakeaway,
	}, "\n\n")

	rt.logger.Info("assistant replied",
		zap.Int("source_count", len(sources)),
		zap.String("mode", domain.ModeFallback),
	)

	return &domain.AssistantResponse{
		Reply:   reply,
		Sources: sources,
		Mode:    domain.ModeFallback,
	}, nil
}
