package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/embedding"
	"github.com/abirabbas/portfolio-api/internal/genai"
	"github.com/abirabbas/portfolio-api/internal/vectorindex"
)

// stubIndex returns canned matches and counts searches.
type stubIndex struct {
	matches  []vectorindex.Match
	err      error
	searches atomic.Int32
}

func (s *stubIndex) Search(_ context.Context, _ string, k int) ([]vectorindex.Match, error) {
	s.searches.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	if k < len(s.matches) {
		return s.matches[:k], nil
	}
	return s.matches, nil
}

// stubGenerator returns a fixed reply ("" simulates provider failure).
type stubGenerator struct {
	reply    string
	provider string
	captured []genai.Message
}

func (s *stubGenerator) Generate(_ context.Context, messages []genai.Message) string {
	s.captured = messages
	return s.reply
}

func (s *stubGenerator) Provider() string { return s.provider }

func rankedMatches() []vectorindex.Match {
	return []vectorindex.Match{
		{Text: "first passage", Metadata: map[string]string{"act": "watch-party"}, Score: 0.9},
		{Text: "second passage", Metadata: map[string]string{"act": "hook"}, Score: 0.7},
		{Text: "third passage", Metadata: map[string]string{"act": "proof"}, Score: 0.5},
	}
}

func builderFor(idx vectorindex.Index) IndexBuilder {
	return func(context.Context) (vectorindex.Index, error) { return idx, nil }
}

func TestRuntime_Run_FallbackWhenNoProvider(t *testing.T) {
	idx := &stubIndex{matches: rankedMatches()}
	rt := New(builderFor(idx), nil, zap.NewNop())

	resp, err := rt.Run(context.Background(), domain.AssistantRequest{Message: "video?"})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeFallback, resp.Mode)
	assert.NotEmpty(t, resp.Reply)
	assert.Contains(t, resp.Reply, fallbackLeadIn)
	// Retrieved context appears verbatim, joined with the separator.
	assert.Contains(t, resp.Reply, "first passage\n---\nsecond passage\n---\nthird passage")
	require.Len(t, resp.Sources, 3)
	assert.Equal(t, "watch-party", resp.Sources[0]["act"])
	assert.Equal(t, "hook", resp.Sources[1]["act"])
}

func TestRuntime_Run_ProviderMode(t *testing.T) {
	idx := &stubIndex{matches: rankedMatches()}
	gen := &stubGenerator{reply: "A vivid answer. **Takeaway:** ship.", provider: "qwen"}
	rt := New(builderFor(idx), gen, zap.NewNop())

	resp, err := rt.Run(context.Background(), domain.AssistantRequest{
		Message: "video?",
		History: []domain.ConversationTurn{{Role: domain.RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "qwen", resp.Mode)
	assert.Equal(t, "A vivid answer. **Takeaway:** ship.", resp.Reply)
	require.Len(t, resp.Sources, 3)
	assert.Equal(t, "watch-party", resp.Sources[0]["act"])

	// The provider saw the system instruction, the history turn, and the
	// question with embedded context.
	require.Len(t, gen.captured, 3)
	assert.Equal(t, genai.RoleSystem, gen.captured[0].Role)
	assert.Contains(t, gen.captured[2].Content, "first passage")
}

func TestRuntime_Run_ProviderFailureFallsBack(t *testing.T) {
	idx := &stubIndex{matches: rankedMatches()}
	gen := &stubGenerator{reply: "", provider: "qwen"}
	rt := New(builderFor(idx), gen, zap.NewNop())

	resp, err := rt.Run(context.Background(), domain.AssistantRequest{Message: "video?"})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeFallback, resp.Mode)
	assert.Contains(t, resp.Reply, fallbackTakeaway)
}

func TestRuntime_Run_RetrievalAlwaysRuns(t *testing.T) {
	idx := &stubIndex{matches: rankedMatches()}
	gen := &stubGenerator{reply: "reply", provider: "qwen"}
	rt := New(builderFor(idx), gen, zap.NewNop())

	_, err := rt.Run(context.Background(), domain.AssistantRequest{Message: "a"})
	require.NoError(t, err)
	_, err = rt.Run(context.Background(), domain.AssistantRequest{Message: "b"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), idx.searches.Load())
}

func TestRuntime_Run_SourcesCappedAtTopK(t *testing.T) {
	many := make([]vectorindex.Match, 10)
	for i := range many {
		many[i] = vectorindex.Match{Text: "p", Metadata: map[string]string{"act": "hook"}}
	}
	idx := &stubIndex{matches: many}
	rt := New(builderFor(idx), nil, zap.NewNop())

	resp, err := rt.Run(context.Background(), domain.AssistantRequest{Message: "q"})

	require.NoError(t, err)
	assert.LessOrEqual(t, len(resp.Sources), TopK)
}

func TestRuntime_ConcurrentFirstRequestsBuildOnce(t *testing.T) {
	var builds atomic.Int32
	idx := &stubIndex{matches: rankedMatches()}
	builder := func(context.Context) (vectorindex.Index, error) {
		builds.Add(1)
		return idx, nil
	}
	rt := New(builder, nil, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rt.Run(context.Background(), domain.AssistantRequest{Message: "q"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
}

func TestRuntime_InitFailureIsMemoized(t *testing.T) {
	var builds atomic.Int32
	builder := func(context.Context) (vectorindex.Index, error) {
		builds.Add(1)
		return nil, errors.New("connection refused")
	}
	rt := New(builder, nil, zap.NewNop())

	_, err := rt.Run(context.Background(), domain.AssistantRequest{Message: "q"})
	require.Error(t, err)
	_, err = rt.Run(context.Background(), domain.AssistantRequest{Message: "q"})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeUnavailable, domainErr.Code)
	assert.Equal(t, int32(1), builds.Load(), "failed build must not be retried per request")
}

func TestRuntime_EndToEnd_ScenarioPopularVideo(t *testing.T) {
	// Full wiring with the in-process index and placeholder embedder,
	// no provider: a relevance-respecting lexical match should surface
	// the watch-party act first and compose a fallback reply. The
	// placeholder embedder has no semantics, only token overlap, so the
	// question names the Rust rebuild demo instead of asking "what's
	// your most popular video", which shares no tokens with the corpus.
	builder := func(ctx context.Context) (vectorindex.Index, error) {
		return vectorindex.NewMemory(ctx, embedding.NewDeterministic(0), domain.Passages())
	}
	rt := New(builder, nil, zap.NewNop())

	resp, err := rt.Run(context.Background(), domain.AssistantRequest{
		Message: "How many views does the Rust rebuild demo have?",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeFallback, resp.Mode)
	require.NotEmpty(t, resp.Sources)
	assert.Equal(t, "watch-party", resp.Sources[0]["act"])
	assert.True(t, strings.HasPrefix(resp.Reply, fallbackLeadIn))
	assert.LessOrEqual(t, len(resp.Sources), 4)
}
