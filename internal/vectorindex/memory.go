package vectorindex

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/embedding"
)

type memoryEntry struct {
	text     string
	metadata map[string]string
	vector   []float32
}

// Memory is the in-process fallback index used when no remote vector
// database is configured. Entries are embedded once at construction and
// the set is immutable afterwards.
type Memory struct {
	embedder embedding.Embedder
	entries  []memoryEntry
}

// NewMemory builds an in-process index over the given passages.
func NewMemory(ctx context.Context, embedder embedding.Embedder, entries []domain.PassageEntry) (*Memory, error) {
	idx := &Memory{
		embedder: embedder,
		entries:  make([]memoryEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		vec, err := embedder.Embed(ctx, entry.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed passage %q: %w", entry.Metadata["act"], err)
		}
		idx.entries = append(idx.entries, memoryEntry{
			text:     entry.Text,
			metadata: entry.Metadata,
			vector:   vec,
		})
	}

	return idx, nil
}

func (m *Memory) Search(ctx context.Context, query string, k int) ([]Match, error) {
	queryVec, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	matches := make([]Match, 0, len(m.entries))
	for _, entry := range m.entries {
		matches = append(matches, Match{
			Text:     entry.text,
			Metadata: entry.metadata,
			Score:    float32(cosineSimilarity(queryVec, entry.vector)),
		})
	}

	// Stable sort keeps insertion order on ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
