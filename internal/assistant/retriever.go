package assistant

import (
	"context"

	"github.com/abirabbas/portfolio-api/internal/vectorindex"
)

// TopK is the retrieval fan-out. Every request pulls the same number of
// passages regardless of whether generation will run, because the
// fallback reply is composed from the same context.
const TopK = 4

// Retriever wraps a vector index with the fixed fan-out policy.
type Retriever struct {
	index vectorindex.Index
}

func NewRetriever(index vectorindex.Index) *Retriever {
	return &Retriever{index: index}
}

// Retrieve returns up to TopK passages, nearest-first.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]vectorindex.Match, error) {
	return r.index.Search(ctx, query, TopK)
}
