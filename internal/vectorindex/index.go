// Package vectorindex stores embedded passages and answers nearest-neighbor
// queries. Two implementations share one contract: a Postgres/pgvector
// collection when a remote database is configured, and an in-process store
// otherwise. Both embed the query with the same Embedder used when the
// entries were indexed.
package vectorindex

import "context"

// Match is one retrieved passage, nearest-first in the slice returned by
// Search. Score is higher for closer matches.
type Match struct {
	Text     string
	Metadata map[string]string
	Score    float32
}

// Index answers nearest-neighbor queries over a fixed set of passages.
// Implementations are read-only after construction; Search never mutates.
type Index interface {
	Search(ctx context.Context, query string, k int) ([]Match, error)
}
