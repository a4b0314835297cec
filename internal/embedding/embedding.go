// Package embedding maps text to fixed-size vectors. The assistant treats
// embedding quality as a pluggable concern: the default implementation is a
// deterministic placeholder, with a hosted alternative available when an
// API key is configured. Index and query embeddings must always come from
// the same Embedder instance.
package embedding

import "context"

// Embedder converts text into a vector of fixed dimensionality.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}
