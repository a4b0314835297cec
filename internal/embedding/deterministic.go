package embedding

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// DefaultDimensions matches the vector size of the hosted embedding models
// the index may be swapped to, so stored collections stay compatible.
const DefaultDimensions = 1536

// ErrEmptyText is returned when text is empty
var ErrEmptyText = errors.New("text cannot be empty")

// Deterministic is a placeholder embedder: each token is hashed onto a
// handful of vector positions and the result is L2-normalized. The same
// text always produces the same vector, and texts sharing tokens land
// near each other, which gives lexical rather than semantic relevance.
type Deterministic struct {
	dimensions int
}

// NewDeterministic creates a placeholder embedder with the given
// dimensionality, falling back to DefaultDimensions when it is not positive.
func NewDeterministic(dimensions int) *Deterministic {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &Deterministic{dimensions: dimensions}
}

func (d *Deterministic) Dimensions() int {
	return d.dimensions
}

func (d *Deterministic) Embed(_ context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	vec := make([]float32, d.dimensions)
	for _, token := range tokenize(text) {
		h := fnv.New64a()
		h.Write([]byte(token))
		sum := h.Sum64()

		// Spread each token across four positions so collisions on a
		// single slot cannot dominate the similarity score.
		for i := 0; i < 4; i++ {
			slot := int((sum >> (i * 16)) % uint64(d.dimensions))
			if (sum>>(i*16+15))&1 == 0 {
				vec[slot] += 1
			} else {
				vec[slot] -= 1
			}
		}
	}

	normalize(vec)
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(vec []float32) {
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
}
