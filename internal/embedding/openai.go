package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultEmbeddingModel is the OpenAI model used for generating embeddings
const DefaultEmbeddingModel = openai.AdaEmbeddingV2

// ErrWrongDimensions is returned when an embedding has unexpected dimensions
var ErrWrongDimensions = errors.New("embedding has wrong dimensions")

// embeddingAPI is the slice of the OpenAI client the embedder depends on,
// kept narrow so tests can substitute it.
type embeddingAPI interface {
	CreateEmbeddings(ctx context.Context, text string) ([]float32, error)
}

// OpenAI generates real semantic embeddings via the OpenAI API.
type OpenAI struct {
	api        embeddingAPI
	dimensions int
}

type openAIAdapter struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func (a *openAIAdapter) CreateEmbeddings(ctx context.Context, text string) ([]float32, error) {
	resp, err := a.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: a.model,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no embedding data returned")
	}

	return resp.Data[0].Embedding, nil
}

// NewOpenAI creates an OpenAI-backed embedder using ada-002 defaults.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		api: &openAIAdapter{
			client: openai.NewClient(apiKey),
			model:  DefaultEmbeddingModel,
		},
		dimensions: DefaultDimensions,
	}
}

func (c *OpenAI) Dimensions() int {
	return c.dimensions
}

func (c *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	vec, err := c.api.CreateEmbeddings(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}

	if len(vec) != c.dimensions {
		return nil, ErrWrongDimensions
	}

	return vec, nil
}
