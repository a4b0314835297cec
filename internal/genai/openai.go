package genai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/config"
)

// OpenAI generates replies through the OpenAI chat completions API. It
// honors the same best-effort contract as the Qwen client.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// defaultTemperature matches the Qwen default so provider swaps keep the
// same response character.
const defaultTemperature = 0.6

func NewOpenAI(cfg *config.Config, logger *zap.Logger) *OpenAI {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	return &OpenAI{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.OpenAIModel,
		temperature: defaultTemperature,
		logger:      logger,
	}
}

// newOpenAIWithBaseURL is used by tests to point the client at a stub server.
func newOpenAIWithBaseURL(apiKey, baseURL, model string, logger *zap.Logger) *OpenAI {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL
	return &OpenAI{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: defaultTemperature,
		logger:      logger,
	}
}

func (o *OpenAI) Provider() string {
	return "openai"
}

func (o *OpenAI) Generate(ctx context.Context, messages []Message) string {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    chatMessages,
		Temperature: o.temperature,
	})
	if err != nil {
		o.logger.Error("failed to invoke openai model", zap.Error(err))
		return ""
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		o.logger.Error("openai payload missing expected content shape")
		return ""
	}

	return resp.Choices[0].Message.Content
}
